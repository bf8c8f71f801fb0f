package rating

import (
	"math"
	"time"
)

// UserStats is the full rating summary for a user. The asBuyer/asSeller
// buckets aggregate the ratings received in that role. All averages are 0
// when the corresponding bucket is empty, never NaN.
type UserStats struct {
	TotalRatingsReceived  int       `json:"totalRatingsReceived"`
	AverageRating         float64   `json:"averageRating"`
	PositiveRatings       int       `json:"positiveRatings"`
	NeutralRatings        int       `json:"neutralRatings"`
	NegativeRatings       int       `json:"negativeRatings"`
	AsBuyerRatings        int       `json:"asBuyerRatings"`
	AsBuyerAvgRating      float64   `json:"asBuyerAvgRating"`
	AsSellerRatings       int       `json:"asSellerRatings"`
	AsSellerAvgRating     float64   `json:"asSellerAvgRating"`
	CompletedTransactions int       `json:"completedTransactions"`
	LastUpdated           time.Time `json:"lastUpdated"`
}

// ComputeStats derives a UserStats from the ratings a user received.
// Scores of 4 and 5 count as positive, 3 as neutral, 1 and 2 as negative.
// Completed transactions are the distinct transaction ids seen across the
// ratings. Averages round to two decimal places.
func ComputeStats(ratings []*Rating) UserStats {
	stats := UserStats{LastUpdated: time.Now()}
	if len(ratings) == 0 {
		return stats
	}

	total := 0
	buyerTotal := 0
	sellerTotal := 0
	transactions := make(map[string]struct{})

	for _, r := range ratings {
		stats.TotalRatingsReceived++
		total += r.Score

		switch {
		case r.Score >= 4:
			stats.PositiveRatings++
		case r.Score == 3:
			stats.NeutralRatings++
		default:
			stats.NegativeRatings++
		}

		switch r.Type {
		case RatingTypeBuyer:
			stats.AsBuyerRatings++
			buyerTotal += r.Score
		case RatingTypeSeller:
			stats.AsSellerRatings++
			sellerTotal += r.Score
		}

		if r.TransactionID != "" {
			transactions[r.TransactionID] = struct{}{}
		}
	}

	stats.AverageRating = roundAverage(total, stats.TotalRatingsReceived)
	stats.AsBuyerAvgRating = roundAverage(buyerTotal, stats.AsBuyerRatings)
	stats.AsSellerAvgRating = roundAverage(sellerTotal, stats.AsSellerRatings)
	stats.CompletedTransactions = len(transactions)

	return stats
}

func roundAverage(sum, count int) float64 {
	if count == 0 {
		return 0
	}
	return math.Round(float64(sum)/float64(count)*100) / 100
}
