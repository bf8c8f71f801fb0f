package listing

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jakupie/backend/internal/domain/shared"
)

func TestNewAd_Success(t *testing.T) {
	userID := uuid.New()
	categoryID := uuid.New()

	ad, err := NewAd(userID, categoryID, "  Kupię rower górski  ", "Szukam roweru w dobrym stanie", "500-1000 zł", "Warszawa", `{"condition":"used"}`)

	require.NoError(t, err)
	assert.Equal(t, "Kupię rower górski", ad.Title)
	assert.Equal(t, userID, ad.UserID)
	assert.Equal(t, categoryID, ad.CategoryID)
	assert.Equal(t, AdStatusActive, ad.Status)
	assert.NotEqual(t, uuid.Nil, ad.ID)
	assert.True(t, ad.IsOwnedBy(userID))
	assert.False(t, ad.IsOwnedBy(uuid.New()))
}

func TestNewAd_Validation(t *testing.T) {
	userID := uuid.New()
	categoryID := uuid.New()

	tests := []struct {
		name        string
		userID      uuid.UUID
		categoryID  uuid.UUID
		title       string
		description string
		wantCode    string
	}{
		{"empty owner", uuid.Nil, categoryID, "Title", "Desc", "INVALID_USER_ID"},
		{"empty category", userID, uuid.Nil, "Title", "Desc", "INVALID_CATEGORY_ID"},
		{"empty title", userID, categoryID, "   ", "Desc", "INVALID_TITLE"},
		{"title too long", userID, categoryID, string(make([]byte, 201)), "Desc", "INVALID_TITLE"},
		{"empty description", userID, categoryID, "Title", "", "INVALID_DESCRIPTION"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewAd(tt.userID, tt.categoryID, tt.title, tt.description, "", "", "")

			var domainErr *shared.DomainError
			require.ErrorAs(t, err, &domainErr)
			assert.Equal(t, tt.wantCode, domainErr.Code)
		})
	}
}

func TestAd_SetStatus(t *testing.T) {
	ad, err := NewAd(uuid.New(), uuid.New(), "Title", "Desc", "", "", "")
	require.NoError(t, err)

	require.NoError(t, ad.SetStatus(AdStatusClosed))
	assert.Equal(t, AdStatusClosed, ad.Status)

	// re-applying the current status is a no-op
	require.NoError(t, ad.SetStatus(AdStatusClosed))

	require.NoError(t, ad.SetStatus(AdStatusActive))
	require.NoError(t, ad.SetStatus(AdStatusDeleted))

	err = ad.SetStatus(AdStatusActive)
	var domainErr *shared.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, "INVALID_STATE", domainErr.Code)
	assert.Equal(t, AdStatusDeleted, ad.Status)
}

func TestExtractBudgetValue(t *testing.T) {
	tests := []struct {
		input string
		want  int
	}{
		{"500-1000 zł", 500},
		{"200 zł", 200},
		{"do 350 zł", 350},
		{"around 1 200", 1},
		{"", 0},
		{"do uzgodnienia", 0},
		{"0", 0},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.want, ExtractBudgetValue(tt.input))
		})
	}
}
