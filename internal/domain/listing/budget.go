package listing

// ExtractBudgetValue parses the first integer substring out of a free-text
// budget range such as "500-1000 zł" or "do 200 zł". Strings with no digits
// return 0, which sorts unpriced ads first under price_low.
func ExtractBudgetValue(budgetRange string) int {
	value := 0
	found := false

	for i := 0; i < len(budgetRange); i++ {
		c := budgetRange[i]
		if c >= '0' && c <= '9' {
			found = true
			value = value*10 + int(c-'0')
			continue
		}
		if found {
			break
		}
	}

	if !found {
		return 0
	}
	return value
}
