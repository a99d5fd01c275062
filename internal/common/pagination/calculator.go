package pagination

// CalculateOffset returns the row offset of a 1-based page.
//
// Example:
//
//	CalculateOffset(1, 10) // 0
//	CalculateOffset(3, 10) // 20
func CalculateOffset(page, limit int) int {
	if page < 1 {
		return 0
	}
	return (page - 1) * limit
}
