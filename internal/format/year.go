package format

// Year extracts the first maximal digit run found anywhere in the field. The
// field is valid only when that run is exactly four digits; anything else
// keeps the original value and is flagged.
func Year(field string) Result {
	start, end := -1, -1
	for i := 0; i < len(field); i++ {
		if field[i] >= '0' && field[i] <= '9' {
			if start < 0 {
				start = i
			}
			end = i + 1
			continue
		}
		if start >= 0 {
			break
		}
	}
	if start < 0 || end-start != 4 {
		return Result{Value: field, ManualFix: true}
	}
	return Result{Value: field[start:end]}
}
