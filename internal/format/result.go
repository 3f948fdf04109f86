package format

// Result is the outcome of normalizing one field: the value to carry forward
// and whether a human still has to review it.
type Result struct {
	Value     string
	ManualFix bool
}
