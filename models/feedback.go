package models

// VerdictLevel grades a feedback verdict.
type VerdictLevel string

const (
	VerdictGood    VerdictLevel = "good"
	VerdictWarning VerdictLevel = "warning"
	VerdictAlert   VerdictLevel = "alert"
)

// Verdict is one categorical outcome of the feedback evaluator.
type Verdict struct {
	Level   VerdictLevel `json:"level"`
	Code    string       `json:"code"`
	Message string       `json:"message"`
}

// FeedbackReport is the result of evaluating a user's expenses.
type FeedbackReport struct {
	TotalSpent  int64   `json:"total_spent"`
	SnackSpent  int64   `json:"snack_spent"`
	SnackRatio  float64 `json:"snack_ratio"`
	WantsAmount int64   `json:"wants_amount"`
	NeedsAmount int64   `json:"needs_amount"`
	Snack       Verdict `json:"snack"`
	Necessity   Verdict `json:"necessity"`
}
