package models

// Summary holds the aggregates derived from a user's ledger on read.
type Summary struct {
	TotalSpent  int64 `json:"total_spent"`
	TotalEarned int64 `json:"total_earned"`

	// Savings is TotalEarned minus TotalSpent and may be negative.
	Savings int64 `json:"savings"`

	ExpenseByCategory map[string]int64 `json:"expense_by_category"`
	IncomeByCategory  map[string]int64 `json:"income_by_category"`

	NeedsTotal int64 `json:"needs_total"`
	WantsTotal int64 `json:"wants_total"`

	// NoSpendStreak counts consecutive days up to and including today
	// without expenses, capped at 30.
	NoSpendStreak int `json:"no_spend_streak"`

	// Wishlist is nil when the user has no goal.
	Wishlist *WishlistProgress `json:"wishlist,omitempty"`
}

// WishlistProgress relates current savings to the wishlist target.
type WishlistProgress struct {
	ItemLabel    string  `json:"item_label"`
	TargetAmount int64   `json:"target_amount"`
	Percent      float64 `json:"percent"`
}
