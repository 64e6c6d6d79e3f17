package models

// EntryKind tells which ledger an entry belongs to.
type EntryKind string

const (
	// EntryKindExpense is money spent.
	EntryKindExpense EntryKind = "expense"

	// EntryKindIncome is money earned or received.
	EntryKindIncome EntryKind = "income"
)

// Valid reports whether k is a known entry kind.
func (k EntryKind) Valid() bool {
	return k == EntryKindExpense || k == EntryKindIncome
}

// Necessity classifies an expense as a need or a want.
type Necessity string

const (
	NecessityNeed Necessity = "need"
	NecessityWant Necessity = "want"
)

// Valid reports whether n is a known necessity tag.
func (n Necessity) Valid() bool {
	return n == NecessityNeed || n == NecessityWant
}

// Entry is one immutable ledger record. Income entries never carry a
// necessity tag.
type Entry struct {
	// ID is assigned by the store on insert and grows with insertion order.
	ID int64 `json:"id"`

	// Kind selects the ledger: expense or income.
	Kind EntryKind `json:"kind"`

	// Username is the owner. It is always taken from the authenticated
	// request, never from the payload.
	Username string `json:"-"`

	// Date is the calendar day the entry belongs to. Defaults to today.
	Date Date `json:"date"`

	// Label is a free-text description. Must not be blank.
	Label string `json:"label"`

	// Amount is a positive integer amount in the smallest currency unit.
	Amount int64 `json:"amount"`

	// Category is normalised free text such as "snack" or "allowance".
	Category string `json:"category"`

	// Necessity is set for expenses only.
	Necessity Necessity `json:"necessity,omitempty"`
}

// Categories lists the suggested categories per entry kind.
type Categories struct {
	Expense []string `json:"expense"`
	Income  []string `json:"income"`
}

// DailyTotal is the sum of one kind of entries on one day.
type DailyTotal struct {
	Kind  EntryKind `json:"kind"`
	Date  Date      `json:"date"`
	Total int64     `json:"total"`
}
