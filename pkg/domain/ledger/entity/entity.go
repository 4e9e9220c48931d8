package entity

// Amount is a monetary value in cents of euro. Payments are negative,
// income is positive.
type Amount int64

// Timestamp is an instant in epoch milliseconds. Ledger dates always sit
// at local midnight of the transaction day.
type Timestamp int64

type (
	Movement    string
	Info        string
	Name        string
	EventName   string
	ConceptName string
	Origin      string
	Comment     string
)

// The two payment channels the aggregation knows about. Any other origin
// literal is carried through as-is but matches neither channel bucket.
const (
	OriginCaixa  Origin = "CAIXA"
	OriginPaypal Origin = "PAYPAL"
)

// ParseAdvance reports whether the advance column marks the transaction
// as a prepayment. Exactly "Y" means yes, any other value means no.
func ParseAdvance(text string) bool {
	return text == "Y"
}
