package models

// InterestType selects the EMI formula for a borrowing
type InterestType string

const (
	InterestTypeSimple   InterestType = "simple"
	InterestTypeCompound InterestType = "compound"
)

// Valid reports whether t is one of the known interest types.
func (t InterestType) Valid() bool {
	return t == InterestTypeSimple || t == InterestTypeCompound
}

// EmiBorrowing is a loan record. Principal and the derived emi,
// totalInterest, and totalAmount fields are in minor currency units (cents);
// the derived fields are computed once when the record is created or updated
// and stored, never recomputed lazily.
type EmiBorrowing struct {
	ID            string       `json:"id"`
	Name          string       `json:"name"`
	Principal     int64        `json:"principal"`
	InterestRate  float64      `json:"interestRate"` // annual percentage, e.g. 8.5
	Tenure        int          `json:"tenure"`       // months
	InterestType  InterestType `json:"interestType"`
	Emi           int64        `json:"emi"`
	TotalInterest int64        `json:"totalInterest"`
	TotalAmount   int64        `json:"totalAmount"`
}

// EntityID returns the record key.
func (e *EmiBorrowing) EntityID() string { return e.ID }

// SetEntityID assigns the record key.
func (e *EmiBorrowing) SetEntityID(id string) { e.ID = id }
