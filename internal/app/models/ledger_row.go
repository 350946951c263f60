package models

// LedgerRow is the unit of durable output: one appended spreadsheet row per
// confirmed financial event. Rows are never updated or deleted, and they
// intentionally carry no provider transaction id.
type LedgerRow struct {
	Timestamp  string
	Category   string
	Contact    string
	Email      string
	RUT        string
	Option     string
	Amount     string
	Dedication string
}

// Columns returns the row in the sheet's fixed column order.
func (r *LedgerRow) Columns() []string {
	return []string{
		r.Timestamp,
		r.Category,
		r.Contact,
		r.Email,
		r.RUT,
		r.Option,
		r.Amount,
		r.Dedication,
	}
}
