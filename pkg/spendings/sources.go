package spendings

// TransactionSource is one of the fixed funding sources a withdrawal can
// draw from. Sources are a static lookup table, never fetched from the API.
type TransactionSource struct {
	// ID is the wire identifier sent as source_id
	ID string

	// Name is the display name
	Name string
}

// The closed set of transaction sources
var (
	SourceCash   = TransactionSource{ID: "1", Name: "Cash"}
	SourceCredit = TransactionSource{ID: "2", Name: "Credit"}
)

// TransactionSources returns the full source table in display order
func TransactionSources() []TransactionSource {
	return []TransactionSource{SourceCash, SourceCredit}
}
