package domain

import "github.com/shopspring/decimal"

// Money travels as JSON numbers, the way exported dashboard documents store it.
func init() {
	decimal.MarshalJSONWithoutQuotes = true
}
