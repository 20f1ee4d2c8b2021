package models

import "github.com/shopspring/decimal"

// Account holds the server-reported balance. The backend is the source of
// truth for the post-operation balance; the client never computes it locally.
type Account struct {
	Balance decimal.Decimal `json:"balance"`
}
