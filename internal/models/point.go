package models

import "time"

type TransactionType string

const (
	TxnCharge TransactionType = "CHARGE"
	TxnUse    TransactionType = "USE"
)

// PointBalance is the live balance row for one account. Amounts are in the
// minor currency unit and never negative.
type PointBalance struct {
	AccountID     int64     `json:"account_id"`
	Amount        int64     `json:"amount"`
	LastUpdatedAt time.Time `json:"last_updated_at"`
}

// PointHistory is one immutable entry of an account's append-only history.
// RecordID is assigned by the history store and is unique and increasing
// within a store instance.
type PointHistory struct {
	RecordID  int64           `json:"record_id"`
	AccountID int64           `json:"account_id"`
	Amount    int64           `json:"amount"`
	Type      TransactionType `json:"type"`
	CreatedAt time.Time       `json:"created_at"`
}
