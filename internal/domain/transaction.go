package domain

import (
	"sort"
	"time"
)

// Source identifies the bank a transaction was paid from.
type Source string

const (
	SourceAlRajhi Source = "alrajhi"
	SourceSAB     Source = "sab"
	SourceOther   Source = "other"
)

// Default values applied when an upstream record omits a field.
const (
	DefaultCategory = "Other"
	DefaultType     = "Debit"
)

// Transaction is the normalized shape served to the dashboard.
// Date keeps the upstream ISO string as-is (date only or full timestamp).
type Transaction struct {
	Date         *string `json:"date"`
	Merchant     string  `json:"merchant"`
	Amount       Amount  `json:"amount"`
	Source       Source  `json:"source"`
	Category     string  `json:"category"`
	Type         string  `json:"type"`
	Verified     bool    `json:"verified"`
	BudgetPeriod string  `json:"budgetPeriod"`
}

// dateLayouts are tried in order when ordering transactions.
var dateLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.000",
	"2006-01-02T15:04:05",
	"2006-01-02",
}

// Time parses the transaction date. The zero time is returned when the date
// is missing or not in a recognized ISO layout.
func (t Transaction) Time() time.Time {
	if t.Date == nil {
		return time.Time{}
	}
	for _, layout := range dateLayouts {
		if parsed, err := time.Parse(layout, *t.Date); err == nil {
			return parsed
		}
	}
	return time.Time{}
}

// Dated returns the transactions that carry a date, preserving order.
// The result is never nil.
func Dated(txs []Transaction) []Transaction {
	out := make([]Transaction, 0, len(txs))
	for _, tx := range txs {
		if tx.Date != nil {
			out = append(out, tx)
		}
	}
	return out
}

// SortByDateDesc orders transactions newest first. Equal dates keep their
// relative order.
func SortByDateDesc(txs []Transaction) {
	sort.SliceStable(txs, func(i, j int) bool {
		return txs[i].Time().After(txs[j].Time())
	})
}
