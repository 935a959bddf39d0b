package notion

import (
	"strings"

	"github.com/dvloznov/finance-dashboard-proxy/internal/domain"
	"github.com/shopspring/decimal"
)

// Property names of the transactions database.
const (
	PropDate         = "Date"
	PropMerchant     = "Merchant"
	PropAmount       = "Amount (SAR)"
	PropCard         = "Card"
	PropCategory     = "Category"
	PropType         = "Type"
	PropVerified     = "Verified"
	PropBudgetPeriod = "Budget Period"
)

// RecordToTransaction maps one database record to the dashboard transaction
// shape. Every field has a default so the mapping never fails; a record
// without a date yields a nil Date.
func RecordToTransaction(rec Record) domain.Transaction {
	tx := domain.Transaction{
		Amount:   domain.NewAmount(decimal.Zero),
		Source:   domain.SourceOther,
		Category: domain.DefaultCategory,
		Type:     domain.DefaultType,
	}

	if p, ok := rec.property(PropDate); ok && p.Date != nil && p.Date.Start != "" {
		start := p.Date.Start
		tx.Date = &start
	}

	if p, ok := rec.property(PropMerchant); ok {
		var b strings.Builder
		for _, t := range p.Title {
			b.WriteString(t.PlainText)
		}
		tx.Merchant = strings.TrimSpace(b.String())
	}

	if p, ok := rec.property(PropAmount); ok && p.Number.Valid {
		tx.Amount = domain.NewAmount(p.Number.Decimal)
	}

	card, ok := rec.selectName(PropCard)
	if !ok {
		card = "Other"
	}
	tx.Source = domain.SourceForCard(card)

	if category, ok := rec.selectName(PropCategory); ok {
		tx.Category = domain.DashboardCategory(category)
	}

	if typ, ok := rec.selectName(PropType); ok {
		tx.Type = typ
	}

	if p, ok := rec.property(PropVerified); ok && p.Checkbox != nil {
		tx.Verified = *p.Checkbox
	}

	if period, ok := rec.selectName(PropBudgetPeriod); ok {
		tx.BudgetPeriod = period
	}

	return tx
}

// RecordsToTransactions maps records, drops those without a date and orders
// the result newest first. The result is never nil.
func RecordsToTransactions(recs []Record) []domain.Transaction {
	all := make([]domain.Transaction, 0, len(recs))
	for _, rec := range recs {
		all = append(all, RecordToTransaction(rec))
	}
	txs := domain.Dated(all)
	domain.SortByDateDesc(txs)
	return txs
}
