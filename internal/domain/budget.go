package domain

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// BudgetConfig is the static monthly budget served on /budgets.
type BudgetConfig struct {
	Currency           string       `json:"currency"`
	BudgetPeriod       BudgetPeriod `json:"budget_period"`
	TotalMonthlyBudget Amount       `json:"total_monthly_budget"`
	Categories         BudgetLimits `json:"categories"`
}

// BudgetPeriod describes the salary-aligned month used for budgeting.
type BudgetPeriod struct {
	StartDay    int    `json:"start_day"`
	Description string `json:"description"`
}

// BudgetLimit is the monthly limit of one category.
type BudgetLimit struct {
	Category string
	Limit    Amount
}

// BudgetLimits encodes as a JSON object keyed by category name and keeps the
// declared order in both directions.
type BudgetLimits []BudgetLimit

// MarshalJSON implements json.Marshaler. Category names are written without
// HTML escaping.
func (l BudgetLimits) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)

	buf.WriteByte('{')
	for i, b := range l {
		if i > 0 {
			buf.WriteByte(',')
		}
		if err := enc.Encode(b.Category); err != nil {
			return nil, fmt.Errorf("BudgetLimits.MarshalJSON: %w", err)
		}
		buf.Truncate(buf.Len() - 1) // Encode appends a newline
		buf.WriteByte(':')
		value, err := b.Limit.MarshalJSON()
		if err != nil {
			return nil, fmt.Errorf("BudgetLimits.MarshalJSON: %w", err)
		}
		buf.Write(value)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// UnmarshalJSON implements json.Unmarshaler.
func (l *BudgetLimits) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))

	tok, err := dec.Token()
	if err != nil {
		return fmt.Errorf("BudgetLimits.UnmarshalJSON: %w", err)
	}
	if tok == nil {
		*l = nil
		return nil
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return fmt.Errorf("BudgetLimits.UnmarshalJSON: expected object, got %v", tok)
	}

	out := BudgetLimits{}
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return fmt.Errorf("BudgetLimits.UnmarshalJSON: %w", err)
		}
		category, ok := tok.(string)
		if !ok {
			return fmt.Errorf("BudgetLimits.UnmarshalJSON: expected key, got %v", tok)
		}
		var limit Amount
		if err := dec.Decode(&limit); err != nil {
			return fmt.Errorf("BudgetLimits.UnmarshalJSON: limit for %q: %w", category, err)
		}
		out = append(out, BudgetLimit{Category: category, Limit: limit})
	}
	if _, err := dec.Token(); err != nil {
		return fmt.Errorf("BudgetLimits.UnmarshalJSON: %w", err)
	}

	*l = out
	return nil
}

// Limit returns the monthly limit for a category.
func (l BudgetLimits) Limit(category string) (Amount, bool) {
	for _, b := range l {
		if b.Category == category {
			return b.Limit, true
		}
	}
	return Amount{}, false
}

var budgetLimits = []struct {
	category string
	limit    int64
}{
	{"Food Delivery", 1700},
	{"Groceries", 2200},
	{"Dining Out", 1200},
	{"Online Shopping", 1800},
	{"Fashion", 800},
	{"Kids & Family", 1000},
	{"Health", 500},
	{"Personal Care", 500},
	{"Home & Furniture", 800},
	{"Electronics", 500},
	{"Subscriptions", 400},
	{"Transport", 800},
	{"Travel", 1500},
	{"Bills & Utilities", 1500},
	{"Education", 500},
	{"Entertainment", 400},
	{"Coffee", 500},
	{"Gifts", 500},
	{"Smart Home", 300},
	{"Business", 500},
	{"Other", 1000},
}

// Budgets returns the budget configuration. Every call builds a fresh value so
// callers cannot alter the shared table.
func Budgets() BudgetConfig {
	limits := make(BudgetLimits, 0, len(budgetLimits))
	for _, b := range budgetLimits {
		limits = append(limits, BudgetLimit{Category: b.category, Limit: AmountFromInt(b.limit)})
	}
	return BudgetConfig{
		Currency: "SAR",
		BudgetPeriod: BudgetPeriod{
			StartDay:    25,
			Description: "Salary-aligned: 25th of current month to 24th of next month",
		},
		TotalMonthlyBudget: AmountFromInt(18400),
		Categories:         limits,
	}
}
