package notion

import (
	"github.com/jomei/notionapi"
	"github.com/shopspring/decimal"
)

// Record is one page of the transactions database as returned by a query.
// Only the property kinds the dashboard reads are decoded.
type Record struct {
	ID         string              `json:"id"`
	Properties map[string]Property `json:"properties"`
}

// Property is a loosely decoded Notion page property. Absent kinds stay at
// their zero value.
type Property struct {
	Type     string               `json:"type,omitempty"`
	Title    []notionapi.RichText `json:"title,omitempty"`
	Date     *DateValue           `json:"date,omitempty"`
	Number   decimal.NullDecimal  `json:"number"`
	Select   *notionapi.Option    `json:"select,omitempty"`
	Checkbox *bool                `json:"checkbox,omitempty"`
}

// DateValue keeps the ISO strings of a date property untouched.
type DateValue struct {
	Start string  `json:"start"`
	End   *string `json:"end,omitempty"`
}

// QueryResponse is one page of a database query.
type QueryResponse struct {
	Object     string           `json:"object"`
	Results    []Record         `json:"results"`
	HasMore    bool             `json:"has_more"`
	NextCursor notionapi.Cursor `json:"next_cursor"`
}

func (r Record) property(name string) (Property, bool) {
	p, ok := r.Properties[name]
	return p, ok
}

func (r Record) selectName(name string) (string, bool) {
	p, ok := r.property(name)
	if !ok || p.Select == nil {
		return "", false
	}
	return p.Select.Name, true
}
