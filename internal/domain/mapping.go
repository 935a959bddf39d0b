package domain

// cardSources maps the upstream "Card" select value to a source id.
var cardSources = map[string]Source{
	"Al Rajhi 1": SourceAlRajhi,
	"Al Rajhi 2": SourceAlRajhi,
	"Al Rajhi 3": SourceAlRajhi,
	"SAB":        SourceSAB,
	"Other":      SourceOther,
}

// categoryRenames maps upstream category names to the shorter names the
// dashboard and budget table use.
var categoryRenames = map[string]string{
	"Health & Medical": "Health",
	"Transport & Fuel": "Transport",
	"Gifts & Charity":  "Gifts",
}

// SourceForCard returns the source id for a card name, or SourceOther when the
// card is unknown.
func SourceForCard(card string) Source {
	if src, ok := cardSources[card]; ok {
		return src
	}
	return SourceOther
}

// DashboardCategory returns the dashboard name for an upstream category.
// Names without a rename pass through unchanged.
func DashboardCategory(name string) string {
	if renamed, ok := categoryRenames[name]; ok {
		return renamed
	}
	return name
}
