package ui

import "time"

const (
	datePlaceholder = "-"
	unknownPayer    = "Unknown payer"
)

// dateLayouts covers the timestamp shapes the service returns; older rows
// lack fractional seconds or a zone.
var dateLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02",
}

// formatDate renders an expense timestamp as DD/MM/YY, or the placeholder
// when the value is missing or unparseable.
func formatDate(value *string) string {
	if value == nil || *value == "" {
		return datePlaceholder
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, *value); err == nil {
			return t.Format("02/01/06")
		}
	}
	return datePlaceholder
}

// formatPayer renders a payer id truncated to six runes, or the unknown-payer
// placeholder.
func formatPayer(userID *string) string {
	if userID == nil || *userID == "" {
		return unknownPayer
	}
	id := []rune(*userID)
	if len(id) > 6 {
		id = id[:6]
	}
	return "Paid by " + string(id) + "…"
}
