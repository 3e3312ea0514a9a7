package venue

import "strings"

// MatchesFilter reports whether a row stays visible for the given filter
// text: a case-insensitive substring match against the row's text content.
// Empty filter text keeps every row.
func MatchesFilter(v Venue, filter string) bool {
	needle := strings.ToUpper(strings.TrimSpace(filter))
	if needle == "" {
		return true
	}
	return strings.Contains(strings.ToUpper(v.TextContent()), needle)
}

// FilterRows returns the rows whose text content contains the filter text.
func FilterRows(rows []Venue, filter string) []Venue {
	out := make([]Venue, 0, len(rows))
	for _, row := range rows {
		if MatchesFilter(row, filter) {
			out = append(out, row)
		}
	}
	return out
}
