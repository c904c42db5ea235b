package domain

// ScoreForDay computes the points earned for one day's submission.
// Completed IDs are treated as a set, so duplicates count once. IDs that
// no longer resolve in the catalog contribute zero points rather than
// failing: old submissions may reference a catalog that has since changed.
func (c Catalog) ScoreForDay(completed []string, custom []CustomActivity) int {
	total := 0
	seen := make(map[string]bool, len(completed))
	for _, id := range completed {
		if seen[id] {
			continue
		}
		seen[id] = true
		if a, ok := c.byID[id]; ok {
			total += a.Points
		}
	}
	for _, ca := range custom {
		total += ca.Points
	}
	return total
}

// ScoreForDate computes a person's points for a calendar date, zero if
// nothing was submitted for that date.
func (c Catalog) ScoreForDate(p Person, date string) int {
	da, ok := p.ActivityForDate(date)
	if !ok {
		return 0
	}
	return c.ScoreForDay(da.Completed, da.Custom)
}
