package domain

import "sort"

// ApplyDailySubmission merges one day's submission into a person's history
// and returns the updated person. The input person is not mutated, so
// callers holding the previous value can keep reading it safely.
//
// The daily record for the submission date is replaced wholesale; there is
// no field-level merge. A positive weight upserts the weight history for
// that date and refreshes CurrentWeight from the newest entry. A missing
// or non-positive weight leaves the weight history untouched.
func ApplyDailySubmission(p Person, sub Submission) (Person, error) {
	if _, err := ParseDay(sub.Date); err != nil {
		return Person{}, err
	}
	for _, ca := range sub.Custom {
		if ca.Points < 1 || ca.Points > 20 {
			return Person{}, ErrInvalidCustomPoints
		}
	}

	record := DailyActivity{
		Date:      sub.Date,
		Completed: dedupe(sub.Completed),
		Custom:    append([]CustomActivity(nil), sub.Custom...),
		Weight:    sub.Weight,
	}

	updated := p
	updated.Activities = upsertActivity(p.Activities, record)

	if sub.Weight != nil && *sub.Weight > 0 {
		updated.WeightHistory = upsertWeight(p.WeightHistory, WeightEntry{Date: sub.Date, Weight: *sub.Weight})
		updated.CurrentWeight = updated.WeightHistory[0].Weight
	} else {
		updated.WeightHistory = append([]WeightEntry(nil), p.WeightHistory...)
	}

	return updated, nil
}

// dedupe collapses duplicate activity IDs, keeping first-occurrence order.
func dedupe(ids []string) []string {
	seen := make(map[string]bool, len(ids))
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		if seen[id] {
			continue
		}
		seen[id] = true
		out = append(out, id)
	}
	return out
}

// upsertActivity replaces the record matching record.Date or appends it,
// always returning a fresh slice.
func upsertActivity(history []DailyActivity, record DailyActivity) []DailyActivity {
	out := append([]DailyActivity(nil), history...)
	for i, da := range out {
		if da.Date == record.Date {
			out[i] = record
			return out
		}
	}
	return append(out, record)
}

// upsertWeight replaces or appends the entry for entry.Date and re-sorts
// the history newest first.
func upsertWeight(history []WeightEntry, entry WeightEntry) []WeightEntry {
	out := append([]WeightEntry(nil), history...)
	replaced := false
	for i, we := range out {
		if we.Date == entry.Date {
			out[i] = entry
			replaced = true
			break
		}
	}
	if !replaced {
		out = append(out, entry)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date > out[j].Date })
	return out
}
