package domain

import (
	"sort"
	"time"
)

// RankedPerson is one row of a single day's points ranking.
type RankedPerson struct {
	Person Person `json:"person"`
	Points int    `json:"points"`
}

// WinCount is the number of days a person topped the daily ranking within
// a lookback window.
type WinCount struct {
	Name string `json:"name"`
	Wins int    `json:"wins"`
}

// LeaderboardEntry is one row of the overall progress leaderboard.
type LeaderboardEntry struct {
	Person            Person  `json:"person"`
	ProgressPct       float64 `json:"progressPct"`
	WeightLostKg      float64 `json:"weightLost"`
	WeightRemainingKg float64 `json:"weightRemaining"`
}

// DailyRanking ranks the roster by points earned on a date, highest
// first. The sort is stable: ties keep the roster's own order, which is
// the only tie-break rule the product defines.
func DailyRanking(people []Person, cat Catalog, date string) []RankedPerson {
	out := make([]RankedPerson, 0, len(people))
	for _, p := range people {
		out = append(out, RankedPerson{Person: p, Points: cat.ScoreForDate(p, date)})
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Points > out[j].Points })
	return out
}

// WinCounts tallies, for each date in dates, a win for the top-ranked
// person of that day. Days where nobody scored credit no one. The result
// is ordered by wins descending, ties in roster order.
func WinCounts(people []Person, cat Catalog, dates []string) []WinCount {
	wins := make(map[string]int)
	for _, date := range dates {
		rankings := DailyRanking(people, cat, date)
		if len(rankings) > 0 && rankings[0].Points > 0 {
			wins[rankings[0].Person.Name]++
		}
	}

	out := make([]WinCount, 0, len(wins))
	for _, p := range people {
		if n, ok := wins[p.Name]; ok {
			out = append(out, WinCount{Name: p.Name, Wins: n})
			delete(wins, p.Name)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Wins > out[j].Wins })
	return out
}

// Leaderboard orders the roster by actual weight-loss progress, highest
// first, ties in roster order.
func Leaderboard(people []Person, cat Catalog, today time.Time) []LeaderboardEntry {
	out := make([]LeaderboardEntry, 0, len(people))
	for _, p := range people {
		snap := ComputeProgress(p, cat, today)
		out = append(out, LeaderboardEntry{
			Person:            p,
			ProgressPct:       snap.ActualProgressPct,
			WeightLostKg:      snap.WeightLostKg,
			WeightRemainingKg: snap.WeightRemainingKg,
		})
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].ProgressPct > out[j].ProgressPct })
	return out
}

// PastDays returns the last n day strings ending with today, oldest first.
func PastDays(today time.Time, n int) []string {
	out := make([]string, 0, n)
	for i := n - 1; i >= 0; i-- {
		out = append(out, FormatDay(today.AddDate(0, 0, -i)))
	}
	return out
}
