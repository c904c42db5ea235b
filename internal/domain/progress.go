package domain

import (
	"math"
	"time"
)

// avgWeeklyLossKg is the healthy pace assumption used to derive a target
// end date: 0.9 kg per week, the midpoint of the 0.8-1 kg guideline.
const avgWeeklyLossKg = 0.9

// Pace classifies actual cumulative loss against the linearly expected
// loss for the elapsed fraction of the journey.
type Pace string

const (
	PaceOnTrack Pace = "On Track"
	PaceBehind  Pace = "Behind"
)

// ProgressSnapshot is the derived expected-vs-actual state for a person
// on a given day.
type ProgressSnapshot struct {
	TotalDays           int     `json:"totalDays"`
	DaysPassed          int     `json:"daysPassed"`
	DaysRemaining       int     `json:"daysRemaining"`
	ExpectedProgressPct float64 `json:"expectedProgressPct"`
	ExpectedWeightKg    float64 `json:"expectedWeightToday"`
	ActualProgressPct   float64 `json:"actualProgressPct"`
	WeightLostKg        float64 `json:"weightLost"`
	WeightRemainingKg   float64 `json:"weightRemaining"`
	Pace                Pace    `json:"pace"`
	ActualPoints        int     `json:"actualPoints"`
	TotalPossiblePoints int     `json:"totalPossiblePoints"`
	PointsPct           float64 `json:"pointsPct"`
}

// TargetEndDate derives a target completion date from the start date and
// the weight to lose at the healthy average pace. When the start weight
// does not exceed the goal there is nothing to lose and the target is the
// start date itself.
func TargetEndDate(startDate string, startWeight, goalWeight float64) (string, error) {
	start, err := ParseDay(startDate)
	if err != nil {
		return "", err
	}
	if startWeight <= goalWeight {
		return startDate, nil
	}
	weeks := int(math.Ceil((startWeight - goalWeight) / avgWeeklyLossKg))
	return FormatDay(start.AddDate(0, 0, weeks*7)), nil
}

// ComputeProgress derives the expected-vs-actual snapshot for a person.
// DaysRemaining is deliberately left un-clamped so callers can detect a
// blown target; the percentage fields are clamped to [0, 100].
func ComputeProgress(p Person, cat Catalog, today time.Time) ProgressSnapshot {
	day := truncateToDay(today)
	start, err := ParseDay(p.StartDate)
	if err != nil {
		start = day
	}
	target, err := ParseDay(p.TargetEndDate)
	if err != nil {
		target = start
	}

	totalDays := daysBetween(start, target)
	daysPassed := daysBetween(start, day)
	daysRemaining := daysBetween(day, target)

	// With start date == target date the journey has zero length, so the
	// person is treated as already at term. Past the target the fraction
	// keeps growing, so the linear plan extrapolates below the goal and a
	// late arrival still reads as behind.
	fraction := 1.0
	if totalDays > 0 {
		fraction = float64(daysPassed) / float64(totalDays)
	}

	totalToLose := p.StartWeight - p.GoalWeight
	lost := p.StartWeight - p.CurrentWeight

	actualPct := 100.0
	if totalToLose > 0 {
		actualPct = clampPct(lost / totalToLose * 100)
	}

	pace := PaceBehind
	if lost >= totalToLose*fraction {
		pace = PaceOnTrack
	}

	actualPoints := 0
	for _, da := range p.Activities {
		actualPoints += cat.ScoreForDay(da.Completed, da.Custom)
	}
	totalPossible := 0
	if daysPassed > 0 {
		totalPossible = daysPassed * cat.MaxDailyPoints()
	}
	pointsPct := 0.0
	if totalPossible > 0 {
		pointsPct = float64(actualPoints) / float64(totalPossible) * 100
	}

	return ProgressSnapshot{
		TotalDays:           totalDays,
		DaysPassed:          daysPassed,
		DaysRemaining:       daysRemaining,
		ExpectedProgressPct: clampPct(fraction * 100),
		ExpectedWeightKg:    p.StartWeight - totalToLose*fraction,
		ActualProgressPct:   actualPct,
		WeightLostKg:        lost,
		WeightRemainingKg:   math.Max(p.CurrentWeight-p.GoalWeight, 0),
		Pace:                pace,
		ActualPoints:        actualPoints,
		TotalPossiblePoints: totalPossible,
		PointsPct:           pointsPct,
	}
}

// daysBetween counts calendar days from a to b, negative when b precedes a.
func daysBetween(a, b time.Time) int {
	return int(math.Ceil(b.Sub(a).Hours() / 24))
}

func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

func clampPct(v float64) float64 {
	return math.Max(0, math.Min(v, 100))
}
