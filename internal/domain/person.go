// Package domain contains the core business entities and interfaces.
package domain

import (
	"context"
	"errors"
	"time"
)

var (
	// ErrInvalidDate indicates a submission date that is not a YYYY-MM-DD
	// calendar date.
	ErrInvalidDate = errors.New("date must be a valid YYYY-MM-DD date")
	// ErrInvalidCustomPoints indicates a custom activity outside the
	// allowed 1-20 point range.
	ErrInvalidCustomPoints = errors.New("custom activity points must be between 1 and 20")
)

// dayLayout is the calendar-date format used throughout: dates are day
// strings, never timestamps, so timezone drift cannot split a day in two.
const dayLayout = "2006-01-02"

// Person is one tracked individual. Histories grow by upsert only; the
// merge functions return updated copies rather than mutating in place.
type Person struct {
	ID            string          `json:"id"`
	Name          string          `json:"name"`
	StartWeight   float64         `json:"startWeight"`
	CurrentWeight float64         `json:"currentWeight"`
	GoalWeight    float64         `json:"goalWeight"`
	StartDate     string          `json:"startDate"`
	TargetEndDate string          `json:"targetEndDate"`
	Color         string          `json:"color"`
	HeightCm      float64         `json:"height"`
	Age           int             `json:"age"`
	Gender        string          `json:"gender"`
	Activities    []DailyActivity `json:"dailyActivities"`
	WeightHistory []WeightEntry   `json:"weightHistory"`
}

// DailyActivity is one calendar day's submission for one person. At most
// one record exists per date; resubmitting a date replaces the record.
type DailyActivity struct {
	Date      string           `json:"date"`
	Completed []string         `json:"completedActivities"`
	Custom    []CustomActivity `json:"customActivities,omitempty"`
	Weight    *float64         `json:"weight,omitempty"`
}

// CustomActivity is an ad hoc activity with its own point value.
type CustomActivity struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Points int    `json:"points"`
}

// WeightEntry is one weight measurement in kg for a calendar date.
type WeightEntry struct {
	Date   string  `json:"date"`
	Weight float64 `json:"weight"`
}

// Submission is a single day's input for one person.
type Submission struct {
	Date      string           `json:"date"`
	Completed []string         `json:"completedActivityIds"`
	Custom    []CustomActivity `json:"customActivities,omitempty"`
	Weight    *float64         `json:"weight,omitempty"`
}

// RosterStore is the port for roster persistence. The whole roster is
// stored as one value; writers replace it wholesale (last write wins).
type RosterStore interface {
	Load(ctx context.Context) ([]Person, error)
	Save(ctx context.Context, people []Person) error
}

// ParseDay parses a YYYY-MM-DD day string.
func ParseDay(s string) (time.Time, error) {
	t, err := time.Parse(dayLayout, s)
	if err != nil {
		return time.Time{}, ErrInvalidDate
	}
	return t, nil
}

// FormatDay formats t as a YYYY-MM-DD day string.
func FormatDay(t time.Time) string {
	return t.Format(dayLayout)
}

// ActivityForDate returns the person's submission for a date, if any.
func (p Person) ActivityForDate(date string) (DailyActivity, bool) {
	for _, da := range p.Activities {
		if da.Date == date {
			return da, true
		}
	}
	return DailyActivity{}, false
}
