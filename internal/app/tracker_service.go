// Package app holds the application services and business logic.
package app

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"grindtrack/internal/domain"
	"grindtrack/internal/observability"
)

var (
	// ErrPersonNotFound indicates that no roster entry matches the ID.
	ErrPersonNotFound = errors.New("person not found")
	// ErrInvalidPerson indicates a person payload that fails validation.
	ErrInvalidPerson = errors.New("invalid person")
)

// DefaultHistoryDays is the lookback window for the daily champions view.
const DefaultHistoryDays = 14

// maxHistoryDays caps the lookback window a caller can request.
const maxHistoryDays = 366

// TrackerService owns the roster read-modify-write cycle: every mutation
// loads the full roster, derives a new one through the pure domain
// functions and writes it back wholesale. A mutex serialises writers in
// this process; cross-process writers remain last-write-wins.
type TrackerService struct {
	mu      sync.Mutex
	store   domain.RosterStore
	catalog domain.Catalog
}

// NewTrackerService creates a TrackerService backed by the given store
// and activity catalog.
func NewTrackerService(store domain.RosterStore, catalog domain.Catalog) *TrackerService {
	return &TrackerService{store: store, catalog: catalog}
}

// Catalog returns the activity catalog the service scores with.
func (s *TrackerService) Catalog() domain.Catalog {
	return s.catalog
}

// Roster returns all tracked people.
func (s *TrackerService) Roster(ctx context.Context) ([]domain.Person, error) {
	return s.store.Load(ctx)
}

// ReplaceRoster overwrites the stored roster wholesale. This backs the
// legacy blob endpoint where the client owns the full state.
func (s *TrackerService) ReplaceRoster(ctx context.Context, people []domain.Person) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if people == nil {
		people = []domain.Person{}
	}
	return s.save(ctx, people)
}

// AddPersonInput carries the fields needed to start tracking someone.
type AddPersonInput struct {
	Name        string  `json:"name"`
	StartWeight float64 `json:"startWeight"`
	GoalWeight  float64 `json:"goalWeight"`
	StartDate   string  `json:"startDate"`
	Color       string  `json:"color"`
	HeightCm    float64 `json:"height"`
	Age         int     `json:"age"`
	Gender      string  `json:"gender"`
}

// AddPerson validates the input, derives the target end date from the
// healthy-pace heuristic and appends the person to the roster. The weight
// history is seeded with the start weight on the start date.
func (s *TrackerService) AddPerson(ctx context.Context, in AddPersonInput) (domain.Person, error) {
	if in.Name == "" {
		return domain.Person{}, fmt.Errorf("%w: name is required", ErrInvalidPerson)
	}
	if in.StartWeight <= 0 || in.GoalWeight <= 0 {
		return domain.Person{}, fmt.Errorf("%w: weights must be > 0", ErrInvalidPerson)
	}
	if in.StartWeight == in.GoalWeight {
		return domain.Person{}, fmt.Errorf("%w: start and goal weight must differ", ErrInvalidPerson)
	}
	if in.StartDate == "" {
		in.StartDate = domain.FormatDay(time.Now())
	}
	targetEnd, err := domain.TargetEndDate(in.StartDate, in.StartWeight, in.GoalWeight)
	if err != nil {
		return domain.Person{}, err
	}

	person := domain.Person{
		ID:            uuid.NewString(),
		Name:          in.Name,
		StartWeight:   in.StartWeight,
		CurrentWeight: in.StartWeight,
		GoalWeight:    in.GoalWeight,
		StartDate:     in.StartDate,
		TargetEndDate: targetEnd,
		Color:         in.Color,
		HeightCm:      in.HeightCm,
		Age:           in.Age,
		Gender:        in.Gender,
		Activities:    []domain.DailyActivity{},
		WeightHistory: []domain.WeightEntry{{Date: in.StartDate, Weight: in.StartWeight}},
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	people, err := s.store.Load(ctx)
	if err != nil {
		return domain.Person{}, err
	}
	if err := s.save(ctx, append(people, person)); err != nil {
		return domain.Person{}, err
	}
	return person, nil
}

// RemovePerson deletes a person from the roster.
func (s *TrackerService) RemovePerson(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	people, err := s.store.Load(ctx)
	if err != nil {
		return err
	}
	out := make([]domain.Person, 0, len(people))
	found := false
	for _, p := range people {
		if p.ID == id {
			found = true
			continue
		}
		out = append(out, p)
	}
	if !found {
		return ErrPersonNotFound
	}
	return s.save(ctx, out)
}

// SubmitDay merges one day's submission into a person's history and
// persists the updated roster, returning the updated person. Custom
// activities without an ID are assigned one.
func (s *TrackerService) SubmitDay(ctx context.Context, personID string, sub domain.Submission) (domain.Person, error) {
	for i := range sub.Custom {
		if sub.Custom[i].ID == "" {
			sub.Custom[i].ID = uuid.NewString()
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	people, err := s.store.Load(ctx)
	if err != nil {
		return domain.Person{}, err
	}

	idx := -1
	for i, p := range people {
		if p.ID == personID {
			idx = i
			break
		}
	}
	if idx < 0 {
		return domain.Person{}, ErrPersonNotFound
	}

	updated, err := domain.ApplyDailySubmission(people[idx], sub)
	if err != nil {
		return domain.Person{}, err
	}
	people[idx] = updated

	if err := s.save(ctx, people); err != nil {
		return domain.Person{}, err
	}
	observability.RecordSubmission()
	return updated, nil
}

// UpdateWeight records a weight for today, keeping whatever activities
// were already submitted for the day. This backs the inline weight edit
// on a person card.
func (s *TrackerService) UpdateWeight(ctx context.Context, personID string, weight float64) (domain.Person, error) {
	if weight <= 0 {
		return domain.Person{}, fmt.Errorf("%w: weight must be > 0", ErrInvalidPerson)
	}
	today := domain.FormatDay(time.Now())

	s.mu.Lock()
	defer s.mu.Unlock()
	people, err := s.store.Load(ctx)
	if err != nil {
		return domain.Person{}, err
	}

	idx := -1
	for i, p := range people {
		if p.ID == personID {
			idx = i
			break
		}
	}
	if idx < 0 {
		return domain.Person{}, ErrPersonNotFound
	}

	sub := domain.Submission{Date: today, Weight: &weight}
	if existing, ok := people[idx].ActivityForDate(today); ok {
		sub.Completed = existing.Completed
		sub.Custom = existing.Custom
	}

	updated, err := domain.ApplyDailySubmission(people[idx], sub)
	if err != nil {
		return domain.Person{}, err
	}
	people[idx] = updated

	if err := s.save(ctx, people); err != nil {
		return domain.Person{}, err
	}
	return updated, nil
}

// PersonProgress pairs a person with their derived progress state.
type PersonProgress struct {
	Person      domain.Person           `json:"person"`
	Progress    domain.ProgressSnapshot `json:"progress"`
	BMI         float64                 `json:"bmi"`
	BMICategory domain.BMICategory      `json:"bmiCategory"`
}

// Progress computes the expected-vs-actual snapshot for everyone on the
// roster as of the given day.
func (s *TrackerService) Progress(ctx context.Context, today time.Time) ([]PersonProgress, error) {
	people, err := s.store.Load(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]PersonProgress, 0, len(people))
	for _, p := range people {
		bmi := domain.BMI(p.CurrentWeight, p.HeightCm)
		out = append(out, PersonProgress{
			Person:      p,
			Progress:    domain.ComputeProgress(p, s.catalog, today),
			BMI:         bmi,
			BMICategory: domain.CategoriseBMI(bmi),
		})
	}
	return out, nil
}

// Leaderboard returns the roster ordered by weight-loss progress.
func (s *TrackerService) Leaderboard(ctx context.Context, today time.Time) ([]domain.LeaderboardEntry, error) {
	people, err := s.store.Load(ctx)
	if err != nil {
		return nil, err
	}
	return domain.Leaderboard(people, s.catalog, today), nil
}

// DayRanking is one calendar day's points ranking.
type DayRanking struct {
	Date     string                `json:"date"`
	Rankings []domain.RankedPerson `json:"rankings"`
}

// DailyHistory is the daily champions view: per-day rankings over the
// lookback window plus the win tally for the same window.
type DailyHistory struct {
	Days []DayRanking      `json:"days"`
	Wins []domain.WinCount `json:"wins"`
}

// History computes the daily champions view for the last days days.
func (s *TrackerService) History(ctx context.Context, days int, today time.Time) (DailyHistory, error) {
	if days <= 0 {
		days = DefaultHistoryDays
	}
	if days > maxHistoryDays {
		days = maxHistoryDays
	}
	people, err := s.store.Load(ctx)
	if err != nil {
		return DailyHistory{}, err
	}

	dates := domain.PastDays(today, days)
	out := DailyHistory{Days: make([]DayRanking, 0, len(dates))}
	for _, date := range dates {
		out.Days = append(out.Days, DayRanking{
			Date:     date,
			Rankings: domain.DailyRanking(people, s.catalog, date),
		})
	}
	out.Wins = domain.WinCounts(people, s.catalog, dates)
	return out, nil
}

// save persists the roster and keeps the store metrics current. The
// in-memory state derived by the caller is not rolled back on failure;
// the caller decides whether to retry.
func (s *TrackerService) save(ctx context.Context, people []domain.Person) error {
	if err := s.store.Save(ctx, people); err != nil {
		observability.RecordSaveFailure()
		return fmt.Errorf("save roster: %w", err)
	}
	observability.RecordRosterSaved(len(people), time.Now())
	return nil
}
