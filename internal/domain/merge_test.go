package domain_test

import (
	"errors"
	"reflect"
	"testing"

	"grindtrack/internal/domain"
)

func weightPtr(v float64) *float64 { return &v }

func testPerson() domain.Person {
	return domain.Person{
		ID:            "1",
		Name:          "Anuradha",
		StartWeight:   80,
		CurrentWeight: 80,
		GoalWeight:    70,
		StartDate:     "2025-01-01",
		TargetEndDate: "2025-03-19",
		WeightHistory: []domain.WeightEntry{{Date: "2025-01-01", Weight: 80}},
	}
}

func TestApplyDailySubmission_InvalidDate(t *testing.T) {
	tests := []struct {
		name string
		date string
	}{
		{"empty", ""},
		{"garbage", "not-a-date"},
		{"wrong format", "01/02/2025"},
		{"impossible day", "2025-02-30"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := domain.ApplyDailySubmission(testPerson(), domain.Submission{Date: tc.date})
			if !errors.Is(err, domain.ErrInvalidDate) {
				t.Fatalf("expected ErrInvalidDate, got %v", err)
			}
		})
	}
}

func TestApplyDailySubmission_Idempotent(t *testing.T) {
	sub := domain.Submission{
		Date:      "2025-01-02",
		Completed: []string{"exercise", "water"},
		Weight:    weightPtr(79.5),
	}

	once, err := domain.ApplyDailySubmission(testPerson(), sub)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	twice, err := domain.ApplyDailySubmission(once, sub)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !reflect.DeepEqual(once, twice) {
		t.Errorf("resubmitting the same day changed the person:\nfirst:  %+v\nsecond: %+v", once, twice)
	}
	if len(twice.Activities) != 1 {
		t.Errorf("expected 1 daily record, got %d", len(twice.Activities))
	}
	if len(twice.WeightHistory) != 2 {
		t.Errorf("expected 2 weight entries, got %d", len(twice.WeightHistory))
	}
}

func TestApplyDailySubmission_ReplacesWholeRecord(t *testing.T) {
	p, err := domain.ApplyDailySubmission(testPerson(), domain.Submission{
		Date:      "2025-01-02",
		Completed: []string{"exercise", "water"},
		Custom:    []domain.CustomActivity{{ID: "c1", Name: "Yoga", Points: 5}},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// A second submission for the same date is a full overwrite, not a merge.
	p, err = domain.ApplyDailySubmission(p, domain.Submission{
		Date:      "2025-01-02",
		Completed: []string{"steps"},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	da, ok := p.ActivityForDate("2025-01-02")
	if !ok {
		t.Fatal("expected a record for 2025-01-02")
	}
	if !reflect.DeepEqual(da.Completed, []string{"steps"}) {
		t.Errorf("expected completed [steps], got %v", da.Completed)
	}
	if len(da.Custom) != 0 {
		t.Errorf("expected custom activities to be overwritten, got %v", da.Custom)
	}
}

func TestApplyDailySubmission_WeightUpsertSortsDescending(t *testing.T) {
	p := domain.Person{
		ID:            "1",
		StartWeight:   80,
		CurrentWeight: 80,
		GoalWeight:    70,
		StartDate:     "2025-01-01",
		WeightHistory: []domain.WeightEntry{{Date: "2025-01-01", Weight: 80}},
	}

	p, err := domain.ApplyDailySubmission(p, domain.Submission{Date: "2025-01-02", Weight: weightPtr(79)})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := []domain.WeightEntry{
		{Date: "2025-01-02", Weight: 79},
		{Date: "2025-01-01", Weight: 80},
	}
	if !reflect.DeepEqual(p.WeightHistory, want) {
		t.Errorf("weight history = %v, want %v", p.WeightHistory, want)
	}
	if p.CurrentWeight != 79 {
		t.Errorf("current weight = %v, want 79", p.CurrentWeight)
	}
}

func TestApplyDailySubmission_BackdatedWeightKeepsNewestCurrent(t *testing.T) {
	p, err := domain.ApplyDailySubmission(testPerson(), domain.Submission{Date: "2025-01-05", Weight: weightPtr(78)})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// A backdated entry must not regress CurrentWeight.
	p, err = domain.ApplyDailySubmission(p, domain.Submission{Date: "2025-01-03", Weight: weightPtr(79)})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if p.CurrentWeight != 78 {
		t.Errorf("current weight = %v, want 78 (newest dated entry)", p.CurrentWeight)
	}
	if p.WeightHistory[0].Date != "2025-01-05" {
		t.Errorf("history head = %s, want 2025-01-05", p.WeightHistory[0].Date)
	}
}

func TestApplyDailySubmission_NoWeightLeavesWeightStateAlone(t *testing.T) {
	before := testPerson()

	tests := []struct {
		name   string
		weight *float64
	}{
		{"absent", nil},
		{"zero", weightPtr(0)},
		{"negative", weightPtr(-4)},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			p, err := domain.ApplyDailySubmission(before, domain.Submission{
				Date:      "2025-01-02",
				Completed: []string{"exercise"},
				Weight:    tc.weight,
			})
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !reflect.DeepEqual(p.WeightHistory, before.WeightHistory) {
				t.Errorf("weight history changed: %v", p.WeightHistory)
			}
			if p.CurrentWeight != before.CurrentWeight {
				t.Errorf("current weight changed: %v", p.CurrentWeight)
			}
		})
	}
}

func TestApplyDailySubmission_DuplicateCompletedCollapse(t *testing.T) {
	p, err := domain.ApplyDailySubmission(testPerson(), domain.Submission{
		Date:      "2025-01-02",
		Completed: []string{"exercise", "exercise", "water"},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	da, _ := p.ActivityForDate("2025-01-02")
	if !reflect.DeepEqual(da.Completed, []string{"exercise", "water"}) {
		t.Errorf("completed = %v, want deduplicated [exercise water]", da.Completed)
	}
}

func TestApplyDailySubmission_CustomPointsBounds(t *testing.T) {
	tests := []struct {
		name    string
		points  int
		wantErr bool
	}{
		{"below range", 0, true},
		{"above range", 21, true},
		{"lower bound", 1, false},
		{"upper bound", 20, false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := domain.ApplyDailySubmission(testPerson(), domain.Submission{
				Date:   "2025-01-02",
				Custom: []domain.CustomActivity{{ID: "c1", Name: "Yoga", Points: tc.points}},
			})
			if tc.wantErr && !errors.Is(err, domain.ErrInvalidCustomPoints) {
				t.Fatalf("expected ErrInvalidCustomPoints, got %v", err)
			}
			if !tc.wantErr && err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
		})
	}
}

func TestApplyDailySubmission_DoesNotMutateInput(t *testing.T) {
	original := testPerson()
	_, err := domain.ApplyDailySubmission(original, domain.Submission{
		Date:      "2025-01-02",
		Completed: []string{"exercise"},
		Weight:    weightPtr(79),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !reflect.DeepEqual(original, testPerson()) {
		t.Errorf("input person was mutated: %+v", original)
	}
}
