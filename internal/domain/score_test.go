package domain_test

import (
	"testing"

	"grindtrack/internal/domain"
)

func flatCatalog() domain.Catalog {
	return domain.NewCatalog([]domain.Activity{
		{ID: "a", Name: "A", Points: 25},
		{ID: "b", Name: "B", Points: 25},
		{ID: "c", Name: "C", Points: 25},
		{ID: "d", Name: "D", Points: 25},
	})
}

func TestScoreForDay(t *testing.T) {
	cat := flatCatalog()

	tests := []struct {
		name      string
		completed []string
		custom    []domain.CustomActivity
		want      int
	}{
		{"empty", nil, nil, 0},
		{"two activities", []string{"a", "b"}, nil, 50},
		{"duplicate counts once", []string{"a", "a"}, nil, 25},
		{"unknown id scores zero", []string{"a", "ghost"}, nil, 25},
		{"all four", []string{"a", "b", "c", "d"}, nil, 100},
		{"custom only", nil, []domain.CustomActivity{{ID: "c1", Points: 7}}, 7},
		{"catalog plus custom", []string{"a"}, []domain.CustomActivity{{ID: "c1", Points: 5}, {ID: "c2", Points: 3}}, 33},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := cat.ScoreForDay(tc.completed, tc.custom)
			if got != tc.want {
				t.Errorf("ScoreForDay(%v, %v) = %d, want %d", tc.completed, tc.custom, got, tc.want)
			}
		})
	}
}

func TestScoreForDate(t *testing.T) {
	cat := flatCatalog()
	p := domain.Person{
		Activities: []domain.DailyActivity{
			{Date: "2025-01-02", Completed: []string{"a", "b"}},
		},
	}

	if got := cat.ScoreForDate(p, "2025-01-02"); got != 50 {
		t.Errorf("expected 50 points, got %d", got)
	}
	if got := cat.ScoreForDate(p, "2025-01-03"); got != 0 {
		t.Errorf("expected 0 points for an unsubmitted day, got %d", got)
	}
}

func TestDefaultCatalog(t *testing.T) {
	cat := domain.DefaultCatalog()

	if got := cat.MaxDailyPoints(); got != 50 {
		t.Errorf("MaxDailyPoints = %d, want 50", got)
	}
	a, ok := cat.Lookup("exercise")
	if !ok {
		t.Fatal("expected exercise in the default catalog")
	}
	if a.Points != 15 {
		t.Errorf("exercise points = %d, want 15", a.Points)
	}
	if _, ok := cat.Lookup("nope"); ok {
		t.Error("unexpected hit for unknown activity")
	}
}
