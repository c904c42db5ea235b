package memory

import (
	"context"
	"testing"

	"grindtrack/internal/domain"
)

func TestStoreRoundTrip(t *testing.T) {
	s := New()
	ctx := context.Background()

	// Empty store loads an empty roster, not nil.
	people, err := s.Load(ctx)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if people == nil || len(people) != 0 {
		t.Fatalf("expected empty roster, got %v", people)
	}

	roster := []domain.Person{
		{ID: "1", Name: "Anuradha", StartWeight: 70, CurrentWeight: 69, GoalWeight: 65},
	}
	if err := s.Save(ctx, roster); err != nil {
		t.Fatalf("Save: %v", err)
	}

	got, err := s.Load(ctx)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(got) != 1 || got[0].Name != "Anuradha" {
		t.Fatalf("unexpected roster: %v", got)
	}

	// Mutating the loaded copy must not leak into the store.
	got[0].Name = "Changed"
	again, _ := s.Load(ctx)
	if again[0].Name != "Anuradha" {
		t.Error("loaded roster aliases the stored state")
	}
}
