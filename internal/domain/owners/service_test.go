package owners_test

import (
	"context"
	"strings"
	"testing"

	"horse-registry/internal/adapters/storage/memory"
	"horse-registry/internal/domain/apperr"
	"horse-registry/internal/domain/owners"
)

func newService() *owners.Service {
	return owners.NewService(memory.NewOwnersRepo())
}

func TestCreateAndGetByID(t *testing.T) {
	svc := newService()
	ctx := context.Background()

	created, err := svc.Create(ctx, owners.CreateInput{FirstName: "Carmen", LastName: "Diaz"})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if created.ID == 0 {
		t.Fatal("expected generated id")
	}

	got, err := svc.GetByID(ctx, created.ID)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if got.FirstName != "Carmen" || got.LastName != "Diaz" || got.Email != nil {
		t.Fatalf("unexpected owner: %+v", got)
	}
}

func TestCreateAccumulatesValidationErrors(t *testing.T) {
	svc := newService()

	email := " "
	_, err := svc.Create(context.Background(), owners.CreateInput{Email: &email})
	if !apperr.IsValidation(err) {
		t.Fatalf("expected validation error, got %v", err)
	}

	val := err.(*apperr.Validation)
	if len(val.Violations) != 3 {
		t.Fatalf("expected 3 violations (first name, last name, email), got %v", val.Violations)
	}
}

func TestCreateRejectsOversizedNames(t *testing.T) {
	svc := newService()

	_, err := svc.Create(context.Background(), owners.CreateInput{
		FirstName: strings.Repeat("a", 256),
		LastName:  "Diaz",
	})
	if !apperr.IsValidation(err) {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestGetAllByIDFailsOnAnyMissing(t *testing.T) {
	svc := newService()
	ctx := context.Background()

	a, _ := svc.Create(ctx, owners.CreateInput{FirstName: "Anna", LastName: "Berger"})
	b, _ := svc.Create(ctx, owners.CreateInput{FirstName: "Max", LastName: "Huber"})

	got, err := svc.GetAllByID(ctx, []int64{a.ID, b.ID})
	if err != nil {
		t.Fatalf("GetAllByID: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 owners, got %v", got)
	}

	_, err = svc.GetAllByID(ctx, []int64{a.ID, 999})
	if !apperr.IsNotFound(err) {
		t.Fatalf("expected not found for missing id, got %v", err)
	}
}

func TestSearchByNameSubstring(t *testing.T) {
	svc := newService()
	ctx := context.Background()

	_, _ = svc.Create(ctx, owners.CreateInput{FirstName: "Anna", LastName: "Berger"})
	_, _ = svc.Create(ctx, owners.CreateInput{FirstName: "Max", LastName: "Huber"})
	_, _ = svc.Create(ctx, owners.CreateInput{FirstName: "Maximilian", LastName: "Lang"})

	got, err := svc.Search(ctx, owners.SearchFilter{Name: "max"})
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 matches for 'max', got %+v", got)
	}

	limit := 1
	got, err = svc.Search(ctx, owners.SearchFilter{Name: "max", MaxAmount: &limit})
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("expected max_amount to cap results, got %+v", got)
	}
}
