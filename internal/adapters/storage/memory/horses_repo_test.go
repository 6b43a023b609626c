package memory

import (
	"context"
	"testing"
	"time"

	"horse-registry/internal/domain/apperr"
	"horse-registry/internal/domain/horses"
)

func seededRepos() (*HorsesRepo, *OwnersRepo) {
	or := NewOwnersRepo()
	hr := NewHorsesRepo(or)
	SeedFixtures(hr, or)
	return hr, or
}

func TestCreateAssignsIncreasingIDs(t *testing.T) {
	hr, _ := seededRepos()
	ctx := context.Background()

	a, _ := hr.Create(ctx, horses.Horse{Name: "A", Sex: horses.SexMale, DateOfBirth: date(2020, 1, 1)})
	b, _ := hr.Create(ctx, horses.Horse{Name: "B", Sex: horses.SexMale, DateOfBirth: date(2020, 1, 1)})

	if a.ID <= 0 || b.ID != a.ID+1 {
		t.Fatalf("unexpected ids: %d, %d", a.ID, b.ID)
	}
}

func TestGetChildrenMatchesEitherParentRole(t *testing.T) {
	hr, _ := seededRepos()

	children, err := hr.GetChildren(context.Background(), -1)
	if err != nil {
		t.Fatalf("GetChildren: %v", err)
	}
	if len(children) != 2 {
		t.Fatalf("expected Carlo and Luna as children of Wendy, got %+v", children)
	}

	children, err = hr.GetChildren(context.Background(), -2)
	if err != nil {
		t.Fatalf("GetChildren: %v", err)
	}
	if len(children) != 2 {
		t.Fatalf("expected Carlo and Luna as children of Hugo, got %+v", children)
	}
}

func TestSearchByOwnerName(t *testing.T) {
	hr, _ := seededRepos()

	got, err := hr.Search(context.Background(), horses.SearchFilter{OwnerName: "berger"})
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	if len(got) != 1 || got[0].ID != -1 {
		t.Fatalf("expected Wendy (owner Anna Berger), got %+v", got)
	}
}

func TestSearchByDescriptionCaseInsensitive(t *testing.T) {
	hr, _ := seededRepos()

	got, err := hr.Search(context.Background(), horses.SearchFilter{Description: "DESCRIPTION"})
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	if len(got) != 1 || got[0].ID != -3 {
		t.Fatalf("expected Carlo, got %+v", got)
	}
}

func TestSearchLimitTruncates(t *testing.T) {
	hr, _ := seededRepos()

	limit := 2
	got, err := hr.Search(context.Background(), horses.SearchFilter{Limit: &limit})
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected limit of 2, got %d", len(got))
	}
}

func TestSearchBornBeforeIsStrict(t *testing.T) {
	hr, _ := seededRepos()

	// exacto el día de Wendy: "before" es estricto, no la incluye
	cutoff := time.Date(2012, 12, 12, 0, 0, 0, 0, time.UTC)
	got, err := hr.Search(context.Background(), horses.SearchFilter{BornBefore: &cutoff})
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	for _, h := range got {
		if h.ID == -1 {
			t.Fatalf("born_before should be strict, Wendy included: %+v", got)
		}
	}
}

func TestDeleteReturnsSnapshotThenNotFound(t *testing.T) {
	hr, _ := seededRepos()
	ctx := context.Background()

	h, err := hr.Delete(ctx, -4)
	if err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if h.Name != "Luna" {
		t.Fatalf("expected Luna snapshot, got %+v", h)
	}

	if _, err := hr.GetByID(ctx, -4); !apperr.IsNotFound(err) {
		t.Fatalf("expected not found after delete, got %v", err)
	}
	if _, err := hr.Delete(ctx, -4); !apperr.IsNotFound(err) {
		t.Fatalf("expected not found on second delete, got %v", err)
	}
}
