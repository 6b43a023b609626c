package horses_test

import (
	"context"
	"strings"
	"testing"
	"time"

	"horse-registry/internal/adapters/storage/memory"
	"horse-registry/internal/domain/apperr"
	"horse-registry/internal/domain/horses"
	"horse-registry/internal/domain/owners"
)

func newSeededService(t *testing.T) (*horses.Service, *memory.HorsesRepo) {
	t.Helper()
	or := memory.NewOwnersRepo()
	hr := memory.NewHorsesRepo(or)
	memory.SeedFixtures(hr, or)
	return horses.NewService(hr, owners.NewService(or)), hr
}

func birth(y int, m time.Month, d int) *time.Time {
	t := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	return &t
}

func id(n int64) *int64 { return &n }

func violations(t *testing.T, err error) []string {
	t.Helper()
	if con, ok := err.(*apperr.Conflict); ok {
		return con.Violations
	}
	if val, ok := err.(*apperr.Validation); ok {
		return val.Violations
	}
	t.Fatalf("error carries no violations: %v", err)
	return nil
}

func hasViolation(errs []string, want string) bool {
	for _, e := range errs {
		if e == want {
			return true
		}
	}
	return false
}

func TestAllReturnsSeededHorses(t *testing.T) {
	svc, _ := newSeededService(t)

	all, err := svc.All(context.Background())
	if err != nil {
		t.Fatalf("All: %v", err)
	}
	if len(all) < 4 {
		t.Fatalf("expected at least 4 horses, got %d", len(all))
	}

	found := false
	for _, d := range all {
		if d.ID == -1 && d.Sex == horses.SexFemale {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected Wendy (-1, FEMALE) in %v", all)
	}
}

func TestCreateWithoutDateOfBirthFailsValidation(t *testing.T) {
	svc, _ := newSeededService(t)

	_, err := svc.Create(context.Background(), horses.Horse{Name: "Juan", Sex: horses.SexMale})
	if !apperr.IsValidation(err) {
		t.Fatalf("expected validation error, got %v", err)
	}
	if !hasViolation(violations(t, err), "Horse date of birth is not given") {
		t.Fatalf("missing date-of-birth violation: %v", err)
	}
}

func TestCreateRoundTrip(t *testing.T) {
	svc, _ := newSeededService(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, horses.Horse{
		Name:        "Juan",
		DateOfBirth: birth(2014, 12, 12),
		Sex:         horses.SexMale,
	})
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
	if got.Name != "Juan" || got.Sex != horses.SexMale || !got.DateOfBirth.Equal(*created.DateOfBirth) {
		t.Fatalf("round trip mismatch: %+v", got)
	}
	if got.Description != nil {
		t.Fatalf("expected no description, got %q", *got.Description)
	}
}

func TestChangingSexOfHorseWithChildrenConflicts(t *testing.T) {
	svc, _ := newSeededService(t)

	// Wendy (-1) es madre de Carlo y Luna
	_, err := svc.Update(context.Background(), horses.Horse{
		ID:          -1,
		Name:        "Wendy",
		DateOfBirth: birth(2012, 12, 12),
		Sex:         horses.SexMale,
	})
	if !apperr.IsConflict(err) {
		t.Fatalf("expected conflict, got %v", err)
	}
	if !hasViolation(violations(t, err), "Cannot change sex of a horse that has children") {
		t.Fatalf("missing sex-change violation: %v", err)
	}
}

func TestUpdateDateOfBirthAfterChildConflicts(t *testing.T) {
	svc, _ := newSeededService(t)

	// Carlo nació 2016-04-14; mover a Wendy después de eso rompe la cronología
	_, err := svc.Update(context.Background(), horses.Horse{
		ID:          -1,
		Name:        "Wendy",
		DateOfBirth: birth(2017, 1, 1),
		Sex:         horses.SexFemale,
	})
	if !apperr.IsConflict(err) {
		t.Fatalf("expected conflict, got %v", err)
	}
}

func TestCreateWithMaleMotherConflicts(t *testing.T) {
	svc, _ := newSeededService(t)

	// Hugo (-2) es MALE
	_, err := svc.Create(context.Background(), horses.Horse{
		Name:        "Nuevo",
		DateOfBirth: birth(2020, 1, 1),
		Sex:         horses.SexMale,
		MotherID:    id(-2),
	})
	if !apperr.IsConflict(err) {
		t.Fatalf("expected conflict, got %v", err)
	}
	if !hasViolation(violations(t, err), "Mother cannot be Male") {
		t.Fatalf("missing mother-sex violation: %v", err)
	}
}

func TestUpdateAsOwnFatherConflicts(t *testing.T) {
	svc, _ := newSeededService(t)

	_, err := svc.Update(context.Background(), horses.Horse{
		ID:          -2,
		Name:        "Hugo",
		DateOfBirth: birth(2010, 3, 5),
		Sex:         horses.SexMale,
		FatherID:    id(-2),
	})
	if !apperr.IsConflict(err) {
		t.Fatalf("expected conflict, got %v", err)
	}
	if !hasViolation(violations(t, err), "A horse cannot be its own father") {
		t.Fatalf("missing self-reference violation: %v", err)
	}
}

func TestCreateWithDanglingReferencesAccumulatesConflicts(t *testing.T) {
	svc, _ := newSeededService(t)

	_, err := svc.Create(context.Background(), horses.Horse{
		Name:        "Huerfano",
		DateOfBirth: birth(2020, 1, 1),
		Sex:         horses.SexMale,
		MotherID:    id(999),
		FatherID:    id(998),
		OwnerID:     id(997),
	})
	if !apperr.IsConflict(err) {
		t.Fatalf("expected conflict, got %v", err)
	}
	if got := violations(t, err); len(got) != 3 {
		t.Fatalf("expected 3 accumulated violations, got %v", got)
	}
}

func TestDeleteTwiceReturnsNotFound(t *testing.T) {
	svc, _ := newSeededService(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, horses.Horse{Name: "Temp", DateOfBirth: birth(2019, 5, 5), Sex: horses.SexFemale})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	deleted, err := svc.Delete(ctx, created.ID)
	if err != nil {
		t.Fatalf("first Delete: %v", err)
	}
	if deleted.Name != "Temp" {
		t.Fatalf("expected deleted snapshot, got %+v", deleted)
	}

	_, err = svc.Delete(ctx, created.ID)
	if !apperr.IsNotFound(err) {
		t.Fatalf("expected not found on second delete, got %v", err)
	}
}

func TestDeleteParentLeavesDanglingReference(t *testing.T) {
	svc, _ := newSeededService(t)
	ctx := context.Background()

	// borrar a Hugo deja a Carlo con father_id colgante; la lectura de Carlo
	// ahora es una inconsistencia interna, no un error del caller
	if _, err := svc.Delete(ctx, -2); err != nil {
		t.Fatalf("Delete: %v", err)
	}

	_, err := svc.GetByID(ctx, -3)
	if !apperr.IsFatal(err) {
		t.Fatalf("expected fatal on dangling parent, got %v", err)
	}
}

func TestUpdateUnknownHorseReturnsNotFound(t *testing.T) {
	svc, _ := newSeededService(t)

	_, err := svc.Update(context.Background(), horses.Horse{
		ID:          12345,
		Name:        "Nadie",
		DateOfBirth: birth(2020, 1, 1),
		Sex:         horses.SexMale,
	})
	if !apperr.IsNotFound(err) {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestSearchByNameReturnsCarlo(t *testing.T) {
	svc, _ := newSeededService(t)

	got, err := svc.Search(context.Background(), horses.SearchFilter{Name: "Carlo"})
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("expected exactly Carlo, got %+v", got)
	}

	c := got[0]
	if c.ID != -3 || c.Name != "Carlo" || c.Sex != horses.SexMale {
		t.Fatalf("unexpected horse: %+v", c)
	}
	if c.Description == nil || *c.Description != "Description 2" {
		t.Fatalf("unexpected description: %+v", c.Description)
	}
	if !c.DateOfBirth.Equal(time.Date(2016, 4, 14, 0, 0, 0, 0, time.UTC)) {
		t.Fatalf("unexpected date of birth: %v", c.DateOfBirth)
	}
}

func TestSearchCombinesFilters(t *testing.T) {
	svc, _ := newSeededService(t)

	got, err := svc.Search(context.Background(), horses.SearchFilter{
		Sex:        horses.SexFemale,
		BornBefore: birth(2013, 1, 1),
	})
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	if len(got) != 1 || got[0].ID != -1 {
		t.Fatalf("expected only Wendy, got %+v", got)
	}
}

func TestSearchEmptyResultIsNotAnError(t *testing.T) {
	svc, _ := newSeededService(t)

	got, err := svc.Search(context.Background(), horses.SearchFilter{Name: "zzz"})
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("expected empty result, got %+v", got)
	}
}

func TestGetByIDResolvesOwnerAndDirectParents(t *testing.T) {
	svc, _ := newSeededService(t)

	d, err := svc.GetByID(context.Background(), -3)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if d.Mother == nil || d.Mother.ID != -1 || d.Mother.Name != "Wendy" {
		t.Fatalf("mother not resolved: %+v", d.Mother)
	}
	if d.Father == nil || d.Father.ID != -2 || d.Father.Name != "Hugo" {
		t.Fatalf("father not resolved: %+v", d.Father)
	}

	luna, err := svc.GetByID(context.Background(), -4)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if luna.Owner == nil || luna.Owner.FirstName != "Max" {
		t.Fatalf("owner not resolved: %+v", luna.Owner)
	}
}

func TestListResolvesOwnersBatched(t *testing.T) {
	svc, _ := newSeededService(t)

	all, err := svc.All(context.Background())
	if err != nil {
		t.Fatalf("All: %v", err)
	}
	for _, d := range all {
		if d.OwnerID != nil && d.Owner == nil {
			t.Fatalf("owner %d not resolved for horse %d", *d.OwnerID, d.ID)
		}
		if d.MotherID != nil && d.Mother == nil {
			t.Fatalf("mother not resolved for horse %d", d.ID)
		}
	}
}

func TestCreateConflictSummaryMentionsCreate(t *testing.T) {
	svc, _ := newSeededService(t)

	_, err := svc.Create(context.Background(), horses.Horse{
		Name:        "X",
		DateOfBirth: birth(2020, 1, 1),
		Sex:         horses.SexMale,
		MotherID:    id(999),
	})
	if err == nil || !strings.Contains(err.Error(), "create") {
		t.Fatalf("expected create conflict summary, got %v", err)
	}
}
