package horses

import (
	"strings"
	"testing"
	"time"
)

var today = time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)

func dob(y int, m time.Month, d int) *time.Time {
	t := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	return &t
}

func strPtr(s string) *string { return &s }

func int64Ptr(n int64) *int64 { return &n }

func assertContains(t *testing.T, errs []string, want string) {
	t.Helper()
	for _, e := range errs {
		if e == want {
			return
		}
	}
	t.Fatalf("expected violation %q, got %v", want, errs)
}

func TestValidateFields_EmptyHorse(t *testing.T) {
	errs := validateFields(Horse{}, today)

	assertContains(t, errs, "Horse name is not given")
	assertContains(t, errs, "Horse sex is not given")
	assertContains(t, errs, "Horse date of birth is not given")
	if len(errs) != 3 {
		t.Fatalf("expected 3 violations, got %v", errs)
	}
}

func TestValidateFields_BlankAndOversized(t *testing.T) {
	h := Horse{
		Name:        "   ",
		Description: strPtr(" "),
		Sex:         SexMale,
		DateOfBirth: dob(2020, 1, 1),
	}
	errs := validateFields(h, today)
	assertContains(t, errs, "Horse name is given but blank")
	assertContains(t, errs, "Horse description is given but blank")

	h = Horse{
		Name:        strings.Repeat("a", 256),
		Description: strPtr(strings.Repeat("b", 4096)),
		Sex:         SexFemale,
		DateOfBirth: dob(2020, 1, 1),
	}
	errs = validateFields(h, today)
	assertContains(t, errs, "Horse name too long: longer than 255 characters")
	assertContains(t, errs, "Horse description too long: longer than 4095 characters")
}

func TestValidateFields_FutureDateOfBirth(t *testing.T) {
	h := Horse{Name: "Juan", Sex: SexMale, DateOfBirth: dob(2030, 1, 1)}
	assertContains(t, validateFields(h, today), "Given date of birth is in the future")
}

func TestValidateFields_ValidHorse(t *testing.T) {
	h := Horse{Name: "Juan", Sex: SexMale, DateOfBirth: dob(2014, 12, 12)}
	if errs := validateFields(h, today); len(errs) != 0 {
		t.Fatalf("expected no violations, got %v", errs)
	}
}

func TestValidateForUpdate_RequiresID(t *testing.T) {
	h := Horse{Name: "Juan", Sex: SexMale, DateOfBirth: dob(2014, 12, 12)}
	assertContains(t, validateForUpdate(h, today), "No ID given")
}

func TestCheckParents_MotherRules(t *testing.T) {
	child := Horse{ID: 10, DateOfBirth: dob(2015, 1, 1), MotherID: int64Ptr(5)}

	maleMother := &Horse{ID: 5, Sex: SexMale, DateOfBirth: dob(2010, 1, 1)}
	assertContains(t, checkParents(child, maleMother, nil), "Mother cannot be Male")

	lateMother := &Horse{ID: 5, Sex: SexFemale, DateOfBirth: dob(2016, 1, 1)}
	assertContains(t, checkParents(child, lateMother, nil), "Mother cannot be born after child")

	self := child
	self.MotherID = int64Ptr(10)
	assertContains(t, checkParents(self, &Horse{ID: 10, Sex: SexFemale, DateOfBirth: dob(2015, 1, 1)}, nil),
		"A horse cannot be its own mother")
}

func TestCheckParents_FatherRules(t *testing.T) {
	child := Horse{ID: 10, DateOfBirth: dob(2015, 1, 1), FatherID: int64Ptr(6)}

	femaleFather := &Horse{ID: 6, Sex: SexFemale, DateOfBirth: dob(2010, 1, 1)}
	assertContains(t, checkParents(child, nil, femaleFather), "Father cannot be Female")

	lateFather := &Horse{ID: 6, Sex: SexMale, DateOfBirth: dob(2016, 1, 1)}
	assertContains(t, checkParents(child, nil, lateFather), "Father cannot be born after child")

	self := child
	self.FatherID = int64Ptr(10)
	assertContains(t, checkParents(self, nil, &Horse{ID: 10, Sex: SexMale, DateOfBirth: dob(2015, 1, 1)}),
		"A horse cannot be its own father")
}

func TestCheckParents_AccumulatesAllViolations(t *testing.T) {
	child := Horse{ID: 10, DateOfBirth: dob(2015, 1, 1), MotherID: int64Ptr(5), FatherID: int64Ptr(6)}
	mother := &Horse{ID: 5, Sex: SexMale, DateOfBirth: dob(2016, 1, 1)}
	father := &Horse{ID: 6, Sex: SexFemale, DateOfBirth: dob(2016, 1, 1)}

	errs := checkParents(child, mother, father)
	if len(errs) != 4 {
		t.Fatalf("expected 4 violations, got %v", errs)
	}
}

func TestCheckParents_ValidParents(t *testing.T) {
	child := Horse{ID: 10, DateOfBirth: dob(2015, 1, 1), MotherID: int64Ptr(5), FatherID: int64Ptr(6)}
	mother := &Horse{ID: 5, Sex: SexFemale, DateOfBirth: dob(2010, 1, 1)}
	father := &Horse{ID: 6, Sex: SexMale, DateOfBirth: dob(2009, 1, 1)}

	if errs := checkParents(child, mother, father); len(errs) != 0 {
		t.Fatalf("expected no violations, got %v", errs)
	}
}

func TestCheckChildren_SexChange(t *testing.T) {
	current := Horse{ID: 1, Sex: SexFemale, DateOfBirth: dob(2012, 12, 12)}
	updated := current
	updated.Sex = SexMale
	children := []Horse{{ID: 2, Name: "Carlo", DateOfBirth: dob(2016, 4, 14)}}

	assertContains(t, checkChildren(updated, current, children),
		"Cannot change sex of a horse that has children")
}

func TestCheckChildren_BornAfterChild(t *testing.T) {
	current := Horse{ID: 1, Sex: SexFemale, DateOfBirth: dob(2012, 12, 12)}
	updated := current
	updated.DateOfBirth = dob(2017, 1, 1)
	children := []Horse{{ID: 2, Name: "Carlo", DateOfBirth: dob(2016, 4, 14)}}

	errs := checkChildren(updated, current, children)
	if len(errs) != 1 || !strings.Contains(errs[0], "cannot be born after its child") {
		t.Fatalf("expected chronology violation, got %v", errs)
	}
}

func TestCheckChildren_NoChildrenNoChecks(t *testing.T) {
	current := Horse{ID: 1, Sex: SexFemale, DateOfBirth: dob(2012, 12, 12)}
	updated := current
	updated.Sex = SexMale
	updated.DateOfBirth = dob(2025, 1, 1)

	if errs := checkChildren(updated, current, nil); errs != nil {
		t.Fatalf("expected no violations without children, got %v", errs)
	}
}
