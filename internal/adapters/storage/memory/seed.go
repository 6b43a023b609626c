package memory

import (
	"time"

	"horse-registry/internal/domain/horses"
	"horse-registry/internal/domain/owners"
)

// SeedFixtures carga el set canónico de datos de desarrollo/test: IDs
// negativos para no chocar con los generados. Wendy (-1) tiene hijos, lo que
// habilita los escenarios de cambio de sexo y de cronología.
func SeedFixtures(hr *HorsesRepo, or *OwnersRepo) {
	or.Seed(owners.Owner{ID: -1, FirstName: "Anna", LastName: "Berger"})
	or.Seed(owners.Owner{ID: -2, FirstName: "Max", LastName: "Huber", Email: strPtr("max.huber@example.com")})

	hr.Seed(horses.Horse{
		ID:          -1,
		Name:        "Wendy",
		Description: strPtr("The famous one!"),
		DateOfBirth: date(2012, 12, 12),
		Sex:         horses.SexFemale,
		OwnerID:     int64Ptr(-1),
	})
	hr.Seed(horses.Horse{
		ID:          -2,
		Name:        "Hugo",
		DateOfBirth: date(2010, 3, 5),
		Sex:         horses.SexMale,
	})
	hr.Seed(horses.Horse{
		ID:          -3,
		Name:        "Carlo",
		Description: strPtr("Description 2"),
		DateOfBirth: date(2016, 4, 14),
		Sex:         horses.SexMale,
		MotherID:    int64Ptr(-1),
		FatherID:    int64Ptr(-2),
	})
	hr.Seed(horses.Horse{
		ID:          -4,
		Name:        "Luna",
		DateOfBirth: date(2018, 6, 1),
		Sex:         horses.SexFemale,
		MotherID:    int64Ptr(-1),
		FatherID:    int64Ptr(-2),
		OwnerID:     int64Ptr(-2),
	})
}

func date(y int, m time.Month, d int) *time.Time {
	t := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	return &t
}

func strPtr(s string) *string { return &s }

func int64Ptr(n int64) *int64 { return &n }
