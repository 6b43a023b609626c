package horses

import (
	"time"

	"horse-registry/internal/domain/owners"
)

// Sex define el sexo del caballo.
// @Enum MALE, FEMALE
type Sex string

const (
	SexMale   Sex = "MALE"
	SexFemale Sex = "FEMALE"
)

// ParseSex acepta el valor en cualquier casing. "" queda en "" para que
// el validador lo reporte como faltante.
func ParseSex(s string) (Sex, bool) {
	switch Sex(s) {
	case SexMale, SexFemale:
		return Sex(s), true
	case "":
		return "", true
	default:
		return "", false
	}
}

// Horse es el nodo de pedigree: enlaces opcionales a madre, padre y dueño.
// El store no garantiza integridad referencial; el core revalida en cada escritura.
type Horse struct {
	ID          int64
	Name        string
	Description *string // nil = sin descripción
	DateOfBirth *time.Time
	Sex         Sex
	OwnerID     *int64
	MotherID    *int64
	FatherID    *int64
}

// SearchFilter combina criterios con AND implícito; substrings case-insensitive.
type SearchFilter struct {
	Name        string
	Description string
	OwnerName   string // matchea "first last" del dueño
	BornBefore  *time.Time
	Sex         Sex // "" = cualquiera
	Limit       *int
}

// ParentRef es la vista de un padre/madre resuelto: una sola generación,
// sin expandir abuelos.
type ParentRef struct {
	ID          int64
	Name        string
	DateOfBirth *time.Time
	Sex         Sex
}

// Detail es la vista enriquecida: dueño y padres directos resueltos.
type Detail struct {
	Horse
	Owner  *owners.Owner
	Mother *ParentRef
	Father *ParentRef
}
