package horses

import (
	"fmt"
	"strings"
	"time"
)

// Chequeos puros sobre un candidato a Horse. Nunca cortan en el primer error:
// cada pasada acumula sus violaciones y el service arma un solo reporte.

const (
	maxNameLen        = 255
	maxDescriptionLen = 4095
)

// validateFields chequea el registro en aislamiento (pasada de validación).
func validateFields(h Horse, today time.Time) []string {
	var errs []string

	if h.Name == "" {
		errs = append(errs, "Horse name is not given")
	} else {
		if strings.TrimSpace(h.Name) == "" {
			errs = append(errs, "Horse name is given but blank")
		}
		if len([]rune(h.Name)) > maxNameLen {
			errs = append(errs, "Horse name too long: longer than 255 characters")
		}
	}

	if h.Description != nil {
		if strings.TrimSpace(*h.Description) == "" {
			errs = append(errs, "Horse description is given but blank")
		}
		if len([]rune(*h.Description)) > maxDescriptionLen {
			errs = append(errs, "Horse description too long: longer than 4095 characters")
		}
	}

	if h.Sex == "" {
		errs = append(errs, "Horse sex is not given")
	}

	if h.DateOfBirth == nil {
		errs = append(errs, "Horse date of birth is not given")
	} else if h.DateOfBirth.After(today) {
		errs = append(errs, "Given date of birth is in the future")
	}

	return errs
}

func validateForCreate(h Horse, today time.Time) []string {
	return validateFields(h, today)
}

func validateForUpdate(h Horse, today time.Time) []string {
	var errs []string
	if h.ID == 0 {
		errs = append(errs, "No ID given")
	}
	return append(errs, validateFields(h, today)...)
}

// checkParents chequea sexo, cronología y auto-referencia contra la madre y el
// padre ya resueltos (pasada de conflicto). nil = referencia ausente o no resuelta;
// la existencia la reporta el service por separado.
func checkParents(h Horse, mother, father *Horse) []string {
	var errs []string

	if h.MotherID != nil && mother != nil {
		if mother.Sex != SexFemale {
			errs = append(errs, "Mother cannot be Male")
		}
		if mother.DateOfBirth != nil && h.DateOfBirth != nil && mother.DateOfBirth.After(*h.DateOfBirth) {
			errs = append(errs, "Mother cannot be born after child")
		}
		if h.ID == *h.MotherID {
			errs = append(errs, "A horse cannot be its own mother")
		}
	}

	if h.FatherID != nil && father != nil {
		if father.Sex != SexMale {
			errs = append(errs, "Father cannot be Female")
		}
		if father.DateOfBirth != nil && h.DateOfBirth != nil && father.DateOfBirth.After(*h.DateOfBirth) {
			errs = append(errs, "Father cannot be born after child")
		}
		if h.ID == *h.FatherID {
			errs = append(errs, "A horse cannot be its own father")
		}
	}

	return errs
}

// checkChildren corre solo en update: un cambio de sexo con hijos rompería el
// vínculo madre/padre de esos hijos, y la nueva fecha no puede quedar después
// de la de ningún hijo.
func checkChildren(h Horse, current Horse, children []Horse) []string {
	if len(children) == 0 {
		return nil
	}

	var errs []string
	if h.Sex != current.Sex {
		errs = append(errs, "Cannot change sex of a horse that has children")
	}
	if h.DateOfBirth != nil {
		for _, c := range children {
			if c.DateOfBirth != nil && h.DateOfBirth.After(*c.DateOfBirth) {
				errs = append(errs, fmt.Sprintf("Horse cannot be born after its child %q", c.Name))
				break
			}
		}
	}
	return errs
}
