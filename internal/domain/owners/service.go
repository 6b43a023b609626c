package owners

import (
	"context"
	"strings"

	"horse-registry/internal/domain/apperr"
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) GetByID(ctx context.Context, id int64) (Owner, error) {
	return s.repo.GetByID(ctx, id)
}

// GetAllByID devuelve un mapa id→Owner y falla con NotFound si falta
// cualquiera de los pedidos.
func (s *Service) GetAllByID(ctx context.Context, ids []int64) (map[int64]Owner, error) {
	found, err := s.repo.GetAllByID(ctx, ids)
	if err != nil {
		return nil, err
	}

	out := make(map[int64]Owner, len(found))
	for _, o := range found {
		out[o.ID] = o
	}
	for _, id := range ids {
		if _, ok := out[id]; !ok {
			return nil, &apperr.NotFound{Entity: "Owner", ID: id}
		}
	}
	return out, nil
}

func (s *Service) Search(ctx context.Context, f SearchFilter) ([]Owner, error) {
	return s.repo.Search(ctx, f)
}

// Create valida el candidato acumulando todas las violaciones y recién
// después persiste.
func (s *Service) Create(ctx context.Context, in CreateInput) (Owner, error) {
	var errs []string

	if in.FirstName == "" {
		errs = append(errs, "Owner first name is not given")
	} else {
		if strings.TrimSpace(in.FirstName) == "" {
			errs = append(errs, "Owner first name is given but blank")
		}
		if len([]rune(in.FirstName)) > 255 {
			errs = append(errs, "Owner first name too long: longer than 255 characters")
		}
	}

	if in.LastName == "" {
		errs = append(errs, "Owner last name is not given")
	} else {
		if strings.TrimSpace(in.LastName) == "" {
			errs = append(errs, "Owner last name is given but blank")
		}
		if len([]rune(in.LastName)) > 255 {
			errs = append(errs, "Owner last name too long: longer than 255 characters")
		}
	}

	if in.Email != nil {
		if strings.TrimSpace(*in.Email) == "" {
			errs = append(errs, "Owner email is given but blank")
		}
		if len([]rune(*in.Email)) > 255 {
			errs = append(errs, "Owner email too long: longer than 255 characters")
		}
	}

	if len(errs) > 0 {
		return Owner{}, &apperr.Validation{Summary: "Validation of owner for create failed", Violations: errs}
	}

	return s.repo.Create(ctx, in)
}
