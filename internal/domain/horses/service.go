package horses

import (
	"context"
	"fmt"
	"time"

	"horse-registry/internal/domain/apperr"
	"horse-registry/internal/domain/owners"
)

// Service es el único componente que combina estado del store con las reglas
// del validador y decide el resultado final (validación vs conflicto vs not-found).
type Service struct {
	repo      Repository
	ownersSvc *owners.Service
	now       func() time.Time
}

func NewService(repo Repository, ownersSvc *owners.Service) *Service {
	return &Service{
		repo:      repo,
		ownersSvc: ownersSvc,
		now:       time.Now,
	}
}

// Create valida campos (422), luego referencias y reglas de pedigree (409,
// lista completa acumulada), persiste y devuelve la vista detalle.
func (s *Service) Create(ctx context.Context, h Horse) (Detail, error) {
	if errs := validateForCreate(h, s.now()); len(errs) > 0 {
		return Detail{}, &apperr.Validation{Summary: "Validation of horse for create failed", Violations: errs}
	}

	conflicts, mother, father, err := s.resolveReferences(ctx, h)
	if err != nil {
		return Detail{}, err
	}
	conflicts = append(conflicts, checkParents(h, mother, father)...)
	if len(conflicts) > 0 {
		return Detail{}, &apperr.Conflict{Summary: "Validation of horse for create failed", Violations: conflicts}
	}

	created, err := s.repo.Create(ctx, h)
	if err != nil {
		return Detail{}, err
	}
	return s.toDetail(ctx, created)
}

// Update reemplaza los campos mutables del caballo con ID h.ID. Además de los
// chequeos de create corre la pasada de consistencia contra los hijos actuales.
func (s *Service) Update(ctx context.Context, h Horse) (Detail, error) {
	if errs := validateForUpdate(h, s.now()); len(errs) > 0 {
		return Detail{}, &apperr.Validation{Summary: "Validation of horse for update failed", Violations: errs}
	}

	// NotFound del target primario corta acá, antes de acumular conflictos.
	current, err := s.repo.GetByID(ctx, h.ID)
	if err != nil {
		return Detail{}, err
	}

	conflicts, mother, father, err := s.resolveReferences(ctx, h)
	if err != nil {
		return Detail{}, err
	}
	conflicts = append(conflicts, checkParents(h, mother, father)...)

	children, err := s.repo.GetChildren(ctx, h.ID)
	if err != nil {
		return Detail{}, err
	}
	conflicts = append(conflicts, checkChildren(h, current, children)...)

	if len(conflicts) > 0 {
		return Detail{}, &apperr.Conflict{Summary: "Validation of horse for update failed", Violations: conflicts}
	}

	updated, err := s.repo.Update(ctx, h)
	if err != nil {
		return Detail{}, err
	}
	return s.toDetail(ctx, updated)
}

// Delete borra y devuelve el detalle del snapshot borrado. No cascadea:
// los hijos conservan la referencia colgante.
func (s *Service) Delete(ctx context.Context, id int64) (Detail, error) {
	deleted, err := s.repo.Delete(ctx, id)
	if err != nil {
		return Detail{}, err
	}
	return s.toDetail(ctx, deleted)
}

func (s *Service) GetByID(ctx context.Context, id int64) (Detail, error) {
	h, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return Detail{}, err
	}
	return s.toDetail(ctx, h)
}

func (s *Service) All(ctx context.Context) ([]Detail, error) {
	hs, err := s.repo.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	return s.toList(ctx, hs)
}

// Search nunca falla por resultado vacío: devuelve slice vacío.
func (s *Service) Search(ctx context.Context, f SearchFilter) ([]Detail, error) {
	hs, err := s.repo.Search(ctx, f)
	if err != nil {
		return nil, err
	}
	return s.toList(ctx, hs)
}

// resolveReferences busca madre, padre y dueño. Referencias que no resuelven
// se acumulan como conflictos en vez de cortar, para que un solo request
// muestre todos los problemas.
func (s *Service) resolveReferences(ctx context.Context, h Horse) (conflicts []string, mother, father *Horse, err error) {
	if h.MotherID != nil {
		m, err := s.repo.GetByID(ctx, *h.MotherID)
		switch {
		case err == nil:
			mother = &m
		case apperr.IsNotFound(err):
			conflicts = append(conflicts, fmt.Sprintf("Mother horse with ID %d does not exist", *h.MotherID))
		default:
			return nil, nil, nil, err
		}
	}

	if h.FatherID != nil {
		f, err := s.repo.GetByID(ctx, *h.FatherID)
		switch {
		case err == nil:
			father = &f
		case apperr.IsNotFound(err):
			conflicts = append(conflicts, fmt.Sprintf("Father horse with ID %d does not exist", *h.FatherID))
		default:
			return nil, nil, nil, err
		}
	}

	if h.OwnerID != nil {
		_, err := s.ownersSvc.GetByID(ctx, *h.OwnerID)
		switch {
		case err == nil:
		case apperr.IsNotFound(err):
			conflicts = append(conflicts, fmt.Sprintf("Owner with ID %d does not exist", *h.OwnerID))
		default:
			return nil, nil, nil, err
		}
	}

	return conflicts, mother, father, nil
}

// toDetail resuelve dueño y padres directos (una generación, sin abuelos).
// Una referencia persistida que no resuelve es corrupción del store, no error
// del caller: sale como Fatal.
func (s *Service) toDetail(ctx context.Context, h Horse) (Detail, error) {
	d := Detail{Horse: h}

	if h.OwnerID != nil {
		o, err := s.ownersSvc.GetByID(ctx, *h.OwnerID)
		if err != nil {
			if apperr.IsNotFound(err) {
				return Detail{}, &apperr.Fatal{Msg: fmt.Sprintf("Owner %d referenced by horse %d not found", *h.OwnerID, h.ID), Err: err}
			}
			return Detail{}, err
		}
		d.Owner = &o
	}

	var err error
	if d.Mother, err = s.parentRef(ctx, h, h.MotherID); err != nil {
		return Detail{}, err
	}
	if d.Father, err = s.parentRef(ctx, h, h.FatherID); err != nil {
		return Detail{}, err
	}
	return d, nil
}

func (s *Service) parentRef(ctx context.Context, child Horse, id *int64) (*ParentRef, error) {
	if id == nil {
		return nil, nil
	}
	p, err := s.repo.GetByID(ctx, *id)
	if err != nil {
		if apperr.IsNotFound(err) {
			return nil, &apperr.Fatal{Msg: fmt.Sprintf("Horse %d, that is already persisted, refers to non-existing parent %d", child.ID, *id), Err: err}
		}
		return nil, err
	}
	return &ParentRef{ID: p.ID, Name: p.Name, DateOfBirth: p.DateOfBirth, Sex: p.Sex}, nil
}

// toList arma las vistas de listado con lookup de dueños batcheado (un solo
// GetAllByID en vez de N+1).
func (s *Service) toList(ctx context.Context, hs []Horse) ([]Detail, error) {
	ownerIDs := make([]int64, 0, len(hs))
	seen := make(map[int64]struct{})
	for _, h := range hs {
		if h.OwnerID == nil {
			continue
		}
		if _, ok := seen[*h.OwnerID]; ok {
			continue
		}
		seen[*h.OwnerID] = struct{}{}
		ownerIDs = append(ownerIDs, *h.OwnerID)
	}

	ownerMap, err := s.ownersSvc.GetAllByID(ctx, ownerIDs)
	if err != nil {
		if apperr.IsNotFound(err) {
			return nil, &apperr.Fatal{Msg: "Horse, that is already persisted, refers to non-existing owner", Err: err}
		}
		return nil, err
	}

	out := make([]Detail, 0, len(hs))
	for _, h := range hs {
		d := Detail{Horse: h}
		if h.OwnerID != nil {
			o := ownerMap[*h.OwnerID]
			d.Owner = &o
		}
		if d.Mother, err = s.parentRef(ctx, h, h.MotherID); err != nil {
			return nil, err
		}
		if d.Father, err = s.parentRef(ctx, h, h.FatherID); err != nil {
			return nil, err
		}
		out = append(out, d)
	}
	return out, nil
}
