package memory

import (
	"context"
	"sort"
	"strings"
	"sync"

	"horse-registry/internal/domain/apperr"
	"horse-registry/internal/domain/horses"
)

type HorsesRepo struct {
	mu     sync.RWMutex
	byID   map[int64]horses.Horse
	nextID int64

	owners *OwnersRepo // para resolver el filtro owner_name
}

func NewHorsesRepo(owners *OwnersRepo) *HorsesRepo {
	return &HorsesRepo{
		byID:   make(map[int64]horses.Horse),
		nextID: 1,
		owners: owners,
	}
}

// Seed inserta con ID explícito (las fixtures usan IDs negativos, como los
// scripts de datos de test). No toca la secuencia de IDs generados.
func (r *HorsesRepo) Seed(h horses.Horse) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.byID[h.ID] = h
	if h.ID >= r.nextID {
		r.nextID = h.ID + 1
	}
}

func (r *HorsesRepo) GetAll(ctx context.Context) ([]horses.Horse, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]horses.Horse, 0, len(r.byID))
	for _, h := range r.byID {
		out = append(out, h)
	}
	sortByID(out)
	return out, nil
}

func (r *HorsesRepo) GetByID(ctx context.Context, id int64) (horses.Horse, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	h, ok := r.byID[id]
	if !ok {
		return horses.Horse{}, &apperr.NotFound{Entity: "Horse", ID: id}
	}
	return h, nil
}

func (r *HorsesRepo) Search(ctx context.Context, f horses.SearchFilter) ([]horses.Horse, error) {
	r.mu.RLock()
	candidates := make([]horses.Horse, 0, len(r.byID))
	for _, h := range r.byID {
		candidates = append(candidates, h)
	}
	r.mu.RUnlock()
	sortByID(candidates)

	out := make([]horses.Horse, 0)
	for _, h := range candidates {
		if f.Limit != nil && len(out) >= *f.Limit {
			break
		}
		if f.Name != "" && !containsFold(h.Name, f.Name) {
			continue
		}
		if f.Description != "" && (h.Description == nil || !containsFold(*h.Description, f.Description)) {
			continue
		}
		if f.OwnerName != "" && !r.ownerNameMatches(ctx, h.OwnerID, f.OwnerName) {
			continue
		}
		if f.BornBefore != nil && (h.DateOfBirth == nil || !h.DateOfBirth.Before(*f.BornBefore)) {
			continue
		}
		if f.Sex != "" && h.Sex != f.Sex {
			continue
		}
		out = append(out, h)
	}
	return out, nil
}

func (r *HorsesRepo) Create(ctx context.Context, h horses.Horse) (horses.Horse, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	h.ID = r.nextID
	r.nextID++
	r.byID[h.ID] = h
	return h, nil
}

func (r *HorsesRepo) Update(ctx context.Context, h horses.Horse) (horses.Horse, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byID[h.ID]; !ok {
		return horses.Horse{}, &apperr.NotFound{Entity: "Horse", ID: h.ID}
	}
	r.byID[h.ID] = h
	return h, nil
}

func (r *HorsesRepo) Delete(ctx context.Context, id int64) (horses.Horse, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	h, ok := r.byID[id]
	if !ok {
		return horses.Horse{}, &apperr.NotFound{Entity: "Horse", ID: id}
	}
	delete(r.byID, id)
	return h, nil
}

func (r *HorsesRepo) GetChildren(ctx context.Context, id int64) ([]horses.Horse, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]horses.Horse, 0)
	for _, h := range r.byID {
		if (h.MotherID != nil && *h.MotherID == id) || (h.FatherID != nil && *h.FatherID == id) {
			out = append(out, h)
		}
	}
	sortByID(out)
	return out, nil
}

func (r *HorsesRepo) ownerNameMatches(ctx context.Context, ownerID *int64, sub string) bool {
	if ownerID == nil || r.owners == nil {
		return false
	}
	o, err := r.owners.GetByID(ctx, *ownerID)
	if err != nil {
		return false
	}
	return containsFold(o.FirstName+" "+o.LastName, sub)
}

func sortByID(hs []horses.Horse) {
	sort.Slice(hs, func(i, j int) bool { return hs[i].ID < hs[j].ID })
}

func containsFold(s, sub string) bool {
	return strings.Contains(strings.ToUpper(s), strings.ToUpper(sub))
}
