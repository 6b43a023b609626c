package memory

import (
	"context"
	"sort"
	"sync"

	"horse-registry/internal/domain/apperr"
	"horse-registry/internal/domain/owners"
)

type OwnersRepo struct {
	mu     sync.RWMutex
	byID   map[int64]owners.Owner
	nextID int64
}

func NewOwnersRepo() *OwnersRepo {
	return &OwnersRepo{
		byID:   make(map[int64]owners.Owner),
		nextID: 1,
	}
}

// Seed inserta con ID explícito, igual que HorsesRepo.Seed.
func (r *OwnersRepo) Seed(o owners.Owner) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.byID[o.ID] = o
	if o.ID >= r.nextID {
		r.nextID = o.ID + 1
	}
}

func (r *OwnersRepo) GetByID(ctx context.Context, id int64) (owners.Owner, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	o, ok := r.byID[id]
	if !ok {
		return owners.Owner{}, &apperr.NotFound{Entity: "Owner", ID: id}
	}
	return o, nil
}

func (r *OwnersRepo) GetAllByID(ctx context.Context, ids []int64) ([]owners.Owner, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]owners.Owner, 0, len(ids))
	for _, id := range ids {
		if o, ok := r.byID[id]; ok {
			out = append(out, o)
		}
	}
	return out, nil
}

func (r *OwnersRepo) Search(ctx context.Context, f owners.SearchFilter) ([]owners.Owner, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	all := make([]owners.Owner, 0, len(r.byID))
	for _, o := range r.byID {
		all = append(all, o)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].ID < all[j].ID })

	out := make([]owners.Owner, 0)
	for _, o := range all {
		if f.MaxAmount != nil && len(out) >= *f.MaxAmount {
			break
		}
		if f.Name != "" && !containsFold(o.FirstName+" "+o.LastName, f.Name) {
			continue
		}
		out = append(out, o)
	}
	return out, nil
}

func (r *OwnersRepo) Create(ctx context.Context, in owners.CreateInput) (owners.Owner, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	o := owners.Owner{
		ID:        r.nextID,
		FirstName: in.FirstName,
		LastName:  in.LastName,
		Email:     in.Email,
	}
	r.nextID++
	r.byID[o.ID] = o
	return o, nil
}
