package owners

import "context"

// Repository es el contrato del store de dueños. GetByID devuelve
// *apperr.NotFound si el ID no existe; GetAllByID devuelve solo los que
// encontró (la falta la detecta el service).
type Repository interface {
	GetByID(ctx context.Context, id int64) (Owner, error)
	GetAllByID(ctx context.Context, ids []int64) ([]Owner, error)
	Search(ctx context.Context, f SearchFilter) ([]Owner, error)
	Create(ctx context.Context, in CreateInput) (Owner, error)
}
