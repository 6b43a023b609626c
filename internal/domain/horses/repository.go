package horses

import "context"

// Repository es el contrato del store de caballos. Los ID los asigna el store
// en Create. GetByID/Update/Delete devuelven *apperr.NotFound si el ID no existe.
type Repository interface {
	GetAll(ctx context.Context) ([]Horse, error)
	GetByID(ctx context.Context, id int64) (Horse, error)
	Search(ctx context.Context, f SearchFilter) ([]Horse, error)
	Create(ctx context.Context, h Horse) (Horse, error)
	Update(ctx context.Context, h Horse) (Horse, error)
	// Delete devuelve el snapshot previo al borrado.
	Delete(ctx context.Context, id int64) (Horse, error)
	// GetChildren devuelve todos los caballos cuyo mother_id o father_id es id.
	GetChildren(ctx context.Context, id int64) ([]Horse, error)
}
