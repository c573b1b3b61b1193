package form

import (
	"context"

	domform "github.com/kailas-cloud/formdex/internal/domain/form"
)

// Repository defines the storage contract for forms.
type Repository interface {
	Create(ctx context.Context, f domform.Form) error
	Get(ctx context.Context, uid string) (domform.Form, error)
	List(ctx context.Context) ([]domform.Form, error)
	Update(ctx context.Context, f domform.Form) error
	Delete(ctx context.Context, uid string) error
}
