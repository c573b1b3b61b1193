package publish

import (
	"context"

	domform "github.com/kailas-cloud/formdex/internal/domain/form"
	"github.com/kailas-cloud/formdex/internal/domain/gravity"
)

// RemoteForm is a summary of a form that exists on the remote site.
type RemoteForm struct {
	ID    int    `json:"id"`
	Title string `json:"title"`
}

// Client defines the transport contract for the remote form-plugin API.
// Implementations treat the payload as a snapshot for the duration of one
// call and never mutate it.
type Client interface {
	ListForms(ctx context.Context) ([]RemoteForm, error)
	CreateForm(ctx context.Context, payload gravity.Form) (RemoteForm, error)
	UpdateForm(ctx context.Context, id int, payload gravity.Form) (RemoteForm, error)
	TestConnection(ctx context.Context) error
}

// Repository is the slice of form storage the publish flow needs.
type Repository interface {
	Get(ctx context.Context, uid string) (domform.Form, error)
	Update(ctx context.Context, f domform.Form) error
}
