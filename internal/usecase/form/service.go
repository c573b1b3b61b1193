// Package form implements the form lifecycle and field mutation use cases.
package form

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/kailas-cloud/formdex/internal/domain"
	domform "github.com/kailas-cloud/formdex/internal/domain/form"
	"github.com/kailas-cloud/formdex/internal/domain/form/kind"
)

// Service handles stored-form operations. Each mutation loads the form,
// applies the engine operation on its own copy and stores the result, so a
// failed operation never leaves a partially mutated form behind.
type Service struct {
	repo Repository
}

// New creates a form service.
func New(repo Repository) *Service {
	return &Service{repo: repo}
}

// Create builds a new form with global defaults and stores it.
func (s *Service) Create(ctx context.Context, title string) (domform.Form, error) {
	f := domform.New(title)
	if err := s.repo.Create(ctx, f); err != nil {
		return domform.Form{}, fmt.Errorf("create form: %w", err)
	}
	return f, nil
}

// Get retrieves a stored form by uid.
func (s *Service) Get(ctx context.Context, uid string) (domform.Form, error) {
	f, err := s.repo.Get(ctx, uid)
	if err != nil {
		return domform.Form{}, fmt.Errorf("get form: %w", err)
	}
	return f, nil
}

// List returns all stored forms.
func (s *Service) List(ctx context.Context) ([]domform.Form, error) {
	forms, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list forms: %w", err)
	}
	return forms, nil
}

// Save validates and persists a caller-edited form. An invalid form fails
// with a ValidationError carrying every violation; nothing is written.
func (s *Service) Save(ctx context.Context, f domform.Form) (domform.Form, error) {
	if msgs := f.Validate(); len(msgs) > 0 {
		return domform.Form{}, fmt.Errorf("save form: %w", domain.NewValidationError(msgs))
	}
	if err := s.repo.Update(ctx, f); err != nil {
		return domform.Form{}, fmt.Errorf("save form: %w", err)
	}
	return f, nil
}

// Delete removes a stored form.
func (s *Service) Delete(ctx context.Context, uid string) error {
	if err := s.repo.Delete(ctx, uid); err != nil {
		return fmt.Errorf("delete form: %w", err)
	}
	return nil
}

// Validate runs the structural validator against a stored form and returns
// the collected messages (empty = valid).
func (s *Service) Validate(ctx context.Context, uid string) ([]string, error) {
	f, err := s.repo.Get(ctx, uid)
	if err != nil {
		return nil, fmt.Errorf("validate form: %w", err)
	}
	return f.Validate(), nil
}

// Export serializes a stored form to its document representation.
func (s *Service) Export(ctx context.Context, uid string) ([]byte, error) {
	f, err := s.repo.Get(ctx, uid)
	if err != nil {
		return nil, fmt.Errorf("export form: %w", err)
	}
	doc, err := domform.Encode(&f)
	if err != nil {
		return nil, fmt.Errorf("export form: %w", err)
	}
	return doc, nil
}

// Import decodes a form document and stores it under a fresh uid. The
// remote id is cleared: an imported form has not been published from here.
func (s *Service) Import(ctx context.Context, doc []byte) (domform.Form, error) {
	f, err := domform.Decode(doc)
	if err != nil {
		return domform.Form{}, fmt.Errorf("import form: %w", err)
	}

	f.UID = uuid.NewString()
	f.ID = 0
	f.EnsureDefaults()

	if err := s.repo.Create(ctx, f); err != nil {
		return domform.Form{}, fmt.Errorf("import form: %w", err)
	}
	return f, nil
}

// AddField appends or inserts a new field of kind k and persists the form.
// A negative position appends.
func (s *Service) AddField(ctx context.Context, uid string, k kind.Kind, position int) (domform.Form, error) {
	if !k.IsValid() {
		return domform.Form{}, fmt.Errorf("add field: %w: %q", domain.ErrUnknownKind, k)
	}

	f, err := s.repo.Get(ctx, uid)
	if err != nil {
		return domform.Form{}, fmt.Errorf("add field: %w", err)
	}

	f.AddField(k, position)

	if err := s.repo.Update(ctx, f); err != nil {
		return domform.Form{}, fmt.Errorf("add field: %w", err)
	}
	return f, nil
}

// RemoveField removes a field by id and persists the form.
func (s *Service) RemoveField(ctx context.Context, uid string, fieldID int) (domform.Form, error) {
	return s.mutate(ctx, uid, "remove field", func(f *domform.Form) error {
		return f.RemoveField(fieldID)
	})
}

// DuplicateField clones a field by id and persists the form.
func (s *Service) DuplicateField(ctx context.Context, uid string, fieldID int) (domform.Form, error) {
	return s.mutate(ctx, uid, "duplicate field", func(f *domform.Form) error {
		_, err := f.DuplicateField(fieldID)
		return err
	})
}

// MoveFieldUp swaps a field with its predecessor and persists the form.
func (s *Service) MoveFieldUp(ctx context.Context, uid string, fieldID int) (domform.Form, error) {
	return s.mutate(ctx, uid, "move field up", func(f *domform.Form) error {
		return f.MoveFieldUp(fieldID)
	})
}

// MoveFieldDown swaps a field with its successor and persists the form.
func (s *Service) MoveFieldDown(ctx context.Context, uid string, fieldID int) (domform.Form, error) {
	return s.mutate(ctx, uid, "move field down", func(f *domform.Form) error {
		return f.MoveFieldDown(fieldID)
	})
}

func (s *Service) mutate(
	ctx context.Context, uid, op string, apply func(*domform.Form) error,
) (domform.Form, error) {
	f, err := s.repo.Get(ctx, uid)
	if err != nil {
		return domform.Form{}, fmt.Errorf("%s: %w", op, err)
	}

	if err := apply(&f); err != nil {
		return domform.Form{}, fmt.Errorf("%s: %w", op, err)
	}

	if err := s.repo.Update(ctx, f); err != nil {
		return domform.Form{}, fmt.Errorf("%s: %w", op, err)
	}
	return f, nil
}
