package formdex

import (
	"context"
	"fmt"

	domform "github.com/kailas-cloud/formdex/internal/domain/form"
	"github.com/kailas-cloud/formdex/internal/domain/form/kind"
	formuc "github.com/kailas-cloud/formdex/internal/usecase/form"
)

// FormService manages stored forms and their fields.
type FormService struct {
	svc *formuc.Service
}

// Create builds a new form with default settings and stores it. A blank
// title becomes "Untitled Form".
func (s *FormService) Create(ctx context.Context, title string) (Form, error) {
	f, err := s.svc.Create(ctx, title)
	if err != nil {
		return Form{}, err
	}
	return formFromDomain(f), nil
}

// Get retrieves a stored form by uid.
func (s *FormService) Get(ctx context.Context, uid string) (Form, error) {
	f, err := s.svc.Get(ctx, uid)
	if err != nil {
		return Form{}, err
	}
	return formFromDomain(f), nil
}

// List returns all stored forms.
func (s *FormService) List(ctx context.Context) ([]Form, error) {
	forms, err := s.svc.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]Form, len(forms))
	for i, f := range forms {
		out[i] = formFromDomain(f)
	}
	return out, nil
}

// Delete removes a stored form.
func (s *FormService) Delete(ctx context.Context, uid string) error {
	return s.svc.Delete(ctx, uid)
}

// Validate returns the list of rule violations for a stored form. An empty
// list means the form is valid.
func (s *FormService) Validate(ctx context.Context, uid string) ([]string, error) {
	return s.svc.Validate(ctx, uid)
}

// Export serializes a stored form to a JSON document suitable for Import.
func (s *FormService) Export(ctx context.Context, uid string) ([]byte, error) {
	return s.svc.Export(ctx, uid)
}

// Import stores a form from an exported JSON document under a fresh uid.
func (s *FormService) Import(ctx context.Context, document []byte) (Form, error) {
	f, err := s.svc.Import(ctx, document)
	if err != nil {
		return Form{}, err
	}
	return formFromDomain(f), nil
}

// Save validates a full form document and persists it under the given uid.
func (s *FormService) Save(ctx context.Context, uid string, document []byte) (Form, error) {
	f, err := domform.Decode(document)
	if err != nil {
		return Form{}, fmt.Errorf("save form: %w", err)
	}
	f.UID = uid

	saved, err := s.svc.Save(ctx, f)
	if err != nil {
		return Form{}, err
	}
	return formFromDomain(saved), nil
}

// AddField appends a new field of the given type, or inserts it at position
// when position is non-negative.
func (s *FormService) AddField(ctx context.Context, uid string, ft FieldType, position int) (Form, error) {
	f, err := s.svc.AddField(ctx, uid, kind.Kind(ft), position)
	if err != nil {
		return Form{}, err
	}
	return formFromDomain(f), nil
}

// RemoveField removes a field by id.
func (s *FormService) RemoveField(ctx context.Context, uid string, fieldID int) (Form, error) {
	f, err := s.svc.RemoveField(ctx, uid, fieldID)
	if err != nil {
		return Form{}, err
	}
	return formFromDomain(f), nil
}

// DuplicateField clones a field by id; the copy is placed right after the
// original with a fresh id and a " (Copy)" label suffix.
func (s *FormService) DuplicateField(ctx context.Context, uid string, fieldID int) (Form, error) {
	f, err := s.svc.DuplicateField(ctx, uid, fieldID)
	if err != nil {
		return Form{}, err
	}
	return formFromDomain(f), nil
}

// MoveFieldUp swaps a field with its predecessor.
func (s *FormService) MoveFieldUp(ctx context.Context, uid string, fieldID int) (Form, error) {
	f, err := s.svc.MoveFieldUp(ctx, uid, fieldID)
	if err != nil {
		return Form{}, err
	}
	return formFromDomain(f), nil
}

// MoveFieldDown swaps a field with its successor.
func (s *FormService) MoveFieldDown(ctx context.Context, uid string, fieldID int) (Form, error) {
	f, err := s.svc.MoveFieldDown(ctx, uid, fieldID)
	if err != nil {
		return Form{}, err
	}
	return formFromDomain(f), nil
}

// FieldTypes returns the catalog of supported field types.
func (s *FormService) FieldTypes() []FieldTypeInfo {
	catalog := kind.Catalog()
	out := make([]FieldTypeInfo, 0, len(kind.All))
	for _, k := range kind.All {
		info := catalog[k]
		out = append(out, FieldTypeInfo{
			Type:        FieldType(k),
			Name:        info.Name,
			Description: info.Description,
			Category:    info.Category,
		})
	}
	return out
}
