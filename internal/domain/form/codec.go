package form

import (
	"encoding/json"
	"fmt"

	"github.com/kailas-cloud/formdex/internal/domain"
)

// Encode serializes the form to its persisted UTF-8 JSON document. Field
// order is preserved; optional attributes are either present with a value or
// omitted (their defined absent marker). Attribute names are a stable schema
// tied to the form's version field.
func Encode(f *Form) ([]byte, error) {
	data, err := json.MarshalIndent(f, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encode form: %w", err)
	}
	return data, nil
}

// Decode parses a persisted form document. A document that does not conform
// to the schema fails entirely with ErrMalformedDocument; no partial form is
// returned.
func Decode(data []byte) (Form, error) {
	var probe struct {
		Title *string `json:"title"`
	}
	if err := json.Unmarshal(data, &probe); err != nil {
		return Form{}, fmt.Errorf("%w: %v", domain.ErrMalformedDocument, err)
	}
	if probe.Title == nil {
		return Form{}, fmt.Errorf("%w: missing required attribute \"title\"", domain.ErrMalformedDocument)
	}

	var f Form
	if err := json.Unmarshal(data, &f); err != nil {
		return Form{}, fmt.Errorf("%w: %v", domain.ErrMalformedDocument, err)
	}

	for i := range f.Fields {
		if !f.Fields[i].Kind.IsValid() {
			return Form{}, fmt.Errorf("%w: field %d has unknown type %q",
				domain.ErrMalformedDocument, i+1, f.Fields[i].Kind)
		}
	}

	return f, nil
}
