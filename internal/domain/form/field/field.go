// Package field defines the form field entity and its factory.
package field

import (
	"encoding/json"

	"github.com/kailas-cloud/formdex/internal/domain/form/kind"
)

// Size is the rendered width of a field.
type Size string

// Field size constants.
const (
	SizeSmall  Size = "small"
	SizeMedium Size = "medium"
	SizeLarge  Size = "large"
)

// Visibility controls where a field is shown.
type Visibility string

// Field visibility constants.
const (
	VisibilityVisible   Visibility = "visible"
	VisibilityHidden    Visibility = "hidden"
	VisibilityAdminOnly Visibility = "admin_only"
)

// MaxFileSizeCeilingMB is the upper bound for file-upload size limits.
const MaxFileSizeCeilingMB = 100

// Choice is one option of a choice-kind field. Value defaults to Text
// when absent at export time.
type Choice struct {
	Text       string `json:"text"`
	Value      string `json:"value,omitempty"`
	IsSelected bool   `json:"isSelected,omitempty"`
}

// Input is one sub-input of a composite field (e.g. "street" within address).
type Input struct {
	ID          string `json:"id"`
	Label       string `json:"label"`
	Name        string `json:"name"`
	Placeholder string `json:"placeholder,omitempty"`
}

// Field is one configurable form element. The id is unique within the
// owning form and assigned by the engine, never by callers.
//
// MaxLength distinguishes "no limit" (nil) from an explicit 0.
// ConditionalLogic is stored and forwarded without interpretation.
type Field struct {
	ID                int             `json:"id"`
	Kind              kind.Kind       `json:"type"`
	Label             string          `json:"label"`
	AdminLabel        string          `json:"adminLabel,omitempty"`
	Description       string          `json:"description,omitempty"`
	IsRequired        bool            `json:"isRequired"`
	Placeholder       string          `json:"placeholder,omitempty"`
	DefaultValue      string          `json:"defaultValue,omitempty"`
	Choices           []Choice        `json:"choices,omitempty"`
	Inputs            []Input         `json:"inputs,omitempty"`
	CSSClass          string          `json:"cssClass,omitempty"`
	Size              Size            `json:"size,omitempty"`
	MaxLength         *int            `json:"maxLength,omitempty"`
	Visibility        Visibility      `json:"visibility,omitempty"`
	Content           string          `json:"content,omitempty"`
	DisplayOnly       bool            `json:"displayOnly,omitempty"`
	MaxFileSizeMB     int             `json:"maxFileSize,omitempty"`
	AllowedExtensions []string        `json:"allowedExtensions,omitempty"`
	MultipleFiles     bool            `json:"multipleFiles,omitempty"`
	ConditionalLogic  json.RawMessage `json:"conditionalLogic,omitempty"`
}

// Clone returns a deep copy of the field.
func (f Field) Clone() Field {
	c := f
	if f.Choices != nil {
		c.Choices = make([]Choice, len(f.Choices))
		copy(c.Choices, f.Choices)
	}
	if f.Inputs != nil {
		c.Inputs = make([]Input, len(f.Inputs))
		copy(c.Inputs, f.Inputs)
	}
	if f.MaxLength != nil {
		v := *f.MaxLength
		c.MaxLength = &v
	}
	if f.ConditionalLogic != nil {
		c.ConditionalLogic = make(json.RawMessage, len(f.ConditionalLogic))
		copy(c.ConditionalLogic, f.ConditionalLogic)
	}
	if f.AllowedExtensions != nil {
		c.AllowedExtensions = make([]string, len(f.AllowedExtensions))
		copy(c.AllowedExtensions, f.AllowedExtensions)
	}
	return c
}
