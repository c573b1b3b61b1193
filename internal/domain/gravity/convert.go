// Package gravity maps forms to the Gravity Forms v2 REST schema.
//
// The mapping is pure: it never performs I/O and never mutates the source
// form. The HTTP transport that ships the result lives elsewhere.
package gravity

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/kailas-cloud/formdex/internal/domain"
	"github.com/kailas-cloud/formdex/internal/domain/form"
	"github.com/kailas-cloud/formdex/internal/domain/form/field"
	"github.com/kailas-cloud/formdex/internal/domain/form/kind"
)

// Policy controls how field kinds the target cannot represent are handled.
type Policy string

// Export policies.
const (
	// PolicyStrict fails the export when a field kind has no target mapping.
	PolicyStrict Policy = "strict"
	// PolicyLossy silently drops fields whose kind has no target mapping.
	PolicyLossy Policy = "lossy"
)

// IsValid checks if the policy is a known value.
func (p Policy) IsValid() bool { return p == PolicyStrict || p == PolicyLossy }

// kindNames is the fixed rename table from field kinds to Gravity Forms
// field types. Kinds absent from the table (layout-only section and page
// breaks) cannot be represented at the target.
var kindNames = map[kind.Kind]string{
	kind.Text:        "text",
	kind.Textarea:    "textarea",
	kind.Number:      "number",
	kind.Email:       "email",
	kind.Phone:       "phone",
	kind.Website:     "website",
	kind.Select:      "select",
	kind.MultiSelect: "multiselect",
	kind.Radio:       "radio",
	kind.Checkbox:    "checkbox",
	kind.Name:        "name",
	kind.Address:     "address",
	kind.Date:        "date",
	kind.Time:        "time",
	kind.FileUpload:  "fileupload",
	kind.Hidden:      "hidden",
	kind.HTML:        "html",
}

// Form is the Gravity Forms v2 form payload.
type Form struct {
	Title         string         `json:"title"`
	Description   string         `json:"description"`
	Fields        []Field        `json:"fields"`
	Button        *Button        `json:"button,omitempty"`
	Notifications []Notification `json:"notifications,omitempty"`
	Confirmations []Confirmation `json:"confirmations,omitempty"`
	CSSClass      string         `json:"cssClass,omitempty"`
	Version       string         `json:"version,omitempty"`
}

// Field is the Gravity Forms v2 field payload.
type Field struct {
	ID                int             `json:"id"`
	Type              string          `json:"type"`
	Label             string          `json:"label"`
	AdminLabel        string          `json:"adminLabel,omitempty"`
	Description       string          `json:"description,omitempty"`
	IsRequired        bool            `json:"isRequired"`
	Placeholder       string          `json:"placeholder,omitempty"`
	DefaultValue      string          `json:"defaultValue,omitempty"`
	Choices           []Choice        `json:"choices,omitempty"`
	Inputs            []Input         `json:"inputs,omitempty"`
	CSSClass          string          `json:"cssClass,omitempty"`
	Size              string          `json:"size,omitempty"`
	MaxLength         *int            `json:"maxLength,omitempty"`
	Visibility        string          `json:"visibility,omitempty"`
	Content           string          `json:"content,omitempty"`
	DisplayOnly       bool            `json:"displayOnly,omitempty"`
	MaxFileSize       int             `json:"maxFileSize,omitempty"`
	AllowedExtensions string          `json:"allowedExtensions,omitempty"`
	MultipleFiles     bool            `json:"multipleFiles,omitempty"`
	ConditionalLogic  json.RawMessage `json:"conditionalLogic,omitempty"`
}

// Choice is a Gravity Forms choice entry.
type Choice struct {
	Text       string `json:"text"`
	Value      string `json:"value"`
	IsSelected bool   `json:"isSelected,omitempty"`
}

// Input is a Gravity Forms composite sub-input entry.
type Input struct {
	ID          string `json:"id"`
	Label       string `json:"label"`
	Name        string `json:"name,omitempty"`
	Placeholder string `json:"placeholder,omitempty"`
}

// Button is the Gravity Forms submit button descriptor.
type Button struct {
	Type string `json:"type"`
	Text string `json:"text"`
}

// Notification is a Gravity Forms notification entry.
type Notification struct {
	ID       string `json:"id,omitempty"`
	IsActive bool   `json:"isActive"`
	Name     string `json:"name"`
	Event    string `json:"event"`
	To       string `json:"to"`
	Subject  string `json:"subject"`
	Message  string `json:"message"`
}

// Confirmation is a Gravity Forms confirmation entry.
type Confirmation struct {
	ID        string `json:"id,omitempty"`
	IsActive  bool   `json:"isActive"`
	IsDefault bool   `json:"isDefault,omitempty"`
	Name      string `json:"name"`
	Type      string `json:"type"`
	Message   string `json:"message,omitempty"`
}

// Converter converts forms under a fixed export policy.
type Converter struct {
	policy Policy
}

// NewConverter creates a converter. An empty or unknown policy falls back to
// strict.
func NewConverter(policy Policy) *Converter {
	if !policy.IsValid() {
		policy = PolicyStrict
	}
	return &Converter{policy: policy}
}

// Policy returns the converter's export policy.
func (c *Converter) Policy() Policy { return c.policy }

// Convert maps a form to the target schema. Under PolicyStrict, a field kind
// without a mapping fails the whole export; under PolicyLossy, such fields
// are dropped from the output with no error.
func (c *Converter) Convert(f *form.Form) (Form, error) {
	out := Form{
		Title:       f.Title,
		Description: f.Description,
		Fields:      make([]Field, 0, len(f.Fields)),
		CSSClass:    f.CSSClass,
		Version:     f.Version,
	}

	if f.Button.Text != "" {
		b := Button{Type: f.Button.Type, Text: f.Button.Text}
		out.Button = &b
	}

	for i := range f.Fields {
		gf, ok := convertField(&f.Fields[i])
		if !ok {
			if c.policy == PolicyStrict {
				return Form{}, fmt.Errorf("field %d (%s): %w",
					i+1, f.Fields[i].Kind, domain.ErrUnsupportedKind)
			}
			continue
		}
		out.Fields = append(out.Fields, gf)
	}

	for _, n := range f.Notifications {
		out.Notifications = append(out.Notifications, Notification{
			ID:       n.ID,
			IsActive: n.IsActive,
			Name:     n.Name,
			Event:    n.Event,
			To:       n.To,
			Subject:  n.Subject,
			Message:  n.Message,
		})
	}

	for _, cf := range f.Confirmations {
		out.Confirmations = append(out.Confirmations, Confirmation{
			ID:        cf.ID,
			IsActive:  cf.IsActive,
			IsDefault: cf.IsDefault,
			Name:      cf.Name,
			Type:      cf.Type,
			Message:   cf.Message,
		})
	}

	return out, nil
}

func convertField(fld *field.Field) (Field, bool) {
	name, ok := kindNames[fld.Kind]
	if !ok {
		return Field{}, false
	}

	gf := Field{
		ID:               fld.ID,
		Type:             name,
		Label:            fld.Label,
		AdminLabel:       fld.AdminLabel,
		Description:      fld.Description,
		IsRequired:       fld.IsRequired,
		Placeholder:      fld.Placeholder,
		DefaultValue:     fld.DefaultValue,
		CSSClass:         fld.CSSClass,
		Size:             string(fld.Size),
		MaxLength:        fld.MaxLength,
		Visibility:       string(fld.Visibility),
		Content:          fld.Content,
		DisplayOnly:      fld.DisplayOnly,
		MaxFileSize:      fld.MaxFileSizeMB,
		MultipleFiles:    fld.MultipleFiles,
		ConditionalLogic: fld.ConditionalLogic,
	}

	for _, c := range fld.Choices {
		value := c.Value
		if value == "" {
			value = c.Text
		}
		gf.Choices = append(gf.Choices, Choice{Text: c.Text, Value: value, IsSelected: c.IsSelected})
	}

	for _, in := range fld.Inputs {
		gf.Inputs = append(gf.Inputs, Input{
			ID:          in.ID,
			Label:       in.Label,
			Name:        in.Name,
			Placeholder: in.Placeholder,
		})
	}

	// Gravity Forms stores allowed extensions as a comma-separated string.
	if len(fld.AllowedExtensions) > 0 {
		gf.AllowedExtensions = strings.Join(fld.AllowedExtensions, ",")
	}

	return gf, true
}
