// Package form defines the form aggregate and its mutation and validation engine.
//
// A Form is an owned value: callers hold exclusive access for the duration of
// a mutation call and must serialize concurrent edits themselves. No
// operation here blocks on I/O or logs.
package form

import (
	"strings"

	"github.com/google/uuid"

	"github.com/kailas-cloud/formdex/internal/domain/form/field"
)

// Version is the current form document schema version.
const Version = "1.0"

// DefaultTitle is used when a form is created with a blank title.
const DefaultTitle = "Untitled Form"

// Button describes the form submit button.
type Button struct {
	Type string `json:"type"`
	Text string `json:"text"`
}

// Notification configures who gets emailed on submission. Template fields
// ({admin_email}, {all_fields}, ...) are opaque placeholder strings.
type Notification struct {
	ID       string `json:"id"`
	IsActive bool   `json:"isActive"`
	Name     string `json:"name"`
	Event    string `json:"event"`
	To       string `json:"to"`
	Subject  string `json:"subject"`
	Message  string `json:"message"`
}

// Confirmation configures what the user sees after submission.
type Confirmation struct {
	ID        string `json:"id"`
	IsActive  bool   `json:"isActive"`
	IsDefault bool   `json:"isDefault"`
	Name      string `json:"name"`
	Type      string `json:"type"`
	Message   string `json:"message,omitempty"`
}

// Form is the aggregate root. It exclusively owns its fields, notifications
// and confirmations; field order is the authoritative display and tab order.
//
// UID identifies the form in local storage; ID is assigned by the remote
// site on first successful publish (0 = never published).
type Form struct {
	UID                  string         `json:"uid,omitempty"`
	ID                   int            `json:"id,omitempty"`
	Title                string         `json:"title"`
	Description          string         `json:"description,omitempty"`
	Version              string         `json:"version"`
	Fields               []field.Field  `json:"fields"`
	Button               Button         `json:"button"`
	LabelPlacement       string         `json:"labelPlacement,omitempty"`
	DescriptionPlacement string         `json:"descriptionPlacement,omitempty"`
	CSSClass             string         `json:"cssClass,omitempty"`
	EnableHoneypot       bool           `json:"enableHoneypot,omitempty"`
	EnableAnimation      bool           `json:"enableAnimation,omitempty"`
	LimitEntries         bool           `json:"limitEntries,omitempty"`
	EntryLimit           int            `json:"limitEntriesCount,omitempty"`
	LimitEntriesMessage  string         `json:"limitEntriesMessage,omitempty"`
	ScheduleForm         bool           `json:"scheduleForm,omitempty"`
	ScheduleStart        string         `json:"scheduleStart,omitempty"`
	ScheduleEnd          string         `json:"scheduleEnd,omitempty"`
	ScheduleMessage      string         `json:"schedulePendingMessage,omitempty"`
	Notifications        []Notification `json:"notifications"`
	Confirmations        []Confirmation `json:"confirmations"`
}

// New creates an empty form with global defaults. A blank title (after trim)
// becomes DefaultTitle. One default notification and confirmation are
// auto-populated.
func New(title string) Form {
	title = strings.TrimSpace(title)
	if title == "" {
		title = DefaultTitle
	}

	f := Form{
		UID:                  uuid.NewString(),
		Title:                title,
		Version:              Version,
		Fields:               []field.Field{},
		Button:               Button{Type: "text", Text: "Submit"},
		LabelPlacement:       "top_label",
		DescriptionPlacement: "below",
	}
	f.EnsureDefaults()
	return f
}

// EnsureDefaults populates the default notification and confirmation when
// the caller supplied none.
func (f *Form) EnsureDefaults() {
	if len(f.Notifications) == 0 {
		f.Notifications = []Notification{{
			ID:       uuid.NewString(),
			IsActive: true,
			Name:     "Admin Notification",
			Event:    "form_submission",
			To:       "{admin_email}",
			Subject:  "New submission from {form_title}",
			Message:  "{all_fields}",
		}}
	}
	if len(f.Confirmations) == 0 {
		f.Confirmations = []Confirmation{{
			ID:        uuid.NewString(),
			IsActive:  true,
			IsDefault: true,
			Name:      "Default Confirmation",
			Type:      "message",
			Message:   "Thanks for contacting us! We will get in touch with you shortly.",
		}}
	}
}

// NextFieldID returns 1 + the maximum existing field id (1 for an empty
// form). Removal never lowers the result for ids still present, so ids are
// unique for the lifetime of the form.
func (f *Form) NextFieldID() int {
	maxID := 0
	for i := range f.Fields {
		if f.Fields[i].ID > maxID {
			maxID = f.Fields[i].ID
		}
	}
	return maxID + 1
}

// FieldByID returns a pointer to the field with the given id for in-place
// editing, or nil if absent.
func (f *Form) FieldByID(id int) *field.Field {
	if i := f.fieldIndex(id); i >= 0 {
		return &f.Fields[i]
	}
	return nil
}

func (f *Form) fieldIndex(id int) int {
	for i := range f.Fields {
		if f.Fields[i].ID == id {
			return i
		}
	}
	return -1
}
