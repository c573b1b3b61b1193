package formdex

// FieldType identifies a form field type.
type FieldType string

// Supported field types.
const (
	FieldText        FieldType = "text"
	FieldTextarea    FieldType = "textarea"
	FieldSelect      FieldType = "select"
	FieldMultiSelect FieldType = "multiselect"
	FieldNumber      FieldType = "number"
	FieldCheckbox    FieldType = "checkbox"
	FieldRadio       FieldType = "radio"
	FieldHidden      FieldType = "hidden"
	FieldHTML        FieldType = "html"
	FieldSection     FieldType = "section"
	FieldPage        FieldType = "page"
	FieldName        FieldType = "name"
	FieldDate        FieldType = "date"
	FieldTime        FieldType = "time"
	FieldPhone       FieldType = "phone"
	FieldAddress     FieldType = "address"
	FieldWebsite     FieldType = "website"
	FieldEmail       FieldType = "email"
	FieldFileUpload  FieldType = "fileupload"
)

// Choice is one option of a choice-based field.
type Choice struct {
	Text     string
	Value    string
	Selected bool
}

// Input is one sub-input of a composite field (e.g. "street" within address).
type Input struct {
	ID          string
	Label       string
	Name        string
	Placeholder string
}

// Field is one configurable form element.
type Field struct {
	ID                int
	Type              FieldType
	Label             string
	AdminLabel        string
	Description       string
	Required          bool
	Placeholder       string
	DefaultValue      string
	Choices           []Choice
	Inputs            []Input
	CSSClass          string
	Size              string
	MaxLength         *int
	Visibility        string
	Content           string
	DisplayOnly       bool
	MaxFileSizeMB     int
	AllowedExtensions []string
	MultipleFiles     bool
}

// Form is a stored form. RemoteID is 0 until the form has been published.
type Form struct {
	UID         string
	RemoteID    int
	Title       string
	Description string
	Fields      []Field
}

// RemoteForm is a form summary from the remote site.
type RemoteForm struct {
	ID    int
	Title string
}

// FieldTypeInfo describes one entry of the field type catalog.
type FieldTypeInfo struct {
	Type        FieldType
	Name        string
	Description string
	Category    string
}
