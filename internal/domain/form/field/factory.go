package field

import (
	"fmt"

	"github.com/kailas-cloud/formdex/internal/domain/form/kind"
)

var defaultLabels = map[kind.Kind]string{
	kind.Text:        "Untitled",
	kind.Textarea:    "Message",
	kind.Number:      "Number",
	kind.Email:       "Email",
	kind.Phone:       "Phone",
	kind.Website:     "Website",
	kind.Select:      "Dropdown",
	kind.MultiSelect: "Multi Select",
	kind.Radio:       "Radio Buttons",
	kind.Checkbox:    "Checkboxes",
	kind.Name:        "Name",
	kind.Address:     "Address",
	kind.Date:        "Date",
	kind.Time:        "Time",
	kind.FileUpload:  "File Upload",
	kind.Hidden:      "Hidden Field",
	kind.HTML:        "HTML Block",
	kind.Section:     "Section Break",
	kind.Page:        "Page Break",
}

func defaultChoices() []Choice {
	return []Choice{
		{Text: "First Choice", Value: "first"},
		{Text: "Second Choice", Value: "second"},
		{Text: "Third Choice", Value: "third"},
	}
}

// DefaultUploadExtensions is the standard allowed-extension set for new
// file-upload fields (documents and images).
var DefaultUploadExtensions = []string{"jpg", "jpeg", "png", "gif", "pdf", "doc", "docx", "txt"}

// New creates a field with the type-specific defaults for k. Deterministic,
// side-effect free; does not consult any form state. Panics on a kind outside
// the closed set: that is a caller programming error, not a runtime condition.
func New(k kind.Kind, id int) Field {
	f := Field{
		ID:    id,
		Kind:  k,
		Label: defaultLabels[k],
	}

	switch k {
	case kind.Text:
		f.Placeholder = "Enter text here"
	case kind.Textarea:
		f.Placeholder = "Enter your message here"
	case kind.Number:
		// no placeholder default
	case kind.Email:
		f.Placeholder = "Enter your email address"
	case kind.Phone:
		f.Placeholder = "Enter your phone number"
	case kind.Website:
		f.Placeholder = "https://example.com"
	case kind.Select, kind.MultiSelect:
		f.Choices = defaultChoices()
		f.Placeholder = "Select an option"
	case kind.Radio, kind.Checkbox:
		f.Choices = defaultChoices()
	case kind.Name:
		f.Inputs = []Input{
			{ID: "3.1", Label: "First", Name: "first", Placeholder: "First"},
			{ID: "3.2", Label: "Last", Name: "last", Placeholder: "Last"},
		}
	case kind.Address:
		f.Inputs = []Input{
			{ID: "1.1", Label: "Street Address", Name: "street", Placeholder: "Street Address"},
			{ID: "1.2", Label: "Address Line 2", Name: "street2", Placeholder: "Address Line 2"},
			{ID: "1.3", Label: "City", Name: "city", Placeholder: "City"},
			{ID: "1.4", Label: "State / Province", Name: "state", Placeholder: "State / Province"},
			{ID: "1.5", Label: "ZIP / Postal Code", Name: "zip", Placeholder: "ZIP / Postal Code"},
			{ID: "1.6", Label: "Country", Name: "country", Placeholder: "Country"},
		}
	case kind.Date, kind.Time:
		// picker widgets carry no defaults beyond the label
	case kind.FileUpload:
		f.AllowedExtensions = append([]string(nil), DefaultUploadExtensions...)
		f.MaxFileSizeMB = 20
	case kind.Hidden:
		f.Visibility = VisibilityHidden
		f.Label = "Hidden Field"
	case kind.HTML:
		f.Content = "<p>Add your HTML content here</p>"
		f.DisplayOnly = true
	case kind.Section:
		f.DisplayOnly = true
		f.Description = "This is a section break"
	case kind.Page:
		f.DisplayOnly = true
		f.Label = "Page Break"
		f.Description = "This will create a new page"
	default:
		panic(fmt.Sprintf("field: unknown kind %q", k))
	}

	return f
}
