// Package kind defines the closed set of form field kinds.
package kind

// Kind is the type of a form field.
type Kind string

// Field kind constants. The set is closed: the factory and validator
// switch exhaustively over it.
const (
	Text        Kind = "text"
	Textarea    Kind = "textarea"
	Number      Kind = "number"
	Email       Kind = "email"
	Phone       Kind = "phone"
	Website     Kind = "website"
	Select      Kind = "select"
	MultiSelect Kind = "multiselect"
	Radio       Kind = "radio"
	Checkbox    Kind = "checkbox"
	Name        Kind = "name"
	Address     Kind = "address"
	Date        Kind = "date"
	Time        Kind = "time"
	FileUpload  Kind = "fileupload"
	Hidden      Kind = "hidden"
	HTML        Kind = "html"
	Section     Kind = "section"
	Page        Kind = "page"
)

// All lists every kind in catalog order.
var All = []Kind{
	Text, Textarea, Number, Email, Phone, Website,
	Select, MultiSelect, Radio, Checkbox,
	Name, Address, Date, Time, FileUpload, Hidden, HTML, Section, Page,
}

var valid = func() map[Kind]bool {
	m := make(map[Kind]bool, len(All))
	for _, k := range All {
		m[k] = true
	}
	return m
}()

// IsValid checks if the kind is part of the closed set.
func (k Kind) IsValid() bool { return valid[k] }

// IsChoice reports whether fields of this kind carry a Choice list.
func (k Kind) IsChoice() bool {
	return k == Select || k == MultiSelect || k == Radio || k == Checkbox
}

// IsComposite reports whether fields of this kind are built from named sub-inputs.
func (k Kind) IsComposite() bool {
	return k == Name || k == Address
}

// IsDisplayOnly reports whether fields of this kind render content without collecting input.
func (k Kind) IsDisplayOnly() bool {
	return k == HTML || k == Section || k == Page
}

// Info describes a kind for field pickers.
type Info struct {
	Name        string
	Description string
	Category    string
}

// Catalog returns display metadata for every kind, keyed by kind.
func Catalog() map[Kind]Info {
	return map[Kind]Info{
		Text:        {Name: "Single Line Text", Description: "A single line of text input", Category: "Standard"},
		Textarea:    {Name: "Paragraph Text", Description: "A multi-line text area", Category: "Standard"},
		Number:      {Name: "Number", Description: "Numeric input with validation", Category: "Standard"},
		Email:       {Name: "Email", Description: "Email address with validation", Category: "Standard"},
		Phone:       {Name: "Phone", Description: "Phone number input", Category: "Standard"},
		Website:     {Name: "Website", Description: "URL/Website input with validation", Category: "Standard"},
		Select:      {Name: "Dropdown", Description: "Single selection dropdown", Category: "Standard"},
		MultiSelect: {Name: "Multi Select", Description: "Multiple selection list", Category: "Standard"},
		Radio:       {Name: "Radio Buttons", Description: "Single selection from radio buttons", Category: "Standard"},
		Checkbox:    {Name: "Checkboxes", Description: "Multiple selection checkboxes", Category: "Standard"},
		Name:        {Name: "Name", Description: "Composite name field (first, last, etc.)", Category: "Advanced"},
		Address:     {Name: "Address", Description: "Composite address field", Category: "Advanced"},
		Date:        {Name: "Date", Description: "Date picker input", Category: "Advanced"},
		Time:        {Name: "Time", Description: "Time picker input", Category: "Advanced"},
		FileUpload:  {Name: "File Upload", Description: "File upload with type restrictions", Category: "Advanced"},
		Hidden:      {Name: "Hidden", Description: "Hidden field for storing values", Category: "Advanced"},
		HTML:        {Name: "HTML", Description: "Display HTML content", Category: "Advanced"},
		Section:     {Name: "Section Break", Description: "Visual section divider", Category: "Advanced"},
		Page:        {Name: "Page Break", Description: "Break form into multiple pages", Category: "Advanced"},
	}
}
