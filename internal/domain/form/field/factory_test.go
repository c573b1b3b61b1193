package field

import (
	"testing"

	"github.com/kailas-cloud/formdex/internal/domain/form/kind"
)

func TestNewAssignsIDAndKind(t *testing.T) {
	for _, k := range kind.All {
		f := New(k, 7)
		if f.ID != 7 {
			t.Errorf("New(%q): id = %d, want 7", k, f.ID)
		}
		if f.Kind != k {
			t.Errorf("New(%q): kind = %q", k, f.Kind)
		}
		if f.Label == "" {
			t.Errorf("New(%q): label is empty", k)
		}
	}
}

func TestNewTextDefaults(t *testing.T) {
	f := New(kind.Text, 1)

	if f.Label != "Untitled" {
		t.Errorf("label = %q, want %q", f.Label, "Untitled")
	}
	if f.Placeholder != "Enter text here" {
		t.Errorf("placeholder = %q", f.Placeholder)
	}
	if f.IsRequired {
		t.Error("new field should not be required")
	}
}

func TestNewChoiceDefaults(t *testing.T) {
	for _, k := range []kind.Kind{kind.Select, kind.MultiSelect, kind.Radio, kind.Checkbox} {
		f := New(k, 1)
		if len(f.Choices) != 3 {
			t.Fatalf("New(%q): %d choices, want 3", k, len(f.Choices))
		}
		if f.Choices[0].Text != "First Choice" || f.Choices[0].Value != "first" {
			t.Errorf("New(%q): first choice = %+v", k, f.Choices[0])
		}
		if f.Choices[2].Text != "Third Choice" {
			t.Errorf("New(%q): third choice = %+v", k, f.Choices[2])
		}
	}

	// Only dropdown-style kinds get the select placeholder.
	if got := New(kind.Select, 1).Placeholder; got != "Select an option" {
		t.Errorf("select placeholder = %q", got)
	}
	if got := New(kind.Radio, 1).Placeholder; got != "" {
		t.Errorf("radio placeholder = %q, want empty", got)
	}
}

func TestNewCompositeDefaults(t *testing.T) {
	name := New(kind.Name, 3)
	if len(name.Inputs) != 2 {
		t.Fatalf("name has %d inputs, want 2", len(name.Inputs))
	}
	if name.Inputs[0].ID != "3.1" || name.Inputs[0].Name != "first" {
		t.Errorf("name input[0] = %+v", name.Inputs[0])
	}
	if name.Inputs[1].ID != "3.2" || name.Inputs[1].Label != "Last" {
		t.Errorf("name input[1] = %+v", name.Inputs[1])
	}

	addr := New(kind.Address, 1)
	if len(addr.Inputs) != 6 {
		t.Fatalf("address has %d inputs, want 6", len(addr.Inputs))
	}
	if addr.Inputs[0].Name != "street" || addr.Inputs[5].Name != "country" {
		t.Errorf("address inputs = %+v", addr.Inputs)
	}
}

func TestNewFileUploadDefaults(t *testing.T) {
	f := New(kind.FileUpload, 1)

	if f.MaxFileSizeMB != 20 {
		t.Errorf("max file size = %d, want 20", f.MaxFileSizeMB)
	}
	if len(f.AllowedExtensions) != len(DefaultUploadExtensions) {
		t.Fatalf("allowed extensions = %v", f.AllowedExtensions)
	}
	// The factory must hand out a copy, not the shared default slice.
	f.AllowedExtensions[0] = "exe"
	if DefaultUploadExtensions[0] == "exe" {
		t.Error("factory leaked the shared default extension slice")
	}
}

func TestNewHiddenAndDisplayDefaults(t *testing.T) {
	hidden := New(kind.Hidden, 1)
	if hidden.Visibility != VisibilityHidden {
		t.Errorf("hidden visibility = %q", hidden.Visibility)
	}
	if hidden.Label != "Hidden Field" {
		t.Errorf("hidden label = %q", hidden.Label)
	}

	html := New(kind.HTML, 1)
	if !html.DisplayOnly {
		t.Error("html field should be display-only")
	}
	if html.Content != "<p>Add your HTML content here</p>" {
		t.Errorf("html content = %q", html.Content)
	}

	section := New(kind.Section, 1)
	if !section.DisplayOnly || section.Description == "" {
		t.Errorf("section defaults = %+v", section)
	}

	page := New(kind.Page, 1)
	if !page.DisplayOnly || page.Label != "Page Break" {
		t.Errorf("page defaults = %+v", page)
	}
}

func TestNewPanicsOnUnknownKind(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic for unknown kind")
		}
	}()
	New(kind.Kind("bogus"), 1)
}

func TestCloneIsDeep(t *testing.T) {
	maxLen := 50
	src := New(kind.Select, 1)
	src.MaxLength = &maxLen

	clone := src.Clone()
	clone.Choices[0].Text = "changed"
	*clone.MaxLength = 99

	if src.Choices[0].Text == "changed" {
		t.Error("clone shares the choice slice with the source")
	}
	if *src.MaxLength != 50 {
		t.Error("clone shares MaxLength with the source")
	}
}
