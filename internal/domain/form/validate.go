package form

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/kailas-cloud/formdex/internal/domain/form/field"
	"github.com/kailas-cloud/formdex/internal/domain/form/kind"
)

const maxTitleLen = 255
const maxLabelLen = 255

// Validate checks the form against all structural rules and returns every
// violation as a human-readable message, in rule order. An empty slice means
// the form is valid. Validate never mutates the form; an invalid form is a
// reportable outcome, not an error condition.
//
// Field messages identify the offending field by its 1-based position in the
// sequence ("Field N: ..."), and choices by their 1-based index within the
// field ("Field N, Choice M: ...").
func (f *Form) Validate() []string {
	var errs []string

	title := strings.TrimSpace(f.Title)
	if title == "" {
		errs = append(errs, "Form title is required")
	} else if utf8.RuneCountInString(f.Title) > maxTitleLen {
		errs = append(errs, fmt.Sprintf("Form title must be %d characters or fewer", maxTitleLen))
	}

	seen := make(map[int]bool, len(f.Fields))
	for i := range f.Fields {
		errs = append(errs, validateField(i+1, &f.Fields[i], seen)...)
	}

	return errs
}

func validateField(pos int, fld *field.Field, seen map[int]bool) []string {
	var errs []string

	if strings.TrimSpace(fld.Label) == "" {
		errs = append(errs, fmt.Sprintf("Field %d: label is required", pos))
	} else if utf8.RuneCountInString(fld.Label) > maxLabelLen {
		errs = append(errs, fmt.Sprintf("Field %d: label must be %d characters or fewer", pos, maxLabelLen))
	}

	// First occurrence of an id is fine; every later one is a violation.
	if seen[fld.ID] {
		errs = append(errs, fmt.Sprintf("Field %d: duplicate field id %d", pos, fld.ID))
	} else {
		seen[fld.ID] = true
	}

	if fld.Kind.IsChoice() {
		if len(fld.Choices) == 0 {
			errs = append(errs, fmt.Sprintf("Field %d: must have at least one choice", pos))
		}
		for j, c := range fld.Choices {
			if strings.TrimSpace(c.Text) == "" {
				errs = append(errs, fmt.Sprintf("Field %d, Choice %d: choice text is required", pos, j+1))
			}
		}
	}

	if fld.Kind == kind.FileUpload && fld.MaxFileSizeMB > field.MaxFileSizeCeilingMB {
		errs = append(errs, fmt.Sprintf("Field %d: maximum file size must not exceed %d MB",
			pos, field.MaxFileSizeCeilingMB))
	}

	if fld.Kind == kind.HTML && strings.TrimSpace(fld.Content) == "" {
		errs = append(errs, fmt.Sprintf("Field %d: HTML content is required", pos))
	}

	return errs
}
