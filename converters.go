package formdex

import (
	domform "github.com/kailas-cloud/formdex/internal/domain/form"
	"github.com/kailas-cloud/formdex/internal/domain/form/field"
	publishuc "github.com/kailas-cloud/formdex/internal/usecase/publish"
)

func formFromDomain(f domform.Form) Form {
	fields := make([]Field, len(f.Fields))
	for i, fld := range f.Fields {
		fields[i] = fieldFromDomain(fld)
	}
	return Form{
		UID:         f.UID,
		RemoteID:    f.ID,
		Title:       f.Title,
		Description: f.Description,
		Fields:      fields,
	}
}

func fieldFromDomain(f field.Field) Field {
	out := Field{
		ID:            f.ID,
		Type:          FieldType(f.Kind),
		Label:         f.Label,
		AdminLabel:    f.AdminLabel,
		Description:   f.Description,
		Required:      f.IsRequired,
		Placeholder:   f.Placeholder,
		DefaultValue:  f.DefaultValue,
		CSSClass:      f.CSSClass,
		Size:          string(f.Size),
		Visibility:    string(f.Visibility),
		Content:       f.Content,
		DisplayOnly:   f.DisplayOnly,
		MaxFileSizeMB: f.MaxFileSizeMB,
		MultipleFiles: f.MultipleFiles,
	}

	if f.MaxLength != nil {
		v := *f.MaxLength
		out.MaxLength = &v
	}
	if len(f.Choices) > 0 {
		out.Choices = make([]Choice, len(f.Choices))
		for i, c := range f.Choices {
			out.Choices[i] = Choice{Text: c.Text, Value: c.Value, Selected: c.IsSelected}
		}
	}
	if len(f.Inputs) > 0 {
		out.Inputs = make([]Input, len(f.Inputs))
		for i, in := range f.Inputs {
			out.Inputs[i] = Input{ID: in.ID, Label: in.Label, Name: in.Name, Placeholder: in.Placeholder}
		}
	}
	if len(f.AllowedExtensions) > 0 {
		out.AllowedExtensions = make([]string, len(f.AllowedExtensions))
		copy(out.AllowedExtensions, f.AllowedExtensions)
	}
	return out
}

func remoteFormFromUsecase(rf publishuc.RemoteForm) RemoteForm {
	return RemoteForm{ID: rf.ID, Title: rf.Title}
}
