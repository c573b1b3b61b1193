package form

import (
	"fmt"

	"github.com/kailas-cloud/formdex/internal/domain"
	"github.com/kailas-cloud/formdex/internal/domain/form/field"
	"github.com/kailas-cloud/formdex/internal/domain/form/kind"
)

// AddField builds a field of kind k via the factory, assigns it the next
// free id and inserts it at position. A negative or out-of-range position
// appends. Returns a pointer to the inserted field.
func (f *Form) AddField(k kind.Kind, position int) *field.Field {
	fld := field.New(k, f.NextFieldID())

	if position < 0 || position >= len(f.Fields) {
		f.Fields = append(f.Fields, fld)
		return &f.Fields[len(f.Fields)-1]
	}

	f.Fields = append(f.Fields, field.Field{})
	copy(f.Fields[position+1:], f.Fields[position:])
	f.Fields[position] = fld
	return &f.Fields[position]
}

// RemoveField removes the field with the given id, preserving the relative
// order of the remaining fields.
func (f *Form) RemoveField(id int) error {
	i := f.fieldIndex(id)
	if i < 0 {
		return fmt.Errorf("remove field %d: %w", id, domain.ErrFieldNotFound)
	}
	f.Fields = append(f.Fields[:i], f.Fields[i+1:]...)
	return nil
}

// DuplicateField clones the field with the given id, assigns the clone a new
// id, appends " (Copy)" to its label and inserts it immediately after the
// source. Returns a pointer to the clone.
func (f *Form) DuplicateField(id int) (*field.Field, error) {
	i := f.fieldIndex(id)
	if i < 0 {
		return nil, fmt.Errorf("duplicate field %d: %w", id, domain.ErrFieldNotFound)
	}

	clone := f.Fields[i].Clone()
	clone.ID = f.NextFieldID()
	clone.Label += " (Copy)"

	f.Fields = append(f.Fields, field.Field{})
	copy(f.Fields[i+2:], f.Fields[i+1:])
	f.Fields[i+1] = clone
	return &f.Fields[i+1], nil
}

// MoveFieldUp swaps the field with its immediate predecessor.
func (f *Form) MoveFieldUp(id int) error {
	i := f.fieldIndex(id)
	if i < 0 {
		return fmt.Errorf("move field %d up: %w", id, domain.ErrFieldNotFound)
	}
	if i == 0 {
		return fmt.Errorf("field %d is already at top: %w", id, domain.ErrInvalidMove)
	}
	f.Fields[i], f.Fields[i-1] = f.Fields[i-1], f.Fields[i]
	return nil
}

// MoveFieldDown swaps the field with its immediate successor.
func (f *Form) MoveFieldDown(id int) error {
	i := f.fieldIndex(id)
	if i < 0 {
		return fmt.Errorf("move field %d down: %w", id, domain.ErrFieldNotFound)
	}
	if i == len(f.Fields)-1 {
		return fmt.Errorf("field %d is already at bottom: %w", id, domain.ErrInvalidMove)
	}
	f.Fields[i], f.Fields[i+1] = f.Fields[i+1], f.Fields[i]
	return nil
}
