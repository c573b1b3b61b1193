package form

import (
	"errors"
	"testing"

	"github.com/kailas-cloud/formdex/internal/domain"
	"github.com/kailas-cloud/formdex/internal/domain/form/kind"
)

func fieldIDs(f *Form) []int {
	ids := make([]int, len(f.Fields))
	for i := range f.Fields {
		ids[i] = f.Fields[i].ID
	}
	return ids
}

func idsEqual(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestAddFieldAppends(t *testing.T) {
	f := New("x")

	first := f.AddField(kind.Text, -1)
	second := f.AddField(kind.Email, -1)

	if first.ID != 1 || second.ID != 2 {
		t.Errorf("ids = %d, %d", first.ID, second.ID)
	}
	if !idsEqual(fieldIDs(&f), []int{1, 2}) {
		t.Errorf("order = %v", fieldIDs(&f))
	}
}

func TestAddFieldInsertsAtPosition(t *testing.T) {
	f := New("x")
	f.AddField(kind.Text, -1)  // id 1
	f.AddField(kind.Email, -1) // id 2

	inserted := f.AddField(kind.Number, 1) // id 3 between them

	if inserted.ID != 3 {
		t.Errorf("inserted id = %d, want 3", inserted.ID)
	}
	if !idsEqual(fieldIDs(&f), []int{1, 3, 2}) {
		t.Errorf("order = %v, want [1 3 2]", fieldIDs(&f))
	}
}

func TestAddFieldOutOfRangeAppends(t *testing.T) {
	f := New("x")
	f.AddField(kind.Text, -1)

	f.AddField(kind.Email, 99)
	f.AddField(kind.Phone, -5)

	if !idsEqual(fieldIDs(&f), []int{1, 2, 3}) {
		t.Errorf("order = %v", fieldIDs(&f))
	}
}

func TestRemoveField(t *testing.T) {
	f := New("x")
	f.AddField(kind.Text, -1)
	f.AddField(kind.Email, -1)
	f.AddField(kind.Phone, -1)

	if err := f.RemoveField(2); err != nil {
		t.Fatalf("remove: %v", err)
	}
	if !idsEqual(fieldIDs(&f), []int{1, 3}) {
		t.Errorf("order = %v", fieldIDs(&f))
	}

	err := f.RemoveField(99)
	if !errors.Is(err, domain.ErrFieldNotFound) {
		t.Errorf("remove missing: %v, want ErrFieldNotFound", err)
	}
}

func TestDuplicateField(t *testing.T) {
	f := New("x")
	f.AddField(kind.Select, -1) // id 1
	f.AddField(kind.Text, -1)   // id 2

	clone, err := f.DuplicateField(1)
	if err != nil {
		t.Fatalf("duplicate: %v", err)
	}

	if clone.ID != 3 {
		t.Errorf("clone id = %d, want 3", clone.ID)
	}
	if clone.Label != "Dropdown (Copy)" {
		t.Errorf("clone label = %q", clone.Label)
	}
	if !idsEqual(fieldIDs(&f), []int{1, 3, 2}) {
		t.Errorf("order = %v, want clone right after source", fieldIDs(&f))
	}

	// Deep copy: editing the clone's choices must not touch the source.
	clone.Choices[0].Text = "changed"
	if f.Fields[0].Choices[0].Text == "changed" {
		t.Error("clone shares choices with the source field")
	}

	if _, err := f.DuplicateField(42); !errors.Is(err, domain.ErrFieldNotFound) {
		t.Errorf("duplicate missing: %v, want ErrFieldNotFound", err)
	}
}

func TestMoveFieldUp(t *testing.T) {
	f := New("x")
	f.AddField(kind.Text, -1)
	f.AddField(kind.Email, -1)

	if err := f.MoveFieldUp(2); err != nil {
		t.Fatalf("move up: %v", err)
	}
	if !idsEqual(fieldIDs(&f), []int{2, 1}) {
		t.Errorf("order = %v", fieldIDs(&f))
	}

	if err := f.MoveFieldUp(2); !errors.Is(err, domain.ErrInvalidMove) {
		t.Errorf("move top up: %v, want ErrInvalidMove", err)
	}
	if err := f.MoveFieldUp(99); !errors.Is(err, domain.ErrFieldNotFound) {
		t.Errorf("move missing: %v, want ErrFieldNotFound", err)
	}
	// Failed moves leave the order intact.
	if !idsEqual(fieldIDs(&f), []int{2, 1}) {
		t.Errorf("order after failed moves = %v", fieldIDs(&f))
	}
}

func TestMoveFieldDown(t *testing.T) {
	f := New("x")
	f.AddField(kind.Text, -1)
	f.AddField(kind.Email, -1)

	if err := f.MoveFieldDown(1); err != nil {
		t.Fatalf("move down: %v", err)
	}
	if !idsEqual(fieldIDs(&f), []int{2, 1}) {
		t.Errorf("order = %v", fieldIDs(&f))
	}

	if err := f.MoveFieldDown(1); !errors.Is(err, domain.ErrInvalidMove) {
		t.Errorf("move bottom down: %v, want ErrInvalidMove", err)
	}
	if err := f.MoveFieldDown(99); !errors.Is(err, domain.ErrFieldNotFound) {
		t.Errorf("move missing: %v, want ErrFieldNotFound", err)
	}
}

func TestFieldIDsUniqueAcrossMutations(t *testing.T) {
	f := New("x")
	f.AddField(kind.Text, -1)
	f.AddField(kind.Email, 0)
	if _, err := f.DuplicateField(1); err != nil {
		t.Fatal(err)
	}
	if err := f.RemoveField(2); err != nil {
		t.Fatal(err)
	}
	f.AddField(kind.Phone, 1)

	seen := make(map[int]bool)
	for _, id := range fieldIDs(&f) {
		if seen[id] {
			t.Fatalf("duplicate field id %d in %v", id, fieldIDs(&f))
		}
		seen[id] = true
	}
}
