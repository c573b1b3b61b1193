package form

import (
	"errors"
	"reflect"
	"testing"

	"github.com/kailas-cloud/formdex/internal/domain"
	"github.com/kailas-cloud/formdex/internal/domain/form/kind"
)

func TestEncodeDecodeRoundTrip(t *testing.T) {
	f := New("Contact Us")
	f.Description = "Reach out"
	f.AddField(kind.Text, -1)
	f.AddField(kind.Select, -1)
	f.AddField(kind.FileUpload, -1)
	f.AddField(kind.Address, -1)
	maxLen := 80
	f.Fields[0].MaxLength = &maxLen
	f.Fields[0].IsRequired = true
	f.EnableHoneypot = true
	f.LimitEntries = true
	f.EntryLimit = 50

	doc, err := Encode(&f)
	if err != nil {
		t.Fatalf("encode: %v", err)
	}

	got, err := Decode(doc)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}

	if !reflect.DeepEqual(f, got) {
		t.Errorf("round trip mismatch:\n got %+v\nwant %+v", got, f)
	}
}

func TestDecodeMissingTitle(t *testing.T) {
	_, err := Decode([]byte(`{"fields": []}`))
	if !errors.Is(err, domain.ErrMalformedDocument) {
		t.Errorf("got %v, want ErrMalformedDocument", err)
	}
}

func TestDecodeInvalidJSON(t *testing.T) {
	for _, doc := range []string{"", "{", "null", `"str"`, "[1,2]"} {
		if _, err := Decode([]byte(doc)); !errors.Is(err, domain.ErrMalformedDocument) {
			t.Errorf("Decode(%q): %v, want ErrMalformedDocument", doc, err)
		}
	}
}

func TestDecodeUnknownFieldType(t *testing.T) {
	doc := []byte(`{"title": "x", "fields": [{"id": 1, "type": "bogus", "label": "A"}]}`)

	_, err := Decode(doc)
	if !errors.Is(err, domain.ErrMalformedDocument) {
		t.Errorf("got %v, want ErrMalformedDocument", err)
	}
}

func TestDecodeTypeMismatch(t *testing.T) {
	// Wrong JSON type for a known attribute fails the whole document.
	doc := []byte(`{"title": "x", "fields": [{"id": "one", "type": "text"}]}`)

	_, err := Decode(doc)
	if !errors.Is(err, domain.ErrMalformedDocument) {
		t.Errorf("got %v, want ErrMalformedDocument", err)
	}
}

func TestDecodePreservesFieldOrder(t *testing.T) {
	doc := []byte(`{
		"title": "x",
		"fields": [
			{"id": 3, "type": "text", "label": "C"},
			{"id": 1, "type": "email", "label": "A"},
			{"id": 2, "type": "phone", "label": "B"}
		]
	}`)

	f, err := Decode(doc)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if !idsEqual(fieldIDs(&f), []int{3, 1, 2}) {
		t.Errorf("order = %v, want [3 1 2]", fieldIDs(&f))
	}
}
