package form

import (
	"fmt"
	"strconv"

	domform "github.com/kailas-cloud/formdex/internal/domain/form"
)

// formToHash converts a form to a map for HSET. The full serialized document
// is the source of truth; the metadata fields exist for inspection and
// list sorting without decoding every document.
func formToHash(f *domform.Form, createdAt, updatedAt int64) (map[string]string, error) {
	doc, err := domform.Encode(f)
	if err != nil {
		return nil, fmt.Errorf("marshal form document: %w", err)
	}
	return map[string]string{
		"uid":         f.UID,
		"title":       f.Title,
		"version":     f.Version,
		"remote_id":   strconv.Itoa(f.ID),
		"field_count": strconv.Itoa(len(f.Fields)),
		"document":    string(doc),
		"created_at":  strconv.FormatInt(createdAt, 10),
		"updated_at":  strconv.FormatInt(updatedAt, 10),
	}, nil
}

// formFromHash hydrates a form from an HGETALL result map. A document that
// fails to decode propagates ErrMalformedDocument: the load fails entirely.
func formFromHash(m map[string]string) (domform.Form, error) {
	doc := m["document"]
	if doc == "" {
		return domform.Form{}, fmt.Errorf("decode form %s: empty document", m["uid"])
	}

	f, err := domform.Decode([]byte(doc))
	if err != nil {
		return domform.Form{}, fmt.Errorf("decode form %s: %w", m["uid"], err)
	}
	return f, nil
}
