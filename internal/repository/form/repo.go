// Package form implements the stored-form repository over the hash store.
package form

import (
	"context"
	"fmt"
	"sort"
	"strconv"
	"time"

	"github.com/kailas-cloud/formdex/internal/domain"
	domform "github.com/kailas-cloud/formdex/internal/domain/form"
)

// DefaultKeyPrefix namespaces all form keys.
const DefaultKeyPrefix = "formdex:"

// store is the consumer interface for form storage (ISP).
type store interface {
	HSet(ctx context.Context, key string, fields map[string]string) error
	HGetAll(ctx context.Context, key string) (map[string]string, error)
	HGetAllMulti(ctx context.Context, keys []string) ([]map[string]string, error)
	Del(ctx context.Context, key string) error
	Exists(ctx context.Context, key string) (bool, error)
	Scan(ctx context.Context, pattern string) ([]string, error)
}

// Repo implements usecase/form.Repository.
type Repo struct {
	store     store
	keyPrefix string
	now       func() time.Time
}

// New creates a form repository.
func New(s store) *Repo {
	return &Repo{store: s, keyPrefix: DefaultKeyPrefix, now: time.Now}
}

// WithKeyPrefix overrides the storage key prefix.
func (r *Repo) WithKeyPrefix(prefix string) *Repo {
	if prefix != "" {
		r.keyPrefix = prefix
	}
	return r
}

// Create stores a new form. Fails with ErrAlreadyExists when the uid is taken.
func (r *Repo) Create(ctx context.Context, f domform.Form) error {
	if f.UID == "" {
		return fmt.Errorf("create form: uid is required")
	}

	key := r.formKey(f.UID)
	exists, err := r.store.Exists(ctx, key)
	if err != nil {
		return fmt.Errorf("check exists: %w", err)
	}
	if exists {
		return domain.ErrAlreadyExists
	}

	nowMilli := r.now().UnixMilli()
	hashData, err := formToHash(&f, nowMilli, nowMilli)
	if err != nil {
		return err
	}

	if err := r.store.HSet(ctx, key, hashData); err != nil {
		return fmt.Errorf("hset form %s: %w", f.UID, err)
	}
	return nil
}

// Get retrieves a form by uid.
func (r *Repo) Get(ctx context.Context, uid string) (domform.Form, error) {
	m, err := r.store.HGetAll(ctx, r.formKey(uid))
	if err != nil {
		return domform.Form{}, fmt.Errorf("hgetall form %s: %w", uid, err)
	}
	if len(m) == 0 {
		return domform.Form{}, domain.ErrFormNotFound
	}
	return formFromHash(m)
}

// List returns all stored forms sorted by creation time.
func (r *Repo) List(ctx context.Context) ([]domform.Form, error) {
	keys, err := r.store.Scan(ctx, r.formKey("*"))
	if err != nil {
		return nil, fmt.Errorf("scan forms: %w", err)
	}
	if len(keys) == 0 {
		return []domform.Form{}, nil
	}

	results, err := r.store.HGetAllMulti(ctx, keys)
	if err != nil {
		return nil, fmt.Errorf("hgetall multi forms: %w", err)
	}

	type row struct {
		form      domform.Form
		createdAt int64
	}
	rows := make([]row, 0, len(results))
	for i, m := range results {
		if len(m) == 0 {
			continue
		}
		f, err := formFromHash(m)
		if err != nil {
			return nil, fmt.Errorf("parse form %s: %w", keys[i], err)
		}
		createdAt, _ := strconv.ParseInt(m["created_at"], 10, 64)
		rows = append(rows, row{form: f, createdAt: createdAt})
	}

	sort.Slice(rows, func(i, j int) bool { return rows[i].createdAt < rows[j].createdAt })

	forms := make([]domform.Form, len(rows))
	for i, rw := range rows {
		forms[i] = rw.form
	}
	return forms, nil
}

// Update overwrites a stored form, preserving its creation timestamp.
// Fails with ErrFormNotFound when the form has never been created.
func (r *Repo) Update(ctx context.Context, f domform.Form) error {
	key := r.formKey(f.UID)
	existing, err := r.store.HGetAll(ctx, key)
	if err != nil {
		return fmt.Errorf("hgetall form %s: %w", f.UID, err)
	}
	if len(existing) == 0 {
		return domain.ErrFormNotFound
	}

	createdAt, _ := strconv.ParseInt(existing["created_at"], 10, 64)
	hashData, err := formToHash(&f, createdAt, r.now().UnixMilli())
	if err != nil {
		return err
	}

	if err := r.store.HSet(ctx, key, hashData); err != nil {
		return fmt.Errorf("hset form %s: %w", f.UID, err)
	}
	return nil
}

// Delete removes a stored form.
func (r *Repo) Delete(ctx context.Context, uid string) error {
	key := r.formKey(uid)
	exists, err := r.store.Exists(ctx, key)
	if err != nil {
		return fmt.Errorf("check exists: %w", err)
	}
	if !exists {
		return domain.ErrFormNotFound
	}

	if err := r.store.Del(ctx, key); err != nil {
		return fmt.Errorf("del form %s: %w", uid, err)
	}
	return nil
}

// Key pattern: formdex:form:{uid}

func (r *Repo) formKey(uid string) string {
	return fmt.Sprintf("%sform:%s", r.keyPrefix, uid)
}
