package publish

import (
	"context"
	"errors"
	"testing"

	"github.com/kailas-cloud/formdex/internal/domain"
	domform "github.com/kailas-cloud/formdex/internal/domain/form"
	"github.com/kailas-cloud/formdex/internal/domain/form/kind"
	"github.com/kailas-cloud/formdex/internal/domain/gravity"
)

type mockRepo struct {
	forms   map[string]domform.Form
	updates int
}

func (m *mockRepo) Get(_ context.Context, uid string) (domform.Form, error) {
	f, ok := m.forms[uid]
	if !ok {
		return domform.Form{}, domain.ErrFormNotFound
	}
	return f, nil
}

func (m *mockRepo) Update(_ context.Context, f domform.Form) error {
	m.forms[f.UID] = f
	m.updates++
	return nil
}

type mockClient struct {
	remote    []RemoteForm
	nextID    int
	created   []gravity.Form
	updated   map[int]gravity.Form
	listErr   error
	createErr error
	testErr   error
}

func newMockClient() *mockClient {
	return &mockClient{nextID: 100, updated: make(map[int]gravity.Form)}
}

func (c *mockClient) ListForms(_ context.Context) ([]RemoteForm, error) {
	if c.listErr != nil {
		return nil, c.listErr
	}
	return c.remote, nil
}

func (c *mockClient) CreateForm(_ context.Context, payload gravity.Form) (RemoteForm, error) {
	if c.createErr != nil {
		return RemoteForm{}, c.createErr
	}
	c.nextID++
	c.created = append(c.created, payload)
	rf := RemoteForm{ID: c.nextID, Title: payload.Title}
	c.remote = append(c.remote, rf)
	return rf, nil
}

func (c *mockClient) UpdateForm(_ context.Context, id int, payload gravity.Form) (RemoteForm, error) {
	c.updated[id] = payload
	return RemoteForm{ID: id, Title: payload.Title}, nil
}

func (c *mockClient) TestConnection(_ context.Context) error {
	return c.testErr
}

func newTestService(t *testing.T, title string) (*Service, *mockRepo, *mockClient, string) {
	t.Helper()
	f := domform.New(title)
	f.AddField(kind.Text, -1)

	repo := &mockRepo{forms: map[string]domform.Form{f.UID: f}}
	client := newMockClient()
	svc := New(repo, client, gravity.NewConverter(gravity.PolicyStrict))
	return svc, repo, client, f.UID
}

func TestPublishCreatesRemoteForm(t *testing.T) {
	svc, repo, client, uid := newTestService(t, "Contact Us")

	f, err := svc.Publish(context.Background(), uid, false)
	if err != nil {
		t.Fatalf("publish: %v", err)
	}

	if f.ID != 101 {
		t.Errorf("remote id = %d, want 101", f.ID)
	}
	if len(client.created) != 1 || client.created[0].Title != "Contact Us" {
		t.Errorf("created payloads = %+v", client.created)
	}
	// Remote id persisted.
	if repo.forms[uid].ID != 101 {
		t.Errorf("stored remote id = %d", repo.forms[uid].ID)
	}
}

func TestPublishRejectsInvalidForm(t *testing.T) {
	svc, repo, client, uid := newTestService(t, "x")
	f := repo.forms[uid]
	f.Title = ""
	repo.forms[uid] = f

	_, err := svc.Publish(context.Background(), uid, false)
	if !errors.Is(err, domain.ErrInvalidForm) {
		t.Fatalf("got %v, want ErrInvalidForm", err)
	}
	if len(client.created) != 0 {
		t.Error("invalid form reached the remote site")
	}
}

func TestPublishStrictRejectsUnsupportedField(t *testing.T) {
	svc, repo, client, uid := newTestService(t, "x")
	f := repo.forms[uid]
	f.AddField(kind.Page, -1)
	repo.forms[uid] = f

	_, err := svc.Publish(context.Background(), uid, false)
	if !errors.Is(err, domain.ErrUnsupportedKind) {
		t.Fatalf("got %v, want ErrUnsupportedKind", err)
	}
	if len(client.created) != 0 {
		t.Error("unsupported form reached the remote site")
	}
}

func TestPublishLossyDropsUnsupportedField(t *testing.T) {
	f := domform.New("x")
	f.AddField(kind.Text, -1)
	f.AddField(kind.Page, -1)

	repo := &mockRepo{forms: map[string]domform.Form{f.UID: f}}
	client := newMockClient()
	svc := New(repo, client, gravity.NewConverter(gravity.PolicyLossy))

	if _, err := svc.Publish(context.Background(), f.UID, false); err != nil {
		t.Fatalf("publish: %v", err)
	}
	if len(client.created[0].Fields) != 1 {
		t.Errorf("remote payload has %d fields, want 1", len(client.created[0].Fields))
	}
}

func TestPublishUpdateExistingByRemoteID(t *testing.T) {
	svc, repo, client, uid := newTestService(t, "x")
	f := repo.forms[uid]
	f.ID = 42
	repo.forms[uid] = f

	got, err := svc.Publish(context.Background(), uid, true)
	if err != nil {
		t.Fatalf("publish: %v", err)
	}
	if got.ID != 42 {
		t.Errorf("remote id = %d, want 42", got.ID)
	}
	if _, ok := client.updated[42]; !ok {
		t.Error("expected an update call for id 42")
	}
	if len(client.created) != 0 {
		t.Error("should not create when updating")
	}
}

func TestPublishUpdateExistingFindsByTitle(t *testing.T) {
	svc, _, client, uid := newTestService(t, "Contact Us")
	client.remote = []RemoteForm{
		{ID: 7, Title: "Other"},
		{ID: 8, Title: "contact us"}, // case-insensitive match
	}

	got, err := svc.Publish(context.Background(), uid, true)
	if err != nil {
		t.Fatalf("publish: %v", err)
	}
	if got.ID != 8 {
		t.Errorf("remote id = %d, want 8", got.ID)
	}
	if _, ok := client.updated[8]; !ok {
		t.Error("expected an update call for id 8")
	}
}

func TestPublishUpdateExistingFallsBackToCreate(t *testing.T) {
	svc, _, client, uid := newTestService(t, "Brand New")

	got, err := svc.Publish(context.Background(), uid, true)
	if err != nil {
		t.Fatalf("publish: %v", err)
	}
	if len(client.created) != 1 {
		t.Error("expected a create call when no remote match exists")
	}
	if got.ID == 0 {
		t.Error("remote id not assigned")
	}
}

func TestPublishWithoutUpdateAlwaysCreates(t *testing.T) {
	svc, repo, client, uid := newTestService(t, "x")
	f := repo.forms[uid]
	f.ID = 42
	repo.forms[uid] = f

	if _, err := svc.Publish(context.Background(), uid, false); err != nil {
		t.Fatalf("publish: %v", err)
	}
	if len(client.created) != 1 || len(client.updated) != 0 {
		t.Errorf("created=%d updated=%d, want 1/0", len(client.created), len(client.updated))
	}
}

func TestPublishRemoteErrorPropagates(t *testing.T) {
	svc, repo, client, uid := newTestService(t, "x")
	client.createErr = domain.ErrRemoteUnavailable

	_, err := svc.Publish(context.Background(), uid, false)
	if !errors.Is(err, domain.ErrRemoteUnavailable) {
		t.Fatalf("got %v, want ErrRemoteUnavailable", err)
	}
	if repo.updates != 0 {
		t.Error("failed publish must not persist a remote id")
	}
}

func TestPublishFormNotFound(t *testing.T) {
	svc, _, _, _ := newTestService(t, "x")

	_, err := svc.Publish(context.Background(), "missing", false)
	if !errors.Is(err, domain.ErrFormNotFound) {
		t.Errorf("got %v, want ErrFormNotFound", err)
	}
}

func TestListRemote(t *testing.T) {
	svc, _, client, _ := newTestService(t, "x")
	client.remote = []RemoteForm{{ID: 1, Title: "a"}, {ID: 2, Title: "b"}}

	forms, err := svc.ListRemote(context.Background())
	if err != nil {
		t.Fatalf("list remote: %v", err)
	}
	if len(forms) != 2 || forms[1].Title != "b" {
		t.Errorf("forms = %+v", forms)
	}
}

func TestTestConnection(t *testing.T) {
	svc, _, client, _ := newTestService(t, "x")

	if err := svc.TestConnection(context.Background()); err != nil {
		t.Fatalf("test connection: %v", err)
	}

	client.testErr = domain.ErrRemoteUnavailable
	if err := svc.TestConnection(context.Background()); !errors.Is(err, domain.ErrRemoteUnavailable) {
		t.Errorf("got %v, want ErrRemoteUnavailable", err)
	}
}
