package gravity

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/kailas-cloud/formdex/internal/domain"
	domgravity "github.com/kailas-cloud/formdex/internal/domain/gravity"
)

func newTestClient(t *testing.T, handler http.Handler) (*Client, *httptest.Server) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	client := NewClient(&Config{
		BaseURL:     srv.URL + "/", // trailing slash must be normalized away
		Username:    "admin",
		AppPassword: "secret",
	})
	return client, srv
}

func TestListForms(t *testing.T) {
	var gotAuth string
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/wp-json/gf/v2/forms" || r.Method != http.MethodGet {
			t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
		gotAuth = r.Header.Get("Authorization")
		_ = json.NewEncoder(w).Encode([]map[string]any{
			{"id": 1, "title": "Contact"},
			{"id": 2, "title": "Survey"},
		})
	}))

	forms, err := client.ListForms(context.Background())
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(forms) != 2 || forms[0].ID != 1 || forms[1].Title != "Survey" {
		t.Errorf("forms = %+v", forms)
	}
	if !strings.HasPrefix(gotAuth, "Basic ") {
		t.Errorf("authorization = %q, want basic auth", gotAuth)
	}
}

func TestCreateForm(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("method = %s, want POST", r.Method)
		}
		if ct := r.Header.Get("Content-Type"); ct != "application/json" {
			t.Errorf("content type = %q", ct)
		}
		var payload map[string]any
		if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
			t.Fatalf("decode payload: %v", err)
		}
		if payload["title"] != "Contact Us" {
			t.Errorf("payload title = %v", payload["title"])
		}
		w.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(w).Encode(map[string]any{"id": 55, "title": "Contact Us"})
	}))

	remote, err := client.CreateForm(context.Background(), domgravity.Form{Title: "Contact Us"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if remote.ID != 55 {
		t.Errorf("remote id = %d, want 55", remote.ID)
	}
}

func TestUpdateForm(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPut || r.URL.Path != "/wp-json/gf/v2/forms/42" {
			t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
		_ = json.NewEncoder(w).Encode(map[string]any{"id": 42, "title": "Updated"})
	}))

	remote, err := client.UpdateForm(context.Background(), 42, domgravity.Form{Title: "Updated"})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if remote.ID != 42 || remote.Title != "Updated" {
		t.Errorf("remote = %+v", remote)
	}
}

func TestTestConnection(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/wp-json/", "/wp-json/gf/v2/forms":
			_, _ = w.Write([]byte("{}"))
		default:
			t.Errorf("unexpected path %s", r.URL.Path)
		}
	}))

	if err := client.TestConnection(context.Background()); err != nil {
		t.Fatalf("test connection: %v", err)
	}
}

func TestUnreachableHostMapsToRemoteUnavailable(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	srv.Close() // deliberately dead

	client := NewClient(&Config{BaseURL: srv.URL})

	_, err := client.ListForms(context.Background())
	if !errors.Is(err, domain.ErrRemoteUnavailable) {
		t.Errorf("got %v, want ErrRemoteUnavailable", err)
	}
}

func TestErrorStatusMapsToPublishRejected(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_ = json.NewEncoder(w).Encode(map[string]string{
			"code":    "rest_forbidden",
			"message": "Sorry, you are not allowed to do that.",
		})
	}))

	_, err := client.CreateForm(context.Background(), domgravity.Form{Title: "x"})
	if !errors.Is(err, domain.ErrPublishRejected) {
		t.Fatalf("got %v, want ErrPublishRejected", err)
	}
	if !strings.Contains(err.Error(), "Sorry, you are not allowed to do that.") {
		t.Errorf("error %q should carry the remote message", err)
	}
	if !strings.Contains(err.Error(), "401") {
		t.Errorf("error %q should carry the status code", err)
	}
}

func TestErrorStatusWithoutBody(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))

	_, err := client.ListForms(context.Background())
	if !errors.Is(err, domain.ErrPublishRejected) {
		t.Errorf("got %v, want ErrPublishRejected", err)
	}
}

func TestBaseURLNormalization(t *testing.T) {
	client := NewClient(&Config{BaseURL: "https://example.com///"})
	if got := client.BaseURL(); got != "https://example.com" {
		t.Errorf("base url = %q", got)
	}
}
