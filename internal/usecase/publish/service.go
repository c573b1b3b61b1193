// Package publish implements the validate, convert and ship flow to the
// remote form-plugin API.
package publish

import (
	"context"
	"fmt"
	"strings"

	"github.com/kailas-cloud/formdex/internal/domain"
	domform "github.com/kailas-cloud/formdex/internal/domain/form"
	"github.com/kailas-cloud/formdex/internal/domain/gravity"
)

// Service publishes stored forms to the remote site.
type Service struct {
	repo   Repository
	client Client
	conv   *gravity.Converter
}

// New creates a publish service.
func New(repo Repository, client Client, conv *gravity.Converter) *Service {
	return &Service{repo: repo, client: client, conv: conv}
}

// Publish validates a stored form, converts it to the target schema and
// creates it on the remote site. With updateExisting, a form that already
// carries a remote id (or whose title matches a remote form) is updated in
// place instead. The assigned remote id is persisted on success.
func (s *Service) Publish(ctx context.Context, uid string, updateExisting bool) (domform.Form, error) {
	f, err := s.repo.Get(ctx, uid)
	if err != nil {
		return domform.Form{}, fmt.Errorf("publish form: %w", err)
	}

	if msgs := f.Validate(); len(msgs) > 0 {
		return domform.Form{}, fmt.Errorf("publish form: %w", domain.NewValidationError(msgs))
	}

	payload, err := s.conv.Convert(&f)
	if err != nil {
		return domform.Form{}, fmt.Errorf("publish form: %w", err)
	}

	remoteID := f.ID
	if updateExisting && remoteID == 0 {
		remoteID, err = s.findByTitle(ctx, f.Title)
		if err != nil {
			return domform.Form{}, fmt.Errorf("publish form: %w", err)
		}
	}

	var remote RemoteForm
	if updateExisting && remoteID != 0 {
		remote, err = s.client.UpdateForm(ctx, remoteID, payload)
	} else {
		remote, err = s.client.CreateForm(ctx, payload)
	}
	if err != nil {
		return domform.Form{}, fmt.Errorf("publish form: %w", err)
	}

	f.ID = remote.ID
	if err := s.repo.Update(ctx, f); err != nil {
		return domform.Form{}, fmt.Errorf("store remote id: %w", err)
	}
	return f, nil
}

// ListRemote returns the forms that exist on the remote site.
func (s *Service) ListRemote(ctx context.Context) ([]RemoteForm, error) {
	forms, err := s.client.ListForms(ctx)
	if err != nil {
		return nil, fmt.Errorf("list remote forms: %w", err)
	}
	return forms, nil
}

// TestConnection verifies that the remote site and its form-plugin API are
// reachable with the configured credentials.
func (s *Service) TestConnection(ctx context.Context) error {
	if err := s.client.TestConnection(ctx); err != nil {
		return fmt.Errorf("test connection: %w", err)
	}
	return nil
}

func (s *Service) findByTitle(ctx context.Context, title string) (int, error) {
	forms, err := s.client.ListForms(ctx)
	if err != nil {
		return 0, err
	}
	for _, rf := range forms {
		if strings.EqualFold(rf.Title, title) {
			return rf.ID, nil
		}
	}
	return 0, nil
}
