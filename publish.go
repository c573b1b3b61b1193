package formdex

import (
	"context"

	publishuc "github.com/kailas-cloud/formdex/internal/usecase/publish"
)

// PublishService ships stored forms to the configured remote site.
type PublishService struct {
	svc *publishuc.Service
}

// Publish validates a stored form, converts it to the remote plugin schema
// and creates it on the remote site. With updateExisting, a form that
// already carries a remote id (or whose title matches a remote form) is
// updated in place instead.
func (s *PublishService) Publish(ctx context.Context, uid string, updateExisting bool) (Form, error) {
	if s.svc == nil {
		return Form{}, ErrNoRemoteSite
	}
	f, err := s.svc.Publish(ctx, uid, updateExisting)
	if err != nil {
		return Form{}, err
	}
	return formFromDomain(f), nil
}

// ListRemote returns the forms that exist on the remote site.
func (s *PublishService) ListRemote(ctx context.Context) ([]RemoteForm, error) {
	if s.svc == nil {
		return nil, ErrNoRemoteSite
	}
	forms, err := s.svc.ListRemote(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]RemoteForm, len(forms))
	for i, rf := range forms {
		out[i] = remoteFormFromUsecase(rf)
	}
	return out, nil
}

// TestConnection verifies that the remote site is reachable with the
// configured credentials.
func (s *PublishService) TestConnection(ctx context.Context) error {
	if s.svc == nil {
		return ErrNoRemoteSite
	}
	return s.svc.TestConnection(ctx)
}
