// Package formdex is an embeddable form builder: create and edit forms with
// typed fields, validate them and publish the result to a WordPress site
// running the Gravity Forms plugin.
package formdex

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/kailas-cloud/formdex/internal/db"
	dbRedis "github.com/kailas-cloud/formdex/internal/db/redis"
	"github.com/kailas-cloud/formdex/internal/domain/gravity"
	formrepo "github.com/kailas-cloud/formdex/internal/repository/form"
	gravityTransport "github.com/kailas-cloud/formdex/internal/transport/gravity"
	formuc "github.com/kailas-cloud/formdex/internal/usecase/form"
	publishuc "github.com/kailas-cloud/formdex/internal/usecase/publish"
)

const defaultReadinessTimeout = 10 * time.Second

// ErrNoRemoteSite is returned by Publisher methods when no remote site was
// configured via WithRemoteSite.
var ErrNoRemoteSite = errors.New("formdex: remote site not configured (use WithRemoteSite)")

// Client is the formdex SDK entry point.
type Client struct {
	store   db.Store
	formSvc *formuc.Service
	pubSvc  *publishuc.Service
}

// New creates a formdex Client and connects to the database.
func New(opts ...Option) (*Client, error) {
	cfg := &clientConfig{}
	for _, o := range opts {
		o(cfg)
	}

	if len(cfg.addrs) == 0 {
		return nil, errors.New("formdex: database address required (use WithRedis)")
	}

	store, err := dbRedis.NewStore(dbRedis.Config{
		Addrs:    cfg.addrs,
		Username: cfg.username,
		Password: cfg.password,
	})
	if err != nil {
		return nil, fmt.Errorf("formdex: create redis store: %w", err)
	}

	ctx := context.Background()
	if err := store.WaitForReady(ctx, defaultReadinessTimeout); err != nil {
		store.Close()
		return nil, fmt.Errorf("formdex: database not ready: %w", err)
	}

	return wireClient(store, cfg), nil
}

func wireClient(store db.Store, cfg *clientConfig) *Client {
	logger := cfg.logger
	if logger == nil {
		logger = zap.NewNop()
	}

	repo := formrepo.New(store)
	if cfg.keyPrefix != "" {
		repo = repo.WithKeyPrefix(cfg.keyPrefix)
	}
	formSvc := formuc.New(repo)

	var pubSvc *publishuc.Service
	if cfg.remoteBaseURL != "" {
		client := gravityTransport.NewClient(&gravityTransport.Config{
			BaseURL:     cfg.remoteBaseURL,
			Username:    cfg.remoteUsername,
			AppPassword: cfg.remoteAppPassword,
			Logger:      logger,
		})
		conv := gravity.NewConverter(gravity.Policy(cfg.exportPolicy))
		pubSvc = publishuc.New(repo, client, conv)
	}

	return &Client{
		store:   store,
		formSvc: formSvc,
		pubSvc:  pubSvc,
	}
}

// Close releases all resources.
func (c *Client) Close() {
	if c.store != nil {
		c.store.Close()
	}
}

// Ping checks database connectivity.
func (c *Client) Ping(ctx context.Context) error {
	if err := c.store.Ping(ctx); err != nil {
		return fmt.Errorf("ping: %w", err)
	}
	return nil
}

// Forms returns the form builder service.
func (c *Client) Forms() *FormService {
	return &FormService{svc: c.formSvc}
}

// Publisher returns the publish service. Its methods fail with
// ErrNoRemoteSite when the client was built without WithRemoteSite.
func (c *Client) Publisher() *PublishService {
	return &PublishService{svc: c.pubSvc}
}
