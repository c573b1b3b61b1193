package formdex

import "go.uber.org/zap"

// Option configures the Client.
type Option func(*clientConfig)

type clientConfig struct {
	addrs     []string
	username  string
	password  string
	keyPrefix string
	logger    *zap.Logger

	remoteBaseURL     string
	remoteUsername    string
	remoteAppPassword string
	exportPolicy      string
}

// WithRedis sets the Redis connection parameters.
func WithRedis(addrs []string, password string) Option {
	return func(c *clientConfig) {
		c.addrs = addrs
		c.password = password
	}
}

// WithRedisUsername sets the Redis ACL username.
func WithRedisUsername(username string) Option {
	return func(c *clientConfig) {
		c.username = username
	}
}

// WithKeyPrefix overrides the storage key prefix (default "formdex:").
func WithKeyPrefix(prefix string) Option {
	return func(c *clientConfig) {
		c.keyPrefix = prefix
	}
}

// WithLogger sets the logger. Defaults to zap.NewNop().
func WithLogger(logger *zap.Logger) Option {
	return func(c *clientConfig) {
		c.logger = logger
	}
}

// WithRemoteSite configures the WordPress site forms are published to.
// Without it the Publisher service is unavailable.
func WithRemoteSite(baseURL, username, appPassword string) Option {
	return func(c *clientConfig) {
		c.remoteBaseURL = baseURL
		c.remoteUsername = username
		c.remoteAppPassword = appPassword
	}
}

// WithExportPolicy sets how fields the remote plugin cannot represent are
// handled on publish: "strict" (default) fails, "lossy" drops them.
func WithExportPolicy(policy string) Option {
	return func(c *clientConfig) {
		c.exportPolicy = policy
	}
}
