package config

import "time"

// Defaults applied to fields left unset by every configuration source.
const (
	DefaultHTTPAddress    = ":8080"
	DefaultTokenIssuer    = "fieldpress"
	DefaultTokenDuration  = 24 * time.Hour
	DefaultRequestTimeout = 30 * time.Second
	DefaultMediaDir       = "./media"
)

// validate applies defaults and rejects configurations the server cannot run
// with: a missing database DSN or a missing token signing key.
func (c *StructuredConfig) validate() error {
	if c.Server.HTTPAddress == "" {
		c.Server.HTTPAddress = DefaultHTTPAddress
	}
	if c.Server.RequestTimeout == 0 {
		c.Server.RequestTimeout = DefaultRequestTimeout
	}
	if c.App.TokenIssuer == "" {
		c.App.TokenIssuer = DefaultTokenIssuer
	}
	if c.App.TokenDuration == 0 {
		c.App.TokenDuration = DefaultTokenDuration
	}
	if c.Storage.Media.Dir == "" {
		c.Storage.Media.Dir = DefaultMediaDir
	}

	if c.Storage.DB.DSN == "" {
		return ErrNoDatabaseDSN
	}
	if c.App.TokenSignKey == "" {
		return ErrNoTokenSignKey
	}

	return nil
}
