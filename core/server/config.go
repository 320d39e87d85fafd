package server

import "time"

// Config holds configuration for the HTTP server.
type Config struct {
	// Port is the port where the server will listen.
	Port string `mapstructure:"port" default:"8080"`
	// JWTSecret is the HMAC key session tokens are signed with.
	JWTSecret string `mapstructure:"jwt_secret" default:""`
	// TokenTTLHours is how long an issued session token stays valid.
	TokenTTLHours int `mapstructure:"token_ttl_hours" default:"72"`
}

// TokenTTL returns the session token lifetime as a duration, falling back to
// 72 hours when the configured value is non-positive.
func (c Config) TokenTTL() time.Duration {
	if c.TokenTTLHours <= 0 {
		return 72 * time.Hour
	}
	return time.Duration(c.TokenTTLHours) * time.Hour
}
