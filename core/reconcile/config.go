package reconcile

// Config holds configuration for how plans are applied.
type Config struct {
	// Transactional applies consumption plans in a single database
	// transaction with optimistic checks against the decision snapshot.
	// When false (the default), writes are issued independently and a
	// failure does not roll back writes already made.
	Transactional bool `mapstructure:"transactional" default:"false"`
	// CacheTTLSeconds is the time-to-live for cached inventory snapshots.
	// Zero disables snapshot caching.
	CacheTTLSeconds int `mapstructure:"cache_ttl_seconds" default:"0"`
}
