package config

import "time"

// Config holds runtime settings for the filekeeper CLI.
//
// Fields:
//   - ServerEndpointAddr: host:port of the backend gRPC endpoint.
//   - AccessToken: bearer token sent with every call. Prompted for when empty.
//   - JournalPath: SQLite file that tracks uploads awaiting commit.
//   - RequestTimeout: deadline for a single remote call or object transfer.
type Config struct {
	ServerEndpointAddr string
	AccessToken        string
	JournalPath        string
	RequestTimeout     time.Duration
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.ServerEndpointAddr = "127.0.0.1:50051"
	c.JournalPath = "filekeeper-client.db"
	c.RequestTimeout = 30 * time.Second
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// JSON (if present) and command-line flags (if present). Later sources take
// precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
