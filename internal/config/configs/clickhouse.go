package configs

// ClickHouse holds configuration for the analytics sink. Show and click
// events are appended to ClickHouse tables and never updated. When
// CACertPath is set the native protocol connection is wrapped in TLS.
type ClickHouse struct {
	// Addr is the host:port of the ClickHouse native protocol endpoint.
	Addr string `env:"ADDRESS" envDefault:"localhost:9000"`
	// Database is the database holding the shows and clicks tables.
	Database string `env:"DATABASE" envDefault:"reklamito"`
	// User and Password authenticate the connection.
	User     string `env:"USER" envDefault:"default"`
	Password string `env:"PASSWORD"`
	// CACertPath points at a PEM encoded CA certificate. Empty disables TLS.
	CACertPath string `env:"SSL_CERTIFICATE_PATH"`
}
