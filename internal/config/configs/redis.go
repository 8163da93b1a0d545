package configs

// Redis holds configuration for the volatile counter store. Counter values
// live only in Redis and may be lost on restart; the analytics store remains
// the source of truth. When CACertPath is set the client connects over TLS
// using that certificate authority.
type Redis struct {
	// Addr is the host:port of the Redis server.
	Addr string `env:"ADDRESS" envDefault:"localhost:6379"`
	// DB selects the Redis logical database.
	DB int `env:"DATABASE" envDefault:"0"`
	// Password authenticates the connection when non-empty.
	Password string `env:"PASSWORD"`
	// CACertPath points at a PEM encoded CA certificate. Empty disables TLS.
	CACertPath string `env:"SSL_CERTIFICATE_PATH"`
}
