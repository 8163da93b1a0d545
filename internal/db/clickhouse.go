package db

import (
	"context"
	"time"

	"github.com/ClickHouse/clickhouse-go/v2"
	"github.com/ClickHouse/clickhouse-go/v2/lib/driver"

	"reklamito/internal/config/configs"
)

// NewClickHouseConn opens a native protocol connection to the analytics
// store and verifies connectivity with a 5 second ping. TLS is enabled when
// a CA certificate path is configured. The caller must close the returned
// connection.
func NewClickHouseConn(ctx context.Context, cfg configs.ClickHouse) (driver.Conn, error) {
	opts := &clickhouse.Options{
		Addr: []string{cfg.Addr},
		Auth: clickhouse.Auth{
			Database: cfg.Database,
			Username: cfg.User,
			Password: cfg.Password,
		},
	}
	if cfg.CACertPath != "" {
		tlsConf, err := tlsConfig(cfg.CACertPath)
		if err != nil {
			return nil, err
		}
		opts.TLS = tlsConf
	}
	conn, err := clickhouse.Open(opts)
	if err != nil {
		return nil, err
	}

	ctxPing, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err = conn.Ping(ctxPing); err != nil {
		_ = conn.Close()
		return nil, err
	}
	return conn, nil
}
