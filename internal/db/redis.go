package db

import (
	"context"
	"crypto/tls"
	"crypto/x509"
	"fmt"
	"os"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"reklamito/internal/config/configs"
)

// NewRedisClient creates a Redis client for the counter store and verifies
// connectivity with a 5 second ping. TLS is enabled when a CA certificate
// path is configured. The caller must close the returned client.
func NewRedisClient(ctx context.Context, cfg configs.Redis) (*goredis.Client, error) {
	opts := &goredis.Options{
		Addr:     cfg.Addr,
		DB:       cfg.DB,
		Password: cfg.Password,
	}
	if cfg.CACertPath != "" {
		tlsConf, err := tlsConfig(cfg.CACertPath)
		if err != nil {
			return nil, err
		}
		opts.TLSConfig = tlsConf
	}
	rdb := goredis.NewClient(opts)

	ctxPing, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := rdb.Ping(ctxPing).Err(); err != nil {
		_ = rdb.Close()
		return nil, err
	}
	return rdb, nil
}

func tlsConfig(caPath string) (*tls.Config, error) {
	pem, err := os.ReadFile(caPath)
	if err != nil {
		return nil, err
	}
	pool := x509.NewCertPool()
	if !pool.AppendCertsFromPEM(pem) {
		return nil, fmt.Errorf("no certificates parsed from %s", caPath)
	}
	return &tls.Config{RootCAs: pool}, nil
}
