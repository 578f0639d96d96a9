package postgres

import (
	"crypto/tls"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/jsamuelsen11/todo-service/internal/platform/config"
)

// applyTLS forces an encrypted transport when settings.Enabled is true,
// overriding whatever sslmode the URL asked for. Plaintext fallbacks are
// dropped so a failed TLS handshake is never retried unencrypted.
func applyTLS(cfg *pgconn.Config, settings config.TLSConfig) {
	if !settings.Enabled {
		return
	}

	cfg.TLSConfig = newTLSConfig(cfg.Host, settings.SkipVerify)

	fallbacks := make([]*pgconn.FallbackConfig, 0, len(cfg.Fallbacks))
	for _, fb := range cfg.Fallbacks {
		if fb.TLSConfig == nil {
			continue
		}
		fb.TLSConfig = newTLSConfig(fb.Host, settings.SkipVerify)
		fallbacks = append(fallbacks, fb)
	}
	cfg.Fallbacks = fallbacks
}

func newTLSConfig(host string, skipVerify bool) *tls.Config {
	return &tls.Config{
		ServerName:         host,
		MinVersion:         tls.VersionTLS12,
		InsecureSkipVerify: skipVerify, //nolint:gosec // managed Postgres certificates do not chain to a public root
	}
}
