package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/site-content-api/internal/models"
)

// WarmSiteSettings primes the CDN edge for the site settings query at
// startup. Bounded retries with exponential backoff; a terminal failure
// is logged and the server keeps running, since every request path can
// still fetch on demand.
func WarmSiteSettings(ctx context.Context, content ContentService, log zerolog.Logger, attempts int, baseDelay time.Duration) {
	if attempts <= 0 {
		attempts = 3
	}
	if baseDelay <= 0 {
		baseDelay = time.Second
	}

	req := &models.ContentRequest{Kind: models.KindSiteSettings}
	delay := baseDelay

	for attempt := 1; attempt <= attempts; attempt++ {
		if _, err := content.Query(ctx, req); err == nil {
			log.Info().Int("attempt", attempt).Msg("Site settings warmed")
			return
		} else if attempt == attempts {
			log.Error().Err(err).Int("attempts", attempts).Msg("Site settings warmup failed, giving up")
			return
		} else {
			log.Warn().Err(err).Int("attempt", attempt).Msg("Site settings warmup attempt failed")
		}

		select {
		case <-ctx.Done():
			return
		case <-time.After(delay):
		}
		delay *= 2
	}
}
