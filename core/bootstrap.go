package core

import (
	"context"
	"time"

	"volscan/config"
	"volscan/pkg/http"

	log "github.com/sirupsen/logrus"
)

// Bootstrap builds the run's session and primes it. A priming failure is
// logged and the run carries on without cookies.
func Bootstrap(ctx context.Context, cfg config.Config) *http.Session {
	log.Info("🦾 Bootstrapping...")

	session := http.NewSession(http.SessionConfig{
		BaseUrl: cfg.Endpoint.BaseUrl,
		Timeout: cfg.Endpoint.Timeout,
		Referer: cfg.Endpoint.Referer,
		Headers: cfg.Endpoint.Headers,
		Debug:   log.IsLevelEnabled(log.TraceLevel),
	})

	log.Infof("establishing session with %s", cfg.Endpoint.BaseUrl)
	if err := session.Prime(ctx); err != nil {
		log.Errorf("fail to establish session, continuing: %v", err)
	} else {
		log.Info("session established")
	}

	pause(ctx, cfg.Fetch.PrimingPause)
	return session
}

func pause(ctx context.Context, d time.Duration) {
	if d <= 0 {
		return
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
	case <-timer.C:
	}
}
