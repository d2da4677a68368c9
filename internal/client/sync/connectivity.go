package sync

import (
	"context"
	"log/slog"
	"time"

	httpclient "github.com/momentumos/momentum/internal/client/api"
)

// Probe is the connectivity signal source: it polls the backend health
// endpoint and feeds Online/Offline transitions into the sync service.
// There is no intermediate "reconnecting" state.
type Probe struct {
	apiClient httpclient.ClientAPI
	sync      Service
	logger    *slog.Logger
	interval  time.Duration
}

// NewProbe creates a connectivity probe.
func NewProbe(apiClient httpclient.ClientAPI, syncService Service, interval time.Duration, logger *slog.Logger) *Probe {
	if interval <= 0 {
		interval = 10 * time.Second
	}
	return &Probe{
		apiClient: apiClient,
		sync:      syncService,
		logger:    logger,
		interval:  interval,
	}
}

// Run polls until ctx is done. The first check happens immediately so a
// queue persisted by a prior session gets flushed at load.
func (p *Probe) Run(ctx context.Context) error {
	p.Check(ctx)

	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			p.Check(ctx)
		}
	}
}

// Check performs a single connectivity check and pushes the result into
// the sync service. One-shot CLI commands call it before executing.
func (p *Probe) Check(ctx context.Context) {
	checkCtx, cancel := context.WithTimeout(ctx, p.interval)
	defer cancel()

	err := p.apiClient.Healthz(checkCtx)
	if err != nil {
		p.logger.Debug("health probe failed", "error", err)
	}
	p.sync.SetOnline(ctx, err == nil)
}
