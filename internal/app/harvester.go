package app

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/samvad-hq/dogceo-go/internal/config"
	"github.com/samvad-hq/dogceo-go/internal/harvest"
	"github.com/samvad-hq/dogceo-go/internal/logger"
	"github.com/samvad-hq/dogceo-go/internal/storage"
	"github.com/samvad-hq/dogceo-go/pkg/dogceo"
	"github.com/samvad-hq/dogceo-go/pkg/publishers"
	"github.com/samvad-hq/dogceo-go/pkg/targets"
)

// Harvester represents the image harvester runtime. It runs the harvest loop
// against the dog.ceo client, owns the seen-image store and the publisher fanout.
type Harvester struct {
	cfg      *config.Config
	targets  []targets.Target
	fanout   *publishers.Fanout
	service  *harvest.Service
	interval time.Duration
	log      logger.Logger
	store    storage.Store
}

// NewHarvester builds a harvester runtime from config files.
func NewHarvester(ctx context.Context, cfg *config.Config, log logger.Logger) (*Harvester, error) {
	if cfg == nil {
		return nil, fmt.Errorf("config must not be nil")
	}
	if log == nil {
		log = &logger.NopLogger{}
	}
	if ctx == nil {
		ctx = context.Background()
	}

	targetReg, err := targets.LoadRegistry(cfg.TargetsFile)
	if err != nil {
		return nil, fmt.Errorf("load targets registry: %w", err)
	}
	enabledTargets := targetReg.Enabled()
	targetIDs := make([]string, 0, len(enabledTargets))
	for _, t := range enabledTargets {
		targetIDs = append(targetIDs, t.ID)
	}
	log.InfoObj("targets registry loaded", "targets_meta", map[string]any{
		"count": len(targetIDs),
		"ids":   targetIDs,
	})

	publisherReg, err := publishers.LoadRegistry(cfg.PublishersFile)
	if err != nil {
		return nil, fmt.Errorf("load publishers registry: %w", err)
	}
	enabledPublishers := publisherReg.Enabled()
	if len(enabledPublishers) == 0 {
		return nil, fmt.Errorf("no publishers configured")
	}

	pubClients, err := publishers.BuildAll(ctx, publishers.DefaultRegistry(), enabledPublishers, log)
	if err != nil {
		return nil, fmt.Errorf("build publishers: %w", err)
	}
	fanout := publishers.NewFanout(pubClients)
	publisherSummaries := make([]map[string]string, 0, len(enabledPublishers))
	for _, pubCfg := range enabledPublishers {
		publisherSummaries = append(publisherSummaries, map[string]string{
			"id":   pubCfg.ID,
			"type": pubCfg.Type,
		})
	}
	log.InfoObj("publishers registry loaded", "publishers_meta", map[string]any{
		"count":      len(publisherSummaries),
		"publishers": publisherSummaries,
	})

	store, err := storage.NewStore(cfg.StorageType, cfg.BBoltPath, storage.Options{
		ImageTTL:        cfg.StorageTTL,
		CleanupInterval: cfg.StorageCleanupInterval,
	})
	if err != nil {
		_ = fanout.Close()
		return nil, fmt.Errorf("init storage: %w", err)
	}
	log.InfoObj("storage initialized", "storage_config", map[string]any{
		"type":                     cfg.StorageType,
		"path":                     cfg.BBoltPath,
		"image_ttl_seconds":        int(cfg.StorageTTL.Seconds()),
		"cleanup_interval_seconds": int(cfg.StorageCleanupInterval.Seconds()),
	})

	client := dogceo.New(
		dogceo.WithBaseURL(cfg.BaseURL),
		dogceo.WithTimeout(cfg.HTTPTimeout),
		dogceo.WithLogger(log),
	)

	return &Harvester{
		cfg:      cfg,
		targets:  enabledTargets,
		fanout:   fanout,
		service:  harvest.NewService(client, fanout, log, store),
		interval: cfg.HarvestInterval,
		log:      log,
		store:    store,
	}, nil
}

// Run starts the harvest loop until the context is cancelled.
func (h *Harvester) Run(ctx context.Context) error {
	if h == nil || h.service == nil {
		return fmt.Errorf("harvester is not initialized")
	}
	defer h.close()

	if len(h.targets) == 0 {
		h.log.WarnObj("no enabled targets; harvester idle", "targets_file", h.cfg.TargetsFile)
		<-ctx.Done()
		return nil
	}

	h.log.InfoObj("harvester loop starting", "harvester_state", map[string]any{
		"targets_count":    len(h.targets),
		"publishers_count": h.fanout.Size(),
		"interval":         h.interval.String(),
	})

	if err := h.runOnce(ctx); err != nil {
		h.log.ErrorObj("initial harvest failed", "error", err)
	}

	ticker := time.NewTicker(h.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			h.log.InfoObj("harvester loop exiting", "reason", ctx.Err())
			return nil
		case <-ticker.C:
			if err := h.runOnce(ctx); err != nil {
				h.log.ErrorObj("scheduled harvest failed", "error", err)
			}
		}
	}
}

// runOnce performs a single harvest pass across all targets.
func (h *Harvester) runOnce(ctx context.Context) error {
	start := time.Now()
	h.log.InfoObj("harvest started", "harvest_meta", map[string]any{
		"targets_count": len(h.targets),
		"started_at":    start.UTC(),
	})
	if err := h.service.Run(ctx, h.targets); err != nil {
		return err
	}
	h.log.InfoObj("harvest completed", "harvest_meta", map[string]any{
		"targets_count": len(h.targets),
		"elapsed_ms":    time.Since(start).Milliseconds(),
	})
	return nil
}

// close releases the store and publisher connections, logging any errors encountered.
func (h *Harvester) close() {
	var errs []error
	if h.store != nil {
		errs = append(errs, h.store.Close())
	}
	errs = append(errs, h.fanout.Close())
	if err := errors.Join(errs...); err != nil {
		h.log.ErrorObj("harvester shutdown failed", "error", err)
	}
}
