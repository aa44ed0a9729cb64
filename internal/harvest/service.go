package harvest

import (
	"context"
	"crypto/sha1" //nolint:gosec // non-cryptographic id generation
	"encoding/hex"
	"errors"
	"fmt"
	"strings"

	"github.com/samvad-hq/dogceo-go/internal/domain"
	"github.com/samvad-hq/dogceo-go/internal/logger"
	"github.com/samvad-hq/dogceo-go/pkg/publishers"
	"github.com/samvad-hq/dogceo-go/pkg/targets"
)

// Service pulls images for each target, drops already-published ones and publishes the rest.
type Service struct {
	source    targets.ImageSource
	publisher EventPublisher
	deduper   Deduper
	log       logger.Logger
}

// Result summarizes a single target pass.
type Result struct {
	TargetID  string
	Fetched   int
	Skipped   int
	Published int
}

// NewService wires a harvester with its image source, publisher and optional deduper.
func NewService(src targets.ImageSource, pub EventPublisher, log logger.Logger, deduper Deduper) *Service {
	if log == nil {
		log = &logger.NopLogger{}
	}
	return &Service{
		source:    src,
		publisher: pub,
		deduper:   deduper,
		log:       log,
	}
}

// Run executes a harvest pass over all targets. Failures are per target and joined.
func (s *Service) Run(ctx context.Context, list []targets.Target) error {
	if s == nil || s.source == nil || s.publisher == nil {
		return fmt.Errorf("harvest service is not initialized")
	}
	if len(list) == 0 {
		return fmt.Errorf("no targets configured for harvesting")
	}

	var errs []error
	for _, t := range list {
		if err := ctx.Err(); err != nil {
			errs = append(errs, err)
			break
		}
		res, err := s.RunTarget(ctx, t)
		if err != nil {
			errs = append(errs, err)
			s.log.ErrorObj("target harvest failed", "target_error", map[string]any{
				"target_id": t.ID,
				"error":     err.Error(),
			})
			continue
		}
		s.log.InfoObj("target harvest completed", "target_result", map[string]any{
			"target_id": res.TargetID,
			"fetched":   res.Fetched,
			"skipped":   res.Skipped,
			"published": res.Published,
		})
	}
	return errors.Join(errs...)
}

// RunTarget harvests a single target.
func (s *Service) RunTarget(ctx context.Context, t targets.Target) (Result, error) {
	res := Result{TargetID: t.ID}

	urls, err := t.Fetch(ctx, s.source)
	if err != nil {
		return res, fmt.Errorf("fetch target %s: %w", t.ID, err)
	}
	res.Fetched = len(urls)

	var errs []error
	for _, img := range buildImages(t, urls) {
		fresh, err := s.isFresh(img.ID)
		if err != nil {
			errs = append(errs, fmt.Errorf("dedupe image %s: %w", img.URL, err))
			continue
		}
		if !fresh {
			res.Skipped++
			continue
		}

		delivered, err := s.publisher.Publish(ctx, publishers.NewEvent(img))
		if err != nil {
			errs = append(errs, fmt.Errorf("publish image %s: %w", img.URL, err))
		}
		if delivered == 0 {
			continue
		}
		res.Published++
		if err := s.markPublished(img.ID); err != nil {
			errs = append(errs, fmt.Errorf("mark image %s: %w", img.URL, err))
		}
	}

	if len(errs) > 0 {
		return res, fmt.Errorf("target %s: %w", t.ID, errors.Join(errs...))
	}
	return res, nil
}

func (s *Service) isFresh(id string) (bool, error) {
	if s.deduper == nil {
		return true, nil
	}
	seen, err := s.deduper.SeenImage(id)
	return !seen, err
}

func (s *Service) markPublished(id string) error {
	if s.deduper == nil {
		return nil
	}
	return s.deduper.MarkImage(id)
}

// buildImages turns raw URLs into images, dropping blanks and duplicates within the batch.
func buildImages(t targets.Target, urls []string) []domain.Image {
	out := make([]domain.Image, 0, len(urls))
	seen := make(map[string]struct{}, len(urls))
	for _, u := range urls {
		u = strings.TrimSpace(u)
		if u == "" {
			continue
		}
		if _, dup := seen[u]; dup {
			continue
		}
		seen[u] = struct{}{}
		out = append(out, domain.Image{
			ID:       hashURL(u),
			TargetID: t.ID,
			Breed:    t.Breed,
			SubBreed: t.SubBreed,
			URL:      u,
		})
	}
	return out
}

func hashURL(u string) string {
	sum := sha1.Sum([]byte(u))
	return hex.EncodeToString(sum[:])
}
