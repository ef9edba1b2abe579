package services

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"
)

// Revalidator tells the frontend's on-demand revalidation endpoint to
// regenerate cached renders of specific pages. Calls are best-effort: the
// database write has already committed by the time this runs, so failures are
// logged and swallowed rather than rolled back into the HTTP response.
type Revalidator struct {
	endpoint string
	secret   string
	client   *http.Client
	logger   zerolog.Logger
}

func NewRevalidator(endpoint, secret string) *Revalidator {
	logger := log.With().Str("serviceName", "revalidator").Logger()

	return &Revalidator{
		endpoint: endpoint,
		secret:   secret,
		client:   &http.Client{Timeout: 5 * time.Second},
		logger:   logger,
	}
}

// RevalidatePaths notifies the frontend about every affected path, fanning the
// calls out concurrently and waiting for all of them before returning.
func (s *Revalidator) RevalidatePaths(ctx context.Context, paths ...string) {
	if s.endpoint == "" {
		s.logger.Warn().Strs("paths", paths).Msg("REVALIDATE_URL not configured, skipping cache revalidation")
		return
	}

	g, ctx := errgroup.WithContext(ctx)
	for _, path := range paths {
		path := path
		g.Go(func() error {
			s.revalidate(ctx, path)
			return nil
		})
	}
	g.Wait()
}

func (s *Revalidator) revalidate(ctx context.Context, path string) {
	payload, err := json.Marshal(map[string]string{
		"path":   path,
		"secret": s.secret,
	})
	if err != nil {
		s.logger.Error().Err(err).Str("path", path).Msg("Error marshaling revalidation request")
		return
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.endpoint, bytes.NewReader(payload))
	if err != nil {
		s.logger.Error().Err(err).Str("path", path).Msg("Error building revalidation request")
		return
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		s.logger.Error().Err(err).Str("path", path).Msg("Error calling revalidation endpoint")
		return
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		s.logger.Error().Int("status", resp.StatusCode).Str("path", path).Msg("Revalidation endpoint returned non-200 status")
		return
	}

	s.logger.Debug().Str("path", path).Msg("Revalidated path")
}
