package sync

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/geotrail/backend/internal/application/jobs"
	"github.com/geotrail/backend/internal/domain/shared"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// HTTPTouristicSource pulls touristic content updates from an external
// provider over a JSON API. Records are keyed by their external ID so
// repeated pulls are idempotent.
type HTTPTouristicSource struct {
	baseURL string
	apiKey  string
	client  *http.Client
	logger  *zap.Logger
}

var _ jobs.TouristicSource = (*HTTPTouristicSource)(nil)

// NewHTTPTouristicSource creates a source against the given provider URL
func NewHTTPTouristicSource(baseURL, apiKey string, timeout time.Duration, logger *zap.Logger) *HTTPTouristicSource {
	if timeout == 0 {
		timeout = 30 * time.Second
	}
	return &HTTPTouristicSource{
		baseURL: baseURL,
		apiKey:  apiKey,
		client:  &http.Client{Timeout: timeout},
		logger:  logger,
	}
}

// touristicPayload mirrors the provider's update feed
type touristicPayload struct {
	Records []struct {
		EID           string  `json:"eid"`
		Name          string  `json:"name"`
		Teaser        string  `json:"teaser"`
		Description   string  `json:"description"`
		Practical     string  `json:"practical_info"`
		Contact       string  `json:"contact"`
		Email         string  `json:"email"`
		Website       string  `json:"website"`
		ReservationID string  `json:"reservation_id"`
		CategoryID    string  `json:"category_id"`
		StructureID   string  `json:"structure_id"`
		Longitude     float64 `json:"lon"`
		Latitude      float64 `json:"lat"`
	} `json:"records"`
}

// FetchUpdates downloads all records modified since the given time.
// A structure filter narrows the feed to one organization's records.
func (s *HTTPTouristicSource) FetchUpdates(ctx context.Context, since time.Time, structureID *uuid.UUID) ([]jobs.TouristicRecord, error) {
	endpoint, err := url.Parse(s.baseURL + "/updates")
	if err != nil {
		return nil, fmt.Errorf("parse source url: %w", err)
	}
	q := endpoint.Query()
	q.Set("since", since.UTC().Format(time.RFC3339))
	if structureID != nil {
		q.Set("structure_id", structureID.String())
	}
	endpoint.RawQuery = q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if s.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+s.apiKey)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch touristic updates: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("touristic source returned status %d", resp.StatusCode)
	}

	var payload touristicPayload
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("decode touristic updates: %w", err)
	}

	records := make([]jobs.TouristicRecord, 0, len(payload.Records))
	for _, raw := range payload.Records {
		if raw.EID == "" {
			s.logger.Warn("Skipping touristic record without external ID", zap.String("name", raw.Name))
			continue
		}
		categoryID, err := uuid.Parse(raw.CategoryID)
		if err != nil {
			s.logger.Warn("Skipping touristic record with bad category",
				zap.String("eid", raw.EID), zap.String("category_id", raw.CategoryID))
			continue
		}
		structID, err := uuid.Parse(raw.StructureID)
		if err != nil {
			s.logger.Warn("Skipping touristic record with bad structure",
				zap.String("eid", raw.EID), zap.String("structure_id", raw.StructureID))
			continue
		}
		records = append(records, jobs.TouristicRecord{
			EID:           raw.EID,
			Name:          raw.Name,
			Teaser:        raw.Teaser,
			Description:   raw.Description,
			Practical:     raw.Practical,
			Contact:       raw.Contact,
			Email:         raw.Email,
			Website:       raw.Website,
			ReservationID: raw.ReservationID,
			CategoryID:    categoryID,
			StructureID:   structID,
			Geometry:      shared.NewPoint(raw.Longitude, raw.Latitude, shared.SRIDWGS84),
		})
	}
	return records, nil
}
