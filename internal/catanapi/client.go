package catanapi

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/rocketscienceinc/catanview/internal/apperror"
	"github.com/rocketscienceinc/catanview/internal/entity"
)

const gameStatesPath = "/api/v1/game"

// Client - reads recorded matches from the Catan AI server.
type Client struct {
	logger     *slog.Logger
	baseURL    string
	httpClient *http.Client
}

func New(logger *slog.Logger, baseURL string, timeout time.Duration) *Client {
	return &Client{
		logger:     logger.With("component", "catanapi"),
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
	}
}

// GetMatch - all snapshots of match id, oldest first. Every snapshot is validated.
func (that *Client) GetMatch(ctx context.Context, id int) (*entity.Match, error) {
	log := that.logger.With("method", "GetMatch", "match_id", id)

	if id <= 0 {
		return nil, apperror.ErrInvalidMatchID
	}

	query := url.Values{"gameId": []string{strconv.Itoa(id)}}
	endpoint := that.baseURL + gameStatesPath + "?" + query.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}

	req.Header.Set("Accept", "application/json")

	resp, err := that.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", apperror.ErrUpstreamAPI, err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return nil, apperror.ErrMatchNotFound
	case resp.StatusCode != http.StatusOK:
		return nil, fmt.Errorf("%w: status %d", apperror.ErrUpstreamAPI, resp.StatusCode)
	}

	var snapshots []entity.Snapshot
	if err = json.NewDecoder(resp.Body).Decode(&snapshots); err != nil {
		return nil, fmt.Errorf("%w: failed to decode snapshots: %w", apperror.ErrUpstreamAPI, err)
	}

	if len(snapshots) == 0 {
		return nil, apperror.ErrMatchNotFound
	}

	for i := range snapshots {
		if err = snapshots[i].Validate(); err != nil {
			return nil, fmt.Errorf("snapshot %d: %w", i, err)
		}
	}

	log.Debug("fetched match", "snapshots", len(snapshots))

	return &entity.Match{ID: id, Snapshots: snapshots}, nil
}
