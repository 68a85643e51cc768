package usecase

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/rocketscienceinc/catanview/internal/apperror"
	"github.com/rocketscienceinc/catanview/internal/entity"
)

type matchSource interface {
	GetMatch(ctx context.Context, id int) (*entity.Match, error)
}

type snapshotRepo interface {
	Save(ctx context.Context, match *entity.Match) error
	GetByID(ctx context.Context, id int) (*entity.Match, error)
	DeleteByID(ctx context.Context, id int) error
}

type boardRenderer interface {
	WriteSVG(w io.Writer, snapshot *entity.Snapshot)
	WritePNG(w io.Writer, snapshot *entity.Snapshot) error
}

// Frame - the snapshot picked for display and its place in the match history.
type Frame struct {
	Match    *entity.Match
	Snapshot *entity.Snapshot
	Index    int
}

func (that *Frame) HasPrevious() bool {
	return that.Match.HasPrevious(that.Index)
}

func (that *Frame) HasNext() bool {
	return that.Match.HasNext(that.Index)
}

// MatchViewer - loads match histories through the cache and renders single frames.
type MatchViewer struct {
	logger *slog.Logger

	source       matchSource
	snapshotRepo snapshotRepo
	renderer     boardRenderer
}

func NewMatchViewer(logger *slog.Logger, source matchSource, snapshotRepo snapshotRepo, renderer boardRenderer) *MatchViewer {
	return &MatchViewer{
		logger: logger.With("component", "viewer"),

		source:       source,
		snapshotRepo: snapshotRepo,
		renderer:     renderer,
	}
}

// Match - the cached history of match id, fetched and cached on a miss.
// Cache failures are logged and never fail the request.
func (that *MatchViewer) Match(ctx context.Context, id int) (*entity.Match, error) {
	log := that.logger.With("method", "Match", "match_id", id)

	if id <= 0 {
		return nil, apperror.ErrInvalidMatchID
	}

	cached, err := that.snapshotRepo.GetByID(ctx, id)
	if err == nil {
		return cached, nil
	}

	if !errors.Is(err, apperror.ErrSnapshotNotCached) {
		log.Warn("failed to read snapshot cache", "error", err)
	}

	match, err := that.source.GetMatch(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch match: %w", err)
	}

	if err = that.snapshotRepo.Save(ctx, match); err != nil {
		log.Warn("failed to cache snapshots", "error", err)
	}

	log.Info("match loaded", "snapshots", match.Len())

	return match, nil
}

// Frame - snapshot index of match id; out-of-range indexes are clamped.
func (that *MatchViewer) Frame(ctx context.Context, id, index int) (*Frame, error) {
	match, err := that.Match(ctx, id)
	if err != nil {
		return nil, err
	}

	snapshot, index := match.At(index)

	return &Frame{Match: match, Snapshot: snapshot, Index: index}, nil
}

func (that *MatchViewer) RenderSVG(ctx context.Context, id, index int, w io.Writer) error {
	frame, err := that.Frame(ctx, id, index)
	if err != nil {
		return err
	}

	that.renderer.WriteSVG(w, frame.Snapshot)

	return nil
}

func (that *MatchViewer) RenderPNG(ctx context.Context, id, index int, w io.Writer) error {
	frame, err := that.Frame(ctx, id, index)
	if err != nil {
		return err
	}

	if err = that.renderer.WritePNG(w, frame.Snapshot); err != nil {
		return fmt.Errorf("failed to render frame %d: %w", frame.Index, err)
	}

	return nil
}

// Refresh - drops the cached history of match id and fetches it again.
func (that *MatchViewer) Refresh(ctx context.Context, id int) (*entity.Match, error) {
	if id <= 0 {
		return nil, apperror.ErrInvalidMatchID
	}

	err := that.snapshotRepo.DeleteByID(ctx, id)
	if err != nil && !errors.Is(err, apperror.ErrSnapshotNotCached) {
		return nil, fmt.Errorf("failed to drop cached match: %w", err)
	}

	return that.Match(ctx, id)
}
