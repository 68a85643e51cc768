package rest

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/rocketscienceinc/catanview/internal/apperror"
	"github.com/rocketscienceinc/catanview/internal/entity"
	"github.com/rocketscienceinc/catanview/internal/usecase"
)

type uViewer interface {
	Match(ctx context.Context, id int) (*entity.Match, error)
	Frame(ctx context.Context, id, index int) (*usecase.Frame, error)
	RenderSVG(ctx context.Context, id, index int, w io.Writer) error
	RenderPNG(ctx context.Context, id, index int, w io.Writer) error
	Refresh(ctx context.Context, id int) (*entity.Match, error)
}

type Handlers struct {
	logger *slog.Logger
	viewer uViewer

	canvasSize int
}

func NewHandlers(logger *slog.Logger, viewer uViewer, canvasSize int) *Handlers {
	return &Handlers{
		logger:     logger.With("component", "rest"),
		viewer:     viewer,
		canvasSize: canvasSize,
	}
}

func (that *Handlers) RegisterRoutes(r chi.Router) {
	r.Get("/", that.home)
	r.Get("/matches", that.openMatch)
	r.Route("/matches/{id}", func(r chi.Router) {
		r.Get("/", that.matchPage)
		r.Get("/board.svg", that.boardSVG)
		r.Get("/board.png", that.boardPNG)
		r.Get("/snapshots", that.snapshots)
		r.Post("/refresh", that.refresh)
	})
}

func (that *Handlers) home(w http.ResponseWriter, r *http.Request) {
	writeHTML(w, r, HomePage())
}

// openMatch - target of the match id form.
func (that *Handlers) openMatch(w http.ResponseWriter, r *http.Request) {
	id, err := parseMatchID(r.URL.Query().Get("id"))
	if err != nil {
		that.writeError(w, r, err)
		return
	}

	http.Redirect(w, r, matchURL(id, 0), http.StatusSeeOther)
}

func (that *Handlers) matchPage(w http.ResponseWriter, r *http.Request) {
	id, err := parseMatchID(chi.URLParam(r, "id"))
	if err != nil {
		that.writeError(w, r, err)
		return
	}

	frame, err := that.viewer.Frame(r.Context(), id, stateIndex(r))
	if err != nil {
		that.writeError(w, r, err)
		return
	}

	writeHTML(w, r, MatchPage(newMatchPageData(id, frame, that.canvasSize)))
}

func (that *Handlers) boardSVG(w http.ResponseWriter, r *http.Request) {
	id, err := parseMatchID(chi.URLParam(r, "id"))
	if err != nil {
		that.writeError(w, r, err)
		return
	}

	var buf bytes.Buffer
	if err = that.viewer.RenderSVG(r.Context(), id, stateIndex(r), &buf); err != nil {
		that.writeError(w, r, err)
		return
	}

	writeBody(w, "image/svg+xml", buf.Bytes())
}

func (that *Handlers) boardPNG(w http.ResponseWriter, r *http.Request) {
	id, err := parseMatchID(chi.URLParam(r, "id"))
	if err != nil {
		that.writeError(w, r, err)
		return
	}

	var buf bytes.Buffer
	if err = that.viewer.RenderPNG(r.Context(), id, stateIndex(r), &buf); err != nil {
		that.writeError(w, r, err)
		return
	}

	writeBody(w, "image/png", buf.Bytes())
}

func (that *Handlers) snapshots(w http.ResponseWriter, r *http.Request) {
	id, err := parseMatchID(chi.URLParam(r, "id"))
	if err != nil {
		that.writeError(w, r, err)
		return
	}

	match, err := that.viewer.Match(r.Context(), id)
	if err != nil {
		that.writeError(w, r, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err = json.NewEncoder(w).Encode(match); err != nil {
		that.logger.Error("failed to encode match", "error", err)
	}
}

func (that *Handlers) refresh(w http.ResponseWriter, r *http.Request) {
	id, err := parseMatchID(chi.URLParam(r, "id"))
	if err != nil {
		that.writeError(w, r, err)
		return
	}

	if _, err = that.viewer.Refresh(r.Context(), id); err != nil {
		that.writeError(w, r, err)
		return
	}

	http.Redirect(w, r, matchURL(id, 0), http.StatusSeeOther)
}

func (that *Handlers) writeError(w http.ResponseWriter, r *http.Request, err error) {
	log := that.logger.With("method", r.Method, "path", r.URL.Path)

	switch {
	case errors.Is(err, apperror.ErrInvalidMatchID):
		http.Error(w, apperror.ErrInvalidMatchID.Error(), http.StatusBadRequest)
	case errors.Is(err, apperror.ErrMatchNotFound):
		http.Error(w, apperror.ErrMatchNotFound.Error(), http.StatusNotFound)
	case errors.Is(err, apperror.ErrUpstreamAPI), errors.Is(err, apperror.ErrMalformedSnapshot):
		log.Warn("upstream failure", "error", err)
		http.Error(w, "catan server unavailable", http.StatusBadGateway)
	default:
		log.Error("request failed", "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
	}
}

func parseMatchID(raw string) (int, error) {
	id, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || id <= 0 {
		return 0, apperror.ErrInvalidMatchID
	}

	return id, nil
}

// stateIndex - the selected snapshot; missing or bad values select the first one.
func stateIndex(r *http.Request) int {
	index, err := strconv.Atoi(r.URL.Query().Get("state"))
	if err != nil {
		return 0
	}

	return index
}

func matchURL(id, index int) string {
	return "/matches/" + strconv.Itoa(id) + "?state=" + strconv.Itoa(index)
}

func writeBody(w http.ResponseWriter, contentType string, body []byte) {
	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Cache-Control", "no-cache")
	_, _ = w.Write(body)
}
