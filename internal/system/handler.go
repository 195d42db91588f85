// Package system serves the endpoints that are not tied to a resource.
package system

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/ferdiebergado/riskapi/internal/pkg/errs"
	"github.com/ferdiebergado/riskapi/internal/pkg/message"
	"github.com/ferdiebergado/riskapi/internal/pkg/web"
)

type Migrator interface {
	Up(ctx context.Context) (int, error)
}

type Pinger interface {
	PingContext(ctx context.Context) error
}

type Handler struct {
	migrator Migrator
	db       Pinger
}

func NewHandler(migrator Migrator, db Pinger) *Handler {
	return &Handler{migrator: migrator, db: db}
}

func (h *Handler) Index(w http.ResponseWriter, _ *http.Request) {
	web.Text(w, http.StatusOK, message.Greeting)
}

// Build creates the tables when they do not exist yet.
func (h *Handler) Build(w http.ResponseWriter, r *http.Request) {
	applied, err := h.migrator.Up(r.Context())
	if err != nil {
		web.RespondError(w, fmt.Errorf("build schema: %w", errs.FromDB(err)))
		return
	}

	slog.Info("Schema is up to date.", "applied", applied)
	web.Text(w, http.StatusOK, message.ModelsCreated)
}

func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	if err := h.db.PingContext(r.Context()); err != nil {
		reason := fmt.Errorf("%w: ping: %w", errs.ErrUnavailable, err)
		web.Fail(w, http.StatusServiceUnavailable, reason, message.Unavailable, nil)
		return
	}

	web.OK(w, http.StatusOK, web.Success())
}

// Options answers preflight requests on resource routes.
func (h *Handler) Options(w http.ResponseWriter, _ *http.Request) {
	web.OK(w, http.StatusOK, web.Success())
}
