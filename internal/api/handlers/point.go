package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/daehokimm/point-service/internal/api/httpx"
	"github.com/daehokimm/point-service/internal/models"
	"github.com/daehokimm/point-service/internal/point"
)

type Point struct {
	svc *point.Service
	log *slog.Logger
}

func NewPoint(svc *point.Service, log *slog.Logger) *Point {
	return &Point{svc: svc, log: log}
}

type amountRequest struct {
	Amount int64 `json:"amount"`
}

func (h *Point) GetBalance(w http.ResponseWriter, r *http.Request) {
	id, ok := accountID(w, r)
	if !ok {
		return
	}
	b, err := h.svc.GetBalance(r.Context(), id)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, b)
}

func (h *Point) GetHistory(w http.ResponseWriter, r *http.Request) {
	id, ok := accountID(w, r)
	if !ok {
		return
	}
	hs, err := h.svc.GetHistory(r.Context(), id)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	if hs == nil {
		hs = []models.PointHistory{}
	}
	httpx.WriteJSON(w, http.StatusOK, hs)
}

func (h *Point) Charge(w http.ResponseWriter, r *http.Request) {
	h.update(w, r, h.svc.Charge)
}

func (h *Point) Use(w http.ResponseWriter, r *http.Request) {
	h.update(w, r, h.svc.Use)
}

func (h *Point) update(w http.ResponseWriter, r *http.Request, op func(context.Context, int64, int64) (models.PointBalance, error)) {
	id, ok := accountID(w, r)
	if !ok {
		return
	}
	var req amountRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.WriteError(w, http.StatusBadRequest, httpx.CodeBadRequest, "malformed body", nil)
		return
	}
	b, err := op(r.Context(), id, req.Amount)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, b)
}

func (h *Point) fail(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, point.ErrInvalidAmount):
		httpx.WriteError(w, http.StatusBadRequest, httpx.CodeInvalidAmount, err.Error(), nil)
	case errors.Is(err, point.ErrInsufficientBalance):
		httpx.WriteError(w, http.StatusConflict, httpx.CodeInsufficientBalance, err.Error(), nil)
	case errors.Is(err, point.ErrBalanceLimitExceeded):
		httpx.WriteError(w, http.StatusConflict, httpx.CodeBalanceLimitExceeded, err.Error(), nil)
	default:
		h.log.Error("point operation", "err", err, "path", r.URL.Path)
		httpx.WriteError(w, http.StatusInternalServerError, httpx.CodeInternalError, "internal error", nil)
	}
}

func accountID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id <= 0 {
		httpx.WriteError(w, http.StatusBadRequest, httpx.CodeBadRequest, "account id must be a positive integer", nil)
		return 0, false
	}
	return id, true
}
