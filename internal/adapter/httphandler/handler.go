package httphandler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/niksmo/aqua-plant/internal/core/domain"
	"github.com/niksmo/aqua-plant/internal/core/port"
)

// GET v1/plants (200 OK)
// GET v1/filter (200 OK)
// PATCH v1/filter JSON {"search_text"?, "size"?, "lighting"?, "difficulty"?} (200 OK, 400 Bad request)
// DELETE v1/filter (200 OK)

type CatalogHandler struct {
	lister   port.PlantsLister
	filterer port.PlantsFilterer
}

func RegisterCatalog(
	mux *http.ServeMux, lister port.PlantsLister, filterer port.PlantsFilterer,
) {
	h := CatalogHandler{lister, filterer}
	mux.HandleFunc("GET /v1/plants", h.GetPlants)
	mux.HandleFunc("GET /v1/filter", h.GetFilter)
	mux.HandleFunc("PATCH /v1/filter", h.PatchFilter)
	mux.HandleFunc("DELETE /v1/filter", h.DeleteFilter)
}

func (h CatalogHandler) GetPlants(w http.ResponseWriter, r *http.Request) {
	const op = "CatalogHandler.GetPlants"
	log := slog.With("op", op)

	ps, criteria, err := h.lister.Plants(r.Context())
	if err != nil {
		writeError(w, log, err)
		return
	}

	writeJSON(w, log, http.StatusOK, plantsResponse(ps, criteria))
}

func (h CatalogHandler) GetFilter(w http.ResponseWriter, r *http.Request) {
	const op = "CatalogHandler.GetFilter"
	log := slog.With("op", op)

	_, criteria, err := h.lister.Plants(r.Context())
	if err != nil {
		writeError(w, log, err)
		return
	}

	writeJSON(w, log, http.StatusOK, toFilter(criteria))
}

func (h CatalogHandler) PatchFilter(w http.ResponseWriter, r *http.Request) {
	const op = "CatalogHandler.PatchFilter"
	log := slog.With("op", op)

	var patch FilterPatch
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		http.Error(w, "invalid JSON data", http.StatusBadRequest)
		log.Warn("failed to parse JSON", "err", err)
		return
	}

	if _, err := h.filterer.SetFilter(r.Context(), patch.toDomain()); err != nil {
		writeError(w, log, err)
		return
	}

	h.GetPlants(w, r)
}

func (h CatalogHandler) DeleteFilter(w http.ResponseWriter, r *http.Request) {
	const op = "CatalogHandler.DeleteFilter"
	log := slog.With("op", op)

	if _, err := h.filterer.ResetFilter(r.Context()); err != nil {
		writeError(w, log, err)
		return
	}

	h.GetPlants(w, r)
}

func plantsResponse(
	ps []domain.Plant, criteria domain.FilterCriteria,
) PlantsResponse {
	return PlantsResponse{
		Filter: toFilter(criteria),
		Plants: toPlants(ps),
		Empty:  len(ps) == 0,
	}
}

// GET v1/cart (200 OK)
// POST v1/cart/{id} (200 OK, 400 Bad request, 404 Not found, 409 Conflict)
// DELETE v1/cart/{id} (200 OK, 400 Bad request, 404 Not found)

type CartHandler struct {
	keeper port.CartKeeper
}

func RegisterCart(mux *http.ServeMux, keeper port.CartKeeper) {
	h := CartHandler{keeper}
	mux.HandleFunc("GET /v1/cart", h.GetCart)
	mux.HandleFunc("POST /v1/cart/{id}", h.PostItem)
	mux.HandleFunc("DELETE /v1/cart/{id}", h.DeleteItem)
}

func (h CartHandler) GetCart(w http.ResponseWriter, r *http.Request) {
	const op = "CartHandler.GetCart"
	log := slog.With("op", op)

	summary, err := h.keeper.Cart(r.Context())
	if err != nil {
		writeError(w, log, err)
		return
	}

	writeJSON(w, log, http.StatusOK, toCart(summary))
}

func (h CartHandler) PostItem(w http.ResponseWriter, r *http.Request) {
	const op = "CartHandler.PostItem"
	log := slog.With("op", op)

	id, ok := plantID(w, r, log)
	if !ok {
		return
	}

	summary, err := h.keeper.AddToCart(r.Context(), id)
	if err != nil {
		writeError(w, log, err)
		return
	}

	log.Info("added", "plantID", id, "totalItems", summary.TotalItems)
	writeJSON(w, log, http.StatusOK, toCart(summary))
}

func (h CartHandler) DeleteItem(w http.ResponseWriter, r *http.Request) {
	const op = "CartHandler.DeleteItem"
	log := slog.With("op", op)

	id, ok := plantID(w, r, log)
	if !ok {
		return
	}

	summary, err := h.keeper.RemoveFromCart(r.Context(), id)
	if err != nil {
		writeError(w, log, err)
		return
	}

	log.Info("removed", "plantID", id, "totalItems", summary.TotalItems)
	writeJSON(w, log, http.StatusOK, toCart(summary))
}

func plantID(
	w http.ResponseWriter, r *http.Request, log *slog.Logger,
) (domain.PlantID, bool) {
	id, err := strconv.Atoi(r.PathValue("id"))
	if err != nil {
		http.Error(w, "invalid plant id", http.StatusBadRequest)
		log.Warn("failed to parse plant id", "err", err)
		return 0, false
	}
	return domain.PlantID(id), true
}

func writeError(w http.ResponseWriter, log *slog.Logger, err error) {
	switch {
	case errors.Is(err, domain.ErrInvalidFilter):
		http.Error(w, err.Error(), http.StatusBadRequest)
		log.Warn("invalid filter", "err", err)
	case errors.Is(err, domain.ErrPlantNotFound):
		http.Error(w, "plant not found", http.StatusNotFound)
		log.Warn("plant not found", "err", err)
	case errors.Is(err, domain.ErrOutOfStock):
		http.Error(w, "plant is out of stock", http.StatusConflict)
		log.Warn("out of stock", "err", err)
	default:
		http.Error(w, "service unavailable", http.StatusServiceUnavailable)
		log.Error("failed to handle request", "err", err)
	}
}

func writeJSON(w http.ResponseWriter, log *slog.Logger, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Error("failed to write response body", "err", err)
	}
}
