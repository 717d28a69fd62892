package foodserver

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"net/http"
	"regexp"
	"strconv"
	"strings"

	"foodadmin/internal/food"
	"foodadmin/internal/jsonutil"

	"github.com/go-chi/chi/v5"
	log "github.com/sirupsen/logrus"
)

// maxBodyBytes caps request bodies.
const maxBodyBytes = 1 << 20

// FoodHandler serves the /foods resource.
type FoodHandler struct {
	store *Store
	log   log.FieldLogger
}

// NewFoodHandler creates a handler backed by store.
func NewFoodHandler(store *Store, logger log.FieldLogger) *FoodHandler {
	return &FoodHandler{store: store, log: logger}
}

// ListFoods handles GET /foods.
func (h *FoodHandler) ListFoods(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, http.StatusOK, h.store.List())
}

// GetFood handles GET /foods/{id}.
func (h *FoodHandler) GetFood(w http.ResponseWriter, r *http.Request) {
	id, ok := h.foodID(w, r)
	if !ok {
		return
	}
	f, err := h.store.Get(id)
	if err != nil {
		h.writeStoreError(w, id, err)
		return
	}
	h.writeJSON(w, http.StatusOK, f)
}

// CreateFood handles POST /foods.
func (h *FoodHandler) CreateFood(w http.ResponseWriter, r *http.Request) {
	var d food.Draft
	if err := jsonutil.DecodeWithContext(http.MaxBytesReader(w, r.Body, maxBodyBytes), &d, "create food"); err != nil {
		h.log.WithError(err).Warn("invalid create body")
		h.writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if err := validate(d.Name, d.Price); err != nil {
		h.writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	created := h.store.Create(d)
	h.log.WithField("food", created.String()).Info("food created")
	h.writeJSON(w, http.StatusCreated, created)
}

// UpdateFood handles PUT /foods/{id}. The path id wins over any id in the body.
func (h *FoodHandler) UpdateFood(w http.ResponseWriter, r *http.Request) {
	id, ok := h.foodID(w, r)
	if !ok {
		return
	}
	var f food.Food
	if err := jsonutil.DecodeWithContext(http.MaxBytesReader(w, r.Body, maxBodyBytes), &f, "update food"); err != nil {
		h.log.WithError(err).WithField("id", id).Warn("invalid update body")
		h.writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if err := validate(f.Name, f.Price); err != nil {
		h.writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	updated, err := h.store.Update(id, f)
	if err != nil {
		h.writeStoreError(w, id, err)
		return
	}
	h.log.WithField("food", updated.String()).Info("food updated")
	h.writeJSON(w, http.StatusOK, updated)
}

// DeleteFood handles DELETE /foods/{id}.
func (h *FoodHandler) DeleteFood(w http.ResponseWriter, r *http.Request) {
	id, ok := h.foodID(w, r)
	if !ok {
		return
	}
	if err := h.store.Delete(id); err != nil {
		h.writeStoreError(w, id, err)
		return
	}
	h.log.WithField("id", id).Info("food deleted")
	w.WriteHeader(http.StatusNoContent)
}

// Health handles GET /health.
func (h *FoodHandler) Health(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, http.StatusOK, map[string]any{"status": "ok", "foods": h.store.Len()})
}

func (h *FoodHandler) foodID(w http.ResponseWriter, r *http.Request) (int, bool) {
	raw := chi.URLParam(r, "id")
	id, err := strconv.Atoi(raw)
	if err != nil {
		h.log.WithField("id", raw).Warn("invalid food id")
		h.writeError(w, http.StatusBadRequest, "invalid id")
		return 0, false
	}
	return id, true
}

// priceRe accepts plain decimal text: no sign, exponent, hex or NaN/Inf.
var priceRe = regexp.MustCompile(`^\d+(\.\d+)?$`)

// validate is the only validation the API enforces.
func validate(name, price string) error {
	if strings.TrimSpace(name) == "" {
		return errors.New("name is required")
	}
	p := strings.TrimSpace(price)
	if !priceRe.MatchString(p) {
		return fmt.Errorf("price %q is not a valid amount", price)
	}
	v, err := strconv.ParseFloat(p, 64)
	if err != nil || math.IsInf(v, 0) || math.IsNaN(v) {
		return fmt.Errorf("price %q is not a valid amount", price)
	}
	return nil
}

func (h *FoodHandler) writeStoreError(w http.ResponseWriter, id int, err error) {
	if errors.Is(err, ErrNotFound) {
		h.writeError(w, http.StatusNotFound, "food not found")
		return
	}
	h.log.WithError(err).WithField("id", id).Error("store failure")
	h.writeError(w, http.StatusInternalServerError, "internal server error")
}

func (h *FoodHandler) writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		h.log.WithError(err).Error("failed to encode JSON response")
	}
}

func (h *FoodHandler) writeError(w http.ResponseWriter, status int, message string) {
	h.writeJSON(w, status, map[string]string{"error": message})
}
