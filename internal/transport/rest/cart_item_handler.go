package rest

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"cartify-server/internal/domain"
	"cartify-server/internal/transport/rest/middleware"
)

type CartItemHandler struct {
	svc domain.CartItemService
}

func NewCartItemHandler(svc domain.CartItemService) *CartItemHandler {
	return &CartItemHandler{svc: svc}
}

func (h *CartItemHandler) Index(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.GetUser(r.Context())
	if !ok {
		JSONError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	q := r.URL.Query()
	opts := domain.ListOptions{
		Page:  GetInt(q, "page", 1),
		Limit: GetInt(q, "limit", 10),
	}

	result, err := h.svc.GetAll(r.Context(), user.ID, opts)
	if err != nil {
		JSONError(w, http.StatusInternalServerError, "Failed to retrieve items")
		return
	}

	JSONData(w, http.StatusOK, result)
}

func (h *CartItemHandler) Show(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.GetUser(r.Context())
	if !ok {
		JSONError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	itemID, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		JSONError(w, http.StatusBadRequest, "Invalid item id")
		return
	}

	item, err := h.svc.Get(r.Context(), user.ID, itemID)
	if err != nil {
		if errors.Is(err, domain.ErrCartItemNotFound) {
			JSONError(w, http.StatusNotFound, "Item not found")
			return
		}
		JSONError(w, http.StatusInternalServerError, "Failed to retrieve item")
		return
	}

	JSONData(w, http.StatusOK, item)
}

func (h *CartItemHandler) Store(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.GetUser(r.Context())
	if !ok {
		JSONError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var req domain.CartItemCreateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		JSONError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if validationErrors := ValidateStruct(req); len(validationErrors) > 0 {
		JSONValidationError(w, validationErrors)
		return
	}

	item, err := h.svc.Create(r.Context(), user.ID, req)
	if err != nil {
		h.writeItemError(w, err, "Failed to create item")
		return
	}

	JSONData(w, http.StatusCreated, item)
}

func (h *CartItemHandler) Update(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.GetUser(r.Context())
	if !ok {
		JSONError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	itemID, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		JSONError(w, http.StatusBadRequest, "Invalid item id")
		return
	}

	var req domain.CartItemUpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		JSONError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if validationErrors := ValidateStruct(req); len(validationErrors) > 0 {
		JSONValidationError(w, validationErrors)
		return
	}

	item, err := h.svc.Update(r.Context(), user.ID, itemID, req)
	if err != nil {
		h.writeItemError(w, err, "Failed to update item")
		return
	}

	JSONData(w, http.StatusOK, item)
}

func (h *CartItemHandler) Destroy(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.GetUser(r.Context())
	if !ok {
		JSONError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	itemID, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		JSONError(w, http.StatusBadRequest, "Invalid item id")
		return
	}

	if err := h.svc.Delete(r.Context(), user.ID, itemID); err != nil {
		if errors.Is(err, domain.ErrCartItemNotFound) {
			JSONError(w, http.StatusNotFound, "Item not found")
			return
		}
		JSONError(w, http.StatusBadRequest, "Failed to delete item")
		return
	}

	JSONSuccess(w, http.StatusOK, APIResponse{
		Message: "Item deleted successfully",
	})
}

func (h *CartItemHandler) writeItemError(w http.ResponseWriter, err error, fallback string) {
	var stockErr *domain.InsufficientStockError

	switch {
	case errors.As(err, &stockErr):
		JSONError(w, http.StatusBadRequest, "Insufficient stock: "+strconv.FormatInt(stockErr.Available, 10)+" available")
	case errors.Is(err, domain.ErrCartItemNotFound):
		JSONError(w, http.StatusNotFound, "Item not found")
	case errors.Is(err, domain.ErrProductNotFound):
		JSONError(w, http.StatusNotFound, "Product not found")
	case errors.Is(err, domain.ErrCartNotFound):
		JSONError(w, http.StatusNotFound, "Cart not found")
	default:
		JSONError(w, http.StatusBadRequest, fallback)
	}
}
