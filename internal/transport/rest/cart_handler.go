package rest

import (
	"errors"
	"net/http"

	"cartify-server/internal/domain"
	"cartify-server/internal/transport/rest/middleware"
)

type CartHandler struct {
	svc domain.CartService
}

func NewCartHandler(svc domain.CartService) *CartHandler {
	return &CartHandler{svc: svc}
}

func (h *CartHandler) Show(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.GetUser(r.Context())
	if !ok {
		JSONError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	cart, err := h.svc.Get(r.Context(), user.ID)
	if err != nil {
		if errors.Is(err, domain.ErrCartNotFound) {
			JSONError(w, http.StatusNotFound, "Cart not found")
			return
		}
		JSONError(w, http.StatusInternalServerError, "Failed to retrieve cart")
		return
	}

	JSONData(w, http.StatusOK, cart)
}
