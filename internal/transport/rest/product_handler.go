package rest

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"cartify-server/internal/domain"
)

type ProductHandler struct {
	svc domain.ProductService
}

func NewProductHandler(svc domain.ProductService) *ProductHandler {
	return &ProductHandler{svc: svc}
}

func (h *ProductHandler) Index(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	opts := domain.ListOptions{
		Page:  GetInt(q, "page", 1),
		Limit: GetInt(q, "limit", 10),
	}

	result, err := h.svc.GetAll(r.Context(), opts)
	if err != nil {
		JSONError(w, http.StatusInternalServerError, "Failed to retrieve products")
		return
	}

	JSONData(w, http.StatusOK, result)
}

func (h *ProductHandler) Show(w http.ResponseWriter, r *http.Request) {
	productID, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		JSONError(w, http.StatusBadRequest, "Invalid product id")
		return
	}

	product, err := h.svc.Get(r.Context(), productID)
	if err != nil {
		if errors.Is(err, domain.ErrProductNotFound) {
			JSONError(w, http.StatusNotFound, "Product not found")
			return
		}
		JSONError(w, http.StatusInternalServerError, "Failed to retrieve product")
		return
	}

	JSONData(w, http.StatusOK, product)
}

func (h *ProductHandler) Store(w http.ResponseWriter, r *http.Request) {
	var req domain.ProductCreateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		JSONError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if validationErrors := ValidateStruct(req); len(validationErrors) > 0 {
		JSONValidationError(w, validationErrors)
		return
	}

	product, err := h.svc.Create(r.Context(), req)
	if err != nil {
		if errors.Is(err, domain.ErrProductAlreadyExists) {
			JSONError(w, http.StatusConflict, "Product already exists")
			return
		}
		JSONError(w, http.StatusBadRequest, "Failed to create product")
		return
	}

	JSONData(w, http.StatusCreated, product)
}

func (h *ProductHandler) Update(w http.ResponseWriter, r *http.Request) {
	productID, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		JSONError(w, http.StatusBadRequest, "Invalid product id")
		return
	}

	var req domain.ProductUpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		JSONError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if validationErrors := ValidateStruct(req); len(validationErrors) > 0 {
		JSONValidationError(w, validationErrors)
		return
	}

	product, err := h.svc.Update(r.Context(), req, productID)
	if err != nil {
		if errors.Is(err, domain.ErrProductNotFound) {
			JSONError(w, http.StatusNotFound, "Product not found")
			return
		}
		if errors.Is(err, domain.ErrProductAlreadyExists) {
			JSONError(w, http.StatusConflict, "Product already exists")
			return
		}
		JSONError(w, http.StatusBadRequest, "Failed to update product")
		return
	}

	JSONData(w, http.StatusOK, product)
}

func (h *ProductHandler) Destroy(w http.ResponseWriter, r *http.Request) {
	productID, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		JSONError(w, http.StatusBadRequest, "Invalid product id")
		return
	}

	if err := h.svc.Delete(r.Context(), productID); err != nil {
		if errors.Is(err, domain.ErrProductNotFound) {
			JSONError(w, http.StatusNotFound, "Product not found")
			return
		}
		JSONError(w, http.StatusBadRequest, "Failed to delete product")
		return
	}

	JSONSuccess(w, http.StatusOK, APIResponse{
		Message: "Product deleted successfully",
	})
}
