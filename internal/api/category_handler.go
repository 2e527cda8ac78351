package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/usama6513/convert-api/internal/api/shared"
	"github.com/usama6513/convert-api/internal/service"
)

// CategoryHandler handles category and unit listing HTTP requests
type CategoryHandler struct {
	converter service.ConverterService
}

// NewCategoryHandler creates a new CategoryHandler
func NewCategoryHandler(converter service.ConverterService) *CategoryHandler {
	return &CategoryHandler{converter: converter}
}

// ListCategories handles GET /api/categories requests
func (h *CategoryHandler) ListCategories(w http.ResponseWriter, r *http.Request) {
	categories := h.converter.Categories()

	response := make([]CategoryResponse, 0, len(categories))
	for _, c := range categories {
		response = append(response, CategoryResponse{
			Name:     c.Name,
			Strategy: string(c.Strategy),
			Units:    c.UnitNames(),
		})
	}

	shared.RespondWithJSON(w, r, http.StatusOK, response)
}

// ListUnits handles GET /api/categories/{category}/units requests
func (h *CategoryHandler) ListUnits(w http.ResponseWriter, r *http.Request) {
	category := chi.URLParam(r, "category")

	units, err := h.converter.Units(category)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, CategoryResponse{
		Name:  category,
		Units: units,
	})
}
