package api

import (
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/usama6513/convert-api/internal/api/shared"
	"github.com/usama6513/convert-api/internal/service"
)

// ConvertHandler handles conversion-related HTTP requests
type ConvertHandler struct {
	converter service.ConverterService
	validator *validator.Validate
}

// NewConvertHandler creates a new ConvertHandler
func NewConvertHandler(converter service.ConverterService) *ConvertHandler {
	return &ConvertHandler{
		converter: converter,
		validator: validator.New(),
	}
}

// Convert handles POST /api/convert requests
func (h *ConvertHandler) Convert(w http.ResponseWriter, r *http.Request) {
	var req ConvertRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := h.validator.Struct(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	result, err := h.converter.Convert(r.Context(), req.Value, req.FromUnit, req.ToUnit)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, resultToDTOResponse(result))
}

// ConvertText handles POST /api/convert/text requests
func (h *ConvertHandler) ConvertText(w http.ResponseWriter, r *http.Request) {
	var req ConvertTextRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := h.validator.Struct(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	result, err := h.converter.ConvertText(r.Context(), req.Text)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, resultToDTOResponse(result))
}

// resultToDTOResponse converts a service.Result to a ConvertResponse
func resultToDTOResponse(result service.Result) ConvertResponse {
	return ConvertResponse{
		Value:    result.Value,
		FromUnit: result.FromUnit,
		ToUnit:   result.ToUnit,
		Result:   result.Result,
		Category: result.Category,
		Method:   result.Method,
	}
}
