package api

import (
	"log/slog"
	"net/http"

	"github.com/usama6513/convert-api/internal/api/shared"
	"github.com/usama6513/convert-api/internal/service"
)

// HistoryHandler handles conversion history HTTP requests
type HistoryHandler struct {
	converter service.ConverterService
}

// NewHistoryHandler creates a new HistoryHandler
func NewHistoryHandler(converter service.ConverterService) *HistoryHandler {
	return &HistoryHandler{converter: converter}
}

// ListHistory handles GET /api/history requests
func (h *HistoryHandler) ListHistory(w http.ResponseWriter, r *http.Request) {
	entries, err := h.converter.History(r.Context())
	if err != nil {
		slog.Error("Failed to list conversion history", "error", err)
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	response := make([]HistoryEntryResponse, 0, len(entries))
	for _, entry := range entries {
		response = append(response, HistoryEntryResponse{
			ID:        entry.ID.String(),
			Value:     entry.Value,
			FromUnit:  entry.FromUnit,
			ToUnit:    entry.ToUnit,
			Result:    entry.Result,
			Category:  entry.Category,
			Method:    entry.Method,
			CreatedAt: entry.CreatedAt,
		})
	}

	shared.RespondWithJSON(w, r, http.StatusOK, response)
}
