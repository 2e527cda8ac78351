package api

import "time"

// Common request/response structures

// ConvertRequest defines the payload for the structured conversion endpoint.
type ConvertRequest struct {
	Value    float64 `json:"value"`
	FromUnit string  `json:"from_unit" validate:"required,min=1"`
	ToUnit   string  `json:"to_unit"   validate:"required,min=1"`
}

// ConvertTextRequest defines the payload for the natural-language
// conversion endpoint.
type ConvertTextRequest struct {
	Text string `json:"text" validate:"required,min=1"`
}

// ConvertResponse defines the successful response for both conversion endpoints.
type ConvertResponse struct {
	Value    float64 `json:"value"`
	FromUnit string  `json:"from_unit"`
	ToUnit   string  `json:"to_unit"`
	Result   float64 `json:"result"`
	Category string  `json:"category"`
	Method   string  `json:"method"`
}

// CategoryResponse describes one unit category.
type CategoryResponse struct {
	Name     string   `json:"name"`
	Strategy string   `json:"strategy,omitempty"`
	Units    []string `json:"units,omitempty"`
}

// HistoryEntryResponse describes one recorded conversion.
type HistoryEntryResponse struct {
	ID        string    `json:"id"`
	Value     float64   `json:"value"`
	FromUnit  string    `json:"from_unit"`
	ToUnit    string    `json:"to_unit"`
	Result    float64   `json:"result"`
	Category  string    `json:"category"`
	Method    string    `json:"method"`
	CreatedAt time.Time `json:"created_at"`
}
