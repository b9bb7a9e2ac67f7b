package dto

// HealthResponse reports service health
type HealthResponse struct {
	Status   string         `json:"status"`
	Database string         `json:"database"`
	Pool     map[string]any `json:"pool,omitempty"`
}
