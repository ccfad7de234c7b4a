package dto

import "NUTRINO_BACK-END/internal/models"

// WebhookResponse acknowledges a webhook delivery. Data is set when a user was created.
type WebhookResponse struct {
	Success bool         `json:"success"`
	Message string       `json:"message"`
	Data    *models.User `json:"data,omitempty"`
}
