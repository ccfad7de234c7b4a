package handlers

import (
	"errors"
	"io"
	"net/http"

	"github.com/rs/zerolog"

	"NUTRINO_BACK-END/internal/dto"
	"NUTRINO_BACK-END/internal/services"
	"NUTRINO_BACK-END/internal/utils"
)

// maxWebhookBody caps the raw body read before signature verification.
const maxWebhookBody = 1 << 20

// WebhookHandler receives Clerk events delivered through Svix
type WebhookHandler struct {
	provisioning *services.ProvisioningService
}

// NewWebhookHandler creates a new WebhookHandler instance
func NewWebhookHandler(provisioning *services.ProvisioningService) *WebhookHandler {
	return &WebhookHandler{provisioning: provisioning}
}

// Receive godoc
// @Summary      Clerk webhook
// @Description  Verifies a Svix signed Clerk event. user.created provisions a local user, other events are acknowledged.
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        svix-id         header  string  true  "Svix message id"
// @Param        svix-timestamp  header  string  true  "Svix timestamp (unix seconds)"
// @Param        svix-signature  header  string  true  "Svix signature"
// @Param        payload         body    dto.ClerkEvent  true  "Clerk event"
// @Success      200  {object}  dto.WebhookResponse
// @Success      201  {object}  dto.WebhookResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      401  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/v1/auth/webhook [post]
func (h *WebhookHandler) Receive(w http.ResponseWriter, r *http.Request) {
	payload, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxWebhookBody))
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			utils.WriteErrorResponse(w, http.StatusRequestEntityTooLarge, "Webhook payload too large", "")
			return
		}
		utils.WriteErrorResponse(w, http.StatusBadRequest, "Webhook processing failed", err.Error())
		return
	}

	res, err := h.provisioning.Handle(r.Context(), payload, r.Header)
	if err != nil {
		utils.WriteAppError(w, r, err)
		return
	}

	switch res.Outcome {
	case services.OutcomeCreated:
		zerolog.Ctx(r.Context()).Info().
			Int64("user_id", res.User.ID).
			Str("clerk_id", res.User.ClerkID).
			Msg("user created")
		utils.WriteJSONResponse(w, http.StatusCreated, dto.WebhookResponse{
			Success: true,
			Message: "User created successfully",
			Data:    res.User,
		})
	case services.OutcomeDuplicate:
		utils.WriteJSONResponse(w, http.StatusOK, dto.WebhookResponse{
			Success: true,
			Message: "Webhook already processed",
		})
	default:
		utils.WriteJSONResponse(w, http.StatusOK, dto.WebhookResponse{
			Success: true,
			Message: "Webhook received",
		})
	}
}
