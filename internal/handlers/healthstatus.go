package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"NUTRINO_BACK-END/internal/dto"
	"NUTRINO_BACK-END/internal/services"
	"NUTRINO_BACK-END/internal/utils"
)

// maxHealthStatusBody caps the JSON body of an upsert.
const maxHealthStatusBody = 64 << 10

// HealthStatusHandler serves the health profile endpoints
type HealthStatusHandler struct {
	profiles *services.HealthProfileService
	users    *services.UserService
}

// NewHealthStatusHandler creates a new HealthStatusHandler instance
func NewHealthStatusHandler(profiles *services.HealthProfileService, users *services.UserService) *HealthStatusHandler {
	return &HealthStatusHandler{profiles: profiles, users: users}
}

// Upsert godoc
// @Summary      Create or update a health profile
// @Description  Creates the profile on first submission. Later submissions overwrite only the supplied keys. Numbers may be sent as strings. With bearer auth enabled the token subject must own userId.
// @Tags         healthstatus
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        payload  body      dto.HealthStatusPayload  true  "Health profile attributes"
// @Success      200      {object}  dto.HealthStatusResponse
// @Failure      400      {object}  dto.ErrorResponse
// @Failure      401      {object}  dto.ErrorResponse
// @Failure      403      {object}  dto.ErrorResponse
// @Failure      409      {object}  dto.ErrorResponse
// @Failure      500      {object}  dto.ErrorResponse
// @Router       /api/v1/healthstatus [post]
func (h *HealthStatusHandler) Upsert(w http.ResponseWriter, r *http.Request) {
	var req dto.HealthStatusRequest
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxHealthStatusBody))
	if err := dec.Decode(&req); err != nil {
		utils.WriteErrorResponse(w, http.StatusBadRequest, "Invalid request body", err.Error())
		return
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		utils.WriteErrorResponse(w, http.StatusBadRequest, "Invalid request body", "body must contain a single JSON object")
		return
	}

	userID, err := services.ParseUserIDField(req.UserID)
	if err != nil {
		utils.WriteAppError(w, r, err)
		return
	}
	if err := authorizeUserID(r, h.users, userID); err != nil {
		utils.WriteAppError(w, r, err)
		return
	}

	profile, created, err := h.profiles.Upsert(r.Context(), &req)
	if err != nil {
		utils.WriteAppError(w, r, err)
		return
	}

	message := "Health profile updated successfully"
	if created {
		message = "Health profile created successfully"
	}
	utils.WriteJSONResponse(w, http.StatusOK, dto.HealthStatusResponse{
		Success: true,
		Message: message,
		Data:    profile,
	})
}

// Get godoc
// @Summary      Get a health profile
// @Tags         healthstatus
// @Produce      json
// @Security     BearerAuth
// @Param        userId  path      int  true  "User ID"
// @Success      200     {object}  dto.HealthStatusResponse
// @Failure      400     {object}  dto.ErrorResponse
// @Failure      401     {object}  dto.ErrorResponse
// @Failure      403     {object}  dto.ErrorResponse
// @Failure      404     {object}  dto.ErrorResponse
// @Failure      500     {object}  dto.ErrorResponse
// @Router       /api/v1/healthstatus/{userId} [get]
func (h *HealthStatusHandler) Get(w http.ResponseWriter, r *http.Request) {
	userID, err := services.ParseUserID(r.PathValue("userId"))
	if err != nil {
		utils.WriteAppError(w, r, err)
		return
	}

	if err := authorizeUserID(r, h.users, userID); err != nil {
		utils.WriteAppError(w, r, err)
		return
	}

	profile, err := h.profiles.Get(r.Context(), userID)
	if err != nil {
		utils.WriteAppError(w, r, err)
		return
	}
	utils.WriteJSONResponse(w, http.StatusOK, dto.HealthStatusResponse{Success: true, Data: profile})
}

// Delete godoc
// @Summary      Delete a health profile
// @Tags         healthstatus
// @Produce      json
// @Security     BearerAuth
// @Param        userId  path      int  true  "User ID"
// @Success      200     {object}  dto.MessageResponse
// @Failure      400     {object}  dto.ErrorResponse
// @Failure      401     {object}  dto.ErrorResponse
// @Failure      403     {object}  dto.ErrorResponse
// @Failure      404     {object}  dto.ErrorResponse
// @Failure      500     {object}  dto.ErrorResponse
// @Router       /api/v1/healthstatus/{userId} [delete]
func (h *HealthStatusHandler) Delete(w http.ResponseWriter, r *http.Request) {
	userID, err := services.ParseUserID(r.PathValue("userId"))
	if err != nil {
		utils.WriteAppError(w, r, err)
		return
	}

	if err := authorizeUserID(r, h.users, userID); err != nil {
		utils.WriteAppError(w, r, err)
		return
	}

	if err := h.profiles.Delete(r.Context(), userID); err != nil {
		utils.WriteAppError(w, r, err)
		return
	}
	utils.WriteJSONResponse(w, http.StatusOK, dto.MessageResponse{
		Success: true,
		Message: "Health profile deleted successfully",
	})
}
