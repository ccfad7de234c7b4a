package handlers

import (
	"net/http"

	"NUTRINO_BACK-END/internal/dto"
	"NUTRINO_BACK-END/internal/services"
	"NUTRINO_BACK-END/internal/utils"
)

// UserHandler serves provisioned user lookups
type UserHandler struct {
	users *services.UserService
}

// NewUserHandler creates a new UserHandler instance
func NewUserHandler(users *services.UserService) *UserHandler {
	return &UserHandler{users: users}
}

// Details godoc
// @Summary      Get a user with its health profile
// @Description  Looks a user up by Clerk id. healthProfile is omitted when none was submitted.
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Param        clerkId  path      string  true  "Clerk user id"
// @Success      200      {object}  dto.UserDetailsResponse
// @Failure      401      {object}  dto.ErrorResponse
// @Failure      403      {object}  dto.ErrorResponse
// @Failure      404      {object}  dto.ErrorResponse
// @Failure      500      {object}  dto.ErrorResponse
// @Router       /api/v1/users/{clerkId} [get]
func (h *UserHandler) Details(w http.ResponseWriter, r *http.Request) {
	clerkID := r.PathValue("clerkId")
	if err := authorizeClerkID(r, clerkID); err != nil {
		utils.WriteAppError(w, r, err)
		return
	}

	user, err := h.users.Details(r.Context(), clerkID)
	if err != nil {
		utils.WriteAppError(w, r, err)
		return
	}
	utils.WriteJSONResponse(w, http.StatusOK, dto.UserDetailsResponse{Success: true, Data: user})
}
