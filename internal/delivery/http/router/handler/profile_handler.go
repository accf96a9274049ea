package handler

import (
	"log/slog"
	"net/http"

	"dhansaathi/internal/delivery/http/middleware"
	"dhansaathi/internal/delivery/http/response"
	"dhansaathi/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// ProfileHandler holds dependencies for profile and user lookup handlers.
type ProfileHandler struct {
	uc     usecase.ProfileUsecase
	logger *slog.Logger
}

// NewProfileHandler is the constructor for ProfileHandler, injected by Fx.
func NewProfileHandler(uc usecase.ProfileUsecase, logger *slog.Logger) *ProfileHandler {
	return &ProfileHandler{
		uc:     uc,
		logger: logger,
	}
}

// authenticatedUserID reads the user ID stored by the auth middleware.
func authenticatedUserID(c echo.Context) (uuid.UUID, bool) {
	userID, ok := c.Get(middleware.ContextKeyUserID).(uuid.UUID)

	return userID, ok
}

// Me returns the authenticated user's profile.
func (h *ProfileHandler) Me(c echo.Context) error {
	userID, ok := authenticatedUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	user, err := h.uc.GetProfile(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toUserResponse(user), "Profile retrieved successfully")
}

// UpdateMe applies a partial update to the authenticated user's profile.
func (h *ProfileHandler) UpdateMe(c echo.Context) error {
	userID, ok := authenticatedUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	var input *usecase.UpdateProfileInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid profile update input")
	}
	if err := c.Validate(input); err != nil {
		return response.BadRequest(c, "VALIDATION_FAILED", "Invalid profile update input")
	}

	user, err := h.uc.UpdateProfile(c.Request().Context(), userID, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toUserResponse(user), "Profile updated successfully")
}

// ChangeMyPassword replaces the authenticated user's password.
func (h *ProfileHandler) ChangeMyPassword(c echo.Context) error {
	userID, ok := authenticatedUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	var input *usecase.ChangePasswordInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid password change input")
	}
	if err := c.Validate(input); err != nil {
		return response.BadRequest(c, "VALIDATION_FAILED", "Invalid password change input")
	}

	if err := h.uc.ChangePassword(c.Request().Context(), userID, input); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "Password changed"}, "Password changed successfully")
}

// ListUsers returns all registered users.
func (h *ProfileHandler) ListUsers(c echo.Context) error {
	users, err := h.uc.ListUsers(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	out := make([]*userResponse, 0, len(users))
	for _, user := range users {
		out = append(out, toUserResponse(user))
	}

	return response.Success(c, http.StatusOK, out, "Users retrieved successfully")
}

// GetUserByID returns a single user by their ID.
func (h *ProfileHandler) GetUserByID(c echo.Context) error {
	userID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid user ID format")
	}

	user, err := h.uc.GetUserByID(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toUserResponse(user), "User retrieved successfully")
}
