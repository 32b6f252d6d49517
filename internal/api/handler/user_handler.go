package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/academia/users-service/internal/api/metrics"
	"github.com/academia/users-service/internal/core/domain"
	"github.com/academia/users-service/internal/core/ports"
)

// UserHandler handles HTTP requests for user record operations. Error-to-
// status mapping is delegated to the central HTTP error handler.
type UserHandler struct {
	service ports.UserService
}

func NewUserHandler(service ports.UserService) *UserHandler {
	return &UserHandler{service: service}
}

// List returns the active records visible to the caller.
//
// @Summary      List visible users
// @Tags         users
// @Produce      json
// @Success      200  {object}  listUsersResponse
// @Failure      401  {object}  errorResponse
// @Router       /api/users [get]
func (h *UserHandler) List(c echo.Context) error {
	_, roles, err := ctxClaims(c)
	if err != nil {
		return err
	}

	users, err := h.service.ListVisible(c.Request().Context(), roles)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, toListResponse(users))
}

// GetByID returns one record by id.
//
// @Summary      Get a user by id
// @Tags         users
// @Produce      json
// @Param        id   path      string  true  "User id"
// @Success      200  {object}  userResponse
// @Failure      404  {object}  errorResponse
// @Router       /api/users/{id} [get]
func (h *UserHandler) GetByID(c echo.Context) error {
	user, err := h.service.GetByID(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toUserResponse(user))
}

// Create registers a new record. The forced password change flag is always
// set on the persisted record, whatever the payload carried.
//
// @Summary      Create a user
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        body  body      userRequest  true  "User record plus temporary password"
// @Success      201   {object}  userResponse
// @Failure      400   {object}  errorResponse
// @Failure      409   {object}  errorResponse
// @Router       /api/users [post]
func (h *UserHandler) Create(c echo.Context) error {
	var req userRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	created, err := h.service.Create(c.Request().Context(), toDomainUser(req), req.Password)
	if err != nil {
		var ve *domain.ValidationError
		if errors.As(err, &ve) {
			metrics.ValidationFailuresTotal.WithLabelValues("create").Inc()
		}
		return err
	}

	metrics.CreatedTotal.Inc()
	return c.JSON(http.StatusCreated, toUserResponse(created))
}

// Update rewrites an existing record after the escalation gate and full
// revalidation.
//
// @Summary      Update a user
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        id    path      string       true  "User id"
// @Param        body  body      userRequest  true  "Updated record"
// @Success      200   {object}  userResponse
// @Failure      400   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Router       /api/users/{id} [put]
func (h *UserHandler) Update(c echo.Context) error {
	_, roles, err := ctxClaims(c)
	if err != nil {
		return err
	}

	var req userRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	user := toDomainUser(req)
	user.ID = c.Param("id")

	updated, err := h.service.Update(c.Request().Context(), user, roles)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrAccessDenied):
			metrics.AccessDeniedTotal.WithLabelValues("update").Inc()
		default:
			var ve *domain.ValidationError
			if errors.As(err, &ve) {
				metrics.ValidationFailuresTotal.WithLabelValues("update").Inc()
			}
		}
		return err
	}

	return c.JSON(http.StatusOK, toUserResponse(updated))
}

// Delete soft-deactivates a record.
//
// @Summary      Deactivate a user
// @Tags         users
// @Produce      json
// @Param        id   path      string  true  "User id"
// @Success      200  {object}  messageResponse
// @Failure      400  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /api/users/{id} [delete]
func (h *UserHandler) Delete(c echo.Context) error {
	_, roles, err := ctxClaims(c)
	if err != nil {
		return err
	}

	if err := h.service.Delete(c.Request().Context(), c.Param("id"), roles); err != nil {
		if errors.Is(err, domain.ErrProtectedRecord) {
			metrics.AccessDeniedTotal.WithLabelValues("delete").Inc()
		}
		return err
	}

	return c.JSON(http.StatusOK, messageResponse{Message: "Usuario eliminado correctamente"})
}

// UpdatePassword replaces the credential and clears the forced-change flag.
//
// @Summary      Change a user's password
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        id    path      string                 true  "User id"
// @Param        body  body      changePasswordRequest  true  "New password"
// @Success      200   {object}  messageResponse
// @Failure      400   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /api/users/{id}/password [put]
func (h *UserHandler) UpdatePassword(c echo.Context) error {
	var req changePasswordRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	if err := h.service.ChangePassword(c.Request().Context(), c.Param("id"), req.Password); err != nil {
		var ve *domain.ValidationError
		if errors.As(err, &ve) {
			metrics.ValidationFailuresTotal.WithLabelValues("change_password").Inc()
		}
		return err
	}

	metrics.PasswordChangesTotal.Inc()
	return c.JSON(http.StatusOK, messageResponse{Message: "Contraseña actualizada correctamente"})
}
