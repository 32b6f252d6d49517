package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/academia/users-service/internal/api/metrics"
	"github.com/academia/users-service/internal/core/domain"
	"github.com/academia/users-service/internal/core/ports"
)

type AuthHandler struct {
	authService ports.AuthService
	userService ports.UserService
}

func NewAuthHandler(authService ports.AuthService, userService ports.UserService) *AuthHandler {
	return &AuthHandler{authService: authService, userService: userService}
}

// Login authenticates a user and returns a bearer token plus a safe profile.
//
// @Summary      Login
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Login credentials"
// @Success      200   {object}  loginResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Router       /auth/login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
	}

	result, err := h.authService.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		metrics.LoginsTotal.WithLabelValues("failure").Inc()
		if errors.Is(err, domain.ErrInvalidCredentials) {
			return c.JSON(http.StatusUnauthorized, errorResponse{Error: domain.ErrInvalidCredentials.Error()})
		}
		return err
	}

	metrics.LoginsTotal.WithLabelValues("success").Inc()
	return c.JSON(http.StatusOK, loginResponse{
		Token:     result.Token,
		ExpiresAt: result.ExpiresAt,
		User: loginProfile{
			ID:                 result.User.ID,
			Name:               result.User.Name,
			Email:              result.User.Email,
			Role:               result.User.Role,
			MustChangePassword: result.User.MustChangePassword,
		},
	})
}

// Logout drops the caller's cached session. The token itself simply expires.
//
// @Summary      Logout
// @Tags         auth
// @Produce      json
// @Success      200  {object}  messageResponse
// @Failure      401  {object}  errorResponse
// @Router       /auth/logout [post]
func (h *AuthHandler) Logout(c echo.Context) error {
	userID, _, err := ctxClaims(c)
	if err != nil {
		return err
	}

	if err := h.authService.Logout(c.Request().Context(), userID); err != nil {
		return err
	}

	return c.JSON(http.StatusOK, messageResponse{Message: "Logout exitoso. El token ha sido eliminado del cliente."})
}

// UpdateToken attaches an externally issued token and expiry to a record.
//
// @Summary      Attach a session token to a user
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        id    path      string              true  "User id"
// @Param        body  body      tokenUpdateRequest  true  "Token and expiry"
// @Success      200   {object}  messageResponse
// @Failure      400   {object}  errorResponse
// @Router       /auth/{id}/token [put]
func (h *AuthHandler) UpdateToken(c echo.Context) error {
	var req tokenUpdateRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	if err := h.userService.IssueToken(c.Request().Context(), c.Param("id"), req.Token, req.ExpiresAt); err != nil {
		return err
	}

	return c.JSON(http.StatusOK, messageResponse{Message: "Token actualizado correctamente"})
}
