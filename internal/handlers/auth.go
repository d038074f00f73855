package handlers

import (
	"errors"
	"log"
	"time"

	"regulariza/internal/config"
	"regulariza/internal/models"
	"regulariza/internal/services/auth"
	"regulariza/internal/utils/response"

	"github.com/gofiber/fiber/v2"
)

type AuthHandler struct {
	authService auth.Service
}

func NewAuthHandler(authService auth.Service) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// Register creates a new account.
func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var input auth.RegisterRequest
	if err := c.BodyParser(&input); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	user, err := h.authService.Register(c.Context(), input)
	if err != nil {
		var verr *auth.ValidationError
		if errors.As(err, &verr) {
			return response.ValidationError(c, verr.Fields)
		}
		if errors.Is(err, auth.ErrEmailTaken) {
			return response.Error(c, fiber.StatusConflict, "Email already registered")
		}
		log.Printf("registration failed: %v", err)
		return response.ServerError(c, "Registration failed")
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"user": fiber.Map{
			"id":           user.ID,
			"email":        user.Email,
			"name":         user.Name,
			"role":         user.Role,
			"profile_type": user.ProfileType,
		},
	})
}

// Login authenticates a user and returns JWT tokens.
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var input struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := c.BodyParser(&input); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}
	if input.Email == "" || input.Password == "" {
		return response.BadRequest(c, "Email and password are required")
	}

	user, accessToken, refreshToken, err := h.authService.Login(c.Context(), input.Email, input.Password)
	if err != nil {
		if errors.Is(err, auth.ErrInvalidCredentials) {
			return response.Error(c, fiber.StatusUnauthorized, "Invalid email or password")
		}
		return response.ServerError(c, "Authentication failed")
	}

	h.setAuthCookies(c, accessToken, refreshToken)

	return c.JSON(fiber.Map{
		"access_token":  accessToken,
		"refresh_token": refreshToken,
		"user": fiber.Map{
			"id":           user.ID,
			"email":        user.Email,
			"role":         user.Role,
			"profile_type": user.ProfileType,
			"permissions":  models.GetDefaultPermissions(user.Role),
		},
	})
}

// Refresh exchanges a refresh token for a new token pair.
func (h *AuthHandler) Refresh(c *fiber.Ctx) error {
	refreshToken := c.Cookies("refresh_token")
	if refreshToken == "" {
		var input struct {
			RefreshToken string `json:"refresh_token"`
		}
		if err := c.BodyParser(&input); err == nil {
			refreshToken = input.RefreshToken
		}
	}
	if refreshToken == "" {
		return response.Unauthorized(c)
	}

	accessToken, newRefreshToken, err := h.authService.RefreshTokens(c.Context(), refreshToken)
	if err != nil {
		log.Printf("token refresh failed: %v", err)
		return response.Unauthorized(c)
	}

	h.setAuthCookies(c, accessToken, newRefreshToken)

	return c.JSON(fiber.Map{
		"access_token":  accessToken,
		"refresh_token": newRefreshToken,
	})
}

// Logout invalidates every outstanding token for the user.
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	claims, ok := c.Locals("claims").(*models.UserClaims)
	if !ok {
		return response.Unauthorized(c)
	}

	if err := h.authService.Logout(c.Context(), claims.UserID); err != nil {
		return response.ServerError(c, "Failed to logout")
	}

	h.clearAuthCookies(c)

	return response.Success(c, "Successfully logged out", nil)
}

// ChangePassword updates the caller's password and invalidates old tokens.
func (h *AuthHandler) ChangePassword(c *fiber.Ctx) error {
	var input struct {
		OldPassword string `json:"old_password"`
		NewPassword string `json:"new_password"`
	}
	if err := c.BodyParser(&input); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	claims, ok := c.Locals("claims").(*models.UserClaims)
	if !ok {
		return response.Unauthorized(c)
	}

	if err := h.authService.ChangePassword(c.Context(), claims.UserID, input.OldPassword, input.NewPassword); err != nil {
		log.Printf("password change failed for user %d: %v", claims.UserID, err)
		return response.BadRequest(c, err.Error())
	}

	return response.Success(c, "Password changed successfully", nil)
}

func (h *AuthHandler) setAuthCookies(c *fiber.Ctx, accessToken, refreshToken string) {
	c.Cookie(&fiber.Cookie{
		Name:     "access_token",
		Value:    accessToken,
		Expires:  time.Now().Add(15 * time.Minute),
		HTTPOnly: true,
		Secure:   config.IsProduction(),
		Path:     "/",
	})
	c.Cookie(&fiber.Cookie{
		Name:     "refresh_token",
		Value:    refreshToken,
		Expires:  time.Now().Add(7 * 24 * time.Hour),
		HTTPOnly: true,
		Secure:   config.IsProduction(),
		Path:     "/",
	})
}

func (h *AuthHandler) clearAuthCookies(c *fiber.Ctx) {
	for _, name := range []string{"access_token", "refresh_token"} {
		c.Cookie(&fiber.Cookie{
			Name:     name,
			Value:    "",
			Expires:  time.Now().Add(-time.Hour),
			HTTPOnly: true,
			Secure:   config.IsProduction(),
			Path:     "/",
		})
	}
}
