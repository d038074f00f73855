package handlers

import (
	"errors"
	"log"
	"strconv"

	"regulariza/internal/models"
	"regulariza/internal/repositories"
	"regulariza/internal/services/profile"
	"regulariza/internal/utils/response"

	"github.com/gofiber/fiber/v2"
)

type ProfileHandler struct {
	profileService profile.Service
}

func NewProfileHandler(profileService profile.Service) *ProfileHandler {
	return &ProfileHandler{profileService: profileService}
}

// Upsert creates or updates the caller's profile.
func (h *ProfileHandler) Upsert(c *fiber.Ctx) error {
	claims, ok := c.Locals("claims").(*models.UserClaims)
	if !ok {
		return response.Unauthorized(c)
	}

	var input profile.UpsertRequest
	if err := c.BodyParser(&input); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}
	input.UserID = claims.UserID

	result, err := h.profileService.Upsert(c.Context(), input)
	if err != nil {
		var verr *profile.ValidationError
		if errors.As(err, &verr) {
			return response.ValidationError(c, verr.Fields)
		}
		log.Printf("profile upsert failed for user %d: %v", claims.UserID, err)
		return response.ServerError(c, "Failed to save profile")
	}

	return response.Success(c, "profile", result)
}

// Get returns a profile by userId query, defaulting to the caller's own.
// A profileType query filters the listing instead.
func (h *ProfileHandler) Get(c *fiber.Ctx) error {
	claims, ok := c.Locals("claims").(*models.UserClaims)
	if !ok {
		return response.Unauthorized(c)
	}

	if profileType := c.Query("profileType"); profileType != "" {
		profiles, err := h.profileService.List(c.Context(), repositories.ProfileFilter{ProfileType: profileType})
		if err != nil {
			return response.ServerError(c, "Failed to list profiles")
		}
		return response.Success(c, "profiles", profiles)
	}

	userID := claims.UserID
	if raw := c.Query("userId"); raw != "" {
		id, err := strconv.ParseUint(raw, 10, 32)
		if err != nil {
			return response.BadRequest(c, "Invalid userId")
		}
		userID = uint(id)
	}

	result, err := h.profileService.Get(c.Context(), userID)
	if err != nil {
		if errors.Is(err, repositories.ErrProfileNotFound) {
			return response.NotFound(c, "Profile not found")
		}
		return response.ServerError(c, "Failed to get profile")
	}
	return response.Success(c, "profile", result)
}
