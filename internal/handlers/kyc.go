package handlers

import (
	"errors"
	"log"
	"strconv"

	"regulariza/internal/models"
	"regulariza/internal/repositories"
	"regulariza/internal/services/kyc"
	"regulariza/internal/utils/response"

	"github.com/gofiber/fiber/v2"
)

type KYCHandler struct {
	kycService kyc.Service
}

func NewKYCHandler(kycService kyc.Service) *KYCHandler {
	return &KYCHandler{kycService: kycService}
}

// Submit accepts a multipart form with document and selfie files.
func (h *KYCHandler) Submit(c *fiber.Ctx) error {
	claims, ok := c.Locals("claims").(*models.UserClaims)
	if !ok {
		return response.Unauthorized(c)
	}

	docHeader, err := c.FormFile("document")
	if err != nil {
		return response.BadRequest(c, "document file is required")
	}
	selfieHeader, err := c.FormFile("selfie")
	if err != nil {
		return response.BadRequest(c, "selfie file is required")
	}

	doc, err := docHeader.Open()
	if err != nil {
		return response.ServerError(c, "Failed to read document")
	}
	defer doc.Close()

	selfie, err := selfieHeader.Open()
	if err != nil {
		return response.ServerError(c, "Failed to read selfie")
	}
	defer selfie.Close()

	profile, err := h.kycService.Submit(c.Context(), kyc.SubmitRequest{
		UserID:       claims.UserID,
		DocumentName: docHeader.Filename,
		Document:     doc,
		SelfieName:   selfieHeader.Filename,
		Selfie:       selfie,
	})
	if err != nil {
		switch {
		case errors.Is(err, kyc.ErrAlreadyApproved):
			return response.Error(c, fiber.StatusConflict, "KYC already approved")
		case errors.Is(err, repositories.ErrProfileNotFound):
			return response.NotFound(c, "Profile not found")
		default:
			log.Printf("kyc submission failed for user %d: %v", claims.UserID, err)
			return response.ServerError(c, "KYC submission failed")
		}
	}

	return response.Success(c, "kyc submitted", fiber.Map{
		"kyc_status": profile.KYCStatus,
	})
}

// Review approves or rejects a submitted KYC. Admin only.
func (h *KYCHandler) Review(c *fiber.Ctx) error {
	claims, ok := c.Locals("claims").(*models.UserClaims)
	if !ok {
		return response.Unauthorized(c)
	}

	userID, err := strconv.ParseUint(c.Params("userId"), 10, 32)
	if err != nil {
		return response.BadRequest(c, "Invalid user id")
	}

	var input struct {
		Decision string `json:"decision"`
	}
	if err := c.BodyParser(&input); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	profile, err := h.kycService.Review(c.Context(), claims.UserID, uint(userID), input.Decision)
	if err != nil {
		switch {
		case errors.Is(err, kyc.ErrInvalidDecision):
			return response.BadRequest(c, err.Error())
		case errors.Is(err, kyc.ErrNotUnderReview):
			return response.Error(c, fiber.StatusConflict, "KYC has not been submitted")
		case errors.Is(err, repositories.ErrProfileNotFound):
			return response.NotFound(c, "Profile not found")
		default:
			return response.ServerError(c, "KYC review failed")
		}
	}

	return response.Success(c, "kyc reviewed", fiber.Map{
		"kyc_status":  profile.KYCStatus,
		"is_verified": profile.IsVerified,
	})
}
