package handlers

import (
	"errors"
	"log"
	"strconv"

	"regulariza/internal/models"
	"regulariza/internal/repositories"
	"regulariza/internal/services/marketplace"
	"regulariza/internal/utils/response"

	"github.com/gofiber/fiber/v2"
)

type MarketplaceHandler struct {
	marketplaceService marketplace.Service
}

func NewMarketplaceHandler(marketplaceService marketplace.Service) *MarketplaceHandler {
	return &MarketplaceHandler{marketplaceService: marketplaceService}
}

// ListServices returns every active professional service.
func (h *MarketplaceHandler) ListServices(c *fiber.Ctx) error {
	services, err := h.marketplaceService.ListServices(c.Context())
	if err != nil {
		return response.ServerError(c, "Failed to list services")
	}
	return response.Success(c, "services", services)
}

// CreateService registers a service offered by the authenticated professional.
func (h *MarketplaceHandler) CreateService(c *fiber.Ctx) error {
	claims, ok := c.Locals("claims").(*models.UserClaims)
	if !ok {
		return response.Unauthorized(c)
	}

	var input marketplace.CreateServiceRequest
	if err := c.BodyParser(&input); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}
	input.ProfessionalID = claims.UserID

	svc, err := h.marketplaceService.CreateService(c.Context(), input)
	if err != nil {
		if errors.Is(err, marketplace.ErrInvalidService) {
			return response.BadRequest(c, err.Error())
		}
		log.Printf("service creation failed for professional %d: %v", claims.UserID, err)
		return response.ServerError(c, "Failed to create service")
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"service": svc})
}

// MyServices lists the authenticated professional's own services.
func (h *MarketplaceHandler) MyServices(c *fiber.Ctx) error {
	claims, ok := c.Locals("claims").(*models.UserClaims)
	if !ok {
		return response.Unauthorized(c)
	}

	services, err := h.marketplaceService.ListServicesByProfessional(c.Context(), claims.UserID)
	if err != nil {
		return response.ServerError(c, "Failed to list services")
	}
	return response.Success(c, "services", services)
}

// DeactivateService removes one of the professional's services from listings.
func (h *MarketplaceHandler) DeactivateService(c *fiber.Ctx) error {
	claims, ok := c.Locals("claims").(*models.UserClaims)
	if !ok {
		return response.Unauthorized(c)
	}

	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return response.BadRequest(c, "Invalid service id")
	}

	if err := h.marketplaceService.DeactivateService(c.Context(), uint(id), claims.UserID); err != nil {
		return response.NotFound(c, "Service not found")
	}
	return response.Success(c, "service deactivated", nil)
}

// Hire asks a professional for a service.
func (h *MarketplaceHandler) Hire(c *fiber.Ctx) error {
	claims, ok := c.Locals("claims").(*models.UserClaims)
	if !ok {
		return response.Unauthorized(c)
	}

	var input marketplace.HireRequest
	if err := c.BodyParser(&input); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}
	input.UserID = claims.UserID

	req, err := h.marketplaceService.Hire(c.Context(), input)
	if err != nil {
		if errors.Is(err, marketplace.ErrInvalidRequest) {
			return response.BadRequest(c, err.Error())
		}
		return response.ServerError(c, "Failed to create request")
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"request": req})
}

// MyRequests lists the caller's service requests.
func (h *MarketplaceHandler) MyRequests(c *fiber.Ctx) error {
	claims, ok := c.Locals("claims").(*models.UserClaims)
	if !ok {
		return response.Unauthorized(c)
	}

	requests, err := h.marketplaceService.ListRequests(c.Context(), claims.UserID)
	if err != nil {
		return response.ServerError(c, "Failed to list requests")
	}
	return response.Success(c, "requests", requests)
}

// UpdateRequestStatus lets the assigned professional move a request
// through its lifecycle.
func (h *MarketplaceHandler) UpdateRequestStatus(c *fiber.Ctx) error {
	claims, ok := c.Locals("claims").(*models.UserClaims)
	if !ok {
		return response.Unauthorized(c)
	}

	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return response.BadRequest(c, "Invalid request id")
	}

	var input struct {
		Status string `json:"status"`
	}
	if err := c.BodyParser(&input); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	if err := h.marketplaceService.UpdateRequestStatus(c.Context(), uint(id), claims.UserID, input.Status); err != nil {
		switch {
		case errors.Is(err, marketplace.ErrInvalidRequestStatus):
			return response.BadRequest(c, err.Error())
		case errors.Is(err, repositories.ErrServiceRequestNotFound):
			return response.NotFound(c, "Request not found")
		default:
			log.Printf("request status update failed for request %d: %v", id, err)
			return response.ServerError(c, "Failed to update request")
		}
	}
	return response.Success(c, "request updated", nil)
}

// RequestBudget records a quote request, typically following an assistant
// budget suggestion.
func (h *MarketplaceHandler) RequestBudget(c *fiber.Ctx) error {
	claims, ok := c.Locals("claims").(*models.UserClaims)
	if !ok {
		return response.Unauthorized(c)
	}

	var input marketplace.BudgetRequest
	if err := c.BodyParser(&input); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}
	input.UserID = claims.UserID

	budget, err := h.marketplaceService.RequestBudget(c.Context(), input)
	if err != nil {
		if errors.Is(err, marketplace.ErrInvalidBudget) {
			return response.BadRequest(c, err.Error())
		}
		return response.ServerError(c, "Failed to create budget request")
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"budget": budget})
}

// MyBudgets lists the caller's budget requests.
func (h *MarketplaceHandler) MyBudgets(c *fiber.Ctx) error {
	claims, ok := c.Locals("claims").(*models.UserClaims)
	if !ok {
		return response.Unauthorized(c)
	}

	budgets, err := h.marketplaceService.ListBudgets(c.Context(), claims.UserID)
	if err != nil {
		return response.ServerError(c, "Failed to list budgets")
	}
	return response.Success(c, "budgets", budgets)
}
