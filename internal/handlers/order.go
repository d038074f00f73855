package handlers

import (
	"errors"
	"log"
	"strconv"

	"regulariza/internal/models"
	"regulariza/internal/repositories"
	"regulariza/internal/services/catalog"
	"regulariza/internal/services/order"
	"regulariza/internal/utils/response"

	"github.com/gofiber/fiber/v2"
)

type OrderHandler struct {
	orderService order.Service
}

func NewOrderHandler(orderService order.Service) *OrderHandler {
	return &OrderHandler{orderService: orderService}
}

// Classes lists the certificate and act catalog classes.
func (h *OrderHandler) Classes(c *fiber.Ctx) error {
	return response.Success(c, "classes", catalog.Classes())
}

// Subclasses lists the subclasses of one catalog class.
func (h *OrderHandler) Subclasses(c *fiber.Ctx) error {
	classID := c.Params("classId")
	if _, ok := catalog.FindClass(classID); !ok {
		return response.NotFound(c, "Class not found")
	}
	return response.Success(c, "subclasses", catalog.Subclasses(classID))
}

// Quote computes the cost breakdown for a subclass and form without
// placing an order.
func (h *OrderHandler) Quote(c *fiber.Ctx) error {
	var input struct {
		SubclassID string            `json:"subclassId"`
		Data       map[string]string `json:"data"`
	}
	if err := c.BodyParser(&input); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	sub, ok := catalog.FindSubclass(input.SubclassID)
	if !ok {
		return response.NotFound(c, "Subclass not found")
	}

	return c.JSON(fiber.Map{
		"quote":         catalog.BuildQuote(sub, input.Data),
		"missingFields": catalog.MissingFields(sub, input.Data),
	})
}

// Create places an order for the authenticated user.
func (h *OrderHandler) Create(c *fiber.Ctx) error {
	claims, ok := c.Locals("claims").(*models.UserClaims)
	if !ok {
		return response.Unauthorized(c)
	}

	var input order.CreateRequest
	if err := c.BodyParser(&input); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}
	input.UserID = claims.UserID

	result, err := h.orderService.Create(c.Context(), input)
	if err != nil {
		var missing *order.ErrMissingFields
		switch {
		case errors.As(err, &missing):
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error":         "missing required fields",
				"missingFields": missing.Fields,
			})
		case errors.Is(err, order.ErrUnknownSubclass):
			return response.NotFound(c, "Subclass not found")
		case errors.Is(err, order.ErrInvalidOrder):
			return response.BadRequest(c, err.Error())
		default:
			log.Printf("order creation failed for user %d: %v", claims.UserID, err)
			return response.ServerError(c, "Failed to create order")
		}
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"order":   result.Order,
		"quote":   result.Quote,
	})
}

// List returns the caller's orders.
func (h *OrderHandler) List(c *fiber.Ctx) error {
	claims, ok := c.Locals("claims").(*models.UserClaims)
	if !ok {
		return response.Unauthorized(c)
	}

	orders, err := h.orderService.List(c.Context(), claims.UserID)
	if err != nil {
		return response.ServerError(c, "Failed to list orders")
	}
	return response.Success(c, "orders", orders)
}

// Get returns one of the caller's orders.
func (h *OrderHandler) Get(c *fiber.Ctx) error {
	claims, ok := c.Locals("claims").(*models.UserClaims)
	if !ok {
		return response.Unauthorized(c)
	}

	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return response.BadRequest(c, "Invalid order id")
	}

	result, err := h.orderService.Get(c.Context(), uint(id), claims.UserID)
	if err != nil {
		if errors.Is(err, repositories.ErrOrderNotFound) {
			return response.NotFound(c, "Order not found")
		}
		return response.ServerError(c, "Failed to get order")
	}
	return response.Success(c, "order", result)
}

// UpdateStatus transitions an order. Admin only.
func (h *OrderHandler) UpdateStatus(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return response.BadRequest(c, "Invalid order id")
	}

	var input struct {
		Status string `json:"status"`
	}
	if err := c.BodyParser(&input); err != nil || input.Status == "" {
		return response.BadRequest(c, "status is required")
	}

	if err := h.orderService.UpdateStatus(c.Context(), uint(id), input.Status); err != nil {
		return response.ServerError(c, "Failed to update order")
	}
	return response.Success(c, "order updated", nil)
}
