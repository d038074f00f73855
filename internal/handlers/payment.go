package handlers

import (
	"errors"
	"log"

	"regulariza/internal/models"
	"regulariza/internal/repositories"
	"regulariza/internal/services/payment"
	"regulariza/internal/utils/pagination"
	"regulariza/internal/utils/response"

	"github.com/gofiber/fiber/v2"
)

type PaymentHandler struct {
	paymentService payment.Service
	transactions   repositories.TransactionRepository
}

func NewPaymentHandler(paymentService payment.Service, transactions repositories.TransactionRepository) *PaymentHandler {
	return &PaymentHandler{
		paymentService: paymentService,
		transactions:   transactions,
	}
}

// Create initiates a payment for the authenticated user.
func (h *PaymentHandler) Create(c *fiber.Ctx) error {
	claims, ok := c.Locals("claims").(*models.UserClaims)
	if !ok {
		return response.Unauthorized(c)
	}

	var input payment.CreateRequest
	if err := c.BodyParser(&input); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}
	input.UserID = claims.UserID

	result, err := h.paymentService.Create(c.Context(), input)
	if err != nil {
		var verr *payment.ValidationError
		if errors.As(err, &verr) {
			return response.ValidationError(c, verr.Fields)
		}
		log.Printf("payment creation failed for user %d: %v", claims.UserID, err)
		return response.ServerError(c, "Payment failed")
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success":     true,
		"transaction": result.Transaction,
		"checkoutUrl": result.CheckoutURL,
	})
}

// Update transitions a transaction from a webhook-shaped payload.
func (h *PaymentHandler) Update(c *fiber.Ctx) error {
	var input payment.UpdateRequest
	if err := c.BodyParser(&input); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	tx, err := h.paymentService.Update(c.Context(), input)
	if err != nil {
		switch {
		case errors.Is(err, payment.ErrInvalidUpdate):
			return response.BadRequest(c, err.Error())
		case errors.Is(err, repositories.ErrTransactionNotFound):
			return response.NotFound(c, "Transaction not found")
		default:
			log.Printf("payment update failed for transaction %d: %v", input.TransactionID, err)
			return response.ServerError(c, "Update failed")
		}
	}

	return c.JSON(fiber.Map{
		"success":     true,
		"transaction": tx,
	})
}

// List returns the caller's transactions.
func (h *PaymentHandler) List(c *fiber.Ctx) error {
	claims, ok := c.Locals("claims").(*models.UserClaims)
	if !ok {
		return response.Unauthorized(c)
	}

	txs, err := h.transactions.ListByUser(c.Context(), claims.UserID)
	if err != nil {
		return response.ServerError(c, "Failed to list transactions")
	}
	return response.Success(c, "transactions", txs)
}

// ListAll returns every transaction, paginated. Admin only.
func (h *PaymentHandler) ListAll(c *fiber.Ctx) error {
	p := pagination.ParseFromRequest(c)

	txs, total, err := h.transactions.ListPaginated(c.Context(), p.Limit, p.Offset)
	if err != nil {
		return response.ServerError(c, "Failed to list transactions")
	}
	p.Total = total

	return c.JSON(pagination.Response(p, txs))
}
