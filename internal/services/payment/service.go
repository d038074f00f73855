// Package payment creates and updates platform transactions.
package payment

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strconv"
	"time"

	"regulariza/internal/models"
	"regulariza/internal/repositories"
	"regulariza/internal/services/audit"
	"regulariza/internal/validation"

	"github.com/google/uuid"
)

var ErrInvalidUpdate = errors.New("transactionId and status are required")

// ValidationError carries per-field validation failures.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed: %v", e.Fields)
}

// CreateRequest initiates a payment.
type CreateRequest struct {
	UserID         uint        `json:"userId"`
	Type           string      `json:"type"`
	Amount         float64     `json:"amount"`
	ProfessionalID *uint       `json:"professionalId,omitempty"`
	ServiceID      *uint       `json:"serviceId,omitempty"`
	Metadata       models.JSON `json:"metadata,omitempty"`
}

// UpdateRequest is the webhook-shaped payload that transitions a transaction.
// The provider contract carries no signature, so the status is trusted as
// supplied and written verbatim.
type UpdateRequest struct {
	TransactionID uint   `json:"transactionId"`
	Status        string `json:"status"`
	PaymentID     string `json:"paymentId,omitempty"`
	PaymentMethod string `json:"paymentMethod,omitempty"`
}

// CreateResult is the created transaction plus its checkout URL.
type CreateResult struct {
	Transaction *models.Transaction `json:"transaction"`
	CheckoutURL string              `json:"checkoutUrl"`
}

// Service creates and updates transactions.
type Service interface {
	Create(ctx context.Context, req CreateRequest) (*CreateResult, error)
	Update(ctx context.Context, req UpdateRequest) (*models.Transaction, error)
}

type service struct {
	txs      repositories.TransactionRepository
	checkout CheckoutProvider // nil means placeholder checkout URLs
	recorder audit.Recorder
}

func NewService(txs repositories.TransactionRepository, checkout CheckoutProvider, recorder audit.Recorder) Service {
	return &service{txs: txs, checkout: checkout, recorder: recorder}
}

func (s *service) Create(ctx context.Context, req CreateRequest) (*CreateResult, error) {
	v := validation.New()
	v.Payment(req.UserID, req.Type, req.Amount)
	if !v.Valid() {
		return nil, &ValidationError{Fields: v.Errors}
	}

	metadata := req.Metadata
	if metadata == nil {
		metadata = models.JSON{}
	}
	if req.ServiceID != nil {
		metadata["service_id"] = *req.ServiceID
	}

	tx := &models.Transaction{
		UserID:         req.UserID,
		ProfessionalID: req.ProfessionalID,
		Type:           req.Type,
		Amount:         req.Amount,
		PlatformFee:    CalculatePlatformFee(req.Amount),
		Status:         models.TransactionStatusPending,
		Reference:      uuid.NewString(),
		Metadata:       metadata,
	}
	if err := s.txs.Create(ctx, tx); err != nil {
		return nil, fmt.Errorf("create transaction: %w", err)
	}

	s.recorder.Record(ctx, audit.Entry{
		UserID:     req.UserID,
		Action:     models.AuditActionPaymentInitiated,
		EntityType: "transaction",
		EntityID:   strconv.FormatUint(uint64(tx.ID), 10),
		Metadata: models.JSON{
			"type":         req.Type,
			"amount":       req.Amount,
			"platform_fee": tx.PlatformFee,
		},
	})

	checkoutURL := fmt.Sprintf("/payment/checkout?transaction_id=%d", tx.ID)
	if s.checkout != nil {
		url, err := s.checkout.CheckoutURL(tx)
		if err != nil {
			// The transaction exists; the client can retry checkout.
			log.Printf("checkout session failed for transaction %d: %v", tx.ID, err)
		} else {
			checkoutURL = url
		}
	}

	return &CreateResult{Transaction: tx, CheckoutURL: checkoutURL}, nil
}

func (s *service) Update(ctx context.Context, req UpdateRequest) (*models.Transaction, error) {
	if req.TransactionID == 0 || req.Status == "" {
		return nil, ErrInvalidUpdate
	}

	tx, err := s.txs.GetByID(ctx, req.TransactionID)
	if err != nil {
		return nil, err
	}

	tx.Status = req.Status
	if req.PaymentID != "" {
		tx.PaymentID = req.PaymentID
	}
	if req.PaymentMethod != "" {
		tx.PaymentMethod = req.PaymentMethod
	}
	if req.Status == models.TransactionStatusCompleted {
		now := time.Now()
		tx.CompletedAt = &now
	} else {
		tx.CompletedAt = nil
	}

	if err := s.txs.Update(ctx, tx); err != nil {
		return nil, fmt.Errorf("update transaction: %w", err)
	}

	s.recorder.Record(ctx, audit.Entry{
		UserID:     tx.UserID,
		Action:     models.AuditActionPaymentUpdated,
		EntityType: "transaction",
		EntityID:   strconv.FormatUint(uint64(tx.ID), 10),
		Metadata: models.JSON{
			"status":     req.Status,
			"payment_id": req.PaymentID,
		},
	})

	return tx, nil
}
