// Package order places certificate and notarial act orders from the catalog.
package order

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"regulariza/internal/models"
	"regulariza/internal/repositories"
	"regulariza/internal/services/audit"
	"regulariza/internal/services/catalog"
)

var (
	ErrUnknownSubclass = errors.New("unknown catalog subclass")
	ErrInvalidOrder    = errors.New("userId and subclassId are required")
)

// ErrMissingFields is returned when the submitted form lacks required fields.
// Fields lists the missing ones in catalog order. Validation happens here
// regardless of what the client already checked.
type ErrMissingFields struct {
	Fields []string
}

func (e *ErrMissingFields) Error() string {
	return "missing required fields: " + strings.Join(e.Fields, ", ")
}

// CreateRequest places an order for a catalog subclass.
type CreateRequest struct {
	UserID     uint              `json:"userId"`
	SubclassID string            `json:"subclassId"`
	Data       map[string]string `json:"data"`
}

// CreateResult is the persisted order and its cost breakdown.
type CreateResult struct {
	Order *models.Order `json:"order"`
	Quote catalog.Quote `json:"quote"`
}

// Service places and tracks catalog orders.
type Service interface {
	Create(ctx context.Context, req CreateRequest) (*CreateResult, error)
	List(ctx context.Context, userID uint) ([]models.Order, error)
	Get(ctx context.Context, orderID, userID uint) (*models.Order, error)
	UpdateStatus(ctx context.Context, orderID uint, status string) error
}

type service struct {
	orders   repositories.OrderRepository
	recorder audit.Recorder
}

func NewService(orders repositories.OrderRepository, recorder audit.Recorder) Service {
	return &service{orders: orders, recorder: recorder}
}

func (s *service) Create(ctx context.Context, req CreateRequest) (*CreateResult, error) {
	if req.UserID == 0 || req.SubclassID == "" {
		return nil, ErrInvalidOrder
	}

	sub, ok := catalog.FindSubclass(req.SubclassID)
	if !ok {
		return nil, ErrUnknownSubclass
	}

	if missing := catalog.MissingFields(sub, req.Data); len(missing) > 0 {
		return nil, &ErrMissingFields{Fields: missing}
	}

	quote := catalog.BuildQuote(sub, req.Data)

	data := models.JSON{}
	for k, v := range req.Data {
		data[k] = v
	}

	order := &models.Order{
		UserID:      req.UserID,
		Type:        catalog.ClassType(sub.ClassID),
		ClassID:     sub.ClassID,
		SubclassID:  sub.ID,
		Data:        data,
		Status:      models.OrderStatusPending,
		Amount:      quote.Total,
		RegistryFee: quote.RegistryFee,
		PlatformFee: quote.PlatformFee,
	}
	if err := s.orders.Create(ctx, order); err != nil {
		return nil, fmt.Errorf("create order: %w", err)
	}

	s.recorder.Record(ctx, audit.Entry{
		UserID:     req.UserID,
		Action:     models.AuditActionOrderCreated,
		EntityType: "order",
		EntityID:   strconv.FormatUint(uint64(order.ID), 10),
		Metadata: models.JSON{
			"subclass_id": sub.ID,
			"amount":      quote.Total,
		},
	})

	return &CreateResult{Order: order, Quote: quote}, nil
}

func (s *service) List(ctx context.Context, userID uint) ([]models.Order, error) {
	return s.orders.ListByUser(ctx, userID)
}

func (s *service) Get(ctx context.Context, orderID, userID uint) (*models.Order, error) {
	return s.orders.GetForUser(ctx, orderID, userID)
}

func (s *service) UpdateStatus(ctx context.Context, orderID uint, status string) error {
	if err := s.orders.UpdateStatus(ctx, orderID, status); err != nil {
		return err
	}
	s.recorder.Record(ctx, audit.Entry{
		Action:     models.AuditActionOrderUpdated,
		EntityType: "order",
		EntityID:   strconv.FormatUint(uint64(orderID), 10),
		Metadata:   models.JSON{"status": status},
	})
	return nil
}
