package payment

import (
	"fmt"

	"regulariza/internal/models"

	stripe "github.com/stripe/stripe-go/v72"
	"github.com/stripe/stripe-go/v72/checkout/session"
)

// CheckoutProvider turns a pending transaction into a hosted checkout URL.
type CheckoutProvider interface {
	CheckoutURL(tx *models.Transaction) (string, error)
}

// StripeCheckout creates Stripe Checkout sessions.
type StripeCheckout struct {
	successURL string
	cancelURL  string
}

// NewStripeCheckout configures the Stripe client. The secret key is set on
// the global stripe client, matching the SDK's usage model.
func NewStripeCheckout(secretKey, successURL, cancelURL string) *StripeCheckout {
	stripe.Key = secretKey
	return &StripeCheckout{successURL: successURL, cancelURL: cancelURL}
}

func (s *StripeCheckout) CheckoutURL(tx *models.Transaction) (string, error) {
	params := &stripe.CheckoutSessionParams{
		Mode: stripe.String(string(stripe.CheckoutSessionModePayment)),
		LineItems: []*stripe.CheckoutSessionLineItemParams{
			{
				PriceData: &stripe.CheckoutSessionLineItemPriceDataParams{
					Currency: stripe.String("brl"),
					ProductData: &stripe.CheckoutSessionLineItemPriceDataProductDataParams{
						Name: stripe.String("Regulariza - " + tx.Type),
					},
					UnitAmount: stripe.Int64(int64(tx.Amount * 100)),
				},
				Quantity: stripe.Int64(1),
			},
		},
		ClientReferenceID: stripe.String(tx.Reference),
		SuccessURL:        stripe.String(s.successURL),
		CancelURL:         stripe.String(s.cancelURL),
	}

	sess, err := session.New(params)
	if err != nil {
		return "", fmt.Errorf("create checkout session: %w", err)
	}
	return sess.URL, nil
}
