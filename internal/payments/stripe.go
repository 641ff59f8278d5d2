package payments

import (
	"fmt"

	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/checkout/session"
	"github.com/stripe/stripe-go/v76/price"
	"github.com/stripe/stripe-go/v76/product"
)

// StripeGateway implements Gateway on top of the Stripe checkout API.
type StripeGateway struct {
	successURL string
	currency   string
}

func NewStripeGateway(apiKey, successURL, currency string) *StripeGateway {
	stripe.Key = apiKey
	return &StripeGateway{
		successURL: successURL,
		currency:   currency,
	}
}

func (g *StripeGateway) CreateProduct(name string) (string, error) {
	p, err := product.New(&stripe.ProductParams{
		Name: stripe.String(name),
	})
	if err != nil {
		return "", fmt.Errorf("stripe product create: %w", err)
	}
	return p.ID, nil
}

func (g *StripeGateway) CreatePrice(productID string, amount float64) (string, error) {
	// Stripe expects the amount in minor units.
	pr, err := price.New(&stripe.PriceParams{
		Currency:   stripe.String(g.currency),
		UnitAmount: stripe.Int64(int64(amount * 100)),
		Product:    stripe.String(productID),
	})
	if err != nil {
		return "", fmt.Errorf("stripe price create: %w", err)
	}
	return pr.ID, nil
}

func (g *StripeGateway) CreateCheckoutSession(priceID string) (string, string, error) {
	s, err := session.New(&stripe.CheckoutSessionParams{
		SuccessURL: stripe.String(g.successURL),
		Mode:       stripe.String(string(stripe.CheckoutSessionModePayment)),
		LineItems: []*stripe.CheckoutSessionLineItemParams{
			{
				Price:    stripe.String(priceID),
				Quantity: stripe.Int64(1),
			},
		},
	})
	if err != nil {
		return "", "", fmt.Errorf("stripe session create: %w", err)
	}
	return s.ID, s.URL, nil
}

func (g *StripeGateway) CheckSession(sessionID string) (string, error) {
	s, err := session.Get(sessionID, nil)
	if err != nil {
		return "", fmt.Errorf("stripe session get: %w", err)
	}
	return string(s.Status), nil
}
