package stripe

import (
	"eduplatform/config"

	stripego "github.com/stripe/stripe-go/v75"
	checkoutsession "github.com/stripe/stripe-go/v75/checkout/session"
	"github.com/stripe/stripe-go/v75/price"
	"github.com/stripe/stripe-go/v75/product"
)

type Session struct {
	ID  string
	URL string
}

// Gateway is the remote surface the checkout orchestration talks to.
// Tests swap Default for a fake; production uses the Stripe client below.
type Gateway interface {
	CreateProduct(name, description, idempotencyKey string) (string, error)
	CreatePrice(productID string, amount uint) (string, error)
	CreateSession(priceID, successURL, cancelURL, idempotencyKey string) (Session, error)
}

var Default Gateway = Client{}

func Init() {
	stripego.Key = config.STRIPE_SECRET_KEY
}

// MinorUnits converts a major-unit amount into the provider's minor-unit
// representation (rubles -> kopecks).
func MinorUnits(amount uint) int64 {
	return int64(amount) * 100
}

type Client struct{}

func (Client) CreateProduct(name, description, idempotencyKey string) (string, error) {
	params := &stripego.ProductParams{
		Name: stripego.String(name),
	}
	if description != "" {
		params.Description = stripego.String(description)
	}
	params.AddMetadata("idempotency_key", idempotencyKey)

	p, err := product.New(params)
	if err != nil {
		return "", err
	}
	return p.ID, nil
}

func (Client) CreatePrice(productID string, amount uint) (string, error) {
	p, err := price.New(&stripego.PriceParams{
		Product:    stripego.String(productID),
		UnitAmount: stripego.Int64(MinorUnits(amount)),
		Currency:   stripego.String(string(stripego.CurrencyRUB)),
	})
	if err != nil {
		return "", err
	}
	return p.ID, nil
}

func (Client) CreateSession(priceID, successURL, cancelURL, idempotencyKey string) (Session, error) {
	params := &stripego.CheckoutSessionParams{
		PaymentMethodTypes: stripego.StringSlice([]string{"card"}),
		LineItems: []*stripego.CheckoutSessionLineItemParams{
			{Price: stripego.String(priceID), Quantity: stripego.Int64(1)},
		},
		Mode:       stripego.String(string(stripego.CheckoutSessionModePayment)),
		SuccessURL: stripego.String(successURL),
		CancelURL:  stripego.String(cancelURL),
	}
	params.AddMetadata("idempotency_key", idempotencyKey)

	s, err := checkoutsession.New(params)
	if err != nil {
		return Session{}, err
	}
	return Session{ID: s.ID, URL: s.URL}, nil
}
