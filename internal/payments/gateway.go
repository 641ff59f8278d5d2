package payments

// Gateway is the checkout-session boundary with the payment provider. The
// provider stays authoritative for all financial state, the application only
// stores the echoed identifiers.
type Gateway interface {
	// CreateProduct registers the purchasable item and returns its id.
	CreateProduct(name string) (string, error)
	// CreatePrice attaches an amount (major currency units) to a product
	// and returns the price id.
	CreatePrice(productID string, amount float64) (string, error)
	// CreateCheckoutSession opens a checkout session for a price and
	// returns the session id and the payment URL.
	CreateCheckoutSession(priceID string) (sessionID, url string, err error)
	// CheckSession reports whether the session is known to the provider.
	CheckSession(sessionID string) (string, error)
}
