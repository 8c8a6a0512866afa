package gateway

// ChargeOptions carries the optional inputs of Purchase and Authorize.
//
// Exactly one card reference wins per request, in priority order:
// TokenID, then CardID (when a CustomerID accompanies it), then a
// token freshly minted from the raw card input.
type ChargeOptions struct {
	// TokenID is a vault token minted out of band, e.g. by a browser
	// integration. When set, the adapter skips its own tokenization.
	TokenID string

	// CardID references a card already stored on CustomerID.
	CardID     string
	CustomerID string

	// Capture defaults to the provider's behavior (immediate capture)
	// when nil. Authorize forces it to false.
	Capture *bool

	// Currency defaults to the adapter's provider currency when empty.
	Currency string

	// Description is a pointer so an explicitly empty description can
	// still be sent, while nil leaves the field out entirely.
	Description *string

	Email string
}

// CaptureOptions carries the optional inputs of Capture.
type CaptureOptions struct {
	Currency    string
	Description *string
}

// StoreOptions carries the optional inputs of Store.
type StoreOptions struct {
	TokenID string
	CardID  string

	// CustomerID switches Store from creating a customer to attaching
	// the card to an existing one.
	CustomerID string

	// DefaultCard requests that an attached card also become the
	// customer's default.
	DefaultCard bool

	Description string
	Email       string
}

// UnstoreOptions carries the optional inputs of Unstore.
type UnstoreOptions struct {
	// CardID limits the deletion to a single stored card; when empty
	// the whole customer is deleted.
	CardID string
}
