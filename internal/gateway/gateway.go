package gateway

import "context"

// Gateway is the operation surface every payment provider adapter
// implements. Amounts are integers in the provider's minor currency
// unit. Every operation resolves to a uniform *Response: provider
// rejections, transport failures, and unparseable bodies all come back
// as failed responses, never as panics. Unstore alone may return nil,
// when called without a customer id.
type Gateway interface {
	// Purchase charges the given payment source, capturing immediately
	// unless opts.Capture says otherwise.
	Purchase(ctx context.Context, amount int64, card *CreditCard, opts ChargeOptions) *Response

	// Authorize places an uncaptured hold. It is Purchase with capture
	// forced off.
	Authorize(ctx context.Context, amount int64, card *CreditCard, opts ChargeOptions) *Response

	// Capture settles a previously authorized charge.
	Capture(ctx context.Context, amount int64, chargeID string, opts CaptureOptions) *Response

	// Refund returns amount to the cardholder; zero means a full
	// refund. Partial refunds reduce the captured balance.
	Refund(ctx context.Context, amount int64, chargeID string) *Response

	// Credit is the deprecated name for Refund.
	Credit(ctx context.Context, amount int64, chargeID string) *Response

	// Void cancels a charge by refunding its full current amount.
	Void(ctx context.Context, chargeID string) *Response

	// Store saves a card, either on a brand-new customer or attached
	// to an existing one.
	Store(ctx context.Context, card *CreditCard, opts StoreOptions) *Response

	// Unstore deletes a stored card, or the whole customer when no
	// card id is given. It is a no-op returning nil if customerID is
	// empty.
	Unstore(ctx context.Context, customerID string, opts UnstoreOptions) *Response

	// Verify checks a card by authorizing a minimal amount and then
	// releasing the hold on a best-effort basis.
	Verify(ctx context.Context, card *CreditCard, opts ChargeOptions) *Response
}
