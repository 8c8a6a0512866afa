// Package omise adapts the generic gateway abstraction to the Omise
// HTTP/JSON API. Charges, refunds, and customer/card management go to
// the main API signed with the secret key; raw card data is first
// exchanged for a single-use token at the vault, signed with the
// public key.
package omise

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/paykit/omise-gateway/internal/config"
	"github.com/paykit/omise-gateway/internal/gateway"
)

const (
	defaultAPIURL   = "https://api.omise.co/"
	defaultVaultURL = "https://vault.omise.co/"
	defaultTimeout  = 30 * time.Second

	// Amounts are integer satang; the provider only settles THB.
	defaultCurrency = "THB"

	// verifyAmount is the minimal hold used by Verify, in satang.
	verifyAmount = 25
)

var ErrMissingCredentials = errors.New("omise: public_key and secret_key are required")

type Gateway struct {
	publicKey string
	secretKey string
	apiURL    string
	vaultURL  string
	test      bool
	client    *client
	logger    *slog.Logger
}

var _ gateway.Gateway = (*Gateway)(nil)

// New builds the adapter. The credential is immutable for the life of
// the adapter; a missing key is fatal here, before any network
// activity. Test mode follows the key material: sandbox keys carry a
// _test_ infix, as do every id they produce.
func New(cfg config.OmiseConfig, logger *slog.Logger) (*Gateway, error) {
	if cfg.PublicKey == "" || cfg.SecretKey == "" {
		return nil, ErrMissingCredentials
	}

	apiURL := cfg.APIURL
	if apiURL == "" {
		apiURL = defaultAPIURL
	}
	vaultURL := cfg.VaultURL
	if vaultURL == "" {
		vaultURL = defaultVaultURL
	}
	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = defaultTimeout
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &Gateway{
		publicKey: cfg.PublicKey,
		secretKey: cfg.SecretKey,
		apiURL:    apiURL,
		vaultURL:  vaultURL,
		test:      strings.Contains(cfg.SecretKey, "_test_"),
		client:    newClient(timeout, logger),
		logger:    logger,
	}, nil
}

// Purchase creates a charge against a raw card, a pre-minted token, or
// a stored card. With opts.Capture set to false the charge is an
// authorization-only hold.
func (g *Gateway) Purchase(ctx context.Context, amount int64, card *gateway.CreditCard, opts gateway.ChargeOptions) *gateway.Response {
	return g.createCharge(ctx, amount, card, opts)
}

// Authorize is Purchase with capture forced off.
func (g *Gateway) Authorize(ctx context.Context, amount int64, card *gateway.CreditCard, opts gateway.ChargeOptions) *gateway.Response {
	capture := false
	opts.Capture = &capture
	return g.createCharge(ctx, amount, card, opts)
}

// Capture settles a previously authorized charge.
func (g *Gateway) Capture(ctx context.Context, amount int64, chargeID string, opts gateway.CaptureOptions) *gateway.Response {
	post := map[string]any{}
	addAmount(post, amount, opts.Currency, opts.Description)
	return g.commit(ctx, http.MethodPost, "charges/"+url.PathEscape(chargeID)+"/capture", post)
}

// Refund returns amount satang to the cardholder. Zero requests a full
// refund; anything less than the captured total is a partial refund
// and simply reduces the captured balance.
func (g *Gateway) Refund(ctx context.Context, amount int64, chargeID string) *gateway.Response {
	post := map[string]any{}
	if amount > 0 {
		post["amount"] = amount
	}
	return g.commit(ctx, http.MethodPost, "charges/"+url.PathEscape(chargeID)+"/refunds", post)
}

// Credit is the deprecated name for Refund and behaves identically.
func (g *Gateway) Credit(ctx context.Context, amount int64, chargeID string) *gateway.Response {
	g.logger.Warn("credit is deprecated and will be removed; use refund instead")
	return g.Refund(ctx, amount, chargeID)
}

// Void cancels a charge by refunding its full current amount: a GET to
// read the amount, then a refund for that amount. The refund's result
// is what the caller sees; if the GET fails the sequence stops there
// and that failure is returned.
func (g *Gateway) Void(ctx context.Context, chargeID string) *gateway.Response {
	charge := g.commit(ctx, http.MethodGet, "charges/"+url.PathEscape(chargeID), nil)
	if !charge.Success {
		return charge
	}
	amount, _ := charge.Params["amount"].(float64)
	return g.Refund(ctx, int64(amount), chargeID)
}

// Store saves a card. Without a customer id it creates a customer
// carrying the descriptor fields and the card in one call; with one it
// attaches the card to that customer and, when requested, promotes it
// to default card. Structured card input that fails local validation
// short-circuits before any network call.
func (g *Gateway) Store(ctx context.Context, card *gateway.CreditCard, opts gateway.StoreOptions) *gateway.Response {
	if card != nil {
		if err := card.Validate(); err != nil {
			return &gateway.Response{
				Success: false,
				Message: err.Error(),
				Params:  map[string]any{},
				Test:    g.test,
			}
		}
	}

	post := map[string]any{}
	addCustomerData(post, opts.Description, opts.Email)

	cardParams := map[string]any{}
	if failure := g.addOrCreateToken(ctx, cardParams, card, opts.TokenID, opts.CardID, opts.CustomerID); failure != nil {
		return failure
	}

	if opts.CustomerID != "" {
		return g.attachCustomerCard(ctx, post, cardParams, opts)
	}

	for k, v := range cardParams {
		post[k] = v
	}
	return g.commit(ctx, http.MethodPost, "customers", post)
}

// Unstore deletes one stored card, or the whole customer when no card
// id is given. Without a customer id there is nothing to do and no
// call is made.
func (g *Gateway) Unstore(ctx context.Context, customerID string, opts gateway.UnstoreOptions) *gateway.Response {
	if customerID == "" {
		return nil
	}
	if opts.CardID == "" {
		return g.commit(ctx, http.MethodDelete, "customers/"+url.PathEscape(customerID), nil)
	}
	return g.commit(ctx, http.MethodDelete, "customers/"+url.PathEscape(customerID)+"/cards/"+url.PathEscape(opts.CardID), nil)
}

// Verify authorizes a minimal amount and then voids the hold. The void
// is strictly best-effort cleanup: the caller always gets the
// authorize step's result, whatever happens to the void.
func (g *Gateway) Verify(ctx context.Context, card *gateway.CreditCard, opts gateway.ChargeOptions) *gateway.Response {
	auth := g.Authorize(ctx, verifyAmount, card, opts)
	if auth.Success && auth.Authorization != "" {
		g.Void(ctx, auth.Authorization)
	}
	return auth
}

func (g *Gateway) createCharge(ctx context.Context, amount int64, card *gateway.CreditCard, opts gateway.ChargeOptions) *gateway.Response {
	post := map[string]any{}
	if opts.Capture != nil {
		post["capture"] = *opts.Capture
	}
	if failure := g.addOrCreateToken(ctx, post, card, opts.TokenID, opts.CardID, opts.CustomerID); failure != nil {
		return failure
	}
	addAmount(post, amount, opts.Currency, opts.Description)
	addCustomer(post, opts.CustomerID)
	return g.commit(ctx, http.MethodPost, "charges", post)
}

// attachCustomerCard attaches the resolved card value to an existing
// customer. When DefaultCard is requested and the attach came back
// with a non-blank customer id, a second update promotes the last
// attached card to default; otherwise the attach result stands.
func (g *Gateway) attachCustomerCard(ctx context.Context, post, cardParams map[string]any, opts gateway.StoreOptions) *gateway.Response {
	attach := g.updateCustomer(ctx, opts.CustomerID, cardParams)
	if !opts.DefaultCard || !attach.Success {
		return attach
	}
	if id, _ := attach.Params["id"].(string); id == "" {
		return attach
	}
	cardID := lastCardID(attach.Params)
	if cardID == "" {
		return attach
	}
	post["default_card"] = cardID
	return g.updateCustomer(ctx, opts.CustomerID, post)
}

func (g *Gateway) updateCustomer(ctx context.Context, customerID string, params map[string]any) *gateway.Response {
	return g.commit(ctx, http.MethodPatch, "customers/"+url.PathEscape(customerID), params)
}

// lastCardID digs the id of the most recently attached card out of a
// customer response.
func lastCardID(params map[string]any) string {
	cards, _ := params["cards"].(map[string]any)
	data, _ := cards["data"].([]any)
	if len(data) == 0 {
		return ""
	}
	last, _ := data[len(data)-1].(map[string]any)
	id, _ := last["id"].(string)
	return id
}

// commit runs one API call and classifies the body into the uniform
// response shape.
func (g *Gateway) commit(ctx context.Context, method, endpoint string, params map[string]any) *gateway.Response {
	resp := g.client.request(ctx, method, g.apiURL+endpoint, params, g.secretKey)

	ok := successful(resp)
	result := &gateway.Response{
		Success: ok,
		Message: messageFrom(resp),
		Params:  resp,
		Test:    g.test,
	}
	if ok {
		result.Authorization = authorizationFrom(resp)
	} else {
		result.ErrorCode = standardErrorCodes[errorCodeFrom(resp)]
	}
	return result
}
