package omise

import (
	"context"
	"net/http"

	"github.com/paykit/omise-gateway/internal/gateway"
)

// tokenize exchanges raw card data for a single-use token at the
// vault. This is the one call signed with the public key. Each call
// mints a fresh token; tokens are consumed exactly once downstream.
func (g *Gateway) tokenize(ctx context.Context, card *gateway.CreditCard) *gateway.Response {
	data := map[string]any{}
	addCreditCard(data, card)

	resp := g.client.request(ctx, http.MethodPost, g.vaultURL+"tokens", data, g.publicKey)
	if successful(resp) {
		return &gateway.Response{
			Success: true,
			Message: "Success",
			Params:  map[string]any{"token": resp},
			Test:    g.test,
		}
	}
	return &gateway.Response{
		Success:   false,
		Message:   messageFrom(resp),
		Params:    map[string]any{},
		Test:      g.test,
		ErrorCode: standardErrorCodes[errorCodeFrom(resp)],
	}
}

// addOrCreateToken resolves the single card value of a request, in
// strict priority order: an explicit token id, then an explicit stored
// card id (which needs its customer id alongside), then a token minted
// from the raw card. A tokenization failure is returned as-is so the
// caller can short-circuit.
func (g *Gateway) addOrCreateToken(ctx context.Context, post map[string]any, card *gateway.CreditCard, tokenID, cardID, customerID string) *gateway.Response {
	if tokenID != "" || (cardID != "" && customerID != "") {
		if tokenID != "" {
			post["card"] = tokenID
		} else {
			post["card"] = cardID
		}
		return nil
	}

	tok := g.tokenize(ctx, card)
	token, ok := tok.Params["token"].(map[string]any)
	if !ok {
		return tok
	}
	id, _ := token["id"].(string)
	post["card"] = id
	return nil
}
