package omise

import (
	"regexp"

	"github.com/paykit/omise-gateway/internal/gateway"
)

// Provider identifier patterns. The _test infix marks sandbox ids and
// round-trips unchanged.
var (
	tokenIDPattern = regexp.MustCompile(`tokn(_test)?_[1-9a-z]+`)
	cardIDPattern  = regexp.MustCompile(`card(_test)?_[1-9a-z]+`)
)

func addCreditCard(post map[string]any, card *gateway.CreditCard) {
	if card == nil {
		return
	}
	post["card"] = map[string]any{
		"number":           card.Number,
		"name":             card.Name,
		"security_code":    card.SecurityCode,
		"expiration_month": card.ExpirationMonth,
		"expiration_year":  card.ExpirationYear,
	}
}

// addCustomer links the request to a customer, but only when the card
// value is a stored-card id. Tokens are single-use and belong to no
// customer yet, so a token value never gets a customer attached.
func addCustomer(post map[string]any, customerID string) {
	cardValue, ok := post["card"].(string)
	if !ok || cardValue == "" || tokenIDPattern.MatchString(cardValue) {
		return
	}
	if cardIDPattern.MatchString(cardValue) && customerID != "" {
		post["customer"] = customerID
	}
}

// addCustomerData copies descriptor fields only when present; absent
// inputs leave the request untouched.
func addCustomerData(post map[string]any, description, email string) {
	if description != "" {
		post["description"] = description
	}
	if email != "" {
		post["email"] = email
	}
}

// addAmount writes the minor-unit amount and currency. A nil
// description means "not set" and is omitted; a pointer to an empty
// string is still sent.
func addAmount(post map[string]any, amount int64, currency string, description *string) {
	post["amount"] = amount
	if currency == "" {
		currency = defaultCurrency
	}
	post["currency"] = currency
	if description != nil {
		post["description"] = *description
	}
}
