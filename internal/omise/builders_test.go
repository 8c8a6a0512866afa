package omise

import (
	"testing"

	"github.com/paykit/omise-gateway/internal/gateway"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddCreditCard(t *testing.T) {
	post := map[string]any{}
	addCreditCard(post, &gateway.CreditCard{
		Number:          "4242424242424242",
		Name:            "Longbob Longsen",
		SecurityCode:    "123",
		ExpirationMonth: 10,
		ExpirationYear:  2030,
	})

	card, ok := post["card"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "4242424242424242", card["number"])
	assert.Equal(t, "Longbob Longsen", card["name"])
	assert.Equal(t, "123", card["security_code"])
	assert.Equal(t, 10, card["expiration_month"])
	assert.Equal(t, 2030, card["expiration_year"])
}

func TestAddCreditCard_NilCard(t *testing.T) {
	post := map[string]any{}
	addCreditCard(post, nil)
	assert.Empty(t, post)
}

func TestAddCustomer(t *testing.T) {
	customerID := "cust_test_4zjzcgm8kpdt4xdhdw2"

	t.Run("no card value set", func(t *testing.T) {
		post := map[string]any{}
		addCustomer(post, customerID)
		assert.NotContains(t, post, "customer")
	})

	t.Run("token value never gets a customer", func(t *testing.T) {
		post := map[string]any{"card": "tokn_test_4zgf1crg50rdb68xlk5"}
		addCustomer(post, customerID)
		assert.NotContains(t, post, "customer")
	})

	t.Run("stored card value gets the customer", func(t *testing.T) {
		post := map[string]any{"card": "card_test_4zguktjcxanu3dw171a"}
		addCustomer(post, customerID)
		assert.Equal(t, customerID, post["customer"])
	})

	t.Run("live card id matches too", func(t *testing.T) {
		post := map[string]any{"card": "card_4zguktjcxanu3dw171a"}
		addCustomer(post, customerID)
		assert.Equal(t, customerID, post["customer"])
	})

	t.Run("stored card without customer id", func(t *testing.T) {
		post := map[string]any{"card": "card_test_4zguktjcxanu3dw171a"}
		addCustomer(post, "")
		assert.NotContains(t, post, "customer")
	})
}

func TestAddCustomerData(t *testing.T) {
	post := map[string]any{}
	addCustomerData(post, "John Doe (id: 30)", "john.doe@example.com")
	assert.Equal(t, "John Doe (id: 30)", post["description"])
	assert.Equal(t, "john.doe@example.com", post["email"])

	empty := map[string]any{}
	addCustomerData(empty, "", "")
	assert.Empty(t, empty)
}

func TestAddAmount(t *testing.T) {
	t.Run("defaults the currency", func(t *testing.T) {
		post := map[string]any{}
		addAmount(post, 3333, "", nil)
		assert.Equal(t, int64(3333), post["amount"])
		assert.Equal(t, "THB", post["currency"])
		assert.NotContains(t, post, "description")
	})

	t.Run("keeps an explicit currency", func(t *testing.T) {
		post := map[string]any{}
		addAmount(post, 3333, "thb", nil)
		assert.Equal(t, "thb", post["currency"])
	})

	t.Run("explicitly empty description is still sent", func(t *testing.T) {
		desc := ""
		post := map[string]any{}
		addAmount(post, 3333, "", &desc)
		assert.Contains(t, post, "description")
		assert.Equal(t, "", post["description"])
	})

	t.Run("set description is copied", func(t *testing.T) {
		desc := "Charge for order 3947"
		post := map[string]any{}
		addAmount(post, 3333, "", &desc)
		assert.Equal(t, "Charge for order 3947", post["description"])
	})
}
