package gateway_test

import (
	"testing"

	"github.com/paykit/omise-gateway/internal/gateway"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreditCardValidate(t *testing.T) {
	card := &gateway.CreditCard{
		Number:          "4242424242424242",
		Name:            "Longbob Longsen",
		SecurityCode:    "123",
		ExpirationMonth: 9,
		ExpirationYear:  2030,
	}
	require.NoError(t, card.Validate())
}

func TestCreditCardValidate_CollectsAllViolations(t *testing.T) {
	err := (&gateway.CreditCard{}).Validate()
	require.Error(t, err)

	msg := err.Error()
	assert.Contains(t, msg, "Number is invalid")
	assert.Contains(t, msg, "Name is invalid")
	assert.Contains(t, msg, "SecurityCode is invalid")
	assert.Contains(t, msg, ". ")
}

func TestCreditCardValidate_BadExpirationMonth(t *testing.T) {
	card := &gateway.CreditCard{
		Number:          "4242424242424242",
		Name:            "Longbob Longsen",
		SecurityCode:    "123",
		ExpirationMonth: 13,
		ExpirationYear:  2030,
	}
	err := card.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "ExpirationMonth is invalid")
}

func TestCreditCardValidate_NonNumericNumber(t *testing.T) {
	card := &gateway.CreditCard{
		Number:          "4242-4242-4242-4242",
		Name:            "Longbob Longsen",
		SecurityCode:    "123",
		ExpirationMonth: 9,
		ExpirationYear:  2030,
	}
	err := card.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Number is invalid")
}
