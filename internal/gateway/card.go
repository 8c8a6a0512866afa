package gateway

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator"
)

var cardValidator = validator.New()

// CreditCard is the raw card input handed to an adapter. It only lives
// long enough to build a tokenization request; adapters must never
// persist it or log it unscrubbed.
type CreditCard struct {
	Number          string `validate:"required,numeric"`
	Name            string `validate:"required"`
	SecurityCode    string `validate:"required,numeric"`
	ExpirationMonth int    `validate:"required,min=1,max=12"`
	ExpirationYear  int    `validate:"required,min=2000"`
}

// Validate reports every violation at once, joined into a single
// message, so callers can short-circuit before any network call.
func (c *CreditCard) Validate() error {
	err := cardValidator.Struct(c)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}

	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msgs = append(msgs, fmt.Sprintf("%s is invalid", fe.Field()))
	}
	return errors.New(strings.Join(msgs, ". "))
}
