package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/paykit/omise-gateway/internal/config"
	"github.com/paykit/omise-gateway/internal/gateway"
	"github.com/paykit/omise-gateway/internal/omise"
)

func main() {
	op := flag.String("op", "purchase", "operation: purchase|authorize|capture|refund|credit|void|store|unstore|verify")
	amount := flag.Int64("amount", 0, "amount in the provider's minor currency unit")
	chargeID := flag.String("charge", "", "charge id")
	customerID := flag.String("customer", "", "customer id")
	tokenID := flag.String("token", "", "vault token id")
	cardID := flag.String("card", "", "stored card id")
	number := flag.String("number", "", "card number")
	name := flag.String("name", "", "cardholder name")
	securityCode := flag.String("cvc", "", "card security code")
	month := flag.Int("month", 0, "card expiration month")
	year := flag.Int("year", 0, "card expiration year")
	description := flag.String("description", "", "charge or customer description")
	email := flag.String("email", "", "customer email")
	defaultCard := flag.Bool("default-card", false, "make the stored card the customer's default")
	flag.Parse()

	cfg, err := config.LoadConfig()
	if err != nil {
		slog.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}

	logger := cfg.Logger.NewLogger()
	slog.SetDefault(logger)

	adapter, err := omise.New(cfg.Omise, logger)
	if err != nil {
		logger.Error("failed to build omise adapter", "error", err)
		os.Exit(1)
	}
	gateway.Register("omise", adapter)

	gw, ok := gateway.Get("omise")
	if !ok {
		logger.Error("omise adapter not registered")
		os.Exit(1)
	}

	var card *gateway.CreditCard
	if *number != "" {
		card = &gateway.CreditCard{
			Number:          *number,
			Name:            *name,
			SecurityCode:    *securityCode,
			ExpirationMonth: *month,
			ExpirationYear:  *year,
		}
	}

	chargeOpts := gateway.ChargeOptions{
		TokenID:    *tokenID,
		CardID:     *cardID,
		CustomerID: *customerID,
		Email:      *email,
	}
	if *description != "" {
		chargeOpts.Description = description
	}

	ctx := context.Background()

	var resp *gateway.Response
	switch *op {
	case "purchase":
		resp = gw.Purchase(ctx, *amount, card, chargeOpts)
	case "authorize":
		resp = gw.Authorize(ctx, *amount, card, chargeOpts)
	case "capture":
		resp = gw.Capture(ctx, *amount, *chargeID, gateway.CaptureOptions{})
	case "refund":
		resp = gw.Refund(ctx, *amount, *chargeID)
	case "credit":
		resp = gw.Credit(ctx, *amount, *chargeID)
	case "void":
		resp = gw.Void(ctx, *chargeID)
	case "store":
		resp = gw.Store(ctx, card, gateway.StoreOptions{
			TokenID:     *tokenID,
			CardID:      *cardID,
			CustomerID:  *customerID,
			DefaultCard: *defaultCard,
			Description: *description,
			Email:       *email,
		})
	case "unstore":
		resp = gw.Unstore(ctx, *customerID, gateway.UnstoreOptions{CardID: *cardID})
	case "verify":
		resp = gw.Verify(ctx, card, chargeOpts)
	default:
		logger.Error("unknown operation", "op", *op)
		os.Exit(1)
	}

	if resp == nil {
		fmt.Println("nothing to do")
		return
	}

	out, err := json.MarshalIndent(resp, "", "  ")
	if err != nil {
		logger.Error("failed to encode result", "error", err)
		os.Exit(1)
	}
	fmt.Println(string(out))

	if !resp.Success {
		os.Exit(1)
	}
}
