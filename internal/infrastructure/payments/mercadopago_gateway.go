package payments

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"artisanlink/internal/usecase/interfaces"

	"github.com/mercadopago/sdk-go/pkg/config"
	"github.com/mercadopago/sdk-go/pkg/payment"
)

var ErrMissingMercadoPagoAccessToken = errors.New("missing MERCADOPAGO_ACCESS_TOKEN")
var ErrMercadoPagoGatewayNotConfigured = errors.New("mercado pago gateway not configured")

// MercadoPagoGateway looks up payments on Mercado Pago so the service can
// confirm a client's down payment before releasing the request for estimation.
type MercadoPagoGateway struct {
	client   payment.Client
	mockMode bool
}

var _ interfaces.IPaymentGateway = (*MercadoPagoGateway)(nil)

func NewMercadoPagoGateway(accessToken string) (*MercadoPagoGateway, error) {
	if isPaymentGatewayMockEnabled() {
		log.Printf("[payment][gateway] mock mode enabled")
		return &MercadoPagoGateway{mockMode: true}, nil
	}

	if accessToken == "" {
		log.Printf("[payment][gateway] missing MERCADOPAGO_ACCESS_TOKEN")
		return nil, ErrMissingMercadoPagoAccessToken
	}

	cfg, err := config.New(accessToken)
	if err != nil {
		log.Printf("[payment][gateway] failed creating sdk config err=%v", err)
		return nil, err
	}
	log.Printf("[payment][gateway] Mercado Pago client initialized")

	return &MercadoPagoGateway{client: payment.NewClient(cfg)}, nil
}

func (g *MercadoPagoGateway) GetPayment(ctx context.Context, providerPaymentID string) (providerStatus string, providerResponse json.RawMessage, err error) {
	if g != nil && g.mockMode {
		log.Printf("[payment][gateway] mock get start provider_payment_id=%s", providerPaymentID)

		now := time.Now().UTC().Format(time.RFC3339Nano)
		resp := map[string]any{
			"id":            providerPaymentID,
			"status":        "approved",
			"status_detail": "accredited",
			"date_created":  now,
			"date_approved": now,
		}

		b, err := json.Marshal(resp)
		if err != nil {
			log.Printf("[payment][gateway] mock response marshal failed err=%v", err)
			return "", nil, err
		}

		log.Printf("[payment][gateway] mock get success provider_payment_id=%s provider_status=approved", providerPaymentID)
		return "approved", b, nil
	}

	if g == nil || g.client == nil {
		log.Printf("[payment][gateway] gateway not configured")
		return "", nil, ErrMercadoPagoGatewayNotConfigured
	}
	log.Printf("[payment][gateway] get start provider_payment_id=%s", providerPaymentID)

	id, err := strconv.Atoi(providerPaymentID)
	if err != nil {
		log.Printf("[payment][gateway] invalid provider payment id err=%v", err)
		return "", nil, err
	}

	resp, err := g.client.Get(ctx, id)
	if err != nil {
		log.Printf("[payment][gateway] sdk get failed err=%v", err)
		return "", nil, err
	}

	b, err := json.Marshal(resp)
	if err != nil {
		log.Printf("[payment][gateway] response marshal failed err=%v", err)
		return "", nil, err
	}
	log.Printf("[payment][gateway] get success provider_payment_id=%d provider_status=%s", resp.ID, resp.Status)

	return resp.Status, b, nil
}

// UnconfiguredGateway stands in when no Mercado Pago credentials are present.
// Every lookup fails with ErrMercadoPagoGatewayNotConfigured so down payment
// confirmation returns an error instead of crashing the handler.
type UnconfiguredGateway struct{}

var _ interfaces.IPaymentGateway = UnconfiguredGateway{}

func (UnconfiguredGateway) GetPayment(_ context.Context, providerPaymentID string) (string, json.RawMessage, error) {
	log.Printf("[payment][gateway] rejecting lookup, gateway not configured provider_payment_id=%s", providerPaymentID)
	return "", nil, ErrMercadoPagoGatewayNotConfigured
}

func isPaymentGatewayMockEnabled() bool {
	for _, key := range []string{"PAYMENT_GATEWAY_MOCK", "MERCADOPAGO_MOCK"} {
		v := strings.ToLower(strings.TrimSpace(os.Getenv(key)))
		switch v {
		case "1", "true", "yes", "on", "mock":
			return true
		}
	}
	return false
}
