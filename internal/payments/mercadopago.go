package payments

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	mpconfig "github.com/mercadopago/sdk-go/pkg/config"
	"github.com/mercadopago/sdk-go/pkg/preference"
)

var ErrNotConfigured = errors.New("payments not configured")

type Checkout struct {
	AppointmentID uint
	Title         string
	UnitPrice     float64
	PayerName     string
	PayerEmail    string
}

type Link struct {
	PreferenceID string `json:"preferenceId"`
	CheckoutURL  string `json:"checkoutUrl"`
}

type Gateway interface {
	CreateCheckout(ctx context.Context, c Checkout) (*Link, error)
}

type MercadoPagoGateway struct {
	client   preference.Client
	currency string
}

func NewMercadoPagoGateway(accessToken string) (*MercadoPagoGateway, error) {
	cfg, err := mpconfig.New(accessToken)
	if err != nil {
		return nil, fmt.Errorf("mercadopago config: %w", err)
	}
	return &MercadoPagoGateway{
		client:   preference.NewClient(cfg),
		currency: "EUR",
	}, nil
}

func ExternalReference(appointmentID uint) string {
	return "appointment-" + strconv.FormatUint(uint64(appointmentID), 10)
}

func (g *MercadoPagoGateway) CreateCheckout(ctx context.Context, c Checkout) (*Link, error) {
	req := preference.Request{
		Items: []preference.ItemRequest{
			{
				ID:         strconv.FormatUint(uint64(c.AppointmentID), 10),
				Title:      c.Title,
				Quantity:   1,
				UnitPrice:  c.UnitPrice,
				CurrencyID: g.currency,
			},
		},
		Payer: &preference.PayerRequest{
			Name:  c.PayerName,
			Email: c.PayerEmail,
		},
		ExternalReference: ExternalReference(c.AppointmentID),
	}

	resp, err := g.client.Create(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("mercadopago create preference: %w", err)
	}

	return &Link{PreferenceID: resp.ID, CheckoutURL: resp.InitPoint}, nil
}
