package services

import (
	"github.com/stripe/stripe-go/v78"
	"github.com/stripe/stripe-go/v78/client"
)

// PaymentProvider wraps the payment gateway calls the service layer needs.
type PaymentProvider interface {
	CreateCustomer(email, name string) (string, error)
	CreateSetupIntent(customerID string) (string, error)
	CreateCheckoutSession(customerID, description string, amountCents int64, currency, successURL, cancelURL string) (sessionID, checkoutURL string, err error)
	CreateExpressAccount(email string) (string, error)
	CreateAccountLink(accountID, refreshURL, returnURL string) (string, error)
}

type stripeProvider struct {
	api *client.API
}

func NewStripeProvider(secretKey string) PaymentProvider {
	return &stripeProvider{api: client.New(secretKey, nil)}
}

func (p *stripeProvider) CreateCustomer(email, name string) (string, error) {
	customer, err := p.api.Customers.New(&stripe.CustomerParams{
		Email: stripe.String(email),
		Name:  stripe.String(name),
	})
	if err != nil {
		return "", err
	}
	return customer.ID, nil
}

func (p *stripeProvider) CreateSetupIntent(customerID string) (string, error) {
	intent, err := p.api.SetupIntents.New(&stripe.SetupIntentParams{
		Customer: stripe.String(customerID),
		PaymentMethodTypes: stripe.StringSlice([]string{
			"card",
		}),
	})
	if err != nil {
		return "", err
	}
	return intent.ClientSecret, nil
}

func (p *stripeProvider) CreateCheckoutSession(customerID, description string, amountCents int64, currency, successURL, cancelURL string) (string, string, error) {
	session, err := p.api.CheckoutSessions.New(&stripe.CheckoutSessionParams{
		Customer:   stripe.String(customerID),
		Mode:       stripe.String(string(stripe.CheckoutSessionModePayment)),
		SuccessURL: stripe.String(successURL),
		CancelURL:  stripe.String(cancelURL),
		LineItems: []*stripe.CheckoutSessionLineItemParams{
			{
				Quantity: stripe.Int64(1),
				PriceData: &stripe.CheckoutSessionLineItemPriceDataParams{
					Currency:   stripe.String(currency),
					UnitAmount: stripe.Int64(amountCents),
					ProductData: &stripe.CheckoutSessionLineItemPriceDataProductDataParams{
						Name: stripe.String(description),
					},
				},
			},
		},
	})
	if err != nil {
		return "", "", err
	}
	return session.ID, session.URL, nil
}

func (p *stripeProvider) CreateExpressAccount(email string) (string, error) {
	account, err := p.api.Accounts.New(&stripe.AccountParams{
		Type:  stripe.String(string(stripe.AccountTypeExpress)),
		Email: stripe.String(email),
		Capabilities: &stripe.AccountCapabilitiesParams{
			Transfers: &stripe.AccountCapabilitiesTransfersParams{
				Requested: stripe.Bool(true),
			},
		},
	})
	if err != nil {
		return "", err
	}
	return account.ID, nil
}

func (p *stripeProvider) CreateAccountLink(accountID, refreshURL, returnURL string) (string, error) {
	link, err := p.api.AccountLinks.New(&stripe.AccountLinkParams{
		Account:    stripe.String(accountID),
		RefreshURL: stripe.String(refreshURL),
		ReturnURL:  stripe.String(returnURL),
		Type:       stripe.String(string(stripe.AccountLinkTypeAccountOnboarding)),
	})
	if err != nil {
		return "", err
	}
	return link.URL, nil
}
