package dto

import "github.com/shopspring/decimal"

// --- Payment Requests ---

type SetupPaymentMethodRequest struct {
	ReturnURL string `json:"return_url" validate:"omitempty,url"`
}

type CheckoutRequest struct {
	CampaignID string `json:"campaign_id" validate:"required,uuid"`
	SuccessURL string `json:"success_url" validate:"omitempty,url"`
	CancelURL  string `json:"cancel_url" validate:"omitempty,url"`
}

// --- Payment Responses ---

type SetupIntentResponse struct {
	ClientSecret string `json:"client_secret"`
	CustomerID   string `json:"customer_id"`
}

type CheckoutResponse struct {
	SessionID   string          `json:"session_id"`
	CheckoutURL string          `json:"checkout_url"`
	Amount      decimal.Decimal `json:"amount"`
	Currency    string          `json:"currency"`
}

type OnboardingLinkResponse struct {
	AccountID string `json:"account_id"`
	URL       string `json:"url"`
}

type PaymentAccountResponse struct {
	UserID           string `json:"user_id"`
	CustomerID       string `json:"customer_id,omitempty"`
	PaymentMethodID  string `json:"payment_method_id,omitempty"`
	ConnectAccountID string `json:"connect_account_id,omitempty"`
	OnboardingDone   bool   `json:"onboarding_done"`
}
