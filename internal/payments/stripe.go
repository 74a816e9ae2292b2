// Package payments wraps the Stripe subscription lifecycle: checkout and
// customer-portal session creation plus webhook signature verification.
package payments

import (
	"fmt"

	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/client"
	"github.com/stripe/stripe-go/v76/webhook"
)

// Service holds the Stripe client and the static checkout settings.
type Service struct {
	api           *client.API
	priceID       string
	webhookSecret string
	frontendURL   string
}

// NewService builds a Stripe-backed payments service.
func NewService(secretKey, priceID, webhookSecret, frontendURL string) *Service {
	return &Service{
		api:           client.New(secretKey, nil),
		priceID:       priceID,
		webhookSecret: webhookSecret,
		frontendURL:   frontendURL,
	}
}

// CreateCheckoutSession opens a subscription checkout for the configured
// price and returns the hosted page URL. The user id travels in the session
// metadata so the webhook can find the profile to upgrade.
func (s *Service) CreateCheckoutSession(userID, email string) (string, error) {
	params := &stripe.CheckoutSessionParams{
		PaymentMethodTypes: stripe.StringSlice([]string{"card"}),
		LineItems: []*stripe.CheckoutSessionLineItemParams{
			{
				Price:    stripe.String(s.priceID),
				Quantity: stripe.Int64(1),
			},
		},
		Mode:       stripe.String(string(stripe.CheckoutSessionModeSubscription)),
		SuccessURL: stripe.String(s.frontendURL + "/meu-perfil?success=true"),
		CancelURL:  stripe.String(s.frontendURL + "/precos?canceled=true"),
	}
	params.AddMetadata("user_id", userID)
	if email != "" {
		params.CustomerEmail = stripe.String(email)
	}

	session, err := s.api.CheckoutSessions.New(params)
	if err != nil {
		return "", fmt.Errorf("failed to create checkout session: %w", err)
	}
	return session.URL, nil
}

// CreatePortalSession opens the billing portal for an existing customer.
func (s *Service) CreatePortalSession(customerID string) (string, error) {
	params := &stripe.BillingPortalSessionParams{
		Customer:  stripe.String(customerID),
		ReturnURL: stripe.String(s.frontendURL + "/meu-perfil"),
	}
	session, err := s.api.BillingPortalSessions.New(params)
	if err != nil {
		return "", fmt.Errorf("failed to create portal session: %w", err)
	}
	return session.URL, nil
}

// VerifyEvent checks the webhook signature against the shared secret and
// returns the decoded event. A mismatch or malformed payload is an error;
// the caller answers non-200 so Stripe retries delivery.
func (s *Service) VerifyEvent(payload []byte, sigHeader string) (stripe.Event, error) {
	return webhook.ConstructEvent(payload, sigHeader, s.webhookSecret)
}
