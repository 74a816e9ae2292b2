// Package profile implements the credit ledger: reads and writes against the
// remote 'profiles' table that gate non-subscriber tool usage.
package profile

import (
	"context"
	"errors"
	"fmt"
	"net/url"

	"github.com/adapta-ai/backend/internal/logger"
	"github.com/adapta-ai/backend/internal/models"
	"github.com/adapta-ai/backend/internal/supabase"
)

// ProTopUpCredits is the balance a profile is reset to when a checkout
// completes. Replayed checkout events re-grant it; see DESIGN.md.
const ProTopUpCredits = 100

// ErrNotFound is returned when no profile row matches the lookup.
var ErrNotFound = errors.New("profile not found")

// Store reads and mutates user profiles through Supabase.
type Store struct {
	db *supabase.Client
}

// NewStore wires the store to a Supabase client.
func NewStore(db *supabase.Client) *Store {
	return &Store{db: db}
}

// Get fetches a single profile by user id.
func (s *Store) Get(ctx context.Context, userID string) (*models.Profile, error) {
	var rows []models.Profile
	query := "id=eq." + url.QueryEscape(userID) + "&select=id,credits,is_pro,stripe_customer_id"
	if err := s.db.Select(ctx, "profiles", query, &rows); err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, ErrNotFound
	}
	return &rows[0], nil
}

// TryConsumeCredit checks whether the user may run a credit-gated tool and,
// for non-pro users, deducts one credit. It never returns an error: any
// failure talking to the store is reported as a denial with the failure text
// as reason.
//
// The deduction is a read followed by a separate write. Two concurrent calls
// can both observe the pre-decrement balance and both succeed; this matches
// the original system's observable behavior and is deliberately not fixed
// here (see DESIGN.md).
func (s *Store) TryConsumeCredit(ctx context.Context, userID string) (bool, string) {
	p, err := s.Get(ctx, userID)
	if errors.Is(err, ErrNotFound) {
		return false, "Usuário não encontrado."
	}
	if err != nil {
		logger.Log.WithError(err).Warn("credit check failed, denying request")
		return false, err.Error()
	}

	// Pro subscribers have unlimited usage and are never charged.
	if p.IsPro {
		return true, "Sucesso (VIP)"
	}
	if p.Credits <= 0 {
		return false, "Sem créditos. Assine o PRO!"
	}

	patch := map[string]int{"credits": p.Credits - 1}
	if err := s.db.Update(ctx, "profiles", "id=eq."+url.QueryEscape(userID), patch); err != nil {
		logger.Log.WithError(err).Warn("credit deduction failed, denying request")
		return false, err.Error()
	}
	return true, "Sucesso"
}

// ActivatePro marks a profile as subscribed after a completed checkout:
// pro flag on, Stripe customer id recorded, credits topped up.
func (s *Store) ActivatePro(ctx context.Context, userID, customerID string) error {
	patch := map[string]interface{}{
		"is_pro":             true,
		"stripe_customer_id": customerID,
		"credits":            ProTopUpCredits,
	}
	if err := s.db.Update(ctx, "profiles", "id=eq."+url.QueryEscape(userID), patch); err != nil {
		return fmt.Errorf("failed to activate pro for user %s: %w", userID, err)
	}
	return nil
}

// DeactivateProByCustomer clears the pro flag on the profile that owns the
// given Stripe customer id. An unknown customer id is a no-op, matching the
// behavior expected when the webhook arrives for an already-deleted profile.
func (s *Store) DeactivateProByCustomer(ctx context.Context, customerID string) error {
	var rows []models.Profile
	query := "stripe_customer_id=eq." + url.QueryEscape(customerID) + "&select=id"
	if err := s.db.Select(ctx, "profiles", query, &rows); err != nil {
		return err
	}
	if len(rows) == 0 {
		return nil
	}
	patch := map[string]bool{"is_pro": false}
	return s.db.Update(ctx, "profiles", "id=eq."+url.QueryEscape(rows[0].ID), patch)
}
