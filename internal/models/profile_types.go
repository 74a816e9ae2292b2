package models

// Profile defines the struct for the 'profiles' table.
// The row is owned by Supabase; this service only reads it and mutates
// credits / subscription state.
type Profile struct {
	ID               string `json:"id" db:"id"`
	Credits          int    `json:"credits" db:"credits"`
	IsPro            bool   `json:"is_pro" db:"is_pro"`
	StripeCustomerID string `json:"stripe_customer_id,omitempty" db:"stripe_customer_id"`
}
