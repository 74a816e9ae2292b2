package handlers

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/adapta-ai/backend/internal/profile"
)

const testWebhookSecret = "whsec_test"

// signStripePayload builds a valid Stripe-Signature header for a payload,
// using the same scheme Stripe documents: HMAC-SHA256 over "t.payload".
func signStripePayload(payload []byte, secret string) string {
	ts := time.Now().Unix()
	mac := hmac.New(sha256.New, []byte(secret))
	fmt.Fprintf(mac, "%d.%s", ts, payload)
	return fmt.Sprintf("t=%d,v1=%s", ts, hex.EncodeToString(mac.Sum(nil)))
}

func postWebhook(t *testing.T, env *testEnv, payload []byte, sigHeader string) *httptest.ResponseRecorder {
	t.Helper()
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/webhook", strings.NewReader(string(payload)))
	if sigHeader != "" {
		c.Request.Header.Set("Stripe-Signature", sigHeader)
	}
	env.handlers.StripeWebhook(c)
	return w
}

func TestWebhookInvalidSignatureRejectedWithoutMutation(t *testing.T) {
	env := newTestEnv(t)
	payload := []byte(`{"id":"evt_1","type":"checkout.session.completed","data":{"object":{}}}`)

	w := postWebhook(t, env, payload, "t=1,v1=deadbeef")

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Zero(t, env.supabase.requestCount(), "no profile mutation on bad signature")
}

func TestWebhookMissingSignatureRejected(t *testing.T) {
	env := newTestEnv(t)

	w := postWebhook(t, env, []byte(`{}`), "")

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestWebhookCheckoutCompletedActivatesPro(t *testing.T) {
	env := newTestEnv(t)
	payload := []byte(`{
		"id": "evt_2",
		"api_version": "2023-10-16",
		"type": "checkout.session.completed",
		"data": {"object": {"customer": "cus_42", "metadata": {"user_id": "u7"}}}
	}`)

	w := postWebhook(t, env, payload, signStripePayload(payload, testWebhookSecret))

	require.Equal(t, http.StatusOK, w.Code)
	patches := env.supabase.patchBodies()
	require.Len(t, patches, 1)
	assert.Equal(t, true, patches[0]["is_pro"])
	assert.Equal(t, "cus_42", patches[0]["stripe_customer_id"])
	assert.Equal(t, float64(profile.ProTopUpCredits), patches[0]["credits"])
}

func TestWebhookCheckoutWithoutUserIDIsIgnored(t *testing.T) {
	env := newTestEnv(t)
	payload := []byte(`{
		"id": "evt_3",
		"api_version": "2023-10-16",
		"type": "checkout.session.completed",
		"data": {"object": {"customer": "cus_42", "metadata": {}}}
	}`)

	w := postWebhook(t, env, payload, signStripePayload(payload, testWebhookSecret))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, env.supabase.patchBodies())
}

func TestWebhookSubscriptionDeletedClearsPro(t *testing.T) {
	env := newTestEnv(t)
	env.supabase.profiles = `[{"id":"u7"}]`
	payload := []byte(`{
		"id": "evt_4",
		"api_version": "2023-10-16",
		"type": "customer.subscription.deleted",
		"data": {"object": {"customer": "cus_42"}}
	}`)

	w := postWebhook(t, env, payload, signStripePayload(payload, testWebhookSecret))

	require.Equal(t, http.StatusOK, w.Code)
	patches := env.supabase.patchBodies()
	require.Len(t, patches, 1)
	assert.Equal(t, false, patches[0]["is_pro"])
}

func TestWebhookUnknownEventAcknowledged(t *testing.T) {
	env := newTestEnv(t)
	payload := []byte(`{"id":"evt_5","api_version":"2023-10-16","type":"invoice.paid","data":{"object":{}}}`)

	w := postWebhook(t, env, payload, signStripePayload(payload, testWebhookSecret))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Zero(t, env.supabase.requestCount())
}

func TestCreatePortalSessionWithoutSubscriptionReturns400(t *testing.T) {
	env := newTestEnv(t)
	env.supabase.profiles = `[{"id":"u1","credits":10,"is_pro":false}]`

	w := postJSON(t, env.handlers.CreatePortalSession, map[string]string{"user_id": "u1"})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Sem assinatura ativa para gerenciar.", decodeBody(t, w)["error"])
}
