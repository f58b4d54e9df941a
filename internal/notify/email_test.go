package notify

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/msmahatha/agroCart-harvest-hub/internal/event"
)

func sampleEvent() event.OrderPlaced {
	return event.OrderPlaced{
		OrderID:   "ord-42",
		UserEmail: "user@example.com",
		UserName:  "Test User",
		Items: []event.OrderItem{
			{ProductID: "prod_001", ProductName: "Premium Tomato Seeds", Quantity: 2, UnitPrice: 415},
			{ProductID: "prod_003", ProductName: "Drip Irrigation Kit", Quantity: 1, UnitPrice: 6640},
		},
		Total:    7856.7,
		Currency: "INR",
	}
}

func TestRenderOrderEmail(t *testing.T) {
	html, err := renderOrderEmail(sampleEvent())
	require.NoError(t, err)

	assert.Contains(t, html, "Hello Test User")
	assert.Contains(t, html, "#ord-42")
	assert.Contains(t, html, "Premium Tomato Seeds")
	assert.Contains(t, html, "Drip Irrigation Kit")
	assert.Contains(t, html, "₹415.00")
	assert.Contains(t, html, "₹830.00") // 2 × 415
	assert.Contains(t, html, "₹7856.70")
}

func TestRenderOrderEmail_AnonymousGreeting(t *testing.T) {
	e := sampleEvent()
	e.UserName = ""

	html, err := renderOrderEmail(e)
	require.NoError(t, err)
	assert.Contains(t, html, "Hello Valued Customer")
}

func TestResendSender_PostsEmail(t *testing.T) {
	var got resendRequest
	var auth string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		auth = r.Header.Get("Authorization")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	sender := NewResendSender("test-key")
	sender.endpoint = server.URL

	err := sender.SendOrderConfirmation(context.Background(), sampleEvent())
	require.NoError(t, err)

	assert.Equal(t, "Bearer test-key", auth)
	assert.Equal(t, "AgroCart <orders@agrocart.com>", got.From)
	assert.Equal(t, "user@example.com", got.To)
	assert.Equal(t, "Order Confirmation #ord-42", got.Subject)
	assert.Contains(t, got.HTML, "Premium Tomato Seeds")
}

func TestResendSender_NonSuccessStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "invalid api key", http.StatusUnauthorized)
	}))
	defer server.Close()

	sender := NewResendSender("bad-key")
	sender.endpoint = server.URL

	err := sender.SendOrderConfirmation(context.Background(), sampleEvent())
	assert.ErrorContains(t, err, "401")
}
