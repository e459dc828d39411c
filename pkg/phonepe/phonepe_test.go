package phonepe

import (
	"crypto/sha256"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"backend/pkg/logger"
)

func testConfig(baseURL string, mock bool) Config {
	return Config{
		MerchantID:   "MERCHANT",
		SaltKey:      "salt-key",
		SaltIndex:    "1",
		BaseURL:      baseURL,
		RedirectURL:  "http://localhost:5173/payment/callback",
		CallbackURL:  "http://localhost:8000/api/payment/callback",
		MockFallback: mock,
	}
}

func TestChecksumFormat(t *testing.T) {
	c := NewClient(testConfig("http://unused", false), logger.Nop())

	sum := c.checksum("cGF5bG9hZA==", "/pg/v1/pay")
	expected := fmt.Sprintf("%x###1", sha256.Sum256([]byte("cGF5bG9hZA==/pg/v1/pay"+"salt-key")))
	assert.Equal(t, expected, sum)
}

func TestCreatePaymentRequestAgainstServer(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/pg/v1/pay", r.URL.Path)
		assert.NotEmpty(t, r.Header.Get("X-VERIFY"))
		assert.Contains(t, r.Header.Get("X-VERIFY"), "###1")

		var body struct {
			Request string `json:"request"`
		}
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.NotEmpty(t, body.Request)

		json.NewEncoder(w).Encode(map[string]any{
			"success": true,
			"data": map[string]any{
				"instrumentResponse": map[string]any{
					"redirectInfo": map[string]any{"url": "https://pay.example.com/session"},
				},
			},
		})
	}))
	defer srv.Close()

	c := NewClient(testConfig(srv.URL, false), logger.Nop())
	res, err := c.CreatePaymentRequest(7, 59.99, 3, "+91 90000 00000")
	require.NoError(t, err)
	assert.Equal(t, "https://pay.example.com/session", res.PaymentURL)
	assert.True(t, strings.HasPrefix(res.MerchantTransactionID, "TXN_7_"))
	assert.False(t, res.Mock)
}

func TestCreatePaymentRequestMockFallback(t *testing.T) {
	// unreachable host: fallback serves a deterministic mock when enabled
	c := NewClient(testConfig("http://127.0.0.1:1", true), logger.Nop())
	res, err := c.CreatePaymentRequest(7, 59.99, 3, "")
	require.NoError(t, err)
	assert.True(t, res.Mock)
	assert.Contains(t, res.PaymentURL, "code=PAYMENT_SUCCESS")
	assert.Contains(t, res.PaymentURL, res.MerchantTransactionID)
}

func TestCreatePaymentRequestNoFallbackSurfacesError(t *testing.T) {
	c := NewClient(testConfig("http://127.0.0.1:1", false), logger.Nop())
	_, err := c.CreatePaymentRequest(7, 59.99, 3, "")
	assert.Error(t, err)
}

func TestCheckPaymentStatusMockFallback(t *testing.T) {
	c := NewClient(testConfig("http://127.0.0.1:1", true), logger.Nop())
	res, err := c.CheckPaymentStatus("TXN_7_1")
	require.NoError(t, err)
	assert.True(t, res.Mock)
	assert.Equal(t, "COMPLETED", res.State)
	assert.Equal(t, "TXN_7_1", res.MerchantTransactionID)
}

func TestValidateCallback(t *testing.T) {
	c := NewClient(testConfig("http://unused", false), logger.Nop())

	assert.Error(t, c.ValidateCallback("", ""))

	// checksumless callbacks are accepted; status is re-queried anyway
	assert.NoError(t, c.ValidateCallback("TXN_7_1", ""))

	good := c.checksum("", "/pg/v1/status/MERCHANT/TXN_7_1")
	assert.NoError(t, c.ValidateCallback("TXN_7_1", good))
	assert.Error(t, c.ValidateCallback("TXN_7_1", "tampered###1"))
}
