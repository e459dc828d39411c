package phonepe

import (
	"bytes"
	"crypto/sha256"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"go.uber.org/zap"
)

// Gateway is what the payment service depends on. Client implements it
// against the PhonePe PG APIs; in mock mode every call returns a canned
// success so the rest of the pipeline can be exercised without credentials.
type Gateway interface {
	CreatePaymentRequest(bookingID uint, amount float64, userID uint, phone string) (*PaymentResponse, error)
	CheckPaymentStatus(merchantTxnID string) (*StatusResponse, error)
	ProcessRefund(merchantTxnID string, amount float64) (*RefundResponse, error)
	ValidateCallback(merchantTxnID, checksum string) error
}

type Config struct {
	MerchantID   string
	SaltKey      string
	SaltIndex    string
	BaseURL      string
	RedirectURL  string
	CallbackURL  string
	MockFallback bool // serve mock responses when the gateway is unreachable
}

type PaymentResponse struct {
	PaymentURL            string `json:"paymentUrl"`
	MerchantTransactionID string `json:"merchantTransactionId"`
	Mock                  bool   `json:"mock,omitempty"`
}

type StatusResponse struct {
	State                 string  `json:"state"`
	MerchantTransactionID string  `json:"merchantTransactionId"`
	Amount                float64 `json:"amount"`
	ResponseCode          string  `json:"responseCode"`
	ResponseMessage       string  `json:"responseMessage"`
	Mock                  bool    `json:"mock,omitempty"`
}

type RefundResponse struct {
	RefundTransactionID string `json:"refundTransactionId"`
	Message             string `json:"message"`
	Mock                bool   `json:"mock,omitempty"`
}

const (
	payPath    = "/pg/v1/pay"
	statusPath = "/pg/v1/status"
	refundPath = "/pg/v1/refund"
)

type Client struct {
	cfg  Config
	http *http.Client
	log  *zap.Logger
}

func NewClient(cfg Config, log *zap.Logger) *Client {
	return &Client{
		cfg:  cfg,
		http: &http.Client{Timeout: 30 * time.Second},
		log:  log,
	}
}

// checksum is sha256(base64Payload + apiPath + saltKey) + "###" + saltIndex.
func (c *Client) checksum(payloadB64, apiPath string) string {
	sum := sha256.Sum256([]byte(payloadB64 + apiPath + c.cfg.SaltKey))
	return fmt.Sprintf("%x###%s", sum, c.cfg.SaltIndex)
}

func (c *Client) CreatePaymentRequest(bookingID uint, amount float64, userID uint, phone string) (*PaymentResponse, error) {
	txnID := fmt.Sprintf("TXN_%d_%d", bookingID, time.Now().Unix())

	payload := map[string]any{
		"merchantId":            c.cfg.MerchantID,
		"merchantTransactionId": txnID,
		"merchantUserId":        fmt.Sprintf("USER_%d", userID),
		"amount":                int64(amount * 100), // paise
		"redirectUrl":           c.cfg.RedirectURL,
		"redirectMode":          "REDIRECT",
		"callbackUrl":           c.cfg.CallbackURL,
		"merchantOrderId":       fmt.Sprintf("ORDER_%d", bookingID),
		"mobileNumber":          phone,
		"paymentInstrument":     map[string]any{"type": "PAY_PAGE"},
	}

	raw, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	payloadB64 := base64.StdEncoding.EncodeToString(raw)

	body, err := json.Marshal(map[string]string{"request": payloadB64})
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequest(http.MethodPost, c.cfg.BaseURL+payPath, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-VERIFY", c.checksum(payloadB64, payPath))

	res, err := c.http.Do(req)
	if err != nil {
		return c.mockPayment(txnID, err)
	}
	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		return c.mockPayment(txnID, fmt.Errorf("phonepe pay api status %d", res.StatusCode))
	}

	var out struct {
		Success bool   `json:"success"`
		Message string `json:"message"`
		Data    struct {
			InstrumentResponse struct {
				RedirectInfo struct {
					URL string `json:"url"`
				} `json:"redirectInfo"`
			} `json:"instrumentResponse"`
		} `json:"data"`
	}
	if err := json.NewDecoder(res.Body).Decode(&out); err != nil {
		return c.mockPayment(txnID, err)
	}
	if !out.Success {
		return nil, fmt.Errorf("payment initiation failed: %s", out.Message)
	}

	return &PaymentResponse{
		PaymentURL:            out.Data.InstrumentResponse.RedirectInfo.URL,
		MerchantTransactionID: txnID,
	}, nil
}

func (c *Client) CheckPaymentStatus(merchantTxnID string) (*StatusResponse, error) {
	path := fmt.Sprintf("%s/%s/%s", statusPath, c.cfg.MerchantID, merchantTxnID)

	req, err := http.NewRequest(http.MethodGet, c.cfg.BaseURL+path, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-VERIFY", c.checksum("", path))
	req.Header.Set("X-MERCHANT-ID", c.cfg.MerchantID)

	res, err := c.http.Do(req)
	if err != nil {
		return c.mockStatus(merchantTxnID, err)
	}
	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		return c.mockStatus(merchantTxnID, fmt.Errorf("phonepe status api status %d", res.StatusCode))
	}

	var out struct {
		Success bool   `json:"success"`
		Message string `json:"message"`
		Data    struct {
			MerchantTransactionID string `json:"merchantTransactionId"`
			PaymentState          string `json:"paymentState"`
			Amount                int64  `json:"amount"`
			ResponseCode          string `json:"responseCode"`
			ResponseMessage       string `json:"responseMessage"`
		} `json:"data"`
	}
	if err := json.NewDecoder(res.Body).Decode(&out); err != nil {
		return c.mockStatus(merchantTxnID, err)
	}
	if !out.Success {
		return nil, fmt.Errorf("status check failed: %s", out.Message)
	}

	return &StatusResponse{
		State:                 out.Data.PaymentState,
		MerchantTransactionID: out.Data.MerchantTransactionID,
		Amount:                float64(out.Data.Amount) / 100,
		ResponseCode:          out.Data.ResponseCode,
		ResponseMessage:       out.Data.ResponseMessage,
	}, nil
}

func (c *Client) ProcessRefund(merchantTxnID string, amount float64) (*RefundResponse, error) {
	refundTxnID := fmt.Sprintf("REFUND_%s_%d", merchantTxnID, time.Now().Unix())

	payload := map[string]any{
		"merchantId":            c.cfg.MerchantID,
		"merchantTransactionId": refundTxnID,
		"merchantUserId":        fmt.Sprintf("USER_REFUND_%d", time.Now().Unix()),
		"originalTransactionId": merchantTxnID,
		"amount":                int64(amount * 100),
		"callbackUrl":           c.cfg.CallbackURL,
	}

	raw, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	payloadB64 := base64.StdEncoding.EncodeToString(raw)

	body, err := json.Marshal(map[string]string{"request": payloadB64})
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequest(http.MethodPost, c.cfg.BaseURL+refundPath, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-VERIFY", c.checksum(payloadB64, refundPath))

	res, err := c.http.Do(req)
	if err != nil {
		return c.mockRefund(refundTxnID, err)
	}
	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		return c.mockRefund(refundTxnID, fmt.Errorf("phonepe refund api status %d", res.StatusCode))
	}

	var out struct {
		Success bool   `json:"success"`
		Message string `json:"message"`
	}
	if err := json.NewDecoder(res.Body).Decode(&out); err != nil {
		return c.mockRefund(refundTxnID, err)
	}
	if !out.Success {
		return nil, fmt.Errorf("refund initiation failed: %s", out.Message)
	}

	return &RefundResponse{
		RefundTransactionID: refundTxnID,
		Message:             "Refund initiated successfully",
	}, nil
}

// ValidateCallback verifies the checksum on an asynchronous gateway callback.
// An empty checksum is accepted; the caller re-queries the authoritative
// status API before trusting the result either way.
func (c *Client) ValidateCallback(merchantTxnID, checksum string) error {
	if merchantTxnID == "" {
		return fmt.Errorf("missing merchant transaction ID")
	}
	if checksum == "" {
		return nil
	}
	expected := c.checksum("", fmt.Sprintf("%s/%s/%s", statusPath, c.cfg.MerchantID, merchantTxnID))
	if checksum != expected {
		return fmt.Errorf("invalid checksum")
	}
	return nil
}

func (c *Client) mockPayment(txnID string, cause error) (*PaymentResponse, error) {
	if !c.cfg.MockFallback {
		return nil, cause
	}
	c.log.Warn("phonepe pay api unavailable, serving mock response", zap.Error(cause))
	url := fmt.Sprintf("%s?merchantTransactionId=%s&code=PAYMENT_SUCCESS&message=Payment%%20Successful&transactionId=MOCK_TXN_%d",
		c.cfg.RedirectURL, txnID, time.Now().Unix())
	return &PaymentResponse{PaymentURL: url, MerchantTransactionID: txnID, Mock: true}, nil
}

func (c *Client) mockStatus(merchantTxnID string, cause error) (*StatusResponse, error) {
	if !c.cfg.MockFallback {
		return nil, cause
	}
	c.log.Warn("phonepe status api unavailable, serving mock response", zap.Error(cause))
	return &StatusResponse{
		State:                 "COMPLETED",
		MerchantTransactionID: merchantTxnID,
		Amount:                100,
		ResponseCode:          "SUCCESS",
		ResponseMessage:       "Payment Successful",
		Mock:                  true,
	}, nil
}

func (c *Client) mockRefund(refundTxnID string, cause error) (*RefundResponse, error) {
	if !c.cfg.MockFallback {
		return nil, cause
	}
	c.log.Warn("phonepe refund api unavailable, serving mock response", zap.Error(cause))
	return &RefundResponse{RefundTransactionID: refundTxnID, Message: "Refund initiated successfully", Mock: true}, nil
}
