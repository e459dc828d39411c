package controllers

import (
	"github.com/gin-gonic/gin"

	"backend/pkg/resp"
	"backend/services"
	"backend/utils"
)

type PaymentController struct {
	Payments *services.PaymentService
}

func NewPaymentController(payments *services.PaymentService) *PaymentController {
	return &PaymentController{Payments: payments}
}

type InitiatePaymentRequest struct {
	BookingID uint    `json:"bookingId" binding:"required"`
	Amount    float64 `json:"amount" binding:"required"`
	Phone     string  `json:"phone"`
}

// POST /api/payment/initiate
func (p *PaymentController) Initiate(c *gin.Context) {
	var req InitiatePaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	result, err := p.Payments.Initiate(utils.CurrentUserID(c), req.BookingID, req.Amount, req.Phone)
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, result)
}

type CallbackRequest struct {
	MerchantTransactionID string `json:"merchantTransactionId" form:"merchantTransactionId"`
	Checksum              string `json:"checksum" form:"checksum"`
}

// POST|GET /api/payment/callback — the gateway redirects here; the
// authoritative state comes from a status re-query, not this payload.
func (p *PaymentController) Callback(c *gin.Context) {
	var req CallbackRequest
	if c.Request.Method == "GET" {
		req.MerchantTransactionID = c.Query("merchantTransactionId")
		req.Checksum = c.Query("checksum")
	} else if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	payment, err := p.Payments.HandleCallback(req.MerchantTransactionID, req.Checksum)
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, gin.H{"status": payment.Status, "merchantTransactionId": payment.MerchantTransactionID})
}

// GET /api/payment/status/:txn
func (p *PaymentController) Status(c *gin.Context) {
	status, err := p.Payments.Status(c.Param("txn"))
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, status)
}

type RefundRequest struct {
	MerchantTransactionID string  `json:"merchantTransactionId" binding:"required"`
	Amount                float64 `json:"amount" binding:"required"`
	Note                  string  `json:"note"`
}

// POST /api/payment/refund — admin only.
func (p *PaymentController) Refund(c *gin.Context) {
	var req RefundRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	result, err := p.Payments.Refund(req.MerchantTransactionID, req.Amount, req.Note)
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, result)
}

// GET /api/admin/payments
func (p *PaymentController) ListAll(c *gin.Context) {
	payments, err := p.Payments.ListAll()
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, payments)
}
