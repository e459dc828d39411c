package services

import (
	"encoding/json"
	"fmt"
	"time"

	"gorm.io/gorm"

	"backend/entity"
	"backend/pkg/phonepe"
	"backend/repository"
)

// PaymentService drives the gateway flow: initiation, the asynchronous
// callback, status checks and refunds. The booking's own payment_status is
// only flipped after the gateway confirms COMPLETED.
type PaymentService struct {
	DB       *gorm.DB
	Payments *repository.PaymentRepository
	Bookings *repository.BookingRepository
	Gateway  phonepe.Gateway
}

func NewPaymentService(db *gorm.DB, payments *repository.PaymentRepository, bookings *repository.BookingRepository, gateway phonepe.Gateway) *PaymentService {
	return &PaymentService{DB: db, Payments: payments, Bookings: bookings, Gateway: gateway}
}

type InitiateResult struct {
	PaymentURL            string `json:"paymentUrl"`
	MerchantTransactionID string `json:"merchantTransactionId"`
}

// Initiate creates the gateway payment request and records the pending
// attempt, keyed by merchant transaction id for callback correlation.
func (s *PaymentService) Initiate(userID, bookingID uint, amount float64, phone string) (*InitiateResult, error) {
	b, err := s.Bookings.FindByID(bookingID)
	if err != nil {
		return nil, err
	}
	if b.UserID == nil || *b.UserID != userID {
		return nil, ErrForbidden
	}
	if amount <= 0 {
		return nil, fmt.Errorf("%w: amount must be positive", ErrValidation)
	}

	res, err := s.Gateway.CreatePaymentRequest(bookingID, amount, userID, phone)
	if err != nil {
		return nil, err
	}

	gatewayResponse, _ := json.Marshal(res)
	p := &entity.Payment{
		BookingID:             bookingID,
		Amount:                amount,
		Status:                entity.TxnPending,
		MerchantTransactionID: res.MerchantTransactionID,
		GatewayResponse:       gatewayResponse,
	}
	if err := s.Payments.Create(p); err != nil {
		return nil, err
	}

	return &InitiateResult{
		PaymentURL:            res.PaymentURL,
		MerchantTransactionID: res.MerchantTransactionID,
	}, nil
}

// HandleCallback validates the callback, then re-queries the gateway for the
// authoritative state instead of trusting the callback payload.
func (s *PaymentService) HandleCallback(merchantTxnID, checksum string) (*entity.Payment, error) {
	if err := s.Gateway.ValidateCallback(merchantTxnID, checksum); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrValidation, err)
	}

	p, err := s.Payments.FindByMerchantTxnID(merchantTxnID)
	if err != nil {
		return nil, err
	}

	status, err := s.Gateway.CheckPaymentStatus(merchantTxnID)
	if err != nil {
		return nil, err
	}

	if status.State != entity.TxnCompleted {
		if status.State == entity.TxnFailed {
			if err := s.Payments.Update(p.ID, map[string]any{"status": entity.TxnFailed}); err != nil {
				return nil, err
			}
			p.Status = entity.TxnFailed
		}
		return p, nil
	}

	gatewayResponse, _ := json.Marshal(status)
	now := time.Now()
	err = s.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&entity.Payment{}).Where("id = ?", p.ID).Updates(map[string]any{
			"status":           entity.TxnCompleted,
			"gateway_response": gatewayResponse,
		}).Error; err != nil {
			return err
		}
		return tx.Model(&entity.Booking{}).Where("id = ?", p.BookingID).Updates(map[string]any{
			"payment_status": entity.PaymentPaid,
			"payment_amount": p.Amount,
			"payment_date":   &now,
		}).Error
	})
	if err != nil {
		return nil, err
	}
	p.Status = entity.TxnCompleted
	return p, nil
}

// Status proxies the gateway status check for a known transaction.
func (s *PaymentService) Status(merchantTxnID string) (*phonepe.StatusResponse, error) {
	if _, err := s.Payments.FindByMerchantTxnID(merchantTxnID); err != nil {
		return nil, err
	}
	return s.Gateway.CheckPaymentStatus(merchantTxnID)
}

// Refund is admin-only at the route layer.
func (s *PaymentService) Refund(merchantTxnID string, amount float64, note string) (*phonepe.RefundResponse, error) {
	p, err := s.Payments.FindByMerchantTxnID(merchantTxnID)
	if err != nil {
		return nil, err
	}
	if p.Status != entity.TxnCompleted {
		return nil, ErrConflict
	}

	res, err := s.Gateway.ProcessRefund(merchantTxnID, amount)
	if err != nil {
		return nil, err
	}

	gatewayResponse, _ := json.Marshal(map[string]any{
		"refundTransactionId": res.RefundTransactionID,
		"note":                note,
	})
	if err := s.Payments.Update(p.ID, map[string]any{
		"status":           entity.TxnRefunded,
		"gateway_response": gatewayResponse,
	}); err != nil {
		return nil, err
	}
	return res, nil
}

func (s *PaymentService) ListAll() ([]entity.Payment, error) {
	return s.Payments.ListAll()
}
