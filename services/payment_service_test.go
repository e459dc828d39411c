package services

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"backend/entity"
	"backend/pkg/phonepe"
	"backend/repository"
)

// fakeGateway scripts the gateway responses for a test.
type fakeGateway struct {
	state       string
	callbackErr error
}

func (f *fakeGateway) CreatePaymentRequest(bookingID uint, amount float64, userID uint, phone string) (*phonepe.PaymentResponse, error) {
	txn := fmt.Sprintf("TXN_%d_%d", bookingID, time.Now().UnixNano())
	return &phonepe.PaymentResponse{
		PaymentURL:            "https://pay.example.com/" + txn,
		MerchantTransactionID: txn,
	}, nil
}

func (f *fakeGateway) CheckPaymentStatus(merchantTxnID string) (*phonepe.StatusResponse, error) {
	return &phonepe.StatusResponse{
		State:                 f.state,
		MerchantTransactionID: merchantTxnID,
		Amount:                5999,
	}, nil
}

func (f *fakeGateway) ProcessRefund(merchantTxnID string, amount float64) (*phonepe.RefundResponse, error) {
	return &phonepe.RefundResponse{
		RefundTransactionID: "REFUND_" + merchantTxnID,
		Message:             "Refund initiated successfully",
	}, nil
}

func (f *fakeGateway) ValidateCallback(merchantTxnID, checksum string) error {
	return f.callbackErr
}

func newPaymentService(db *gorm.DB, gw phonepe.Gateway) *PaymentService {
	return NewPaymentService(db,
		repository.NewPaymentRepository(db),
		repository.NewBookingRepository(db),
		gw,
	)
}

func TestInitiateCreatesPendingPayment(t *testing.T) {
	db := newTestDB(t)
	gw := &fakeGateway{state: entity.TxnCompleted}
	svc := newPaymentService(db, gw)
	client := seedClient(t, db, "client@example.com")
	booking := seedBooking(t, db, client.ID, entity.BookingCompleted)

	result, err := svc.Initiate(client.ID, booking.ID, 5999, "+91 90000 00000")
	require.NoError(t, err)
	assert.NotEmpty(t, result.PaymentURL)
	assert.NotEmpty(t, result.MerchantTransactionID)

	var p entity.Payment
	require.NoError(t, db.Where("merchant_transaction_id = ?", result.MerchantTransactionID).First(&p).Error)
	assert.Equal(t, entity.TxnPending, p.Status)
	assert.Equal(t, booking.ID, p.BookingID)
}

func TestInitiateRequiresOwnership(t *testing.T) {
	db := newTestDB(t)
	svc := newPaymentService(db, &fakeGateway{state: entity.TxnCompleted})
	owner := seedClient(t, db, "owner@example.com")
	other := seedClient(t, db, "other@example.com")
	booking := seedBooking(t, db, owner.ID, entity.BookingCompleted)

	_, err := svc.Initiate(other.ID, booking.ID, 5999, "")
	assert.ErrorIs(t, err, ErrForbidden)

	_, err = svc.Initiate(owner.ID, booking.ID, 0, "")
	assert.ErrorIs(t, err, ErrValidation)
}

func TestCallbackCompletesBookingPayment(t *testing.T) {
	db := newTestDB(t)
	gw := &fakeGateway{state: entity.TxnCompleted}
	svc := newPaymentService(db, gw)
	client := seedClient(t, db, "client@example.com")
	booking := seedBooking(t, db, client.ID, entity.BookingCompleted)

	result, err := svc.Initiate(client.ID, booking.ID, 5999, "")
	require.NoError(t, err)

	payment, err := svc.HandleCallback(result.MerchantTransactionID, "")
	require.NoError(t, err)
	assert.Equal(t, entity.TxnCompleted, payment.Status)

	var got entity.Booking
	require.NoError(t, db.First(&got, booking.ID).Error)
	assert.Equal(t, entity.PaymentPaid, got.PaymentStatus)
	assert.Equal(t, 5999.0, got.PaymentAmount)
	assert.NotNil(t, got.PaymentDate)
}

func TestCallbackDoesNotTrustPayload(t *testing.T) {
	db := newTestDB(t)
	// gateway still reports pending: booking must stay unpaid no matter
	// what the callback claimed
	gw := &fakeGateway{state: "PENDING"}
	svc := newPaymentService(db, gw)
	client := seedClient(t, db, "client@example.com")
	booking := seedBooking(t, db, client.ID, entity.BookingCompleted)

	result, err := svc.Initiate(client.ID, booking.ID, 5999, "")
	require.NoError(t, err)

	payment, err := svc.HandleCallback(result.MerchantTransactionID, "")
	require.NoError(t, err)
	assert.Equal(t, entity.TxnPending, payment.Status)

	var got entity.Booking
	require.NoError(t, db.First(&got, booking.ID).Error)
	assert.Equal(t, entity.PaymentPending, got.PaymentStatus)
}

func TestCallbackUnknownTransaction(t *testing.T) {
	db := newTestDB(t)
	svc := newPaymentService(db, &fakeGateway{state: entity.TxnCompleted})

	_, err := svc.HandleCallback("TXN_unknown", "")
	assert.Error(t, err)
}

func TestCallbackInvalidChecksum(t *testing.T) {
	db := newTestDB(t)
	gw := &fakeGateway{state: entity.TxnCompleted, callbackErr: fmt.Errorf("invalid checksum")}
	svc := newPaymentService(db, gw)

	_, err := svc.HandleCallback("TXN_1_1", "bad")
	assert.ErrorIs(t, err, ErrValidation)
}

func TestRefund(t *testing.T) {
	db := newTestDB(t)
	gw := &fakeGateway{state: entity.TxnCompleted}
	svc := newPaymentService(db, gw)
	client := seedClient(t, db, "client@example.com")
	booking := seedBooking(t, db, client.ID, entity.BookingCompleted)

	result, err := svc.Initiate(client.ID, booking.ID, 5999, "")
	require.NoError(t, err)

	// refunding a pending payment is refused
	_, err = svc.Refund(result.MerchantTransactionID, 5999, "client cancelled")
	assert.ErrorIs(t, err, ErrConflict)

	_, err = svc.HandleCallback(result.MerchantTransactionID, "")
	require.NoError(t, err)

	res, err := svc.Refund(result.MerchantTransactionID, 5999, "client cancelled")
	require.NoError(t, err)
	assert.Contains(t, res.RefundTransactionID, "REFUND_")

	var p entity.Payment
	require.NoError(t, db.Where("merchant_transaction_id = ?", result.MerchantTransactionID).First(&p).Error)
	assert.Equal(t, entity.TxnRefunded, p.Status)
}
