package services

import (
	"fmt"
	"time"

	"backend/entity"
)

// ----- Pilot actions -----

// Claim races on the status guard; exactly one concurrent caller sees a
// nonzero affected count.
func (s *BookingService) Claim(pilotID, bookingID uint) error {
	if _, err := s.Repo.FindByID(bookingID); err != nil {
		return err
	}
	affected, err := s.Repo.Claim(bookingID, pilotID)
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrConflict
	}
	return nil
}

func (s *BookingService) Start(pilotID, bookingID uint) error {
	b, err := s.Repo.FindByID(bookingID)
	if err != nil {
		return err
	}
	if b.PilotID == nil || *b.PilotID != pilotID {
		return ErrForbidden
	}
	affected, err := s.Repo.UpdateStatusGuard(bookingID, entity.BookingAssigned, entity.BookingInProgress, nil)
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrConflict
	}
	return nil
}

// Complete requires the deliverable link up front.
func (s *BookingService) Complete(pilotID, bookingID uint, driveLink string) error {
	if driveLink == "" {
		return fmt.Errorf("%w: drive link is required", ErrValidation)
	}
	b, err := s.Repo.FindByID(bookingID)
	if err != nil {
		return err
	}
	if b.PilotID == nil || *b.PilotID != pilotID {
		return ErrForbidden
	}
	now := time.Now()
	affected, err := s.Repo.UpdateStatusGuard(bookingID, entity.BookingInProgress, entity.BookingCompleted, map[string]any{
		"drive_link":     driveLink,
		"completed_date": &now,
	})
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrConflict
	}
	return nil
}

// ----- Client actions -----

// RecordPayment marks a completed booking paid out of band (offline or
// manual settlement); the gateway flow lives in PaymentService.
func (s *BookingService) RecordPayment(userID, bookingID uint, amount float64) error {
	b, err := s.Repo.FindByID(bookingID)
	if err != nil {
		return err
	}
	if b.UserID == nil || *b.UserID != userID {
		return ErrForbidden
	}
	if b.Status != entity.BookingCompleted {
		return ErrConflict
	}
	now := time.Now()
	return s.Repo.Update(bookingID, map[string]any{
		"payment_status": entity.PaymentPaid,
		"payment_amount": amount,
		"payment_date":   &now,
	})
}
