package services

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"backend/entity"
	"backend/repository"
)

// VideoReviewService runs the submission/review loop between pilots,
// editors and the admin. Submissions only ever append rows; the admin's
// review decisions are what move the parent booking.
type VideoReviewService struct {
	DB       *gorm.DB
	Reviews  *repository.VideoReviewRepository
	Bookings *repository.BookingRepository
}

func NewVideoReviewService(db *gorm.DB, reviews *repository.VideoReviewRepository, bookings *repository.BookingRepository) *VideoReviewService {
	return &VideoReviewService{DB: db, Reviews: reviews, Bookings: bookings}
}

// SubmitPilotCut records raw footage from the assigned pilot.
func (s *VideoReviewService) SubmitPilotCut(pilotID, bookingID uint, driveLink, comments string) (*entity.VideoReview, error) {
	if driveLink == "" {
		return nil, fmt.Errorf("%w: drive link is required", ErrValidation)
	}
	b, err := s.Bookings.FindByID(bookingID)
	if err != nil {
		return nil, err
	}
	if b.PilotID == nil || *b.PilotID != pilotID {
		return nil, ErrForbidden
	}

	v := &entity.VideoReview{
		OrderID:        bookingID,
		ClientID:       b.UserID,
		PilotID:        &pilotID,
		DriveLink:      driveLink,
		PilotComments:  comments,
		SubmissionType: entity.SubmissionPilot,
		Status:         entity.ReviewSubmitted,
	}
	if err := s.Reviews.Create(v); err != nil {
		return nil, err
	}
	return v, nil
}

// SubmitEditorCut records an edited cut from the assigned editor.
func (s *VideoReviewService) SubmitEditorCut(editorID, bookingID uint, driveLink, comments string) (*entity.VideoReview, error) {
	if driveLink == "" {
		return nil, fmt.Errorf("%w: drive link is required", ErrValidation)
	}
	b, err := s.Bookings.FindByID(bookingID)
	if err != nil {
		return nil, err
	}
	if b.EditorID == nil || *b.EditorID != editorID {
		return nil, ErrForbidden
	}

	v := &entity.VideoReview{
		OrderID:        bookingID,
		ClientID:       b.UserID,
		PilotID:        b.PilotID,
		EditorID:       &editorID,
		DriveLink:      driveLink,
		EditorComments: comments,
		SubmissionType: entity.SubmissionEditor,
		Status:         entity.ReviewSubmitted,
	}
	if err := s.Reviews.Create(v); err != nil {
		return nil, err
	}
	return v, nil
}

func (s *VideoReviewService) ListForRole(role string, accountID uint) ([]entity.VideoReview, error) {
	switch role {
	case "admin":
		return s.Reviews.ListAll()
	case "pilot":
		return s.Reviews.ListForPilot(accountID)
	case "editor":
		return s.Reviews.ListForEditor(accountID)
	default:
		return nil, ErrForbidden
	}
}

func (s *VideoReviewService) ListForOrder(orderID uint) ([]entity.VideoReview, error) {
	return s.Reviews.ListForOrder(orderID)
}

type AdminReviewUpdate struct {
	Status        string `json:"status"`
	AdminComments string `json:"adminComments"`
	EditorID      *uint  `json:"editorId"`
}

func (s *VideoReviewService) Get(reviewID uint) (*entity.VideoReview, error) {
	return s.Reviews.FindByID(reviewID)
}

// AdminUpdate applies the review decision and its booking side effects:
// forwarding a pilot cut moves the booking into editing, completing or
// approving an editor cut finishes the booking and sets the delivery link.
// Approval deliberately surfaces the newest approved cut's link, which may
// be an older row than the one just updated.
func (s *VideoReviewService) AdminUpdate(reviewID uint, in AdminReviewUpdate) error {
	v, err := s.Reviews.FindByID(reviewID)
	if err != nil {
		return err
	}

	return s.DB.Transaction(func(tx *gorm.DB) error {
		updates := map[string]any{}
		if in.Status != "" {
			updates["status"] = in.Status
		}
		if in.AdminComments != "" {
			updates["admin_comments"] = in.AdminComments
		}
		if in.EditorID != nil {
			updates["editor_id"] = *in.EditorID
		}
		if len(updates) > 0 {
			if err := tx.Model(&entity.VideoReview{}).Where("id = ?", v.ID).Updates(updates).Error; err != nil {
				return err
			}
		}

		switch {
		case in.Status == entity.ReviewForwardedToEditor && v.SubmissionType == entity.SubmissionPilot:
			bookingUpdates := map[string]any{"status": entity.BookingEditing}
			if in.EditorID != nil {
				bookingUpdates["editor_id"] = *in.EditorID
			}
			return tx.Model(&entity.Booking{}).Where("id = ?", v.OrderID).Updates(bookingUpdates).Error

		case in.Status == entity.ReviewCompleted && v.SubmissionType == entity.SubmissionEditor:
			return tx.Model(&entity.Booking{}).Where("id = ?", v.OrderID).Updates(map[string]any{
				"status":              entity.BookingCompleted,
				"delivery_video_link": v.DriveLink,
			}).Error

		case in.Status == entity.ReviewApproved && v.SubmissionType == entity.SubmissionEditor:
			// deliver the newest approved cut for this editor, which may be
			// an older row than the one just approved
			link := v.DriveLink
			if v.EditorID != nil {
				var latest entity.VideoReview
				err := tx.
					Where("order_id = ? AND editor_id = ? AND submission_type = ? AND status = ?",
						v.OrderID, *v.EditorID, entity.SubmissionEditor, entity.ReviewApproved).
					Order("submitted_date DESC").
					First(&latest).Error
				switch {
				case err == nil:
					link = latest.DriveLink
				case !errors.Is(err, gorm.ErrRecordNotFound):
					return err
				}
			}
			return tx.Model(&entity.Booking{}).Where("id = ?", v.OrderID).Updates(map[string]any{
				"status":              entity.BookingCompleted,
				"delivery_video_link": link,
			}).Error
		}

		return nil
	})
}
