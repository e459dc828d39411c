package controllers

import (
	"github.com/gin-gonic/gin"

	"backend/pkg/resp"
	"backend/repository"
	"backend/services"
)

// AdminController groups the admin-only directory and order endpoints.
type AdminController struct {
	Bookings  *services.BookingService
	Pilots    *repository.PilotRepository
	Editors   *repository.EditorRepository
	Referrals *repository.ReferralRepository
	Business  *repository.BusinessClientRepository
}

func NewAdminController(bookings *services.BookingService, pilots *repository.PilotRepository, editors *repository.EditorRepository, referrals *repository.ReferralRepository, business *repository.BusinessClientRepository) *AdminController {
	return &AdminController{
		Bookings:  bookings,
		Pilots:    pilots,
		Editors:   editors,
		Referrals: referrals,
		Business:  business,
	}
}

// POST /api/admin/orders — pre-assigned order, skips the claim step.
func (a *AdminController) CreateOrder(c *gin.Context) {
	var req services.CreateAdminOrderInput
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	booking, err := a.Bookings.CreateAdminOrder(req)
	if err != nil {
		fail(c, err)
		return
	}
	resp.Created(c, gin.H{"booking": booking, "reference": booking.Reference()})
}

type CancelBookingRequest struct {
	BookingID    uint    `json:"bookingId" binding:"required"`
	Reason       string  `json:"reason"`
	RefundAmount float64 `json:"refundAmount"`
}

// POST /api/admin/cancellations
func (a *AdminController) CancelBooking(c *gin.Context) {
	var req CancelBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	if err := a.Bookings.Cancel(req.BookingID, req.Reason, req.RefundAmount); err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, gin.H{"message": "booking cancelled"})
}

// GET /api/admin/cancellations
func (a *AdminController) ListCancellations(c *gin.Context) {
	cancellations, err := a.Bookings.ListCancellations()
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, cancellations)
}

// GET /api/admin/pilots
func (a *AdminController) ListPilots(c *gin.Context) {
	pilots, err := a.Pilots.List()
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, pilots)
}

// GET /api/admin/editors
func (a *AdminController) ListEditors(c *gin.Context) {
	editors, err := a.Editors.List()
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, editors)
}

// GET /api/admin/referrals
func (a *AdminController) ListReferrals(c *gin.Context) {
	referrals, err := a.Referrals.List()
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, referrals)
}

// GET /api/admin/business-clients
func (a *AdminController) ListBusinessClients(c *gin.Context) {
	clients, err := a.Business.List()
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, clients)
}
