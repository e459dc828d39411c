package controllers

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"

	"backend/pkg/resp"
	"backend/services"
	"backend/utils"
)

type BookingController struct {
	Bookings *services.BookingService
}

func NewBookingController(bookings *services.BookingService) *BookingController {
	return &BookingController{Bookings: bookings}
}

func bookingID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		resp.BadRequest(c, "invalid booking id")
		return 0, false
	}
	return uint(id), true
}

// POST /api/bookings
func (b *BookingController) Create(c *gin.Context) {
	var req services.CreateBookingInput
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	booking, err := b.Bookings.Create(utils.CurrentUserID(c), req)
	if err != nil {
		fail(c, err)
		return
	}
	resp.Created(c, gin.H{"booking": booking, "reference": booking.Reference()})
}

// GET /api/bookings — role-scoped listing.
func (b *BookingController) List(c *gin.Context) {
	bookings, err := b.Bookings.List(utils.CurrentRole(c), utils.CurrentUserID(c))
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, bookings)
}

// GET /api/bookings/:id
func (b *BookingController) Get(c *gin.Context) {
	id, ok := bookingID(c)
	if !ok {
		return
	}
	booking, err := b.Bookings.Get(utils.CurrentRole(c), utils.CurrentUserID(c), id)
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, gin.H{"booking": booking, "reference": booking.Reference()})
}

// PUT /api/bookings/:id — out-of-scope fields are dropped per role.
func (b *BookingController) Update(c *gin.Context) {
	id, ok := bookingID(c)
	if !ok {
		return
	}
	var fields map[string]any
	if err := c.ShouldBindJSON(&fields); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	if err := b.Bookings.Update(utils.CurrentRole(c), utils.CurrentUserID(c), id, fields); err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, gin.H{"message": "booking updated"})
}

// POST /api/bookings/:id/claim
func (b *BookingController) Claim(c *gin.Context) {
	id, ok := bookingID(c)
	if !ok {
		return
	}
	if err := b.Bookings.Claim(utils.CurrentUserID(c), id); err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, gin.H{"message": "booking claimed"})
}

// POST /api/bookings/:id/start
func (b *BookingController) Start(c *gin.Context) {
	id, ok := bookingID(c)
	if !ok {
		return
	}
	if err := b.Bookings.Start(utils.CurrentUserID(c), id); err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, gin.H{"message": "booking started"})
}

type CompleteRequest struct {
	DriveLink string `json:"driveLink" binding:"required"`
}

// POST /api/bookings/:id/complete
func (b *BookingController) Complete(c *gin.Context) {
	id, ok := bookingID(c)
	if !ok {
		return
	}
	var req CompleteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	if err := b.Bookings.Complete(utils.CurrentUserID(c), id, req.DriveLink); err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, gin.H{"message": "booking completed"})
}

type RecordPaymentRequest struct {
	Amount float64 `json:"amount" binding:"required"`
}

// POST /api/bookings/:id/payment
func (b *BookingController) RecordPayment(c *gin.Context) {
	id, ok := bookingID(c)
	if !ok {
		return
	}
	var req RecordPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	if err := b.Bookings.RecordPayment(utils.CurrentUserID(c), id, req.Amount); err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, gin.H{"message": "payment recorded"})
}

type CostPreviewRequest struct {
	PropertyType string  `json:"propertyType" binding:"required"`
	AreaSize     float64 `json:"areaSize" binding:"required"`
	NumFloors    int     `json:"numFloors"`
}

// POST /api/cost/preview
func (b *BookingController) CostPreview(c *gin.Context) {
	var req CostPreviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	base, final, err := b.Bookings.CostPreview(req.PropertyType, req.AreaSize, req.NumFloors)
	if err != nil {
		// out-of-table requests still answer 200, with the reason in
		// customQuote instead of a price
		if errors.Is(err, services.ErrCustomQuote) || errors.Is(err, services.ErrInvalidCategory) {
			resp.OK(c, gin.H{"baseCost": nil, "finalCost": nil, "customQuote": err.Error()})
			return
		}
		fail(c, err)
		return
	}
	resp.OK(c, gin.H{"baseCost": base, "finalCost": final, "customQuote": nil})
}
