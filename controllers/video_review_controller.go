package controllers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"backend/pkg/resp"
	"backend/services"
	"backend/utils"
)

type VideoReviewController struct {
	Reviews *services.VideoReviewService
}

func NewVideoReviewController(reviews *services.VideoReviewService) *VideoReviewController {
	return &VideoReviewController{Reviews: reviews}
}

type SubmitVideoRequest struct {
	BookingID uint   `json:"bookingId" binding:"required"`
	DriveLink string `json:"driveLink" binding:"required"`
	Comments  string `json:"comments"`
}

// POST /api/pilot/video-submissions
func (v *VideoReviewController) SubmitPilotCut(c *gin.Context) {
	var req SubmitVideoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	review, err := v.Reviews.SubmitPilotCut(utils.CurrentUserID(c), req.BookingID, req.DriveLink, req.Comments)
	if err != nil {
		fail(c, err)
		return
	}
	resp.Created(c, review)
}

// POST /api/editor/video-submissions
func (v *VideoReviewController) SubmitEditorCut(c *gin.Context) {
	var req SubmitVideoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	review, err := v.Reviews.SubmitEditorCut(utils.CurrentUserID(c), req.BookingID, req.DriveLink, req.Comments)
	if err != nil {
		fail(c, err)
		return
	}
	resp.Created(c, review)
}

// GET /api/video-submissions — submission history for the caller's role.
func (v *VideoReviewController) List(c *gin.Context) {
	reviews, err := v.Reviews.ListForRole(utils.CurrentRole(c), utils.CurrentUserID(c))
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, reviews)
}

// GET /api/admin/video-reviews/:id
func (v *VideoReviewController) Get(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		resp.BadRequest(c, "invalid review id")
		return
	}
	review, err := v.Reviews.Get(uint(id))
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, review)
}

// GET /api/admin/video-reviews/order/:id
func (v *VideoReviewController) ListForOrder(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		resp.BadRequest(c, "invalid order id")
		return
	}
	reviews, err := v.Reviews.ListForOrder(uint(id))
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, reviews)
}

// PUT /api/admin/video-reviews/:id — review decision plus booking side
// effects.
func (v *VideoReviewController) AdminUpdate(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		resp.BadRequest(c, "invalid review id")
		return
	}
	var req services.AdminReviewUpdate
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	if err := v.Reviews.AdminUpdate(uint(id), req); err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, gin.H{"message": "review updated"})
}
