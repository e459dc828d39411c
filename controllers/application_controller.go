package controllers

import (
	"io"
	"strconv"

	"github.com/gin-gonic/gin"

	"backend/entity"
	"backend/pkg/resp"
	"backend/services"
)

type ApplicationController struct {
	Apps *services.ApplicationService
}

func NewApplicationController(apps *services.ApplicationService) *ApplicationController {
	return &ApplicationController{Apps: apps}
}

// register handles the public signup for one kind; the body is passed
// through as-is so each kind can carry its own field set.
func (a *ApplicationController) register(kind string) gin.HandlerFunc {
	return func(c *gin.Context) {
		raw, err := io.ReadAll(c.Request.Body)
		if err != nil {
			resp.BadRequest(c, "cannot read body")
			return
		}
		app, err := a.Apps.Submit(kind, raw)
		if err != nil {
			fail(c, err)
			return
		}
		resp.Created(c, gin.H{
			"id":      app.ID,
			"status":  app.Status,
			"message": "application submitted, pending admin approval",
		})
	}
}

// POST /api/pilots/register
func (a *ApplicationController) RegisterPilot(c *gin.Context) { a.register(entity.KindPilot)(c) }

// POST /api/editors/register
func (a *ApplicationController) RegisterEditor(c *gin.Context) { a.register(entity.KindEditor)(c) }

// POST /api/referrals/register
func (a *ApplicationController) RegisterReferral(c *gin.Context) { a.register(entity.KindReferral)(c) }

// POST /api/auth/register
func (a *ApplicationController) RegisterBusinessClient(c *gin.Context) {
	a.register(entity.KindBusinessClient)(c)
}

// GET /api/admin/applications?kind=&status=
func (a *ApplicationController) List(c *gin.Context) {
	apps, err := a.Apps.List(c.Query("kind"), c.Query("status"))
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, apps)
}

// GET /api/admin/applications/:kind
func (a *ApplicationController) ListByKind(c *gin.Context) {
	apps, err := a.Apps.List(c.Param("kind"), c.Query("status"))
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, apps)
}

type ReviewApplicationRequest struct {
	Comments string `json:"comments"`
}

// POST /api/admin/applications/:kind/:id/approve
func (a *ApplicationController) Approve(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		resp.BadRequest(c, "invalid id")
		return
	}
	var req ReviewApplicationRequest
	_ = c.ShouldBindJSON(&req)

	if err := a.Apps.Approve(uint(id), req.Comments); err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, gin.H{"message": "application approved"})
}

// POST /api/admin/applications/:kind/:id/reject
func (a *ApplicationController) Reject(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		resp.BadRequest(c, "invalid id")
		return
	}
	var req ReviewApplicationRequest
	_ = c.ShouldBindJSON(&req)

	if err := a.Apps.Reject(uint(id), req.Comments); err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, gin.H{"message": "application rejected"})
}
