package controllers

import (
	"github.com/gin-gonic/gin"

	"backend/pkg/resp"
	"backend/services"
	"backend/utils"
)

type AuthController struct {
	Auth     *services.AuthService
	Bookings *services.BookingService
}

func NewAuthController(auth *services.AuthService, bookings *services.BookingService) *AuthController {
	return &AuthController{Auth: auth, Bookings: bookings}
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// POST /api/auth/login
func (a *AuthController) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	result, err := a.Auth.Login(req.Email, req.Password)
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, result)
}

// GET /api/auth/verify — the middleware already re-fetched the account, so
// reaching here means the token and account are both live.
func (a *AuthController) Verify(c *gin.Context) {
	account, err := a.Auth.Verify(utils.CurrentUserID(c), utils.CurrentRole(c))
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, gin.H{"role": utils.CurrentRole(c), "account": account})
}

// GET /api/auth/profile
func (a *AuthController) Profile(c *gin.Context) {
	account, err := a.Auth.Verify(utils.CurrentUserID(c), utils.CurrentRole(c))
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, account)
}

type ChangePasswordRequest struct {
	CurrentPassword string `json:"currentPassword" binding:"required"`
	NewPassword     string `json:"newPassword" binding:"required"`
}

// POST /api/auth/change-password
func (a *AuthController) ChangePassword(c *gin.Context) {
	var req ChangePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	if err := a.Auth.ChangePassword(utils.CurrentUserID(c), utils.CurrentRole(c), req.CurrentPassword, req.NewPassword); err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, gin.H{"message": "password changed"})
}

// DELETE /api/clients/account — refused while the account has active bookings.
func (a *AuthController) DeleteAccount(c *gin.Context) {
	if err := a.Bookings.DeleteAccount(utils.CurrentRole(c), utils.CurrentUserID(c)); err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, gin.H{"message": "account deleted"})
}
