package controllers

import (
	"github.com/gin-gonic/gin"

	"github.com/panchald9/roospark/pkg/resp"
	"github.com/panchald9/roospark/services"
	"github.com/panchald9/roospark/utils"
)

type AuthController struct {
	Service *services.AuthService
}

func NewAuthController(svc *services.AuthService) *AuthController {
	return &AuthController{Service: svc}
}

// POST /api/admin/login
func (ctl *AuthController) Login(c *gin.Context) {
	var req services.LoginReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	token, admin, err := ctl.Service.Login(req)
	if err != nil {
		writeError(c, err)
		return
	}
	resp.OK(c, gin.H{"token": token, "user": admin})
}

// POST /api/admin/logout — token เป็น stateless ฝั่ง client ทิ้งเอง
func (ctl *AuthController) Logout(c *gin.Context) {
	resp.OK(c, gin.H{"message": "logged out"})
}

// GET /api/admin/me (admin)
func (ctl *AuthController) Me(c *gin.Context) {
	adminID := utils.CurrentAdminID(c)
	admin, err := ctl.Service.Me(adminID)
	if err != nil {
		writeError(c, err)
		return
	}
	resp.OK(c, admin)
}
