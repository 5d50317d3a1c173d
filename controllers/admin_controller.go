package controllers

import (
	"github.com/gin-gonic/gin"

	"github.com/panchald9/roospark/pkg/resp"
	"github.com/panchald9/roospark/services"
)

type AdminController struct {
	Service *services.AdminService
}

func NewAdminController(svc *services.AdminService) *AdminController {
	return &AdminController{Service: svc}
}

// GET /api/admin/stats (admin)
func (ac *AdminController) Stats(c *gin.Context) {
	stats, err := ac.Service.Stats()
	if err != nil {
		writeError(c, err)
		return
	}
	resp.OK(c, stats)
}
