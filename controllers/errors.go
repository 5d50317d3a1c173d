package controllers

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/panchald9/roospark/pkg/resp"
	"github.com/panchald9/roospark/repository"
	"github.com/panchald9/roospark/services"
)

// writeError แปลง error จากชั้นล่างเป็น HTTP response —
// storage ไม่ log ไม่กลืน ทุกอย่างถูกตัดสินใจที่นี่
func writeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, repository.ErrNotFound):
		resp.NotFound(c, "not found")
	case errors.Is(err, repository.ErrUsernameTaken):
		resp.Conflict(c, "username already taken")
	case errors.Is(err, services.ErrValidation):
		resp.BadRequest(c, err.Error())
	case errors.Is(err, services.ErrInvalidCredentials):
		resp.Unauthorized(c, "invalid credentials")
	default:
		resp.ServerError(c, err)
	}
}
