package controllers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/panchald9/roospark/pkg/resp"
	"github.com/panchald9/roospark/services"
)

type BookingController struct {
	Service *services.BookingService
}

func NewBookingController(svc *services.BookingService) *BookingController {
	return &BookingController{Service: svc}
}

// GET /api/bookings (admin)
func (ctl *BookingController) List(c *gin.Context) {
	bookings, err := ctl.Service.List()
	if err != nil {
		writeError(c, err)
		return
	}
	resp.OK(c, bookings)
}

// GET /api/bookings/:id (admin)
func (ctl *BookingController) Get(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))

	booking, err := ctl.Service.Get(uint(id))
	if err != nil {
		writeError(c, err)
		return
	}
	resp.OK(c, booking)
}

// POST /api/bookings (public)
func (ctl *BookingController) Create(c *gin.Context) {
	var req services.CreateBookingReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	booking, err := ctl.Service.Create(req)
	if err != nil {
		writeError(c, err)
		return
	}
	resp.Created(c, booking)
}
