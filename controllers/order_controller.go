package controllers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/panchald9/roospark/pkg/resp"
	"github.com/panchald9/roospark/services"
)

type OrderController struct {
	Service *services.OrderService
}

func NewOrderController(svc *services.OrderService) *OrderController {
	return &OrderController{Service: svc}
}

// GET /api/orders (admin)
func (ctl *OrderController) List(c *gin.Context) {
	orders, err := ctl.Service.List()
	if err != nil {
		writeError(c, err)
		return
	}
	resp.OK(c, orders)
}

// GET /api/orders/:id (admin)
func (ctl *OrderController) Get(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))

	order, err := ctl.Service.Get(uint(id))
	if err != nil {
		writeError(c, err)
		return
	}
	resp.OK(c, order)
}

// POST /api/orders (public)
func (ctl *OrderController) Create(c *gin.Context) {
	var req services.CreateOrderReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	order, err := ctl.Service.Create(req)
	if err != nil {
		writeError(c, err)
		return
	}
	resp.Created(c, order)
}

// PATCH /api/orders/:id/status (admin)
func (ctl *OrderController) UpdateStatus(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))

	var req services.UpdateOrderStatusReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	order, err := ctl.Service.UpdateStatus(uint(id), req)
	if err != nil {
		writeError(c, err)
		return
	}
	resp.OK(c, order)
}
