package controllers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/panchald9/roospark/entity"
	"github.com/panchald9/roospark/pkg/resp"
	"github.com/panchald9/roospark/services"
)

type MenuController struct {
	Service *services.MenuService
}

func NewMenuController(svc *services.MenuService) *MenuController {
	return &MenuController{Service: svc}
}

// GET /api/menu-items
func (ctl *MenuController) List(c *gin.Context) {
	items, err := ctl.Service.List()
	if err != nil {
		writeError(c, err)
		return
	}
	resp.OK(c, items)
}

// GET /api/menu-items/:id
func (ctl *MenuController) Get(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))

	item, err := ctl.Service.Get(uint(id))
	if err != nil {
		writeError(c, err)
		return
	}
	resp.OK(c, item)
}

// POST /api/menu-items (admin)
func (ctl *MenuController) Create(c *gin.Context) {
	var req services.CreateMenuItemReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	item, err := ctl.Service.Create(req)
	if err != nil {
		writeError(c, err)
		return
	}
	resp.Created(c, item)
}

// PUT /api/menu-items/:id (admin) — partial merge
func (ctl *MenuController) Update(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))

	var patch entity.MenuItemPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	item, err := ctl.Service.Update(uint(id), patch)
	if err != nil {
		writeError(c, err)
		return
	}
	resp.OK(c, item)
}

// DELETE /api/menu-items/:id (admin)
func (ctl *MenuController) Delete(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))

	ok, err := ctl.Service.Delete(uint(id))
	if err != nil {
		writeError(c, err)
		return
	}
	if !ok {
		resp.NotFound(c, "menu item not found")
		return
	}
	resp.NoContent(c)
}
