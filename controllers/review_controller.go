package controllers

import (
	"github.com/gin-gonic/gin"

	"github.com/panchald9/roospark/pkg/resp"
	"github.com/panchald9/roospark/services"
)

type ReviewController struct {
	Service *services.ReviewService
}

func NewReviewController(svc *services.ReviewService) *ReviewController {
	return &ReviewController{Service: svc}
}

// GET /api/reviews (public)
func (ctl *ReviewController) List(c *gin.Context) {
	reviews, err := ctl.Service.List()
	if err != nil {
		writeError(c, err)
		return
	}
	resp.OK(c, reviews)
}

// POST /api/reviews (public)
func (ctl *ReviewController) Create(c *gin.Context) {
	var req services.CreateReviewReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	review, err := ctl.Service.Create(req)
	if err != nil {
		writeError(c, err)
		return
	}
	resp.Created(c, review)
}
