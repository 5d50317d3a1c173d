package services

import (
	"github.com/panchald9/roospark/entity"
	"github.com/panchald9/roospark/repository"
)

type ReviewService struct {
	Store repository.Storage
}

func NewReviewService(store repository.Storage) *ReviewService {
	return &ReviewService{Store: store}
}

type CreateReviewReq struct {
	CustomerName string `json:"customerName" validate:"required"`
	Rating       int    `json:"rating" validate:"required,min=1,max=5"`
	Comment      string `json:"comment" validate:"required"`
}

func (s *ReviewService) List() ([]entity.Review, error) {
	return s.Store.GetReviews()
}

// Create บังคับ rating 1–5 ตรงนี้ — storage ไม่เช็คซ้ำ
func (s *ReviewService) Create(req CreateReviewReq) (*entity.Review, error) {
	if err := validateStruct(req); err != nil {
		return nil, err
	}
	review := &entity.Review{
		CustomerName: req.CustomerName,
		Rating:       req.Rating,
		Comment:      req.Comment,
	}
	if err := s.Store.CreateReview(review); err != nil {
		return nil, err
	}
	return review, nil
}
