package services

import (
	"github.com/panchald9/roospark/entity"
	"github.com/panchald9/roospark/repository"
)

type BookingService struct {
	Store repository.Storage
}

func NewBookingService(store repository.Storage) *BookingService {
	return &BookingService{Store: store}
}

type CreateBookingReq struct {
	GuestName       string  `json:"guestName" validate:"required"`
	GuestEmail      string  `json:"guestEmail" validate:"required,email"`
	GuestPhone      string  `json:"guestPhone" validate:"required"`
	GuestCount      int     `json:"guestCount" validate:"required,gte=1"`
	BookingDate     string  `json:"bookingDate" validate:"required"`
	BookingTime     string  `json:"bookingTime" validate:"required"`
	SpecialRequests *string `json:"specialRequests"`
}

func (s *BookingService) List() ([]entity.Booking, error) {
	return s.Store.GetBookings()
}

func (s *BookingService) Get(id uint) (*entity.Booking, error) {
	return s.Store.GetBooking(id)
}

// Create ไม่กันการจองซ้อน — นโยบายเดิมของร้าน รับทุกการจองไว้ก่อน
func (s *BookingService) Create(req CreateBookingReq) (*entity.Booking, error) {
	if err := validateStruct(req); err != nil {
		return nil, err
	}
	booking := &entity.Booking{
		GuestName:       req.GuestName,
		GuestEmail:      req.GuestEmail,
		GuestPhone:      req.GuestPhone,
		GuestCount:      req.GuestCount,
		BookingDate:     req.BookingDate,
		BookingTime:     req.BookingTime,
		SpecialRequests: req.SpecialRequests,
	}
	if err := s.Store.CreateBooking(booking); err != nil {
		return nil, err
	}
	return booking, nil
}
