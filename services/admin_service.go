package services

import (
	"time"

	"github.com/panchald9/roospark/entity"
	"github.com/panchald9/roospark/repository"
)

type AdminService struct {
	Store repository.Storage
}

func NewAdminService(store repository.Storage) *AdminService {
	return &AdminService{Store: store}
}

// Stats ตัวเลขหน้า dashboard — นับจากผล list-all ไม่ใช่หน้าที่ของ storage
type Stats struct {
	TotalMenuItems int     `json:"totalMenuItems"`
	VegItems       int     `json:"vegItems"`
	NonVegItems    int     `json:"nonVegItems"`
	TotalBookings  int     `json:"totalBookings"`
	RecentBookings int     `json:"recentBookings"`
	TotalOrders    int     `json:"totalOrders"`
	PendingOrders  int     `json:"pendingOrders"`
	AverageRating  float64 `json:"averageRating"`
}

// recentBookings = การจองที่สร้างภายใน 7 วันล่าสุด
const recentBookingWindow = 7 * 24 * time.Hour

func (s *AdminService) Stats() (*Stats, error) {
	items, err := s.Store.GetMenuItems()
	if err != nil {
		return nil, err
	}
	bookings, err := s.Store.GetBookings()
	if err != nil {
		return nil, err
	}
	orders, err := s.Store.GetOrders()
	if err != nil {
		return nil, err
	}
	reviews, err := s.Store.GetReviews()
	if err != nil {
		return nil, err
	}

	st := &Stats{
		TotalMenuItems: len(items),
		TotalBookings:  len(bookings),
		TotalOrders:    len(orders),
	}
	for _, it := range items {
		if it.Diet == "veg" {
			st.VegItems++
		} else {
			st.NonVegItems++
		}
	}
	cutoff := time.Now().Add(-recentBookingWindow)
	for _, b := range bookings {
		if b.CreatedAt.After(cutoff) {
			st.RecentBookings++
		}
	}
	for _, o := range orders {
		if o.Status == entity.OrderStatusPending {
			st.PendingOrders++
		}
	}
	if len(reviews) > 0 {
		var sum int
		for _, r := range reviews {
			sum += r.Rating
		}
		st.AverageRating = float64(sum) / float64(len(reviews))
	}
	return st, nil
}
