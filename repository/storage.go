package repository

import (
	"errors"

	"github.com/panchald9/roospark/entity"
)

var (
	// ErrNotFound คืนจาก lookup/update/delete ที่หา id ไม่เจอ
	ErrNotFound = errors.New("record not found")

	// ErrUsernameTaken username ซ้ำ (บังคับเหมือนกันทั้งสอง variant)
	ErrUsernameTaken = errors.New("username already taken")
)

// Storage คือ contract กลางของชั้นเก็บข้อมูล มีสอง implementation:
// MemStorage (map ในหน่วยความจำ + seed) และ DatabaseStorage (GORM)
// เลือกตอน start ผ่าน config — สองตัวต้องให้พฤติกรรมเหมือนกันทุกข้อ
type Storage interface {
	// Users
	GetUser(id uint) (*entity.User, error)
	GetUserByUsername(username string) (*entity.User, error)
	CreateUser(user *entity.User) error

	// Admin users
	GetAdminUser(id uint) (*entity.AdminUser, error)
	GetAdminUserByUsername(username string) (*entity.AdminUser, error)
	CreateAdminUser(admin *entity.AdminUser) error

	// Menu items
	GetMenuItems() ([]entity.MenuItem, error) // เฉพาะ available = true
	GetMenuItem(id uint) (*entity.MenuItem, error)
	CreateMenuItem(item *entity.MenuItem) error
	UpdateMenuItem(id uint, patch entity.MenuItemPatch) (*entity.MenuItem, error)
	DeleteMenuItem(id uint) (bool, error)

	// Bookings
	GetBookings() ([]entity.Booking, error)
	GetBooking(id uint) (*entity.Booking, error)
	CreateBooking(booking *entity.Booking) error

	// Reviews
	GetReviews() ([]entity.Review, error)
	CreateReview(review *entity.Review) error

	// Orders
	GetOrders() ([]entity.Order, error)
	GetOrder(id uint) (*entity.Order, error)
	CreateOrder(order *entity.Order) error
	UpdateOrderStatus(id uint, status string) (*entity.Order, error)
}
