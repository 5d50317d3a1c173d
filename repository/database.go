package repository

import (
	"errors"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/panchald9/roospark/entity"
)

// DatabaseStorage ใช้ GORM — หนึ่ง statement ต่อหนึ่ง method
// ไม่มี transaction คร่อมหลาย statement, ไม่ retry
// uniqueness ของ username พึ่ง unique index ในตาราง
type DatabaseStorage struct {
	DB  *gorm.DB
	log *zap.Logger
}

func NewDatabaseStorage(db *gorm.DB, log *zap.Logger) *DatabaseStorage {
	return &DatabaseStorage{DB: db, log: log}
}

// translate แปลง error ของ gorm เป็น error กลางของ contract
// แล้วค่อยส่งต่อ — ชั้นนี้ log อย่างเดียว ไม่กลืน error
func (s *DatabaseStorage) translate(op string, err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return ErrUsernameTaken
	}
	s.log.Error("storage query failed", zap.String("op", op), zap.Error(err))
	return err
}

// ---------- Users ----------

func (s *DatabaseStorage) GetUser(id uint) (*entity.User, error) {
	var u entity.User
	if err := s.DB.First(&u, id).Error; err != nil {
		return nil, s.translate("get_user", err)
	}
	return &u, nil
}

func (s *DatabaseStorage) GetUserByUsername(username string) (*entity.User, error) {
	var u entity.User
	if err := s.DB.Where("username = ?", username).First(&u).Error; err != nil {
		return nil, s.translate("get_user_by_username", err)
	}
	return &u, nil
}

func (s *DatabaseStorage) CreateUser(user *entity.User) error {
	return s.translate("create_user", s.DB.Create(user).Error)
}

// ---------- Admin users ----------

func (s *DatabaseStorage) GetAdminUser(id uint) (*entity.AdminUser, error) {
	var a entity.AdminUser
	if err := s.DB.First(&a, id).Error; err != nil {
		return nil, s.translate("get_admin_user", err)
	}
	return &a, nil
}

func (s *DatabaseStorage) GetAdminUserByUsername(username string) (*entity.AdminUser, error) {
	var a entity.AdminUser
	if err := s.DB.Where("username = ?", username).First(&a).Error; err != nil {
		return nil, s.translate("get_admin_user_by_username", err)
	}
	return &a, nil
}

func (s *DatabaseStorage) CreateAdminUser(admin *entity.AdminUser) error {
	if admin.Role == "" {
		admin.Role = "admin"
	}
	admin.CreatedAt = time.Now()
	return s.translate("create_admin_user", s.DB.Create(admin).Error)
}

// ---------- Menu items ----------

func (s *DatabaseStorage) GetMenuItems() ([]entity.MenuItem, error) {
	var items []entity.MenuItem
	err := s.DB.Where("available = ?", true).Order("id").Find(&items).Error
	if err != nil {
		return nil, s.translate("get_menu_items", err)
	}
	return items, nil
}

func (s *DatabaseStorage) GetMenuItem(id uint) (*entity.MenuItem, error) {
	var it entity.MenuItem
	if err := s.DB.First(&it, id).Error; err != nil {
		return nil, s.translate("get_menu_item", err)
	}
	return &it, nil
}

func (s *DatabaseStorage) CreateMenuItem(item *entity.MenuItem) error {
	item.Available = true
	return s.translate("create_menu_item", s.DB.Create(item).Error)
}

func (s *DatabaseStorage) UpdateMenuItem(id uint, patch entity.MenuItemPatch) (*entity.MenuItem, error) {
	var it entity.MenuItem
	if err := s.DB.First(&it, id).Error; err != nil {
		return nil, s.translate("update_menu_item", err)
	}
	applyMenuItemPatch(&it, patch)
	if err := s.DB.Save(&it).Error; err != nil {
		return nil, s.translate("update_menu_item", err)
	}
	return &it, nil
}

func (s *DatabaseStorage) DeleteMenuItem(id uint) (bool, error) {
	res := s.DB.Delete(&entity.MenuItem{}, id)
	if res.Error != nil {
		return false, s.translate("delete_menu_item", res.Error)
	}
	return res.RowsAffected > 0, nil
}

// ---------- Bookings ----------

func (s *DatabaseStorage) GetBookings() ([]entity.Booking, error) {
	var bookings []entity.Booking
	if err := s.DB.Order("id").Find(&bookings).Error; err != nil {
		return nil, s.translate("get_bookings", err)
	}
	return bookings, nil
}

func (s *DatabaseStorage) GetBooking(id uint) (*entity.Booking, error) {
	var b entity.Booking
	if err := s.DB.First(&b, id).Error; err != nil {
		return nil, s.translate("get_booking", err)
	}
	return &b, nil
}

func (s *DatabaseStorage) CreateBooking(booking *entity.Booking) error {
	booking.CreatedAt = time.Now()
	return s.translate("create_booking", s.DB.Create(booking).Error)
}

// ---------- Reviews ----------

func (s *DatabaseStorage) GetReviews() ([]entity.Review, error) {
	var reviews []entity.Review
	if err := s.DB.Order("id").Find(&reviews).Error; err != nil {
		return nil, s.translate("get_reviews", err)
	}
	return reviews, nil
}

func (s *DatabaseStorage) CreateReview(review *entity.Review) error {
	review.CreatedAt = time.Now()
	return s.translate("create_review", s.DB.Create(review).Error)
}

// ---------- Orders ----------

func (s *DatabaseStorage) GetOrders() ([]entity.Order, error) {
	var orders []entity.Order
	if err := s.DB.Order("id").Find(&orders).Error; err != nil {
		return nil, s.translate("get_orders", err)
	}
	return orders, nil
}

func (s *DatabaseStorage) GetOrder(id uint) (*entity.Order, error) {
	var o entity.Order
	if err := s.DB.First(&o, id).Error; err != nil {
		return nil, s.translate("get_order", err)
	}
	return &o, nil
}

func (s *DatabaseStorage) CreateOrder(order *entity.Order) error {
	order.Status = entity.OrderStatusPending
	order.CreatedAt = time.Now()
	return s.translate("create_order", s.DB.Create(order).Error)
}

func (s *DatabaseStorage) UpdateOrderStatus(id uint, status string) (*entity.Order, error) {
	res := s.DB.Model(&entity.Order{}).Where("id = ?", id).Update("status", status)
	if res.Error != nil {
		return nil, s.translate("update_order_status", res.Error)
	}
	if res.RowsAffected == 0 {
		return nil, ErrNotFound
	}
	return s.GetOrder(id)
}
