package repository

import (
	"sort"
	"sync"
	"time"

	"github.com/panchald9/roospark/entity"
)

// MemStorage เก็บทุกอย่างใน map ต่อ entity หายหมดเมื่อ process restart
// counter แยกต่อ entity เริ่มที่ 1 และไม่ reuse id ที่ถูกลบ
type MemStorage struct {
	mu sync.RWMutex

	users      map[uint]entity.User
	adminUsers map[uint]entity.AdminUser
	menuItems  map[uint]entity.MenuItem
	bookings   map[uint]entity.Booking
	reviews    map[uint]entity.Review
	orders     map[uint]entity.Order

	nextUserID      uint
	nextAdminUserID uint
	nextMenuItemID  uint
	nextBookingID   uint
	nextReviewID    uint
	nextOrderID     uint
}

// NewMemStorage สร้าง store พร้อม seed data (admin 1, เมนู 10, รีวิว 3)
// seed เสร็จก่อน return — store พร้อมใช้ทันที
func NewMemStorage() (*MemStorage, error) {
	m := &MemStorage{
		users:           make(map[uint]entity.User),
		adminUsers:      make(map[uint]entity.AdminUser),
		menuItems:       make(map[uint]entity.MenuItem),
		bookings:        make(map[uint]entity.Booking),
		reviews:         make(map[uint]entity.Review),
		orders:          make(map[uint]entity.Order),
		nextUserID:      1,
		nextAdminUserID: 1,
		nextMenuItemID:  1,
		nextBookingID:   1,
		nextReviewID:    1,
		nextOrderID:     1,
	}
	if err := Seed(m); err != nil {
		return nil, err
	}
	return m, nil
}

// ---------- Users ----------

func (m *MemStorage) GetUser(id uint) (*entity.User, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	u, ok := m.users[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &u, nil
}

func (m *MemStorage) GetUserByUsername(username string) (*entity.User, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	for _, u := range m.users {
		if u.Username == username {
			u := u
			return &u, nil
		}
	}
	return nil, ErrNotFound
}

func (m *MemStorage) CreateUser(user *entity.User) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, u := range m.users {
		if u.Username == user.Username {
			return ErrUsernameTaken
		}
	}
	user.ID = m.nextUserID
	m.nextUserID++
	m.users[user.ID] = *user
	return nil
}

// ---------- Admin users ----------

func (m *MemStorage) GetAdminUser(id uint) (*entity.AdminUser, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	a, ok := m.adminUsers[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &a, nil
}

func (m *MemStorage) GetAdminUserByUsername(username string) (*entity.AdminUser, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	for _, a := range m.adminUsers {
		if a.Username == username {
			a := a
			return &a, nil
		}
	}
	return nil, ErrNotFound
}

func (m *MemStorage) CreateAdminUser(admin *entity.AdminUser) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, a := range m.adminUsers {
		if a.Username == admin.Username {
			return ErrUsernameTaken
		}
	}
	admin.ID = m.nextAdminUserID
	m.nextAdminUserID++
	if admin.Role == "" {
		admin.Role = "admin"
	}
	admin.CreatedAt = time.Now()
	m.adminUsers[admin.ID] = *admin
	return nil
}

// ---------- Menu items ----------

func (m *MemStorage) GetMenuItems() ([]entity.MenuItem, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	items := make([]entity.MenuItem, 0, len(m.menuItems))
	for _, it := range m.menuItems {
		if it.Available {
			items = append(items, it)
		}
	}
	sort.Slice(items, func(i, j int) bool { return items[i].ID < items[j].ID })
	return items, nil
}

func (m *MemStorage) GetMenuItem(id uint) (*entity.MenuItem, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	it, ok := m.menuItems[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &it, nil
}

func (m *MemStorage) CreateMenuItem(item *entity.MenuItem) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	item.ID = m.nextMenuItemID
	m.nextMenuItemID++
	item.Available = true // เมนูใหม่พร้อมขายเสมอ
	m.menuItems[item.ID] = *item
	return nil
}

func (m *MemStorage) UpdateMenuItem(id uint, patch entity.MenuItemPatch) (*entity.MenuItem, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	it, ok := m.menuItems[id]
	if !ok {
		return nil, ErrNotFound
	}
	applyMenuItemPatch(&it, patch)
	m.menuItems[id] = it
	return &it, nil
}

func (m *MemStorage) DeleteMenuItem(id uint) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.menuItems[id]; !ok {
		return false, nil
	}
	delete(m.menuItems, id)
	return true, nil
}

// ---------- Bookings ----------

func (m *MemStorage) GetBookings() ([]entity.Booking, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	bookings := make([]entity.Booking, 0, len(m.bookings))
	for _, b := range m.bookings {
		bookings = append(bookings, b)
	}
	sort.Slice(bookings, func(i, j int) bool { return bookings[i].ID < bookings[j].ID })
	return bookings, nil
}

func (m *MemStorage) GetBooking(id uint) (*entity.Booking, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	b, ok := m.bookings[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &b, nil
}

func (m *MemStorage) CreateBooking(booking *entity.Booking) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	booking.ID = m.nextBookingID
	m.nextBookingID++
	booking.CreatedAt = time.Now()
	m.bookings[booking.ID] = *booking
	return nil
}

// ---------- Reviews ----------

func (m *MemStorage) GetReviews() ([]entity.Review, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	reviews := make([]entity.Review, 0, len(m.reviews))
	for _, r := range m.reviews {
		reviews = append(reviews, r)
	}
	sort.Slice(reviews, func(i, j int) bool { return reviews[i].ID < reviews[j].ID })
	return reviews, nil
}

func (m *MemStorage) CreateReview(review *entity.Review) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	review.ID = m.nextReviewID
	m.nextReviewID++
	review.CreatedAt = time.Now()
	m.reviews[review.ID] = *review
	return nil
}

// ---------- Orders ----------

func (m *MemStorage) GetOrders() ([]entity.Order, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	orders := make([]entity.Order, 0, len(m.orders))
	for _, o := range m.orders {
		orders = append(orders, o)
	}
	sort.Slice(orders, func(i, j int) bool { return orders[i].ID < orders[j].ID })
	return orders, nil
}

func (m *MemStorage) GetOrder(id uint) (*entity.Order, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	o, ok := m.orders[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &o, nil
}

func (m *MemStorage) CreateOrder(order *entity.Order) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	order.ID = m.nextOrderID
	m.nextOrderID++
	order.Status = entity.OrderStatusPending // เริ่มที่ pending เสมอ ไม่สน payload
	order.CreatedAt = time.Now()
	m.orders[order.ID] = *order
	return nil
}

func (m *MemStorage) UpdateOrderStatus(id uint, status string) (*entity.Order, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	o, ok := m.orders[id]
	if !ok {
		return nil, ErrNotFound
	}
	o.Status = status
	m.orders[id] = o
	return &o, nil
}

// applyMenuItemPatch merge เฉพาะ field ที่ส่งมา (nil = ไม่แตะ)
func applyMenuItemPatch(it *entity.MenuItem, patch entity.MenuItemPatch) {
	if patch.Name != nil {
		it.Name = *patch.Name
	}
	if patch.Description != nil {
		it.Description = *patch.Description
	}
	if patch.Price != nil {
		it.Price = *patch.Price
	}
	if patch.Category != nil {
		it.Category = *patch.Category
	}
	if patch.Diet != nil {
		it.Diet = *patch.Diet
	}
	if patch.Spice != nil {
		it.Spice = *patch.Spice
	}
	if patch.Image != nil {
		it.Image = patch.Image
	}
	if patch.Available != nil {
		it.Available = *patch.Available
	}
}
