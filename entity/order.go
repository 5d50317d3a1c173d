package entity

import "time"

// Order statuses ที่ระบบรู้จัก (ลำดับตาม workflow ของหน้า admin
// แต่ storage ไม่บังคับลำดับ — เซ็ตข้ามขั้นได้)
const (
	OrderStatusPending   = "pending"
	OrderStatusConfirmed = "confirmed"
	OrderStatusPreparing = "preparing"
	OrderStatusReady     = "ready"
	OrderStatusCompleted = "completed"
)

// OrderLine รายการสินค้าในออเดอร์ อ้าง MenuItem ด้วย id เท่านั้น
// (weak reference — ลบเมนูแล้วออเดอร์เก่าไม่ถูกแตะ)
type OrderLine struct {
	MenuItemID uint `json:"menuItemId"`
	Quantity   int  `json:"quantity"`
}

// Order ออเดอร์ pickup/delivery — append-only ยกเว้น status
type Order struct {
	ID                  uint        `gorm:"primaryKey" json:"id"`
	CustomerName        string      `gorm:"not null" json:"customerName"`
	CustomerEmail       string      `gorm:"not null" json:"customerEmail"`
	CustomerPhone       string      `gorm:"not null" json:"customerPhone"`
	OrderType           string      `gorm:"not null" json:"orderType"` // pickup | delivery
	Items               []OrderLine `gorm:"serializer:json" json:"items"`
	TotalAmount         int64       `gorm:"not null" json:"totalAmount"`
	DeliveryAddress     *string     `json:"deliveryAddress"`
	SpecialInstructions *string     `json:"specialInstructions"`
	Status              string      `gorm:"not null;default:pending" json:"status"`
	CreatedAt           time.Time   `json:"createdAt"`
}
