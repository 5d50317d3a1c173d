package entity

import "time"

// AdminUser ผู้ดูแลระบบหลังร้าน (role default = "admin")
type AdminUser struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Username  string    `gorm:"uniqueIndex;not null" json:"username"`
	Password  string    `json:"-"`
	Email     string    `json:"email"`
	Role      string    `gorm:"not null;default:admin" json:"role"`
	CreatedAt time.Time `json:"createdAt"`
}
