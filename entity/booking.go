package entity

import "time"

// Booking การจองโต๊ะ — append-only, createdAt ประทับครั้งเดียวตอนสร้าง
type Booking struct {
	ID              uint      `gorm:"primaryKey" json:"id"`
	GuestName       string    `gorm:"not null" json:"guestName"`
	GuestEmail      string    `gorm:"not null" json:"guestEmail"`
	GuestPhone      string    `gorm:"not null" json:"guestPhone"`
	GuestCount      int       `gorm:"not null" json:"guestCount"`
	BookingDate     string    `gorm:"not null" json:"bookingDate"` // "2025-12-31"
	BookingTime     string    `gorm:"not null" json:"bookingTime"` // "19:30"
	SpecialRequests *string   `json:"specialRequests"`
	CreatedAt       time.Time `json:"createdAt"`
}
