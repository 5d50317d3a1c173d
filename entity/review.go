package entity

import "time"

// Review รีวิวจากลูกค้า rating 1–5 (บังคับที่ชั้น service ไม่ใช่ storage)
type Review struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	CustomerName string    `gorm:"not null" json:"customerName"`
	Rating       int       `gorm:"not null" json:"rating"`
	Comment      string    `json:"comment"`
	CreatedAt    time.Time `json:"createdAt"`
}
