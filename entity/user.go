package entity

// User คือลูกค้าที่สมัครผ่านหน้าเว็บ (ยังไม่เปิดใช้ฝั่ง client)
type User struct {
	ID       uint   `gorm:"primaryKey" json:"id"`
	Username string `gorm:"uniqueIndex;not null" json:"username"`
	Password string `json:"-"`
}
