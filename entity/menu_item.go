package entity

// MenuItem เมนูอาหารหนึ่งรายการ ราคาเก็บเป็นจำนวนเต็ม (หน่วยย่อยของสกุลเงิน)
type MenuItem struct {
	ID          uint    `gorm:"primaryKey" json:"id"`
	Name        string  `gorm:"not null" json:"name"`
	Description string  `json:"description"`
	Price       int64   `gorm:"not null" json:"price"`
	Category    string  `gorm:"not null" json:"category"` // indian | chinese | italian | continental | fastfood
	Diet        string  `gorm:"not null" json:"diet"`     // veg | nonveg
	Spice       string  `gorm:"not null" json:"spice"`    // mild | medium | spicy
	Image       *string `json:"image"`                    // URL; null เมื่อไม่ได้ส่งมา
	Available   bool    `json:"available"`
}

// MenuItemPatch ใช้กับ partial update — field ที่เป็น nil จะไม่ถูกแตะ
type MenuItemPatch struct {
	Name        *string `json:"name" validate:"omitempty,min=1"`
	Description *string `json:"description"`
	Price       *int64  `json:"price" validate:"omitempty,gt=0"`
	Category    *string `json:"category" validate:"omitempty,oneof=indian chinese italian continental fastfood"`
	Diet        *string `json:"diet" validate:"omitempty,oneof=veg nonveg"`
	Spice       *string `json:"spice" validate:"omitempty,oneof=mild medium spicy"`
	Image       *string `json:"image" validate:"omitempty,url"`
	Available   *bool   `json:"available"`
}
