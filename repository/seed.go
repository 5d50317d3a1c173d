package repository

import (
	"errors"

	"golang.org/x/crypto/bcrypt"

	"github.com/panchald9/roospark/entity"
)

// ค่า default ของ admin คนแรก — override ได้ผ่าน SeedAdmin
const (
	DefaultAdminUsername = "admin"
	DefaultAdminPassword = "admin123"
	DefaultAdminEmail    = "admin@roospark.com"
)

func strptr(s string) *string { return &s }

func defaultMenuItems() []entity.MenuItem {
	return []entity.MenuItem{
		{Name: "Butter Chicken", Description: "Rich and creamy tomato-based curry with tender chicken pieces", Price: 649, Category: "indian", Diet: "nonveg", Spice: "medium", Image: strptr("https://images.unsplash.com/photo-1585937421612-70a008356fbe?auto=format&fit=crop&w=800&h=600")},
		{Name: "Paneer Tikka Masala", Description: "Grilled paneer cubes in spiced tomato gravy", Price: 549, Category: "indian", Diet: "veg", Spice: "medium", Image: strptr("https://images.unsplash.com/photo-1631452180519-c014fe946bc7?auto=format&fit=crop&w=800&h=600")},
		{Name: "Kung Pao Chicken", Description: "Stir-fried chicken with peanuts, vegetables and chili peppers", Price: 599, Category: "chinese", Diet: "nonveg", Spice: "spicy", Image: strptr("https://images.unsplash.com/photo-1582878826629-29b7ad1cdc43?auto=format&fit=crop&w=800&h=600")},
		{Name: "Vegetable Fried Rice", Description: "Wok-tossed rice with fresh vegetables and aromatic spices", Price: 399, Category: "chinese", Diet: "veg", Spice: "mild", Image: strptr("https://images.unsplash.com/photo-1512058564366-18510be2db19?auto=format&fit=crop&w=800&h=600")},
		{Name: "Margherita Pizza", Description: "Classic pizza with fresh tomatoes, mozzarella and basil", Price: 499, Category: "italian", Diet: "veg", Spice: "mild", Image: strptr("https://images.unsplash.com/photo-1565299624946-b28f40a0ca4b?auto=format&fit=crop&w=800&h=600")},
		{Name: "Chicken Alfredo Pasta", Description: "Creamy pasta with grilled chicken and parmesan cheese", Price: 699, Category: "italian", Diet: "nonveg", Spice: "mild", Image: strptr("https://images.unsplash.com/photo-1621996346565-e3dbc353d2e5?auto=format&fit=crop&w=800&h=600")},
		{Name: "Grilled Salmon", Description: "Fresh Atlantic salmon grilled to perfection with herbs", Price: 899, Category: "continental", Diet: "nonveg", Spice: "mild", Image: strptr("https://images.unsplash.com/photo-1467003909585-2f8a72700288?auto=format&fit=crop&w=800&h=600")},
		{Name: "Caesar Salad", Description: "Fresh romaine lettuce with caesar dressing and croutons", Price: 449, Category: "continental", Diet: "veg", Spice: "mild", Image: strptr("https://images.unsplash.com/photo-1512621776951-a57141f2eefd?auto=format&fit=crop&w=800&h=600")},
		{Name: "Classic Burger", Description: "Juicy beef patty with lettuce, tomato, and special sauce", Price: 399, Category: "fastfood", Diet: "nonveg", Spice: "mild", Image: strptr("https://images.unsplash.com/photo-1568901346375-23c9450c58cd?auto=format&fit=crop&w=800&h=600")},
		{Name: "Crispy French Fries", Description: "Golden crispy fries seasoned with herbs and salt", Price: 199, Category: "fastfood", Diet: "veg", Spice: "mild", Image: strptr("https://images.unsplash.com/photo-1573080496219-bb080dd4f877?auto=format&fit=crop&w=800&h=600")},
	}
}

func defaultReviews() []entity.Review {
	return []entity.Review{
		{CustomerName: "Sarah Rodriguez", Rating: 5, Comment: "Absolutely amazing experience! The food quality is exceptional and the ambiance is perfect for a romantic dinner. The staff is incredibly attentive and knowledgeable about the menu."},
		{CustomerName: "Michael Kim", Rating: 5, Comment: "The variety in their menu is outstanding! From authentic Indian dishes to Italian classics, everything is prepared to perfection. Roos Park has become our family's favorite dining destination."},
		{CustomerName: "Aarav Patel", Rating: 5, Comment: "Exceptional service and incredible flavors! The online booking system is so convenient, and the restaurant always maintains the highest standards. Highly recommended for any occasion."},
	}
}

// Seed เติมข้อมูลตั้งต้นด้วยค่า default — idempotent เรียกซ้ำได้
func Seed(st Storage) error {
	return SeedAdmin(st, DefaultAdminUsername, DefaultAdminPassword)
}

// SeedAdmin เติม admin + เมนู + รีวิวตั้งต้น ข้ามส่วนที่มีอยู่แล้ว
// (pattern เดียวกับ seed lookup: เช็คก่อน สร้างเฉพาะที่ขาด)
func SeedAdmin(st Storage, adminUsername, adminPassword string) error {
	if _, err := st.GetAdminUserByUsername(adminUsername); errors.Is(err, ErrNotFound) {
		hash, err := bcrypt.GenerateFromPassword([]byte(adminPassword), bcrypt.DefaultCost)
		if err != nil {
			return err
		}
		admin := &entity.AdminUser{
			Username: adminUsername,
			Password: string(hash),
			Email:    DefaultAdminEmail,
			Role:     "admin",
		}
		if err := st.CreateAdminUser(admin); err != nil {
			return err
		}
	} else if err != nil {
		return err
	}

	items, err := st.GetMenuItems()
	if err != nil {
		return err
	}
	if len(items) == 0 {
		for _, it := range defaultMenuItems() {
			it := it
			if err := st.CreateMenuItem(&it); err != nil {
				return err
			}
		}
	}

	reviews, err := st.GetReviews()
	if err != nil {
		return err
	}
	if len(reviews) == 0 {
		for _, r := range defaultReviews() {
			r := r
			if err := st.CreateReview(&r); err != nil {
				return err
			}
		}
	}
	return nil
}
