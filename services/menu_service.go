package services

import (
	"github.com/panchald9/roospark/entity"
	"github.com/panchald9/roospark/repository"
)

type MenuService struct {
	Store repository.Storage
}

func NewMenuService(store repository.Storage) *MenuService {
	return &MenuService{Store: store}
}

// ----- DTOs from Controller -----

type CreateMenuItemReq struct {
	Name        string  `json:"name" validate:"required"`
	Description string  `json:"description" validate:"required"`
	Price       int64   `json:"price" validate:"required,gt=0"`
	Category    string  `json:"category" validate:"required,oneof=indian chinese italian continental fastfood"`
	Diet        string  `json:"diet" validate:"required,oneof=veg nonveg"`
	Spice       string  `json:"spice" validate:"required,oneof=mild medium spicy"`
	Image       *string `json:"image" validate:"omitempty,url"`
}

// List คืนเฉพาะเมนูที่ available
func (s *MenuService) List() ([]entity.MenuItem, error) {
	return s.Store.GetMenuItems()
}

func (s *MenuService) Get(id uint) (*entity.MenuItem, error) {
	return s.Store.GetMenuItem(id)
}

func (s *MenuService) Create(req CreateMenuItemReq) (*entity.MenuItem, error) {
	if err := validateStruct(req); err != nil {
		return nil, err
	}
	item := &entity.MenuItem{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		Category:    req.Category,
		Diet:        req.Diet,
		Spice:       req.Spice,
		Image:       req.Image, // nil อยู่ก็ปล่อยเป็น null
	}
	if err := s.Store.CreateMenuItem(item); err != nil {
		return nil, err
	}
	return item, nil
}

// Update เป็น partial merge — field ที่ไม่ส่งจะไม่ถูกแตะ
func (s *MenuService) Update(id uint, patch entity.MenuItemPatch) (*entity.MenuItem, error) {
	if err := validateStruct(patch); err != nil {
		return nil, err
	}
	return s.Store.UpdateMenuItem(id, patch)
}

func (s *MenuService) Delete(id uint) (bool, error) {
	return s.Store.DeleteMenuItem(id)
}
