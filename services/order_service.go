package services

import (
	"github.com/panchald9/roospark/entity"
	"github.com/panchald9/roospark/repository"
)

type OrderService struct {
	Store repository.Storage
}

func NewOrderService(store repository.Storage) *OrderService {
	return &OrderService{Store: store}
}

// ----- DTOs from Controller -----

type OrderLineIn struct {
	MenuItemID uint `json:"menuItemId" validate:"required,gt=0"`
	Quantity   int  `json:"quantity" validate:"required,gte=1"`
}

type CreateOrderReq struct {
	CustomerName        string        `json:"customerName" validate:"required"`
	CustomerEmail       string        `json:"customerEmail" validate:"required,email"`
	CustomerPhone       string        `json:"customerPhone" validate:"required"`
	OrderType           string        `json:"orderType" validate:"required,oneof=pickup delivery"`
	Items               []OrderLineIn `json:"items" validate:"required,min=1,dive"`
	TotalAmount         int64         `json:"totalAmount" validate:"required,gt=0"`
	DeliveryAddress     *string       `json:"deliveryAddress" validate:"required_if=OrderType delivery"`
	SpecialInstructions *string       `json:"specialInstructions"`
}

type UpdateOrderStatusReq struct {
	Status string `json:"status" validate:"required,oneof=pending confirmed preparing ready completed"`
}

func (s *OrderService) List() ([]entity.Order, error) {
	return s.Store.GetOrders()
}

func (s *OrderService) Get(id uint) (*entity.Order, error) {
	return s.Store.GetOrder(id)
}

// Create — status ใน payload (ถ้ามี) ถูกทิ้ง storage บังคับ pending เอง
func (s *OrderService) Create(req CreateOrderReq) (*entity.Order, error) {
	if err := validateStruct(req); err != nil {
		return nil, err
	}
	lines := make([]entity.OrderLine, 0, len(req.Items))
	for _, it := range req.Items {
		lines = append(lines, entity.OrderLine{MenuItemID: it.MenuItemID, Quantity: it.Quantity})
	}
	order := &entity.Order{
		CustomerName:        req.CustomerName,
		CustomerEmail:       req.CustomerEmail,
		CustomerPhone:       req.CustomerPhone,
		OrderType:           req.OrderType,
		Items:               lines,
		TotalAmount:         req.TotalAmount,
		DeliveryAddress:     req.DeliveryAddress,
		SpecialInstructions: req.SpecialInstructions,
	}
	if err := s.Store.CreateOrder(order); err != nil {
		return nil, err
	}
	return order, nil
}

// UpdateStatus รับค่าใน enum เท่านั้น แต่ไม่บังคับลำดับ —
// pending → completed ข้ามขั้นได้ (ตาม workflow จริงของหน้าร้าน)
func (s *OrderService) UpdateStatus(id uint, req UpdateOrderStatusReq) (*entity.Order, error) {
	if err := validateStruct(req); err != nil {
		return nil, err
	}
	return s.Store.UpdateOrderStatus(id, req.Status)
}
