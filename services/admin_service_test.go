package services_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/panchald9/roospark/repository"
	"github.com/panchald9/roospark/services"
)

func TestAdminStats(t *testing.T) {
	st, err := repository.NewMemStorage()
	require.NoError(t, err)

	bookingSvc := services.NewBookingService(st)
	orderSvc := services.NewOrderService(st)
	adminSvc := services.NewAdminService(st)

	_, err = bookingSvc.Create(services.CreateBookingReq{
		GuestName: "Nina", GuestEmail: "nina@example.com", GuestPhone: "8123456789",
		GuestCount: 4, BookingDate: "2026-09-01", BookingTime: "19:30",
	})
	require.NoError(t, err)

	order, err := orderSvc.Create(services.CreateOrderReq{
		CustomerName: "Priya", CustomerEmail: "priya@example.com", CustomerPhone: "9876543210",
		OrderType: "pickup", Items: []services.OrderLineIn{{MenuItemID: 1, Quantity: 1}}, TotalAmount: 649,
	})
	require.NoError(t, err)
	_, err = orderSvc.Create(services.CreateOrderReq{
		CustomerName: "Arjun", CustomerEmail: "arjun@example.com", CustomerPhone: "9000000000",
		OrderType: "pickup", Items: []services.OrderLineIn{{MenuItemID: 3, Quantity: 1}}, TotalAmount: 599,
	})
	require.NoError(t, err)

	// ปิดออเดอร์แรก เหลือ pending หนึ่งเดียว
	_, err = orderSvc.UpdateStatus(order.ID, services.UpdateOrderStatusReq{Status: "completed"})
	require.NoError(t, err)

	stats, err := adminSvc.Stats()
	require.NoError(t, err)

	// seed: เมนู 10 (veg 5 / nonveg 5), รีวิว 3 ดาว 5 ทั้งหมด
	assert.Equal(t, 10, stats.TotalMenuItems)
	assert.Equal(t, 5, stats.VegItems)
	assert.Equal(t, 5, stats.NonVegItems)
	assert.Equal(t, 1, stats.TotalBookings)
	assert.Equal(t, 1, stats.RecentBookings)
	assert.Equal(t, 2, stats.TotalOrders)
	assert.Equal(t, 1, stats.PendingOrders)
	assert.InDelta(t, 5.0, stats.AverageRating, 0.001)
}

func TestAdminStatsEmptyReviews(t *testing.T) {
	st, err := repository.NewMemStorage()
	require.NoError(t, err)
	adminSvc := services.NewAdminService(st)

	// seed มีรีวิว 3 — ค่าเฉลี่ยเป็น 5.0 ตั้งแต่แรก
	stats, err := adminSvc.Stats()
	require.NoError(t, err)
	assert.InDelta(t, 5.0, stats.AverageRating, 0.001)
	assert.Zero(t, stats.TotalOrders)
	assert.Zero(t, stats.PendingOrders)
}
