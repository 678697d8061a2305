package routes

import (
	"github.com/gin-gonic/gin"
)

const (
	PathBookings     = "/bookings"
	PathOrders       = "/orders"
	PathGuides       = "/guides"
	PathBudgets      = "/budgets"
	PathTransactions = "/transactions"
)

func addSchedulingRoutes(rg *gin.RouterGroup, h Handlers) {
	bookings := rg.Group(PathBookings)
	{
		bookings.POST("/check", h.Orders.CheckBooking)
		bookings.GET("", h.Orders.ListBookings)
		bookings.GET("/:id", h.Orders.GetBooking)
		bookings.DELETE("/:id", h.Orders.DeleteBooking)
	}

	orders := rg.Group(PathOrders)
	{
		orders.POST("", h.Orders.CreateOrder)
		orders.GET("/:order_number", h.Orders.GetOrder)
		// Edit and delete address the order through any of its rows.
		orders.PUT("/:booking_id", h.Orders.EditOrder)
		orders.DELETE("/:booking_id", h.Orders.DeleteOrder)
	}

	rg.GET(PathGuides+"/:guide_id/occupancy", h.Orders.GuideOccupancy)

	budgets := rg.Group(PathBudgets)
	{
		budgets.POST("/check", h.Budgets.CheckBudget)
		budgets.POST("", h.Budgets.CreateBudget)
		budgets.GET("", h.Budgets.ListBudgets)
		budgets.GET("/:id", h.Budgets.GetBudget)
		budgets.PUT("/:id", h.Budgets.UpdateBudget)
		budgets.DELETE("/:id", h.Budgets.DeleteBudget)
		budgets.PATCH("/:id/approve", h.Budgets.ApproveBudget)
		budgets.PATCH("/:id/reject", h.Budgets.RejectBudget)
		budgets.PATCH("/:id/cancel", h.Budgets.CancelBudget)
	}

	rg.GET(PathTransactions, h.Transactions.ListTransactions)
}
