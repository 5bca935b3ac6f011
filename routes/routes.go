package routes

import (
	"food-court-api/handlers"
	"food-court-api/middleware"
	"food-court-api/models"

	"github.com/gin-gonic/gin"
)

// SetupRoutes registers the full HTTP surface. The deny-list is built
// in main and threaded through to the auth middleware and logout.
func SetupRoutes(r *gin.Engine, denylist *middleware.Denylist) {
	auth := middleware.AuthRequired(denylist)
	adminOnly := middleware.RoleRequired(models.RoleAdmin)
	ownerOrAdmin := middleware.RoleRequired(models.RoleOwner, models.RoleAdmin)

	// ── Session ────────────────────────────────────────────────────
	r.POST("/register", handlers.Register)
	r.POST("/login", handlers.Login)
	r.POST("/logout", auth, handlers.Logout(denylist))
	r.GET("/check-auth", auth, handlers.CheckAuth)

	// ── Users (admin manages, users see themselves) ────────────────
	users := r.Group("/users", auth)
	{
		users.GET("", adminOnly, handlers.ListUsers)
		users.POST("", adminOnly, handlers.CreateUser)
		users.GET("/:id", handlers.GetUser)
		users.PATCH("/:id", handlers.UpdateUser)
		users.DELETE("/:id", adminOnly, handlers.DeleteUser)
	}

	// ── Cuisines (public browse, admin mutates) ────────────────────
	cuisines := r.Group("/cuisines")
	{
		cuisines.GET("", handlers.ListCuisines)
		cuisines.GET("/:id", handlers.GetCuisine)
		cuisines.POST("", auth, adminOnly, handlers.CreateCuisine)
		cuisines.PATCH("/:id", auth, adminOnly, handlers.UpdateCuisine)
		cuisines.DELETE("/:id", auth, adminOnly, handlers.DeleteCuisine)
	}

	// ── Outlets (public browse, owning user mutates) ───────────────
	outlets := r.Group("/outlets")
	{
		outlets.GET("", handlers.ListOutlets)
		outlets.GET("/:id", handlers.GetOutlet)
		outlets.POST("", auth, ownerOrAdmin, handlers.CreateOutlet)
		outlets.PATCH("/:id", auth, ownerOrAdmin, handlers.UpdateOutlet)
		outlets.DELETE("/:id", auth, ownerOrAdmin, handlers.DeleteOutlet)
	}

	// ── Menu items (public browse, outlet owner mutates) ───────────
	menuItems := r.Group("/menu-items")
	{
		menuItems.GET("", handlers.ListMenuItems)
		menuItems.GET("/:id", handlers.GetMenuItem)
		menuItems.POST("", auth, ownerOrAdmin, handlers.CreateMenuItem)
		menuItems.PATCH("/:id", auth, ownerOrAdmin, handlers.UpdateMenuItem)
		menuItems.DELETE("/:id", auth, ownerOrAdmin, handlers.DeleteMenuItem)
	}

	// ── Tables (public browse, admin mutates) ──────────────────────
	tables := r.Group("/tables")
	{
		tables.GET("", handlers.ListTables)
		tables.GET("/:id", handlers.GetTable)
		tables.POST("", auth, adminOnly, handlers.CreateTable)
		tables.PATCH("/:id", auth, adminOnly, handlers.UpdateTable)
		tables.DELETE("/:id", auth, adminOnly, handlers.DeleteTable)
	}

	// ── Orders ─────────────────────────────────────────────────────
	orders := r.Group("/orders", auth)
	{
		orders.GET("", handlers.ListOrders)
		orders.GET("/:id", handlers.GetOrder)
		orders.POST("", handlers.CreateOrder)
		orders.PATCH("/:id", handlers.UpdateOrder)
		orders.DELETE("/:id", handlers.DeleteOrder)
	}

	// ── Order items ────────────────────────────────────────────────
	orderItems := r.Group("/order-items", auth)
	{
		orderItems.GET("", handlers.ListOrderItems)
		orderItems.GET("/:id", handlers.GetOrderItem)
		orderItems.POST("", handlers.CreateOrderItem)
		orderItems.PATCH("/:id", handlers.UpdateOrderItem)
		orderItems.DELETE("/:id", handlers.DeleteOrderItem)
	}

	// ── Reservations (PUT for update, matching the legacy client) ──
	reservations := r.Group("/reservations", auth)
	{
		reservations.GET("", handlers.ListReservations)
		reservations.GET("/:id", handlers.GetReservation)
		reservations.POST("", handlers.CreateReservation)
		reservations.PUT("/:id", handlers.UpdateReservation)
		reservations.DELETE("/:id", handlers.DeleteReservation)
	}
}
