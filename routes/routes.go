package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/woedy/weekend-chef-backend/controllers"
	"github.com/woedy/weekend-chef-backend/entity"
	"github.com/woedy/weekend-chef-backend/middlewares"
	"github.com/woedy/weekend-chef-backend/repository"
	"github.com/woedy/weekend-chef-backend/services"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB) {
	r.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"ok": true}) })

	// Repositories
	cartRepo := repository.NewCartRepository(db)
	orderRepo := repository.NewOrderRepository(db)
	catalogRepo := repository.NewCatalogRepository(db)
	userRepo := repository.NewUserRepository(db)

	// Services
	catalogSvc := services.NewCatalogService(catalogRepo, userRepo)
	cartSvc := services.NewCartService(db, cartRepo, catalogRepo, userRepo)
	orderSvc := services.NewOrderService(db, orderRepo, cartRepo, userRepo, services.LogNotifier{})

	// Controllers
	dishCtrl := controllers.NewDishController(catalogSvc)
	optionCtrl := controllers.NewCustomOptionController(catalogSvc)
	cartCtrl := controllers.NewCartController(cartSvc)
	orderCtrl := controllers.NewOrderController(orderSvc)
	paymentCtrl := controllers.NewPaymentController(orderSvc)

	// Catalog (public reads, staff writes)
	r.GET("/categories", dishCtrl.ListCategories)
	r.POST("/categories", middlewares.AuthMiddleware(entity.RoleAdmin), dishCtrl.CreateCategory)
	r.GET("/dishes", dishCtrl.List)
	r.GET("/dishes/:id", dishCtrl.Detail)

	staff := r.Group("/", middlewares.AuthMiddleware(entity.RoleChef, entity.RoleAdmin))
	{
		staff.POST("/dishes", dishCtrl.Create)
		staff.PATCH("/dishes/:id", dishCtrl.Update)
		staff.PATCH("/dishes/:id/archive", dishCtrl.Archive)
		staff.PATCH("/dishes/:id/unarchive", dishCtrl.Unarchive)
		staff.DELETE("/dishes/:id", dishCtrl.Delete)

		staff.POST("/custom-options", optionCtrl.Create)
		staff.PATCH("/custom-options/:optionId", optionCtrl.Update)
		staff.PATCH("/custom-options/:optionId/archive", optionCtrl.Archive)
		staff.PATCH("/custom-options/:optionId/unarchive", optionCtrl.Unarchive)
		staff.DELETE("/custom-options/:optionId", optionCtrl.Delete)

		staff.GET("/orders/:id/items/:itemId/shopping-list", orderCtrl.ShoppingList)
	}

	auth := r.Group("/", middlewares.AuthMiddleware())
	{
		auth.GET("/custom-options", optionCtrl.List)
		auth.GET("/custom-options/:optionId", optionCtrl.Detail)

		auth.GET("/orders", orderCtrl.List)
		auth.GET("/orders/:id", orderCtrl.Detail)

		auth.POST("/orders/:id/payments", paymentCtrl.Record)
		auth.PATCH("/payments/:id", paymentCtrl.Update)
		auth.DELETE("/payments/:id", paymentCtrl.Delete)
	}

	client := r.Group("/", middlewares.AuthMiddleware(entity.RoleClient))
	{
		client.GET("/cart", cartCtrl.Get)
		client.POST("/cart/items", cartCtrl.AddItem)
		client.PATCH("/cart/items/:id", cartCtrl.EditItem)
		client.DELETE("/cart/items/:id", cartCtrl.RemoveItem)
		client.DELETE("/carts/:id", cartCtrl.DeleteCart)

		client.POST("/orders", orderCtrl.Place)
	}

	transitions := r.Group("/", middlewares.AuthMiddleware(entity.RoleAdmin, entity.RoleChef, entity.RoleDispatch))
	{
		transitions.PATCH("/orders/:id/status", orderCtrl.ChangeStatus)
	}

	assignment := r.Group("/", middlewares.AuthMiddleware(entity.RoleAdmin, entity.RoleChef))
	{
		assignment.PATCH("/orders/:id/driver", orderCtrl.AssignDriver)
	}

	admin := r.Group("/", middlewares.AuthMiddleware(entity.RoleAdmin))
	{
		admin.PATCH("/orders/:id/paid", orderCtrl.MarkPaid)
	}
}
