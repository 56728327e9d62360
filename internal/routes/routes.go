package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/menucraft/restaurant-backend/internal/audit"
	"github.com/menucraft/restaurant-backend/internal/handlers"
	infraRepo "github.com/menucraft/restaurant-backend/internal/infra/repository"
	ucMenu "github.com/menucraft/restaurant-backend/internal/usecase/menu"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, log *zap.Logger) {

	// ======================================================
	// INFRA (SINGLETONS)
	// ======================================================
	categoryRepo := infraRepo.NewCategoryGormRepository(db)
	itemRepo := infraRepo.NewMenuItemGormRepository(db)
	userRepo := infraRepo.NewUserGormRepository(db)
	restaurantRepo := infraRepo.NewRestaurantGormRepository(db)

	auditLogger := audit.New(db)
	auditDispatcher := audit.NewDispatcher(auditLogger, log)

	// ======================================================
	// USE CASES (MENU)
	// ======================================================
	listMenuUC := ucMenu.NewListMenu(categoryRepo, itemRepo)
	publicMenuUC := ucMenu.NewPublicMenu(categoryRepo, itemRepo)
	deleteCategoryUC := ucMenu.NewDeleteCategory(categoryRepo, itemRepo, auditDispatcher)

	// ======================================================
	// HANDLERS
	// ======================================================
	categoryHandler := handlers.NewCategoryHandler(categoryRepo, deleteCategoryUC, auditDispatcher)
	itemHandler := handlers.NewMenuItemHandler(itemRepo, categoryRepo, auditDispatcher)
	userHandler := handlers.NewUserHandler(userRepo, auditDispatcher)
	restaurantHandler := handlers.NewRestaurantHandler(restaurantRepo, auditDispatcher)
	menuHandler := handlers.NewMenuHandler(listMenuUC)
	publicHandler := handlers.NewPublicHandler(publicMenuUC)
	auditLogsHandler := handlers.NewAuditLogsHandler(db)

	// ======================================================
	// CUSTOMER API
	// ======================================================
	api := r.Group("/api")
	{
		api.GET("/", publicHandler.Root)
		api.GET("/menu", publicHandler.Menu)

		// ------------------------------
		// ADMIN API
		//
		// Reachable without credentials until the authorization
		// middleware lands; a known gap, not an oversight.
		// ------------------------------
		admin := api.Group("/admin")
		{
			admin.GET("", func(c *gin.Context) {
				c.JSON(http.StatusOK, gin.H{"message": "Admin API is working"})
			})

			admin.GET("/menu", menuHandler.List)

			admin.POST("/categories", categoryHandler.Create)
			admin.PUT("/categories/:id", categoryHandler.Update)
			admin.DELETE("/categories/:id", categoryHandler.Delete)

			admin.POST("/items", itemHandler.Create)
			admin.PUT("/items/:id", itemHandler.Update)
			admin.DELETE("/items/:id", itemHandler.Delete)

			admin.GET("/users", userHandler.List)
			admin.POST("/users", userHandler.Create)
			admin.PUT("/users/:id", userHandler.Update)
			admin.DELETE("/users/:id", userHandler.Delete)

			admin.GET("/restaurant", restaurantHandler.Get)
			admin.POST("/restaurant", restaurantHandler.Provision)
			admin.PUT("/restaurant", restaurantHandler.Update)

			admin.GET("/audit-logs", auditLogsHandler.List)
		}
	}
}
