package routes

import (
	"database/sql"

	"dompet-api/handlers"
	"dompet-api/services"

	"github.com/gin-gonic/gin"
)

// SetupAuthRoutes sets up public authentication routes.
func SetupAuthRoutes(rg *gin.RouterGroup, db *sql.DB) {
	authHandler := &handlers.AuthHandler{DB: db}

	rg.POST("/auth/register", authHandler.Register)
	rg.POST("/auth/login", authHandler.Login)
}

// SetupUserRoutes sets up protected user profile and 2FA routes.
func SetupUserRoutes(rg *gin.RouterGroup, db *sql.DB) {
	userHandler := &handlers.UserHandler{DB: db}

	rg.GET("/user/profile", userHandler.GetProfile)
	rg.POST("/user/2fa/setup", userHandler.SetupTOTP)
	rg.POST("/user/2fa/verify", userHandler.VerifyTOTP)
	rg.POST("/user/2fa/disable", userHandler.DisableTOTP)
}

// SetupWalletRoutes sets up protected wallet routes.
func SetupWalletRoutes(rg *gin.RouterGroup, db *sql.DB) {
	h := handlers.NewWalletHandler(services.NewWalletService(db))

	rg.POST("/wallets", h.Create)
	rg.GET("/wallets", h.GetAll)
	rg.GET("/wallets/:id", h.GetByID)
	rg.PUT("/wallets/:id", h.Update)
	rg.DELETE("/wallets/:id", h.Delete)
	rg.POST("/wallets/:id/default", h.SetDefault)
	rg.GET("/wallets/:id/summary", h.GetSummary)
}

// SetupBookRoutes sets up protected book routes.
func SetupBookRoutes(rg *gin.RouterGroup, db *sql.DB) {
	h := handlers.NewBookHandler(services.NewBookService(db))

	rg.POST("/books", h.Create)
	rg.GET("/books", h.GetAll)
	rg.GET("/books/:id", h.GetByID)
	rg.PUT("/books/:id", h.Update)
	rg.DELETE("/books/:id", h.Delete)
	rg.GET("/books/:id/summary", h.GetSummary)
}

// SetupCategoryRoutes sets up protected category routes.
func SetupCategoryRoutes(rg *gin.RouterGroup, db *sql.DB) {
	h := handlers.NewCategoryHandler(services.NewCategoryService(db))

	rg.POST("/categories", h.Create)
	rg.GET("/categories", h.List)
	rg.GET("/categories/:id", h.Get)
	rg.PUT("/categories/:id", h.Update)
	rg.DELETE("/categories/:id", h.Delete)
}

// SetupItemRoutes sets up protected item routes. Item mutations feed the
// wallet-update WebSocket channel through the handler's notifier.
func SetupItemRoutes(rg *gin.RouterGroup, db *sql.DB, ws *handlers.WSHandler) {
	h := handlers.NewItemHandler(services.NewItemService(db, ws))

	rg.POST("/items", h.Create)
	rg.GET("/items", h.List)
	rg.GET("/items/:id", h.Get)
	rg.PUT("/items/:id", h.Update)
	rg.DELETE("/items/:id", h.Remove)
}

// SetupSavingRoutes sets up protected saving routes.
func SetupSavingRoutes(rg *gin.RouterGroup, db *sql.DB) {
	h := handlers.NewSavingHandler(services.NewSavingService(db))

	rg.POST("/savings", h.Create)
	rg.GET("/savings", h.List)
	rg.GET("/savings/:id", h.Get)
	rg.PUT("/savings/:id", h.Update)
	rg.DELETE("/savings/:id", h.Delete)
	rg.POST("/savings/:id/add", h.AddTo)
}
