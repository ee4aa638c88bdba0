package routes

import (
	"topup_store/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathAdmin       = "/admin"
	PathTransaction = "/transaction"
)

func addStorefrontRoutes(rg *gin.RouterGroup, storefront *handlers.StorefrontHandler, orders *handlers.OrderHandler) {
	rg.GET("/init-data", storefront.InitData)
	rg.POST("/check-nickname", storefront.CheckNickname)
	rg.GET("/channels", storefront.Channels)

	tx := rg.Group(PathTransaction)
	{
		tx.POST("", orders.CreateTransaction)
		tx.GET("/:ref", orders.GetTransaction)
	}
}

func addAdminRoutes(rg *gin.RouterGroup, admin *handlers.AdminHandler, orders *handlers.OrderHandler) {
	g := rg.Group(PathAdmin)
	g.POST("/login", admin.Login)

	protected := g.Group("", admin.RequireAdmin())
	{
		protected.GET("/config", admin.GetConfig)
		protected.POST("/save-config", admin.SaveConfig)
		protected.POST("/upload", admin.Upload)
		protected.POST("/save-products", admin.SaveProducts)
		protected.POST("/save-assets", admin.SaveAssets)
		protected.POST("/sync-digiflazz", admin.SyncSupplier)
		protected.POST("/delete-all-products", admin.DeleteAllProducts)
		protected.GET("/transactions", orders.ListTransactions)
	}
}
