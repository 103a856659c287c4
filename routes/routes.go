package routes

import (
	"net/http"

	"snackmart-backend/controllers"
	"snackmart-backend/middlewares"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// Setup mengonfigurasi dan mengembalikan Gin engine.
func Setup(ctrl *controllers.Controller, env string) *gin.Engine {
	if env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.Default()
	r.HandleMethodNotAllowed = true

	config := cors.DefaultConfig()
	config.AllowOrigins = []string{"http://localhost:3000", "http://127.0.0.1:3000", "http://localhost:8000"}
	config.AllowMethods = []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}
	config.AllowHeaders = []string{"Origin", "Content-Type", "Accept", "Authorization"}
	config.AllowCredentials = true
	r.Use(cors.New(config))

	api := r.Group("/api")
	{
		// Rute utilitas
		api.GET("/health", ctrl.HealthCheck)
		api.GET("/stats", ctrl.GetStats)

		// Rute otentikasi
		api.POST("/admin/login", ctrl.Login)

		// Rute produk
		product := api.Group("/product")
		{
			product.GET("/getProduct", ctrl.GetProducts)
			product.GET("/getProductWithHighlighted", ctrl.GetProductsWithHighlighted)
			product.POST("/createProduct", ctrl.CreateProduct)
			product.PUT("/editProduct", ctrl.EditProduct)
			product.DELETE("/deleteProduct", ctrl.DeleteProduct)
			product.GET("/:id", ctrl.GetProduct)
		}

		// Rute banner
		banner := api.Group("/banner")
		{
			banner.GET("/getBanner", ctrl.GetBanners)
			banner.POST("/createBanner", ctrl.CreateBanner)
			banner.PUT("/editBanner", ctrl.EditBanner)
			banner.DELETE("/deleteBanner", ctrl.DeleteBanner)
		}

		// Rute produk unggulan
		highlighted := api.Group("/highlightedProduct")
		{
			highlighted.GET("/getHighlightedProduct", ctrl.GetHighlightedProducts)
			highlighted.POST("/createHighlightedProduct", ctrl.CreateHighlightedProduct)
			highlighted.PUT("/editHighlighted", ctrl.EditHighlighted)
			highlighted.DELETE("/deleteHighlighted", ctrl.DeleteHighlighted)
		}

		// Widget chat dan upload gambar
		api.POST("/chat", ctrl.ChatHandler)
		api.POST("/upload", ctrl.Upload)
	}

	// Halaman admin dijaga gerbang cookie sesi. Halamannya sendiri
	// dirender frontend; di sini cuma placeholder supaya perilaku
	// redirect-nya utuh.
	admin := r.Group("/admin", middlewares.AdminGate(ctrl.PasetoSecretKey))
	{
		admin.GET("", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"message": "admin dashboard"})
		})
		admin.GET("/login", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"message": "admin login"})
		})
	}

	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Endpoint not found"})
	})
	r.NoMethod(func(c *gin.Context) {
		c.JSON(http.StatusMethodNotAllowed, gin.H{"error": "Method not allowed"})
	})
	return r
}
