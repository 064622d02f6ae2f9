package routes

import (
	"github.com/gin-gonic/gin"
	cartControllers "github.com/saisantosh1998/qkartBackend/controllers/cart"
	productcontroller "github.com/saisantosh1998/qkartBackend/controllers/product"
	userControllers "github.com/saisantosh1998/qkartBackend/controllers/user"
	"github.com/saisantosh1998/qkartBackend/middleware"
	cartservice "github.com/saisantosh1998/qkartBackend/services/cart"
	"gorm.io/gorm"
)

// SetupUserRoutes registers all “/user/*” endpoints. Requires JWT middleware.
func SetupUserRoutes(r *gin.Engine, db *gorm.DB, svc *cartservice.Service) {
	userGroup := r.Group("/user")
	userGroup.Use(middleware.ValidateToken, middleware.LoadUser(db))
	{
		// ──────────────── User Profile ────────────────
		userGroup.GET("/", userControllers.GetUser())      // GET /user/
		userGroup.PUT("/", userControllers.UpdateUser(db)) // PUT /user/

		// ──────────────── Shopping Cart ────────────────
		cartGroup := userGroup.Group("/cart")
		{
			cartGroup.GET("/", cartControllers.GetUserCart(svc))                  // GET /user/cart
			cartGroup.POST("/", cartControllers.AddCartItem(svc))                 // POST /user/cart
			cartGroup.PUT("/", cartControllers.UpdateCartItem(svc))               // PUT /user/cart
			cartGroup.DELETE("/:product_id", cartControllers.DeleteCartItem(svc)) // DELETE /user/cart/:product_id
			cartGroup.PUT("/checkout", cartControllers.CheckoutCart(svc))         // PUT /user/cart/checkout
		}

		// ──────────────── Browse Products ────────────────
		userGroup.GET("/products", productcontroller.GetProducts(db))        // GET /user/products
		userGroup.GET("/products/:id", productcontroller.GetProductByID(db)) // GET /user/products/:id
	}
}
