package cartControllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/saisantosh1998/qkartBackend/apierror"
	"github.com/saisantosh1998/qkartBackend/models"
	cartservice "github.com/saisantosh1998/qkartBackend/services/cart"
	"gorm.io/gorm"
)

type CartItemInput struct {
	ProductID uint `json:"product_id" binding:"required"`
	Quantity  int  `json:"quantity" binding:"required,min=1"`
}

// currentUser pulls the user the auth middleware loaded into the context.
func currentUser(c *gin.Context) (*models.User, bool) {
	userVal, exists := c.Get("user")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return nil, false
	}
	return userVal.(*models.User), true
}

// respondError translates service failures into HTTP responses.
func respondError(c *gin.Context, err error) {
	var apiErr *apierror.ApiError
	if errors.As(err, &apiErr) {
		c.JSON(apiErr.StatusCode, gin.H{"error": apiErr.Message})
		return
	}
	c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
}

// GET /user/cart
func GetUserCart(svc *cartservice.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := currentUser(c)
		if !ok {
			return
		}

		cart, err := svc.GetCartByEmail(c.Request.Context(), user)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, cart)
	}
}

// POST /user/cart
func AddCartItem(svc *cartservice.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := currentUser(c)
		if !ok {
			return
		}

		var input CartItemInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		cart, err := svc.AddProductToCart(c.Request.Context(), user, input.ProductID, input.Quantity)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusCreated, cart)
	}
}

// PUT /user/cart
func UpdateCartItem(svc *cartservice.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := currentUser(c)
		if !ok {
			return
		}

		var input CartItemInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		cart, err := svc.UpdateProductInCart(c.Request.Context(), user, input.ProductID, input.Quantity)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, cart)
	}
}

// DELETE /user/cart/:product_id
func DeleteCartItem(svc *cartservice.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := currentUser(c)
		if !ok {
			return
		}

		productID, err := strconv.ParseUint(c.Param("product_id"), 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product ID"})
			return
		}

		if err := svc.DeleteProductFromCart(c.Request.Context(), user, uint(productID)); err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusNoContent, nil)
	}
}

// PUT /user/cart/checkout
func CheckoutCart(svc *cartservice.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := currentUser(c)
		if !ok {
			return
		}

		if err := svc.Checkout(c.Request.Context(), user); err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusNoContent, nil)
	}
}

// GET /admin/user-cart/:email
func GetAdminUserCart(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		email := c.Param("email")
		if email == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "email is required"})
			return
		}

		var cart models.Cart
		if err := db.Preload("Items").Where("email = ?", email).First(&cart).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "User cart not found"})
			} else {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch cart"})
			}
			return
		}
		c.JSON(http.StatusOK, cart)
	}
}
