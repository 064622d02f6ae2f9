package productcontroller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/saisantosh1998/qkartBackend/models"
	"gorm.io/gorm"
)

type ProductInput struct {
	Name      string  `json:"name" binding:"required"`
	Category  string  `json:"category"`
	Cost      float64 `json:"cost" binding:"required,gt=0"`
	Rating    int     `json:"rating" binding:"min=0,max=5"`
	ImageLink string  `json:"image"`
}

// POST /admin/products
func CreateProduct(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input ProductInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		product := models.Product{
			Name:      input.Name,
			Category:  input.Category,
			Cost:      input.Cost,
			Rating:    input.Rating,
			ImageLink: input.ImageLink,
		}
		if err := db.Create(&product).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create product"})
			return
		}
		c.JSON(http.StatusCreated, product)
	}
}
