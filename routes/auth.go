package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/saisantosh1998/qkartBackend/auth"
	"github.com/saisantosh1998/qkartBackend/config"
	"gorm.io/gorm"
)

// SetupAuthRoutes registers all “/auth/*” endpoints.
func SetupAuthRoutes(r *gin.Engine, db *gorm.DB, cfg config.Config) {
	authGroup := r.Group("/auth")
	{
		authGroup.POST("/register", auth.RegisterUser(db, cfg))
		authGroup.POST("/login", auth.LoginUser(db))
	}
}
