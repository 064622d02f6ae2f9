package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/saisantosh1998/qkartBackend/config"
	cartservice "github.com/saisantosh1998/qkartBackend/services/cart"
	"gorm.io/gorm"
)

// SetupRoutes is the single entry‐point that wires up Auth, User, and Admin route groups.
func SetupRoutes(r *gin.Engine, db *gorm.DB, svc *cartservice.Service, cfg config.Config) {
	// Public Auth routes (no middleware)
	SetupAuthRoutes(r, db, cfg)

	// User routes (JWT‐protected)
	SetupUserRoutes(r, db, svc)

	// Admin routes (API‐Key‐protected)
	SetupAdminRoutes(r, db)
}
