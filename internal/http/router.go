package httpx

import (
	"github.com/gin-gonic/gin"

	"github.com/Irfansyah001/223-APIKeyGenerator/internal/http/handlers"
	"github.com/Irfansyah001/223-APIKeyGenerator/internal/http/middleware"
)

func BuildRouter(kh *handlers.KeyHandlers, ah *handlers.AdminHandlers, jwtmw *middleware.AuthMW, cb *middleware.CasbinMW) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())

	r.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"ok": true}) })

	api := r.Group("/api")
	api.POST("/generate-key", kh.GenerateKey)
	api.POST("/validate-key", kh.ValidateKey)
	api.GET("/keys", kh.KeyHistory)

	adm := r.Group("/admin")
	adm.POST("/register", ah.Register)
	adm.POST("/login", ah.Login)

	protected := r.Group("/admin").Use(jwtmw.WithJWT(), cb.Enforce())
	protected.GET("/users", ah.ListUsers)
	protected.GET("/keys", ah.ListKeys)

	return r
}
