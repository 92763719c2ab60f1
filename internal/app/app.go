package app

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Irfansyah001/223-APIKeyGenerator/internal/config"
	httpx "github.com/Irfansyah001/223-APIKeyGenerator/internal/http"
	"github.com/Irfansyah001/223-APIKeyGenerator/internal/http/handlers"
	"github.com/Irfansyah001/223-APIKeyGenerator/internal/http/middleware"
	"github.com/Irfansyah001/223-APIKeyGenerator/internal/infrastructure/auth"
	"github.com/Irfansyah001/223-APIKeyGenerator/internal/infrastructure/database"
	"github.com/Irfansyah001/223-APIKeyGenerator/internal/infrastructure/keygen"
	"github.com/Irfansyah001/223-APIKeyGenerator/internal/infrastructure/repositories"
	"github.com/Irfansyah001/223-APIKeyGenerator/internal/services"
)

func Run(cfg *config.Config) error {
	if cfg.GinMode != "" {
		gin.SetMode(cfg.GinMode)
	}

	gdb, err := database.Open(cfg.DSN)
	if err != nil {
		return err
	}
	if err := database.AutoMigrate(gdb); err != nil {
		return err
	}

	sqlDB, err := gdb.DB()
	if err != nil {
		return err
	}
	if err := sqlDB.Ping(); err != nil {
		return err
	}

	cas, err := auth.NewCasbinService(gdb, cfg.CasbinModelPath)
	if err != nil {
		return err
	}

	// Initialize infrastructure services
	passwordSvc := auth.NewPasswordService()
	tokenSvc := auth.NewJWTService(cfg.JWTSecret, cfg.JWTIssuer, cfg.SessionTTL)
	keyGen := keygen.NewGenerator()

	// Initialize repositories
	userRepo := repositories.NewUserRepository(gdb)
	keyRepo := repositories.NewAPIKeyRepository(gdb)
	adminRepo := repositories.NewAdminRepository(gdb)

	// Initialize services
	expiry := services.NewExpiryPolicy()
	keySvc := services.NewKeyService(userRepo, keyRepo, keyGen, expiry)
	adminSvc := services.NewAdminService(adminRepo, passwordSvc, tokenSvc, cfg.SessionTTL)
	querySvc := services.NewQueryService(userRepo, keyRepo, expiry)
	policySvc := services.NewPolicyService(cas.E)

	// Initialize handlers
	keyH := handlers.NewKeyHandlers(keySvc)
	adminH := handlers.NewAdminHandlers(adminSvc, querySvc)

	// Initialize middleware
	jwtMW := middleware.NewAuthMW(adminSvc)
	casbinMW := middleware.NewCasbinMW(policySvc)

	// Build router
	r := httpx.BuildRouter(keyH, adminH, jwtMW, casbinMW)

	policies, _ := cas.E.GetPolicy()
	if len(policies) == 0 {
		cas.E.AddPolicy("role_admin", "/admin/users", "GET")
		cas.E.AddPolicy("role_admin", "/admin/keys", "GET")
		_ = cas.E.SavePolicy()
		log.Println("casbin: seeded default policies")
	}

	addr := ":" + cfg.Port
	log.Printf("listening on %s", addr)
	return http.ListenAndServe(addr, r)
}
