package app

import (
	"database/sql"
	"os"

	"go-agency/internal/compplan"
	"go-agency/internal/messaging/kafka"
	"go-agency/internal/middleware"
	"go-agency/internal/payout"
	"go-agency/internal/promo"
	"go-agency/internal/rbac"
	"go-agency/internal/rbac/infra"
	"go-agency/internal/rbac/rbac_http"
	"go-agency/internal/shared/counter"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func registerModules(
	router *gin.Engine,
	db *sql.DB,
	gormDB *gorm.DB,
	rdb *redis.Client,
	reg prometheus.Registerer,
	logger *zap.Logger,
) error {
	// --- Repositories ---
	rbacRepo := rbac.NewRepository(gormDB)
	compPlanRepo := compplan.NewRepository(gormDB)
	promoRepo := promo.NewRepository(gormDB)
	payoutRepo := payout.NewRepository(gormDB)
	counterRepo := counter.NewRepository(gormDB)
	outboxRepo := kafka.NewOutboxRepository(db)

	// --- RBAC Core ---
	enforcer, err := infra.NewEnforcer(os.Getenv("RBAC_MODEL_PATH"))
	if err != nil {
		return err
	}
	rbacService := rbac.NewService(rbacRepo, enforcer, logger)

	// --- Services ---
	compPlanService := compplan.NewService(db, compPlanRepo, logger)
	promoService := promo.NewService(db, promoRepo, rdb, logger)
	payoutService := payout.NewService(
		db,
		payoutRepo,
		compPlanService,
		promoService,
		counterRepo,
		outboxRepo,
		rdb,
		payout.NewMetrics(reg),
		logger,
	)

	// --- Handlers ---
	compPlanHandler := compplan.NewHandler(compPlanService, logger)
	promoHandler := promo.NewHandler(promoService, logger)
	payoutHandler := payout.NewHandler(payoutService, logger)
	rbacHandler := rbac.NewHandler(rbacService, logger)

	// --- Routes Registration ---
	api := router.Group("/api/v1", middleware.RateLimitByIP(20, 40))
	{
		compplan.RegisterRoutes(api, compPlanHandler, rbacService)
		promo.RegisterRoutes(api, promoHandler, rbacService)
		payout.RegisterRoutes(api, payoutHandler, rbacService, rdb)
		rbac_http.RegisterRoutes(api, rbacHandler, rbacService)
	}

	return nil
}
