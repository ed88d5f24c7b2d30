package server

import (
	"time"

	"fitadmin/internal/attendance"
	"fitadmin/internal/auth"
	"fitadmin/internal/client"
	"fitadmin/internal/config"
	"fitadmin/internal/email"
	"fitadmin/internal/facility"
	"fitadmin/internal/payment"
	"fitadmin/internal/plan"
	"fitadmin/internal/subscription"
	"fitadmin/internal/user"

	"github.com/gin-gonic/gin"
	"github.com/jmoiron/sqlx"
)

type Server struct {
	router *gin.Engine
	db     *sqlx.DB
	config *config.Config
}

func New(db *sqlx.DB, cfg *config.Config, emailService *email.Service) *Server {
	router := gin.Default()
	router.Use(corsMiddleware())
	router.Use(RequestLoggingMiddleware())
	router.Use(MetricsMiddleware())

	limiter := NewRateLimiter(20, 40, 10*time.Minute)
	router.Use(limiter.Middleware())

	subscriptionRepo := subscription.NewRepository(db)
	facilityRepo := facility.NewRepository(db)
	planRepo := plan.NewRepository(db)
	clientRepo := client.NewRepository(db)
	paymentRepo := payment.NewRepository(db)
	attendanceRepo := attendance.NewRepository(db)
	userRepo := user.NewRepository(db)

	subscriptionService := subscription.NewService(subscriptionRepo)
	facilityService := facility.NewService(facilityRepo, subscriptionRepo, emailService)
	planService := plan.NewService(planRepo)
	clientService := client.NewService(clientRepo, planRepo, facilityService)
	paymentService := payment.NewService(paymentRepo, clientRepo, planRepo)
	attendanceService := attendance.NewService(attendanceRepo, clientRepo)
	userService := user.NewService(userRepo, facilityService, cfg.JWTSecret)

	subscriptionHandler := subscription.NewHandler(subscriptionService)
	facilityHandler := facility.NewHandler(facilityService)
	planHandler := plan.NewHandler(planService)
	clientHandler := client.NewHandler(clientService)
	paymentHandler := payment.NewHandler(paymentService)
	attendanceHandler := attendance.NewHandler(attendanceService)
	userHandler := user.NewHandler(userService)

	public := router.Group("/api/auth")
	{
		public.POST("/login", userHandler.Login)
		public.POST("/refresh", userHandler.Refresh)
	}

	authMiddleware := auth.AuthMiddleware(cfg.JWTSecret)

	authed := router.Group("/api")
	authed.Use(authMiddleware)
	{
		authed.GET("/me", userHandler.GetMe)
		authed.GET("/facility-types", facilityHandler.ListTypes)
	}

	// Platform administration: superadmin only.
	platform := router.Group("/api")
	platform.Use(authMiddleware, auth.RequireRole(auth.RoleSuperadmin))
	{
		platform.POST("/facilities", facilityHandler.CreateFacility)
		platform.GET("/facilities", facilityHandler.ListFacilities)
		platform.GET("/facilities/:id", facilityHandler.GetFacility)
		platform.POST("/facilities/:id/assign-plan", facilityHandler.AssignPlan)
		platform.POST("/facilities/:id/subscription-update", facilityHandler.UpdateSubscription)

		platform.POST("/subscription-plans", subscriptionHandler.CreatePlan)
		platform.GET("/subscription-plans", subscriptionHandler.ListPlans)
		platform.GET("/subscription-plans/:id", subscriptionHandler.GetPlan)
		platform.PUT("/subscription-plans/:id", subscriptionHandler.UpdatePlan)
		platform.DELETE("/subscription-plans/:id", subscriptionHandler.DeletePlan)

		platform.POST("/facility-types", facilityHandler.CreateType)
	}

	// Own-facility subscription status: readable even when the subscription is
	// blocked or expired, since this is what the dashboard's blocking screen
	// shows. Runs the lazy expiry check.
	subStatus := router.Group("/api")
	subStatus.Use(authMiddleware, auth.RequireRole(auth.RoleAdmin, auth.RoleTrainer))
	{
		subStatus.GET("/facility/subscription", facilityHandler.GetOwnSubscription)
	}

	// Day-to-day facility operations: blocked while the subscription is not
	// active.
	subscriptionGuard := facility.RequireActiveSubscription(facilityService)

	ops := router.Group("/api")
	ops.Use(authMiddleware, auth.RequireRole(auth.RoleAdmin, auth.RoleTrainer), subscriptionGuard)
	{
		ops.POST("/clients", clientHandler.Create)
		ops.GET("/clients", clientHandler.List)
		ops.GET("/clients/:id", clientHandler.Get)
		ops.PUT("/clients/:id", clientHandler.Update)
		ops.DELETE("/clients/:id", clientHandler.Delete)
		ops.GET("/clients/:id/payments", paymentHandler.ListByClient)
		ops.GET("/clients/:id/attendance", attendanceHandler.ListByClient)

		ops.POST("/payments", paymentHandler.Record)
		ops.GET("/payments", paymentHandler.List)

		ops.POST("/attendance", attendanceHandler.CheckIn)
		ops.GET("/attendance", attendanceHandler.ListByDate)
	}

	// Plan and staff management: facility admin only.
	manage := router.Group("/api")
	manage.Use(authMiddleware, auth.RequireRole(auth.RoleAdmin), subscriptionGuard)
	{
		manage.POST("/plans", planHandler.Create)
		manage.GET("/plans", planHandler.List)
		manage.GET("/plans/:id", planHandler.Get)
		manage.PUT("/plans/:id", planHandler.Update)
		manage.DELETE("/plans/:id", planHandler.Delete)

		manage.POST("/staff", userHandler.CreateStaff)
		manage.GET("/staff", userHandler.ListStaff)
		manage.DELETE("/staff/:id", userHandler.DeleteStaff)
	}

	registerSystemRoutes(router, db)
	SetupSwagger(router)

	return &Server{
		router: router,
		db:     db,
		config: cfg,
	}
}

func (s *Server) Start(port string) error {
	addr := ":" + port
	return s.router.Run(addr)
}

func (s *Server) Router() *gin.Engine {
	return s.router
}

func corsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, X-CSRF-Token, Authorization, accept, origin, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT, DELETE, PATCH")
		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}
		c.Next()
	}
}
