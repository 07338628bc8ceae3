package routes

import (
	"log"

	"firmdesk-backend/internal/api/handlers"
	"firmdesk-backend/internal/api/middleware"
	"firmdesk-backend/internal/auth"
	"firmdesk-backend/internal/config"
	"firmdesk-backend/internal/repository"
	"firmdesk-backend/internal/service"
	"firmdesk-backend/internal/tenant"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"
)

// SetupRoutes configures all the routes for the application
func SetupRoutes(db *gorm.DB, cfg *config.Config) (*gin.Engine, error) {
	// Create router
	router := gin.New()

	// Add middleware
	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.CORS(cfg))

	// Initialize validator
	validate := validator.New()

	// Initialize repositories
	organizationRepo := repository.NewOrganizationRepository(db)
	userRepo := repository.NewUserRepository(db)
	membershipRepo := repository.NewMembershipRepository(db)
	clientRepo := repository.NewClientRepository(db)
	documentRepo := repository.NewDocumentRepository(db)
	appointmentRepo := repository.NewAppointmentRepository(db)
	taxCalculationRepo := repository.NewTaxCalculationRepository(db)
	invoiceRepo := repository.NewInvoiceRepository(db)
	auditLogRepo := repository.NewAuditLogRepository(db)

	// Initialize tenant resolution
	resolver := tenant.NewResolver(membershipRepo)

	// Initialize services
	organizationService := service.NewOrganizationService(organizationRepo, userRepo, validate)
	memberService := service.NewMemberService(userRepo, membershipRepo, validate)
	clientService := service.NewClientService(clientRepo, validate)
	documentService := service.NewDocumentService(documentRepo, clientRepo, validate)
	appointmentService := service.NewAppointmentService(appointmentRepo, clientRepo, membershipRepo, validate)
	taxCalculationService := service.NewTaxCalculationService(taxCalculationRepo, clientRepo, validate)
	invoiceService := service.NewInvoiceService(invoiceRepo, clientRepo, validate)
	auditService := service.NewAuditService(auditLogRepo)
	directoryService := service.NewDirectoryService(cfg)

	// Initialize auth configuration and services
	authConfig, err := auth.LoadAuthConfig(cfg.OAuthConfigPath)
	if err != nil {
		return nil, err
	}
	authService, err := auth.NewAuthService(authConfig, userRepo)
	if err != nil {
		return nil, err
	}
	authHandler := auth.NewAuthHandler(authService)
	authMiddleware := auth.NewAuthMiddleware(authService, resolver)

	if len(authConfig.Providers) == 0 {
		log.Printf("No OAuth providers configured, password login only")
	}

	// Initialize handlers
	healthHandler := handlers.NewHealthHandler(db)
	organizationHandler := handlers.NewOrganizationHandler(organizationService)
	memberHandler := handlers.NewMemberHandler(memberService)
	clientHandler := handlers.NewClientHandler(clientService)
	documentHandler := handlers.NewDocumentHandler(documentService)
	appointmentHandler := handlers.NewAppointmentHandler(appointmentService)
	taxCalculationHandler := handlers.NewTaxCalculationHandler(taxCalculationService)
	invoiceHandler := handlers.NewInvoiceHandler(invoiceService)
	auditHandler := handlers.NewAuditHandler(auditService)
	directoryHandler := handlers.NewDirectoryHandler(directoryService)

	// Health check routes
	router.GET("/health", healthHandler.Health)
	router.GET("/health/ready", healthHandler.Ready)
	router.GET("/health/live", healthHandler.Live)

	// Swagger documentation route
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Public routes: registration, password login and OAuth flows
	public := router.Group("/api/v1")
	{
		public.POST("/users/register", memberHandler.Register)
		public.POST("/auth/login", authHandler.Login)
		public.POST("/auth/refresh", authHandler.Refresh)
		public.POST("/auth/logout", authHandler.Logout)

		providerGroup := public.Group("/auth/:provider")
		{
			providerGroup.GET("/start", authHandler.Start)
			providerGroup.GET("/callback", authHandler.Callback)
		}
	}

	// Authenticated routes that do not require an organization selection
	authed := router.Group("/api/v1")
	authed.Use(authMiddleware.RequireAuth())
	{
		authed.GET("/auth/validate", authHandler.Validate)
		authed.GET("/users/me/memberships", memberHandler.ListMyMemberships)
		authed.POST("/organizations", organizationHandler.CreateOrganization)
	}

	// Tenant-scoped routes: require authentication plus the
	// X-Organization-ID header resolving to an active membership
	v1 := router.Group("/api/v1")
	v1.Use(authMiddleware.RequireAuth())
	v1.Use(authMiddleware.RequireTenant())
	{
		// Acting organization routes
		organization := v1.Group("/organization")
		{
			organization.GET("", organizationHandler.GetOrganization)
			organization.PUT("", organizationHandler.UpdateOrganization)
			organization.DELETE("", organizationHandler.DeactivateOrganization)
		}

		// Member routes
		members := v1.Group("/members")
		{
			members.GET("", memberHandler.ListMembers)
			members.POST("", memberHandler.AddMember)
			members.PUT("/:user_id/role", memberHandler.UpdateMemberRole)
			members.DELETE("/:user_id", memberHandler.RemoveMember)
		}

		// Client routes
		clients := v1.Group("/clients")
		{
			clients.GET("", clientHandler.ListClients)
			clients.POST("", clientHandler.CreateClient)
			clients.GET("/:id", clientHandler.GetClient)
			clients.PUT("/:id", clientHandler.UpdateClient)
			clients.DELETE("/:id", clientHandler.DeleteClient)
		}

		// Document routes
		documents := v1.Group("/documents")
		{
			documents.GET("", documentHandler.ListDocuments)
			documents.POST("", documentHandler.CreateDocument)
			documents.GET("/:id", documentHandler.GetDocument)
			documents.PUT("/:id", documentHandler.UpdateDocument)
			documents.DELETE("/:id", documentHandler.DeleteDocument)
		}

		// Appointment routes
		appointments := v1.Group("/appointments")
		{
			appointments.GET("", appointmentHandler.ListAppointments)
			appointments.POST("", appointmentHandler.CreateAppointment)
			appointments.GET("/:id", appointmentHandler.GetAppointment)
			appointments.PUT("/:id", appointmentHandler.UpdateAppointment)
			appointments.DELETE("/:id", appointmentHandler.DeleteAppointment)
		}

		// Tax calculation routes
		taxCalculations := v1.Group("/tax-calculations")
		{
			taxCalculations.GET("", taxCalculationHandler.ListTaxCalculations)
			taxCalculations.POST("", taxCalculationHandler.CreateTaxCalculation)
			taxCalculations.GET("/:id", taxCalculationHandler.GetTaxCalculation)
			taxCalculations.PUT("/:id", taxCalculationHandler.UpdateTaxCalculation)
			taxCalculations.DELETE("/:id", taxCalculationHandler.DeleteTaxCalculation)
		}

		// Invoice routes
		invoices := v1.Group("/invoices")
		{
			invoices.GET("", invoiceHandler.ListInvoices)
			invoices.POST("", invoiceHandler.CreateInvoice)
			invoices.GET("/:id", invoiceHandler.GetInvoice)
			invoices.PUT("/:id", invoiceHandler.UpdateInvoice)
			invoices.DELETE("/:id", invoiceHandler.DeleteInvoice)
		}

		// Audit trail routes (read only)
		auditLogs := v1.Group("/audit-logs")
		{
			auditLogs.GET("", auditHandler.ListAuditLogs)
			auditLogs.GET("/:id", auditHandler.GetAuditLog)
		}

		// Staff directory routes
		directory := v1.Group("/directory")
		{
			directory.GET("/search", directoryHandler.SearchDirectory)
		}
	}

	return router, nil
}
