package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"
	"gorm.io/gorm"

	"github.com/opentalent/recruitment-platform/internal/api/handler"
	"github.com/opentalent/recruitment-platform/internal/api/middleware"
	"github.com/opentalent/recruitment-platform/internal/core/domain"
	"github.com/opentalent/recruitment-platform/internal/core/ports"
	"github.com/opentalent/recruitment-platform/internal/core/session"
)

// Dependencies carries everything the router needs wired in from main.
type Dependencies struct {
	DB     *gorm.DB
	Mongo  *mongo.Client
	Redis  *redis.Client
	Users  ports.UserRepository
	Logger zerolog.Logger

	Sessions *session.Manager

	Auth       ports.AuthService
	UserSvc    ports.UserService
	Jobs       ports.JobService
	JobSeekers ports.JobSeekerService
	Activities ports.ActivityService
	Emails     ports.EmailService
	Payments   ports.PaymentService

	BaseURL   string
	UploadDir string
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(deps Dependencies) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(deps.Logger)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("recruitment"))

	// Every request resolves its principal; routes opt into enforcement
	// with RequireAuth / RequireRole.
	e.Use(middleware.ResolvePrincipal(deps.Sessions, deps.Users))

	requireAuth := middleware.RequireAuth()
	adminOnly := middleware.RequireRole(domain.RoleAdmin)

	// --- Handlers ---
	authHandler := handler.NewAuthHandler(deps.Auth, deps.Activities, deps.Sessions)
	userHandler := handler.NewUserHandler(deps.UserSvc, deps.Auth, deps.Activities, deps.Sessions)
	jobHandler := handler.NewJobHandler(deps.Jobs, deps.Activities)
	seekerHandler := handler.NewJobSeekerHandler(deps.JobSeekers, deps.Activities)
	activityHandler := handler.NewActivityHandler(deps.Activities)
	emailHandler := handler.NewEmailHandler(deps.Emails, deps.BaseURL, deps.Logger)
	paymentHandler := handler.NewPaymentHandler(deps.Payments)
	uploadHandler := handler.NewUploadHandler(deps.UploadDir)
	healthHandler := handler.NewHealthHandler(deps.DB, deps.Mongo, deps.Redis)

	// --- Probes and metrics ---
	e.GET("/health", healthHandler.Live)
	e.GET("/health/ready", healthHandler.Ready)
	e.GET("/metrics", echoprometheus.NewHandler())

	api := e.Group("/api")

	// --- Auth ---
	auth := api.Group("/auth")
	auth.POST("/register", authHandler.Register)
	auth.POST("/login", authHandler.Login)
	auth.POST("/logout", authHandler.Logout)

	// --- Account ---
	users := api.Group("/users")
	users.GET("/me", userHandler.Me, requireAuth)
	users.PUT("/me", userHandler.UpdateMe, requireAuth)
	users.PUT("/me/password", userHandler.ChangePassword, requireAuth)
	users.DELETE("/me", userHandler.DeleteMe, requireAuth)
	users.GET("", userHandler.List, requireAuth, adminOnly)
	users.PUT("/:id/payment", userHandler.SetPaymentStatus, requireAuth, adminOnly)

	// --- Public consultant directory ---
	api.GET("/consultants", userHandler.Consultants)
	api.GET("/consultants/:id", userHandler.Consultant)

	// --- Jobs ---
	jobs := api.Group("/jobs")
	jobs.GET("", jobHandler.List)
	jobs.GET("/search", jobHandler.Search)
	jobs.GET("/:id", jobHandler.Get)
	jobs.POST("", jobHandler.Create, requireAuth)
	jobs.PUT("/:id", jobHandler.Update, requireAuth)
	jobs.POST("/:id/close", jobHandler.Close, requireAuth)

	// --- Job seekers ---
	seekers := api.Group("/job-seekers", requireAuth)
	seekers.POST("", seekerHandler.Create)
	seekers.GET("", seekerHandler.List)
	seekers.GET("/search", seekerHandler.Search)
	seekers.GET("/:id", seekerHandler.Get)
	seekers.PUT("/:id", seekerHandler.Update)
	seekers.DELETE("/:id", seekerHandler.Delete)

	// --- Activity trail ---
	activities := api.Group("/activities", requireAuth)
	activities.GET("", activityHandler.Recent, adminOnly)
	activities.GET("/users/:id", activityHandler.ForUser)
	activities.GET("/:type/:id", activityHandler.ForEntity, adminOnly)

	// --- OTP and reset flows (public, enumeration-resistant) ---
	emailAuth := api.Group("/email-auth")
	emailAuth.POST("/send-otp", emailHandler.SendOTP)
	emailAuth.POST("/verify-otp", emailHandler.VerifyOTP)
	emailAuth.POST("/request-reset", emailHandler.RequestReset)
	emailAuth.POST("/welcome", emailHandler.SendWelcome)

	// --- Transactional mail ---
	emails := api.Group("/emails")
	emails.POST("/send", emailHandler.Send, requireAuth)
	emails.POST("/job-seeker", emailHandler.SendJobSeeker, requireAuth)
	emails.POST("/job-opportunity", emailHandler.SendJobOpportunity, requireAuth)
	emails.POST("/support", emailHandler.SendSupport)

	// --- Payments ---
	api.POST("/checkout", paymentHandler.Checkout, requireAuth)
	api.GET("/checkout/:id", paymentHandler.Status, requireAuth)

	// --- Uploads ---
	api.POST("/upload/resume", uploadHandler.Resume, requireAuth)
	e.Static("/uploads", deps.UploadDir)

	return e
}
