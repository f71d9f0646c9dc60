package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"fixmate_backend/internal/config"
	"fixmate_backend/internal/handlers"
	"fixmate_backend/internal/middleware"
	"fixmate_backend/internal/models"
	"fixmate_backend/internal/ratelimit"
	"fixmate_backend/internal/repositories"
)

// RegisterRoutes wires every endpoint onto the router. Session routes go
// through AuthMiddleware; admin routes additionally require the admin role.
func RegisterRoutes(
	r *gin.Engine,
	reg *handlers.Registry,
	userRepo repositories.UserRepository,
	limiter *ratelimit.Limiter,
	cfg *config.Config,
) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	authRequired := middleware.AuthMiddleware(userRepo)
	adminOnly := middleware.RequireRoles(models.UserRoleAdmin)

	users := r.Group("/users")
	{
		users.POST("/signup",
			middleware.RateLimitMiddleware(limiter, ratelimit.PurposeSignup, cfg.RateLimit.SignupLimit, cfg.RateLimit.SignupWindow),
			reg.Auth.Signup)
		users.POST("/login",
			middleware.RateLimitMiddleware(limiter, ratelimit.PurposeLogin, cfg.RateLimit.LoginLimit, cfg.RateLimit.LoginWindow),
			reg.Auth.Login)
		users.POST("/logout", reg.Auth.Logout)
		users.POST("/verify-email", reg.Auth.VerifyEmail)
		users.POST("/forgot-password", reg.Auth.ForgotPassword)
		users.POST("/reset-password", reg.Auth.ResetPassword)

		users.GET("/providers", reg.User.ListProviders)

		users.GET("/profile", authRequired, reg.User.GetProfile)
		users.PATCH("/profile", authRequired, reg.User.UpdateProfile)
		users.PATCH("/change-password", authRequired, reg.Auth.ChangePassword)
		users.PATCH("/onboarding", authRequired, reg.User.Onboarding)
	}

	jobs := r.Group("/jobs")
	{
		// Browsing the board is open to visitors.
		jobs.GET("", reg.Job.List)
	}
	jobs.Use(authRequired)
	{
		jobs.POST("/add", reg.Job.Create)
		jobs.GET("/my", reg.Job.ListMine)
		jobs.PATCH("/:id", reg.Job.Update)
		jobs.PATCH("/:id/end", reg.Job.Complete)
		jobs.POST("/:id/cancel", reg.Job.Cancel)
		jobs.POST("/:id/assign", reg.Job.Assign)
		jobs.POST("/:id/fund", reg.Job.Fund)
		jobs.POST("/:id/start", reg.Job.Start)
		jobs.POST("/:id/apply", reg.Job.Apply)
		jobs.POST("/:id/review", reg.Job.Review)
	}

	admins := r.Group("/admins")
	admins.Use(authRequired, adminOnly)
	{
		admins.GET("/providers/pending", reg.Admin.ListPendingProviders)
		admins.PATCH("/providers/:userId/verify", reg.Admin.VerifyProvider)
	}

	upload := r.Group("/upload")
	upload.Use(authRequired)
	{
		upload.POST("/image", reg.Upload.UploadImage)
	}
}
