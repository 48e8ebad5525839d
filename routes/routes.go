package routes

import (
	"time"

	"aspcare/config"
	"aspcare/handlers"
	"aspcare/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterAuthRoutes registers login, logout and session endpoints.
func RegisterAuthRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/auth")
	{
		api.POST("/otp/send", hb.SendOTPHandler)
		api.POST("/otp/verify", hb.VerifyOTPHandler)
		api.POST("/google", hb.GoogleLoginHandler)

		// Protected routes (Require Authentication)
		api.POST("/logout", middleware.SessionAuth(hb.Sessions), hb.LogoutHandler)
	}

	sessionGroup := r.Group("/api/session")
	{
		sessionGroup.Use(middleware.SessionAuth(hb.Sessions))
		sessionGroup.GET("", hb.GetSessionHandler)
		sessionGroup.PUT("/banners/:banner", hb.DismissBannerHandler)
	}
}

// RegisterAccountRoutes registers memberships, referrals, rewards and the profile.
func RegisterAccountRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api")
	api.Use(middleware.SessionAuth(hb.Sessions))
	{
		api.GET("/rewards", hb.GetRewardsHandler)
		api.GET("/profile", hb.GetProfileHandler)

		api.GET("/memberships/active", hb.GetActiveMembershipHandler)
		api.GET("/memberships", hb.GetMembershipsHandler)
		api.GET("/memberships/plans", hb.GetMembershipPlansHandler)
		api.POST("/memberships/purchase", hb.PurchaseMembershipHandler)

		api.POST("/referrals", hb.GenerateReferralHandler)
		api.GET("/referrals", hb.GetReferralsHandler)
	}
}

// RegisterDirectoryRoutes registers centre and deal lookups.
func RegisterDirectoryRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api")
	api.Use(middleware.SessionAuth(hb.Sessions))
	{
		api.GET("/centres/areas", hb.GetAreasHandler)
		api.GET("/centres", hb.SearchCentresHandler)
		api.GET("/deals", hb.GetDealsHandler)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", handlers.HealthHandler)
}

func corsConfig(origins []string) cors.Config {
	cfg := cors.Config{
		AllowMethods:  []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Authorization", "Content-Type", "X-Request-ID"},
		ExposeHeaders: []string{"Content-Length", "X-Request-ID"},
		MaxAge:        12 * time.Hour,
	}
	if len(origins) == 1 && origins[0] == "*" {
		cfg.AllowAllOrigins = true
		return cfg
	}
	cfg.AllowOrigins = origins
	cfg.AllowCredentials = true
	return cfg
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.Use(cors.New(corsConfig(config.AllowedOrigins())))

	RegisterHealthRoute(r)
	RegisterAuthRoutes(r, hb)
	RegisterBookingRoutes(r, hb)
	RegisterAccountRoutes(r, hb)
	RegisterDirectoryRoutes(r, hb)
}
