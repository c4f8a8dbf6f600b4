package main

import (
	"net/http"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"borrowbank.backend/internal/interfaces/http/handlers"
	"borrowbank.backend/internal/interfaces/http/middleware"
)

type routeDeps struct {
	authHandler     *handlers.AuthHandler
	borrowerHandler *handlers.BorrowerHandler
	businessHandler *handlers.BusinessHandler
	loanHandler     *handlers.LoanHandler
	homeHandler     *handlers.HomeHandler
	authMiddleware  gin.HandlerFunc
	borrowerGuard   gin.HandlerFunc
}

func registerAPIV1Routes(r *gin.Engine, d routeDeps) {
	v1 := r.Group("/api/v1")
	{
		// Auth routes (public)
		auth := v1.Group("/auth")
		{
			auth.POST("/register", d.authHandler.Register)
			auth.POST("/login", d.authHandler.Login)
			auth.POST("/refresh", d.authHandler.Refresh)
			auth.GET("/me", d.authMiddleware, d.authHandler.Me)
			auth.POST("/change-password", d.authMiddleware, d.authHandler.ChangePassword)
		}

		// Dashboard (any authenticated user)
		v1.GET("/home", d.authMiddleware, d.homeHandler.Summary)

		// Borrower activation (any authenticated user)
		borrowers := v1.Group("/borrowers")
		borrowers.Use(d.authMiddleware)
		{
			borrowers.POST("/verify-phone", d.borrowerHandler.VerifyPhone)
			borrowers.POST("/activate", d.borrowerHandler.Activate)
			borrowers.GET("/me", d.borrowerHandler.Me)
		}

		// Business routes (activated borrowers only)
		businesses := v1.Group("/businesses")
		businesses.Use(d.authMiddleware, d.borrowerGuard)
		{
			businesses.POST("", d.businessHandler.Create)
			businesses.GET("", d.businessHandler.List)
			businesses.GET("/:id", d.businessHandler.Get)
			businesses.PUT("/:id", d.businessHandler.Update)
			businesses.DELETE("/:id", d.businessHandler.Delete)
		}

		// Loan routes (activated borrowers only)
		loans := v1.Group("/loans")
		loans.Use(d.authMiddleware, d.borrowerGuard)
		{
			loans.POST("", middleware.Idempotency(), d.loanHandler.Create)
			loans.GET("", d.loanHandler.List)
			loans.GET("/:id", d.loanHandler.Get)
			loans.POST("/:id/cancel", d.loanHandler.Cancel)
		}
	}
}

func registerHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "ok",
			"service": "borrowbank-backend",
			"version": "0.1.0",
		})
	})
}

func registerMetricsRoute(r *gin.Engine) {
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))
}

func applyCORSMiddleware(r *gin.Engine) {
	allowedOrigin := os.Getenv("CORS_ALLOWED_ORIGIN")
	if allowedOrigin == "" {
		allowedOrigin = "http://localhost:3000"
	}

	r.Use(func(c *gin.Context) {
		origin := c.GetHeader("Origin")
		if origin == allowedOrigin {
			c.Header("Access-Control-Allow-Origin", origin)
			c.Header("Access-Control-Allow-Credentials", "true")
			c.Header("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
			c.Header("Access-Control-Allow-Headers", "Authorization, Content-Type, X-Session-Id, X-Request-ID, Idempotency-Key")
		}
		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}
		c.Next()
	})
}
