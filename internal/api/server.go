package api

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/angadsxngh/rent-management-backend/internal/domain"
	"github.com/angadsxngh/rent-management-backend/internal/metrics"
	"github.com/angadsxngh/rent-management-backend/internal/middleware"
	"github.com/angadsxngh/rent-management-backend/pkg/logger"
)

const maxRequestBytes = 1 << 20

// Services groups the business services the HTTP surface dispatches to.
type Services struct {
	Auth     AuthService
	Property PropertyService
	Request  RequestService
	Ledger   LedgerService
	Jobs     JobService
}

type Server struct {
	authHandler     *AuthHandler
	propertyHandler *PropertyHandler
	requestHandler  *RequestHandler
	ledgerHandler   *LedgerHandler
	jobHandler      *JobHandler
	auth            *middleware.AuthMiddleware
	rateLimit       *middleware.RateLimitMiddleware
	validation      *middleware.ValidationMiddleware
	globalLimit     int
	metrics         *metrics.Metrics
	logger          *logger.Logger
}

func NewServer(
	services Services,
	auth *middleware.AuthMiddleware,
	rateLimit *middleware.RateLimitMiddleware,
	validation *middleware.ValidationMiddleware,
	globalLimit int,
	metrics *metrics.Metrics,
	logger *logger.Logger,
) *Server {
	return &Server{
		authHandler:     NewAuthHandler(services.Auth),
		propertyHandler: NewPropertyHandler(services.Property),
		requestHandler:  NewRequestHandler(services.Request),
		ledgerHandler:   NewLedgerHandler(services.Ledger),
		jobHandler:      NewJobHandler(services.Jobs),
		auth:            auth,
		rateLimit:       rateLimit,
		validation:      validation,
		globalLimit:     globalLimit,
		metrics:         metrics,
		logger:          logger,
	}
}

func (s *Server) SetupRoutes(api *gin.RouterGroup) {
	api.Use(s.observe())
	api.Use(s.validation.BlockSuspiciousPatterns())
	api.Use(s.validation.ValidateRequestSize(maxRequestBytes))
	api.Use(s.validation.ValidateContentType("application/json"))
	api.Use(s.rateLimit.GlobalRateLimit(s.globalLimit))

	auth := api.Group("/auth")
	{
		auth.POST("/register", s.authHandler.Register)
		auth.POST("/login", s.authHandler.Login)
	}

	authed := api.Group("", s.auth.JWTAuth(), s.rateLimit.AccountRateLimit())
	{
		authed.GET("/me", s.authHandler.Me)
		authed.DELETE("/me", s.authHandler.DeleteAccount)

		owner := s.auth.RequireRole(domain.RoleOwner)
		tenant := s.auth.RequireRole(domain.RoleTenant)
		member := s.auth.RequireAnyRole(domain.RoleOwner, domain.RoleTenant)

		properties := authed.Group("/properties")
		{
			properties.POST("", owner, s.propertyHandler.CreateProperty)
			properties.GET("", member, s.propertyHandler.ListProperties)
			properties.GET("/search", tenant, s.propertyHandler.SearchProperties)
			properties.GET("/balances", owner, s.propertyHandler.Balances)
			properties.GET("/:id", member, s.propertyHandler.GetProperty)
			properties.DELETE("/:id", owner, s.propertyHandler.DeleteProperty)
		}

		requests := authed.Group("/requests")
		{
			requests.POST("", tenant, s.requestHandler.SubmitRequest)
			requests.GET("", member, s.requestHandler.ListRequests)
			requests.POST("/accept", owner, s.requestHandler.AcceptRequest)
			requests.POST("/reject", owner, s.requestHandler.RejectRequest)
		}

		paymentRequests := authed.Group("/payment-requests")
		{
			paymentRequests.POST("", tenant, s.requestHandler.SubmitPaymentRequest)
			paymentRequests.POST("/:id/accept", owner, s.requestHandler.AcceptPaymentRequest)
		}

		authed.POST("/settlements", owner, s.ledgerHandler.Settle)
		authed.GET("/payments", member, s.ledgerHandler.ListPayments)

		authed.POST("/jobs/:job", s.auth.RequireAnyRole(domain.RoleOwner, domain.RoleAdmin), s.jobHandler.RunJob)
	}
}

// observe records endpoint latency and logs server-side failures attached by handlers.
func (s *Server) observe() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		status := c.Writer.Status()
		s.metrics.EndpointLatency.
			WithLabelValues(c.Request.Method, route, strconv.Itoa(status)).
			Observe(time.Since(start).Seconds())

		for _, err := range c.Errors {
			s.logger.Error("Request failed", err.Err,
				zap.String("method", c.Request.Method),
				zap.String("route", route),
				zap.Int("status", status),
			)
		}
	}
}
