package routes

import (
	"context"
	"errors"
	"log"
	"net/http"
	_ "openreaders_payments/docs"
	"openreaders_payments/internal/adapter/http/handlers"
	"openreaders_payments/internal/adapter/persistence/repository"
	"openreaders_payments/internal/config"
	"openreaders_payments/internal/infrastructure/database"
	"openreaders_payments/internal/infrastructure/payments"
	"openreaders_payments/internal/usecase"
	"openreaders_payments/internal/usecase/interfaces"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/cors"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// Dependencies are the use cases and settings the router serves.
type Dependencies struct {
	Orders            usecase.IOrderUseCase
	Payments          usecase.IPaymentUseCase
	GatewayConfigured bool
	AllowedOrigins    []string
}

// Run wires the payment server from cfg and serves until SIGINT/SIGTERM.
func Run(cfg *config.Config) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	deps, err := buildDependencies(ctx, cfg)
	if err != nil {
		return err
	}

	srv := &http.Server{
		Addr:         cfg.Addr(),
		Handler:      NewRouter(deps),
		ReadTimeout:  cfg.HTTP.ReadTimeout,
		WriteTimeout: cfg.HTTP.WriteTimeout,
		IdleTimeout:  time.Minute,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Printf("[server] listening addr=%s env=%s", srv.Addr, cfg.Environment.Name)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	log.Printf("[server] shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTP.ShutdownTimeout)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

// NewRouter builds the gin engine and wraps it with CORS handling.
func NewRouter(deps Dependencies) http.Handler {
	router := gin.New()
	router.HandleMethodNotAllowed = true
	setMiddlewares(router)

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	paymentHandler := handlers.NewPaymentHandler(deps.Orders, deps.Payments)
	healthHandler := handlers.NewHealthHandler(deps.GatewayConfigured)

	// The same endpoints are served at the root and under /api.
	addPaymentRoutes(router, paymentHandler, healthHandler)
	api := router.Group("/api")
	addPaymentRoutes(api, paymentHandler, healthHandler)
	addLedgerRoutes(api, paymentHandler)

	router.NoMethod(func(c *gin.Context) {
		c.JSON(http.StatusMethodNotAllowed, gin.H{"error": "Method not allowed"})
	})
	router.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Not found"})
	})

	return newCORS(deps.AllowedOrigins).Handler(router)
}

func newCORS(origins []string) *cors.Cors {
	if len(origins) == 0 {
		origins = []string{"*"}
	}
	return cors.New(cors.Options{
		AllowedOrigins:       origins,
		AllowedMethods:       []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders:       []string{"Content-Type", "Authorization", "X-Requested-With", "Accept"},
		OptionsSuccessStatus: http.StatusOK,
	})
}

func buildDependencies(ctx context.Context, cfg *config.Config) (Dependencies, error) {
	var gateway interfaces.IOrderGateway
	rzp, err := payments.NewRazorpayGateway(cfg.Razorpay, cfg.GatewayMockEnabled(), nil)
	if err != nil {
		log.Printf("[payment][gateway] razorpay gateway not configured: %v", err)
	} else {
		gateway = rzp
	}

	var ledger interfaces.IPaymentLedgerRepository
	if cfg.Ledger.Enabled {
		ddb, err := database.ConnectDynamoDB(ctx, cfg.Dynamo)
		if err != nil {
			return Dependencies{}, err
		}
		ledger = repository.NewPaymentLedgerDynamoRepository(ddb, cfg.Ledger.PaymentsTable)
		log.Printf("[payment][ledger] enabled table=%s", cfg.Ledger.PaymentsTable)
	}

	return Dependencies{
		Orders:            usecase.NewOrderUseCase(gateway),
		Payments:          usecase.NewPaymentUseCase(cfg.Razorpay.KeySecret, ledger),
		GatewayConfigured: cfg.Razorpay.GatewayConfigured(),
		AllowedOrigins:    cfg.CORS.AllowedOrigins,
	}, nil
}

func setMiddlewares(router *gin.Engine) {
	router.Use(gin.Logger())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
	}))
}
