package routes

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	_ "nexus_settlement/docs"
	request "nexus_settlement/internal/adapter/http/dto/request"
	"nexus_settlement/internal/adapter/http/handlers"
	"nexus_settlement/internal/adapter/persistence/repository"
	"nexus_settlement/internal/infrastructure/clients"
	"nexus_settlement/internal/infrastructure/config"
	"nexus_settlement/internal/infrastructure/database"
	"nexus_settlement/internal/infrastructure/logger"
	"nexus_settlement/internal/infrastructure/messaging"
	"nexus_settlement/internal/usecase"
	"nexus_settlement/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
)

const (
	BasePath        = "/api/v1"
	shutdownTimeout = 15 * time.Second
)

// Handlers groups the HTTP handlers mounted by NewRouter.
type Handlers struct {
	FundingRequests *handlers.FundingRequestHandler
	Orders          *handlers.OrderHandler
}

// Run wires the service from cfg and serves HTTP until ctx is cancelled.
func Run(ctx context.Context, cfg *config.Config, log *zap.Logger) error {
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	if err := request.RegisterValidators(); err != nil {
		return err
	}

	ddb, err := database.ConnectDynamoDB(ctx, cfg.AWS)
	if err != nil {
		return err
	}

	notifier, stopNotifier, err := newNotifier(ctx, cfg.NATS, log)
	if err != nil {
		return err
	}
	defer stopNotifier()

	fundingRepo := repository.NewFundingRequestDynamoRepository(ddb, cfg.Tables.FundingRequests)
	fundingViews := repository.NewFundingRequestViewDynamoRepository(ddb, cfg.Tables.FundingRequestViews)
	orderRepo := repository.NewOrderDynamoRepository(ddb, cfg.Tables.Orders)
	orderViews := repository.NewOrderViewDynamoRepository(ddb, cfg.Tables.OrderViews)

	users := clients.NewUserServiceClient(cfg.Services.UserServiceURL, cfg.Services.HTTPTimeout, log)
	products := clients.NewProductServiceClient(cfg.Services.ProductServiceURL, cfg.Services.HTTPTimeout, log)

	fundingUseCase := usecase.NewFundingRequestUseCase(fundingRepo, fundingViews, users, log, cfg.Settlement.MinRequiredAmount)
	orderUseCase := usecase.NewOrderUseCase(usecase.OrderDependencies{
		Orders:   orderRepo,
		Views:    orderViews,
		Funding:  fundingRepo,
		Products: products,
		Users:    users,
		Wallet:   users,
		Notifier: notifier,
		EscrowID: cfg.Settlement.EscrowAccountID,
		Logger:   log,
	})

	router := NewRouter(log, Handlers{
		FundingRequests: handlers.NewFundingRequestHandler(fundingUseCase),
		Orders:          handlers.NewOrderHandler(orderUseCase),
	})

	srv := &http.Server{
		Addr:              ":" + cfg.App.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("[http] server starting", zap.String("addr", srv.Addr), zap.String("env", cfg.App.Env))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("failed to start the application: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	log.Info("[http] shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server forced to shutdown: %w", err)
	}
	log.Info("[http] server exited")
	return nil
}

// NewRouter builds the gin engine with middlewares and every route.
func NewRouter(log *zap.Logger, h Handlers) *gin.Engine {
	router := gin.New()
	setMiddlewares(router, log)

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	v1 := router.Group(BasePath)
	addPingRoutes(v1)
	addFundingRequestRoutes(v1, h.FundingRequests)
	addOrderRoutes(v1, h.Orders)
	return router
}

func setMiddlewares(router *gin.Engine, log *zap.Logger) {
	router.Use(logger.RequestID())
	router.Use(logger.GinMiddleware(log))
	router.Use(logger.Recovery(log))
}

// newNotifier returns the NATS publisher and starts its publish loop, or a
// logging stand-in when NATS is disabled. stop drains nothing: queued
// notifications are best-effort.
func newNotifier(ctx context.Context, cfg config.NATSConfig, log *zap.Logger) (interfaces.INotificationPublisher, func(), error) {
	if !cfg.Enabled {
		log.Info("[notify][nats] disabled")
		return messaging.DisabledPublisher{Log: log}, func() {}, nil
	}

	nc, js, err := messaging.Connect(cfg.URL, log)
	if err != nil {
		return nil, nil, err
	}
	if err := messaging.EnsureNotificationStream(ctx, js, cfg.Stream, cfg.Subject); err != nil {
		nc.Close()
		return nil, nil, err
	}

	publisher := messaging.NewNotificationPublisher(js, cfg.Subject, cfg.BufferSize, log)
	runCtx, cancel := context.WithCancel(context.WithoutCancel(ctx))
	go func() {
		_ = publisher.Run(runCtx)
	}()
	log.Info("[notify][nats] publishing", zap.String("url", cfg.URL), zap.String("subject", cfg.Subject))

	return publisher, func() {
		cancel()
		nc.Close()
	}, nil
}
