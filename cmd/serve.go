package cmd

import (
	"context"
	"errors"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/vibast-solutions/ms-go-doclocks/app/controller"
	grpcserver "github.com/vibast-solutions/ms-go-doclocks/app/grpc"
	types "github.com/vibast-solutions/ms-go-doclocks/app/types"
	"github.com/vibast-solutions/ms-go-doclocks/config"
	"google.golang.org/grpc"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP and gRPC servers",
	Long:  "Start both HTTP (Echo) and gRPC servers for the document locks service, plus the expiry reaper.",
	Run:   runServe,
}

var serveWithoutReaper bool

// init registers the serve command.
func init() {
	serveCmd.Flags().BoolVar(&serveWithoutReaper, "no-reaper", false, "do not run the expiry reaper in this process")
	rootCmd.AddCommand(serveCmd)
}

// httpControllers groups the HTTP handlers mounted by setupHTTPServer.
type httpControllers struct {
	exclusive *controller.ExclusiveLockController
	advisory  *controller.AdvisoryLockController
	guard     *controller.WriteGuardController
}

// runServe wires dependencies and starts HTTP and gRPC servers.
func runServe(_ *cobra.Command, _ []string) {
	cfg, err := config.Load()
	if err != nil {
		logrus.Fatalf("Failed to load configuration: %v", err)
	}
	logger := newLogger(cfg.LogLevel, cfg.LogFormat)

	rt, err := bootstrap(context.Background(), cfg, logger)
	if err != nil {
		logger.WithError(err).Fatal("Failed to initialize dependencies")
	}
	defer rt.Close()

	exclusive := rt.exclusiveService()
	advisory := rt.advisoryService()
	guard := rt.guardService()

	e := setupHTTPServer(httpControllers{
		exclusive: controller.NewExclusiveLockController(exclusive, logger),
		advisory:  controller.NewAdvisoryLockController(advisory, logger),
		guard:     controller.NewWriteGuardController(guard, logger),
	})
	grpcServer, lis, err := setupGRPCServer(cfg, grpcserver.NewServer(exclusive, advisory, guard, logger))
	if err != nil {
		logger.WithError(err).Fatal("Failed to listen on gRPC port")
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	reaperDone := make(chan struct{})
	if serveWithoutReaper {
		close(reaperDone)
	} else {
		go func() {
			defer close(reaperDone)
			rt.reaper().Run(ctx)
		}()
	}

	go func() {
		httpAddr := net.JoinHostPort(cfg.HTTPHost, cfg.HTTPPort)
		logger.Infof("Starting HTTP server on %s", httpAddr)
		if err := e.Start(httpAddr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.WithError(err).Fatal("HTTP server error")
		}
	}()

	go func() {
		logger.Infof("Starting gRPC server on %s", lis.Addr())
		if err := grpcServer.Serve(lis); err != nil {
			logger.WithError(err).Fatal("gRPC server error")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("Shutting down...")

	cancel()
	<-reaperDone

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := e.Shutdown(shutdownCtx); err != nil {
		logger.WithError(err).Warn("HTTP shutdown error")
	}
	grpcServer.GracefulStop()

	logger.Info("Server stopped")
}

// setupHTTPServer configures the Echo HTTP server and routes.
func setupHTTPServer(c httpControllers) *echo.Echo {
	e := echo.New()
	e.HideBanner = true

	e.Use(echomiddleware.Logger())
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.CORS())

	locks := e.Group("/locks")

	exclusive := locks.Group("/exclusive")
	exclusive.POST("", c.exclusive.Acquire)
	exclusive.GET("", c.exclusive.List)
	exclusive.POST("/:id/heartbeat", c.exclusive.Heartbeat)
	exclusive.POST("/:id/release", c.exclusive.Release)

	advisory := locks.Group("/advisory")
	advisory.POST("", c.advisory.Acquire)
	advisory.GET("", c.advisory.List)
	advisory.POST("/:id/heartbeat", c.advisory.Heartbeat)
	advisory.POST("/:id/release", c.advisory.Release)

	locks.POST("/check", c.guard.Check)

	e.GET("/health", func(ctx echo.Context) error {
		return ctx.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})

	return e
}

// setupGRPCServer builds the gRPC server and listener.
func setupGRPCServer(cfg *config.Config, locksServer *grpcserver.Server) (*grpc.Server, net.Listener, error) {
	grpcAddr := net.JoinHostPort(cfg.GRPCHost, cfg.GRPCPort)
	lis, err := net.Listen("tcp", grpcAddr)
	if err != nil {
		return nil, nil, err
	}

	grpcServer := grpc.NewServer()
	types.RegisterDocumentLocksServiceServer(grpcServer, locksServer)

	return grpcServer, lis, nil
}
