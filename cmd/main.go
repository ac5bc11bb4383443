package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"repairshop/cmd/bootstrap"
	"repairshop/internal/domain/party"
	"repairshop/internal/pkg/config"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"go.uber.org/fx"
)

func init() {
	// never expose debug output because of a misconfiguration
	gin.SetMode(gin.ReleaseMode)

	if mode := os.Getenv("GIN_MODE"); mode != "" {
		gin.SetMode(mode)
	}
}

var rootCmd = &cobra.Command{
	Use:   "repairshop",
	Short: "Repair shop core: lift scheduling, service orders and parts",
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API",
	RunE:  runServe,
}

var (
	tokenMechanicID   string
	tokenMechanicName string
)

var tokenCmd = &cobra.Command{
	Use:   "token",
	Short: "Issue a session token for a mechanic",
	Long: `Issue a bearer token identifying the mechanic who operates the session.

Example:
  repairshop token --mechanic-id 3f0c... --name "Carlos"
`,
	RunE: runToken,
}

func init() {
	tokenCmd.Flags().StringVar(&tokenMechanicID, "mechanic-id", "", "Mechanic ID (generated when empty)")
	tokenCmd.Flags().StringVar(&tokenMechanicName, "name", "", "Mechanic name")
	_ = tokenCmd.MarkFlagRequired("name")

	rootCmd.AddCommand(serveCmd, tokenCmd)
}

// @title           repairshop
// @version         1.0
// @description     Lift scheduling, service order workflow and parts consumption for a repair shop.

// @BasePath  /api
// @schemes http https
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func startServer(lc fx.Lifecycle, engine *gin.Engine, cfg config.Config, logger *slog.Logger) {
	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			gin.EnableJsonDecoderDisallowUnknownFields()
			listenAddr := ":" + cfg.Server.Port
			logger.Info("Starting server", "address", listenAddr, "mode", gin.Mode())
			go func() {
				if err := engine.Run(listenAddr); err != nil {
					logger.Error("Server failed to start", "error", err)
				}
			}()
			return nil
		},
		OnStop: func(_ context.Context) error {
			logger.Info("Stopping server")
			return nil
		},
	})
}

func runServe(_ *cobra.Command, _ []string) error {
	app := fx.New(
		bootstrap.Module,
		fx.Provide(
			func() *gin.Engine {
				return gin.New()
			},
		),
		fx.Invoke(
			startServer,
		),
	)

	if err := app.Start(context.Background()); err != nil {
		return fmt.Errorf("start application: %w", err)
	}

	<-app.Done()

	if err := app.Stop(context.Background()); err != nil {
		slog.Error("Application did not stop cleanly", "error", err)
	}

	slog.Info("Application stopped")
	return nil
}

func runToken(cmd *cobra.Command, _ []string) error {
	cfg, err := config.LoadJWTConfig()
	if err != nil {
		return err
	}
	svc, err := bootstrap.JWTServiceFrom(cfg)
	if err != nil {
		return err
	}

	id := uuid.New()
	if tokenMechanicID != "" {
		if id, err = uuid.Parse(tokenMechanicID); err != nil {
			return fmt.Errorf("invalid --mechanic-id: %w", err)
		}
	}

	token, err := svc.GenerateToken(party.Mechanic{ID: id, Name: tokenMechanicName})
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), token)
	return nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
