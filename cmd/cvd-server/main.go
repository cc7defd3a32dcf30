package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/Spanday31/HOPE-8-CVD-RC/internal/config"
	"github.com/Spanday31/HOPE-8-CVD-RC/internal/domain/assessment"
	"github.com/Spanday31/HOPE-8-CVD-RC/internal/domain/risk"
	"github.com/Spanday31/HOPE-8-CVD-RC/internal/domain/session"
	"github.com/Spanday31/HOPE-8-CVD-RC/internal/domain/therapy"
	"github.com/Spanday31/HOPE-8-CVD-RC/internal/platform/auth"
	"github.com/Spanday31/HOPE-8-CVD-RC/internal/platform/middleware"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "cvd-server",
		Short: "SMART CVD risk reduction API server",
	}

	rootCmd.AddCommand(serveCmd())
	rootCmd.AddCommand(calcCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the CVD risk API server",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServer()
		},
	}
}

func runServer() error {
	// Logger
	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()
	if os.Getenv("ENV") == "development" {
		logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stdout}).With().Timestamp().Logger()
	}

	// Config
	cfg, err := config.Load()
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to load config")
	}
	if err := cfg.Validate(); err != nil {
		logger.Fatal().Err(err).Msg("invalid config")
	}

	// Session store
	ctx := context.Background()
	var store session.Store
	switch cfg.SessionBackend {
	case "redis":
		redisStore, err := session.NewRedisStore(ctx, cfg.RedisURL, cfg.SessionTTL())
		if err != nil {
			logger.Fatal().Err(err).Msg("failed to connect to redis")
		}
		defer redisStore.Close()
		store = redisStore
		logger.Info().Msg("using redis session store")
	default:
		store = session.NewMemoryStore(cfg.SessionTTL())
		logger.Info().Msg("using in-memory session store")
	}

	// Services
	riskSvc := risk.NewService()
	therapySvc := therapy.NewService()
	assessSvc := assessment.NewService(riskSvc, therapySvc)
	sessionSvc := session.NewService(store, therapySvc, assessSvc)

	// Echo server
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	// Global middleware
	e.Use(middleware.Recovery(logger))
	e.Use(middleware.RequestID())
	e.Use(middleware.Logger(logger))
	e.Use(echomw.CORSWithConfig(echomw.CORSConfig{
		AllowOrigins: cfg.CORSOrigins,
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete},
		AllowHeaders: []string{"Authorization", "Content-Type", "X-Request-ID"},
	}))

	// Auth middleware
	if cfg.IsDev() {
		e.Use(auth.DevAuthMiddleware())
	} else {
		e.Use(auth.JWTMiddleware(auth.JWTConfig{
			Issuer:     cfg.AuthIssuer,
			Audience:   cfg.AuthAudience,
			SigningKey: []byte(cfg.AuthSigningKey),
			Skipper:    auth.Skipper,
		}))
	}

	// API group
	apiV1 := e.Group("/api/v1")

	rateLimitCfg := middleware.RateLimitConfig{
		RequestsPerSecond: cfg.RateLimitRPS,
		BurstSize:         cfg.RateLimitBurst,
	}
	if rateLimitCfg.RequestsPerSecond <= 0 {
		rateLimitCfg = middleware.DefaultRateLimitConfig()
	}
	apiV1.Use(middleware.RateLimit(rateLimitCfg))

	// Health check
	e.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{
			"status":  "ok",
			"version": "0.1.0",
		})
	})

	// Domain routes
	risk.NewHandler(riskSvc).RegisterRoutes(apiV1)
	therapy.NewHandler(therapySvc).RegisterRoutes(apiV1)
	assessment.NewHandler(assessSvc).RegisterRoutes(apiV1)
	session.NewHandler(sessionSvc).RegisterRoutes(apiV1)

	// Graceful shutdown
	go func() {
		addr := ":" + cfg.Port
		logger.Info().Str("addr", addr).Msg("starting server")
		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			logger.Fatal().Err(err).Msg("server error")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info().Msg("shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		logger.Fatal().Err(err).Msg("server shutdown failed")
	}
	logger.Info().Msg("server stopped")
	return nil
}

func calcCmd() *cobra.Command {
	var (
		in    risk.PatientInputs
		pre   []string
		newTx []string
		asCSV bool
	)

	cmd := &cobra.Command{
		Use:   "calc",
		Short: "Run a one-off risk assessment from the command line",
		RunE: func(cmd *cobra.Command, args []string) error {
			riskSvc := risk.NewService()
			therapySvc := therapy.NewService()
			assessSvc := assessment.NewService(riskSvc, therapySvc)

			res, err := assessSvc.Evaluate(cmd.Context(), &assessment.Request{
				Patient: in,
				Therapies: therapy.Selection{
					PreAdmission:   pre,
					NewlyInitiated: newTx,
				},
			})
			if err != nil {
				return err
			}

			if asCSV {
				return assessment.WriteCSV(cmd.OutOrStdout(), res)
			}
			printResult(cmd, res)
			return nil
		},
	}

	flags := cmd.Flags()
	flags.IntVar(&in.Age, "age", 60, "age in years (30-90)")
	flags.StringVar(&in.Sex, "sex", risk.SexMale, "sex (male or female)")
	flags.Float64Var(&in.WeightKg, "weight", 75, "weight in kg")
	flags.Float64Var(&in.HeightCm, "height", 170, "height in cm")
	flags.BoolVar(&in.Smoker, "smoker", false, "current smoker")
	flags.BoolVar(&in.Diabetes, "diabetes", false, "diabetes")
	flags.BoolVar(&in.VascCoronary, "coronary", false, "coronary artery disease")
	flags.BoolVar(&in.VascCerebral, "cerebrovascular", false, "cerebrovascular disease")
	flags.BoolVar(&in.VascPeripheral, "peripheral", false, "peripheral artery disease")
	flags.Float64Var(&in.EGFR, "egfr", 90, "eGFR in mL/min/1.73m2")
	flags.Float64Var(&in.TotalChol, "tc", 5.2, "total cholesterol in mmol/L")
	flags.Float64Var(&in.HDL, "hdl", 1.3, "HDL cholesterol in mmol/L")
	flags.Float64Var(&in.LDL, "ldl", 3.0, "baseline LDL cholesterol in mmol/L")
	flags.Float64Var(&in.CRP, "crp", 2.5, "hs-CRP in mg/L")
	flags.Float64Var(&in.HbA1c, "hba1c", 7.0, "HbA1c in %")
	flags.Float64Var(&in.Triglycerides, "tg", 1.2, "triglycerides in mmol/L")
	flags.Float64Var(&in.SBP, "sbp", 140, "systolic blood pressure in mmHg")
	flags.StringSliceVar(&pre, "pre", nil, "pre-admission therapies")
	flags.StringSliceVar(&newTx, "new", nil, "newly initiated therapies")
	flags.BoolVar(&asCSV, "csv", false, "print results as CSV")

	return cmd
}

func printResult(cmd *cobra.Command, res *assessment.Result) {
	out := cmd.OutOrStdout()

	fmt.Fprintf(out, "BMI:             %.1f\n", res.Risk.BMI)
	fmt.Fprintf(out, "5-year risk:     %.1f%%\n", res.Risk.FiveYear)
	fmt.Fprintf(out, "10-year risk:    %.1f%%\n", res.Risk.TenYear)
	if res.Risk.Lifetime != nil {
		fmt.Fprintf(out, "Lifetime risk:   %.1f%%\n", *res.Risk.Lifetime)
	} else {
		fmt.Fprintln(out, "Lifetime risk:   n/a (age 85 or above)")
	}

	p := res.Projection
	fmt.Fprintf(out, "Baseline LDL:    %.2f mmol/L\n", p.BaselineLDL)
	fmt.Fprintf(out, "Projected LDL:   %.2f mmol/L\n", p.ProjectedLDL)
	for _, a := range p.Applied {
		fmt.Fprintf(out, "  %-22s -%2.0f%%  -> %.2f mmol/L\n", a.Agent, a.LDLReduction*100, a.LDLAfter)
	}
	fmt.Fprintf(out, "PCSK9i eligible:      %v\n", p.PCSK9Eligible)
	fmt.Fprintf(out, "Inclisiran eligible:  %v\n", p.InclisiranEligible)

	if res.Risk.ARR != nil {
		fmt.Fprintf(out, "ARR:             %.1f pp\n", *res.Risk.ARR)
	}
	if res.Risk.RRR != nil {
		fmt.Fprintf(out, "RRR:             %.1f%%\n", *res.Risk.RRR)
	}
	if res.Risk.NNT != nil {
		fmt.Fprintf(out, "NNT:             %.1f\n", *res.Risk.NNT)
	}
}
