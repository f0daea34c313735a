package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/madrasa/internal/config"
	"github.com/madrasa/internal/db"
	"github.com/madrasa/internal/logging"
	"github.com/madrasa/internal/notify"
	"github.com/madrasa/internal/router"
	"github.com/madrasa/internal/upload"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"gorm.io/gorm/logger"
)

// app 持有各子命令共享的配置与日志
type app struct {
	configFile string
	cfg        config.AppConfig
	log        *logging.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:           "madrasa",
		Short:         "Content-managed website for a madrasa",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.init()
		},
		PersistentPostRunE: func(cmd *cobra.Command, _ []string) error {
			if a.log != nil {
				return a.log.Close()
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.serve(cmd.Context())
		},
	}
	root.PersistentFlags().StringVar(&a.configFile, "config", "", "config file (default is ./madrasa.yaml)")

	root.AddCommand(
		&cobra.Command{
			Use:   "serve",
			Short: "Start the HTTP server",
			RunE: func(cmd *cobra.Command, _ []string) error {
				return a.serve(cmd.Context())
			},
		},
		&cobra.Command{
			Use:   "seed",
			Short: "Insert the default content where none exists",
			RunE: func(cmd *cobra.Command, _ []string) error {
				return a.seed()
			},
		},
		newInitUserCmd(a),
	)
	return root
}

func newInitUserCmd(a *app) *cobra.Command {
	var username, password string
	cmd := &cobra.Command{
		Use:   "init-user",
		Short: "Create the admin account if it does not exist",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if username == "" {
				username = a.cfg.AdminUserName
			}
			if password == "" {
				password = a.cfg.AdminPassword
			}
			if username == "" || password == "" {
				return errors.New("username and password are required (flags or MADRASA_ADMIN_USERNAME / MADRASA_ADMIN_PASSWORD)")
			}
			gdb, err := db.Open(a.cfg.DatabasePath, logger.Warn)
			if err != nil {
				return fmt.Errorf("open database: %w", err)
			}
			created, err := db.EnsureUser(gdb, username, password)
			if err != nil {
				return err
			}
			a.log.Info().Str("username", username).Bool("created", created).Msg("admin user ready")
			return nil
		},
	}
	cmd.Flags().StringVar(&username, "username", "", "admin username")
	cmd.Flags().StringVar(&password, "password", "", "admin password")
	return cmd
}

func (a *app) init() error {
	cfg, err := config.Load(a.configFile)
	if err != nil {
		return err
	}
	a.cfg = cfg

	log, err := logging.New(logging.Options{Level: cfg.LogLevel, Format: cfg.LogFormat, Path: cfg.LogFile}, os.Stderr)
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	a.log = log
	return nil
}

func (a *app) seed() error {
	gdb, err := db.Open(a.cfg.DatabasePath, logger.Warn)
	if err != nil {
		return fmt.Errorf("open database: %w", err)
	}
	report, err := db.Seed(gdb)
	if err != nil {
		return err
	}
	a.log.Info().Int("singletons", report.Singletons).Int("rows", report.Rows).Msg("seed finished")
	return nil
}

func (a *app) uploader() upload.Uploader {
	if a.cfg.UploadDriver == config.UploadDriverRemote {
		return upload.NewRemoteUploader(a.cfg.UploadEndpoint, a.cfg.UploadToken)
	}
	return upload.NewLocalUploader(a.cfg.UploadDir, a.cfg.UploadURLPath)
}

func (a *app) notifier(log zerolog.Logger) notify.Notifier {
	if !a.cfg.NotifyEnabled() {
		return notify.NewLogNotifier(log)
	}
	n, err := notify.NewSendgridNotifier(a.cfg.SendgridAPIKey, a.cfg.NotifyFrom, a.cfg.NotifyTo, log)
	if err != nil {
		log.Warn().Err(err).Msg("email notification disabled")
		return notify.NewLogNotifier(log)
	}
	return n
}

func (a *app) serve(ctx context.Context) error {
	if ctx == nil {
		ctx = context.Background()
	}
	log := a.log.Logger
	gin.SetMode(a.cfg.GinMode)

	// 初始化数据库
	if err := db.Init(a.cfg.DatabasePath); err != nil {
		return fmt.Errorf("initialize database: %w", err)
	}
	if a.cfg.AdminUserName != "" && a.cfg.AdminPassword != "" {
		if _, err := db.EnsureUser(db.DB, a.cfg.AdminUserName, a.cfg.AdminPassword); err != nil {
			return fmt.Errorf("ensure admin user: %w", err)
		}
	}

	// 设置并运行 Gin 服务器
	r := router.SetupRouter(a.cfg, db.DB, router.Deps{
		Logger:   log,
		Uploader: a.uploader(),
		Notifier: a.notifier(log),
	})
	srv := &http.Server{
		Addr:              a.cfg.ListenAddr,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		log.Info().Str("addr", srv.Addr).Str("upload_driver", a.cfg.UploadDriver).Msg("server listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("run server: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	log.Info().Msg("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
