package start

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/spf13/cobra"
	"opencsg.com/bookmark-server/api/httpbase"
	"opencsg.com/bookmark-server/api/router"
	"opencsg.com/bookmark-server/builder/store/database"
	"opencsg.com/bookmark-server/common/config"
	"opencsg.com/bookmark-server/docs"
	"opencsg.com/bookmark-server/version"
)

var enableSwagger bool

func init() {
	serverCmd.Flags().BoolVar(&enableSwagger, "swagger", false, "Start swagger help docs")
}

var serverCmd = &cobra.Command{
	Use:     "server",
	Short:   "Start the API server",
	Example: serverExample(),
	RunE: func(cmd *cobra.Command, args []string) (err error) {
		cfg, err := config.LoadConfig()
		if err != nil {
			return err
		}

		enableSwagger = enableSwagger || cfg.EnableSwagger

		if enableSwagger {
			docs.SwaggerInfo.Title = "Bookmark Server API"
			docs.SwaggerInfo.Description = "Store bookmarks with tags and list them back."
			docs.SwaggerInfo.Version = version.APIVersion
			docs.SwaggerInfo.Host = fmt.Sprintf("%s:%d", cfg.APIServer.Host, cfg.APIServer.Port)
			docs.SwaggerInfo.BasePath = "/"
			docs.SwaggerInfo.Schemes = []string{"http"}
		}

		dbConfig := database.DBConfig{
			Dialect:      database.DatabaseDialect(cfg.Database.Driver),
			DSN:          cfg.Database.DSN,
			MaxOpenConns: cfg.Database.MaxOpenConns,
			MaxIdleConns: cfg.Database.MaxIdleConns,
			Debug:        cfg.Database.Debug,
		}
		if err := database.InitDB(cmd.Context(), dbConfig); err != nil {
			return fmt.Errorf("failed to init database: %w", err)
		}
		defer func() {
			if cerr := database.GetDB().Close(); cerr != nil {
				slog.Error("failed to close database", slog.Any("error", cerr))
			}
		}()

		r, err := router.NewRouter(cfg, enableSwagger)
		if err != nil {
			return err
		}
		server := httpbase.NewGracefulServer(
			httpbase.GraceServerOpt{
				Host:            cfg.APIServer.Host,
				Port:            cfg.APIServer.Port,
				ShutdownTimeout: time.Duration(cfg.APIServer.ShutdownTimeoutSec) * time.Second,
			},
			r,
		)
		slog.Info("bookmark server listening", slog.String("addr", server.Addr()),
			slog.String("driver", cfg.Database.Driver))
		return server.Run()
	},
}

func serverExample() string {
	return `
# for development
bookmark-server start server --swagger
`
}
