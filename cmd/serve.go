package cmd

import (
	"context"
	"log"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/zchutly/rights-finder/internal/logger"
	"github.com/zchutly/rights-finder/internal/server"
)

const defaultListenAddr = ":8080"

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the evaluation pipeline over HTTP",
	Run: func(cmd *cobra.Command, _ []string) {
		serve(cmd)
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().StringP("addr", "a", "", "listen address (default :8080)")
	serveCmd.Flags().StringP("catalog", "c", "", "path to the rights catalog (json or yaml)")

	viper.BindPFlag("catalog", serveCmd.Flags().Lookup("catalog"))
}

func serve(cmd *cobra.Command) {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	zlog, err := logger.New(viper.GetBool("json"), viper.GetBool("debug"))
	if err != nil {
		log.Fatalf("creating a logger: %s", err)
	}

	config, err := getConfig()
	if err != nil {
		zlog.Fatal("getting a config", zap.Error(err))
	}

	catalog := loadCatalog(config, zlog)
	if catalog.Len() == 0 {
		zlog.Warn("serving with an empty catalog; every evaluation will return no matches")
	}

	addr := cmd.Flag("addr").Value.String()
	if addr == "" && config.Server != nil {
		addr = config.Server.Addr
	}
	if addr == "" {
		addr = defaultListenAddr
	}

	srv := server.New(addr, catalog, config.Matching, *config.Validation, zlog)
	if err := srv.ListenAndServe(ctx); err != nil {
		zlog.Fatal("http server failed", zap.Error(err))
	}

	zlog.Info("server stopped")
}
