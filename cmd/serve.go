package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/abhisek/quizai/internal/logger"
	"github.com/abhisek/quizai/internal/server"
)

const shutdownTimeout = 10 * time.Second

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the quiz HTTP API",
	RunE: func(cmd *cobra.Command, args []string) error {
		d, err := openDeps(cmd, false)
		if err != nil {
			return err
		}
		defer d.Close()

		addr, _ := cmd.Flags().GetString("addr")
		if addr == "" {
			addr = d.cfg.Server.Addr
		}

		srv := server.New(d.svc, server.Options{
			ReadTimeout:  d.cfg.Server.ReadTimeout,
			WriteTimeout: d.cfg.Server.WriteTimeout,
		})

		errCh := make(chan error, 1)
		go func() {
			errCh <- srv.Listen(addr)
		}()
		fmt.Fprintf(cmd.ErrOrStderr(), "Listening on %s\n", addr)

		ctx := cmd.Context()
		if ctx == nil {
			ctx = context.Background()
		}
		select {
		case err := <-errCh:
			return err
		case <-ctx.Done():
			logger.Get().Info("shutting down http server", zap.String("addr", addr))
			return srv.Shutdown(shutdownTimeout)
		}
	},
}

func init() {
	serveCmd.Flags().String("addr", "", "Listen address (default from config, :8080)")
}
