package serve

import (
	"context"
	"net"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"envlinks/internal/cmdutil"
	"envlinks/internal/eventbus"
	"envlinks/internal/httphandlers"
	"envlinks/internal/service"
	"envlinks/logger"
)

func NewServeCmd(svc service.SettingsService, bus eventbus.Bus, defaultAddr string) *cobra.Command {
	var addr string
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the settings API",
		Long:  "Serve the configuration and settings operations over http on a local address",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer cancel()

			apiHandler := httphandlers.NewApiHandler(svc, bus, logger.GetLogger())
			srv := &http.Server{
				Addr:              addr,
				Handler:           httphandlers.Routes(apiHandler),
				ReadHeaderTimeout: 10 * time.Second,
				BaseContext: func(net.Listener) context.Context {
					return ctx
				},
			}
			srv.RegisterOnShutdown(apiHandler.Shutdown)

			g, gctx := errgroup.WithContext(ctx)
			g.Go(func() error {
				logger.Info("serving http on " + addr)
				cmdutil.Print("Serving settings API on http://" + addr + "/v1")
				if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
					return errors.Wrap(err, "server closed")
				}
				return nil
			})
			g.Go(func() error {
				<-gctx.Done()
				logger.Info("shutting down")

				shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
				defer cancel()
				if err := srv.Shutdown(shutdownCtx); err != nil {
					logger.Error("server forced to shutdown", zap.Error(err))
					return err
				}
				return nil
			})
			return g.Wait()
		},
	}
	cmd.Flags().StringVarP(&addr, "addr", "a", defaultAddr, "Address to listen on")
	return cmd
}
