// Command server boots the product lookup HTTP service.
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"cloud.google.com/go/spanner"

	"github.com/murkotick/product-lookup-service/internal/app/product/queries"
	"github.com/murkotick/product-lookup-service/internal/app/product/queries/get_product"
	"github.com/murkotick/product-lookup-service/internal/config"
	"github.com/murkotick/product-lookup-service/internal/obs"
	"github.com/murkotick/product-lookup-service/internal/pkg/clock"
	httpproduct "github.com/murkotick/product-lookup-service/internal/transport/http/product"
)

func main() {
	obs.InitLogger()

	cfg, err := config.Load(os.Getenv("ENV_FILE"))
	if err != nil {
		obs.Logger.Error("config_load_failed", "error", err)
		os.Exit(1)
	}
	obs.Logger.Info("service_starting")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	client, err := spanner.NewClient(ctx, cfg.SpannerDatabase)
	if err != nil {
		obs.Logger.Error("spanner_client_failed", "error", err)
		os.Exit(1)
	}
	defer client.Close()

	// The whole component graph is wired once here, by explicit reference:
	// read model -> lookup handler -> transport handler -> middleware chain.
	readModel := queries.NewSpannerReadModel(client)
	qrys := httpproduct.Queries{
		Get: get_product.NewHandler(readModel),
	}
	h := httpproduct.NewHandler(qrys, readModel)
	router := httpproduct.NewRouter(h, cfg.CORSAllowedOrigins, clock.RealClock{})

	srv := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		obs.Logger.Info("http_listen", "addr", cfg.HTTPAddr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			obs.Logger.Error("http_server_error", "error", err)
			cancel()
		}
	}()

	sigc := make(chan os.Signal, 1)
	signal.Notify(sigc, syscall.SIGINT, syscall.SIGTERM)
	select {
	case s := <-sigc:
		obs.Logger.Info("shutdown_signal", "signal", s.String())
	case <-ctx.Done():
	}

	ctxSrv, cancelSrv := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancelSrv()
	if err := srv.Shutdown(ctxSrv); err != nil {
		obs.Logger.Error("http_shutdown_error", "error", err)
	}
	obs.Logger.Info("service_stopped")
}
