package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"coolbreeze/internal/catalog"
	"coolbreeze/internal/config"
	"coolbreeze/internal/db"
	"coolbreeze/internal/httpserver"
	cartrepo "coolbreeze/internal/repository/cart"
	tokenrepo "coolbreeze/internal/repository/token"
	userrepo "coolbreeze/internal/repository/user"
	authsvc "coolbreeze/internal/service/auth"
	cartsvc "coolbreeze/internal/service/cart"
	"coolbreeze/internal/service/enquiry"
	"github.com/joho/godotenv"
)

func main() {
	_ = godotenv.Load()
	cfg := config.FromEnv()
	logger := log.New(os.Stdout, "[api] ", log.LstdFlags|log.LUTC|log.Lshortfile)

	ctx := context.Background()
	dbpool, err := db.Connect(ctx, cfg.DBConnString)
	if err != nil {
		logger.Fatalf("connect to db: %v", err)
	}
	defer dbpool.Close()

	cat, err := loadCatalog(cfg.CatalogCSVPath)
	if err != nil {
		logger.Fatalf("load catalog: %v", err)
	}
	logger.Printf("catalog loaded: %d products, %d feature tags", len(cat.Products()), len(cat.FeatureTags()))

	cartRepo := cartrepo.NewPostgres(dbpool, logger)
	cartService := cartsvc.New(cartRepo, cat)
	userRepo := userrepo.NewPostgres(dbpool, logger)
	tokenRepo := tokenrepo.NewPostgres(dbpool)
	authService := authsvc.New(userRepo, tokenRepo)
	enquiryBuilder := enquiry.NewBuilder(cfg.WhatsAppNumber)

	srv, err := httpserver.New(cfg.HTTPAddr, logger, dbpool, httpserver.Deps{
		Catalog:    cat,
		CartSvc:    cartService,
		AuthSvc:    authService,
		EnquirySvc: enquiryBuilder,
	}, cfg.CORSOrigins)
	if err != nil {
		logger.Fatalf("init server: %v", err)
	}

	serverErr := make(chan error, 1)
	go func() {
		logger.Printf("starting http server on %s", cfg.HTTPAddr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	stopCh := make(chan os.Signal, 1)
	signal.Notify(stopCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-stopCh:
		logger.Printf("received signal %s, shutting down", sig)
	case err := <-serverErr:
		logger.Printf("server error: %v", err)
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Printf("graceful shutdown failed: %v", err)
	} else {
		logger.Printf("server stopped")
	}
}

// loadCatalog returns the built-in catalog unless an override CSV is
// configured.
func loadCatalog(csvPath string) (*catalog.Catalog, error) {
	if csvPath == "" {
		return catalog.Builtin(), nil
	}
	f, err := os.Open(csvPath)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return catalog.LoadCSV(f)
}
