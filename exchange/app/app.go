package app

import (
	"context"
	"net"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Astemirdum/book-exchange/exchange/config"
	"github.com/Astemirdum/book-exchange/exchange/internal/catalog"
	"github.com/Astemirdum/book-exchange/exchange/internal/events"
	"github.com/Astemirdum/book-exchange/exchange/internal/handler"
	"github.com/Astemirdum/book-exchange/exchange/internal/repository"
	"github.com/Astemirdum/book-exchange/exchange/internal/server"
	"github.com/Astemirdum/book-exchange/exchange/internal/service"
	"github.com/Astemirdum/book-exchange/exchange/migrations"
	"github.com/Astemirdum/book-exchange/pkg/auth"
	"github.com/Astemirdum/book-exchange/pkg/logger"
	"github.com/Astemirdum/book-exchange/pkg/password"
	"github.com/Astemirdum/book-exchange/pkg/postgres"
	"go.uber.org/zap"
)

func Run(cfg *config.Config) {
	log := logger.NewLogger(cfg.Log, "exchange")
	defer log.Sync() //nolint:errcheck

	db, err := postgres.NewPostgresDB(context.Background(), &cfg.Database, migrations.MigrationFiles)
	if err != nil {
		log.Fatal("db init", zap.Error(err))
	}

	publisher, err := events.NewPublisher(cfg.Kafka, log)
	if err != nil {
		log.Fatal("events.NewPublisher", zap.Error(err))
	}

	var (
		users   = repository.NewUserRepository(db, log)
		books   = repository.NewBookRepository(db, log)
		offered = repository.NewOfferedRepository(db, log)
		wanted  = repository.NewWantedRepository(db, log)
		trades  = repository.NewTradeRepository(db, log)
		tokens  = auth.NewJWT(cfg.Auth)
	)

	authSvc := service.NewAuthService(users, password.NewArgon2(), tokens, log)
	bookSvc := service.NewBookService(books, offered, wanted, catalog.NewClient(cfg.Catalog, log), publisher, log)
	tradeSvc := service.NewTradeService(trades, log)

	h := handler.New(authSvc, bookSvc, tradeSvc, tokens, log)
	srv := server.NewServer(cfg.Server, h.NewRouter())
	log.Info("http server start ON: ",
		zap.String("addr",
			net.JoinHostPort(cfg.Server.Host, cfg.Server.Port)))
	go func() {
		if err := srv.Run(); err != nil {
			log.Error("server run", zap.Error(err))
		}
	}()

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt, syscall.SIGTERM, syscall.SIGINT)
	termSig := <-sig

	log.Debug("Graceful shutdown", zap.Any("signal", termSig))

	closeCtx, cancel := context.WithTimeout(context.Background(), time.Second*5)
	defer cancel()

	if err = srv.Stop(closeCtx); err != nil {
		log.DPanic("srv.Stop", zap.Error(err))
	}
	if err = publisher.Close(); err != nil {
		log.Error("publisher.Close", zap.Error(err))
	}
	db.Close()
	log.Info("Graceful shutdown finished")
}
