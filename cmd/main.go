package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"

	"github.com/DanRulev/quizbot.git/internal/bot"
	"github.com/DanRulev/quizbot.git/internal/client"
	"github.com/DanRulev/quizbot.git/internal/config"
	"github.com/DanRulev/quizbot.git/internal/repository"
	"github.com/DanRulev/quizbot.git/internal/server"
	"github.com/DanRulev/quizbot.git/internal/service"
	"github.com/DanRulev/quizbot.git/internal/storage/cache"
	"github.com/DanRulev/quizbot.git/internal/storage/db"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

func setupLogger(env string) *zap.Logger {
	var logger *zap.Logger
	if env == "development" {
		logger, _ = zap.NewDevelopment()
	} else {
		logger, _ = zap.NewProduction()
	}
	return logger
}

func main() {
	cfg, err := config.Init()
	if err != nil {
		log.Fatal("failed load config " + err.Error())
		return
	}

	logger := setupLogger(cfg.Env)
	defer func() { _ = logger.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	db, err := db.InitDB(cfg.DB)
	if err != nil {
		logger.Fatal("failed init db", zap.Error(err))
	}
	defer db.Close()

	repos := repository.NewRepository(db)

	clients := client.InitClients(cfg.App.QuestionsSource, cfg.App.Timeout)
	services := service.InitServices(clients.QuestionsAPI, repos, logger)

	// the quiz must not become interactive before the set is known
	services.Load(ctx)

	cache := cache.NewCache()

	handler, err := bot.NewTelegramAPI(cfg.BotToken, cfg.Env, cfg.App.AdvanceDelay, services, cache, logger)
	if err != nil {
		logger.Fatal("failed init bot", zap.Error(err))
		return
	}
	handler.RegisterCommands()

	var srv runner
	if cfg.App.HTTPAddr != "" {
		srv = server.NewServer(cfg.App.HTTPAddr, cfg.Env, services, logger)
	}

	if err := serve(ctx, handler, srv); err != nil {
		logger.Error("service stopped with error", zap.Error(err))
	}
}

type poller interface {
	Start(ctx context.Context)
}

type runner interface {
	Run(ctx context.Context) error
}

// serve blocks until the bot and the http server (when set) have both stopped.
// Whichever stops first takes the other one down.
func serve(ctx context.Context, bot poller, srv runner) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	g, gctx := errgroup.WithContext(ctx)

	if srv != nil {
		g.Go(func() error {
			return srv.Run(gctx)
		})
	}

	g.Go(func() error {
		bot.Start(gctx)
		cancel()
		return nil
	})

	return g.Wait()
}
