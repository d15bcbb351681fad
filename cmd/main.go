package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/weinert-art/commission-service/internal/app"
	"github.com/weinert-art/commission-service/internal/bot"
	"github.com/weinert-art/commission-service/internal/config"
	"github.com/weinert-art/commission-service/internal/handler"
	"github.com/weinert-art/commission-service/internal/middleware"
	"github.com/weinert-art/commission-service/internal/notifier"
	"github.com/weinert-art/commission-service/internal/postgres"
	"github.com/weinert-art/commission-service/internal/repo"
	"github.com/weinert-art/commission-service/internal/service"
	"github.com/weinert-art/commission-service/pkg/cache"
	"github.com/weinert-art/commission-service/pkg/trm"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/joho/godotenv"
)

func main() {
	conf := config.New()
	logger := newLogger(conf.Env)
	panicIfErr("invalid config", conf.Validate())

	db, err := postgres.New(conf.Postgres)
	panicIfErr("failed to connect to db", err)
	defer db.Close()
	logger.Info("postgres connected")

	api, err := tgbotapi.NewBotAPI(conf.Telegram.Token)
	panicIfErr("failed to connect to telegram", err)
	logger.Info("telegram bot authorized", slog.String("username", api.Self.UserName))

	orderRepo := repo.NewPostgresRepo(db)
	txManager := trm.NewManager(db)
	cursors := cache.NewCursors(conf.Telegram.CursorCapacity, conf.Telegram.CursorTTL)

	tgNotifier := notifier.New(logger, api, cursors, conf.Telegram)
	orderService := service.NewOrderService(logger, txManager, orderRepo, tgNotifier)

	tgBot := bot.New(logger, api, tgNotifier, orderService, conf.Telegram)
	httpHandler := handler.NewHTTPHandler(logger, orderService, middleware.AdminAuth(conf.Admin.Password))

	app := app.New(logger, conf)

	app.SetHTTPHandlers(httpHandler)
	app.SetConsumers(tgBot)
	app.SetStarters(cursors)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	panicIfErr("failed to start app", app.Start(ctx))
	<-ctx.Done()
	panicIfErr("failed to stop app", app.Stop())
}

func init() {
	godotenv.Load()
}

func newLogger(env string) *slog.Logger {
	switch env {
	case "production":
		return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	default:
		return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))
	}
}

func panicIfErr(prefix string, err error) {
	if err != nil {
		panic(prefix + ": " + err.Error())
	}
}
