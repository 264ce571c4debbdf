package cli

import (
	"context"
	"errors"

	"github.com/example/wordlearner/internal/ai"
	"github.com/example/wordlearner/internal/config"
	"github.com/example/wordlearner/internal/database"
	"github.com/example/wordlearner/internal/dispatch"
	"github.com/example/wordlearner/internal/logger"
	"github.com/example/wordlearner/internal/notify"
	"github.com/example/wordlearner/internal/scheduler"
	"github.com/example/wordlearner/internal/spaced_repetition"
	"github.com/example/wordlearner/internal/stats"
	"github.com/example/wordlearner/internal/words"
)

// app holds the wired components for one command run
type app struct {
	cfg        *config.Config
	log        *logger.Logger
	store      database.Store
	engine     *stats.Engine
	words      *words.Service
	gateway    *ai.Gateway
	dispatcher *dispatch.Dispatcher
}

func openApp(ctx context.Context) (*app, func(), error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, err
	}

	log, err := logger.New(cfg.LogMode)
	if err != nil {
		return nil, nil, err
	}

	store, err := database.Open(ctx, cfg)
	if err != nil {
		log.Sync()
		return nil, nil, err
	}

	engine := stats.NewEngine(database.NewStatisticsRepository(store), stats.SystemClock{}, log, cfg.DefaultDailyGoal)
	gateway := ai.NewGateway(ai.New(cfg), log)
	wordService := words.NewService(database.NewWordRepository(store), engine, gateway, log)

	d := dispatch.New(dispatch.Deps{
		Words:    wordService,
		Engine:   engine,
		Selector: spaced_repetition.NewSelector(nil),
		Gateway:  gateway,
		Errors:   database.NewErrorRepository(store, database.UserAgent(Version)),
		Settings: database.NewSettingsRepository(store),
		Log:      log,
	})

	a := &app{
		cfg:        cfg,
		log:        log,
		store:      store,
		engine:     engine,
		words:      wordService,
		gateway:    gateway,
		dispatcher: d,
	}
	cleanup := func() {
		_ = store.Close()
		log.Sync()
	}
	return a, cleanup, nil
}

// do runs a request through the dispatcher and turns a failed result into an error
func (a *app) do(ctx context.Context, req dispatch.Request) (dispatch.Response, error) {
	resp := a.dispatcher.Handle(ctx, req)
	if !resp.Success && !resp.Duplicate {
		return resp, errors.New(resp.Error)
	}
	return resp, nil
}

// notifier picks Telegram when a bot is configured and the log otherwise
func (a *app) notifier() (scheduler.Notifier, error) {
	if a.cfg.TelegramToken == "" {
		return notify.NewLog(a.log), nil
	}
	return notify.NewTelegram(a.cfg.TelegramToken, a.cfg.TelegramChatID)
}

func (a *app) scheduler() (*scheduler.Scheduler, error) {
	n, err := a.notifier()
	if err != nil {
		return nil, err
	}
	return scheduler.New(a.engine, n, a.cfg.NotificationStartHour, a.cfg.NotificationEndHour, a.log), nil
}
