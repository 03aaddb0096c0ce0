package main

import (
	"context"
	"log"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/hakymulla/Islamic-Trivia-Telegram-Bot/internal/bot"
	"github.com/hakymulla/Islamic-Trivia-Telegram-Bot/internal/catalog"
	"github.com/hakymulla/Islamic-Trivia-Telegram-Bot/internal/client"
	"github.com/hakymulla/Islamic-Trivia-Telegram-Bot/internal/config"
	"github.com/hakymulla/Islamic-Trivia-Telegram-Bot/internal/repository"
	"github.com/hakymulla/Islamic-Trivia-Telegram-Bot/internal/service"
	"github.com/hakymulla/Islamic-Trivia-Telegram-Bot/internal/storage/state"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"
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
	defer logger.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cat, err := loadCatalog(ctx, cfg.Catalog, logger)
	if err != nil {
		logger.Fatal("failed to load catalog", zap.Error(err))
	}
	logger.Info("catalog loaded",
		zap.Int("questions", len(cat.Questions)),
		zap.Int("templates", len(cat.Templates)),
		zap.Int("template_acts", len(cat.TemplateActs)),
	)

	repos := repository.NewRepository(cfg.Storage.ScoresFile, cfg.Storage.PreferencesFile)

	scores, err := repos.LoadScores()
	if err != nil {
		logger.Fatal("failed to load scores", zap.Error(err))
	}
	logger.Info("loaded scores", zap.Int("users", len(scores)))

	prefs, err := repos.LoadOrInitPreferences()
	if err != nil {
		logger.Fatal("failed to initialize preferences", zap.Error(err))
	}
	logger.Info("loaded preferences", zap.Int("users", len(prefs)))

	api, err := tgbotapi.NewBotAPI(cfg.BotToken)
	if err != nil {
		logger.Fatal("failed to create bot api", zap.Error(err))
	}

	services := service.InitServices(
		cat,
		state.NewSessions(),
		state.NewScores(scores),
		state.NewPreferences(prefs, cfg.Reminder.LockTimeout),
		state.NewRand(time.Now().UnixNano()),
		repos,
		bot.NewNotifier(api),
		cfg.Reminder,
		logger,
	)

	handler := bot.NewTelegramAPI(api, cfg.Env, services, logger)

	go services.Run(ctx)

	logger.Info("starting trivia bot")
	handler.Start(ctx)
}

func loadCatalog(ctx context.Context, cfg config.CatalogConfig, logger *zap.Logger) (*catalog.Catalog, error) {
	questions, err := catalog.LoadQuestions(cfg.QuestionsFile)
	if err != nil {
		return nil, err
	}

	sheets := client.NewSheetsAPI()

	content, err := sheets.FetchCSV(ctx, cfg.TemplatesURL)
	if err != nil {
		return nil, err
	}
	templates, err := catalog.ParseTemplates(strings.NewReader(content), logger)
	if err != nil {
		return nil, err
	}

	content, err = sheets.FetchCSV(ctx, cfg.TemplateActsURL)
	if err != nil {
		return nil, err
	}
	acts, err := catalog.ParseTemplateActs(strings.NewReader(content), logger)
	if err != nil {
		return nil, err
	}

	return &catalog.Catalog{
		Questions:    questions,
		Templates:    templates,
		TemplateActs: acts,
	}, nil
}
