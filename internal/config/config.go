package config

import (
	"fmt"
	"os"
	"time"

	"github.com/hakymulla/Islamic-Trivia-Telegram-Bot/pkg/validator"
	"github.com/spf13/viper"
)

type Config struct {
	BotToken string         `mapstructure:"bot_token" validate:"required"`
	Env      string         `mapstructure:"env" validate:"oneof=development production staging"`
	Catalog  CatalogConfig  `mapstructure:"catalog" validate:"required"`
	Storage  StorageConfig  `mapstructure:"storage" validate:"required"`
	Reminder ReminderConfig `mapstructure:"reminder" validate:"required"`
}

type CatalogConfig struct {
	QuestionsFile   string `mapstructure:"questions_file" validate:"required"`
	TemplatesURL    string `mapstructure:"templates_url" validate:"required,url"`
	TemplateActsURL string `mapstructure:"template_acts_url" validate:"required,url"`
}

type StorageConfig struct {
	ScoresFile      string `mapstructure:"scores_file" validate:"required"`
	PreferencesFile string `mapstructure:"preferences_file" validate:"required"`
}

type ReminderConfig struct {
	Tick            time.Duration `mapstructure:"tick" validate:"min=1s"`
	StartupDelay    time.Duration `mapstructure:"startup_delay" validate:"min=0"`
	SendInterval    time.Duration `mapstructure:"send_interval" validate:"min=1s"`
	MinInterval     time.Duration `mapstructure:"min_interval" validate:"min=1s"`
	LockTimeout     time.Duration `mapstructure:"lock_timeout" validate:"min=1s"`
	PersistTimeout  time.Duration `mapstructure:"persist_timeout" validate:"min=1s"`
	RotationWeekday time.Weekday  `mapstructure:"rotation_weekday" validate:"min=0,max=6"`
}

func Init() (*Config, error) {
	v := viper.New()

	v.AutomaticEnv()

	configName := os.Getenv("CONFIG_NAME")
	if configName == "" {
		configName = "default"
	}

	v.AddConfigPath("configs")
	v.SetConfigName(configName)

	if err := v.BindEnv("bot_token", "BOT_TOKEN"); err != nil {
		return nil, fmt.Errorf("failed to bind BOT_TOKEN: %w", err)
	}
	if err := v.BindEnv("catalog.questions_file", "QUESTIONS_FILE"); err != nil {
		return nil, fmt.Errorf("failed to bind QUESTIONS_FILE: %w", err)
	}
	if err := v.BindEnv("catalog.templates_url", "TEMPLATES_URL"); err != nil {
		return nil, fmt.Errorf("failed to bind TEMPLATES_URL: %w", err)
	}
	if err := v.BindEnv("catalog.template_acts_url", "TEMPLATE_ACTS_URL"); err != nil {
		return nil, fmt.Errorf("failed to bind TEMPLATE_ACTS_URL: %w", err)
	}
	if err := v.BindEnv("storage.scores_file", "SCORES_FILE"); err != nil {
		return nil, fmt.Errorf("failed to bind SCORES_FILE: %w", err)
	}
	if err := v.BindEnv("storage.preferences_file", "PREFERENCES_FILE"); err != nil {
		return nil, fmt.Errorf("failed to bind PREFERENCES_FILE: %w", err)
	}

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	cfg := Config{}

	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := validator.ValidateStruct(cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}
