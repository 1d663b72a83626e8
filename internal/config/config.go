package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"github.com/DanRulev/quizbot.git/pkg/validator"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	App      AppConfig `mapstructure:"app" validate:"required"`
	BotToken string    `mapstructure:"bot_token" validate:"required"`
	DB       DBConfig  `mapstructure:"db" validate:"required"`
	Env      string    `mapstructure:"env" validate:"oneof=development production staging"`
}

type AppConfig struct {
	Timeout         time.Duration `mapstructure:"timeout" validate:"min=1"`
	AdvanceDelay    time.Duration `mapstructure:"advance_delay" validate:"min=0"`
	QuestionsSource string        `mapstructure:"questions_source" validate:"required"`
	HTTPAddr        string        `mapstructure:"http_addr" validate:"omitempty,hostname_port"`
}

type DBConfig struct {
	Driver string `mapstructure:"driver" validate:"oneof=postgres sqlite3"`
	Conn   DBConn `mapstructure:"conn"`
	Cfg    DBCfg  `mapstructure:"cfg"`
}

// DBConn.Name is the database name for postgres and the file path for sqlite3.
type DBConn struct {
	Host     string `mapstructure:"host" validate:"required_with=Port"`
	Port     string `mapstructure:"port"`
	User     string `mapstructure:"user"`
	Password string `mapstructure:"password"`
	Name     string `mapstructure:"name" validate:"required"`
	SSL      string `mapstructure:"ssl" validate:"omitempty,oneof=disable require verify-full"`
}

type DBCfg struct {
	MaxOpenConns    int           `mapstructure:"max_open_conns" validate:"min=1,max=1000"`
	MaxIdleConns    int           `mapstructure:"max_idle_conns" validate:"min=0,max=100"`
	ConnMaxLifeTime time.Duration `mapstructure:"conn_max_life_time" validate:"min=0"`
	ConnMaxIdleTime time.Duration `mapstructure:"conn_max_idle_time" validate:"min=0"`
}

var envBindings = map[string]string{
	"bot_token":            "BOT_TOKEN",
	"env":                  "ENV",
	"app.questions_source": "QUESTIONS_SOURCE",
	"app.http_addr":        "HTTP_ADDR",
	"db.driver":            "DB_DRIVER",
	"db.conn.host":         "DB_HOST",
	"db.conn.port":         "DB_PORT",
	"db.conn.user":         "DB_USER",
	"db.conn.password":     "DB_PASSWORD",
	"db.conn.name":         "DB_NAME",
	"db.conn.ssl":          "DB_SSL",
}

func Init() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to load .env: %w", err)
	}

	configName := os.Getenv("CONFIG_NAME")
	if configName == "" {
		configName = "default"
	}

	return Load("configs", configName)
}

func Load(path, name string) (*Config, error) {
	v := viper.New()

	v.AutomaticEnv()

	v.AddConfigPath(path)
	v.SetConfigName(name)

	setDefaults(v)

	for key, env := range envBindings {
		if err := v.BindEnv(key, env); err != nil {
			return nil, fmt.Errorf("failed to bind %s: %w", env, err)
		}
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

func setDefaults(v *viper.Viper) {
	v.SetDefault("env", "production")
	v.SetDefault("app.timeout", 5*time.Second)
	v.SetDefault("app.advance_delay", 1500*time.Millisecond)
	v.SetDefault("app.questions_source", "pytania.json")
	v.SetDefault("db.driver", "postgres")
	v.SetDefault("db.cfg.max_open_conns", 10)
	v.SetDefault("db.cfg.max_idle_conns", 5)
}
