package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	Server       ServerConfig
	DB           DBConfig
	Redis        RedisConfig
	Logger       LoggerConfig
	QuestionBank QuestionBankConfig
	Tutor        TutorConfig
	Auth         AuthConfig
	Favorites    FavoritesConfig
	Stats        StatsConfig
}

type ServerConfig struct {
	Port         int
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

type DBConfig struct {
	Driver   string // "oracle" (go-ora) or "godror"
	Host     string
	Port     int
	User     string
	Password string
	DBName   string
}

type RedisConfig struct {
	Address  string `yaml:"address"`
	Password string `yaml:"password"`
	DB       int    `yaml:"db"`
}

type LoggerConfig struct {
	Level string
	Env   string
}

type QuestionBankConfig struct {
	// DatasetPath overrides the bundled dataset when set
	DatasetPath        string
	DefaultSampleCount int
	MaxSampleCount     int
}

type TutorConfig struct {
	BaseURL     string
	APIKey      string
	Model       string
	Temperature float64
	MaxTokens   int
	Timeout     time.Duration
	ReplyTTL    time.Duration
}

type AuthConfig struct {
	JWTSecret      string
	Issuer         string
	AccessTokenTTL time.Duration
}

type FavoritesConfig struct {
	TTL time.Duration
}

type StatsConfig struct {
	// RecentLimit caps the recent attempts returned with a user's statistics
	RecentLimit int
}

// Default returns a configuration usable without any config file
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			Port:         8090,
			ReadTimeout:  20 * time.Second,
			WriteTimeout: 20 * time.Second,
		},
		DB: DBConfig{
			Driver: "oracle",
			Host:   "localhost",
			Port:   1521,
			DBName: "SATPREP",
		},
		Redis: RedisConfig{
			Address: "localhost:6379",
		},
		Logger: LoggerConfig{
			Level: "info",
			Env:   "development",
		},
		QuestionBank: QuestionBankConfig{
			DefaultSampleCount: 10,
			MaxSampleCount:     100,
		},
		Tutor: TutorConfig{
			BaseURL:     "https://api.groq.com/openai/v1",
			Model:       "llama3-70b-8192",
			Temperature: 0.5,
			MaxTokens:   2048,
			Timeout:     30 * time.Second,
			ReplyTTL:    10 * time.Minute,
		},
		Auth: AuthConfig{
			Issuer:         "sat-prep",
			AccessTokenTTL: time.Hour,
		},
		Favorites: FavoritesConfig{
			TTL: 0,
		},
		Stats: StatsConfig{
			RecentLimit: 10,
		},
	}
}

func LoadConfig() (*Config, error) {
	// .env is optional; real deployments inject the environment directly
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to load .env file: %w", err)
	}

	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")

	if os.Getenv("ENV") == "test" {
		v.AddConfigPath("../../config")
		v.AddConfigPath("../../")
	} else {
		v.AddConfigPath(".")
		v.AddConfigPath("./config")
	}

	setDefaults(v, Default())
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	if configFile := v.ConfigFileUsed(); configFile != "" {
		absPath, _ := filepath.Abs(configFile)
		fmt.Printf("Using config file: %s\n", absPath)
	}

	cfg := fromViper(v)
	applyEnvOverrides(cfg)
	return cfg, nil
}

func setDefaults(v *viper.Viper, d *Config) {
	v.SetDefault("server.port", d.Server.Port)
	v.SetDefault("server.read_timeout", d.Server.ReadTimeout)
	v.SetDefault("server.write_timeout", d.Server.WriteTimeout)
	v.SetDefault("db.driver", d.DB.Driver)
	v.SetDefault("db.host", d.DB.Host)
	v.SetDefault("db.port", d.DB.Port)
	v.SetDefault("db.name", d.DB.DBName)
	v.SetDefault("redis.address", d.Redis.Address)
	v.SetDefault("logger.level", d.Logger.Level)
	v.SetDefault("logger.env", d.Logger.Env)
	v.SetDefault("question_bank.default_sample_count", d.QuestionBank.DefaultSampleCount)
	v.SetDefault("question_bank.max_sample_count", d.QuestionBank.MaxSampleCount)
	v.SetDefault("tutor.base_url", d.Tutor.BaseURL)
	v.SetDefault("tutor.model", d.Tutor.Model)
	v.SetDefault("tutor.temperature", d.Tutor.Temperature)
	v.SetDefault("tutor.max_tokens", d.Tutor.MaxTokens)
	v.SetDefault("tutor.timeout", d.Tutor.Timeout)
	v.SetDefault("tutor.reply_ttl", d.Tutor.ReplyTTL)
	v.SetDefault("auth.issuer", d.Auth.Issuer)
	v.SetDefault("auth.access_token_ttl", d.Auth.AccessTokenTTL)
	v.SetDefault("favorites.ttl", d.Favorites.TTL)
	v.SetDefault("stats.recent_limit", d.Stats.RecentLimit)
}

func fromViper(v *viper.Viper) *Config {
	return &Config{
		Server: ServerConfig{
			Port:         v.GetInt("server.port"),
			ReadTimeout:  v.GetDuration("server.read_timeout"),
			WriteTimeout: v.GetDuration("server.write_timeout"),
		},
		DB: DBConfig{
			Driver:   v.GetString("db.driver"),
			Host:     v.GetString("db.host"),
			Port:     v.GetInt("db.port"),
			User:     v.GetString("db.user"),
			Password: v.GetString("db.password"),
			DBName:   v.GetString("db.name"),
		},
		Redis: RedisConfig{
			Address:  v.GetString("redis.address"),
			Password: v.GetString("redis.password"),
			DB:       v.GetInt("redis.db"),
		},
		Logger: LoggerConfig{
			Level: v.GetString("logger.level"),
			Env:   v.GetString("logger.env"),
		},
		QuestionBank: QuestionBankConfig{
			DatasetPath:        v.GetString("question_bank.dataset_path"),
			DefaultSampleCount: v.GetInt("question_bank.default_sample_count"),
			MaxSampleCount:     v.GetInt("question_bank.max_sample_count"),
		},
		Tutor: TutorConfig{
			BaseURL:     v.GetString("tutor.base_url"),
			APIKey:      v.GetString("tutor.api_key"),
			Model:       v.GetString("tutor.model"),
			Temperature: v.GetFloat64("tutor.temperature"),
			MaxTokens:   v.GetInt("tutor.max_tokens"),
			Timeout:     v.GetDuration("tutor.timeout"),
			ReplyTTL:    v.GetDuration("tutor.reply_ttl"),
		},
		Auth: AuthConfig{
			JWTSecret:      v.GetString("auth.jwt_secret"),
			Issuer:         v.GetString("auth.issuer"),
			AccessTokenTTL: v.GetDuration("auth.access_token_ttl"),
		},
		Favorites: FavoritesConfig{
			TTL: v.GetDuration("favorites.ttl"),
		},
		Stats: StatsConfig{
			RecentLimit: v.GetInt("stats.recent_limit"),
		},
	}
}

func applyEnvOverrides(cfg *Config) {
	if host := os.Getenv("DB_HOST"); host != "" {
		cfg.DB.Host = host
	}
	if user := os.Getenv("DB_USER"); user != "" {
		cfg.DB.User = user
	}
	if password := os.Getenv("DB_PASSWORD"); password != "" {
		cfg.DB.Password = password
	}
	if dbname := os.Getenv("DB_NAME"); dbname != "" {
		cfg.DB.DBName = dbname
	}
	if driver := os.Getenv("DB_DRIVER"); driver != "" {
		cfg.DB.Driver = driver
	}
	if redisAddress := os.Getenv("REDIS_ADDRESS"); redisAddress != "" {
		cfg.Redis.Address = redisAddress
	}
	if redisPassword := os.Getenv("REDIS_PASSWORD"); redisPassword != "" {
		cfg.Redis.Password = redisPassword
	}
	if apiKey := os.Getenv("GROQ_API_KEY"); apiKey != "" {
		cfg.Tutor.APIKey = apiKey
	}
	if secret := os.Getenv("JWT_SECRET"); secret != "" {
		cfg.Auth.JWTSecret = secret
	}
	if dataset := os.Getenv("QUESTION_BANK_DATASET"); dataset != "" {
		cfg.QuestionBank.DatasetPath = dataset
	}
}

// GetDSN returns the connection string for the configured Oracle driver
func (c *Config) GetDSN() string {
	if c.DB.Driver == "godror" {
		return fmt.Sprintf(`user=%q password=%q connectString="%s:%d/%s"`,
			c.DB.User,
			c.DB.Password,
			c.DB.Host,
			c.DB.Port,
			c.DB.DBName,
		)
	}
	return fmt.Sprintf("oracle://%s:%s@%s:%d/%s",
		c.DB.User,
		c.DB.Password,
		c.DB.Host,
		c.DB.Port,
		c.DB.DBName,
	)
}
