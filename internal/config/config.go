package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"

	"github.com/inspection-planner/internal/domain"
	"github.com/inspection-planner/internal/routing"
)

type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	Redis    RedisConfig
	Cache    CacheConfig
	Log      LogConfig
	Planner  PlannerConfig
	Worker   WorkerConfig
}

type ServerConfig struct {
	Host string
	Port int
	Env  string
}

type DatabaseConfig struct {
	Host            string
	Port            int
	User            string
	Password        string
	DBName          string
	SSLMode         string
	MaxConns        int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
	ConnMaxIdleTime time.Duration
}

type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
}

type CacheConfig struct {
	PlanCacheTTL time.Duration
}

type LogConfig struct {
	Level string
}

// PlannerConfig carries the day-scheduling constraints and the strategy
// size thresholds.
type PlannerConfig struct {
	HomeLat         float64
	HomeLon         float64
	SpeedKmh        float64
	Service         time.Duration
	Buffer          time.Duration
	Start           domain.TimeOfDay
	Deadline        domain.TimeOfDay
	BreakStart      domain.TimeOfDay
	BreakEnd        domain.TimeOfDay
	MaxDays         int
	BruteForceMax   int
	ChristofidesMax int
	TwoOptMax       int
}

type WorkerConfig struct {
	Enabled           bool
	ConsumerGroup     string
	StreamReadTimeout time.Duration
	MaxRetries        int
}

func Load() (*Config, error) {
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	start, err := timeOfDay("PLANNER_START_TIME", "09:00")
	if err != nil {
		return nil, err
	}
	deadline, err := timeOfDay("PLANNER_DEADLINE", "17:00")
	if err != nil {
		return nil, err
	}
	breakStart, err := timeOfDay("PLANNER_BREAK_START", "12:00")
	if err != nil {
		return nil, err
	}
	breakEnd, err := timeOfDay("PLANNER_BREAK_END", "13:00")
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		Server: ServerConfig{
			Host: viper.GetString("API_HOST"),
			Port: viper.GetInt("API_PORT"),
			Env:  viper.GetString("API_ENV"),
		},
		Database: DatabaseConfig{
			Host:            viper.GetString("DB_HOST"),
			Port:            viper.GetInt("DB_PORT"),
			User:            viper.GetString("DB_USER"),
			Password:        viper.GetString("DB_PASSWORD"),
			DBName:          viper.GetString("DB_NAME"),
			SSLMode:         viper.GetString("DB_SSLMODE"),
			MaxConns:        viper.GetInt("DB_MAX_CONNS"),
			MaxIdleConns:    viper.GetInt("DB_MAX_IDLE_CONNS"),
			ConnMaxLifetime: time.Duration(viper.GetInt("DB_CONN_MAX_LIFETIME")) * time.Second,
			ConnMaxIdleTime: time.Duration(viper.GetInt("DB_CONN_MAX_IDLE_TIME")) * time.Second,
		},
		Redis: RedisConfig{
			Host:     viper.GetString("REDIS_HOST"),
			Port:     viper.GetInt("REDIS_PORT"),
			Password: viper.GetString("REDIS_PASSWORD"),
			DB:       viper.GetInt("REDIS_DB"),
		},
		Cache: CacheConfig{
			PlanCacheTTL: time.Duration(viper.GetInt("PLAN_CACHE_TTL")) * time.Second,
		},
		Log: LogConfig{
			Level: viper.GetString("LOG_LEVEL"),
		},
		Planner: PlannerConfig{
			HomeLat:         viper.GetFloat64("PLANNER_HOME_LAT"),
			HomeLon:         viper.GetFloat64("PLANNER_HOME_LON"),
			SpeedKmh:        viper.GetFloat64("PLANNER_SPEED_KMH"),
			Service:         time.Duration(viper.GetInt("PLANNER_SERVICE_MINUTES")) * time.Minute,
			Buffer:          time.Duration(viper.GetInt("PLANNER_BUFFER_MINUTES")) * time.Minute,
			Start:           start,
			Deadline:        deadline,
			BreakStart:      breakStart,
			BreakEnd:        breakEnd,
			MaxDays:         viper.GetInt("PLANNER_MAX_DAYS"),
			BruteForceMax:   viper.GetInt("PLANNER_BRUTE_FORCE_MAX"),
			ChristofidesMax: viper.GetInt("PLANNER_CHRISTOFIDES_MAX"),
			TwoOptMax:       viper.GetInt("PLANNER_TWO_OPT_MAX"),
		},
		Worker: WorkerConfig{
			Enabled:           viper.GetBool("WORKER_ENABLED"),
			ConsumerGroup:     viper.GetString("WORKER_CONSUMER_GROUP"),
			StreamReadTimeout: time.Duration(viper.GetInt("WORKER_STREAM_READ_TIMEOUT")) * time.Millisecond,
			MaxRetries:        viper.GetInt("WORKER_MAX_RETRIES"),
		},
	}

	// Set default values if not provided
	if cfg.Cache.PlanCacheTTL == 0 {
		cfg.Cache.PlanCacheTTL = time.Hour
	}
	if cfg.Planner.HomeLat == 0 && cfg.Planner.HomeLon == 0 {
		cfg.Planner.HomeLat = 14.785244
		cfg.Planner.HomeLon = 102.042534
	}
	if cfg.Planner.SpeedKmh == 0 {
		cfg.Planner.SpeedKmh = 60
	}
	if cfg.Planner.Service == 0 {
		cfg.Planner.Service = 10 * time.Minute
	}
	if cfg.Planner.Buffer == 0 {
		cfg.Planner.Buffer = 30 * time.Minute
	}
	if cfg.Planner.MaxDays == 0 {
		cfg.Planner.MaxDays = 5
	}
	if cfg.Planner.BruteForceMax == 0 {
		cfg.Planner.BruteForceMax = 8
	}
	if cfg.Planner.ChristofidesMax == 0 {
		cfg.Planner.ChristofidesMax = 10
	}
	if cfg.Planner.TwoOptMax == 0 {
		cfg.Planner.TwoOptMax = 25
	}
	if cfg.Worker.ConsumerGroup == "" {
		cfg.Worker.ConsumerGroup = "route-planner-workers"
	}
	if cfg.Worker.StreamReadTimeout == 0 {
		cfg.Worker.StreamReadTimeout = 5000 * time.Millisecond
	}
	if cfg.Worker.MaxRetries == 0 {
		cfg.Worker.MaxRetries = 3
	}

	return cfg, nil
}

func timeOfDay(key, fallback string) (domain.TimeOfDay, error) {
	s := viper.GetString(key)
	if s == "" {
		s = fallback
	}
	t, err := domain.ParseTimeOfDay(s)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return t, nil
}

func (c *Config) GetServerAddr() string {
	return fmt.Sprintf("%s:%d", c.Server.Host, c.Server.Port)
}

func (c *Config) GetDatabaseDSN() string {
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Database.Host,
		c.Database.Port,
		c.Database.User,
		c.Database.Password,
		c.Database.DBName,
		c.Database.SSLMode,
	)
}

func (c *Config) GetRedisAddr() string {
	return fmt.Sprintf("%s:%d", c.Redis.Host, c.Redis.Port)
}

// GetHome returns the configured home location.
func (c *Config) GetHome() domain.Point {
	return domain.Point{Lat: c.Planner.HomeLat, Lon: c.Planner.HomeLon}
}

// GetPlannerParams maps the planner section onto scheduling parameters.
func (c *Config) GetPlannerParams() routing.Params {
	return routing.Params{
		SpeedKmh:   c.Planner.SpeedKmh,
		Service:    c.Planner.Service,
		Buffer:     c.Planner.Buffer,
		Start:      c.Planner.Start,
		Deadline:   c.Planner.Deadline,
		BreakStart: c.Planner.BreakStart,
		BreakEnd:   c.Planner.BreakEnd,
		MaxDays:    c.Planner.MaxDays,
	}
}

// GetPlannerThresholds maps the planner section onto strategy thresholds.
func (c *Config) GetPlannerThresholds() routing.Thresholds {
	return routing.Thresholds{
		BruteForceMax:   c.Planner.BruteForceMax,
		ChristofidesMax: c.Planner.ChristofidesMax,
		TwoOptMax:       c.Planner.TwoOptMax,
	}
}
