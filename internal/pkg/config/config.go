package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

const (
	NotificationsSourceGraphQL = "graphql"
	NotificationsSourceKafka   = "kafka"

	defaultNotificationsCapacity = 20
	defaultGraphQLTimeout        = 10 * time.Second
	defaultCacheTTL              = 30 * time.Second
)

type (
	Tasks struct {
		TranscriptCleanupInterval time.Duration
		TranscriptRetention       time.Duration
	}

	HTTPServer struct {
		Port             string
		RequestTimeout   time.Duration // middleware timeout
		RateLimiterQPS   int           // rate limiter capacity
		RateLimiterBurst int           // rate limiter refill per second
		PprofEnabled     bool
		PprofPort        string
	}

	Log struct {
		Debug bool
	}

	Database struct {
		Host     string
		Port     string
		User     string
		Password string
		DBName   string
		SSLMode  string
	}

	GraphQL struct {
		HTTPEndpoint   string
		WSEndpoint     string
		RequestTimeout time.Duration
		// ServiceToken authenticates the subscription; user tokens are forwarded per request.
		ServiceToken string
	}

	Notifications struct {
		Capacity int
		Source   string
	}

	Kafka struct {
		Brokers       string
		Topic         string
		ConsumerGroup string
		Sarama        Sarama
		Handlers      KafkaHandlers
	}

	Sarama struct {
		Version                   string
		ConsumerOffsetsAutocommit bool
	}

	KafkaHandlers struct {
		PackageUpdated PackageUpdated
	}

	PackageUpdated struct {
		ProcessTimeout time.Duration
	}

	Redis struct {
		// Empty Addr disables the lookup cache.
		Addr     string
		Password string
		DB       int
		CacheTTL time.Duration
	}

	Auth struct {
		JWTSecret   string
		AdminUserID string
	}

	Config struct {
		Tasks         Tasks
		Server        HTTPServer
		Log           Log
		Database      Database
		GraphQL       GraphQL
		Notifications Notifications
		Kafka         Kafka
		Redis         Redis
		Auth          Auth
	}
)

func Load() (*Config, error) {
	cfg, err := loadFromEnv()
	if err != nil {
		return nil, fmt.Errorf("environment loading: %w", err)
	}

	if err := validateConfig(cfg); err != nil {
		return nil, fmt.Errorf("validation: %w", err)
	}
	return cfg, nil
}

func loadFromEnv() (*Config, error) {
	cleanupInterval, err := osGetEnvDuration("BACKGROUND_TRANSCRIPT_CLEANUP_INTERVAL")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	retention, err := osGetEnvDuration("TRANSCRIPT_RETENTION")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	requestTimeout, err := osGetEnvDuration("MIDDLEWARE_REQUEST_TIMEOUT")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	rateLimiterQPS, err := osGetInt("MIDDLEWARE_RATE_LIMIT_QPS")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	rateLimiterBurst, err := osGetInt("MIDDLEWARE_RATE_LIMIT_BURST")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	pprofEnabled, err := osGetBool("PPROF_ENABLED")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	logDebug, err := osGetBool("LOG_DEBUG")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	graphqlTimeout, err := osGetEnvDuration("GRAPHQL_REQUEST_TIMEOUT")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	if graphqlTimeout == 0 {
		graphqlTimeout = defaultGraphQLTimeout
	}

	capacity, err := osGetInt("NOTIFICATIONS_CAPACITY")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	if capacity == 0 {
		capacity = defaultNotificationsCapacity
	}

	source := strings.ToLower(os.Getenv("NOTIFICATIONS_SOURCE"))
	if source == "" {
		source = NotificationsSourceGraphQL
	}

	saramaOffsetsAutocommit, err := osGetBool("KAFKA_SARAMA_OFFSETS_AUTOCOMMIT")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	packageUpdatedTimeout, err := osGetEnvDuration("KAFKA_HANDLER_PACKAGE_UPDATED_PROCESS_TIMEOUT")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	redisDB, err := osGetInt("REDIS_DB")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	cacheTTL, err := osGetEnvDuration("REDIS_CACHE_TTL")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	if cacheTTL == 0 {
		cacheTTL = defaultCacheTTL
	}

	return &Config{
		Tasks: Tasks{
			TranscriptCleanupInterval: cleanupInterval,
			TranscriptRetention:       retention,
		},
		Server: HTTPServer{
			Port:             os.Getenv("PORT"),
			RequestTimeout:   requestTimeout,
			RateLimiterQPS:   rateLimiterQPS,
			RateLimiterBurst: rateLimiterBurst,
			PprofEnabled:     pprofEnabled,
			PprofPort:        os.Getenv("PPROF_PORT"),
		},
		Log: Log{
			Debug: logDebug,
		},
		Database: Database{
			Host:     os.Getenv("POSTGRES_HOST"),
			Port:     os.Getenv("POSTGRES_PORT"),
			User:     os.Getenv("POSTGRES_USER"),
			Password: os.Getenv("POSTGRES_PASSWORD"),
			DBName:   os.Getenv("POSTGRES_DB"),
			SSLMode:  os.Getenv("POSTGRES_SSLMODE"),
		},
		GraphQL: GraphQL{
			HTTPEndpoint:   os.Getenv("GRAPHQL_HTTP_ENDPOINT"),
			WSEndpoint:     os.Getenv("GRAPHQL_WS_ENDPOINT"),
			RequestTimeout: graphqlTimeout,
			ServiceToken:   os.Getenv("GRAPHQL_SERVICE_TOKEN"),
		},
		Notifications: Notifications{
			Capacity: capacity,
			Source:   source,
		},
		Kafka: Kafka{
			Brokers:       os.Getenv("KAFKA_BROKERS"),
			Topic:         os.Getenv("KAFKA_TOPIC"),
			ConsumerGroup: os.Getenv("KAFKA_CONSUMER_GROUP"),
			Sarama: Sarama{
				Version:                   os.Getenv("KAFKA_SARAMA_VERSION"),
				ConsumerOffsetsAutocommit: saramaOffsetsAutocommit,
			},
			Handlers: KafkaHandlers{
				PackageUpdated: PackageUpdated{
					ProcessTimeout: packageUpdatedTimeout,
				},
			},
		},
		Redis: Redis{
			Addr:     os.Getenv("REDIS_ADDR"),
			Password: os.Getenv("REDIS_PASSWORD"),
			DB:       redisDB,
			CacheTTL: cacheTTL,
		},
		Auth: Auth{
			JWTSecret:   os.Getenv("AUTH_JWT_SECRET"),
			AdminUserID: os.Getenv("AUTH_ADMIN_USER_ID"),
		},
	}, nil
}

func validateConfig(cfg *Config) error {
	if cfg.Server.Port == "" {
		return errors.New("server port is required (set via PORT env variable)")
	}
	if cfg.Server.RequestTimeout == time.Duration(0) {
		return errors.New("MIDDLEWARE_REQUEST_TIMEOUT is required")
	}
	if cfg.Server.RateLimiterQPS == 0 {
		return errors.New("MIDDLEWARE_RATE_LIMIT_QPS is required")
	}
	if cfg.Server.RateLimiterBurst == 0 {
		return errors.New("MIDDLEWARE_RATE_LIMIT_BURST is required")
	}
	if cfg.Server.PprofPort == "" && cfg.Server.PprofEnabled {
		return errors.New("PprofPort is required (set via PPROF_PORT env variable)")
	}

	if cfg.Database.Host == "" {
		return errors.New("POSTGRES_HOST is required")
	}
	if cfg.Database.Port == "" {
		return errors.New("POSTGRES_PORT is required")
	}
	if cfg.Database.User == "" {
		return errors.New("POSTGRES_USER is required")
	}
	if cfg.Database.Password == "" {
		return errors.New("POSTGRES_PASSWORD is required")
	}
	if cfg.Database.DBName == "" {
		return errors.New("POSTGRES_DB is required")
	}
	if cfg.Database.SSLMode == "" {
		return errors.New("POSTGRES_SSLMODE is required")
	}

	if cfg.Tasks.TranscriptCleanupInterval == time.Duration(0) {
		return errors.New("BACKGROUND_TRANSCRIPT_CLEANUP_INTERVAL is required")
	}
	if cfg.Tasks.TranscriptRetention == time.Duration(0) {
		return errors.New("TRANSCRIPT_RETENTION is required")
	}

	if cfg.GraphQL.HTTPEndpoint == "" {
		return errors.New("GRAPHQL_HTTP_ENDPOINT is required")
	}

	if cfg.Auth.AdminUserID != "" && cfg.Auth.JWTSecret == "" {
		return errors.New("AUTH_JWT_SECRET is required when AUTH_ADMIN_USER_ID is set")
	}

	if cfg.Notifications.Capacity < 0 {
		return errors.New("NOTIFICATIONS_CAPACITY must be positive")
	}

	switch cfg.Notifications.Source {
	case NotificationsSourceGraphQL:
		if cfg.GraphQL.WSEndpoint == "" {
			return errors.New("GRAPHQL_WS_ENDPOINT is required")
		}
	case NotificationsSourceKafka:
		if err := validateKafka(cfg.Kafka); err != nil {
			return err
		}
	default:
		return fmt.Errorf("NOTIFICATIONS_SOURCE must be %q or %q, got %q",
			NotificationsSourceGraphQL, NotificationsSourceKafka, cfg.Notifications.Source)
	}

	return nil
}

func validateKafka(cfg Kafka) error {
	if cfg.Brokers == "" {
		return errors.New("KAFKA_BROKERS is required")
	}
	if cfg.Topic == "" {
		return errors.New("KAFKA_TOPIC is required")
	}
	if cfg.ConsumerGroup == "" {
		return errors.New("KAFKA_CONSUMER_GROUP is required")
	}
	if cfg.Sarama.Version == "" {
		return errors.New("KAFKA_SARAMA_VERSION is required")
	}
	if cfg.Handlers.PackageUpdated.ProcessTimeout == time.Duration(0) {
		return errors.New("KAFKA_HANDLER_PACKAGE_UPDATED_PROCESS_TIMEOUT is required")
	}
	return nil
}

func osGetInt(s string) (int, error) {
	val := os.Getenv(s)
	if val == "" {
		return 0, nil
	}

	res, err := strconv.Atoi(val)
	if err != nil {
		return 0, fmt.Errorf("invalid int format for %s=%q: %w", s, val, err)
	}
	return res, nil
}

func osGetEnvDuration(s string) (time.Duration, error) {
	val := os.Getenv(s)
	if val == "" {
		return time.Duration(0), nil
	}

	res, err := time.ParseDuration(val)
	if err != nil {
		return time.Duration(0), fmt.Errorf("invalid duration format for %s=%q: %w", s, val, err)
	}
	return res, nil
}

func osGetBool(s string) (bool, error) {
	val := os.Getenv(s)
	if val == "" {
		return false, nil
	}

	res, err := strconv.ParseBool(val)
	if err != nil {
		return false, fmt.Errorf("invalid bool format for %s=%q: %w", s, val, err)
	}
	return res, nil
}
