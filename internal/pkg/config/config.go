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
	StoragePostgres = "postgres"
	StorageMongo    = "mongo"

	TransportSMTP  = "smtp"
	TransportKafka = "kafka"
)

// Binary selects which settings Load validates.
type Binary int

const (
	HTTPService Binary = iota
	NotifierWorker
)

type (
	Tasks struct {
		OrderStatsInterval time.Duration
	}

	HTTPServer struct {
		Port             string
		RequestTimeout   time.Duration // middleware timeout
		RateLimiterQPS   int           // rate limiter refill per second
		RateLimiterBurst int           // rate limiter capacity
		PprofEnabled     bool
		PprofPort        string
		GRPCHealthPort   string
	}

	Log struct {
		Level string
	}

	Access struct {
		AdminEmails []string
	}

	Orders struct {
		StrictStatus bool
		VerifyTotal  bool
	}

	Storage struct {
		Backend string
	}

	Database struct {
		Host     string
		Port     string
		User     string
		Password string
		DBName   string
		SSLMode  string
	}

	Mongo struct {
		URI            string
		Database       string
		Collection     string
		ConnectTimeout time.Duration
	}

	Redis struct {
		Addr     string
		GuardTTL time.Duration
	}

	Notification struct {
		Transport string
		Timeout   time.Duration
		Recipient string
	}

	SMTP struct {
		Host      string
		Port      int
		Username  string
		Password  string
		From      string
		TLSPolicy string
	}

	Kafka struct {
		PortHealthcheck string
		Brokers         string
		Topic           string
		ConsumerGroup   string
		Sarama          Sarama
		Handlers        KafkaHandlers
	}

	Sarama struct {
		Version                   string
		ConsumerOffsetsAutocommit bool
	}

	KafkaHandlers struct {
		OrderCreated OrderCreated
	}

	OrderCreated struct {
		ProcessTimeout time.Duration
	}

	Config struct {
		Tasks        Tasks
		Server       HTTPServer
		Log          Log
		Access       Access
		Orders       Orders
		Storage      Storage
		Database     Database
		Mongo        Mongo
		Redis        Redis
		Notification Notification
		SMTP         SMTP
		Kafka        Kafka
	}
)

func Load(binary Binary) (*Config, error) {
	cfg, err := loadFromEnv()
	if err != nil {
		return nil, fmt.Errorf("environment loading: %w", err)
	}

	switch binary {
	case HTTPService:
		err = validateHTTPService(cfg)
	case NotifierWorker:
		err = validateNotifierWorker(cfg)
	default:
		err = fmt.Errorf("unknown binary %d", binary)
	}
	if err != nil {
		return nil, fmt.Errorf("validation: %w", err)
	}
	return cfg, nil
}

// KafkaBrokers splits the comma separated KAFKA_BROKERS value.
func (c *Config) KafkaBrokers() []string {
	return splitList(c.Kafka.Brokers)
}

func loadFromEnv() (*Config, error) {
	orderStatsInterval, err := osGetEnvDuration("BACKGROUND_ORDER_STATS_INTERVAL")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	saramaOffsetsAutocommit, err := osGetBool("KAFKA_SARAMA_OFFSETS_AUTOCOMMIT")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	orderCreatedTimeout, err := osGetEnvDuration("KAFKA_HANDLER_ORDER_CREATED_PROCESS_TIMEOUT")
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

	strictStatus, err := osGetBool("ORDERS_STRICT_STATUS")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	verifyTotal, err := osGetBool("ORDERS_VERIFY_TOTAL")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	mongoConnectTimeout, err := osGetEnvDuration("MONGO_CONNECT_TIMEOUT")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	guardTTL, err := osGetEnvDuration("REDIS_DISPATCH_GUARD_TTL")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	notificationTimeout, err := osGetEnvDuration("NOTIFICATION_TIMEOUT")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	smtpPort, err := osGetInt("SMTP_PORT")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	return &Config{
		Tasks: Tasks{
			OrderStatsInterval: orderStatsInterval,
		},
		Server: HTTPServer{
			Port:             os.Getenv("PORT"),
			RequestTimeout:   requestTimeout,
			RateLimiterQPS:   rateLimiterQPS,
			RateLimiterBurst: rateLimiterBurst,
			PprofEnabled:     pprofEnabled,
			PprofPort:        os.Getenv("PPROF_PORT"),
			GRPCHealthPort:   os.Getenv("GRPC_HEALTH_PORT"),
		},
		Log: Log{
			Level: osGetString("LOG_LEVEL", "info"),
		},
		Access: Access{
			AdminEmails: splitList(os.Getenv("ADMIN_EMAILS")),
		},
		Orders: Orders{
			StrictStatus: strictStatus,
			VerifyTotal:  verifyTotal,
		},
		Storage: Storage{
			Backend: strings.ToLower(osGetString("STORAGE_BACKEND", StoragePostgres)),
		},
		Database: Database{
			Host:     os.Getenv("POSTGRES_HOST"),
			Port:     os.Getenv("POSTGRES_PORT"),
			User:     os.Getenv("POSTGRES_USER"),
			Password: os.Getenv("POSTGRES_PASSWORD"),
			DBName:   os.Getenv("POSTGRES_DB"),
			SSLMode:  os.Getenv("POSTGRES_SSLMODE"),
		},
		Mongo: Mongo{
			URI:            os.Getenv("MONGO_URI"),
			Database:       os.Getenv("MONGO_DATABASE"),
			Collection:     osGetString("MONGO_COLLECTION", "orders"),
			ConnectTimeout: orDefault(mongoConnectTimeout, 10*time.Second),
		},
		Redis: Redis{
			Addr:     os.Getenv("REDIS_ADDR"),
			GuardTTL: orDefault(guardTTL, 24*time.Hour),
		},
		Notification: Notification{
			Transport: strings.ToLower(osGetString("NOTIFICATION_TRANSPORT", TransportSMTP)),
			Timeout:   orDefault(notificationTimeout, 30*time.Second),
			Recipient: os.Getenv("NOTIFICATION_RECIPIENT"),
		},
		SMTP: SMTP{
			Host:      os.Getenv("SMTP_HOST"),
			Port:      smtpPort,
			Username:  os.Getenv("SMTP_USERNAME"),
			Password:  os.Getenv("SMTP_PASSWORD"),
			From:      os.Getenv("SMTP_FROM"),
			TLSPolicy: strings.ToLower(osGetString("SMTP_TLS_POLICY", "mandatory")),
		},
		Kafka: Kafka{
			Brokers:         os.Getenv("KAFKA_BROKERS"),
			Topic:           os.Getenv("KAFKA_TOPIC"),
			ConsumerGroup:   os.Getenv("KAFKA_CONSUMER_GROUP"),
			PortHealthcheck: os.Getenv("KAFKA_HTTP_HEALTHCHECK_PORT"),
			Sarama: Sarama{
				Version:                   os.Getenv("KAFKA_SARAMA_VERSION"),
				ConsumerOffsetsAutocommit: saramaOffsetsAutocommit,
			},
			Handlers: KafkaHandlers{
				OrderCreated: OrderCreated{
					ProcessTimeout: orderCreatedTimeout,
				},
			},
		},
	}, nil
}

func validateHTTPService(cfg *Config) error {
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
	if cfg.Server.GRPCHealthPort == "" {
		return errors.New("GRPC_HEALTH_PORT is required")
	}

	if len(cfg.Access.AdminEmails) == 0 {
		return errors.New("ADMIN_EMAILS is required")
	}

	if cfg.Tasks.OrderStatsInterval == time.Duration(0) {
		return errors.New("BACKGROUND_ORDER_STATS_INTERVAL is required")
	}

	switch cfg.Storage.Backend {
	case StoragePostgres:
		if err := validateDatabase(&cfg.Database); err != nil {
			return err
		}
	case StorageMongo:
		if err := validateMongo(&cfg.Mongo); err != nil {
			return err
		}
	default:
		return fmt.Errorf("STORAGE_BACKEND must be %q or %q, got %q", StoragePostgres, StorageMongo, cfg.Storage.Backend)
	}

	if cfg.Notification.Timeout < 0 {
		return errors.New("NOTIFICATION_TIMEOUT must not be negative")
	}
	switch cfg.Notification.Transport {
	case TransportSMTP:
		return validateSMTP(cfg)
	case TransportKafka:
		return validateKafkaProducer(&cfg.Kafka)
	default:
		return fmt.Errorf("NOTIFICATION_TRANSPORT must be %q or %q, got %q", TransportSMTP, TransportKafka, cfg.Notification.Transport)
	}
}

func validateNotifierWorker(cfg *Config) error {
	if err := validateKafkaProducer(&cfg.Kafka); err != nil {
		return err
	}
	if cfg.Kafka.ConsumerGroup == "" {
		return errors.New("KAFKA_CONSUMER_GROUP is required")
	}
	if cfg.Kafka.PortHealthcheck == "" {
		return errors.New("KAFKA_HTTP_HEALTHCHECK_PORT is required")
	}
	if cfg.Kafka.Handlers.OrderCreated.ProcessTimeout == time.Duration(0) {
		return errors.New("KAFKA_HANDLER_ORDER_CREATED_PROCESS_TIMEOUT is required")
	}

	if cfg.Redis.Addr == "" {
		return errors.New("REDIS_ADDR is required")
	}

	return validateSMTP(cfg)
}

func validateDatabase(db *Database) error {
	if db.Host == "" {
		return errors.New("POSTGRES_HOST is required")
	}
	if db.Port == "" {
		return errors.New("POSTGRES_PORT is required")
	}
	if db.User == "" {
		return errors.New("POSTGRES_USER is required")
	}
	if db.Password == "" {
		return errors.New("POSTGRES_PASSWORD is required")
	}
	if db.DBName == "" {
		return errors.New("POSTGRES_DB is required")
	}
	if db.SSLMode == "" {
		return errors.New("POSTGRES_SSLMODE is required")
	}
	return nil
}

func validateMongo(m *Mongo) error {
	if m.URI == "" {
		return errors.New("MONGO_URI is required")
	}
	if m.Database == "" {
		return errors.New("MONGO_DATABASE is required")
	}
	return nil
}

func validateSMTP(cfg *Config) error {
	if cfg.SMTP.Host == "" {
		return errors.New("SMTP_HOST is required")
	}
	if cfg.SMTP.Port == 0 {
		return errors.New("SMTP_PORT is required")
	}
	if cfg.SMTP.From == "" {
		return errors.New("SMTP_FROM is required")
	}
	switch cfg.SMTP.TLSPolicy {
	case "mandatory", "opportunistic", "none":
	default:
		return fmt.Errorf("SMTP_TLS_POLICY must be mandatory, opportunistic or none, got %q", cfg.SMTP.TLSPolicy)
	}
	if cfg.Notification.Recipient == "" {
		return errors.New("NOTIFICATION_RECIPIENT is required")
	}
	return nil
}

func validateKafkaProducer(k *Kafka) error {
	if k.Brokers == "" {
		return errors.New("KAFKA_BROKERS is required")
	}
	if k.Topic == "" {
		return errors.New("KAFKA_TOPIC is required")
	}
	if k.Sarama.Version == "" {
		return errors.New("KAFKA_SARAMA_VERSION is required")
	}
	return nil
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part != "" {
			out = append(out, part)
		}
	}
	return out
}

func orDefault(d, def time.Duration) time.Duration {
	if d == 0 {
		return def
	}
	return d
}

func osGetString(s, def string) string {
	if val := strings.TrimSpace(os.Getenv(s)); val != "" {
		return val
	}
	return def
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
