package cfg

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/DRSN-tech/pokeshop/pkg/e"
	"github.com/DRSN-tech/pokeshop/pkg/logger"
	"github.com/jimlawless/whereami"
)

const (
	StorageMemory   = "memory"
	StorageRedis    = "redis"
	StoragePostgres = "postgres"
)

type Config struct {
	LogLevel        string
	ShutdownTimeout time.Duration
	Http            *HTTPConfig
	Grpc            *GRPCConfig
	Storage         *StorageCfg
	Storefront      *StorefrontCfg
	Db              *PGDBCfg
	Redis           *RedisCfg
	Kafka           *KafkaCfg
}

type HTTPConfig struct {
	Port         string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	IdleTimeout  time.Duration
}

type GRPCConfig struct {
	Port        string
	NetworkMode string
}

type StorageCfg struct {
	Backend       string // memory, redis or postgres
	CartKey       string
	FavouritesKey string
	Timeout       time.Duration // per load/save call
}

type StorefrontCfg struct {
	CurrencySymbol string
}

type PGDBCfg struct {
	Host           string
	Port           string
	User           string
	Password       string
	DBName         string
	SSLMode        string
	MigrationsPath string
}

type RedisCfg struct {
	Addr        string
	Password    string
	User        string
	DB          int
	MaxRetries  int
	DialTimeout time.Duration
	Timeout     time.Duration
	KeyPrefix   string
	StateTTL    time.Duration // 0 keeps state forever
}

// KafkaCfg is nil when KAFKA_BROKERS is not set.
type KafkaCfg struct {
	Topic             string
	Brokers           []string
	NetworkMode       string
	Partitions        int
	ReplicationFactor int
}

// Load reads the configuration from the environment.
func Load(log logger.Logger) (*Config, error) {
	storage, err := loadStorageCfg(log)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	http, err := loadHTTPConfig(log)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	var db *PGDBCfg
	if storage.Backend == StoragePostgres {
		db, err = loadPGDBCfg(log)
		if err != nil {
			return nil, e.Wrap(whereami.WhereAmI(), err)
		}
	}

	var redis *RedisCfg
	if storage.Backend == StorageRedis {
		redis, err = loadRedisCfg(log)
		if err != nil {
			return nil, e.Wrap(whereami.WhereAmI(), err)
		}
	}

	kafka, err := loadKafkaCfg()
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	shutdownTimeout, err := parseDurationEnv("SHUTDOWN_TIMEOUT", 10*time.Second)
	if err != nil {
		log.Errorf(err, "invalid SHUTDOWN_TIMEOUT")
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return &Config{
		LogLevel:        getEnvOrDefault("LOG_LEVEL", "info"),
		ShutdownTimeout: shutdownTimeout,
		Http:            http,
		Grpc:            loadGRPCConfig(),
		Storage:         storage,
		Storefront:      loadStorefrontCfg(),
		Db:              db,
		Redis:           redis,
		Kafka:           kafka,
	}, nil
}

func loadStorageCfg(log logger.Logger) (*StorageCfg, error) {
	const (
		defaultBackend       = StorageMemory
		defaultCartKey       = "pokeshop-cart"
		defaultFavouritesKey = "pokeshop-favourites"
		defaultTimeout       = 3 * time.Second
	)

	backend := strings.ToLower(getEnvOrDefault("STORAGE_BACKEND", defaultBackend))
	switch backend {
	case StorageMemory, StorageRedis, StoragePostgres:
	default:
		err := fmt.Errorf("%w: %q", e.ErrUnknownStorageBackend, backend)
		log.Errorf(err, "invalid STORAGE_BACKEND")
		return nil, err
	}

	timeout, err := parseDurationEnv("STORAGE_TIMEOUT", defaultTimeout)
	if err != nil {
		log.Errorf(err, "invalid STORAGE_TIMEOUT")
		return nil, err
	}

	cartKey := getEnvOrDefault("CART_STORAGE_KEY", defaultCartKey)
	favouritesKey := getEnvOrDefault("FAVOURITES_STORAGE_KEY", defaultFavouritesKey)
	if cartKey == favouritesKey {
		err := fmt.Errorf("CART_STORAGE_KEY and FAVOURITES_STORAGE_KEY must differ")
		log.Errorf(err, "invalid storage keys")
		return nil, err
	}

	return &StorageCfg{
		Backend:       backend,
		CartKey:       cartKey,
		FavouritesKey: favouritesKey,
		Timeout:       timeout,
	}, nil
}

func loadStorefrontCfg() *StorefrontCfg {
	const defaultCurrencySymbol = "£"

	return &StorefrontCfg{
		CurrencySymbol: getEnvOrDefault("CURRENCY_SYMBOL", defaultCurrencySymbol),
	}
}

func loadKafkaCfg() (*KafkaCfg, error) {
	const (
		defaultTopic             = "pokeshop-activity"
		defaultPartitions        = 3
		defaultReplicationFactor = 1
		defaultNetworkMode       = "tcp"
	)

	brokerStr := os.Getenv("KAFKA_BROKERS")
	if brokerStr == "" {
		return nil, nil
	}
	brokers := strings.Split(brokerStr, ",")

	partitions, err := parseIntEnv("KAFKA_PARTITIONS", defaultPartitions)
	if err != nil {
		return nil, e.Wrap("KAFKA_PARTITIONS", err)
	}

	replicationFactor, err := parseIntEnv("REPLICATION_FACTOR", defaultReplicationFactor)
	if err != nil {
		return nil, e.Wrap("REPLICATION_FACTOR", err)
	}

	return &KafkaCfg{
		Brokers:           brokers,
		Topic:             getEnvOrDefault("KAFKA_TOPIC", defaultTopic),
		Partitions:        partitions,
		ReplicationFactor: replicationFactor,
		NetworkMode:       getEnvOrDefault("KAFKA_NETWORK_MODE", defaultNetworkMode),
	}, nil
}

func loadHTTPConfig(log logger.Logger) (*HTTPConfig, error) {
	const (
		defaultPort         = "8080"
		defaultReadTimeout  = 5 * time.Second
		defaultWriteTimeout = 10 * time.Second
		defaultIdleTimeout  = 60 * time.Second
	)

	port := getEnvOrDefault("HTTP_PORT", defaultPort)

	readTimeout, err := parseDurationEnv("HTTP_READ_TIMEOUT", defaultReadTimeout)
	if err != nil {
		log.Errorf(err, "invalid HTTP_READ_TIMEOUT")
		return nil, err
	}

	writeTimeout, err := parseDurationEnv("HTTP_WRITE_TIMEOUT", defaultWriteTimeout)
	if err != nil {
		log.Errorf(err, "invalid HTTP_WRITE_TIMEOUT")
		return nil, err
	}

	idleTimeout, err := parseDurationEnv("KEEP_ALIVE", defaultIdleTimeout)
	if err != nil {
		log.Errorf(err, "invalid KEEP_ALIVE")
		return nil, err
	}

	return &HTTPConfig{
		Port:         port,
		ReadTimeout:  readTimeout,
		WriteTimeout: writeTimeout,
		IdleTimeout:  idleTimeout,
	}, nil
}

func loadGRPCConfig() *GRPCConfig {
	const (
		defaultPort        = "8091"
		defaultNetworkMode = "tcp"
	)

	return &GRPCConfig{
		Port:        getEnvOrDefault("GRPC_PORT", defaultPort),
		NetworkMode: getEnvOrDefault("GRPC_NETWORK_MODE", defaultNetworkMode),
	}
}

func loadPGDBCfg(log logger.Logger) (*PGDBCfg, error) {
	const (
		defaultHost           = "localhost"
		defaultPort           = "5432"
		defaultSSLMode        = "disable"
		defaultMigrationsPath = "db/migrations"
	)

	user := getEnv("POSTGRES_USER")
	if user == "" {
		err := fmt.Errorf("POSTGRES_USER is required")
		log.Errorf(err, "missing POSTGRES_USER")
		return nil, err
	}

	password := getEnv("POSTGRES_PASSWORD")
	if password == "" {
		err := fmt.Errorf("POSTGRES_PASSWORD is required")
		log.Errorf(err, "missing POSTGRES_PASSWORD")
		return nil, err
	}

	dbName := getEnv("POSTGRES_DB")
	if dbName == "" {
		err := fmt.Errorf("POSTGRES_DB is required")
		log.Errorf(err, "missing POSTGRES_DB")
		return nil, err
	}

	return &PGDBCfg{
		Host:           getEnvOrDefault("POSTGRES_HOST", defaultHost),
		Port:           getEnvOrDefault("POSTGRES_PORT", defaultPort),
		User:           user,
		Password:       password,
		DBName:         dbName,
		SSLMode:        getEnvOrDefault("SSL_MODE", defaultSSLMode),
		MigrationsPath: getEnvOrDefault("MIGRATIONS_PATH", defaultMigrationsPath),
	}, nil
}

func loadRedisCfg(log logger.Logger) (*RedisCfg, error) {
	const (
		defaultAddr         = "localhost:6379"
		defaultDB           = 0
		defaultMaxRetries   = 3
		defaultDialTimeout  = 5 * time.Second
		defaultReadTimeout  = 3 * time.Second
		defaultWriteTimeout = 3 * time.Second
		defaultKeyPrefix    = "pokeshop"
	)

	db, err := parseIntEnv("REDIS_DB_ID", defaultDB)
	if err != nil {
		log.Errorf(err, "invalid REDIS_DB_ID")
		return nil, err
	}

	maxRetries, err := parseIntEnv("MAX_RETRIES", defaultMaxRetries)
	if err != nil {
		log.Errorf(err, "invalid MAX_RETRIES")
		return nil, err
	}

	dialTimeout, err := parseDurationEnv("DIAL_TIMEOUT", defaultDialTimeout)
	if err != nil {
		log.Errorf(err, "invalid DIAL_TIMEOUT")
		return nil, err
	}

	readTimeout, err := parseDurationEnv("READ_TIMEOUT", defaultReadTimeout)
	if err != nil {
		log.Errorf(err, "invalid READ_TIMEOUT")
		return nil, err
	}

	writeTimeout, err := parseDurationEnv("WRITE_TIMEOUT", defaultWriteTimeout)
	if err != nil {
		log.Errorf(err, "invalid WRITE_TIMEOUT")
		return nil, err
	}

	stateTTL, err := parseDurationEnv("STATE_TTL", 0)
	if err != nil {
		log.Errorf(err, "invalid STATE_TTL")
		return nil, err
	}

	timeout := readTimeout
	if writeTimeout > timeout {
		timeout = writeTimeout
	}

	return &RedisCfg{
		Addr:        getEnvOrDefault("REDIS_ADDR", defaultAddr),
		Password:    getEnv("REDIS_PASSWORD"),
		User:        getEnv("REDIS_USER"),
		DB:          db,
		MaxRetries:  maxRetries,
		DialTimeout: dialTimeout,
		Timeout:     timeout,
		KeyPrefix:   getEnvOrDefault("REDIS_KEY_PREFIX", defaultKeyPrefix),
		StateTTL:    stateTTL,
	}, nil
}

// getEnv returns the variable or an empty string.
func getEnv(key string) string {
	return os.Getenv(key)
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}

	return defaultValue
}

func parseDurationEnv(key string, defaultValue time.Duration) (time.Duration, error) {
	if v := os.Getenv(key); v != "" {
		return time.ParseDuration(v)
	}

	return defaultValue, nil
}

func parseIntEnv(key string, defaultValue int) (int, error) {
	v := os.Getenv(key)
	if v == "" {
		return defaultValue, nil
	}

	intValue, err := strconv.Atoi(v)
	if err != nil {
		return defaultValue, e.Wrap(key, e.ErrIncorrectEnvVariable)
	}

	return intValue, nil
}
