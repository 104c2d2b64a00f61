package config

import (
	"fmt"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
	"path"
	"strings"
	"time"
)

// Config is the whole process configuration, loaded once in main
type Config struct {
	Server   ServerConfig   `mapstructure:"server"`
	MySQL    MySQLConfig    `mapstructure:"mysql"`
	Memcache MemcacheConfig `mapstructure:"memcache"`
	Log      LogConfig      `mapstructure:"log"`
	Jaeger   JaegerConfig   `mapstructure:"jaeger"`
	Reminder ReminderConfig `mapstructure:"reminder"`
}

// Validate ...
func (c Config) Validate() error {
	return c.Reminder.Validate()
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.grpc.host", "localhost")
	v.SetDefault("server.grpc.port", 5000)
	v.SetDefault("server.http.host", "localhost")
	v.SetDefault("server.http.port", 5080)

	v.SetDefault("mysql.host", "localhost")
	v.SetDefault("mysql.port", 3306)
	v.SetDefault("mysql.database", "club")
	v.SetDefault("mysql.username", "root")
	v.SetDefault("mysql.password", "1")
	v.SetDefault("mysql.max_open_conns", 10)
	v.SetDefault("mysql.max_idle_conns", 5)

	v.SetDefault("memcache.host", "localhost")
	v.SetDefault("memcache.port", 11211)
	v.SetDefault("memcache.num_conns", 1)

	v.SetDefault("log.level", "info")
	v.SetDefault("log.development", false)

	v.SetDefault("jaeger.enabled", false)
	v.SetDefault("jaeger.url", "http://localhost:14268/api/traces")
	v.SetDefault("jaeger.sample_ratio", 1.0)

	v.SetDefault("reminder.tolerance", 15*time.Minute)
	v.SetDefault("reminder.claim_events", false)
	v.SetDefault("reminder.timeout", time.Duration(0))
	v.SetDefault("reminder.interval", time.Duration(0))
	v.SetDefault("reminder.lock.enabled", false)
	v.SetDefault("reminder.lock.key", "club-reminder:event-24h")
	v.SetDefault("reminder.lock.ttl_seconds", 300)
}

func loadConfig(dir string, name string) (Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetConfigName(name)
	v.SetConfigType("yml")
	v.AddConfigPath(dir)

	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	err := v.ReadInConfig()
	if err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return Config{}, err
		}
	}

	var conf Config
	if err := v.Unmarshal(&conf); err != nil {
		return Config{}, err
	}
	if err := conf.Validate(); err != nil {
		return Config{}, err
	}
	return conf, nil
}

// Load reads config.yml in the working directory, environment variables override it.
// Variables in .env are loaded into the environment first when the file exists.
func Load() Config {
	_ = godotenv.Load()

	conf, err := loadConfig(".", "config")
	if err != nil {
		panic(fmt.Sprintf("load config: %v", err))
	}
	return conf
}

// LoadTestConfig reads config.test.yml in rootDir
func LoadTestConfig(rootDir string) Config {
	_ = godotenv.Load(path.Join(rootDir, ".env.test"))

	conf, err := loadConfig(rootDir, "config.test")
	if err != nil {
		panic(fmt.Sprintf("load test config: %v", err))
	}
	return conf
}
