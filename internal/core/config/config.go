package config

import (
	"log"
	"os"
	"strings"

	"github.com/go-viper/mapstructure/v2"
	"github.com/spf13/viper"
)

type HTTP struct {
	Host              string
	Port              int
	ReadTimeoutSec    int
	WriteTimeoutSec   int
	IdleTimeoutSec    int
	RequestTimeoutSec int
}

type App struct {
	Name string
	Env  string
	HTTP HTTP
}

type Log struct {
	Level string
	JSON  bool
}

type DB struct {
	Driver             string
	Host               string
	Port               int
	User               string
	Password           string
	Name               string
	MaxOpenConns       int
	MaxIdleConns       int
	ConnMaxLifetimeMin int
	AutoMigrate        bool
	LogLevel           string
}

type Client struct {
	BaseURL    string
	TimeoutSec int
}

type Config struct {
	App    App
	Log    Log
	DB     DB
	Client Client
}

// Load reads an optional YAML file (CONFIG_PATH) and overlays APP_* environment
// variables. The legacy env names from the original deployment (DB_HOST, DB_USER,
// DB_PASSWORD, DB_NAME, PORT) are bound too, so the service runs on environment
// configuration alone.
func Load(path string) *Config {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix("APP")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	_ = v.BindEnv("db.host", "APP_DB_HOST", "DB_HOST")
	_ = v.BindEnv("db.user", "APP_DB_USER", "DB_USER")
	_ = v.BindEnv("db.password", "APP_DB_PASSWORD", "DB_PASSWORD")
	_ = v.BindEnv("db.name", "APP_DB_NAME", "DB_NAME")
	_ = v.BindEnv("app.http.port", "APP_APP_HTTP_PORT", "PORT")
	_ = v.BindEnv("client.baseurl", "APP_CLIENT_BASEURL", "API_BASE_URL")

	if path == "" {
		path = os.Getenv("CONFIG_PATH")
	}
	if path != "" {
		v.SetConfigFile(path)
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			log.Fatalf("read config %s: %v", path, err)
		}
	}

	var c Config
	// env values arrive as strings; decode them into the typed fields
	weak := func(dc *mapstructure.DecoderConfig) { dc.WeaklyTypedInput = true }
	if err := v.Unmarshal(&c, weak); err != nil {
		log.Fatalf("unmarshal config: %v", err)
	}
	return &c
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("app.name", "employee-records")
	v.SetDefault("app.env", "dev")
	v.SetDefault("app.http.host", "0.0.0.0")
	v.SetDefault("app.http.port", 5000)
	v.SetDefault("app.http.readtimeoutsec", 15)
	v.SetDefault("app.http.writetimeoutsec", 15)
	v.SetDefault("app.http.idletimeoutsec", 60)
	v.SetDefault("app.http.requesttimeoutsec", 10)

	v.SetDefault("log.level", "info")
	v.SetDefault("log.json", false)

	v.SetDefault("db.driver", "mysql")
	v.SetDefault("db.host", "127.0.0.1")
	v.SetDefault("db.port", 3306)
	v.SetDefault("db.user", "root")
	v.SetDefault("db.password", "")
	v.SetDefault("db.name", "employees")
	v.SetDefault("db.maxopenconns", 20)
	v.SetDefault("db.maxidleconns", 5)
	v.SetDefault("db.connmaxlifetimemin", 30)
	v.SetDefault("db.automigrate", true)
	v.SetDefault("db.loglevel", "warn")

	v.SetDefault("client.baseurl", "http://localhost:5000")
	v.SetDefault("client.timeoutsec", 10)
}
