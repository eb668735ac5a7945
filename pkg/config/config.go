package config

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Drivers de almacenamiento soportados.
const (
	DriverMemory   = "memory"
	DriverPostgres = "postgres"
)

// Config agrupa la configuración de la aplicación (lectura vía Viper desde env y opcionalmente archivo).
type Config struct {
	App     AppConfig
	HTTP    HTTPConfig
	Storage StorageConfig
	DB      DBConfig
	JWT     JWTConfig
	Session SessionConfig
}

// AppConfig configuración general de la aplicación.
type AppConfig struct {
	Env        string // development, staging, production
	Name       string
	LogLevel   string
	DocsPath   string // swagger.json servido en /docs; vacío lo desactiva
	BcryptCost int
}

// HTTPConfig configuración del servidor HTTP.
type HTTPConfig struct {
	Host string
	Port int
}

// Addr devuelve la dirección de escucha (host:port).
func (c HTTPConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// StorageConfig elige el backend de persistencia: "memory" (por defecto) o "postgres".
type StorageConfig struct {
	Driver string
}

// DBConfig configuración de PostgreSQL (solo con STORAGE_DRIVER=postgres).
// Si DatabaseURL no está vacío, se usa como connection string completo.
type DBConfig struct {
	DatabaseURL string
	Host        string
	Port        int
	User        string
	Password    string
	DBName      string
	SSLMode     string
}

// ConnectionString devuelve el DSN a usar: DATABASE_URL si está definido, si no el construido con DSN().
func (c DBConfig) ConnectionString() string {
	if c.DatabaseURL != "" {
		return c.DatabaseURL
	}
	return c.DSN()
}

// DSN devuelve el connection string para PostgreSQL con URL encoding para caracteres especiales.
func (c DBConfig) DSN() string {
	u := &url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(c.User, c.Password),
		Host:     fmt.Sprintf("%s:%d", c.Host, c.Port),
		Path:     "/" + c.DBName,
		RawQuery: fmt.Sprintf("sslmode=%s", c.SSLMode),
	}
	return u.String()
}

// JWTConfig configuración del token Bearer opcional. Secret vacío desactiva los tokens.
type JWTConfig struct {
	Secret     string
	Expiration int // minutos
	Issuer     string
}

// SessionConfig configuración de las sesiones por cookie.
type SessionConfig struct {
	CookieName   string
	CookieSecure bool
	Expiration   time.Duration
	CheckPeriod  time.Duration // intervalo del barrido de sesiones expiradas
}

// Load lee la configuración desde variables de entorno (y opcionalmente desde archivo).
// Las env vars tienen prioridad. Nombres esperados: APP_ENV, HTTP_PORT, STORAGE_DRIVER, SESSION_TTL_HOURS, etc.
func Load() (*Config, error) {
	v := viper.New()

	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AddConfigPath(".")
	_ = v.ReadInConfig() // ignoramos error si no existe

	v.SetConfigName("config")
	v.AddConfigPath("./config")
	_ = v.ReadInConfig()

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	cfg := &Config{
		App: AppConfig{
			Env:        getString(v, "APP_ENV", "development"),
			Name:       getString(v, "APP_NAME", "foodorder-api"),
			LogLevel:   getString(v, "LOG_LEVEL", "info"),
			DocsPath:   getString(v, "DOCS_PATH", "./docs/swagger.json"),
			BcryptCost: getInt(v, "BCRYPT_COST", 10),
		},
		HTTP: HTTPConfig{
			Host: getString(v, "HTTP_HOST", "0.0.0.0"),
			Port: getInt(v, "HTTP_PORT", 5000),
		},
		Storage: StorageConfig{
			Driver: strings.ToLower(getString(v, "STORAGE_DRIVER", DriverMemory)),
		},
		DB: DBConfig{
			DatabaseURL: getString(v, "DATABASE_URL", ""),
			Host:        getString(v, "DB_HOST", "localhost"),
			Port:        getInt(v, "DB_PORT", 5432),
			User:        getString(v, "DB_USER", "postgres"),
			Password:    getString(v, "DB_PASSWORD", ""),
			DBName:      getString(v, "DB_NAME", "foodorder"),
			SSLMode:     getString(v, "DB_SSLMODE", "disable"),
		},
		JWT: JWTConfig{
			Secret:     getString(v, "JWT_SECRET", ""),
			Expiration: getInt(v, "JWT_EXPIRATION_MINUTES", 60),
			Issuer:     getString(v, "JWT_ISSUER", "foodorder-api"),
		},
		Session: SessionConfig{
			CookieName:   getString(v, "SESSION_COOKIE_NAME", "connect.sid"),
			CookieSecure: getString(v, "SESSION_COOKIE_SECURE", "false") == "true",
			Expiration:   time.Duration(getInt(v, "SESSION_TTL_HOURS", 24)) * time.Hour,
			CheckPeriod:  time.Duration(getInt(v, "SESSION_CHECK_PERIOD_HOURS", 24)) * time.Hour,
		},
	}

	switch cfg.Storage.Driver {
	case DriverMemory, DriverPostgres:
	default:
		return nil, fmt.Errorf("config: STORAGE_DRIVER desconocido %q", cfg.Storage.Driver)
	}
	if cfg.Session.CheckPeriod <= 0 {
		return nil, fmt.Errorf("config: SESSION_CHECK_PERIOD_HOURS debe ser mayor que 0")
	}
	return cfg, nil
}

func getString(v *viper.Viper, key, def string) string {
	if v.IsSet(key) {
		return v.GetString(key)
	}
	return def
}

func getInt(v *viper.Viper, key string, def int) int {
	if v.IsSet(key) {
		switch v.Get(key).(type) {
		case int:
			return v.GetInt(key)
		case string:
			n, err := strconv.Atoi(v.GetString(key))
			if err != nil {
				return def
			}
			return n
		default:
			return v.GetInt(key)
		}
	}
	return def
}
