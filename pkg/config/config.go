package config

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/viper"
)

// Config agrupa la configuración de la aplicación (lectura vía Viper desde env
// y opcionalmente archivo .env). Cada valor tiene un default fijo si falta.
type Config struct {
	App   AppConfig
	Store StoreConfig
	HTTP  HTTPConfig
	Admin AdminConfig
}

// AppConfig configuración general de la aplicación.
type AppConfig struct {
	Env   string // development, staging, production
	Name  string
	Title string // encabezado de la página y de los reportes de exportación
}

// StoreConfig configuración del store de items.
// Driver selecciona el adaptador: postgres (default), sqlite o memory.
type StoreConfig struct {
	Driver      string
	DatabaseURL string // postgres
	SQLitePath  string // sqlite
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

// AdminConfig secreto compartido que protege las mutaciones.
// Si PasswordHash (bcrypt) está definido, tiene prioridad sobre Password.
type AdminConfig struct {
	Password     string
	PasswordHash string
}

// Load lee la configuración desde variables de entorno (y opcionalmente desde
// un archivo .env en el directorio de trabajo). Las env vars tienen prioridad.
func Load() (*Config, error) {
	v := viper.New()

	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AddConfigPath(".")
	_ = v.ReadInConfig() // ignoramos error si no existe

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	cfg := &Config{
		App: AppConfig{
			Env:   getString(v, "APP_ENV", "development"),
			Name:  getString(v, "APP_NAME", "sayari-app"),
			Title: getString(v, "APP_TITLE", "Om The Flirter"),
		},
		Store: StoreConfig{
			Driver:      getString(v, "STORE_DRIVER", "postgres"),
			DatabaseURL: getString(v, "DATABASE_URL", "postgres://postgres@localhost:5432/sayari_app?sslmode=disable"),
			SQLitePath:  getString(v, "SQLITE_PATH", "sayari.db"),
		},
		HTTP: HTTPConfig{
			Host: getString(v, "HTTP_HOST", "0.0.0.0"),
			Port: getInt(v, "PORT", 3000),
		},
		Admin: AdminConfig{
			Password:     getString(v, "ADMIN_PASSWORD", "admin123"),
			PasswordHash: getString(v, "ADMIN_PASSWORD_HASH", ""),
		},
	}

	switch cfg.Store.Driver {
	case "postgres", "sqlite", "memory":
	default:
		return nil, fmt.Errorf("STORE_DRIVER desconocido: %q", cfg.Store.Driver)
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
