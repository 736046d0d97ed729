package core

import (
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/pkg/errors"
	"github.com/spf13/viper"
)

// DefaultBackendURL is the REST backend used when none is configured.
const DefaultBackendURL = "https://myschool-official-server-6t886153c.vercel.app"

type Config struct {
	Env      string
	Debug    bool
	TestMode bool
	AppName  string
	Build    string

	Backend struct {
		BaseURL string
		// Timeout of 0 means requests never time out.
		Timeout time.Duration
	}

	Currency struct {
		Symbol string
		Locale string
	}

	RollbarToken string
	ServerHost   string
}

// NewConfig loads the configuration from defaults, an optional `config/.env.<env>` file found
// under workDir, and the environment (prefixed with SCHOOLHUB_).
func NewConfig(workDir string) (*Config, error) {
	v := viper.New()

	// defaults
	v.SetTypeByDefaultValue(true)
	v.SetDefault("debug", false)
	v.SetDefault("test_mode", false)
	v.SetDefault("app_name", "SchoolHub")
	v.SetDefault("build", "dev")
	v.SetDefault("backend_url", DefaultBackendURL)
	v.SetDefault("request_timeout", time.Duration(0))
	v.SetDefault("currency_symbol", "৳")
	v.SetDefault("locale", "en")
	v.SetDefault("rollbar_token", "")
	v.SetDefault("server_host", hostname())

	env := strings.ToUpper(os.Getenv("ENV")) // DEV (local; default), TEST, QA, PROD
	switch env {
	case "":
		env = "DEV"
		v.SetDefault("debug", true)
	case "TEST":
		v.SetDefault("test_mode", true)
	}

	// load .env if it exists (ignore if it does not)
	if workDir != "" {
		dotEnvPath := filepath.Join(workDir, "config", ".env."+strings.ToLower(env))
		if _, err := os.Stat(dotEnvPath); err == nil {
			if err := godotenv.Load(dotEnvPath); err != nil {
				return nil, errors.Wrapf(err, "loading %s", dotEnvPath)
			}
		} else if !os.IsNotExist(err) {
			return nil, errors.Wrapf(err, "checking %s", dotEnvPath)
		}
	}

	v.SetEnvPrefix("SCHOOLHUB")
	v.AutomaticEnv()

	conf := &Config{
		Env:          env,
		Debug:        v.GetBool("debug"),
		TestMode:     v.GetBool("test_mode"),
		AppName:      v.GetString("app_name"),
		Build:        v.GetString("build"),
		RollbarToken: v.GetString("rollbar_token"),
		ServerHost:   v.GetString("server_host"),
	}
	conf.Backend.BaseURL = strings.TrimRight(v.GetString("backend_url"), "/")
	conf.Backend.Timeout = v.GetDuration("request_timeout")
	conf.Currency.Symbol = v.GetString("currency_symbol")
	conf.Currency.Locale = v.GetString("locale")

	if conf.Backend.BaseURL == "" {
		return nil, errors.New("backend_url must not be empty")
	}
	return conf, nil
}

func hostname() string {
	h, err := os.Hostname()
	if err != nil {
		return "localhost"
	}
	return h
}
