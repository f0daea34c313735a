package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// EnvPrefix prefixes every environment variable, e.g. MADRASA_DATABASE_PATH.
const EnvPrefix = "MADRASA"

// AppConfig 汇总运行服务所需的基础配置。
type AppConfig struct {
	ListenAddr    string
	GinMode       string
	DatabasePath  string
	SessionSecret string
	SiteBaseURL   string

	AdminUserName string
	AdminPassword string

	UploadDriver   string
	UploadDir      string
	UploadURLPath  string
	UploadEndpoint string
	UploadToken    string

	LogLevel  string
	LogFormat string
	LogFile   string

	CacheEnabled    bool
	CacheTTL        time.Duration
	CacheMaxEntries int

	SendgridAPIKey string
	NotifyFrom     string
	NotifyTo       []string
}

// Upload drivers.
const (
	UploadDriverLocal  = "local"
	UploadDriverRemote = "remote"
)

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.listen_addr", ":8080")
	v.SetDefault("server.gin_mode", "release")
	v.SetDefault("database.path", "madrasa.db")
	v.SetDefault("session.secret", "madrasa-dev-secret")
	v.SetDefault("site.base_url", "http://localhost:8080")
	v.SetDefault("admin.username", "")
	v.SetDefault("admin.password", "")
	v.SetDefault("upload.driver", UploadDriverLocal)
	v.SetDefault("upload.dir", "data/uploads")
	v.SetDefault("upload.url_path", "/uploads")
	v.SetDefault("upload.endpoint", "")
	v.SetDefault("upload.token", "")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "console")
	v.SetDefault("log.file", "")
	v.SetDefault("cache.enabled", true)
	v.SetDefault("cache.ttl", "10m")
	v.SetDefault("cache.max_entries", 512)
	v.SetDefault("notify.sendgrid_api_key", "")
	v.SetDefault("notify.from", "")
	v.SetDefault("notify.to", "")
}

// Load 读取配置：默认值 < 配置文件 < .env < 环境变量。
// configFile 为空时在当前目录查找 madrasa.yaml，文件不存在不视为错误。
func Load(configFile string) (AppConfig, error) {
	if _, err := os.Stat(".env"); err == nil {
		if err := godotenv.Load(".env"); err != nil {
			return AppConfig{}, fmt.Errorf("load .env: %w", err)
		}
	} else if !os.IsNotExist(err) {
		return AppConfig{}, fmt.Errorf("stat .env: %w", err)
	}

	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("madrasa")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
	}
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if configFile != "" || !errors.As(err, &notFound) {
			return AppConfig{}, fmt.Errorf("read config: %w", err)
		}
	}

	return fromViper(v)
}

func fromViper(v *viper.Viper) (AppConfig, error) {
	cfg := AppConfig{
		ListenAddr:      strings.TrimSpace(v.GetString("server.listen_addr")),
		GinMode:         strings.TrimSpace(v.GetString("server.gin_mode")),
		DatabasePath:    strings.TrimSpace(v.GetString("database.path")),
		SessionSecret:   strings.TrimSpace(v.GetString("session.secret")),
		SiteBaseURL:     strings.TrimRight(strings.TrimSpace(v.GetString("site.base_url")), "/"),
		AdminUserName:   strings.TrimSpace(v.GetString("admin.username")),
		AdminPassword:   strings.TrimSpace(v.GetString("admin.password")),
		UploadDriver:    strings.ToLower(strings.TrimSpace(v.GetString("upload.driver"))),
		UploadDir:       strings.TrimSpace(v.GetString("upload.dir")),
		UploadURLPath:   strings.TrimSpace(v.GetString("upload.url_path")),
		UploadEndpoint:  strings.TrimSpace(v.GetString("upload.endpoint")),
		UploadToken:     strings.TrimSpace(v.GetString("upload.token")),
		LogLevel:        strings.TrimSpace(v.GetString("log.level")),
		LogFormat:       strings.TrimSpace(v.GetString("log.format")),
		LogFile:         strings.TrimSpace(v.GetString("log.file")),
		CacheEnabled:    v.GetBool("cache.enabled"),
		CacheTTL:        v.GetDuration("cache.ttl"),
		CacheMaxEntries: v.GetInt("cache.max_entries"),
		SendgridAPIKey:  strings.TrimSpace(v.GetString("notify.sendgrid_api_key")),
		NotifyFrom:      strings.TrimSpace(v.GetString("notify.from")),
		NotifyTo:        splitList(v.GetString("notify.to")),
	}

	switch cfg.UploadDriver {
	case UploadDriverLocal:
	case UploadDriverRemote:
		if cfg.UploadEndpoint == "" {
			return AppConfig{}, errors.New("upload.endpoint is required for the remote upload driver")
		}
	default:
		return AppConfig{}, fmt.Errorf("unknown upload.driver %q", cfg.UploadDriver)
	}

	return cfg, nil
}

// NotifyEnabled reports whether email notification is configured.
func (c AppConfig) NotifyEnabled() bool {
	return c.SendgridAPIKey != "" && c.NotifyFrom != "" && len(c.NotifyTo) > 0
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
