package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"
)

// Config 应用配置
type Config struct {
	App      AppConfig      `mapstructure:"app"`
	Server   ServerConfig   `mapstructure:"server"`
	MySQL    MySQLConfig    `mapstructure:"mysql"`
	Redis    RedisConfig    `mapstructure:"redis"`
	Resolver ResolverConfig `mapstructure:"resolver"`
}

type AppConfig struct {
	Name     string `mapstructure:"name"`
	Env      string `mapstructure:"env"`
	LogLevel string `mapstructure:"log_level"`
}

type ServerConfig struct {
	Port string `mapstructure:"port"`
}

type MySQLConfig struct {
	DSN string `mapstructure:"dsn"`
}

// RedisConfig Redis 配置，Addr 为空时禁用商品编码缓存
type RedisConfig struct {
	Addr     string `mapstructure:"addr"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

// ResolverConfig 商品编码解析配置
type ResolverConfig struct {
	LookupTimeoutMS int `mapstructure:"lookup_timeout_ms"`
	CacheTTLSeconds int `mapstructure:"cache_ttl_seconds"`
}

// Load 从配置文件加载配置
func Load(configPath string) (*Config, error) {
	viper.SetConfigFile(configPath)
	viper.SetConfigType("yaml")

	if err := viper.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("read config failed: %w", err)
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config failed: %w", err)
	}

	// 兼容性处理：缺省值
	if cfg.Server.Port == "" {
		cfg.Server.Port = "8080"
	}
	if cfg.Resolver.LookupTimeoutMS <= 0 {
		cfg.Resolver.LookupTimeoutMS = 2000
	}
	if cfg.Resolver.CacheTTLSeconds <= 0 {
		cfg.Resolver.CacheTTLSeconds = 300
	}

	return &cfg, nil
}

// LoadDefault 加载默认配置文件路径
func LoadDefault() (*Config, error) {
	return Load("config/config.yaml")
}

// Validate 验证配置完整性
func (c *Config) Validate() error {
	if c.MySQL.DSN == "" {
		return fmt.Errorf("mysql dsn is required")
	}
	return nil
}

// LookupTimeout 单次商品编码查询的超时时间
func (c *Config) LookupTimeout() time.Duration {
	return time.Duration(c.Resolver.LookupTimeoutMS) * time.Millisecond
}

// CacheTTL 商品编码缓存有效期
func (c *Config) CacheTTL() time.Duration {
	return time.Duration(c.Resolver.CacheTTLSeconds) * time.Second
}
