package config

import (
	"fmt"
	"os"

	"github.com/spf13/viper"
)

// Cfg 全局配置实例，LoadConfig 成功后可用
var Cfg *Config

// LoadConfig 读取 yaml 配置；可用 CONFIG_PATH 覆盖默认目录
func LoadConfig() error {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")

	if dir := os.Getenv("CONFIG_PATH"); dir != "" {
		v.AddConfigPath(dir)
	}
	v.AddConfigPath("./configs")

	if err := v.ReadInConfig(); err != nil {
		return fmt.Errorf("read config: %w", err)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return fmt.Errorf("unmarshal config: %w", err)
	}

	Cfg = &cfg
	return nil
}
