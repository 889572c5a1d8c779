package config

import (
	"errors"

	"github.com/spf13/viper"
)

type Config struct {
	Server ServerConfig
}

type ServerConfig struct {
	Address string
}

func Load() (*Config, error) {
	// 使用獨立的 viper 實例，重複載入不受先前狀態影響
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("./pkg/config")

	// 監聽地址有固定的預設值
	v.SetDefault("server.address", ":8080")

	// 找不到配置文件時使用預設值，其他讀取錯誤照常回報
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, err
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, err
	}

	return &config, nil
}
