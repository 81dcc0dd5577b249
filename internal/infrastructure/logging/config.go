package logging

import (
	"fmt"

	"github.com/kelseyhightower/envconfig"
)

// EnvPrefix は環境変数の接頭辞です
const EnvPrefix = "FILESCOPE_LOG"

// Config はロガーの設定です
type Config struct {
	Level       string `envconfig:"LEVEL" default:"warn"`
	Development bool   `envconfig:"DEV" default:"false"`
}

// LoadConfig は環境変数（FILESCOPE_LOG_LEVEL, FILESCOPE_LOG_DEV）から設定を読み込みます
func LoadConfig() (Config, error) {
	var cfg Config
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return Config{}, fmt.Errorf("ログ設定の読み込みに失敗しました: %w", err)
	}
	return cfg, nil
}
