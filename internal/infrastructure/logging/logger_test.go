package logging

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// jsonLine は JSON 形式で出力された 1 行のログです
type jsonLine struct {
	Timestamp string `json:"timestamp"`
	Level     string `json:"level"`
	Message   string `json:"message"`
	Error     string `json:"error,omitempty"`
}

func TestJSONLogger(t *testing.T) {
	tests := []struct {
		name      string
		level     string
		message   string
		err       error
		wantLevel string
	}{
		{
			name:      "エラーなしのログ",
			level:     "info",
			message:   "テストメッセージ",
			wantLevel: LevelInfo,
		},
		{
			name:      "エラーありのログ",
			level:     "error",
			message:   "エラーメッセージ",
			err:       errors.New("テストエラー"),
			wantLevel: LevelError,
		},
		{
			name:      "デバッグログ",
			level:     LevelDebug,
			message:   "詳細",
			wantLevel: LevelDebug,
		},
		{
			name:      "不明なレベルはINFO",
			level:     "notice",
			message:   "通知",
			wantLevel: LevelInfo,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf strings.Builder
			logger := NewJSONLogger(&buf)

			logger.Log(tt.level, tt.message, tt.err)

			var logEntry jsonLine
			require.NoError(t, json.Unmarshal([]byte(strings.TrimSpace(buf.String())), &logEntry))

			assert.Equal(t, tt.message, logEntry.Message)
			assert.Equal(t, tt.wantLevel, logEntry.Level)
			if tt.err != nil {
				assert.Equal(t, tt.err.Error(), logEntry.Error)
			} else {
				assert.Empty(t, logEntry.Error)
			}

			// タイムスタンプが現在時刻に近いことを確認
			logTime, err := time.Parse(time.RFC3339, logEntry.Timestamp)
			require.NoError(t, err)
			assert.Less(t, time.Since(logTime), time.Minute)
		})
	}
}

func TestNop(t *testing.T) {
	assert.NotPanics(t, func() {
		Nop().Log(LevelError, "discarded", errors.New("x"))
	})
}

func TestNew_InvalidLevel(t *testing.T) {
	_, err := New(Config{Level: "loud"})
	assert.Error(t, err)
}

func TestLoadConfig(t *testing.T) {
	t.Run("デフォルト値", func(t *testing.T) {
		cfg, err := LoadConfig()
		require.NoError(t, err)
		assert.Equal(t, "warn", cfg.Level)
		assert.False(t, cfg.Development)
	})

	t.Run("環境変数で上書き", func(t *testing.T) {
		t.Setenv("FILESCOPE_LOG_LEVEL", "debug")
		t.Setenv("FILESCOPE_LOG_DEV", "true")

		cfg, err := LoadConfig()
		require.NoError(t, err)
		assert.Equal(t, "debug", cfg.Level)
		assert.True(t, cfg.Development)
	})

	t.Run("不正な真偽値", func(t *testing.T) {
		t.Setenv("FILESCOPE_LOG_DEV", "maybe")

		_, err := LoadConfig()
		assert.Error(t, err)
	})
}
