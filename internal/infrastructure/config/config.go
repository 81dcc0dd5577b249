// Package config は設定ファイル・環境変数・コマンドラインフラグから設定を組み立てます
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"FileScope/internal/domain/model"
	"FileScope/internal/usecase/report"
)

const (
	// EnvPrefix は環境変数の接頭辞です（例: FILESCOPE_SORT）
	EnvPrefix = "FILESCOPE"
	// ConfigName は既定の設定ファイル名（拡張子なし）です
	ConfigName = ".filescope"
)

// 設定キー
const (
	KeyDir       = "dir"
	KeyHidden    = "hidden"
	KeySort      = "sort"
	KeyFilter    = "filter"
	KeyRecursive = "recursive"
	KeySortScope = "sort_scope"
	KeyFollow    = "follow"
	KeyNumeric   = "numeric"
	KeyFormat    = "format"
	KeyOutput    = "output"
	KeyNoColor   = "no_color"
	KeySummary   = "summary"
)

// flagKeys はフラグ名と設定キーの対応です
var flagKeys = map[string]string{
	"dir":        KeyDir,
	"hidden":     KeyHidden,
	"sort":       KeySort,
	"filter":     KeyFilter,
	"recursive":  KeyRecursive,
	"sort-scope": KeySortScope,
	"follow":     KeyFollow,
	"numeric":    KeyNumeric,
	"format":     KeyFormat,
	"output":     KeyOutput,
	"no-color":   KeyNoColor,
	"summary":    KeySummary,
}

// Settings は一覧表示の設定です
type Settings struct {
	Dir     string
	Walk    model.WalkOptions
	Numeric bool
	Format  report.Format
	Output  string
	NoColor bool
	Summary bool
}

// New は既定値と環境変数の設定を行った viper インスタンスを作成します
func New() *viper.Viper {
	v := viper.New()
	v.SetDefault(KeyDir, ".")
	v.SetDefault(KeyHidden, false)
	v.SetDefault(KeySort, string(model.SortByName))
	v.SetDefault(KeyFilter, "")
	v.SetDefault(KeyRecursive, false)
	v.SetDefault(KeySortScope, string(model.ScopeGlobal))
	v.SetDefault(KeyFollow, false)
	v.SetDefault(KeyNumeric, false)
	v.SetDefault(KeyFormat, string(report.FormatTable))
	v.SetDefault(KeyOutput, "")
	v.SetDefault(KeyNoColor, false)
	v.SetDefault(KeySummary, false)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()
	return v
}

// BindFlags はフラグを設定キーに結び付けます。flags に存在しないフラグは無視します
func BindFlags(v *viper.Viper, flags *pflag.FlagSet) error {
	for name, key := range flagKeys {
		f := flags.Lookup(name)
		if f == nil {
			continue
		}
		if err := v.BindPFlag(key, f); err != nil {
			return fmt.Errorf("フラグ %s の設定に失敗しました: %w", name, err)
		}
	}
	return nil
}

// ReadFile は設定ファイルを読み込み、使用したファイルのパスを返します。
// path が空の場合はホームディレクトリとカレントディレクトリの .filescope.yaml を探し、
// 見つからなければ何もしません
func ReadFile(v *viper.Viper, path string) (string, error) {
	if path != "" {
		v.SetConfigFile(path)
	} else {
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(home)
		}
		v.AddConfigPath(".")
		v.SetConfigType("yaml")
		v.SetConfigName(ConfigName)
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path == "" && errors.As(err, &notFound) {
			return "", nil
		}
		return "", fmt.Errorf("設定ファイルの読み込みに失敗しました: %w", err)
	}
	return v.ConfigFileUsed(), nil
}

// Load は viper の値から Settings を組み立てます。
// 不明な並び替えキーや出力形式はエラーにせず既定値に置き換えます
func Load(v *viper.Viper) Settings {
	dir := v.GetString(KeyDir)
	if dir == "" {
		dir = "."
	}
	return Settings{
		Dir: dir,
		Walk: model.WalkOptions{
			ShowHidden:      v.GetBool(KeyHidden),
			SortKey:         model.ParseSortKey(v.GetString(KeySort)),
			FilterExtension: v.GetString(KeyFilter),
			Recursive:       v.GetBool(KeyRecursive),
			SortScope:       model.ParseSortScope(v.GetString(KeySortScope)),
			FollowSymlinks:  v.GetBool(KeyFollow),
		},
		Numeric: v.GetBool(KeyNumeric),
		Format:  report.ParseFormat(v.GetString(KeyFormat)),
		Output:  v.GetString(KeyOutput),
		NoColor: v.GetBool(KeyNoColor),
		Summary: v.GetBool(KeySummary),
	}
}
