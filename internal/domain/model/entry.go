// package model はドメインモデルを定義します
package model

import (
	"path/filepath"
	"strings"
)

// EntryRecord はディレクトリ走査中に観測したファイルシステムの要素（ファイルまたはディレクトリ）を表します。
// Name, Path, IsDir 以外のフィールドは取得できなかった場合 nil になります。
type EntryRecord struct {
	// Name は要素のベース名を表します
	Name string
	// Path はルートから要素に到達したパスを表します
	Path string
	// IsDir はディレクトリであるかどうかを示します
	IsDir bool
	// Size はバイト数を表します
	Size *int64
	// Modified は最終更新時刻（Unix 秒）を表します
	Modified *int64
	// Permissions は 3 桁の 8 進数表記のパーミッションを表します（例: "755"）
	Permissions *string
	// Owner は所有ユーザーを表します
	Owner *string
	// Group は所有グループを表します
	Group *string
}

// SizeOrZero はサイズを返します。取得できなかった場合は 0 を返します
func (e EntryRecord) SizeOrZero() int64 {
	if e.Size == nil {
		return 0
	}
	return *e.Size
}

// ModifiedOrZero は更新時刻を返します。取得できなかった場合は 0 を返します
func (e EntryRecord) ModifiedOrZero() int64 {
	if e.Modified == nil {
		return 0
	}
	return *e.Modified
}

// Extension はドットを含む拡張子を返します
func (e EntryRecord) Extension() string {
	return strings.ToLower(filepath.Ext(e.Name))
}

// HasSuffix は名前が suffix で終わるかどうかを判定します
func (e EntryRecord) HasSuffix(suffix string) bool {
	return strings.HasSuffix(e.Name, suffix)
}

// Int64 は v へのポインタを返します
func Int64(v int64) *int64 { return &v }

// String は v へのポインタを返します
func String(v string) *string { return &v }
