package model

import "strings"

// HiddenPrefix は隠しエントリを示す名前の接頭辞です
const HiddenPrefix = "."

// SortKey は並び替えのキーです
type SortKey string

const (
	SortByName SortKey = "name"
	SortBySize SortKey = "size"
	SortByDate SortKey = "date"
	SortByPath SortKey = "path"
)

// ParseSortKey は文字列を SortKey に変換します。不明な値は SortByName になります
func ParseSortKey(s string) SortKey {
	switch k := SortKey(strings.ToLower(strings.TrimSpace(s))); k {
	case SortBySize, SortByDate, SortByPath:
		return k
	default:
		return SortByName
	}
}

// SortScope は再帰走査時に並び替えとフィルタを適用する範囲です
type SortScope string

const (
	// ScopeGlobal はツリー全体を収集してから一度だけ適用します
	ScopeGlobal SortScope = "global"
	// ScopeLevel は再帰呼び出しの各階層で適用します
	ScopeLevel SortScope = "level"
)

// ParseSortScope は文字列を SortScope に変換します。不明な値は ScopeGlobal になります
func ParseSortScope(s string) SortScope {
	if SortScope(strings.ToLower(strings.TrimSpace(s))) == ScopeLevel {
		return ScopeLevel
	}
	return ScopeGlobal
}

// WalkOptions はディレクトリ走査のパラメータです
type WalkOptions struct {
	ShowHidden      bool
	SortKey         SortKey
	FilterExtension string
	Recursive       bool
	SortScope       SortScope
	// FollowSymlinks はディレクトリへのシンボリックリンクを辿るかどうかを示します
	FollowSymlinks bool
}

// IsHidden は名前が隠しエントリを示すかどうかを判定します
func IsHidden(name string) bool {
	return strings.HasPrefix(name, HiddenPrefix)
}
