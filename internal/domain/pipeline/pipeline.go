// Package pipeline は収集したエントリの並び替えと絞り込みを提供します
package pipeline

import (
	"sort"

	"FileScope/internal/domain/model"
)

// Sort は key で安定ソートしたコピーを返します。入力は変更しません。
// size と date は値が無い場合 0 として比較します。
func Sort(records []model.EntryRecord, key model.SortKey) []model.EntryRecord {
	out := make([]model.EntryRecord, len(records))
	copy(out, records)

	var less func(a, b model.EntryRecord) bool
	switch key {
	case model.SortBySize:
		less = func(a, b model.EntryRecord) bool { return a.SizeOrZero() < b.SizeOrZero() }
	case model.SortByDate:
		less = func(a, b model.EntryRecord) bool { return a.ModifiedOrZero() < b.ModifiedOrZero() }
	case model.SortByPath:
		less = func(a, b model.EntryRecord) bool { return a.Path < b.Path }
	default:
		less = func(a, b model.EntryRecord) bool { return a.Name < b.Name }
	}

	sort.SliceStable(out, func(i, j int) bool { return less(out[i], out[j]) })
	return out
}

// FilterExtension は名前が ext で終わるエントリだけを順序を保って返します。
// ext が空の場合は全件のコピーを返します
func FilterExtension(records []model.EntryRecord, ext string) []model.EntryRecord {
	out := make([]model.EntryRecord, 0, len(records))
	for _, r := range records {
		if ext == "" || r.HasSuffix(ext) {
			out = append(out, r)
		}
	}
	return out
}

// Apply は並び替えの後に絞り込みを行います。この順序は入れ替えてはいけません
func Apply(records []model.EntryRecord, key model.SortKey, ext string) []model.EntryRecord {
	return FilterExtension(Sort(records, key), ext)
}
