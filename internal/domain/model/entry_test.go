package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEntryRecord(t *testing.T) {
	tests := []struct {
		name         string
		entry        EntryRecord
		wantSize     int64
		wantModified int64
		wantExt      string
	}{
		{
			name: "ディレクトリエントリ",
			entry: EntryRecord{
				Name:     "dir",
				Path:     "/test/dir",
				IsDir:    true,
				Size:     Int64(4096),
				Modified: Int64(1700000000),
			},
			wantSize:     4096,
			wantModified: 1700000000,
			wantExt:      "",
		},
		{
			name: "ファイルエントリ",
			entry: EntryRecord{
				Name: "File.TXT",
				Path: "/test/File.TXT",
				Size: Int64(12),
			},
			wantSize: 12,
			wantExt:  ".txt",
		},
		{
			name: "メタデータが欠けたエントリ",
			entry: EntryRecord{
				Name: "broken.log",
				Path: "/test/broken.log",
			},
			wantSize:     0,
			wantModified: 0,
			wantExt:      ".log",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.wantSize, tt.entry.SizeOrZero())
			assert.Equal(t, tt.wantModified, tt.entry.ModifiedOrZero())
			assert.Equal(t, tt.wantExt, tt.entry.Extension())
		})
	}
}

func TestEntryRecord_HasSuffix(t *testing.T) {
	e := EntryRecord{Name: "archive.tar.gz", Path: "archive.tar.gz"}

	assert.True(t, e.HasSuffix(".gz"))
	assert.True(t, e.HasSuffix(".tar.gz"))
	assert.False(t, e.HasSuffix(".GZ"))
	assert.True(t, e.HasSuffix(""))
}

func TestParseSortKey(t *testing.T) {
	tests := []struct {
		in   string
		want SortKey
	}{
		{"name", SortByName},
		{"size", SortBySize},
		{"date", SortByDate},
		{"path", SortByPath},
		{" SIZE ", SortBySize},
		{"", SortByName},
		{"owner", SortByName},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseSortKey(tt.in))
		})
	}
}

func TestParseSortScope(t *testing.T) {
	assert.Equal(t, ScopeLevel, ParseSortScope("level"))
	assert.Equal(t, ScopeLevel, ParseSortScope("Level"))
	assert.Equal(t, ScopeGlobal, ParseSortScope("global"))
	assert.Equal(t, ScopeGlobal, ParseSortScope("tree"))
	assert.Equal(t, ScopeGlobal, ParseSortScope(""))
}

func TestIsHidden(t *testing.T) {
	assert.True(t, IsHidden(".secret"))
	assert.True(t, IsHidden(".git"))
	assert.False(t, IsHidden("a.txt"))
	assert.False(t, IsHidden("dir."))
}
