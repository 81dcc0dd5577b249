// Package filesystem はファイルシステムの走査とメタデータ収集を提供します
package filesystem

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"FileScope/internal/domain/model"
	"FileScope/internal/domain/pipeline"
	"FileScope/internal/infrastructure/logging"
)

// DirectoryValidator はディレクトリの検証機能を提供するインターフェースです
type DirectoryValidator interface {
	ValidateDirectoryPath(path string) error
}

// DirectoryWalker はディレクトリを走査してエントリを収集するインターフェースです
type DirectoryWalker interface {
	DirectoryValidator
	Walk(root string, opts model.WalkOptions) []model.EntryRecord
}

// Scanner はファイルシステムを走査するための構造体です
type Scanner struct {
	logger    logging.Logger
	inspector *Inspector
}

// NewScanner は新しい Scanner インスタンスを作成します
func NewScanner(logger logging.Logger, inspector *Inspector) *Scanner {
	if inspector == nil {
		inspector = NewInspector(true)
	}
	return &Scanner{
		logger:    logger,
		inspector: inspector,
	}
}

// ValidateDirectoryPath はパスが安全で有効なディレクトリであることを確認します
func (s *Scanner) ValidateDirectoryPath(path string) error {
	if path == "" {
		return fmt.Errorf("ディレクトリパスが指定されていません")
	}

	if strings.ContainsAny(path, "<>|?*") {
		return fmt.Errorf("パスに不正な文字が含まれています")
	}

	fileInfo, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("ディレクトリが存在しません: %w", err)
	}

	if !fileInfo.IsDir() {
		return fmt.Errorf("指定されたパスはディレクトリではありません")
	}

	return nil
}

// dirKey は走査済みディレクトリの識別子です
type dirKey struct {
	dev  uint64
	ino  uint64
	path string
}

func realPathKey(path string) (dirKey, bool) {
	resolved, err := filepath.EvalSymlinks(path)
	if err != nil {
		return dirKey{}, false
	}
	abs, err := filepath.Abs(resolved)
	if err != nil {
		return dirKey{}, false
	}
	return dirKey{path: abs}, true
}

// Walk は root を走査し、並び替えと絞り込みを適用したエントリを返します。
// root を開けない場合は空のスライスを返し、エラーにはしません。
func (s *Scanner) Walk(root string, opts model.WalkOptions) []model.EntryRecord {
	visited := make(map[dirKey]struct{})
	if info, err := os.Stat(root); err == nil {
		if key, ok := identity(root, info); ok {
			visited[key] = struct{}{}
		}
	}

	records := s.walk(root, opts, visited)
	if opts.SortScope != model.ScopeLevel {
		records = pipeline.Apply(records, opts.SortKey, opts.FilterExtension)
	}
	return records
}

// walk は dir 直下のエントリを収集し、必要に応じてサブディレクトリへ再帰します。
// 各呼び出しは自身の結果スライスを所有し、呼び出し元がそれを連結します。
func (s *Scanner) walk(dir string, opts model.WalkOptions, visited map[dirKey]struct{}) []model.EntryRecord {
	entries, err := os.ReadDir(dir)
	if err != nil {
		s.logger.Log(logging.LevelWarn, fmt.Sprintf("ディレクトリ '%s' を読み込めません", dir), err)
	}

	records := make([]model.EntryRecord, 0, len(entries))
	for _, entry := range entries {
		name := entry.Name()
		if !opts.ShowHidden && model.IsHidden(name) {
			continue
		}

		rec, info, err := s.inspector.Inspect(dir, entry, opts.FollowSymlinks)
		if err != nil {
			s.logger.Log(logging.LevelDebug, fmt.Sprintf("メタデータを取得できないためスキップ: %s", filepath.Join(dir, name)), err)
			continue
		}
		records = append(records, rec)

		if !opts.Recursive || !rec.IsDir {
			continue
		}

		key, ok := identity(rec.Path, info)
		if ok {
			if _, seen := visited[key]; seen {
				s.logger.Log(logging.LevelWarn, fmt.Sprintf("走査済みのディレクトリのため再帰しません: %s", rec.Path), nil)
				continue
			}
			visited[key] = struct{}{}
		}
		records = append(records, s.walk(rec.Path, opts, visited)...)
	}

	if opts.SortScope == model.ScopeLevel {
		return pipeline.Apply(records, opts.SortKey, opts.FilterExtension)
	}
	return records
}
