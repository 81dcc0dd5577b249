package fileops

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/charlievieth/fastwalk"
	"github.com/gabriel-vasile/mimetype"

	"FileScope/internal/infrastructure/logging"
)

// MaxMatchesPerFile は 1 ファイルあたりに返す一致行の上限です
const MaxMatchesPerFile = 100

const maxLineSize = 1 << 20

// SearchQuery は内容検索の条件です
type SearchQuery struct {
	Root string
	Text string
	// Pattern は対象ファイルを絞り込む doublestar パターンです。
	// "/" を含まない場合はファイル名に対して照合します
	Pattern    string
	ShowHidden bool
}

// SearchMatch は検索で一致した 1 行を表します
type SearchMatch struct {
	Path    string `json:"path"`
	Line    int    `json:"line"`
	Content string `json:"content"`
}

// Search は Root 以下のテキストファイルから Text を含む行を探します。
// 結果はパスと行番号の順に並びます
func (o *Operator) Search(ctx context.Context, q SearchQuery) ([]SearchMatch, error) {
	if q.Text == "" {
		return nil, errors.New("検索文字列が指定されていません")
	}
	if q.Pattern != "" && !doublestar.ValidatePattern(q.Pattern) {
		return nil, fmt.Errorf("パターンが不正です: %q", q.Pattern)
	}
	root := filepath.Clean(q.Root)
	if _, err := os.Stat(root); err != nil {
		return nil, fmt.Errorf("検索対象を確認できません: %w", err)
	}

	needle := []byte(q.Text)
	var mu sync.Mutex
	var matches []SearchMatch

	conf := fastwalk.Config{Follow: false}
	err := fastwalk.Walk(&conf, root, func(p string, d fs.DirEntry, err error) error {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		if err != nil {
			o.logger.Log(logging.LevelDebug, fmt.Sprintf("検索中にスキップ: %s", p), err)
			return nil
		}
		if filepath.Clean(p) != root && !q.ShowHidden && strings.HasPrefix(d.Name(), ".") {
			if d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}
		if !d.Type().IsRegular() {
			return nil
		}

		rel, err := filepath.Rel(root, p)
		if err != nil {
			return nil
		}
		if !matchPattern(q.Pattern, filepath.ToSlash(rel)) {
			return nil
		}

		found, err := searchFile(p, needle)
		if err != nil {
			o.logger.Log(logging.LevelDebug, fmt.Sprintf("ファイルを検索できません: %s", p), err)
		}
		if len(found) > 0 {
			mu.Lock()
			matches = append(matches, found...)
			mu.Unlock()
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("検索に失敗しました: %w", err)
	}

	sort.Slice(matches, func(i, j int) bool {
		if matches[i].Path != matches[j].Path {
			return matches[i].Path < matches[j].Path
		}
		return matches[i].Line < matches[j].Line
	})
	return matches, nil
}

func matchPattern(pattern, rel string) bool {
	if pattern == "" {
		return true
	}
	target := rel
	if !strings.Contains(pattern, "/") {
		target = filepath.Base(rel)
	}
	ok, err := doublestar.Match(pattern, target)
	return err == nil && ok
}

// searchFile は 1 ファイルを行単位で走査します。バイナリファイルは対象外です
func searchFile(path string, needle []byte) ([]SearchMatch, error) {
	mtype, err := mimetype.DetectFile(path)
	if err != nil {
		return nil, err
	}
	if !isText(mtype) {
		return nil, nil
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var found []SearchMatch
	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)
	for line := 1; scanner.Scan(); line++ {
		if bytes.Contains(scanner.Bytes(), needle) {
			found = append(found, SearchMatch{Path: path, Line: line, Content: scanner.Text()})
			if len(found) >= MaxMatchesPerFile {
				break
			}
		}
	}
	return found, scanner.Err()
}
