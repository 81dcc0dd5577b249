package filesystem

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"FileScope/internal/domain/model"
)

var _ DirectoryWalker = (*Scanner)(nil)

type mockLogger struct {
	logs []struct {
		level   string
		message string
		err     error
	}
}

func (m *mockLogger) Log(level, message string, err error) {
	m.logs = append(m.logs, struct {
		level   string
		message string
		err     error
	}{level, message, err})
}

func (m *mockLogger) contains(level, fragment string) bool {
	for _, l := range m.logs {
		if l.level == level && strings.Contains(l.message, fragment) {
			return true
		}
	}
	return false
}

func writeFile(t *testing.T, path string, size int, mtime time.Time) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte(strings.Repeat("x", size)), 0644))
	if !mtime.IsZero() {
		require.NoError(t, os.Chtimes(path, mtime, mtime))
	}
}

func names(records []model.EntryRecord) []string {
	out := make([]string, len(records))
	for i, r := range records {
		out[i] = r.Name
	}
	return out
}

func TestScanner_ValidateDirectoryPath(t *testing.T) {
	scanner := NewScanner(&mockLogger{}, nil)

	tempDir := t.TempDir()
	file := filepath.Join(tempDir, "file.txt")
	writeFile(t, file, 1, time.Time{})

	tests := []struct {
		name    string
		path    string
		wantErr bool
	}{
		{
			name:    "有効なディレクトリパス",
			path:    tempDir,
			wantErr: false,
		},
		{
			name:    "空のパス",
			path:    "",
			wantErr: true,
		},
		{
			name:    "存在しないパス",
			path:    filepath.Join(tempDir, "notexist"),
			wantErr: true,
		},
		{
			name:    "ファイルのパス",
			path:    file,
			wantErr: true,
		},
		{
			name:    "不正な文字を含むパス",
			path:    filepath.Join(tempDir, "test<>|?*"),
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := scanner.ValidateDirectoryPath(tt.path)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestScanner_Walk_SizeSortWithFilter(t *testing.T) {
	root := t.TempDir()
	t1 := time.Unix(1_600_000_000, 0)
	t2 := t1.Add(time.Hour)
	writeFile(t, filepath.Join(root, "a.txt"), 10, t1)
	writeFile(t, filepath.Join(root, "b.log"), 5, t2)
	writeFile(t, filepath.Join(root, ".secret"), 1, t1)

	scanner := NewScanner(&mockLogger{}, nil)
	got := scanner.Walk(root, model.WalkOptions{
		SortKey:         model.SortBySize,
		FilterExtension: ".txt",
	})

	require.Len(t, got, 1)
	assert.Equal(t, "a.txt", got[0].Name)
	assert.Equal(t, filepath.Join(root, "a.txt"), got[0].Path)
	require.NotNil(t, got[0].Size)
	assert.Equal(t, int64(10), *got[0].Size)
	require.NotNil(t, got[0].Modified)
	assert.Equal(t, t1.Unix(), *got[0].Modified)
}

func TestScanner_Walk_Recursive(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "sub", "c.txt"), 3, time.Time{})

	scanner := NewScanner(&mockLogger{}, nil)
	got := scanner.Walk(root, model.WalkOptions{SortKey: model.SortByName, Recursive: true})

	require.Len(t, got, 2)
	assert.Equal(t, []string{"c.txt", "sub"}, names(got))
	assert.False(t, got[0].IsDir)
	assert.Equal(t, filepath.Join(root, "sub", "c.txt"), got[0].Path)
	assert.True(t, got[1].IsDir)
}

func TestScanner_Walk_NonRecursiveListsDirectoriesWithoutDescending(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "sub", "c.txt"), 3, time.Time{})
	writeFile(t, filepath.Join(root, "top.txt"), 3, time.Time{})

	scanner := NewScanner(&mockLogger{}, nil)
	got := scanner.Walk(root, model.WalkOptions{})

	assert.Equal(t, []string{"sub", "top.txt"}, names(got))
}

func TestScanner_Walk_MissingRoot(t *testing.T) {
	logger := &mockLogger{}
	scanner := NewScanner(logger, nil)

	got := scanner.Walk(filepath.Join(t.TempDir(), "missing"), model.WalkOptions{Recursive: true})

	assert.NotNil(t, got)
	assert.Empty(t, got)
	assert.True(t, logger.contains("WARN", "読み込めません"))
}

func TestScanner_Walk_RootIsFile(t *testing.T) {
	file := filepath.Join(t.TempDir(), "plain.txt")
	writeFile(t, file, 1, time.Time{})

	got := NewScanner(&mockLogger{}, nil).Walk(file, model.WalkOptions{})

	assert.Empty(t, got)
}

func TestScanner_Walk_HiddenSuppression(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, ".hidden", "inner.txt"), 1, time.Time{})
	writeFile(t, filepath.Join(root, "visible", ".dotfile"), 1, time.Time{})
	writeFile(t, filepath.Join(root, "visible", "shown.txt"), 1, time.Time{})

	scanner := NewScanner(&mockLogger{}, nil)

	t.Run("隠しエントリを除外", func(t *testing.T) {
		got := scanner.Walk(root, model.WalkOptions{Recursive: true})
		assert.Equal(t, []string{"shown.txt", "visible"}, names(got))
		for _, r := range got {
			assert.False(t, strings.HasPrefix(r.Name, "."))
			assert.NotContains(t, r.Path, ".hidden")
		}
	})

	t.Run("隠しエントリを表示", func(t *testing.T) {
		got := scanner.Walk(root, model.WalkOptions{Recursive: true, ShowHidden: true})
		assert.ElementsMatch(t, []string{".hidden", "inner.txt", "visible", ".dotfile", "shown.txt"}, names(got))
	})
}

func TestScanner_Walk_RecursiveCompleteness(t *testing.T) {
	root := t.TempDir()
	want := map[string]bool{}
	for _, rel := range []string{"a/b/c/deep.txt", "a/b/mid.txt", "a/top.txt", "x/y.txt", "z.txt"} {
		writeFile(t, filepath.Join(root, rel), 1, time.Time{})
	}
	for _, rel := range []string{"a", "a/b", "a/b/c", "a/b/c/deep.txt", "a/b/mid.txt", "a/top.txt", "x", "x/y.txt", "z.txt"} {
		want[filepath.Join(root, rel)] = true
	}

	got := NewScanner(&mockLogger{}, nil).Walk(root, model.WalkOptions{Recursive: true, SortKey: model.SortByPath})

	seen := map[string]int{}
	for _, r := range got {
		seen[r.Path]++
	}
	assert.Len(t, seen, len(want))
	for p := range want {
		assert.Equal(t, 1, seen[p], p)
	}
	for i := 1; i < len(got); i++ {
		assert.LessOrEqual(t, got[i-1].Path, got[i].Path)
	}
}

func TestScanner_Walk_SortScope(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "b", "a.txt"), 1, time.Time{})
	writeFile(t, filepath.Join(root, "a.txt"), 1, time.Time{})
	writeFile(t, filepath.Join(root, "c.txt"), 1, time.Time{})

	scanner := NewScanner(&mockLogger{}, nil)

	t.Run("全体で一度だけ適用", func(t *testing.T) {
		got := scanner.Walk(root, model.WalkOptions{Recursive: true, FilterExtension: ".txt"})
		assert.Equal(t, []string{"a.txt", "a.txt", "c.txt"}, names(got))
		assert.Equal(t, filepath.Join(root, "a.txt"), got[0].Path)
		assert.Equal(t, filepath.Join(root, "b", "a.txt"), got[1].Path)
	})

	t.Run("階層ごとに適用", func(t *testing.T) {
		got := scanner.Walk(root, model.WalkOptions{
			Recursive:       true,
			FilterExtension: ".txt",
			SortScope:       model.ScopeLevel,
		})
		assert.Equal(t, []string{"a.txt", "a.txt", "c.txt"}, names(got))
		for _, r := range got {
			assert.True(t, strings.HasSuffix(r.Name, ".txt"))
		}
	})
}

func TestScanner_Walk_SymlinkCycle(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "dir", "f.txt"), 1, time.Time{})
	if err := os.Symlink("..", filepath.Join(root, "dir", "loop")); err != nil {
		t.Skipf("シンボリックリンクを作成できません: %v", err)
	}

	logger := &mockLogger{}
	scanner := NewScanner(logger, nil)

	t.Run("リンクを辿らない", func(t *testing.T) {
		got := scanner.Walk(root, model.WalkOptions{Recursive: true})
		assert.ElementsMatch(t, []string{"dir", "f.txt", "loop"}, names(got))
		for _, r := range got {
			if r.Name == "loop" {
				assert.False(t, r.IsDir)
			}
		}
	})

	t.Run("リンクを辿っても循環しない", func(t *testing.T) {
		got := scanner.Walk(root, model.WalkOptions{Recursive: true, FollowSymlinks: true})
		assert.ElementsMatch(t, []string{"dir", "f.txt", "loop"}, names(got))
		assert.True(t, logger.contains("WARN", "走査済み"))
	})
}

func TestScanner_Walk_UnreadableSubdirectory(t *testing.T) {
	if os.Geteuid() == 0 {
		t.Skip("root 権限ではパーミッションが無視されます")
	}
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "locked", "inner.txt"), 1, time.Time{})
	writeFile(t, filepath.Join(root, "open.txt"), 1, time.Time{})
	locked := filepath.Join(root, "locked")
	require.NoError(t, os.Chmod(locked, 0))
	t.Cleanup(func() { os.Chmod(locked, 0755) })

	got := NewScanner(&mockLogger{}, nil).Walk(root, model.WalkOptions{Recursive: true})

	assert.Equal(t, []string{"locked", "open.txt"}, names(got))
}
