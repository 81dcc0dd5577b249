// Package fileops はコピー・移動・削除などのファイル操作を提供します。
// 多くの操作は OS のコマンドに委譲し、失敗してもリトライやロールバックは行いません。
package fileops

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/gabriel-vasile/mimetype"

	"FileScope/internal/infrastructure/logging"
)

var (
	// ErrUnsupportedPlatform は実行中の OS で操作を提供できないことを示します
	ErrUnsupportedPlatform = errors.New("このプラットフォームではサポートされていません")
	// ErrBinaryFile はテキストとして扱えないファイルであることを示します
	ErrBinaryFile = errors.New("バイナリファイルです")
	// ErrInvalidName は新しい名前にパス区切りが含まれていることを示します
	ErrInvalidName = errors.New("名前が不正です")
)

// Operator はファイル操作を実行します
type Operator struct {
	runner Runner
	logger logging.Logger
	goos   string
}

// NewOperator は新しい Operator インスタンスを作成します
func NewOperator(runner Runner, logger logging.Logger) *Operator {
	return &Operator{runner: runner, logger: logger, goos: runtime.GOOS}
}

func (o *Operator) run(ctx context.Context, c command) error {
	o.logger.Log(logging.LevelDebug, fmt.Sprintf("コマンドを実行: %s %s", c.name, strings.Join(c.args, " ")), nil)
	return o.runner.Run(ctx, c.name, c.args...)
}

// Copy は src を dst へ再帰的にコピーします
func (o *Operator) Copy(ctx context.Context, src, dst string) error {
	if _, err := os.Lstat(src); err != nil {
		return fmt.Errorf("コピー元を確認できません: %w", err)
	}
	c, err := copyCommand(o.goos, src, dst)
	if err != nil {
		return err
	}
	if err := o.run(ctx, c); err != nil {
		return fmt.Errorf("コピーに失敗しました: %w", err)
	}
	return nil
}

// Move は src を dst へ移動します
func (o *Operator) Move(ctx context.Context, src, dst string) error {
	if _, err := os.Lstat(src); err != nil {
		return fmt.Errorf("移動元を確認できません: %w", err)
	}
	c, err := moveCommand(o.goos, src, dst)
	if err != nil {
		return err
	}
	if err := o.run(ctx, c); err != nil {
		return fmt.Errorf("移動に失敗しました: %w", err)
	}
	return nil
}

// Delete は path を再帰的に削除します
func (o *Operator) Delete(ctx context.Context, path string) error {
	info, err := os.Lstat(path)
	if err != nil {
		return fmt.Errorf("削除対象を確認できません: %w", err)
	}
	c, err := deleteCommand(o.goos, path, info.IsDir())
	if err != nil {
		return err
	}
	if err := o.run(ctx, c); err != nil {
		return fmt.Errorf("削除に失敗しました: %w", err)
	}
	return nil
}

// View はファイルの内容を表示します。バイナリファイルは表示しません
func (o *Operator) View(ctx context.Context, path string) error {
	if err := ensureText(path); err != nil {
		return err
	}
	c, err := viewCommand(o.goos, path)
	if err != nil {
		return err
	}
	if err := o.run(ctx, c); err != nil {
		return fmt.Errorf("ファイルを表示できません: %w", err)
	}
	return nil
}

// Edit はファイルを OS 既定のエディタで開きます
func (o *Operator) Edit(ctx context.Context, path string) error {
	c, err := editCommand(o.goos, path)
	if err != nil {
		return err
	}
	if err := o.run(ctx, c); err != nil {
		return fmt.Errorf("ファイルを編集できません: %w", err)
	}
	return nil
}

// Exec はシェル経由でコマンドを実行します
func (o *Operator) Exec(ctx context.Context, line string) error {
	if strings.TrimSpace(line) == "" {
		return errors.New("コマンドが指定されていません")
	}
	return o.run(ctx, shellCommand(o.goos, line))
}

// CreateDir はディレクトリを親ディレクトリごと作成します
func (o *Operator) CreateDir(path string) error {
	if err := os.MkdirAll(path, 0o755); err != nil {
		return fmt.Errorf("ディレクトリを作成できません: %w", err)
	}
	return nil
}

// Rename は path を同じディレクトリ内で newName に改名し、新しいパスを返します
func (o *Operator) Rename(path, newName string) (string, error) {
	if newName == "" || newName == "." || newName == ".." || strings.ContainsAny(newName, `/\`) {
		return "", fmt.Errorf("%w: %q", ErrInvalidName, newName)
	}
	if _, err := os.Lstat(path); err != nil {
		return "", fmt.Errorf("改名対象を確認できません: %w", err)
	}

	target := filepath.Join(filepath.Dir(path), newName)
	if _, err := os.Lstat(target); err == nil {
		return "", fmt.Errorf("%s は既に存在します", target)
	}
	if err := os.Rename(path, target); err != nil {
		return "", fmt.Errorf("改名に失敗しました: %w", err)
	}
	return target, nil
}

// Read はファイルの内容を返します。バイナリファイルは読み込みません
func (o *Operator) Read(path string) ([]byte, error) {
	if err := ensureText(path); err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("ファイルを読み込めません: %w", err)
	}
	return data, nil
}

// Write はファイルに content を書き込みます。appendMode が true の場合は末尾に追記します
func (o *Operator) Write(path string, content []byte, appendMode bool) error {
	flags := os.O_WRONLY | os.O_CREATE | os.O_TRUNC
	if appendMode {
		flags = os.O_WRONLY | os.O_CREATE | os.O_APPEND
	}
	f, err := os.OpenFile(path, flags, 0o644)
	if err != nil {
		return fmt.Errorf("ファイルを開けません: %w", err)
	}
	if _, err := f.Write(content); err != nil {
		f.Close()
		return fmt.Errorf("ファイルに書き込めません: %w", err)
	}
	return f.Close()
}

// ensureText はファイルがテキストとして扱えることを確認します
func ensureText(path string) error {
	mtype, err := mimetype.DetectFile(path)
	if err != nil {
		return fmt.Errorf("ファイル形式を判定できません: %w", err)
	}
	if !isText(mtype) {
		return fmt.Errorf("%w: %s (%s)", ErrBinaryFile, path, mtype.String())
	}
	return nil
}

func isText(mtype *mimetype.MIME) bool {
	for m := mtype; m != nil; m = m.Parent() {
		if m.Is("text/plain") {
			return true
		}
	}
	s := mtype.String()
	return strings.HasPrefix(s, "text/") ||
		strings.HasPrefix(s, "application/json") ||
		strings.HasPrefix(s, "application/xml") ||
		strings.HasPrefix(s, "application/javascript")
}
