package fileops

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/exec"
)

// Runner は外部コマンドを実行するインターフェースです
type Runner interface {
	Run(ctx context.Context, name string, args ...string) error
}

// ExecRunner は os/exec でコマンドを実行し、標準入出力を引き継ぎます
type ExecRunner struct {
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
}

// NewExecRunner はプロセスの標準入出力を使う ExecRunner を作成します
func NewExecRunner() *ExecRunner {
	return &ExecRunner{Stdin: os.Stdin, Stdout: os.Stdout, Stderr: os.Stderr}
}

// Run はコマンドを実行し、終了するまで待ちます
func (r *ExecRunner) Run(ctx context.Context, name string, args ...string) error {
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Stdin = r.Stdin
	cmd.Stdout = r.Stdout
	cmd.Stderr = r.Stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("%s の実行に失敗しました: %w", name, err)
	}
	return nil
}
