// Package ui はユーザーインターフェース機能を提供します
package ui

import (
	"errors"
	"fmt"

	"github.com/sqweek/dialog"

	"FileScope/internal/infrastructure/filesystem"
)

// ErrCancelled はユーザーがダイアログをキャンセルしたことを示します
var ErrCancelled = errors.New("ディレクトリの選択がキャンセルされました")

// BrowseFunc はフォルダ選択ダイアログを表示し、選択されたパスを返す関数です
type BrowseFunc func(title, startDir string) (string, error)

// nativeBrowse は OS ネイティブのフォルダ選択ダイアログを表示します
func nativeBrowse(title, startDir string) (string, error) {
	b := dialog.Directory().Title(title)
	if startDir != "" {
		b = b.SetStartDir(startDir)
	}
	return b.Browse()
}

// DirectorySelector はディレクトリ選択機能を提供します
type DirectorySelector struct {
	// validator はディレクトリパスの検証を行うインターフェースです
	validator filesystem.DirectoryValidator
	browse    BrowseFunc
}

// NewDirectorySelector は新しい DirectorySelector インスタンスを作成します
func NewDirectorySelector(validator filesystem.DirectoryValidator) *DirectorySelector {
	return &DirectorySelector{validator: validator, browse: nativeBrowse}
}

// WithBrowser はダイアログの表示方法を差し替えます
func (d *DirectorySelector) WithBrowser(browse BrowseFunc) *DirectorySelector {
	d.browse = browse
	return d
}

// SelectDirectory はダイアログを表示してディレクトリを選択します
func (d *DirectorySelector) SelectDirectory(title, startDir string) (string, error) {
	selectedDir, err := d.browse(title, startDir)
	if errors.Is(err, dialog.ErrCancelled) {
		return "", ErrCancelled
	}
	if err != nil {
		return "", fmt.Errorf("ディレクトリの選択がエラーになりました: %w", err)
	}

	if err := d.validator.ValidateDirectoryPath(selectedDir); err != nil {
		return "", fmt.Errorf("無効なディレクトリが選択されました: %w", err)
	}

	return selectedDir, nil
}
