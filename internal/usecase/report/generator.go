// Package report はディレクトリ一覧の出力機能を提供します
package report

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/bytedance/sonic"
	"github.com/fatih/color"
	"github.com/goccy/go-yaml"
	"github.com/pelletier/go-toml/v2"

	"FileScope/internal/domain/model"
)

const (
	OutputFilePrefix = "listing_"
	TimestampLayout  = "20060102_150405"
	ModifiedLayout   = "2006-01-02 15:04:05"
	NotAvailable     = "N/A"
)

// Format は一覧の出力形式です
type Format string

const (
	FormatTable Format = "table"
	FormatJSON  Format = "json"
	FormatYAML  Format = "yaml"
	FormatTOML  Format = "toml"
	FormatCSV   Format = "csv"
)

// ParseFormat は文字列を Format に変換します。不明な値は FormatTable になります
func ParseFormat(s string) Format {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case FormatJSON, FormatYAML, FormatTOML, FormatCSV:
		return f
	case "yml":
		return FormatYAML
	default:
		return FormatTable
	}
}

// FileExtension は出力ファイルの拡張子を返します
func (f Format) FileExtension() string {
	if f == FormatTable {
		return ".txt"
	}
	return "." + string(f)
}

// Generator は一覧の出力機能を提供します
type Generator struct {
	colorize bool
}

// NewGenerator は新しい Generator インスタンスを作成します。
// colorize が true の場合、表形式の名前を色分けします
func NewGenerator(colorize bool) *Generator {
	return &Generator{colorize: colorize}
}

// CreateOutputFile は出力ファイルを作成します
func (g *Generator) CreateOutputFile(outputDir string, format Format) (*os.File, string, error) {
	timestamp := time.Now().Format(TimestampLayout)
	outputPath := filepath.Join(outputDir, OutputFilePrefix+timestamp+format.FileExtension())

	outputFile, err := os.Create(outputPath)
	if err != nil {
		return nil, "", fmt.Errorf("出力ファイルの作成に失敗しました: %w", err)
	}

	return outputFile, outputPath, nil
}

// WriteListing はエントリを指定された形式で出力します
func (g *Generator) WriteListing(w io.Writer, records []model.EntryRecord, format Format) error {
	switch format {
	case FormatJSON:
		return g.writeJSON(w, records)
	case FormatYAML:
		return g.writeYAML(w, records)
	case FormatTOML:
		return g.writeTOML(w, records)
	case FormatCSV:
		return g.writeCSV(w, records)
	default:
		return g.writeTable(w, records)
	}
}

// WriteSummary はディレクトリ数・ファイル数・合計サイズを出力します
func (g *Generator) WriteSummary(w io.Writer, records []model.EntryRecord) error {
	var dirs, files int
	var total int64
	for _, r := range records {
		if r.IsDir {
			dirs++
			continue
		}
		files++
		total += r.SizeOrZero()
	}
	_, err := fmt.Fprintf(w, "%d directories, %d files, %s\n", dirs, files, FormatBytes(total))
	return err
}

func (g *Generator) writeTable(w io.Writer, records []model.EntryRecord) error {
	for _, r := range records {
		name := g.paint(r, fmt.Sprintf("%-30s", r.Name))
		_, err := fmt.Fprintf(w, "%s %-15s %-20s %-20s %-20s %s\n",
			name,
			formatSize(r.Size),
			formatModified(r.Modified),
			orNA(r.Permissions),
			orNA(r.Owner),
			orNA(r.Group),
		)
		if err != nil {
			return fmt.Errorf("一覧の書き込みに失敗しました: %w", err)
		}
	}
	return nil
}

// paint はディレクトリと一部の拡張子に色を付けます
func (g *Generator) paint(r model.EntryRecord, text string) string {
	var c *color.Color
	switch {
	case r.IsDir:
		c = color.New(color.FgBlue, color.Bold)
	case r.Extension() == ".go":
		c = color.New(color.FgCyan)
	case r.Extension() == ".md":
		c = color.New(color.FgYellow)
	case isArchive(r.Name):
		c = color.New(color.FgRed)
	default:
		c = color.New(color.FgWhite)
	}
	if g.colorize {
		c.EnableColor()
	} else {
		c.DisableColor()
	}
	return c.Sprint(text)
}

func isArchive(name string) bool {
	lower := strings.ToLower(name)
	for _, ext := range []string{".zip", ".tar", ".gz", ".tgz", ".bz2", ".xz", ".7z", ".rar"} {
		if strings.HasSuffix(lower, ext) {
			return true
		}
	}
	return false
}

// entryView は構造化形式で出力するための表現です
type entryView struct {
	Name        string  `json:"name" yaml:"name" toml:"name"`
	Path        string  `json:"path" yaml:"path" toml:"path"`
	IsDir       bool    `json:"is_dir" yaml:"is_dir" toml:"is_dir"`
	Size        *int64  `json:"size" yaml:"size" toml:"size,omitempty"`
	Modified    *int64  `json:"modified" yaml:"modified" toml:"modified,omitempty"`
	Permissions *string `json:"permissions" yaml:"permissions" toml:"permissions,omitempty"`
	Owner       *string `json:"owner" yaml:"owner" toml:"owner,omitempty"`
	Group       *string `json:"group" yaml:"group" toml:"group,omitempty"`
}

func views(records []model.EntryRecord) []entryView {
	out := make([]entryView, len(records))
	for i, r := range records {
		out[i] = entryView(r)
	}
	return out
}

func (g *Generator) writeJSON(w io.Writer, records []model.EntryRecord) error {
	data, err := sonic.MarshalIndent(views(records), "", "  ")
	if err != nil {
		return fmt.Errorf("JSON への変換に失敗しました: %w", err)
	}
	return writeLine(w, data)
}

func (g *Generator) writeYAML(w io.Writer, records []model.EntryRecord) error {
	if len(records) == 0 {
		return writeLine(w, []byte("[]"))
	}
	data, err := yaml.Marshal(views(records))
	if err != nil {
		return fmt.Errorf("YAML への変換に失敗しました: %w", err)
	}
	_, err = w.Write(data)
	return err
}

func (g *Generator) writeTOML(w io.Writer, records []model.EntryRecord) error {
	doc := struct {
		Entries []entryView `toml:"entries"`
	}{Entries: views(records)}

	data, err := toml.Marshal(doc)
	if err != nil {
		return fmt.Errorf("TOML への変換に失敗しました: %w", err)
	}
	_, err = w.Write(data)
	return err
}

func (g *Generator) writeCSV(w io.Writer, records []model.EntryRecord) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"name", "path", "is_dir", "size", "modified", "permissions", "owner", "group"}); err != nil {
		return err
	}
	for _, r := range records {
		row := []string{
			r.Name,
			r.Path,
			strconv.FormatBool(r.IsDir),
			int64Cell(r.Size),
			int64Cell(r.Modified),
			stringCell(r.Permissions),
			stringCell(r.Owner),
			stringCell(r.Group),
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

func writeLine(w io.Writer, data []byte) error {
	if _, err := w.Write(data); err != nil {
		return err
	}
	_, err := io.WriteString(w, "\n")
	return err
}

func int64Cell(v *int64) string {
	if v == nil {
		return ""
	}
	return strconv.FormatInt(*v, 10)
}

func stringCell(v *string) string {
	if v == nil {
		return ""
	}
	return *v
}

func orNA(v *string) string {
	if v == nil {
		return NotAvailable
	}
	return *v
}

func formatSize(v *int64) string {
	if v == nil {
		return NotAvailable
	}
	return FormatBytes(*v)
}

func formatModified(v *int64) string {
	if v == nil {
		return NotAvailable
	}
	return time.Unix(*v, 0).UTC().Format(ModifiedLayout)
}

// FormatBytes はバイト数を人間が読みやすい形式に変換します
func FormatBytes(bytes int64) string {
	const unit = 1024
	if bytes < unit {
		return fmt.Sprintf("%d B", bytes)
	}

	div, exp := int64(unit), 0
	for n := bytes / unit; n >= unit && exp < 4; n /= unit {
		div *= unit
		exp++
	}

	units := []string{"KB", "MB", "GB", "TB", "PB"}
	return fmt.Sprintf("%.2f %s", float64(bytes)/float64(div), units[exp])
}
