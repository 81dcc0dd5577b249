package main

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"FileScope/internal/domain/model"
	"FileScope/internal/infrastructure/config"
	"FileScope/internal/infrastructure/logging"
	"FileScope/internal/interface/ui"
	"FileScope/internal/usecase/report"
)

// runList はディレクトリを走査して一覧を出力します
func (a *app) runList(cmd *cobra.Command, args []string) error {
	settings := config.Load(a.v)
	scanner := a.newScanner(settings.Numeric)

	if pick, _ := cmd.Flags().GetBool("pick"); pick {
		dir, err := ui.NewDirectorySelector(scanner).SelectDirectory("Select a directory to explore", settings.Dir)
		if err != nil {
			return err
		}
		settings.Dir = dir
	}

	records := scanner.Walk(settings.Dir, settings.Walk)
	a.logger.Log(logging.LevelDebug, fmt.Sprintf("%d 件のエントリを収集しました: %s", len(records), settings.Dir), nil)

	colorize := !settings.NoColor && !color.NoColor && settings.Format == report.FormatTable

	if settings.Output != "" {
		generator := report.NewGenerator(false)
		file, path, err := generator.CreateOutputFile(settings.Output, settings.Format)
		if err != nil {
			return err
		}
		defer file.Close()
		if err := writeListing(generator, file, records, settings); err != nil {
			return err
		}
		a.logger.Log(logging.LevelInfo, fmt.Sprintf("一覧を出力しました: %s", path), nil)
		fmt.Fprintln(cmd.ErrOrStderr(), path)
		return nil
	}

	return writeListing(report.NewGenerator(colorize), cmd.OutOrStdout(), records, settings)
}

func writeListing(g *report.Generator, w io.Writer, records []model.EntryRecord, settings config.Settings) error {
	if err := g.WriteListing(w, records, settings.Format); err != nil {
		return err
	}
	if settings.Summary && settings.Format == report.FormatTable {
		return g.WriteSummary(w, records)
	}
	return nil
}
