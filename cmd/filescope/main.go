// Package main はアプリケーションのエントリーポイントを提供します
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"FileScope/internal/infrastructure/config"
	"FileScope/internal/infrastructure/fileops"
	"FileScope/internal/infrastructure/filesystem"
	"FileScope/internal/infrastructure/logging"
)

var version = "v1.1.0"

// app はコマンド間で共有する依存関係です
type app struct {
	v        *viper.Viper
	cfgFile  string
	logger   *logging.ZapLogger
	operator *fileops.Operator
}

func newRootCmd() *cobra.Command {
	a := &app{v: config.New()}

	rootCmd := &cobra.Command{
		Use:   "filescope",
		Short: "A command-line directory explorer",
		Long: `filescope lists the entries of a directory with their size, modification
time, permissions, owner and group. Entries can be sorted, filtered by
extension and collected recursively.

Subcommands perform simple file operations (copy, move, delete, view, edit,
mkdir, rename, read, write, search, exec).`,
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.init(cmd)
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if a.logger != nil {
				_ = a.logger.Sync()
			}
		},
		RunE: a.runList,
	}

	rootCmd.PersistentFlags().StringVar(&a.cfgFile, "config", "", "config file (default is $HOME/.filescope.yaml)")

	flags := rootCmd.Flags()
	flags.StringP("dir", "d", ".", "directory to explore")
	flags.StringP("sort", "s", "name", "sort entries by name, size, date or path")
	flags.StringP("filter", "f", "", "only show entries whose name ends with this extension")
	flags.BoolP("hidden", "a", false, "show hidden files and directories")
	flags.BoolP("recursive", "r", false, "explore directories recursively")
	flags.String("sort-scope", "global", "apply sort and filter once (global) or at every directory level (level)")
	flags.BoolP("follow", "L", false, "follow symbolic links to directories")
	flags.BoolP("numeric", "n", false, "show numeric user and group IDs")
	flags.String("format", "table", "output format: table, json, yaml, toml or csv")
	flags.StringP("output", "o", "", "write the listing to a timestamped file in this directory")
	flags.Bool("no-color", false, "disable colored output")
	flags.Bool("summary", false, "print a summary line after the listing")
	flags.Bool("pick", false, "choose the directory with a folder dialog")

	cobra.CheckErr(config.BindFlags(a.v, flags))

	rootCmd.AddCommand(
		a.copyCmd(),
		a.moveCmd(),
		a.deleteCmd(),
		a.viewCmd(),
		a.editCmd(),
		a.mkdirCmd(),
		a.renameCmd(),
		a.readCmd(),
		a.writeCmd(),
		a.searchCmd(),
		a.execCmd(),
		versionCmd(),
	)
	return rootCmd
}

// init は設定ファイルとロガーを初期化します
func (a *app) init(cmd *cobra.Command) error {
	logCfg, err := logging.LoadConfig()
	if err != nil {
		return err
	}
	a.logger, err = logging.New(logCfg)
	if err != nil {
		return fmt.Errorf("ロガーの初期化に失敗しました: %w", err)
	}

	used, err := config.ReadFile(a.v, a.cfgFile)
	if err != nil {
		return err
	}
	if used != "" {
		a.logger.Log(logging.LevelInfo, fmt.Sprintf("設定ファイルを使用します: %s", used), nil)
	}

	runner := &fileops.ExecRunner{
		Stdin:  cmd.InOrStdin(),
		Stdout: cmd.OutOrStdout(),
		Stderr: cmd.ErrOrStderr(),
	}
	a.operator = fileops.NewOperator(runner, a.logger)
	return nil
}

func (a *app) newScanner(numeric bool) filesystem.DirectoryWalker {
	return filesystem.NewScanner(a.logger, filesystem.NewInspector(!numeric))
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "filescope %s\n", version)
		},
	}
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
