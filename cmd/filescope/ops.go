package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"FileScope/internal/infrastructure/fileops"
)

func (a *app) copyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "copy SOURCE DESTINATION",
		Short: "Copy a file or directory recursively",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.operator.Copy(cmd.Context(), args[0], args[1])
		},
	}
}

func (a *app) moveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "move SOURCE DESTINATION",
		Short: "Move a file or directory",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.operator.Move(cmd.Context(), args[0], args[1])
		},
	}
}

func (a *app) deleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete PATH",
		Short: "Delete a file or directory recursively",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if info, err := os.Lstat(args[0]); err == nil && info.IsDir() {
				if err := a.newScanner(true).ValidateDirectoryPath(args[0]); err != nil {
					return fmt.Errorf("削除対象のディレクトリが不正です: %w", err)
				}
			}
			return a.operator.Delete(cmd.Context(), args[0])
		},
	}
}

func (a *app) viewCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "view FILE",
		Short: "Show the content of a text file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.operator.View(cmd.Context(), args[0])
		},
	}
}

func (a *app) editCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "edit FILE",
		Short: "Open a file in the system editor",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.operator.Edit(cmd.Context(), args[0])
		},
	}
}

func (a *app) mkdirCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "mkdir DIRECTORY",
		Short: "Create a directory and any missing parents",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.operator.CreateDir(args[0])
		},
	}
}

func (a *app) renameCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "rename PATH NEW_NAME",
		Short: "Rename a file or directory in place",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			target, err := a.operator.Rename(args[0], args[1])
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), target)
			return nil
		},
	}
}

func (a *app) readCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "read FILE",
		Short: "Print the content of a text file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := a.operator.Read(args[0])
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(data)
			return err
		},
	}
}

func (a *app) writeCmd() *cobra.Command {
	var appendMode bool
	cmd := &cobra.Command{
		Use:   "write FILE CONTENT",
		Short: "Write content to a file",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.operator.Write(args[0], []byte(args[1]), appendMode)
		},
	}
	cmd.Flags().BoolVar(&appendMode, "append", false, "append instead of overwriting")
	return cmd
}

func (a *app) searchCmd() *cobra.Command {
	q := fileops.SearchQuery{}
	cmd := &cobra.Command{
		Use:   "search TEXT",
		Short: "Search text files for lines containing TEXT",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			q.Text = args[0]
			matches, err := a.operator.Search(cmd.Context(), q)
			if err != nil {
				return err
			}
			for _, m := range matches {
				fmt.Fprintf(cmd.OutOrStdout(), "%s:%d:%s\n", m.Path, m.Line, m.Content)
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&q.Root, "dir", "d", ".", "directory to search")
	cmd.Flags().StringVarP(&q.Pattern, "pattern", "p", "", "only search files matching this glob (e.g. *.go, src/**/*.ts)")
	cmd.Flags().BoolVarP(&q.ShowHidden, "hidden", "a", false, "include hidden files and directories")
	return cmd
}

func (a *app) execCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "exec COMMAND [ARGS...]",
		Short: "Run a shell command",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.operator.Exec(cmd.Context(), strings.Join(args, " "))
		},
	}
	// 引数はそのままシェルへ渡す
	cmd.DisableFlagParsing = true
	return cmd
}
