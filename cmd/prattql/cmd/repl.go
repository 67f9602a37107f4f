package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/peterh/liner"
	"github.com/spf13/cobra"

	"github.com/yezholov/prattql/parser"
)

const (
	historyFile = ".prattql_history"
	prompt      = "sql> "
)

func red(s string) string   { return "\x1b[31m" + s + "\x1b[0m" }
func green(s string) string { return "\x1b[32m" + s + "\x1b[0m" }

var replCmd = &cobra.Command{
	Use:   "repl",
	Short: "Interactive parsing session",
	Long: `Repl reads statements from an interactive prompt and prints their trees.

Input starting with SELECT or CREATE is parsed as a statement; anything else is
parsed as a bare expression. Type :quit or press Ctrl+D to exit.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runRepl()
	},
}

func init() {
	rootCmd.AddCommand(replCmd)
}

func runRepl() error {
	fmt.Println("prattql repl. Ctrl+D or :quit exits.")

	home, _ := os.UserHomeDir()
	histPath := filepath.Join(home, historyFile)

	ln := liner.NewLiner()
	defer ln.Close()
	ln.SetCtrlCAborts(true)

	defer func() {
		if f, err := os.Create(histPath); err == nil {
			_, _ = ln.WriteHistory(f)
			_ = f.Close()
		}
	}()

	if f, err := os.Open(histPath); err == nil {
		_, _ = ln.ReadHistory(f)
		_ = f.Close()
	}

	for {
		line, err := ln.Prompt(prompt)
		if errors.Is(err, io.EOF) {
			fmt.Println()
			return nil
		}
		if errors.Is(err, liner.ErrPromptAborted) {
			continue
		}
		if err != nil {
			return err
		}

		input := strings.TrimSpace(line)
		if input == "" {
			continue
		}
		if strings.HasPrefix(input, ":") {
			if strings.ToLower(input) == ":quit" {
				return nil
			}
			fmt.Println("unknown command. Type :quit to exit.")
			continue
		}

		ln.AppendHistory(line)

		if showTokens {
			printTokens(input)
		}

		out, err := parseLine(input)
		if err != nil {
			fmt.Fprintln(os.Stderr, red(err.Error()))
			continue
		}
		fmt.Println(green(out))
	}
}

// parseLine parses input as a statement when it opens with a statement keyword,
// and as a bare expression otherwise.
func parseLine(input string) (string, error) {
	head := strings.ToUpper(input)
	if strings.HasPrefix(head, "SELECT") || strings.HasPrefix(head, "CREATE") {
		stmt, err := parser.ParseStatement(input)
		if err != nil {
			return "", err
		}
		return stmt.String(), nil
	}
	e, err := parser.ParseExpression(input)
	if err != nil {
		return "", err
	}
	return e.String(), nil
}
