package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var showTokens bool

var rootCmd = &cobra.Command{
	Use:   "prattql",
	Short: "prattql - SQL parser playground",
	Long: `prattql parses a small SQL dialect and prints the resulting syntax tree.

Commands:
  parse    Parse SQL statements and print their trees
  expr     Parse a bare expression with the compact calculator grammar
  repl     Interactive parsing session
  version  Show version information`,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&showTokens, "tokens", "t", false, "print the token stream before the tree")
}

func printError(msg string, err error) {
	fmt.Fprintf(os.Stderr, "error: %s: %v\n", msg, err)
}
