package cmd

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/yezholov/prattql/ast"
	"github.com/yezholov/prattql/lexer"
	"github.com/yezholov/prattql/parser"
)

var parseCmd = &cobra.Command{
	Use:   "parse [statement]",
	Short: "Parse SQL statements and print their trees",
	Long: `Parse reads one SQL statement from its argument, or from stdin when no
argument is given, and prints the fully parenthesised syntax tree.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		input, err := readInput(args)
		if err != nil {
			printError("reading input", err)
			return err
		}

		if showTokens {
			printTokens(input)
		}

		stmt, err := parser.ParseStatement(input)
		if err != nil {
			printError("parse failed", err)
			return err
		}
		fmt.Println(stmt)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(parseCmd)
}

// readInput returns the statement text: the single positional argument when
// present, otherwise everything on stdin.
func readInput(args []string) (string, error) {
	if len(args) == 1 {
		return args[0], nil
	}
	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(data)), nil
}

// printTokens dumps the token stream for input, one token per line.
func printTokens(input string) {
	l := lexer.New(input)
	for {
		tok := l.NextToken()
		fmt.Printf("%3d:%-3d %q\n", tok.Line, tok.Col, tok.Literal)
		if tok.Type == ast.EOF {
			return
		}
	}
}
