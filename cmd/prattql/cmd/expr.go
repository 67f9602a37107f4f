package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/yezholov/prattql/expr"
)

var exprCmd = &cobra.Command{
	Use:   "expr <expression>",
	Short: "Parse a bare expression with the compact calculator grammar",
	Long: `Expr parses its argument with the compact expression grammar, where every
identifier is a single character and A/D mark ascending/descending ordering,
and prints the fully parenthesised tree.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := expr.Parse(strings.Join(args, " "))
		if err != nil {
			printError("parse failed", err)
			return err
		}
		fmt.Println(e)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(exprCmd)
}
