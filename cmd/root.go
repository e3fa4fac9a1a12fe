package cmd

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"shireesh.com/indium/internal/generator"
)

var rootCmd = &cobra.Command{
	Use:   "indium <schema> <output>",
	Short: "Generate table accessor code from a schema definition",
	Long: `indium reads a schema file declaring data tables and writes one source
file combining generic CRUD primitives with a generated method group per
table. The primitives live in a template next to the output file; the
template is written once and never overwritten, so it can be edited by
hand and survives regeneration. The output file is replaced on every run.`,
	Args:          cobra.ExactArgs(2),
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		n, err := generator.Generate(args[0], args[1])
		if err != nil {
			return err
		}
		color.Green("generated %d table accessor group(s) -> %s", n, args[1])
		return nil
	},
}

func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
