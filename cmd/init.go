package cmd

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"
)

const starterSchema = `package schema

// Database describes the data tables accessors are generated for. Add one
// field per table under Tables; the field names are the raw table
// identifiers, so keep them snake_case.
type Database struct {
	Public struct {
		Tables struct {
			post struct {
				ID    int64
				Title string
			}
		}
	}
}
`

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a starter schema file to begin from",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		path := inputPrompt("Schema file path", "schema.go")
		if _, err := os.Stat(path); err == nil {
			return fmt.Errorf("%s already exists, refusing to overwrite", path)
		}
		if err := os.WriteFile(path, []byte(starterSchema), 0o644); err != nil {
			return fmt.Errorf("write starter schema: %w", err)
		}
		color.Green("wrote %s", path)
		return nil
	},
}

func inputPrompt(label, def string) string {
	prompt := promptui.Prompt{Label: label, Default: def}
	result, err := prompt.Run()
	if err != nil {
		return def
	}
	return result
}

func init() {
	rootCmd.AddCommand(initCmd)
}
