package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bnema/wndstack/internal/cli/styles"
	"github.com/bnema/wndstack/internal/infrastructure/config"
)

var schemaWrite bool

var schemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Print the JSON schema of the config file",
	Long: `Print the JSON schema describing windows.yaml, for editor completion and validation.

With --write the schema is stored next to the config file instead.`,
	RunE: runSchema,
}

func init() {
	rootCmd.AddCommand(schemaCmd)
	schemaCmd.Flags().BoolVarP(&schemaWrite, "write", "w", false, "write the schema into the config directory")
}

func runSchema(cmd *cobra.Command, _ []string) error {
	if !schemaWrite {
		data, err := config.GenerateSchema()
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), string(data))
		return nil
	}

	dir, err := config.GetConfigDir()
	if err != nil {
		return err
	}
	path, err := config.WriteSchemaFile(dir)
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), styles.NewConfigRenderer(styles.NewTheme()).RenderSchemaWritten(path))
	return nil
}
