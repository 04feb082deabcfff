package cmd

import (
	"fmt"

	"github.com/krisnawm/folio/internal/config"
	"github.com/krisnawm/folio/internal/content"
	"github.com/spf13/cobra"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize folio configuration",
	Long: `Initialize folio configuration files in your config directory.

This creates:
  - folio.yaml    (theme and word-focus settings)
  - content.yaml  (the portfolio text, starting from the built-in one)

Existing files are left alone unless --force is given.`,
	// Skips loading the configuration so a broken file can be replaced.
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return resolveConfigDir()
	},
	RunE: runInit,
}

func init() {
	rootCmd.AddCommand(initCmd)
	initCmd.Flags().Bool("force", false, "overwrite existing configuration")
}

func runInit(cmd *cobra.Command, args []string) error {
	force, _ := cmd.Flags().GetBool("force")

	written, err := config.WriteTemplate(cfgDir, content.DefaultYAML(), force)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Initializing folio configuration in %s\n\n", cfgDir)
	if len(written) == 0 {
		fmt.Fprintln(out, "  Nothing to do; use --force to overwrite the existing files.")
		return nil
	}
	for _, path := range written {
		fmt.Fprintf(out, "  Created %s\n", path)
	}

	fmt.Fprintln(out)
	fmt.Fprintln(out, "Next steps:")
	fmt.Fprintln(out, "  1. Edit content.yaml with your own name, skills and projects")
	fmt.Fprintln(out, "  2. Run 'folio focus' to preview the animated tagline")
	fmt.Fprintln(out, "  3. Run 'folio' to open the portfolio")
	return nil
}
