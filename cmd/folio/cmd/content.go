package cmd

import (
	"github.com/spf13/cobra"
)

var contentCmd = &cobra.Command{
	Use:   "content",
	Short: "Print the resolved portfolio content",
	Long: `Print the portfolio content folio would show, as YAML.

The document is validated first, so this doubles as a check of an edited
content.yaml.`,
	RunE: runContent,
}

func init() {
	rootCmd.AddCommand(contentCmd)
}

func runContent(cmd *cobra.Command, args []string) error {
	portfolio, err := loadPortfolio()
	if err != nil {
		return err
	}
	out, err := portfolio.Marshal()
	if err != nil {
		return err
	}
	_, err = cmd.OutOrStdout().Write(out)
	return err
}
