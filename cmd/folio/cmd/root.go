// Package cmd contains all CLI commands for folio.
package cmd

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/joho/godotenv"
	"github.com/krisnawm/folio/internal/config"
	"github.com/krisnawm/folio/internal/content"
	"github.com/krisnawm/folio/internal/log"
	"github.com/krisnawm/folio/internal/tui"
	"github.com/krisnawm/folio/internal/tui/bigchar"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	cfgDir    string
	cfg       *config.Config
	logCloser io.Closer = io.NopCloser(nil)
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "folio",
	Short: "A terminal portfolio with an animated word-focus header",
	Long: `folio renders a personal portfolio in the terminal: a hero with the
name and an animated tagline, an about section, skills, projects and
contact links.

The tagline cycles its words one at a time: the focused word is sharp and
framed, the others are faded back.

Running 'folio' without arguments launches the interactive TUI.`,
	SilenceUsage:       true,
	PersistentPreRunE:  setup,
	PersistentPostRunE: teardown,
	RunE:               runPortfolio,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgDir, "config", "", "config directory (default is $HOME/.config/folio)")
	rootCmd.PersistentFlags().String("theme", "", "light or dark")
	rootCmd.PersistentFlags().Bool("verbose", false, "debug logging")
	rootCmd.PersistentFlags().String("log-file", "", "log file (default is folio.log in the config directory)")

	viper.BindPFlag("theme", rootCmd.PersistentFlags().Lookup("theme"))
	viper.BindPFlag("verbose", rootCmd.PersistentFlags().Lookup("verbose"))
	viper.BindPFlag("log_file", rootCmd.PersistentFlags().Lookup("log-file"))
}

// resolveConfigDir fills cfgDir from the flag or the default location.
func resolveConfigDir() error {
	// .env in the working directory is optional
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		fmt.Fprintln(os.Stderr, "Warning: reading .env:", err)
	}

	if cfgDir != "" {
		return nil
	}
	dir, err := config.GetConfigDir()
	if err != nil {
		return fmt.Errorf("finding config directory: %w", err)
	}
	cfgDir = dir
	return nil
}

// setup reads the configuration and opens the log file.
func setup(cmd *cobra.Command, args []string) error {
	if err := resolveConfigDir(); err != nil {
		return err
	}

	v := viper.GetViper()
	if err := config.Setup(v, cfgDir); err != nil {
		return err
	}
	c, err := config.Load(v)
	if err != nil {
		return err
	}
	cfg = c

	closer, err := log.Init(cfg.LogPath(), cfg.Verbose)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Warning: logging disabled:", err)
	} else {
		logCloser = closer
	}

	source := v.ConfigFileUsed()
	if source == "" {
		source = "defaults"
	}
	log.Info("config loaded", "source", source, "theme", cfg.Theme, "verbose", cfg.Verbose)
	return nil
}

func teardown(cmd *cobra.Command, args []string) error {
	return logCloser.Close()
}

// loadPortfolio returns the configured content, or the built-in portfolio.
func loadPortfolio() (*content.Portfolio, error) {
	path := cfg.ContentPath()
	if path == "" {
		log.Info("using built-in content")
		return content.Default(), nil
	}
	p, err := content.Load(path)
	if err != nil {
		return nil, err
	}
	log.Info("content loaded", "path", path)
	return p, nil
}

// runPortfolio launches the portfolio TUI.
func runPortfolio(cmd *cobra.Command, args []string) error {
	portfolio, err := loadPortfolio()
	if err != nil {
		return err
	}

	title, err := bigchar.New("")
	if err != nil {
		log.Warn("title font unavailable, using plain text", "err", err)
	} else {
		log.Debug("title font", "source", title.Source())
	}

	fc := cfg.FocusConfig(portfolio.Tagline)
	app, err := tui.NewApp(tui.Options{
		Portfolio: portfolio,
		Focus:     fc,
		Dark:      cfg.Dark(),
		Highlight: func(dark bool) (string, string) {
			themed := cfg.ThemedFocus(fc, dark)
			return themed.BorderColor, themed.GlowColor
		},
		Title: title,
	})
	if err != nil {
		return err
	}
	defer app.Close()

	p := tea.NewProgram(app, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("running TUI: %w", err)
	}
	return nil
}
