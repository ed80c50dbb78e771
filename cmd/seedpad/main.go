package main

import (
	"fmt"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/seedpad/seedpad-terminal/internal/cli"
	"github.com/seedpad/seedpad-terminal/pkg/files"
	"github.com/seedpad/seedpad-terminal/pkg/models"
	"github.com/seedpad/seedpad-terminal/pkg/tui"
)

// Version is set during build with -ldflags
var version = "dev"

var (
	configDir   string
	quiet       bool
	noColor     bool
	skipConfirm bool

	dualMode bool
	backend  string

	outputFormat string
)

var rootCmd = &cobra.Command{
	Use:   "seedpad",
	Short: "Terminal tool for entering, storing and exporting 12-word recovery phrases",
	Long: `Seedpad is a terminal tool for entering and editing 12-word recovery phrases.
Phrases can be saved to a local SQLite database or a PostgREST endpoint, copied
to the clipboard and exported as QR codes.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		cli.SetGlobalFlags(quiet, noColor, skipConfirm)
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, err := cli.NewCommandContext(configDir)
		if err != nil {
			return err
		}
		settings, err := ctx.LoadSettings()
		if err != nil {
			return err
		}
		if cmd.Flags().Changed("dual") {
			settings.UI.Dual = dualMode
		}
		if cmd.Flags().Changed("backend") {
			if err := cli.ValidateBackend(backend); err != nil {
				return err
			}
			settings.Store.Backend = backend
		}

		logger, err := ctx.OpenLogger()
		if err != nil {
			return err
		}
		defer logger.Close()

		st, err := ctx.OpenStore()
		if err != nil {
			logger.Error("store open failed", "error", err)
			return err
		}
		defer st.Close()
		logger.Info("store opened", "backend", ctx.StoreConfig().Backend, "config_dir", ctx.ConfigDir)

		clip := tui.SystemClipboard()
		if clip == nil {
			logger.Warn("no clipboard utility found, copy and paste are disabled")
			cli.PrintWarning("No clipboard utility found (install xclip, xsel or wl-clipboard); copy and paste are disabled")
		}

		app := tui.NewApp(tui.Options{
			Settings:  settings,
			Store:     st,
			DeviceIDs: ctx.DeviceIDs(),
			Clipboard: clip,
			Logger:    logger,
		})
		p := tea.NewProgram(app, tea.WithAltScreen())
		if _, err := p.Run(); err != nil {
			logger.Error("tui exited with error", "error", err)
			return fmt.Errorf("failed to start the terminal user interface: %w", err)
		}
		return nil
	},
}

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a default settings file",
	Long:  `Creates the config directory and writes settings.yaml with the default configuration`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, err := cli.NewCommandContext(configDir)
		if err != nil {
			return err
		}

		path := filepath.Join(ctx.ConfigDir, files.SettingsFile)
		if _, err := os.Stat(path); err == nil {
			ok, err := cli.Confirm(fmt.Sprintf("%s already exists. Overwrite?", path), false)
			if err != nil {
				return err
			}
			if !ok {
				cli.PrintInfo("Kept existing settings")
				return nil
			}
		}

		if err := files.WriteSettings(ctx.ConfigDir, models.DefaultSettings()); err != nil {
			return err
		}
		cli.PrintSuccess("Wrote %s", path)
		cli.PrintInfo("Run 'seedpad' to start the interactive TUI.")
		return nil
	},
}

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show the effective settings",
	Long:  `Prints the settings seedpad would start with. The REST api key is masked.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := cli.ValidateOutputFormat(outputFormat); err != nil {
			return err
		}
		ctx, err := cli.NewCommandContext(configDir)
		if err != nil {
			return err
		}
		settings, err := ctx.LoadSettings()
		if err != nil {
			return err
		}

		shown := *settings
		shown.Store.REST.APIKey = cli.MaskSecret(shown.Store.REST.APIKey)

		if outputFormat != string(cli.FormatText) {
			return cli.OutputResults(cmd.OutOrStdout(), outputFormat, shown)
		}

		table := cli.NewTableFormatter(cmd.OutOrStdout())
		table.Header("SETTING", "VALUE")
		table.Row("config dir", ctx.ConfigDir)
		table.Row("store.backend", shown.Store.Backend)
		table.Row("store.sqlite_path", files.ResolvePath(ctx.ConfigDir, shown.Store.SQLitePath))
		table.Row("store.rest.url", shown.Store.REST.URL)
		table.Row("store.rest.api_key", shown.Store.REST.APIKey)
		table.Row("store.rest.table", shown.Store.REST.Table)
		table.Row("ui.dual", fmt.Sprint(shown.UI.Dual))
		table.Row("ui.notice_ms", fmt.Sprint(shown.UI.NoticeMillis))
		table.Row("export.dir", shown.Export.Dir)
		table.Row("export.size", fmt.Sprint(shown.Export.Size))
		table.Row("export.level", shown.Export.Level)
		table.Row("log.level", shown.Log.Level)
		table.Row("log.dir", files.ResolvePath(ctx.ConfigDir, shown.Log.Dir))
		table.Flush()
		return nil
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of Seedpad",
	Long:  `Display the current version of the Seedpad terminal tool`,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("Seedpad version %s\n", version)
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configDir, "config-dir", "", "config directory (default $SEEDPAD_HOME or the user config dir)")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "suppress informational output")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable symbols in output")
	rootCmd.PersistentFlags().BoolVarP(&skipConfirm, "yes", "y", false, "answer yes to prompts")

	rootCmd.Flags().BoolVar(&dualMode, "dual", false, "edit two phrases side by side")
	rootCmd.Flags().StringVar(&backend, "backend", "", "record store backend: sqlite, rest or memory")

	configCmd.Flags().StringVarP(&outputFormat, "output", "o", "text", "output format: text, json or yaml")

	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(versionCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		cli.PrintError("%v", err)
		os.Exit(1)
	}
}
