// Command dropdown-demo opens a window with a few dropdown boxes.
//
//	go run ./cmd/dropdown-demo --dictionary /usr/share/dict/words --select-on-focus
//
// Every flag can also be set in a YAML config file (--config) or through a
// DROPDOWN_* environment variable, e.g. DROPDOWN_MAX_HEIGHT=120.
package main

import (
	"log/slog"
	"os"
	"runtime"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/go-theft-auto/dropdown/gui"
	"github.com/go-theft-auto/dropdown/internal/config"
)

func init() {
	// GLFW must run on the main thread.
	runtime.LockOSThread()
}

func main() {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "dropdown-demo",
	})
	if err := newRootCmd(logger).Execute(); err != nil {
		logger.Error("exiting", "err", err)
		os.Exit(1)
	}
}

func newRootCmd(logger *log.Logger) *cobra.Command {
	v := config.New()
	var configPath string

	cmd := &cobra.Command{
		Use:           "dropdown-demo",
		Short:         "Show autocomplete dropdown boxes in a GLFW window",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			// --no-filter inverts the filter key, so it is applied by hand.
			if cmd.Flags().Changed("no-filter") {
				noFilter, _ := cmd.Flags().GetBool("no-filter")
				v.Set(config.KeyFilter, !noFilter)
			}
			cfg, err := config.Load(v, configPath)
			if err != nil {
				return err
			}
			setupLogging(logger, cfg.Verbose)
			logger.Debug("configuration loaded", "config", configPath, "style", cfg.Style, "dictionary", cfg.Dictionary)
			return run(cfg, logger)
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&configPath, "config", "", "YAML config file")
	flags.String(config.KeyDictionary, "", "word list for the second box, one word per line (built-in city list if empty)")
	flags.String(config.KeyHint, "type to search", "hint shown in empty fields")
	flags.Bool("no-filter", false, "show every candidate regardless of the typed text")
	flags.Bool(config.KeySelectOnFocus, false, "select the whole text when a field gains focus")
	flags.Float32(config.KeyWidth, 0, "field width in pixels (0 uses the style default)")
	flags.Float32(config.KeyMaxHeight, 200, "maximum popup height in pixels (0 is unconstrained)")
	flags.Bool(config.KeyIgnoreAccents, false, "match candidates ignoring accent marks")
	flags.String(config.KeyStyle, "default", "gui style: default, gta or light")
	flags.String(config.KeyClipboard, "window", "clipboard for cut/copy/paste: window (GLFW) or system")
	flags.BoolP(config.KeyVerbose, "v", false, "debug logging")

	for _, key := range []string{
		config.KeyDictionary, config.KeyHint, config.KeySelectOnFocus, config.KeyWidth,
		config.KeyMaxHeight, config.KeyIgnoreAccents, config.KeyStyle, config.KeyClipboard, config.KeyVerbose,
	} {
		_ = v.BindPFlag(key, flags.Lookup(key))
	}
	return cmd
}

func setupLogging(logger *log.Logger, verbose bool) {
	if verbose {
		logger.SetLevel(log.DebugLevel)
	} else {
		logger.SetLevel(log.InfoLevel)
	}
	gui.SetVerbose(verbose)
	gui.SetLogger(slog.New(logger))
}

// styleByName maps a validated config.KeyStyle value to a gui style.
func styleByName(name string) gui.Style {
	switch name {
	case "gta":
		return gui.GTAStyle()
	case "light":
		return gui.LightStyle()
	default:
		return gui.DefaultStyle()
	}
}
