package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	v := viper.New()
	var cfgFile string

	cmd := &cobra.Command{
		Use:           "forcevec",
		Short:         "Resolve two perpendicular forces and draw the vector diagram",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			config, err := loadConfig(v, cfgFile)
			if err != nil {
				return err
			}
			return run(config)
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&cfgFile, "config", "c", "", "config file (default is ~/.forcevecrc)")
	flags.String("frontend", FrontendWindow, "presentation frontend: window or terminal")
	flags.String("save-dir", "", "directory for exported diagrams")
	flags.Int("diagram-size", defaultDiagramSize, "diagram edge length in pixels")
	flags.String("log-file", "", "write JSON logs to this file")
	flags.String("log-level", "info", "log level")

	v.BindPFlag("frontend", flags.Lookup("frontend"))
	v.BindPFlag("save_directory", flags.Lookup("save-dir"))
	v.BindPFlag("diagram_size", flags.Lookup("diagram-size"))
	v.BindPFlag("log_file", flags.Lookup("log-file"))
	v.BindPFlag("log_level", flags.Lookup("log-level"))
	return cmd
}

func run(config *Config) error {
	logger := newLogger(config)
	defer logger.Sync()

	renderer, err := NewRenderer(config.DiagramSize)
	if err != nil {
		return err
	}
	logger.Info("starting", zap.String("frontend", config.Frontend), zap.Int("diagram_size", config.DiagramSize))

	switch config.Frontend {
	case FrontendTerminal:
		m := newTerminalModel(NewApp(terminalLayout, config, renderer, systemClipboard{}, logger))
		p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseCellMotion())
		_, err = p.Run()
	default:
		err = RunWindow(NewApp(windowLayout, config, renderer, systemClipboard{}, logger))
	}
	if err != nil {
		logger.Error("frontend stopped", zap.Error(err))
		return err
	}
	logger.Info("exited")
	return nil
}
