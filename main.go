// Copyright
// SPDX-License-Identifier: MIT
// rtedit: terminal rich-text editor demo with controlled and uncontrolled editors
package main

import (
	"errors"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"rtedit/internal/config"
	"rtedit/internal/richtext"
	appTUI "rtedit/internal/tui"
	"rtedit/internal/tui/util"
	"rtedit/internal/tui/widgets/preview"
)

const Version = "0.1.0"

var (
	flags = struct {
		ConfigFile string
		NoColor    bool
		LogFile    string
	}{}

	previewFlags = struct {
		Bold      bool
		Italic    bool
		Underline bool
		Format    string
	}{}

	root = &cobra.Command{
		Use:           "rtedit",
		Short:         "Rich-text editor demo: controlled, uncontrolled and custom toolbar panes",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := loadConfig()
			if err != nil {
				return err
			}
			logger, closeLog, err := openLog(c.LogFile)
			if err != nil {
				return err
			}
			defer closeLog()
			logger.Printf("rtedit %s starting", Version)
			return appTUI.Run(c, appTUI.Deps{Logger: logger})
		},
	}

	initCmd = &cobra.Command{
		Use:   "init",
		Short: "Write a default config file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			path := config.ExpandPath(flags.ConfigFile)
			if _, err := os.Stat(path); err == nil {
				fmt.Fprintln(cmd.OutOrStdout(), path, "already exists; not overwriting")
				return nil
			} else if !errors.Is(err, os.ErrNotExist) {
				return err
			}
			c := config.Default()
			if err := config.Save(path, &c); err != nil {
				return fmt.Errorf("init: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Wrote", path)
			return nil
		},
	}

	previewCmd = &cobra.Command{
		Use:   "preview TEXT",
		Short: "Print a rendered preview of TEXT",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := loadConfig()
			if err != nil {
				return err
			}
			st := richtext.SelectAll(richtext.CreateWithText(args[0]))
			for style, on := range map[richtext.Style]bool{
				richtext.Bold:      previewFlags.Bold,
				richtext.Italic:    previewFlags.Italic,
				richtext.Underline: previewFlags.Underline,
			} {
				if on {
					st = richtext.ToggleInlineStyle(st, style)
				}
			}
			out := cmd.OutOrStdout()
			switch previewFlags.Format {
			case "markdown":
				fmt.Fprintln(out, preview.Markdown(st))
			case "html":
				fmt.Fprint(out, preview.HTML(st))
			case "rendered":
				style := c.PreviewStyle
				if c.NoColor {
					style = "notty"
				}
				r, err := preview.NewRenderer(style, 80)
				if err != nil {
					return err
				}
				s, err := r.Render(st)
				if err != nil {
					return err
				}
				fmt.Fprint(out, s)
			default:
				return fmt.Errorf("unknown format %q (want rendered, markdown or html)", previewFlags.Format)
			}
			return nil
		},
	}

	doctorCmd = &cobra.Command{
		Use:   "doctor",
		Short: "Check config, clipboard and terminal support",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			path := config.ExpandPath(flags.ConfigFile)
			if _, err := os.Stat(path); err != nil {
				fmt.Fprintf(out, "config:    %s (missing, using defaults)\n", path)
			} else if _, err := config.Load(path); err != nil {
				fmt.Fprintf(out, "config:    %s (invalid: %v)\n", path, err)
			} else {
				fmt.Fprintf(out, "config:    %s (ok)\n", path)
			}
			if clipboard.Unsupported {
				fmt.Fprintln(out, "clipboard: unsupported (install xclip, xsel or wl-clipboard)")
			} else {
				fmt.Fprintln(out, "clipboard: ok")
			}
			if util.NoColor(flags.NoColor) {
				fmt.Fprintln(out, "color:     disabled")
			} else {
				fmt.Fprintln(out, "color:     enabled")
			}
			return nil
		},
	}

	versionCmd = &cobra.Command{
		Use:   "version",
		Short: "Print version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), "rtedit", Version)
		},
	}
)

func init() {
	root.PersistentFlags().StringVarP(&flags.ConfigFile, "config", "c", config.DefaultPath, "configuration file")
	root.PersistentFlags().BoolVar(&flags.NoColor, "no-color", false, "disable colors")
	root.PersistentFlags().StringVar(&flags.LogFile, "log-file", "", "append debug logs to file")

	previewCmd.Flags().BoolVar(&previewFlags.Bold, "bold", false, "bold the whole text")
	previewCmd.Flags().BoolVar(&previewFlags.Italic, "italic", false, "italicize the whole text")
	previewCmd.Flags().BoolVar(&previewFlags.Underline, "underline", false, "underline the whole text")
	previewCmd.Flags().StringVar(&previewFlags.Format, "format", "rendered", "rendered | markdown | html")

	root.AddCommand(initCmd, previewCmd, doctorCmd, versionCmd)
}

// loadConfig reads the config file and applies flag overrides.
func loadConfig() (*config.Config, error) {
	c, err := config.Load(flags.ConfigFile)
	if err != nil {
		return nil, err
	}
	if flags.NoColor {
		c.NoColor = true
	}
	if flags.LogFile != "" {
		c.LogFile = flags.LogFile
	}
	return c, nil
}

// openLog returns a logger writing to path, or discarding everything when
// path is empty. The terminal belongs to the TUI, so logs never go to stderr.
func openLog(path string) (*log.Logger, func(), error) {
	if path == "" {
		return log.New(io.Discard, "", 0), func() {}, nil
	}
	f, err := tea.LogToFile(config.ExpandPath(path), "rtedit")
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}
	return log.Default(), func() { _ = f.Close() }, nil
}

func main() {
	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
