package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/iw2rmb/masked"
)

// rootOptions holds the demo's flags.
type rootOptions struct {
	Mask            string
	Value           string
	PlaceholderChar string
	Preset          string
	Config          string
	Log             string
}

func newRootCommand() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:           "masked-demo",
		Short:         "Interactive masked input field",
		Long:          "Type into a masked field. Ctrl+T cycles presets and keeps what was typed.",
		Version:       masked.VersionTag(),
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: false,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(opts, cmd.InOrStdin(), cmd.OutOrStdout())
		},
	}

	f := cmd.Flags()
	f.StringVar(&opts.Mask, "mask", "", "custom mask pattern (overrides --preset)")
	f.StringVar(&opts.Value, "value", "", "initial value")
	f.StringVar(&opts.PlaceholderChar, "placeholder-char", "", "placeholder character for unfilled slots")
	f.StringVar(&opts.Preset, "preset", "phone", "preset to start with")
	f.StringVar(&opts.Config, "config", "", "TOML file with extra presets")
	f.StringVar(&opts.Log, "log", "", "write debug records as JSON to this file")

	return cmd
}

func run(opts *rootOptions, in io.Reader, out io.Writer) error {
	logger, closeLog, err := openLogger(opts.Log)
	if err != nil {
		return err
	}
	defer closeLog()

	presets, err := loadPresets(opts.Config)
	if err != nil {
		return err
	}
	presets, start, err := selectPreset(presets, opts)
	if err != nil {
		return err
	}

	a, err := newApp(presets, start, logger)
	if err != nil {
		return err
	}
	p := tea.NewProgram(a, tea.WithInput(in), tea.WithOutput(out))
	final, err := p.Run()
	if err != nil {
		return fmt.Errorf("run program: %w", err)
	}
	if fa, ok := final.(app); ok && fa.submitted {
		_, _ = fmt.Fprintln(out, fa.input.Value())
	}
	return nil
}

// selectPreset applies --mask, --value and --placeholder-char on top of the
// chosen preset and returns the list the app cycles through.
func selectPreset(presets []Preset, opts *rootOptions) ([]Preset, int, error) {
	if opts.Mask != "" {
		custom := Preset{
			Name:            "custom",
			Mask:            opts.Mask,
			Value:           opts.Value,
			PlaceholderChar: opts.PlaceholderChar,
		}
		if err := custom.validate(); err != nil {
			return nil, 0, err
		}
		return append([]Preset{custom}, presets...), 0, nil
	}

	idx, err := findPreset(presets, opts.Preset)
	if err != nil {
		return nil, 0, err
	}
	out := append([]Preset(nil), presets...)
	if opts.Value != "" {
		out[idx].Value = opts.Value
	}
	if opts.PlaceholderChar != "" {
		out[idx].PlaceholderChar = opts.PlaceholderChar
	}
	if err := out[idx].validate(); err != nil {
		return nil, 0, err
	}
	return out, idx, nil
}

func openLogger(path string) (*slog.Logger, func(), error) {
	if path == "" {
		return slog.New(slog.DiscardHandler), func() {}, nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}
	h := slog.NewJSONHandler(f, &slog.HandlerOptions{Level: slog.LevelDebug})
	return slog.New(h), func() { _ = f.Close() }, nil
}
