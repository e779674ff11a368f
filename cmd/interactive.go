package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/AlecAivazis/survey/v2/terminal"
	"github.com/spf13/cobra"

	"github.com/mbourmaud/shade/internal/config"
	"github.com/mbourmaud/shade/internal/export"
	"github.com/mbourmaud/shade/internal/logger"
	"github.com/mbourmaud/shade/internal/palette"
	"github.com/mbourmaud/shade/internal/ui"
)

// Interactive actions, in menu order
const (
	actionHex       = "Edit hex"
	actionHSL       = "Edit HSL"
	actionMode      = "Change mode"
	actionRename    = "Rename"
	actionLock      = "Lock/unlock name"
	actionRandomize = "Randomize"
	actionExport    = "Export"
	actionSave      = "Save to library"
	actionQuit      = "Quit"
)

var actions = []string{
	actionHex, actionHSL, actionMode, actionRename, actionLock,
	actionRandomize, actionExport, actionSave, actionQuit,
}

func newInteractiveCmd() *cobra.Command {
	opts := &seedOptions{}

	cmd := &cobra.Command{
		Use:     "interactive",
		Aliases: []string{"i"},
		Short:   "Edit a palette step by step",
		Long: `Edit a palette step by step.

The palette is redrawn after every change. An invalid hex edit keeps the
previous color; the typed value is offered again on the next edit.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := configFrom(cmd)
			s, err := opts.state(cfg)
			if err != nil {
				return err
			}

			sess := &session{
				state:  s,
				cfg:    cfg,
				stdio:  ui.DefaultStdio(),
				out:    cmd.OutOrStdout(),
				picker: picker,
			}
			return sess.run(cmd.Context())
		},
	}

	opts.bind(cmd.Flags())
	return cmd
}

// session is one interactive editing loop over a palette.State
type session struct {
	state  *palette.State
	cfg    *config.Config
	stdio  terminal.Stdio
	out    io.Writer
	picker palette.Picker
}

func (s *session) render() {
	fmt.Fprint(s.out, ui.PaletteView(s.state.LibraryName(), s.state.Mode(), s.state.Palette()))
	fmt.Fprintln(s.out)
}

func (s *session) run(ctx context.Context) error {
	s.render()

	for {
		action, err := ui.PromptSelectWithStdio("What next?", actions, "", s.stdio)
		if err != nil {
			if errors.Is(err, terminal.InterruptErr) {
				return nil
			}
			return err
		}

		if action == actionQuit {
			return nil
		}
		if err := s.apply(ctx, action); err != nil {
			if errors.Is(err, terminal.InterruptErr) {
				return nil
			}
			return err
		}
	}
}

// apply runs one menu action. Failures that leave the session usable are
// reported inline and do not end the loop.
func (s *session) apply(ctx context.Context, action string) error {
	switch action {
	case actionHex:
		input, err := ui.PromptDefaultWithStdio("Hex:", s.state.Input(), s.stdio)
		if err != nil {
			return err
		}
		if !s.state.SetHex(input) {
			fmt.Fprintln(s.out, ui.Warning(fmt.Sprintf("%q is not a 6-digit hex color, keeping %s", input, s.state.Hex())))
			return nil
		}

	case actionHSL:
		hsl, err := ui.PromptHSLWithStdio("HSL (h,s,l):", s.state.HSL(), s.stdio)
		if err != nil {
			return err
		}
		s.state.SetHSL(hsl)

	case actionMode:
		names := make([]string, 0, len(palette.Modes()))
		for _, m := range palette.Modes() {
			names = append(names, string(m))
		}
		choice, err := ui.PromptSelectWithStdio("Mode:", names, string(s.state.Mode()), s.stdio)
		if err != nil {
			return err
		}
		s.state.SetMode(palette.Mode(choice))

	case actionRename:
		name, err := ui.PromptDefaultWithStdio("Name:", s.state.Name(), s.stdio)
		if err != nil {
			return err
		}
		s.state.SetName(name)

	case actionLock:
		locked := !s.state.NameLocked()
		s.state.LockName(locked)
		if locked {
			fmt.Fprintln(s.out, ui.Success("Name locked"))
		} else {
			fmt.Fprintln(s.out, ui.Success("Name unlocked"))
		}
		return nil

	case actionRandomize:
		seed := s.state.Randomize(s.picker)
		logger.WithField("seed", seed.Hex).Debug("randomized to %s", seed.Name)

	case actionExport:
		return s.export()

	case actionSave:
		p, err := savePalette(ctx, s.cfg, s.state)
		if err != nil {
			logger.Warn("save failed: %v", err)
			fmt.Fprintln(s.out, ui.Warning("Could not save: "+err.Error()))
			return nil
		}
		fmt.Fprintln(s.out, ui.Success(fmt.Sprintf("Saved %s as %s", p.Name, p.ID)))
		return nil
	}

	s.render()
	return nil
}

func (s *session) export() error {
	names := make([]string, 0, len(export.Formats()))
	for _, f := range export.Formats() {
		names = append(names, string(f))
	}
	// an unparsable config value leaves the cursor on the first format
	current, _ := export.ParseFormat(s.cfg.Export.Format)
	choice, err := ui.PromptSelectWithStdio("Format:", names, string(current), s.stdio)
	if err != nil {
		return err
	}
	f, err := export.ParseFormat(choice)
	if err != nil {
		return err
	}

	content, err := export.Serialize(s.state.Palette(), f, s.state.Name())
	if err != nil {
		return err
	}

	path, err := ui.PromptDefaultWithStdio("File (empty to print):", "", s.stdio)
	if err != nil {
		return err
	}
	if path == "" {
		fmt.Fprintln(s.out, content)
		return nil
	}

	if err := export.WriteFile(path, content); err != nil {
		fmt.Fprintln(s.out, ui.Warning(err.Error()))
		return nil
	}
	fmt.Fprintln(s.out, ui.Success("Wrote "+path))
	return nil
}
