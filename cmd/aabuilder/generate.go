package main

import (
	"context"
	"errors"
	"fmt"
	"io"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/aabuilder/internal/color"
	"github.com/alexisbeaulieu97/aabuilder/internal/config"
	"github.com/alexisbeaulieu97/aabuilder/internal/generator"
	"github.com/alexisbeaulieu97/aabuilder/internal/model"
	"github.com/alexisbeaulieu97/aabuilder/internal/tui"
)

type generateOptions struct {
	ConfigPath  string
	Name        string
	Package     string
	URL         string
	SourceDir   string
	Color       string
	Permissions []string
	Icon        string
	Output      string
	TemplateDir string
	Git         bool
	VersionName string
	VersionCode int
	Open        bool

	Verbose        bool
	NonInteractive bool
}

// generateDeps holds the collaborators runGenerate needs beyond its options.
type generateDeps struct {
	Out       io.Writer
	LogWriter io.Writer
	Generator generator.Options
}

var generateCmdRunner = runGenerate

func newGenerateCmd(root *rootFlags) *cobra.Command {
	opts := generateOptions{}

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate an Android WebView project",
		Long: "Generate an Android WebView project from a configuration file, flags, or both.\n" +
			"Flags override values read from the file.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.Verbose = root.verbose
			opts.NonInteractive = !isTerminal(cmd.OutOrStdout())

			cfg, err := buildConfig(opts, cmd.Flags().Changed)
			if err != nil {
				return err
			}

			deps := generateDeps{Out: cmd.OutOrStdout(), LogWriter: cmd.ErrOrStderr()}
			return generateCmdRunner(cmd.Context(), opts, cfg, deps)
		},
	}

	bindProjectFlags(cmd, &opts)
	cmd.Flags().BoolVar(&opts.Open, "open", false, "Open the generated project in the file manager")

	return cmd
}

func runGenerate(ctx context.Context, opts generateOptions, cfg config.ProjectConfig, deps generateDeps) error {
	if ctx == nil {
		ctx = context.Background()
	}
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	log, err := newCommandLogger(opts.Verbose, deps.LogWriter)
	if err != nil {
		return err
	}

	modelState := tui.NewModel(cfg.AppName, model.Steps, opts.NonInteractive)
	if palette, err := color.DerivePalette(config.ApplyDefaults(cfg).ColorScheme); err == nil {
		modelState = modelState.WithTheme(palette.Primary, palette.Accent)
	}
	interactive := !opts.NonInteractive

	var program *tea.Program
	var programErr error
	done := make(chan struct{})

	if interactive {
		program = tea.NewProgram(modelState, tea.WithOutput(deps.Out), tea.WithContext(ctx))
		go func() {
			_, programErr = program.Run()
			close(done)
		}()
	}

	genOpts := deps.Generator
	genOpts.Logger = log
	genOpts.Progress = func(res model.StepResult) {
		var msg tea.Msg = tui.StepCompleteMsg{Result: res}
		if res.Status == model.StatusRunning {
			msg = tui.StepStartMsg{ID: res.StepID, Time: res.Timestamp}
		}
		dispatchTuiMessage(interactive, program, &modelState, msg)
	}
	gen := generator.New(genOpts)

	outputPath, genErr := gen.Generate(ctx, cfg)
	dispatchTuiMessage(interactive, program, &modelState, tui.OutcomeMsg{OutputPath: outputPath, Err: genErr})

	if interactive {
		program.Send(tea.QuitMsg{})
		<-done
		if programErr != nil && !errors.Is(programErr, tea.ErrProgramKilled) {
			return programErr
		}
	} else {
		fmt.Fprintln(deps.Out, modelState.View())
	}

	if genErr != nil {
		return genErr
	}

	if opts.Open {
		if res := gen.OpenOutputFolder(outputPath); !res.Success {
			return fmt.Errorf("open output folder: %s", res.Error)
		}
	}

	return nil
}

func dispatchTuiMessage(interactive bool, program *tea.Program, state *tui.Model, msg tea.Msg) {
	if interactive {
		if program != nil {
			program.Send(msg)
		}
		return
	}

	updated, _ := state.Update(msg)
	if m, ok := updated.(tui.Model); ok {
		*state = m
	}
}
