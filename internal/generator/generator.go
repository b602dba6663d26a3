// Package generator is the entry point callers use to turn a project
// configuration into a generated Android project.
package generator

import (
	"context"
	"time"

	"github.com/alexisbeaulieu97/aabuilder/internal/config"
	"github.com/alexisbeaulieu97/aabuilder/internal/logger"
	"github.com/alexisbeaulieu97/aabuilder/internal/materialize"
	"github.com/alexisbeaulieu97/aabuilder/internal/model"
	"github.com/alexisbeaulieu97/aabuilder/internal/opener"
)

// FolderOpener shows a directory to the user.
type FolderOpener interface {
	Open(dir string) error
}

// Options configures a Generator.
type Options struct {
	// Materialize configures template handling. Its Logger and Progress
	// fields are overridden by the ones below.
	Materialize materialize.Options
	Opener      FolderOpener
	Logger      *logger.Logger
	Progress    model.ProgressFunc
}

// Result is the outcome shape returned to interactive callers.
type Result struct {
	Success    bool
	OutputPath string
	Error      string
}

// Generator validates configurations and materializes projects.
type Generator struct {
	materializer *materialize.Materializer
	opener       FolderOpener
	log          *logger.Logger
	progress     model.ProgressFunc
}

// New builds a Generator.
func New(opts Options) *Generator {
	log := opts.Logger
	if log == nil {
		log = logger.Nop()
	}

	mopts := opts.Materialize
	mopts.Logger = log
	mopts.Progress = opts.Progress

	folderOpener := opts.Opener
	if folderOpener == nil {
		folderOpener = opener.New()
	}

	return &Generator{
		materializer: materialize.New(mopts),
		opener:       folderOpener,
		log:          log,
		progress:     opts.Progress,
	}
}

// Generate fills defaults, validates cfg and materializes the project. It
// returns the absolute project path. Errors from validation and generation
// are returned unchanged, so callers can inspect their kind.
func (g *Generator) Generate(ctx context.Context, cfg config.ProjectConfig) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	cfg = config.ApplyDefaults(cfg)
	if err := g.validate(cfg); err != nil {
		return "", err
	}

	return g.materializer.Materialize(ctx, cfg)
}

func (g *Generator) validate(cfg config.ProjectConfig) error {
	start := time.Now()
	g.report(model.StepResult{StepID: model.StepValidate, Status: model.StatusRunning, Timestamp: start})

	err := config.Validate(cfg)
	result := model.StepResult{
		StepID:    model.StepValidate,
		Status:    model.StatusSuccess,
		Message:   "configuration is valid",
		Duration:  time.Since(start),
		Timestamp: time.Now(),
	}
	if err != nil {
		result.Status = model.StatusFailed
		result.Message = err.Error()
		result.Error = err
		g.log.WithStep(model.StepValidate).Error(err, "configuration rejected")
	}
	g.report(result)

	return err
}

func (g *Generator) report(result model.StepResult) {
	if g.progress != nil {
		g.progress(result)
	}
}

// Preview validates cfg and returns the customised template files without
// writing anything.
func (g *Generator) Preview(cfg config.ProjectConfig) ([]materialize.Change, error) {
	cfg = config.ApplyDefaults(cfg)
	if err := config.Validate(cfg); err != nil {
		return nil, err
	}
	return g.materializer.Preview(cfg)
}

// ValidatePackageName reports whether name is a well-formed package identifier.
func (g *Generator) ValidatePackageName(name string) bool {
	return config.ValidatePackageName(name)
}

// GenerateProject runs Generate and folds the outcome into a Result.
func (g *Generator) GenerateProject(ctx context.Context, cfg config.ProjectConfig) Result {
	path, err := g.Generate(ctx, cfg)
	if err != nil {
		return Result{Error: err.Error()}
	}
	return Result{Success: true, OutputPath: path}
}

// OpenOutputFolder shows path in the platform file manager.
func (g *Generator) OpenOutputFolder(path string) Result {
	if err := g.opener.Open(path); err != nil {
		g.log.Error(err, "open output folder")
		return Result{Error: err.Error()}
	}
	return Result{Success: true}
}
