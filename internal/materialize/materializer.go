// Package materialize turns a validated project configuration into an
// Android project tree on disk.
package materialize

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/alexisbeaulieu97/aabuilder/internal/config"
	"github.com/alexisbeaulieu97/aabuilder/internal/logger"
	"github.com/alexisbeaulieu97/aabuilder/internal/model"
	"github.com/alexisbeaulieu97/aabuilder/internal/pkgpath"
	"github.com/alexisbeaulieu97/aabuilder/internal/substitute"
	"github.com/alexisbeaulieu97/aabuilder/internal/templates"
	aaberrors "github.com/alexisbeaulieu97/aabuilder/pkg/errors"
)

// Layout of the generated project, relative to its root.
const (
	javaSourceDir  = "app/src/main/java"
	resourceDir    = "app/src/main/res"
	assetsDir      = "app/src/main/assets"
	entryPoint     = "index.html"
	mainActivity   = "MainActivity.java"
	templateErrMsg = "base template not found; ensure templates are installed"
)

// Options configures a Materializer. Zero values select the embedded
// template, random ids, a no-op logger and no progress reporting.
type Options struct {
	Template     fs.FS
	TemplateRoot string
	NewID        func() string
	Now          func() time.Time
	Logger       *logger.Logger
	Progress     model.ProgressFunc
}

// Materializer copies the base template and customises it for one project.
type Materializer struct {
	template     fs.FS
	templateRoot string
	newID        func() string
	now          func() time.Time
	log          *logger.Logger
	progress     model.ProgressFunc
}

// New builds a Materializer from opts.
func New(opts Options) *Materializer {
	m := &Materializer{
		template:     opts.Template,
		templateRoot: opts.TemplateRoot,
		newID:        opts.NewID,
		now:          opts.Now,
		log:          opts.Logger,
		progress:     opts.Progress,
	}

	if m.template == nil {
		m.template = templates.FS
		if m.templateRoot == "" {
			m.templateRoot = templates.AndroidBase
		}
	}
	if m.templateRoot == "" {
		m.templateRoot = "."
	}
	if m.newID == nil {
		m.newID = NewRandomID
	}
	if m.now == nil {
		m.now = time.Now
	}
	if m.log == nil {
		m.log = logger.Nop()
	}

	return m
}

// run is the state threaded through the steps of one Materialize call.
type run struct {
	cfg         config.ProjectConfig
	projectPath string
}

// stepFunc performs one step and returns its terminal status and message.
type stepFunc func(ctx context.Context, r *run) (status, message string, err error)

// Materialize writes the project described by cfg and returns the absolute
// path of the new project directory. Every step is fatal: the first error
// aborts generation and is returned. Files already written are left in place.
func (m *Materializer) Materialize(ctx context.Context, cfg config.ProjectConfig) (string, error) {
	r := &run{cfg: config.ApplyDefaults(cfg)}

	steps := []struct {
		id string
		fn stepFunc
	}{
		{model.StepPrepare, m.prepare},
		{model.StepTemplate, m.copyTemplate},
		{model.StepRelocate, m.relocate},
		{model.StepSubstitute, m.substitute},
		{model.StepAssets, m.copyAssets},
		{model.StepIcon, m.copyIcon},
		{model.StepGit, m.initGit},
	}

	for _, step := range steps {
		if err := ctx.Err(); err != nil {
			return "", err
		}
		if err := m.runStep(ctx, step.id, r, step.fn); err != nil {
			return "", err
		}
	}

	m.log.WithFields(map[string]any{"path": r.projectPath}).Info("project generated")
	return r.projectPath, nil
}

func (m *Materializer) runStep(ctx context.Context, id string, r *run, fn stepFunc) error {
	log := m.log.WithStep(id)
	start := m.now()
	m.report(model.StepResult{StepID: id, Status: model.StatusRunning, Timestamp: start})
	log.Debug("step started")

	status, message, err := fn(ctx, r)
	finished := m.now()

	if err != nil {
		log.Error(err, "step failed")
		m.report(model.StepResult{
			StepID:    id,
			Status:    model.StatusFailed,
			Message:   err.Error(),
			Error:     err,
			Duration:  finished.Sub(start),
			Timestamp: finished,
		})
		return err
	}

	if status == model.StatusWarning {
		log.Warn(message)
	} else {
		log.Debug(message)
	}
	m.report(model.StepResult{
		StepID:    id,
		Status:    status,
		Message:   message,
		Duration:  finished.Sub(start),
		Timestamp: finished,
	})
	return nil
}

func (m *Materializer) report(result model.StepResult) {
	if m.progress != nil {
		m.progress(result)
	}
}

func (m *Materializer) prepare(_ context.Context, r *run) (string, string, error) {
	dir := filepath.Join(r.cfg.OutputPath, DirName(r.cfg.AppName, m.newID()))

	abs, err := filepath.Abs(dir)
	if err != nil {
		return "", "", aaberrors.NewIOError(dir, "resolve project directory", err)
	}
	if err := os.MkdirAll(abs, 0o755); err != nil {
		return "", "", aaberrors.NewIOError(abs, "create project directory", err)
	}

	r.projectPath = abs
	return model.StatusSuccess, fmt.Sprintf("created %s", abs), nil
}

func (m *Materializer) templateSource(cfg config.ProjectConfig) (fs.FS, string, string) {
	if cfg.TemplateDir != "" {
		return os.DirFS(cfg.TemplateDir), ".", cfg.TemplateDir
	}
	return m.template, m.templateRoot, m.templateRoot
}

func (m *Materializer) copyTemplate(_ context.Context, r *run) (string, string, error) {
	fsys, root, label := m.templateSource(r.cfg)

	info, err := fs.Stat(fsys, root)
	if err != nil || !info.IsDir() {
		if err == nil {
			err = fmt.Errorf("%s is not a directory", label)
		}
		return "", "", aaberrors.NewGenerationError(aaberrors.KindTemplateMissing, label, templateErrMsg, err)
	}

	copied, err := copyTree(fsys, root, r.projectPath)
	if err != nil {
		return "", "", aaberrors.NewIOError(r.projectPath, "copy base template", err)
	}

	return model.StatusSuccess, fmt.Sprintf("copied %d template files", copied), nil
}

func (m *Materializer) relocate(_ context.Context, r *run) (string, string, error) {
	javaRoot := filepath.Join(r.projectPath, filepath.FromSlash(javaSourceDir))

	target, moved, err := pkgpath.Relocate(javaRoot, r.cfg.PackageName, mainActivity)
	if err != nil {
		return "", "", aaberrors.NewIOError(javaRoot, "relocate main activity", err)
	}
	if !moved {
		return model.StatusSkipped, fmt.Sprintf("%s not present in template", mainActivity), nil
	}

	rel, _ := filepath.Rel(r.projectPath, target)
	return model.StatusSuccess, fmt.Sprintf("moved %s to %s", mainActivity, filepath.ToSlash(rel)), nil
}

func (m *Materializer) substitute(_ context.Context, r *run) (string, string, error) {
	tokens, _, err := BuildTokens(r.cfg)
	if err != nil {
		return "", "", aaberrors.NewValidationError(aaberrors.KindInvalidField, "colorScheme", err.Error(), err)
	}

	outcomes, err := substitute.ApplyTree(r.projectPath, SubstitutionTargets(r.cfg.PackageName), tokens)
	if err != nil {
		return "", "", aaberrors.NewIOError(r.projectPath, "substitute template tokens", err)
	}

	changed := 0
	for _, outcome := range outcomes {
		if !outcome.Exists {
			m.log.WithStep(model.StepSubstitute).Debug("skipping absent file " + filepath.ToSlash(outcome.Path))
			continue
		}
		if outcome.Changed {
			changed++
		}
	}

	return model.StatusSuccess, fmt.Sprintf("customised %d files", changed), nil
}

func (m *Materializer) copyAssets(_ context.Context, r *run) (string, string, error) {
	if r.cfg.EffectiveSourceType() != config.SourceLocal || r.cfg.SourcePath == "" {
		return model.StatusSkipped, "remote source, no assets bundled", nil
	}

	source := r.cfg.SourcePath
	info, err := os.Stat(source)
	if err != nil || !info.IsDir() {
		if err == nil {
			err = fmt.Errorf("%s is not a directory", source)
		}
		return "", "", aaberrors.NewGenerationError(aaberrors.KindSourceNotFound, source, "source path does not exist", err)
	}

	index := filepath.Join(source, entryPoint)
	if _, err := os.Stat(index); err != nil {
		return "", "", aaberrors.NewGenerationError(aaberrors.KindEntryPointMissing, index, "index.html not found in source directory", err)
	}

	dst := filepath.Join(r.projectPath, filepath.FromSlash(assetsDir))
	copied, err := copyTree(os.DirFS(source), ".", dst)
	if err != nil {
		return "", "", aaberrors.NewIOError(dst, "copy web assets", err)
	}

	return model.StatusSuccess, fmt.Sprintf("bundled %d asset files", copied), nil
}

func (m *Materializer) copyIcon(_ context.Context, r *run) (string, string, error) {
	if r.cfg.IconPath == "" {
		return model.StatusSkipped, "no icon configured", nil
	}

	resDir := filepath.Join(r.projectPath, filepath.FromSlash(resourceDir))
	report, err := installIcon(r.cfg.IconPath, resDir)
	if err != nil {
		if errors.Is(err, errIconMissing) {
			return model.StatusWarning, "icon file not found, skipping icon copy", nil
		}
		return "", "", aaberrors.NewIOError(r.cfg.IconPath, "install launcher icon", err)
	}

	if len(report.Warnings) > 0 {
		for _, warning := range report.Warnings {
			m.log.WithStep(model.StepIcon).Warn(warning, "icon", r.cfg.IconPath)
		}
		return model.StatusWarning, fmt.Sprintf("installed icon in %d densities with warnings: %s", report.Copied, report.Warnings[0]), nil
	}

	return model.StatusSuccess, fmt.Sprintf("installed %dx%d %s icon in %d densities", report.Width, report.Height, report.Format, report.Copied), nil
}

func (m *Materializer) initGit(_ context.Context, r *run) (string, string, error) {
	if !r.cfg.InitGit {
		return model.StatusSkipped, "git initialisation disabled", nil
	}

	hash, err := initRepository(r.projectPath, r.cfg.AppName, m.now())
	if err != nil {
		return "", "", aaberrors.NewIOError(r.projectPath, "initialise git repository", err)
	}

	return model.StatusSuccess, fmt.Sprintf("initial commit %s", hash[:7]), nil
}
