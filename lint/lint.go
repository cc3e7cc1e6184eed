package lint

import (
	"fmt"

	"github.com/erraggy/gwlint/config"
	"github.com/erraggy/gwlint/gwerrors"
	"github.com/erraggy/gwlint/internal/issues"
	"github.com/erraggy/gwlint/internal/severity"
	"github.com/erraggy/gwlint/valid"
)

// Severity indicates the severity level of a lint issue
type Severity = severity.Severity

const (
	// SeverityError indicates a naming-convention violation (report mode)
	SeverityError = severity.SeverityError
	// SeverityWarning indicates an identifier renamed by autofix
	SeverityWarning = severity.SeverityWarning
	// SeverityInfo indicates informational messages
	SeverityInfo = severity.SeverityInfo
	// SeverityCritical indicates a rename collision
	SeverityCritical = severity.SeverityCritical
)

// Issue represents a single lint finding
type Issue = issues.Issue

// LintResult contains the outcome of linting a configuration
type LintResult struct {
	// Config is the linted configuration, with any autofix renames applied.
	// It is nil when Valid is false.
	Config *config.Config
	// Valid is true if the configuration may be handed to compilation
	Valid bool
	// Err is the fatal diagnostic when Valid is false. Its message is meant to
	// be shown to operators verbatim; errors.As reaches *gwerrors.LintError or
	// *gwerrors.RenameCollisionError.
	Err error
	// Skipped is true when the configuration has no lint settings
	Skipped bool
	// AutoFix reports whether the run renamed instead of reporting
	AutoFix bool
	// Renames lists the renames autofix applied, in the order applied
	Renames []Rename
	// Issues contains every finding in discovery order
	Issues []Issue
	// RenameCount is the number of renames applied
	RenameCount int
	// ErrorCount is the number of error and critical issues
	ErrorCount int
	// SourcePath is the configuration's file path, when it was read from one
	SourcePath string
	// SourceFormat is the format of the source file (JSON or YAML)
	SourceFormat config.SourceFormat
}

// HasRenames returns true if autofix renamed anything
func (r *LintResult) HasRenames() bool {
	return r.RenameCount > 0
}

// Linter checks and fixes identifier naming conventions.
// A Linter holds no state between calls and may be reused.
type Linter struct {
	// Logger receives the audit trail of renames. Defaults to NopLogger.
	Logger Logger
	// Settings, when non-nil, replaces the configuration's server.lint block.
	Settings *config.Lint
}

// New creates a new Linter instance with default settings
func New() *Linter {
	return &Linter{Logger: NopLogger{}}
}

// Lint runs the linter configured by cfg.Server.Lint with no logging and
// returns the linted configuration, or the fatal diagnostic as an error.
// A configuration without lint settings is returned unchanged.
func Lint(cfg *config.Config) (*config.Config, error) {
	result, err := New().Lint(cfg)
	if err != nil {
		return nil, err
	}
	if !result.Valid {
		return nil, result.Err
	}
	return result.Config, nil
}

// Lint lints cfg. cfg itself is never modified; renames are applied to a copy.
// The returned error reports unusable input; lint failures are reported
// through LintResult.Valid and LintResult.Err.
func (l *Linter) Lint(cfg *config.Config) (*LintResult, error) {
	if cfg == nil {
		return nil, &gwerrors.ConfigError{Option: "config", Message: "configuration cannot be nil"}
	}

	settings := l.Settings
	if settings == nil {
		settings = cfg.Server.Lint
	}
	if settings == nil {
		l.log().Debug("lint settings absent, configuration passed through")
		return &LintResult{Config: cfg, Valid: true, Skipped: true}, nil
	}
	if err := settings.Validate(); err != nil {
		return nil, err
	}

	r := &run{log: l.log(), settings: settings}
	v := valid.Succeed(cfg.DeepCopy())
	for _, rl := range rules {
		v = valid.AndThen(v, func(c *config.Config) valid.Valid[*config.Config] {
			return r.apply(rl, c)
		})
	}
	linted, err := v.ToResult()

	result := &LintResult{
		Config:      linted,
		Valid:       err == nil,
		Err:         err,
		AutoFix:     settings.AutoFix,
		Renames:     r.renames,
		Issues:      r.issues,
		RenameCount: len(r.renames),
		ErrorCount: issues.CountBySeverity(r.issues, SeverityError) +
			issues.CountBySeverity(r.issues, SeverityCritical),
	}
	return result, nil
}

func (l *Linter) log() Logger {
	if l.Logger == nil {
		return NopLogger{}
	}
	return l.Logger
}

// run holds the findings of a single Lint call.
type run struct {
	log      Logger
	settings *config.Lint
	renames  []Rename
	issues   []Issue
}

// apply runs one rule. In report mode every violation of the category is
// collected into one LintError; in autofix mode the whole plan is checked for
// collisions before any entry is moved.
func (r *run) apply(rl rule, cfg *config.Config) valid.Valid[*config.Config] {
	style, ok := resolveStyle(r.settings, rl.category)
	if !ok {
		r.log.Debug("lint category skipped", "category", string(rl.category))
		return valid.Succeed(cfg)
	}

	planned := rl.scan(cfg, style)
	if len(planned) == 0 {
		return valid.Succeed(cfg)
	}

	if !r.settings.AutoFix {
		violations := make([]string, 0, len(planned))
		for _, p := range planned {
			msg := fmt.Sprintf("lint failed for %s %s, expected %s", rl.category.Label(), p.From, p.To)
			violations = append(violations, msg)
			r.record(p, msg, SeverityError)
		}
		return valid.Fail[*config.Config](&gwerrors.LintError{
			Category:   string(rl.category),
			Violations: violations,
		})
	}

	if err := checkCollisions(rl, cfg, planned); err != nil {
		r.issues = append(r.issues, Issue{
			Path:       issues.FormatPath(renamePath(err)...),
			Message:    err.Error(),
			Severity:   SeverityCritical,
			Category:   rl.category.Label(),
			Value:      err.From,
			Suggestion: err.To,
		})
		r.log.Error("autofix rename refused", "category", string(rl.category),
			"from", err.From, "to", err.To, "conflict", err.Conflict)
		return valid.Fail[*config.Config](err)
	}

	for _, p := range planned {
		rl.move(cfg, p)
		msg := fmt.Sprintf("%s %s is renamed to %s", rl.category.renameLabel(), p.From, p.To)
		r.log.Warn(msg, "category", string(p.Category), "path", p.Path(), "from", p.From, "to", p.To)
		r.record(p, msg, SeverityWarning)
		r.renames = append(r.renames, p)
	}
	return valid.Succeed(cfg)
}

func (r *run) record(p Rename, msg string, sev Severity) {
	r.issues = append(r.issues, Issue{
		Path:       p.Path(),
		Message:    msg,
		Severity:   sev,
		Category:   p.Category.Label(),
		Value:      p.From,
		Suggestion: p.To,
	})
}

// checkCollisions refuses a plan in which a target name is already present in
// its namespace, or is the target of more than one rename.
func checkCollisions(rl rule, cfg *config.Config, planned []Rename) *gwerrors.RenameCollisionError {
	type key struct{ owner, name string }
	claimed := make(map[key]string, len(planned))

	for _, p := range planned {
		conflict := ""
		if rl.exists(cfg, p.Owner, p.To) {
			conflict = p.To
		} else if other, ok := claimed[key{p.Owner, p.To}]; ok {
			conflict = other
		}
		if conflict != "" {
			return &gwerrors.RenameCollisionError{
				Category: rl.category.Label(),
				Owner:    p.Owner,
				From:     p.From,
				To:       p.To,
				Conflict: conflict,
			}
		}
		claimed[key{p.Owner, p.To}] = p.From
	}
	return nil
}

func renamePath(err *gwerrors.RenameCollisionError) []string {
	switch err.Category {
	case CategoryField.Label():
		return []string{"types", err.Owner, "fields", err.From}
	case CategoryEnumValue.Label():
		return []string{"enums", err.Owner, "variants", err.From}
	case CategoryEnum.Label():
		return []string{"enums", err.From}
	default:
		return []string{"types", err.From}
	}
}
