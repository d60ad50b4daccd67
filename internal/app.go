// Package internal provides the App struct that wires the components of
// taskpad together and initializes the CLI layer.
package internal

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"github.com/valter-silva-au/taskpad/internal/cli"
	"github.com/valter-silva-au/taskpad/internal/core"
	"github.com/valter-silva-au/taskpad/internal/i18n"
	"github.com/valter-silva-au/taskpad/internal/observability"
	"github.com/valter-silva-au/taskpad/pkg/models"
)

// HomeEnv overrides the base path lookup.
const HomeEnv = "TASKPAD_HOME"

// App holds all service dependencies for taskpad.
type App struct {
	BasePath  string
	SessionID string

	// Configuration
	ConfigMgr core.ConfigurationManager
	Config    *models.GlobalConfig
	Catalog   *i18n.Catalog

	// Task list
	Store      core.TaskStore
	Controller *core.Controller

	// Observability
	EventLog    observability.EventLog
	MetricsCalc observability.MetricsCalculator
	Events      core.EventLogger
}

// NewApp creates and wires all components of taskpad. basePath is the
// directory holding .taskpad.yaml and the event log.
func NewApp(basePath string) (*App, error) {
	app := &App{
		BasePath:  basePath,
		SessionID: uuid.NewString(),
	}

	// --- Configuration ---
	app.ConfigMgr = core.NewConfigurationManager(basePath)
	globalCfg, err := app.ConfigMgr.LoadGlobalConfig()
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	if err := app.ConfigMgr.ValidateConfig(globalCfg); err != nil {
		return nil, err
	}
	app.Config = globalCfg
	app.Catalog = i18n.New(globalCfg.Locale)

	// --- Observability ---
	if globalCfg.Events.Enabled {
		eventLogPath := globalCfg.Events.Path
		if !filepath.IsAbs(eventLogPath) {
			eventLogPath = filepath.Join(basePath, eventLogPath)
		}
		app.EventLog, err = observability.NewJSONLEventLog(eventLogPath)
		if err != nil {
			// Non-fatal: disable observability if log can't be created.
			app.EventLog = nil
		}
	}
	if app.EventLog != nil {
		app.MetricsCalc = observability.NewMetricsCalculator(app.EventLog)
		app.Events = &eventLogAdapter{log: app.EventLog, session: app.SessionID}
	}

	// --- Task list ---
	app.Store = core.NewTaskStore()
	app.Controller = core.NewController(app.Store, app.Events, app.Catalog.T(core.DeletePromptKey))
	if err := app.Controller.Seed(core.SeedTasks(globalCfg, app.Catalog)); err != nil {
		return nil, fmt.Errorf("seeding tasks: %w", err)
	}

	// --- Wire CLI package-level variables ---
	cli.BasePath = basePath
	cli.Config = app.Config
	cli.Catalog = app.Catalog
	cli.Controller = app.Controller

	cli.EventLog = app.EventLog
	cli.MetricsCalc = app.MetricsCalc
	cli.Events = app.Events

	return app, nil
}

// Close releases resources held by the App, such as the event log file handle.
// It is safe to call Close on an App whose EventLog is nil.
func (a *App) Close() error {
	if a.EventLog != nil {
		return a.EventLog.Close()
	}
	return nil
}

// ResolveBasePath determines the directory taskpad reads its configuration
// from. It checks TASKPAD_HOME, then walks up from the current directory
// looking for .taskpad.yaml, then falls back to the current directory.
func ResolveBasePath() string {
	if home := os.Getenv(HomeEnv); home != "" {
		return home
	}
	dir, err := os.Getwd()
	if err != nil {
		return "."
	}
	// Walk up to find a directory containing .taskpad.yaml.
	for {
		if _, err := os.Stat(filepath.Join(dir, core.ConfigFileName+".yaml")); err == nil {
			return dir
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	// Fall back to cwd.
	cwd, _ := os.Getwd()
	return cwd
}

// --- Adapters ---

// eventLogAdapter adapts observability.EventLog to core.EventLogger and
// stamps every event with the process's session id.
type eventLogAdapter struct {
	log     observability.EventLog
	session string
}

func (a *eventLogAdapter) LogEvent(eventType string, data map[string]any) error {
	return a.log.Write(observability.Event{
		Time:    time.Now().UTC(),
		Level:   levelFor(eventType),
		Type:    eventType,
		Session: a.session,
		Message: eventType,
		Data:    data,
	})
}

func levelFor(eventType string) string {
	if eventType == "task.rejected" {
		return observability.LevelWarn
	}
	return observability.LevelInfo
}
