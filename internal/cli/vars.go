package cli

import (
	"github.com/valter-silva-au/taskpad/internal/core"
	"github.com/valter-silva-au/taskpad/internal/i18n"
	"github.com/valter-silva-au/taskpad/internal/observability"
	"github.com/valter-silva-au/taskpad/pkg/models"
)

// Task list services, set during app initialization in app.go.
var (
	BasePath   string
	Config     *models.GlobalConfig
	Catalog    *i18n.Catalog
	Controller *core.Controller
)

// Observability service instances, set during app initialization in app.go.
// Events is nil when the event log could not be opened.
var (
	EventLog    observability.EventLog
	MetricsCalc observability.MetricsCalculator
	Events      core.EventLogger
)

// logSessionStarted records which front-end this process is running.
func logSessionStarted(frontEnd string) {
	if Events == nil {
		return
	}
	_ = Events.LogEvent("session.started", map[string]any{"front_end": frontEnd})
}

func globalConfig() *models.GlobalConfig {
	if Config != nil {
		return Config
	}
	return core.DefaultGlobalConfig()
}

func catalog() *i18n.Catalog {
	if Catalog != nil {
		return Catalog
	}
	return i18n.New(globalConfig().Locale)
}
