package models

// UserConfig identifies the person shown at the bottom of the board sidebar.
type UserConfig struct {
	Name string `yaml:"name" mapstructure:"name"`
	Role string `yaml:"role" mapstructure:"role"`
}

// SeedTask is a task the list starts with. Seeds receive ids through the
// normal assignment rule, in the order they are listed.
type SeedTask struct {
	Title       string `yaml:"title" mapstructure:"title"`
	Description string `yaml:"description" mapstructure:"description"`
	Done        bool   `yaml:"done" mapstructure:"done"`
}

// SeedConfig controls the tasks present when the program starts.
// A nil Tasks slice means the built-in examples for the active locale.
type SeedConfig struct {
	Enabled bool       `yaml:"enabled" mapstructure:"enabled"`
	Tasks   []SeedTask `yaml:"tasks,omitempty" mapstructure:"tasks"`
}

// EventsConfig controls the JSONL event log.
type EventsConfig struct {
	Enabled bool   `yaml:"enabled" mapstructure:"enabled"`
	Path    string `yaml:"path" mapstructure:"path"`
}

// UIConfig holds board layout settings.
type UIConfig struct {
	SidebarWidth int `yaml:"sidebar_width" mapstructure:"sidebar_width"`
}

// GlobalConfig holds settings read from .taskpad.yaml via Viper.
type GlobalConfig struct {
	Locale string       `yaml:"locale" mapstructure:"locale"`
	User   UserConfig   `yaml:"user" mapstructure:"user"`
	Footer string       `yaml:"footer,omitempty" mapstructure:"footer"`
	Seed   SeedConfig   `yaml:"seed" mapstructure:"seed"`
	Events EventsConfig `yaml:"events" mapstructure:"events"`
	UI     UIConfig     `yaml:"ui" mapstructure:"ui"`
}
