package config

const (
	defaultAppearanceTimeoutSeconds = 120
	defaultStallTimeoutSeconds      = 120
	defaultWindowLines              = 150
	defaultSubmitBinary             = "sbatch"
	defaultHistoryPath              = "~/.local/share/slurmtail/history.db"
	defaultLogLevel                 = "info"
	defaultLogFormat                = "console"
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Timeouts: Timeouts{
			AppearanceSeconds: defaultAppearanceTimeoutSeconds,
			StallSeconds:      defaultStallTimeoutSeconds,
		},
		Tail: Tail{
			WindowLines: defaultWindowLines,
		},
		Scheduler: Scheduler{
			SubmitBinary: defaultSubmitBinary,
		},
		History: History{
			Enabled: true,
			Path:    defaultHistoryPath,
		},
		Logging: Logging{
			Level:  defaultLogLevel,
			Format: defaultLogFormat,
		},
	}
}
