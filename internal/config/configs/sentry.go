package configs

// Sentry configures error reporting. An empty DSN disables it.
type Sentry struct {
	DSN string `env:"DSN"`
}
