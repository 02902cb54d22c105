package configs

// Resolver configures the job that approves ended campaigns. An empty
// Schedule disables it.
type Resolver struct {
	// Schedule is a robfig/cron spec, e.g. "@every 1m" or "0 */5 * * * *".
	Schedule string `env:"SCHEDULE"`
	// Actor is recorded as the approver in emitted events.
	Actor string `env:"ACTOR" envDefault:"resolver"`
}
