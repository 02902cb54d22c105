package configs

// Store selects the campaign registry backend.
type Store struct {
	// Driver is "badger" (embedded, default) or "postgres".
	Driver string `env:"DRIVER" envDefault:"badger"`
}

// Badger configures the embedded key-value store.
type Badger struct {
	// Path is the data directory. Ignored when InMemory is set.
	Path string `env:"PATH" envDefault:"./data/badger"`
	// InMemory keeps all data in memory; everything is lost on exit.
	InMemory bool `env:"IN_MEMORY" envDefault:"false"`
}
