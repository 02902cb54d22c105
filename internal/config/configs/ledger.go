package configs

// Ledger configures the in-process token ledger used as the token gateway.
type Ledger struct {
	// Custody is the account holding contributor deposits and rewards.
	Custody string `env:"CUSTODY" envDefault:"ido"`
	// DevEndpoints exposes mint/approve/balance routes over HTTP.
	DevEndpoints bool `env:"DEV_ENDPOINTS" envDefault:"false"`
}
