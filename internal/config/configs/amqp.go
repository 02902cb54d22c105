package configs

import "time"

// AMQP configures the RabbitMQ event publisher. An empty URL disables it.
type AMQP struct {
	URL string `env:"URL"`
	// Exchange is a durable topic exchange; events are routed by type,
	// e.g. "campaign.joined".
	Exchange       string        `env:"EXCHANGE" envDefault:"ido.events"`
	ConnectRetries int           `env:"CONNECT_RETRIES" envDefault:"10"`
	RetryDelay     time.Duration `env:"RETRY_DELAY" envDefault:"3s"`
}
