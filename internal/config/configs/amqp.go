package configs

// AMQP configures publication of launch notifications to RabbitMQ. An
// empty URL disables publishing and launches are only logged.
type AMQP struct {
	URL        string `env:"URL"`
	Exchange   string `env:"EXCHANGE" envDefault:"campaigns"`
	RoutingKey string `env:"ROUTING_KEY" envDefault:"campaign.launched"`
}

// Enabled reports whether a broker URL is configured.
func (c AMQP) Enabled() bool {
	return c.URL != ""
}
