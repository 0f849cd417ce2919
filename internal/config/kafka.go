package config

// Kafka configures product event publishing. Publishing is disabled when no
// addresses are set.
type Kafka struct {
	Addresses []string `env:"KAFKA_ADDRESSES" envSeparator:","`
	Group     string   `env:"KAFKA_GROUP" envDefault:"product-api"`
}

// Enabled reports whether any broker address is configured.
func (k Kafka) Enabled() bool {
	return len(k.Addresses) > 0
}
