package configs

import "time"

// Redis configures the read cache. When Enabled is false an in-process
// cache with the same TTL is used instead.
type Redis struct {
	Enabled  bool   `env:"ENABLED" envDefault:"false"`
	Addr     string `env:"ADDRESS" envDefault:"localhost:6379"`
	Password string `env:"PASSWORD"`
	DB       int    `env:"DB" envDefault:"0"`
	// Key is the Redis key holding the campaign snapshot.
	Key string `env:"KEY" envDefault:"mailcamp:campaigns:snapshot"`
	// TTL bounds how long a snapshot is served. Zero disables caching.
	TTL time.Duration `env:"TTL" envDefault:"60s"`
}
