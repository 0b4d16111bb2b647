package inflight

import "time"

// Config selects the guard backend. An empty RedisAddr keeps the guard in
// process memory.
type Config struct {
	RedisAddr     string        `env:"REDIS_ADDR"`
	RedisPassword string        `env:"REDIS_PASSWORD"`
	RedisDB       int           `env:"REDIS_DB"       envDefault:"0"`
	TTL           time.Duration `env:"INFLIGHT_TTL"   envDefault:"2m"`
}
