package checkout

import "time"

// Config contains checkout pricing and demo payment settings.
type Config struct {
	ServiceFeeRate float64       `env:"CHECKOUT_SERVICE_FEE_RATE" envDefault:"0.05"`
	SimulatedDelay time.Duration `env:"CHECKOUT_SIMULATED_DELAY"  envDefault:"3s"`
}
