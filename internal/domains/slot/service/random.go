package service

import (
	"math/rand/v2"
	"time"

	"roomslots/config"
)

// Random is the source of the availability draws.
type Random interface {
	// IntN returns a uniform value in [0, n).
	IntN(n int) int
}

// NewRandom seeds a PCG source from GENERATOR_SEED, or from the clock when unset.
func NewRandom(cfg *config.Config) Random {
	seed := uint64(time.Now().UnixNano()) //nolint:gosec
	if cfg.Generator.Seed != nil {
		seed = *cfg.Generator.Seed
	}

	return NewSeededRandom(seed)
}

func NewSeededRandom(seed uint64) Random {
	return rand.New(rand.NewPCG(seed, seed)) //nolint:gosec
}
