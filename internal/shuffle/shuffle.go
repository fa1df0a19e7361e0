package shuffle

import (
	"math/rand"
	"time"

	"github.com/KirkDiggler/stagedraw/internal/models"
)

// Sampler draws uniform random samples from a participant pool
type Sampler struct {
	random *rand.Rand
}

// Config for the sampler
type Config struct {
	// Optional seed for testing
	Seed int64
}

// New creates a new sampler
func New(cfg *Config) *Sampler {
	var seed int64
	if cfg != nil && cfg.Seed != 0 {
		seed = cfg.Seed
	} else {
		seed = time.Now().UnixNano()
	}

	source := rand.NewSource(seed)

	return &Sampler{
		random: rand.New(source),
	}
}

// Pick returns up to count participants chosen uniformly without
// replacement. It permutes a copy of the pool and truncates, so every
// eligible participant is equally likely and no one appears twice. The
// input slice is never modified.
func (s *Sampler) Pick(pool []*models.Participant, count int) []*models.Participant {
	if count <= 0 || len(pool) == 0 {
		return []*models.Participant{}
	}

	if count > len(pool) {
		count = len(pool)
	}

	shuffled := make([]*models.Participant, len(pool))
	copy(shuffled, pool)

	s.random.Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})

	return shuffled[:count]
}

// PickName returns one display name chosen uniformly from the pool, used
// for the cosmetic rolling effect. Returns empty for an empty pool.
func (s *Sampler) PickName(pool []*models.Participant) string {
	if len(pool) == 0 {
		return ""
	}
	return pool[s.random.Intn(len(pool))].Name
}
