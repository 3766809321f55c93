package dice

import (
	"math/rand"
	"sync"
	"time"
)

// Sides is the number of faces on the die every check uses
const Sides = 20

//go:generate mockgen -package=mocks -destination=mocks/mock_roller.go github.com/KirkDiggler/talentprobe/internal/dice Roller

// Roller draws d20 results
type Roller interface {
	// Draw returns count independent results, each uniform over 1..20
	Draw(count int) ([]int, error)
}

// DiceError is a custom error type for dice errors
type DiceError string

// Error implements the error interface
func (e DiceError) Error() string {
	return string(e)
}

// ErrNegativeCount is returned when fewer than zero dice are requested
const ErrNegativeCount DiceError = "dice count cannot be negative"

// Config for dice roller
type Config struct {
	// Optional seed for testing
	Seed int64
}

// D20Roller draws from a single seeded source. It is safe for concurrent use.
type D20Roller struct {
	mu     sync.Mutex
	random *rand.Rand
}

// New creates a new dice roller
func New(cfg *Config) *D20Roller {
	var seed int64
	if cfg != nil && cfg.Seed != 0 {
		seed = cfg.Seed
	} else {
		seed = time.Now().UnixNano()
	}

	return &D20Roller{
		random: rand.New(rand.NewSource(seed)),
	}
}

// Draw implements Roller
func (r *D20Roller) Draw(count int) ([]int, error) {
	if count < 0 {
		return nil, ErrNegativeCount
	}

	rolls := make([]int, count)

	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range rolls {
		rolls[i] = r.random.Intn(Sides) + 1
	}

	return rolls, nil
}
