package kernel

import (
	"errors"
	"strconv"
	"strings"

	"routeboard/internal/pkg/errs"
	"routeboard/internal/pkg/guard"
)

var ErrRankIsNotConstructed = errors.New("Rank must be created via NewRank or ParseRank")

// Rank is a user-typed, 1-based position hint. It is never a guaranteed final index.
type Rank struct {
	value int
	guard guard.ConstructorGuard
}

func NewRank(value int) (Rank, error) {
	if value <= 0 {
		return Rank{}, errs.NewValueIsInvalidErrorWithCause("rank", errors.New(strconv.Itoa(value)+" is not greater than 0"))
	}
	return Rank{value: value, guard: guard.NewConstructorGuard()}, nil
}

// ParseRank reads a rank typed by a user. Surrounding whitespace is ignored.
// Unparsable text and values <= 0 mean "no preference" and yield ok == false.
func ParseRank(text string) (Rank, bool) {
	value, err := strconv.Atoi(strings.TrimSpace(text))
	if err != nil {
		return Rank{}, false
	}
	rank, err := NewRank(value)
	if err != nil {
		return Rank{}, false
	}
	return rank, true
}

func (r Rank) Validate() error {
	return r.guard.Validate(ErrRankIsNotConstructed)
}

// Value returns the 1-based rank.
func (r Rank) Value() int {
	return r.value
}

// Slot returns the 0-based slot the rank asks for, clamped to a list of n items.
func (r Rank) Slot(n int) int {
	slot := r.value - 1
	if slot > n-1 {
		slot = n - 1
	}
	if slot < 0 {
		slot = 0
	}
	return slot
}
