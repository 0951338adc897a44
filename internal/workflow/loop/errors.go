package loop

import (
	"errors"
	"fmt"
)

// MaxRoundsError is returned when a query needs more completion rounds than allowed.
type MaxRoundsError struct {
	Rounds int
}

func (e *MaxRoundsError) Error() string {
	return fmt.Sprintf("max rounds (%d) reached", e.Rounds)
}
func (e *MaxRoundsError) Unwrap() error { return ErrMaxRounds }

var ErrMaxRounds = errors.New("max rounds reached")
