package scoring

import (
	"errors"
)

// Sentinel kinds for strict input validation.
var (
	ErrAgeOutOfRange              = errors.New("age must be between 18 and 80")
	ErrBMIOutOfRange              = errors.New("bmi must be between 15 and 40")
	ErrWorkoutFrequencyOutOfRange = errors.New("workout frequency must be between 0 and 7 days")
)
