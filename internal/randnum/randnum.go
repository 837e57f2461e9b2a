// Package randnum draws the four sample values printed by the randnum command.
package randnum

import (
	"fmt"
	"io"

	"github.com/robalobadob/roshambo/internal/rng"
)

// Number bounds, half-open: [MinNumber, MaxNumber).
const (
	MinNumber = 1
	MaxNumber = 100
)

// Sample is one set of drawn values.
type Sample struct {
	Number uint32  // in [MinNumber, MaxNumber)
	Int    int32   // full int32 range
	Float  float64 // in [0, 1)
	Bool   bool
}

// Draw fills a Sample from src.
func Draw(src rng.Source) Sample {
	return Sample{
		Number: uint32(MinNumber + src.IntN(MaxNumber-MinNumber)),
		Int:    int32(uint32(src.Uint64())),
		Float:  src.Float64(),
		Bool:   src.Uint64()&1 == 1,
	}
}

// Print writes the values one per line: number, int, float, bool.
func (s Sample) Print(w io.Writer) error {
	_, err := fmt.Fprintf(w, "%d\n%d\n%v\n%t\n", s.Number, s.Int, s.Float, s.Bool)
	return err
}
