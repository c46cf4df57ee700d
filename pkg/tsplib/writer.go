package tsplib

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"

	"github.com/rhosak/tomo-tsp/pkg/errors"
	"github.com/rhosak/tomo-tsp/pkg/tomo"
)

// DefaultScale is the integer factor applied to every cost before writing.
// The minimum non-zero angle increment in the wave-plate tables is 22.5°,
// so doubling turns every cost into an exact integer, which the solver's
// input parser requires. Solvers that accept fractional weights can be fed
// with scale 1 via WriteProblemScaled.
const DefaultScale = 2

// scaleTol bounds how far a scaled cost may sit from an integer before the
// input is considered corrupt rather than merely rounded.
const scaleTol = 1e-9

// WriteProblem writes m as a TSPLIB problem with the default scale factor.
func WriteProblem(w io.Writer, m *tomo.Matrix, name, comment string) error {
	return WriteProblemScaled(w, m, name, comment, DefaultScale)
}

// WriteProblemScaled writes m as a TSPLIB problem file:
//
//	NAME : {name}
//	TYPE : TSP
//	COMMENT : {comment}
//	DIMENSION : {N}
//	EDGE_WEIGHT_TYPE : EXPLICIT
//	EDGE_WEIGHT_FORMAT : FULL_MATRIX
//	EDGE_WEIGHT_SECTION
//	{N rows of N space-separated integer weights}
//	EOF
//
// Every cost is multiplied by scale and must land on an integer exactly
// (within scaleTol). A fractional scaled weight means the upstream angle
// data violated its contract, and the write fails with InvalidArgument
// instead of silently truncating.
func WriteProblemScaled(w io.Writer, m *tomo.Matrix, name, comment string, scale int) error {
	if m == nil {
		return errors.New(errors.ErrCodeInvalidArgument, "cost matrix is nil")
	}
	if scale < 1 {
		return errors.New(errors.ErrCodeInvalidArgument, "scale must be >= 1, got %d", scale)
	}
	if err := errors.ValidateProblemName(name); err != nil {
		return err
	}
	if err := errors.ValidateComment(comment); err != nil {
		return err
	}

	n := m.Dim()
	bw := bufio.NewWriter(w)

	fmt.Fprintf(bw, "NAME : %s\n", name)
	fmt.Fprintf(bw, "TYPE : TSP\n")
	fmt.Fprintf(bw, "COMMENT : %s\n", comment)
	fmt.Fprintf(bw, "DIMENSION : %d\n", n)
	fmt.Fprintf(bw, "EDGE_WEIGHT_TYPE : EXPLICIT\n")
	fmt.Fprintf(bw, "EDGE_WEIGHT_FORMAT : FULL_MATRIX\n")
	fmt.Fprintf(bw, "EDGE_WEIGHT_SECTION\n")

	buf := make([]byte, 0, 16)
	for i := 0; i < n; i++ {
		row := m.Row(i)
		for j, v := range row {
			scaled := v * float64(scale)
			rounded := math.Round(scaled)
			if math.Abs(scaled-rounded) > scaleTol {
				return errors.New(errors.ErrCodeInvalidArgument,
					"cost %g at (%d,%d) is not an exact half-integer; scaled value %g is fractional",
					v, i, j, scaled)
			}
			if j > 0 {
				if err := bw.WriteByte(' '); err != nil {
					return err
				}
			}
			buf = strconv.AppendInt(buf[:0], int64(rounded), 10)
			if _, err := bw.Write(buf); err != nil {
				return err
			}
		}
		if err := bw.WriteByte('\n'); err != nil {
			return err
		}
	}

	fmt.Fprintf(bw, "EOF\n")

	return bw.Flush()
}

// WriteProblemFile writes the problem to path, creating or truncating it.
// The file is held open only for the duration of the write.
func WriteProblemFile(path string, m *tomo.Matrix, name, comment string, scale int) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()

	return WriteProblemScaled(f, m, name, comment, scale)
}
