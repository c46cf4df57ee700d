package tsplib

import (
	"bufio"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/rhosak/tomo-tsp/pkg/errors"
)

// ReadTour parses a solver solution file. The first line declares the tour
// dimension; every subsequent whitespace-separated token is a 0-based
// configuration index. Line wrapping is arbitrary, so tokens are collected
// across all remaining lines before any count check.
//
// Returns ParseError for a malformed dimension line or a non-integer token,
// and DimensionMismatch when the token count disagrees with the declared
// dimension.
func ReadTour(r io.Reader) ([]int, error) {
	br := bufio.NewReader(r)

	header, err := br.ReadString('\n')
	if err != nil && err != io.EOF {
		return nil, err
	}
	header = strings.TrimSpace(header)
	if header == "" {
		return nil, errors.New(errors.ErrCodeParse, "solution file is missing the dimension line")
	}
	dim, err := strconv.Atoi(header)
	if err != nil {
		return nil, errors.New(errors.ErrCodeParse, "invalid dimension line %q", header)
	}
	if dim < 1 {
		return nil, errors.New(errors.ErrCodeParse, "declared dimension %d is not positive", dim)
	}

	tour := make([]int, 0, dim)
	sc := bufio.NewScanner(br)
	sc.Split(bufio.ScanWords)
	for sc.Scan() {
		idx, err := strconv.Atoi(sc.Text())
		if err != nil {
			return nil, errors.New(errors.ErrCodeParse, "invalid tour token %q", sc.Text())
		}
		tour = append(tour, idx)
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}

	if len(tour) != dim {
		return nil, errors.New(errors.ErrCodeDimensionMismatch,
			"solution declares %d entries but contains %d", dim, len(tour))
	}

	return tour, nil
}

// ReadTourExpect parses a solution file and additionally checks the declared
// dimension against the configuration-space size known to the caller.
func ReadTourExpect(r io.Reader, want int) ([]int, error) {
	tour, err := ReadTour(r)
	if err != nil {
		return nil, err
	}
	if len(tour) != want {
		return nil, errors.New(errors.ErrCodeDimensionMismatch,
			"solution has %d entries, configuration space has %d", len(tour), want)
	}
	return tour, nil
}

// ReadTourFile reads a solution from path. The file is held open only for
// the duration of the read.
func ReadTourFile(path string, want int) ([]int, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return ReadTourExpect(f, want)
}
