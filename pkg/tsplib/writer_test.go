package tsplib

import (
	"bufio"
	"bytes"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rhosak/tomo-tsp/pkg/errors"
	"github.com/rhosak/tomo-tsp/pkg/tomo"
)

func sixStateMatrix(t *testing.T) *tomo.Matrix {
	t.Helper()
	m, err := tomo.BuildCostMatrix(tomo.BaseSettings())
	require.NoError(t, err)
	return m
}

func TestWriteProblemHeader(t *testing.T) {
	m := sixStateMatrix(t)

	var buf bytes.Buffer
	require.NoError(t, WriteProblem(&buf, m, "tomo1q", "1 qubit, six-state scheme"))

	lines := strings.Split(buf.String(), "\n")
	require.GreaterOrEqual(t, len(lines), 7)
	assert.Equal(t, "NAME : tomo1q", lines[0])
	assert.Equal(t, "TYPE : TSP", lines[1])
	assert.Equal(t, "COMMENT : 1 qubit, six-state scheme", lines[2])
	assert.Equal(t, "DIMENSION : 6", lines[3])
	assert.Equal(t, "EDGE_WEIGHT_TYPE : EXPLICIT", lines[4])
	assert.Equal(t, "EDGE_WEIGHT_FORMAT : FULL_MATRIX", lines[5])
	assert.Equal(t, "EDGE_WEIGHT_SECTION", lines[6])

	// Six matrix rows, then the EOF marker, then the final newline.
	require.Len(t, lines, 7+6+2)
	assert.Equal(t, "EOF", lines[13])
	assert.Equal(t, "", lines[14])
}

func TestWriteProblemScalesExactly(t *testing.T) {
	m := sixStateMatrix(t)

	var buf bytes.Buffer
	require.NoError(t, WriteProblem(&buf, m, "tomo1q", "scale check"))

	// Re-parse the numeric block and compare against round(2*cost).
	sc := bufio.NewScanner(&buf)
	for i := 0; i < 7; i++ {
		require.True(t, sc.Scan())
	}
	for i := 0; i < m.Dim(); i++ {
		require.True(t, sc.Scan())
		fields := strings.Fields(sc.Text())
		require.Len(t, fields, m.Dim(), "row %d", i)
		for j, f := range fields {
			v, err := strconv.Atoi(f)
			require.NoError(t, err)
			want := int(m.At(i, j) * 2)
			assert.Equal(t, want, v, "entry (%d,%d)", i, j)
			assert.GreaterOrEqual(t, v, 0)
		}
	}
	require.True(t, sc.Scan())
	assert.Equal(t, "EOF", sc.Text())
}

func TestWriteProblemScaleOne(t *testing.T) {
	// Integer-valued matrices can skip scaling for solvers that allow it.
	m := tomo.NewMatrix(2)
	m.Set(0, 1, 45)
	m.Set(1, 0, 45)

	var buf bytes.Buffer
	require.NoError(t, WriteProblemScaled(&buf, m, "plain", "", 1))
	assert.Contains(t, buf.String(), "0 45\n45 0\n")
}

func TestWriteProblemFractionalFailsLoudly(t *testing.T) {
	// 11.3 * 2 is not an integer: upstream contract violation.
	m := tomo.NewMatrix(2)
	m.Set(0, 1, 11.3)
	m.Set(1, 0, 11.3)

	var buf bytes.Buffer
	err := WriteProblem(&buf, m, "bad", "")
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrCodeInvalidArgument))
}

func TestWriteProblemValidation(t *testing.T) {
	m := sixStateMatrix(t)
	var buf bytes.Buffer

	require.Error(t, WriteProblem(&buf, nil, "x", ""))
	require.Error(t, WriteProblem(&buf, m, "", "no name"))
	require.Error(t, WriteProblem(&buf, m, "bad\nname", ""))
	require.Error(t, WriteProblem(&buf, m, "x", "multi\nline"))
	require.Error(t, WriteProblemScaled(&buf, m, "x", "", 0))
}

func TestWriteProblemFile(t *testing.T) {
	m := sixStateMatrix(t)
	path := filepath.Join(t.TempDir(), "tomo1q.tsp")

	require.NoError(t, WriteProblemFile(path, m, "tomo1q", "file write", DefaultScale))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, WriteProblem(&buf, m, "tomo1q", "file write"))
	assert.Equal(t, buf.Bytes(), data)
}
