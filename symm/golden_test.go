// Package symm_test: golden-case tests. Cases live in testdata/cases.yaml as
// small, hand-computed fixtures with exactly representable values, so the
// comparison is exact. The YAML form keeps the fixtures readable and lets
// new cases be added without touching test code.
package symm_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/lvlblas/symm"
)

// goldenCase mirrors one entry of testdata/cases.yaml.
type goldenCase struct {
	Name  string    `yaml:"name"`
	Side  string    `yaml:"side"` // single-character token, ParseSide convention
	Uplo  string    `yaml:"uplo"` // single-character token, ParseTriangle convention
	M     int       `yaml:"m"`
	N     int       `yaml:"n"`
	Alpha float64   `yaml:"alpha"`
	Beta  float64   `yaml:"beta"`
	A     []float64 `yaml:"a"`
	Lda   int       `yaml:"lda"`
	B     []float64 `yaml:"b"`
	Ldb   int       `yaml:"ldb"`
	C     []float64 `yaml:"c"`
	Ldc   int       `yaml:"ldc"`
	Want  []float64 `yaml:"want"`
}

// goldenFile is the top-level document of testdata/cases.yaml.
type goldenFile struct {
	Cases []goldenCase `yaml:"cases"`
}

// TestMultiplyGoldenCases replays every YAML fixture and requires an exact
// match (all fixture values are integers; no rounding is involved).
func TestMultiplyGoldenCases(t *testing.T) {
	raw, err := os.ReadFile(filepath.Join("testdata", "cases.yaml"))
	require.NoError(t, err)

	var doc goldenFile
	require.NoError(t, yaml.Unmarshal(raw, &doc))
	require.NotEmpty(t, doc.Cases)

	for _, tc := range doc.Cases {
		t.Run(tc.Name, func(t *testing.T) {
			side, err := symm.ParseSide(tc.Side[0])
			require.NoError(t, err)
			tri, err := symm.ParseTriangle(tc.Uplo[0])
			require.NoError(t, err)

			ka := tc.M
			if side == symm.Right {
				ka = tc.N
			}
			a := symm.Matrix{Rows: ka, Cols: ka, Stride: tc.Lda, Data: cloneFloats(tc.A)}
			b := symm.Matrix{Rows: tc.M, Cols: tc.N, Stride: tc.Ldb, Data: cloneFloats(tc.B)}
			c := symm.Matrix{Rows: tc.M, Cols: tc.N, Stride: tc.Ldc, Data: cloneFloats(tc.C)}

			require.NoError(t, symm.Multiply(side, tri, tc.M, tc.N, tc.Alpha, a, b, tc.Beta, c))
			require.Equal(t, tc.Want, c.Data) // exact by construction
		})
	}
}
