// Command lvlblas is a small driver around the library kernels. Its symm
// subcommand builds a deterministic random symmetric matrix A (only the
// selected triangle is populated) and a random general matrix B, runs
// C := alpha*A*B + beta*C (or the right-sided form), and prints C row by
// row. Useful for eyeballing results and for piping fixtures into other
// tools.
package main

import (
	"fmt"
	"math/rand"
	"os"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvlblas/symm"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// newRootCmd wires the command tree. Kept as a constructor so tests could
// build an isolated instance.
func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "lvlblas",
		Short:         "reference dense linear-algebra kernels",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(newSymmCmd())

	return root
}

// symmFlags carries the parsed flag set of the symm subcommand.
type symmFlags struct {
	side  string
	uplo  string
	m, n  int
	alpha float64
	beta  float64
	seed  int64
}

func newSymmCmd() *cobra.Command {
	var f symmFlags
	cmd := &cobra.Command{
		Use:   "symm",
		Short: "run C := alpha*A*B + beta*C with symmetric A on random data",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSymm(cmd, f)
		},
	}
	cmd.Flags().StringVar(&f.side, "side", "l", "side of the symmetric operand: l (C:=aAB+bC) or r (C:=aBA+bC)")
	cmd.Flags().StringVar(&f.uplo, "uplo", "u", "stored triangle of A: u or l")
	cmd.Flags().IntVar(&f.m, "m", 4, "rows of B and C")
	cmd.Flags().IntVar(&f.n, "n", 4, "columns of B and C")
	cmd.Flags().Float64Var(&f.alpha, "alpha", 1, "scale of the symmetric product")
	cmd.Flags().Float64Var(&f.beta, "beta", 0, "scale of C's prior value")
	cmd.Flags().Int64Var(&f.seed, "seed", 1, "seed for the deterministic random fill")

	return cmd
}

// runSymm builds the fixtures, runs the multiply and prints C.
func runSymm(cmd *cobra.Command, f symmFlags) error {
	if len(f.side) != 1 {
		return symm.ErrBadSide
	}
	side, err := symm.ParseSide(f.side[0])
	if err != nil {
		return err
	}
	if len(f.uplo) != 1 {
		return symm.ErrBadTriangle
	}
	tri, err := symm.ParseTriangle(f.uplo[0])
	if err != nil {
		return err
	}

	ka := f.m // order of A: m for the left-sided form, n for the right-sided
	if side == symm.Right {
		ka = f.n
	}
	rng := rand.New(rand.NewSource(f.seed))

	a, err := symm.NewMatrix(ka, ka)
	if err != nil {
		return err
	}
	fillSymmetricTriangle(rng, a, tri)

	b, err := symm.NewMatrix(f.m, f.n)
	if err != nil {
		return err
	}
	fillRand(rng, b)

	c, err := symm.NewMatrix(f.m, f.n)
	if err != nil {
		return err
	}
	if f.beta != 0 {
		fillRand(rng, c) // beta blends prior C, so give it contents
	}

	if err := symm.Multiply(side, tri, f.m, f.n, f.alpha, *a, *b, f.beta, *c); err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "side=%c uplo=%c m=%d n=%d alpha=%g beta=%g seed=%d\n",
		side, tri, f.m, f.n, f.alpha, f.beta, f.seed)
	for i := 0; i < f.m; i++ {
		for j := 0; j < f.n; j++ {
			v, _ := c.At(i, j)
			fmt.Fprintf(out, "% 10.4f", v)
		}
		fmt.Fprintln(out)
	}

	return nil
}

// fillSymmetricTriangle populates only the selected triangle of a with
// values in [-1, 1); the mirrored half stays zero and is never read by
// Multiply, which is the point of the triangular-storage contract.
func fillSymmetricTriangle(rng *rand.Rand, a *symm.Matrix, tri symm.Triangle) {
	for j := 0; j < a.Cols; j++ {
		for i := 0; i <= j; i++ {
			v := 2*rng.Float64() - 1
			if tri == symm.Upper {
				_ = a.Set(i, j, v)
			} else {
				_ = a.Set(j, i, v)
			}
		}
	}
}

// fillRand populates every element of m with values in [-1, 1).
func fillRand(rng *rand.Rand, m *symm.Matrix) {
	for j := 0; j < m.Cols; j++ {
		for i := 0; i < m.Rows; i++ {
			_ = m.Set(i, j, 2*rng.Float64()-1)
		}
	}
}
