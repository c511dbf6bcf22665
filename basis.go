// basis.go --  This file is part of goBasis project.
//
//	goBasis is distributed in the hope that it will be useful,
//	but WITHOUT ANY WARRANTY; without even the implied warranty
//	of MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.
//	See the GNU General Public License for more details.
//
//	You should have received a copy of the GNU General Public License
//	along with this program.  If not, see http://www.gnu.org/licenses/
//
// ------------------------------------------------
package gobasis

import (
	"gonum.org/v1/gonum/floats/scalar"
	"gonum.org/v1/gonum/mat"
)

// Shell is one group of primitive Gaussians sharing an angular momentum.
// Every row holds a primitive exponent followed by one or more contraction
// coefficients; all rows of a shell have the same number of columns.
type Shell struct {
	L    int
	Rows [][]float64
}

// Basis is the per-element list of shells, ascending in L after parsing.
type Basis []Shell

// NPrim returns the number of primitive Gaussians in the shell.
func (sh Shell) NPrim() int { return len(sh.Rows) }

// NCtr returns the number of contraction columns in the shell.
func (sh Shell) NCtr() int {
	if len(sh.Rows) == 0 {
		return 0
	}
	return len(sh.Rows[0]) - 1
}

// Exps returns the primitive exponent column.
func (sh Shell) Exps() []float64 {
	exps := make([]float64, len(sh.Rows))
	for i, row := range sh.Rows {
		exps[i] = row[0]
	}
	return exps
}

// Coeffs returns the contraction coefficients as an NPrim x NCtr dense
// matrix, or nil for an empty shell.
func (sh Shell) Coeffs() *mat.Dense {
	if sh.NPrim() == 0 || sh.NCtr() == 0 {
		return nil
	}
	m := mat.NewDense(sh.NPrim(), sh.NCtr(), nil)
	for i, row := range sh.Rows {
		for j, c := range row[1:] {
			m.Set(i, j, c)
		}
	}
	return m
}

// EcpBlock is one radial term of an effective core potential. L is -1 for
// the local UL term. ByPower keeps the [exponent, coefficient] rows indexed
// by the power of r they belong to.
type EcpBlock struct {
	L       int
	ByPower [4][][]float64
}

// Ecp is the per-element effective core potential: the number of core
// electrons it replaces plus its radial blocks, UL first then ascending L.
type Ecp struct {
	Nelec  int
	Blocks []EcpBlock
}

// expTol is the absolute tolerance for deciding that two primitive
// exponents are the same.
const expTol = 1e-9

// OptimizeContraction merges neighboring shells that share an angular
// momentum and the same exponent column into one general-contraction shell
// with the coefficient columns joined side by side. Row order is preserved
// and the input is left untouched.
func OptimizeContraction(basis Basis) Basis {
	var out Basis
	for _, sh := range basis {
		if n := len(out); n > 0 && out[n-1].L == sh.L && sameExps(out[n-1], sh) {
			prev := &out[n-1]
			for i := range prev.Rows {
				prev.Rows[i] = append(prev.Rows[i], sh.Rows[i][1:]...)
			}
			continue
		}
		out = append(out, cloneShell(sh))
	}
	return out
}

func sameExps(a, b Shell) bool {
	if a.NPrim() != b.NPrim() {
		return false
	}
	for i := range a.Rows {
		if !scalar.EqualWithinAbs(a.Rows[i][0], b.Rows[i][0], expTol) {
			return false
		}
	}
	return true
}

func cloneShell(sh Shell) Shell {
	rows := make([][]float64, len(sh.Rows))
	for i, row := range sh.Rows {
		rows[i] = append([]float64(nil), row...)
	}
	return Shell{L: sh.L, Rows: rows}
}
