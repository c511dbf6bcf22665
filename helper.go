// helper.go --  This file is part of goBasis project.
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
	"bufio"
	"os"

	"gonum.org/v1/gonum/floats/scalar"
)

// ReadFileLines reads a whole text file into a slice of lines.
func ReadFileLines(fname string) ([]string, error) {
	file, err := os.Open(fname)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	var result []string
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		result = append(result, scanner.Text())
	}
	return result, scanner.Err()
}

// EqualBasis reports whether two parsed basis values agree shell by shell,
// with exponents and coefficients compared within tol.
func EqualBasis(a, b Basis, tol float64) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i].L != b[i].L || len(a[i].Rows) != len(b[i].Rows) {
			return false
		}
		for j := range a[i].Rows {
			if !equalRow(a[i].Rows[j], b[i].Rows[j], tol) {
				return false
			}
		}
	}
	return true
}

// EqualEcp reports whether two parsed ECP values agree block by block,
// with exponents and coefficients compared within tol.
func EqualEcp(a, b Ecp, tol float64) bool {
	if a.Nelec != b.Nelec || len(a.Blocks) != len(b.Blocks) {
		return false
	}
	for i := range a.Blocks {
		if a.Blocks[i].L != b.Blocks[i].L {
			return false
		}
		for p := range a.Blocks[i].ByPower {
			ra, rb := a.Blocks[i].ByPower[p], b.Blocks[i].ByPower[p]
			if len(ra) != len(rb) {
				return false
			}
			for j := range ra {
				if !equalRow(ra[j], rb[j], tol) {
					return false
				}
			}
		}
	}
	return true
}

func equalRow(a, b []float64, tol float64) bool {
	if len(a) != len(b) {
		return false
	}
	for k := range a {
		if !scalar.EqualWithinAbs(a[k], b[k], tol) {
			return false
		}
	}
	return true
}
