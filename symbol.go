// symbol.go --  This file is part of goBasis project.
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
	"strings"

	"golang.org/x/exp/slices"
)

// Symbols lists the element symbols indexed by atomic number minus one.
var Symbols = []string{
	"H", "He",
	"Li", "Be", "B", "C", "N", "O", "F", "Ne",
	"Na", "Mg", "Al", "Si", "P", "S", "Cl", "Ar",
	"K", "Ca", "Sc", "Ti", "V", "Cr", "Mn", "Fe", "Co", "Ni", "Cu", "Zn",
	"Ga", "Ge", "As", "Se", "Br", "Kr",
	"Rb", "Sr", "Y", "Zr", "Nb", "Mo", "Tc", "Ru", "Rh", "Pd", "Ag", "Cd",
	"In", "Sn", "Sb", "Te", "I", "Xe",
	"Cs", "Ba", "La", "Ce", "Pr", "Nd", "Pm", "Sm", "Eu", "Gd", "Tb", "Dy",
	"Ho", "Er", "Tm", "Yb", "Lu",
	"Hf", "Ta", "W", "Re", "Os", "Ir", "Pt", "Au", "Hg",
	"Tl", "Pb", "Bi", "Po", "At", "Rn",
	"Fr", "Ra", "Ac", "Th", "Pa", "U", "Np", "Pu", "Am", "Cm", "Bk", "Cf",
	"Es", "Fm", "Md", "No", "Lr",
	"Rf", "Db", "Sg", "Bh", "Hs", "Mt", "Ds", "Rg", "Cn",
	"Nh", "Fl", "Mc", "Lv", "Ts", "Og",
}

// StdSymbol canonicalizes an element label: ghost/dummy prefixes and
// trailing numbering or charge suffixes are stripped and the bare symbol is
// returned capitalized ("NA" -> "Na", "GHOST-O" -> "O", "H2" -> "H").
// Every symbol comparison in the parsers goes through this function.
func StdSymbol(s string) string {
	up := strings.ToUpper(strings.TrimSpace(s))
	for _, pre := range []string{"GHOST-", "GHOST", "X-"} {
		if strings.HasPrefix(up, pre) && len(up) > len(pre) {
			up = up[len(pre):]
			break
		}
	}
	up = strings.TrimRight(up, "0123456789+-")
	if up == "" {
		return ""
	}
	return up[:1] + strings.ToLower(up[1:])
}

// AtomicNumber returns the nuclear charge for an element label, or 0 when
// the label does not reduce to a known element.
func AtomicNumber(s string) int {
	return slices.Index(Symbols, StdSymbol(s)) + 1
}
