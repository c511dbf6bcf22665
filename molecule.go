// molecule.go --  This file is part of goBasis project.
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
	"errors"
	"fmt"
	"strconv"
	"strings"

	"gonum.org/v1/gonum/mat"
)

type Atom struct {
	Z      int
	Name   string
	Coords [3]float64
}

// Molecule carries a geometry plus the per-element basis and ECP
// assignments a mean-field engine consumes.
type Molecule struct {
	Atoms []Atom
	Basis map[string]Basis
	Ecp   map[string]Ecp
}

// AddAtoms appends atoms from input lines of the form "O 0.0 0.0 0.0".
func (m *Molecule) AddAtoms(data []string) error {
	for _, str := range data {
		words := strings.Fields(str)
		if len(words) < 4 {
			return fmt.Errorf("incorrect format of coordinates for atom: %q", str)
		}
		z := AtomicNumber(words[0])
		if z == 0 {
			return fmt.Errorf("unknown element %q", words[0])
		}
		var coords [3]float64
		for k := 0; k < 3; k++ {
			v, err := strconv.ParseFloat(words[k+1], 64)
			if err != nil {
				return fmt.Errorf("bad coordinate %q for atom %q: %w", words[k+1], words[0], err)
			}
			coords[k] = v
		}
		name := StdSymbol(words[0]) + strconv.Itoa(len(m.Atoms)+1)
		m.Atoms = append(m.Atoms, Atom{Z: z, Name: name, Coords: coords})
	}
	return nil
}

// AssignBasis loads the basis segment for every distinct element of the
// molecule from one NWChem archive file.
func (m *Molecule) AssignBasis(path string) error {
	if m.Basis == nil {
		m.Basis = map[string]Basis{}
	}
	for _, a := range m.Atoms {
		symb := Symbols[a.Z-1]
		if _, done := m.Basis[symb]; done {
			continue
		}
		b, err := LoadBasis(path, symb)
		if err != nil {
			return err
		}
		m.Basis[symb] = b
	}
	return nil
}

// AssignEcp loads ECPs from one NWChem file. Elements the file carries no
// ECP for are left all-electron.
func (m *Molecule) AssignEcp(path string) error {
	if m.Ecp == nil {
		m.Ecp = map[string]Ecp{}
	}
	for _, a := range m.Atoms {
		symb := Symbols[a.Z-1]
		if _, done := m.Ecp[symb]; done {
			continue
		}
		ecp, err := LoadEcp(path, symb)
		if errors.Is(err, ErrSegmentNotFound) {
			continue
		}
		if err != nil {
			return err
		}
		m.Ecp[symb] = ecp
	}
	return nil
}

// NAO counts spherical atomic orbitals: (2l+1) per contraction column.
func (m *Molecule) NAO() int {
	n := 0
	for _, a := range m.Atoms {
		for _, sh := range m.Basis[Symbols[a.Z-1]] {
			n += (2*sh.L + 1) * sh.NCtr()
		}
	}
	return n
}

// Nelec counts the electrons of the molecule, subtracting the core
// electrons replaced by an ECP.
func (m *Molecule) Nelec() int {
	n := 0
	for _, a := range m.Atoms {
		n += a.Z
		if ecp, ok := m.Ecp[Symbols[a.Z-1]]; ok {
			n -= ecp.Nelec
		}
	}
	return n
}

// envStart reserves the leading env slots for engine-global parameters.
const envStart = 20

// ShellTable flattens the per-atom shells into the integral-engine layout:
// one atm row per atom pointing at its coordinates in env, one bas row per
// shell pointing at its exponent and coefficient runs in env.
func (m *Molecule) ShellTable() (atm, bas [][]int, env []float64) {
	env = make([]float64, envStart)
	ptr := envStart
	for _, a := range m.Atoms {
		atm = append(atm, []int{a.Z, ptr, 0, 0, 0, 0})
		env = append(env, a.Coords[0], a.Coords[1], a.Coords[2])
		ptr += 3
	}
	for i, a := range m.Atoms {
		for _, sh := range m.Basis[Symbols[a.Z-1]] {
			nprim, nctr := sh.NPrim(), sh.NCtr()
			env = append(env, sh.Exps()...)
			co := sh.Coeffs()
			for j := 0; j < nctr; j++ {
				env = append(env, mat.Col(nil, j, co)...)
			}
			bas = append(bas, []int{i, sh.L, nprim, nctr, 0, ptr, ptr + nprim, 0})
			ptr += nprim * (1 + nctr)
		}
	}
	return atm, bas, env
}
