// nwchem.go --  This file is part of goBasis project.
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

// Package gobasis parses and renders Gaussian basis sets and effective core
// potentials in the NWChem text format.
package gobasis

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"golang.org/x/exp/slices"
)

// MaxL is one past the highest supported angular momentum.
const MaxL = 8

// SPDF maps angular momentum to its shell letter.
var SPDF = [MaxL]string{"S", "P", "D", "F", "G", "H", "I", "K"}

var (
	ErrSegmentNotFound = errors.New("segment not found")
	ErrUnknownShell    = errors.New("unknown shell type")
	ErrMalformedData   = errors.New("malformed data line")
	ErrMissingNelec    = errors.New("missing electron count")
)

var (
	basisSetDelimiter = regexp.MustCompile(`# *BASIS SET.*\n`)
	ecpDelimiter      = regexp.MustCompile(`\n *ECP *\n`)
)

// ParseBasis parses basis text in NWChem format. Text after # on a line is a
// comment. When symb is non-empty the text is treated as an archive of many
// elements separated by "# BASIS SET" lines and only the segment belonging
// to symb is parsed; otherwise the whole text is one segment.
func ParseBasis(text, symb string) (Basis, error) {
	if symb != "" {
		symb = StdSymbol(symb)
		seg, ok := searchSeg(basisSetDelimiter.Split(text, -1), symb)
		if !ok {
			return nil, fmt.Errorf("basis for %s: %w", symb, ErrSegmentNotFound)
		}
		text = seg
	}
	var bastxt []string
	for _, dat := range strings.Split(text, "\n") {
		x := strings.ToUpper(strings.TrimSpace(strings.SplitN(dat, "#", 2)[0]))
		if x != "" && !strings.HasPrefix(x, "END") && !strings.HasPrefix(x, "BASIS") {
			bastxt = append(bastxt, x)
		}
	}
	return parseShells(bastxt)
}

// LoadBasis reads an NWChem basis archive from disk and extracts the segment
// for symb.
func LoadBasis(path, symb string) (Basis, error) {
	lines, err := ReadFileLines(path)
	if err != nil {
		return nil, err
	}
	return ParseBasis(strings.Join(lines, "\n"), symb)
}

// ParseEcp parses effective-core-potential text in NWChem format. When symb
// is non-empty its segment is located by scanning for the first line whose
// leading token is the element symbol and stops at the next element's
// header line.
func ParseEcp(text, symb string) (Ecp, error) {
	lines := strings.Split(text, "\n")
	if symb != "" {
		symb = StdSymbol(symb)
		seg, ok := searchEcpSeg(lines, symb)
		if !ok {
			return Ecp{}, fmt.Errorf("ECP for %s: %w", symb, ErrSegmentNotFound)
		}
		lines = seg
	}
	var ecptxt []string
	for _, dat := range lines {
		x := strings.ToUpper(strings.TrimSpace(strings.SplitN(dat, "#", 2)[0]))
		if x != "" && !strings.HasPrefix(x, "END") && !strings.HasPrefix(x, "ECP") {
			ecptxt = append(ecptxt, x)
		}
	}
	return parseEcpBlocks(ecptxt)
}

// LoadEcp reads an NWChem file and parses the ECP section for symb. The
// section starts after a line holding only the word ECP.
func LoadEcp(path, symb string) (Ecp, error) {
	lines, err := ReadFileLines(path)
	if err != nil {
		return Ecp{}, err
	}
	text := strings.Join(lines, "\n")
	if parts := ecpDelimiter.Split(text, 2); len(parts) > 1 {
		text = parts[1]
	}
	return ParseEcp(text, symb)
}

func searchSeg(chunks []string, symb string) (string, bool) {
	for _, dat := range chunks[1:] {
		fields := strings.Fields(dat)
		if len(fields) > 0 && StdSymbol(fields[0]) == symb {
			return dat, true
		}
	}
	return "", false
}

func searchEcpSeg(lines []string, symb string) ([]string, bool) {
	start := -1
	for i, dat := range lines {
		fields := strings.Fields(dat)
		if len(fields) > 0 && StdSymbol(fields[0]) == symb {
			start = i
			break
		}
	}
	if start < 0 {
		return nil, false
	}
	var seg []string
	for _, dat := range lines[start:] {
		x := strings.ToUpper(strings.TrimSpace(dat))
		if x == "" {
			continue
		}
		if isAlpha(x[0]) && StdSymbol(strings.Fields(x)[0]) != symb {
			break
		}
		seg = append(seg, x)
	}
	return seg, true
}

// parseShells scans cleaned, uppercased lines left to right. A line whose
// first character is alphabetic opens a new shell (two for SP); numeric
// lines append rows to the shell being built.
func parseShells(lines []string) (Basis, error) {
	var basis Basis
	sp := false
	for _, line := range lines {
		if isAlpha(line[0]) {
			fields := strings.Fields(line)
			if len(fields) < 2 {
				return nil, fmt.Errorf("shell header %q: %w", line, ErrMalformedData)
			}
			if key := fields[1]; key == "SP" {
				basis = append(basis, Shell{L: 0}, Shell{L: 1})
				sp = true
			} else {
				l := slices.Index(SPDF[:], key)
				if l < 0 {
					return nil, fmt.Errorf("shell type %q: %w", key, ErrUnknownShell)
				}
				basis = append(basis, Shell{L: l})
				sp = false
			}
			continue
		}
		if len(basis) == 0 {
			return nil, fmt.Errorf("data line %q before any shell header: %w", line, ErrMalformedData)
		}
		row, err := parseFloats(line)
		if err != nil {
			return nil, err
		}
		if sp {
			if len(row) < 3 {
				return nil, fmt.Errorf("SP data line %q needs one exponent and two coefficients: %w", line, ErrMalformedData)
			}
			s, p := &basis[len(basis)-2], &basis[len(basis)-1]
			s.Rows = append(s.Rows, []float64{row[0], row[1]})
			p.Rows = append(p.Rows, []float64{row[0], row[2]})
		} else {
			if len(row) < 2 {
				return nil, fmt.Errorf("data line %q needs one exponent and a coefficient: %w", line, ErrMalformedData)
			}
			basis[len(basis)-1].Rows = append(basis[len(basis)-1].Rows, row)
		}
	}
	slices.SortStableFunc(basis, func(a, b Shell) int { return a.L - b.L })
	return basis, nil
}

func parseEcpBlocks(lines []string) (Ecp, error) {
	var blocks []EcpBlock
	nelec := -1
	for _, line := range lines {
		if isAlpha(line[0]) {
			fields := strings.Fields(line)
			if len(fields) < 2 {
				return Ecp{}, fmt.Errorf("ECP header %q: %w", line, ErrMalformedData)
			}
			switch key := fields[1]; key {
			case "NELEC":
				if len(fields) < 3 {
					return Ecp{}, fmt.Errorf("NELEC line %q: %w", line, ErrMalformedData)
				}
				n, err := strconv.Atoi(fields[2])
				if err != nil {
					return Ecp{}, fmt.Errorf("electron count %q in %q: %w", fields[2], line, ErrMalformedData)
				}
				nelec = n
			case "UL":
				blocks = append(blocks, EcpBlock{L: -1})
			default:
				l := slices.Index(SPDF[:], key)
				if l < 0 {
					return Ecp{}, fmt.Errorf("ECP shell type %q: %w", key, ErrUnknownShell)
				}
				blocks = append(blocks, EcpBlock{L: l})
			}
			continue
		}
		if len(blocks) == 0 {
			return Ecp{}, fmt.Errorf("ECP data line %q before any block header: %w", line, ErrMalformedData)
		}
		fields := strings.Fields(line)
		if len(fields) < 3 {
			return Ecp{}, fmt.Errorf("ECP data line %q needs a power, an exponent and a coefficient: %w", line, ErrMalformedData)
		}
		power, err := strconv.Atoi(fields[0])
		if err != nil || power < 0 || power > 3 {
			return Ecp{}, fmt.Errorf("r-power %q in %q: %w", fields[0], line, ErrMalformedData)
		}
		row, err := parseFloats(strings.Join(fields[1:], " "))
		if err != nil {
			return Ecp{}, err
		}
		blk := &blocks[len(blocks)-1]
		blk.ByPower[power] = append(blk.ByPower[power], row)
	}
	if nelec < 0 {
		return Ecp{}, fmt.Errorf("no NELEC line: %w", ErrMissingNelec)
	}
	slices.SortStableFunc(blocks, func(a, b EcpBlock) int { return a.L - b.L })
	return Ecp{Nelec: nelec, Blocks: blocks}, nil
}

// parseFloats splits a data line into numbers, accepting Fortran-style D
// exponent markers.
func parseFloats(line string) ([]float64, error) {
	fields := strings.Fields(strings.ReplaceAll(line, "D", "E"))
	row := make([]float64, len(fields))
	for i, f := range fields {
		v, err := strconv.ParseFloat(f, 64)
		if err != nil {
			return nil, fmt.Errorf("bad number %q in %q: %w", f, line, ErrMalformedData)
		}
		row[i] = v
	}
	return row, nil
}

func isAlpha(c byte) bool { return c >= 'A' && c <= 'Z' }

// BasisToNwchem renders a Basis back to NWChem text: a summary comment line
// with per-l primitive and contraction totals in ascending-l order, then one
// header line per shell followed by its rows in fixed %15.9f columns.
func BasisToNwchem(symb string, basis Basis) string {
	symb = StdSymbol(symb)

	type counts struct{ prims, ctrs int }
	perL := map[int]*counts{}
	var ls []int
	for _, sh := range basis {
		c, ok := perL[sh.L]
		if !ok {
			c = &counts{}
			perL[sh.L] = c
			ls = append(ls, sh.L)
		}
		c.prims += sh.NPrim()
		c.ctrs += sh.NCtr()
	}
	slices.Sort(ls)
	var nprims, nctrs []string
	for _, l := range ls {
		letter := strings.ToLower(SPDF[l])
		nprims = append(nprims, strconv.Itoa(perL[l].prims)+letter)
		nctrs = append(nctrs, strconv.Itoa(perL[l].ctrs)+letter)
	}
	res := []string{fmt.Sprintf("#BASIS SET: (%s) -> [%s]",
		strings.Join(nprims, ","), strings.Join(nctrs, ","))}

	for _, sh := range basis {
		res = append(res, fmt.Sprintf("%-2s    %s", symb, SPDF[sh.L]))
		for _, row := range sh.Rows {
			cols := make([]string, len(row))
			for i, x := range row {
				cols[i] = fmt.Sprintf("%15.9f", x)
			}
			res = append(res, strings.Join(cols, " "))
		}
	}
	return strings.Join(res, "\n")
}

// EcpToNwchem renders an Ecp back to NWChem text.
func EcpToNwchem(symb string, ecp Ecp) string {
	symb = StdSymbol(symb)
	res := []string{fmt.Sprintf("%-2s nelec %d", symb, ecp.Nelec)}
	for _, blk := range ecp.Blocks {
		if blk.L == -1 {
			res = append(res, fmt.Sprintf("%-2s ul", symb))
		} else {
			res = append(res, fmt.Sprintf("%-2s %s", symb, strings.ToLower(SPDF[blk.L])))
		}
		for power, rows := range blk.ByPower {
			for _, row := range rows {
				res = append(res, fmt.Sprintf("%d    %15.9f  %15.9f", power, row[0], row[1]))
			}
		}
	}
	return strings.Join(res, "\n")
}
