package gobasis

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

const sto3gO = `O    S
      130.7093200              0.15432897
       23.8088610              0.53532814
        6.4436083              0.44463454
`

func TestParseBasis(t *testing.T) {
	got, err := ParseBasis(sto3gO, "")
	if err != nil {
		t.Fatal(err)
	}
	want := Basis{
		{L: 0, Rows: [][]float64{
			{130.7093200, 0.15432897},
			{23.8088610, 0.53532814},
			{6.4436083, 0.44463454},
		}},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got %v, wanted %v\n", got, want)
	}
}

func TestParseBasisSP(t *testing.T) {
	text := `LI   SP
      2.0   0.1   0.2
      1.0   0.3   0.4
`
	got, err := ParseBasis(text, "")
	if err != nil {
		t.Fatal(err)
	}
	want := Basis{
		{L: 0, Rows: [][]float64{{2.0, 0.1}, {1.0, 0.3}}},
		{L: 1, Rows: [][]float64{{2.0, 0.2}, {1.0, 0.4}}},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got %v, wanted %v\n", got, want)
	}
}

func TestParseBasisFortranExponents(t *testing.T) {
	got, err := ParseBasis("O    S\n0.1588D+03 0.1543D+00\n", "")
	if err != nil {
		t.Fatal(err)
	}
	want, err := ParseBasis("O    S\n0.1588e+03 0.1543e+00\n", "")
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got %v, wanted %v\n", got, want)
	}
}

// Shells arrive D, S, P, S and must come out S, S, P, D with the two S
// shells keeping their relative order.
func TestParseBasisShellOrder(t *testing.T) {
	text := `O    D
      5.0   1.0
O    S
      4.0   1.0
O    P
      3.0   1.0
O    S
      2.0   1.0
`
	got, err := ParseBasis(text, "")
	if err != nil {
		t.Fatal(err)
	}
	wantL := []int{0, 0, 1, 2}
	wantExp := []float64{4.0, 2.0, 3.0, 5.0}
	for i, sh := range got {
		if sh.L != wantL[i] || sh.Rows[0][0] != wantExp[i] {
			t.Errorf("shell %d: got l=%d exp=%g, wanted l=%d exp=%g\n",
				i, sh.L, sh.Rows[0][0], wantL[i], wantExp[i])
		}
	}
}

const archive = `# basis archive for testing
# BASIS SET: (3s) -> [1s]
H    S
      3.42525091             0.15432897
      0.62391373             0.53532814
# BASIS SET: (3s,3p) -> [1s,1p]
O    S
      130.7093200            0.15432897
O    P
      5.0331513              0.15591627
END
`

func TestParseBasisArchive(t *testing.T) {
	got, err := ParseBasis(archive, "o")
	if err != nil {
		t.Fatal(err)
	}
	want := Basis{
		{L: 0, Rows: [][]float64{{130.7093200, 0.15432897}}},
		{L: 1, Rows: [][]float64{{5.0331513, 0.15591627}}},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got %v, wanted %v\n", got, want)
	}

	if _, err := ParseBasis(archive, "He"); !errors.Is(err, ErrSegmentNotFound) {
		t.Errorf("got %v, wanted ErrSegmentNotFound\n", err)
	}
}

func TestParseBasisErrors(t *testing.T) {
	tests := []struct {
		msg string
		in  string
		we  error
	}{
		{"unknown shell letter", "O    Z\n1.0 0.5\n", ErrUnknownShell},
		{"data before header", "1.0 0.5\nO    S\n", ErrMalformedData},
		{"non-numeric token", "O    S\n1.0 abc\n", ErrMalformedData},
		{"missing coefficient", "O    S\n1.0\n", ErrMalformedData},
		{"short SP row", "O    SP\n1.0 0.5\n", ErrMalformedData},
	}
	for _, test := range tests {
		_, err := ParseBasis(test.in, "")
		if !errors.Is(err, test.we) {
			t.Errorf("%s: got %v, wanted %v\n", test.msg, err, test.we)
		}
	}
}

func TestBasisToNwchem(t *testing.T) {
	b, err := ParseBasis(sto3gO, "")
	if err != nil {
		t.Fatal(err)
	}
	got := BasisToNwchem("O", b)
	want := `#BASIS SET: (3s) -> [1s]
O     S
  130.709320000     0.154328970
   23.808861000     0.535328140
    6.443608300     0.444634540`
	if got != want {
		t.Errorf("got:\n%s\nwanted:\n%s\n", got, want)
	}
}

func TestBasisRoundTrip(t *testing.T) {
	texts := []string{sto3gO,
		"LI   SP\n2.0 0.1 0.2\n1.0 0.3 0.4\nLI   D\n0.5 1.0\n"}
	for _, text := range texts {
		b1, err := ParseBasis(text, "")
		if err != nil {
			t.Fatal(err)
		}
		b2, err := ParseBasis(BasisToNwchem("Li", b1), "")
		if err != nil {
			t.Fatal(err)
		}
		if !EqualBasis(b1, b2, 1e-9) {
			t.Errorf("round trip: got %v, wanted %v\n", b2, b1)
		}
	}
}

const naEcp = `NA NELEC 10
NA UL
1 0.5 10.0
NA S
0 1.0 5.0
`

func TestParseEcp(t *testing.T) {
	got, err := ParseEcp(naEcp, "Na")
	if err != nil {
		t.Fatal(err)
	}
	want := Ecp{
		Nelec: 10,
		Blocks: []EcpBlock{
			{L: -1, ByPower: [4][][]float64{nil, {{0.5, 10.0}}, nil, nil}},
			{L: 0, ByPower: [4][][]float64{{{1.0, 5.0}}, nil, nil, nil}},
		},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got %v, wanted %v\n", got, want)
	}
}

// The UL block must come first even when it is written after the angular
// blocks.
func TestParseEcpBlockOrder(t *testing.T) {
	text := `K NELEC 18
K P
2 1.0 1.5
K S
2 2.0 2.5
K UL
2 3.0 3.5
`
	got, err := ParseEcp(text, "K")
	if err != nil {
		t.Fatal(err)
	}
	wantL := []int{-1, 0, 1}
	for i, blk := range got.Blocks {
		if blk.L != wantL[i] {
			t.Errorf("block %d: got l=%d, wanted l=%d\n", i, blk.L, wantL[i])
		}
	}
}

func TestParseEcpErrors(t *testing.T) {
	tests := []struct {
		msg string
		in  string
		we  error
	}{
		{"missing nelec", "NA UL\n1 0.5 10.0\n", ErrMissingNelec},
		{"unknown block letter", "NA NELEC 10\nNA Q\n1 0.5 10.0\n", ErrUnknownShell},
		{"data before block", "NA NELEC 10\n1 0.5 10.0\nNA UL\n", ErrMalformedData},
		{"power out of range", "NA NELEC 10\nNA UL\n7 0.5 10.0\n", ErrMalformedData},
		{"non-numeric token", "NA NELEC 10\nNA UL\n1 x 10.0\n", ErrMalformedData},
	}
	for _, test := range tests {
		_, err := ParseEcp(test.in, "")
		if !errors.Is(err, test.we) {
			t.Errorf("%s: got %v, wanted %v\n", test.msg, err, test.we)
		}
	}
}

func TestEcpToNwchem(t *testing.T) {
	ecp, err := ParseEcp(naEcp, "Na")
	if err != nil {
		t.Fatal(err)
	}
	got := EcpToNwchem("NA", ecp)
	want := `Na nelec 10
Na ul
1        0.500000000     10.000000000
Na s
0        1.000000000      5.000000000`
	if got != want {
		t.Errorf("got:\n%s\nwanted:\n%s\n", got, want)
	}
}

func TestEcpRoundTrip(t *testing.T) {
	e1, err := ParseEcp(naEcp, "Na")
	if err != nil {
		t.Fatal(err)
	}
	e2, err := ParseEcp(EcpToNwchem("Na", e1), "Na")
	if err != nil {
		t.Fatal(err)
	}
	if !EqualEcp(e1, e2, 1e-9) {
		t.Errorf("round trip: got %v, wanted %v\n", e2, e1)
	}
}

func TestLoadEcp(t *testing.T) {
	file := `LANL2DZ ECP test data
 ECP
NA nelec 10
NA ul
1      175.5502590            -10.0000000
NA S
0      243.3605846              3.0000000
K nelec 18
K ul
1      250.0000000            -18.0000000
END
`
	path := filepath.Join(t.TempDir(), "lanl2dz.dat")
	if err := os.WriteFile(path, []byte(file), 0644); err != nil {
		t.Fatal(err)
	}

	got, err := LoadEcp(path, "Na")
	if err != nil {
		t.Fatal(err)
	}
	if got.Nelec != 10 || len(got.Blocks) != 2 {
		t.Errorf("got nelec=%d with %d blocks, wanted 10 with 2\n",
			got.Nelec, len(got.Blocks))
	}
	// the scan must stop at the K header
	if got.Blocks[0].L != -1 || got.Blocks[0].ByPower[1][0][1] != -10.0 {
		t.Errorf("wrong UL block: %v\n", got.Blocks[0])
	}

	if _, err := LoadEcp(path, "Fe"); !errors.Is(err, ErrSegmentNotFound) {
		t.Errorf("got %v, wanted ErrSegmentNotFound\n", err)
	}
}

func TestLoadBasis(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sto3g.dat")
	if err := os.WriteFile(path, []byte(archive), 0644); err != nil {
		t.Fatal(err)
	}
	got, err := LoadBasis(path, "H")
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 1 || got[0].NPrim() != 2 {
		t.Errorf("got %v, wanted one S shell with two primitives\n", got)
	}
}
