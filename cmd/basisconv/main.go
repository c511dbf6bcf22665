// main.go --  This file is part of goBasis project.
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
package main

import (
	"fmt"
	"log"
	"os"

	"github.com/alecthomas/kong"
	"github.com/goccy/go-yaml"

	"github.com/gnibeil/gobasis"
)

var cli struct {
	File    string `arg:"" type:"existingfile" help:"NWChem basis or ECP file."`
	Element string `arg:"" help:"Element symbol to extract."`
	Ecp     bool   `help:"Extract the effective core potential instead of the basis set."`
	Format  string `enum:"nwchem,yaml" default:"nwchem" help:"Output format (nwchem or yaml)."`
	Output  string `short:"o" placeholder:"PATH" help:"Write to a file instead of stdout."`
}

var (
	ErrorLogger  = log.New(os.Stderr, "ERROR: ", log.Lshortfile)
	OutputLogger = log.New(os.Stdout, "", 0)
)

func main() {
	kong.Parse(&cli,
		kong.Name("basisconv"),
		kong.Description("Extract one element from an NWChem basis or ECP file and print it normalized."),
		kong.UsageOnError(),
	)

	var text string
	if cli.Ecp {
		ecp, err := gobasis.LoadEcp(cli.File, cli.Element)
		if err != nil {
			ErrorLogger.Fatal(err)
		}
		text = render(ecp, func() string { return gobasis.EcpToNwchem(cli.Element, ecp) })
	} else {
		b, err := gobasis.LoadBasis(cli.File, cli.Element)
		if err != nil {
			ErrorLogger.Fatal(err)
		}
		text = render(b, func() string { return gobasis.BasisToNwchem(cli.Element, b) })
	}

	if cli.Output != "" {
		if err := os.WriteFile(cli.Output, []byte(text+"\n"), 0644); err != nil {
			ErrorLogger.Fatal(err)
		}
		fmt.Println("Output file: ", cli.Output)
		return
	}
	OutputLogger.Println(text)
}

func render(v any, nwchem func() string) string {
	if cli.Format == "yaml" {
		out, err := yaml.Marshal(v)
		if err != nil {
			ErrorLogger.Fatal(err)
		}
		return string(out)
	}
	return nwchem()
}
