package cmd

import (
	"fmt"
	"io/ioutil"
	"os"

	"github.com/urfave/cli"

	"github.com/arr-ai/regexphrase/parser"
)

var outFile string
var grammarCommand = cli.Command{
	Name:    "grammar",
	Aliases: []string{"g"},
	Usage:   "Print the grammar of canonical phrases",
	Action:  grammar,
	Flags: []cli.Flag{
		cli.StringFlag{
			Name:        "output",
			Usage:       "filename to write the output to",
			Required:    false,
			TakesFile:   true,
			Destination: &outFile,
		},
	},
}

func grammar(c *cli.Context) error {
	p, err := parser.New()
	if err != nil {
		return err
	}
	out := []byte(fmt.Sprintf("%s\n", p.Syntax()))

	switch outFile {
	case "", "-":
		_, err = os.Stdout.Write(out)
	default:
		err = ioutil.WriteFile(outFile, out, 0644)
	}
	return err
}
