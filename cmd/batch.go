package cmd

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/urfave/cli"

	"github.com/arr-ai/regexphrase/pipeline"
)

var inFile string

var batchCommand = cli.Command{
	Name:    "batch",
	Aliases: []string{"b"},
	Usage:   "Translate one phrase per line",
	Action:  batch,
	Flags: []cli.Flag{
		cli.StringFlag{
			Name:        "input",
			Usage:       "input phrase file, - for stdin",
			Required:    false,
			TakesFile:   true,
			Destination: &inFile,
		},
	},
}

func batch(c *cli.Context) error {
	p, err := setup()
	if err != nil {
		return err
	}

	var input io.Reader
	switch inFile {
	case "", "-":
		input = os.Stdin
	default:
		f, err := os.Open(inFile)
		if err != nil {
			return err
		}
		defer f.Close()
		input = f
	}

	failed, err := translateLines(p, input, os.Stdout)
	if err != nil {
		return err
	}
	if failed > 0 {
		return cli.NewExitError(warning(fmt.Sprintf("%d phrase(s) failed", failed)), 1)
	}
	return nil
}

// translateLines writes "regex<TAB>phrase" for every phrase read from r.
// Blank lines and lines starting with # are skipped.
func translateLines(p *pipeline.Pipeline, r io.Reader, w io.Writer) (failed int, err error) {
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		phrase := strings.TrimSpace(scanner.Text())
		if phrase == "" || strings.HasPrefix(phrase, "#") {
			continue
		}
		regex, err := p.Translate(phrase)
		if err != nil {
			failed++
			fmt.Fprintf(w, "%s\t%s\n", failure("error: "+err.Error()), phrase)
			continue
		}
		fmt.Fprintf(w, "%s\t%s\n", regex, phrase)
	}
	return failed, scanner.Err()
}
