package cmd

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/sirupsen/logrus"
	"github.com/urfave/cli"

	"github.com/arr-ai/regexphrase/ast"
	"github.com/arr-ai/regexphrase/canon"
	"github.com/arr-ai/regexphrase/explain"
	"github.com/arr-ai/regexphrase/pipeline"
)

var testText string
var debugMode bool
var explainMode bool
var interactiveMode bool
var verboseMode bool
var noColor bool
var maxPasses int
var historyFile string

var translateFlags = []cli.Flag{
	cli.StringFlag{
		Name:        "test, t",
		Usage:       "check whether the regex matches all of `TEXT`",
		Destination: &testText,
	},
	cli.BoolFlag{
		Name:        "debug, d",
		Usage:       "show the normalized phrase, syntax tree and raw regex",
		Destination: &debugMode,
	},
	cli.BoolFlag{
		Name:        "explain, e",
		Usage:       "explain step by step how the regex was built",
		Destination: &explainMode,
	},
	cli.BoolFlag{
		Name:        "interactive, i",
		Usage:       "read phrases from an interactive prompt",
		Destination: &interactiveMode,
	},
	cli.BoolFlag{
		Name:        "verbose, v",
		Usage:       "verbose logging",
		Destination: &verboseMode,
	},
	cli.BoolFlag{
		Name:        "no-color",
		Usage:       "disable coloured output",
		Destination: &noColor,
	},
	cli.IntFlag{
		Name:        "max-passes",
		Usage:       "limit on regex simplification passes",
		EnvVar:      "REGEXPHRASE_MAX_PASSES",
		Value:       canon.DefaultMaxPasses,
		Destination: &maxPasses,
	},
	cli.StringFlag{
		Name:        "history",
		Usage:       "interactive history `FILE`",
		EnvVar:      "REGEXPHRASE_HISTORY",
		Value:       ".regexphrase_history",
		TakesFile:   true,
		Destination: &historyFile,
	},
}

func setup() (*pipeline.Pipeline, error) {
	if verboseMode {
		logrus.SetLevel(logrus.TraceLevel)
	}
	if noColor {
		color.NoColor = true
	}
	return pipeline.New(pipeline.MaxPasses(maxPasses))
}

func translateAction(c *cli.Context) error {
	p, err := setup()
	if err != nil {
		return err
	}
	s := session{pipeline: p, out: os.Stdout, debug: debugMode, explain: explainMode, test: testText}

	if interactiveMode {
		return s.repl(historyFile)
	}

	phrase := strings.TrimSpace(strings.Join(c.Args(), " "))
	if phrase == "" {
		return cli.NewExitError(warning("no phrase given"), 2)
	}
	if err := s.convert(phrase); err != nil {
		return cli.NewExitError("", 1)
	}
	return nil
}

// session carries the output options shared by one-shot and interactive use.
type session struct {
	pipeline *pipeline.Pipeline
	out      io.Writer
	debug    bool
	explain  bool
	test     string
}

func (s session) section(title, body string) {
	fmt.Fprintf(s.out, "%s\n%s\n", heading(title), strings.TrimRight(body, "\n"))
}

// convert prints the regex for phrase, or the error that stopped it. The
// error is returned too so callers can set an exit status.
func (s session) convert(phrase string) error {
	trace, err := s.pipeline.Trace(phrase)
	if s.debug {
		s.debugTrace(trace)
	}
	if err != nil {
		fmt.Fprintln(s.out, failure("error: "+err.Error()))
		if text, ok := context(err); ok {
			fmt.Fprintf(s.out, "  %s\n", text)
		}
		return err
	}

	fmt.Fprintf(s.out, "%s %s\n", success("regex:"), trace.Final)

	if s.explain {
		for _, sec := range explain.Explain(trace) {
			s.section(sec.Title, sec.Body)
		}
	}
	if s.test != "" {
		return s.check(trace.Final)
	}
	return nil
}

func (s session) debugTrace(trace pipeline.Trace) {
	s.section("Phrase", trace.Phrase)
	s.section("Normalized", trace.Normalized)
	if trace.Tree == nil {
		return
	}
	s.section("Syntax tree", ast.BuildTreeView(trace.Tree, false))
	if trace.Raw == "" {
		return
	}
	s.section("Raw regex", trace.Raw)
	s.section("Final regex", trace.Canon.Regex)
}

func (s session) check(regex string) error {
	match, err := pipeline.FullMatch(regex, s.test)
	switch {
	case err != nil:
		fmt.Fprintln(s.out, warning("cannot test: "+err.Error()))
		return err
	case match:
		fmt.Fprintln(s.out, success(fmt.Sprintf("✓ %q matches", s.test)))
	default:
		fmt.Fprintln(s.out, failure(fmt.Sprintf("✗ %q does not match", s.test)))
	}
	return nil
}
