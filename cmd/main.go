package cmd

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/urfave/cli"
)

type VersionTags struct {
	Version   string
	GitCommit string
	BuildDate string
	BuildOS   string
}

func Main(info VersionTags) {
	app := cli.NewApp()

	app.EnableBashCompletion = true

	app.Name = "regexphrase"
	app.Usage = "turn English phrases into regular expressions"
	app.UsageText = "regexphrase [options] phrase...\n   regexphrase --interactive"
	app.Version = info.Version

	cli.VersionPrinter = func(c *cli.Context) {
		fmt.Fprintf(c.App.Writer, "%s %s (commit %s, built %s on %s)\n",
			c.App.Name, info.Version, info.GitCommit, info.BuildDate, info.BuildOS)
	}

	app.Flags = translateFlags
	app.Action = translateAction
	app.Commands = []cli.Command{batchCommand, grammarCommand}

	err := app.Run(os.Args)
	if err != nil {
		logrus.Fatal(err)
	}
}
