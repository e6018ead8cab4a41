package main

import (
	"fmt"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/fsociety-ai/doc-verifier/internal/check"
	"github.com/fsociety-ai/doc-verifier/internal/db"
	"github.com/fsociety-ai/doc-verifier/internal/fetch"
	"github.com/fsociety-ai/doc-verifier/internal/verify"
	"github.com/fsociety-ai/doc-verifier/pkg/help"
)

func main() {
	app := &cli.App{
		Name:  "doc-verifier",
		Usage: "Verify document authenticity against trusted sources",
		Commands: []*cli.Command{
			{
				Name:      "verify",
				Usage:     "Run the full verification pipeline on a document",
				ArgsUsage: "<path>",
				Flags: []cli.Flag{
					configFlag(),
					outputFormatFlag(),
					quietFlag(),
					&cli.BoolFlag{
						Name:  "no-db",
						Usage: "Skip writing the verdict to the database",
					},
				},
				Action: verify.Action,
			},
			{
				Name:      "check-sources",
				Usage:     "Match a document's key phrases against trusted sources only",
				ArgsUsage: "<path>",
				Flags: []cli.Flag{
					configFlag(),
					outputFormatFlag(),
					quietFlag(),
				},
				Action: check.Action,
			},
			{
				Name:  "fetch",
				Usage: "Fetch reference URLs concurrently and report per-URL outcomes",
				Flags: []cli.Flag{
					configFlag(),
					outputFormatFlag(),
					quietFlag(),
					&cli.StringFlag{
						Name:  "urls",
						Usage: "Comma-separated list of URLs to fetch",
					},
					&cli.BoolFlag{
						Name:  "trusted",
						Usage: "Fetch every configured trusted source",
					},
					&cli.IntFlag{
						Name:  "workers",
						Usage: "Number of concurrent fetch workers",
					},
				},
				Action: fetch.Action,
			},
			{
				Name:  "db",
				Usage: "Inspect stored verdicts",
				Subcommands: []*cli.Command{
					{
						Name:  "verdicts",
						Usage: "List stored verdicts, newest first",
						Flags: []cli.Flag{
							configFlag(),
							&cli.IntFlag{
								Name:  "limit",
								Usage: "Maximum number of verdicts to list",
								Value: 50,
							},
						},
						Action: db.VerdictsAction,
					},
					{
						Name:      "verdict",
						Usage:     "Show the stored verdict for one document",
						ArgsUsage: "<document-id>",
						Flags:     []cli.Flag{configFlag()},
						Action:    db.VerdictAction,
					},
				},
			},
			{
				Name:  "coldstart",
				Usage: "Print a machine-readable quick start guide",
				Action: func(c *cli.Context) error {
					fmt.Print(help.ColdstartYAML)
					return nil
				},
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func configFlag() cli.Flag {
	return &cli.StringFlag{
		Name:    "config",
		Aliases: []string{"c"},
		Usage:   "Path to the YAML config file",
	}
}

func outputFormatFlag() cli.Flag {
	return &cli.StringFlag{
		Name:  "output-format",
		Usage: "Output format: json or yaml",
		Value: "json",
	}
}

func quietFlag() cli.Flag {
	return &cli.BoolFlag{
		Name:  "quiet",
		Usage: "Only log errors",
	}
}
