package check

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/urfave/cli/v2"
	"gopkg.in/yaml.v3"

	"github.com/fsociety-ai/doc-verifier/models"
	"github.com/fsociety-ai/doc-verifier/pkg/analytics"
	"github.com/fsociety-ai/doc-verifier/pkg/verifier"
)

func Action(c *cli.Context) error {
	logLevel := slog.LevelInfo
	if c.Bool("quiet") {
		logLevel = slog.LevelError
	}
	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: logLevel}))
	startTime := time.Now()

	path := c.Args().First()
	if path == "" {
		fmt.Fprintln(os.Stderr, "Error: No document provided")
		fmt.Fprintln(os.Stderr, "")
		fmt.Fprintln(os.Stderr, "Usage:")
		fmt.Fprintln(os.Stderr, `  doc-verifier check-sources statement.txt`)
		fmt.Fprintln(os.Stderr, `  doc-verifier check-sources --config config.yaml filing.pdf`)
		os.Exit(1)
	}

	cfg, err := models.LoadConfig(c.String("config"))
	if err != nil {
		logger.Error("failed to load config", "error", err)
		os.Exit(2)
	}
	if len(cfg.TrustedSources) == 0 {
		fmt.Fprintln(os.Stderr, "Error: No trusted sources configured")
		os.Exit(1)
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		logger.Error("failed to read document", "error", err, "path", path)
		os.Exit(2)
	}

	// No blob store or verdict sink: this command only exercises the matcher.
	svc := verifier.New(cfg, nil, nil, logger)
	defer svc.Close()

	extraction := svc.ExtractText(filepath.Base(path), raw)
	result := svc.CheckAgainstTrustedSources(c.Context, extraction.Text)

	a := &analytics.Analytics{}
	output := Output{
		Status:      "success",
		Match:       result,
		TopKeywords: a.TopNWords(extraction.Text, 10),
		Stats: Stats{
			SourcesConfigured: len(cfg.TrustedSources),
			PhrasesChecked:    len(result.VerifiedPhrases) + len(result.UnverifiedPhrases),
			TotalTimeSeconds:  time.Since(startTime).Seconds(),
		},
	}
	if result.Error != "" {
		output.Status = "degraded"
	}

	return printOutput(output, c.String("output-format"))
}

func printOutput(output Output, format string) error {
	switch strings.ToLower(format) {
	case "yaml":
		data, err := yaml.Marshal(output)
		if err != nil {
			return fmt.Errorf("failed to marshal output: %w", err)
		}
		fmt.Println(string(data))
	default:
		data, err := json.MarshalIndent(output, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal output: %w", err)
		}
		fmt.Println(string(data))
	}
	return nil
}
