package verify

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
	"github.com/fsociety-ai/doc-verifier/pkg/db"
	"github.com/fsociety-ai/doc-verifier/pkg/storage"
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
		fmt.Fprintln(os.Stderr, `  doc-verifier verify contract.pdf`)
		fmt.Fprintln(os.Stderr, `  doc-verifier verify --config config.yaml --output-format yaml report.docx`)
		os.Exit(1)
	}

	cfg, err := models.LoadConfig(c.String("config"))
	if err != nil {
		logger.Error("failed to load config", "error", err)
		os.Exit(2)
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		logger.Error("failed to read document", "error", err, "path", path)
		os.Exit(2)
	}

	store, err := storage.NewFromConfig(cfg.Storage)
	if err != nil {
		logger.Error("failed to initialize storage", "error", err)
		os.Exit(2)
	}
	if ms, ok := store.(*storage.MinioStore); ok {
		if err := ms.EnsureBucket(c.Context); err != nil {
			logger.Error("failed to ensure storage bucket", "error", err)
			os.Exit(2)
		}
	}

	var sink *db.DB
	if !c.Bool("no-db") {
		sink, err = db.Open(cfg.Database.Path)
		if err != nil {
			logger.Error("failed to open database", "error", err)
			os.Exit(2)
		}
		defer sink.Close()
	}

	svc := verifier.New(cfg, store, sink, logger)
	defer svc.Close()

	verdict, err := svc.Verify(c.Context, filepath.Base(path), raw)
	if err != nil {
		logger.Error("verification failed", "error", err, "path", path)
		os.Exit(2)
	}

	extraction := svc.ExtractText(filepath.Base(path), raw)
	a := &analytics.Analytics{}

	output := Output{
		Status:      "success",
		Verdict:     verdict,
		TopKeywords: a.TopNWords(extraction.Text, 10),
		Stats: Stats{
			TotalTimeSeconds: time.Since(startTime).Seconds(),
			ExtractedChars:   len(extraction.Text),
		},
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
