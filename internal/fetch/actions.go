package fetch

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/urfave/cli/v2"
	"gopkg.in/yaml.v3"

	"github.com/fsociety-ai/doc-verifier/internal/common"
	"github.com/fsociety-ai/doc-verifier/models"
	"github.com/fsociety-ai/doc-verifier/pkg/analytics"
	"github.com/fsociety-ai/doc-verifier/pkg/detector"
	"github.com/fsociety-ai/doc-verifier/pkg/fetcher"
	"github.com/fsociety-ai/doc-verifier/pkg/mapreduce"
	"github.com/fsociety-ai/doc-verifier/pkg/webtext"
)

func Action(c *cli.Context) error {
	logLevel := slog.LevelInfo
	if c.Bool("quiet") {
		logLevel = slog.LevelError
	}
	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: logLevel}))
	startTime := time.Now()

	cfg, err := models.LoadConfig(c.String("config"))
	if err != nil {
		logger.Error("failed to load config", "error", err)
		os.Exit(2)
	}
	if c.IsSet("workers") {
		cfg.Fetch.Workers = c.Int("workers")
	}

	var urls []string
	if c.IsSet("urls") {
		urls = strings.Split(c.String("urls"), ",")
	} else if c.Bool("trusted") {
		urls = cfg.TrustedSources
	}
	if len(urls) == 0 {
		fmt.Fprintln(os.Stderr, "Error: No URLs provided")
		fmt.Fprintln(os.Stderr, "")
		fmt.Fprintln(os.Stderr, "Usage:")
		fmt.Fprintln(os.Stderr, `  doc-verifier fetch --urls "https://www.irs.gov,https://www.sec.gov"`)
		fmt.Fprintln(os.Stderr, `  doc-verifier fetch --trusted    # Fetch every configured trusted source`)
		os.Exit(1)
	}

	// Sanitize and validate all URLs before fetching (fail fast).
	sanitized, invalid := common.SanitizeAndValidateURLs(urls)
	if len(invalid) > 0 {
		fmt.Fprintf(os.Stderr, "Error: %d URL(s) are malformed (even after cleanup):\n", len(invalid))
		for _, badURL := range invalid {
			fmt.Fprintf(os.Stderr, "  - %s\n", badURL)
		}
		os.Exit(1)
	}

	f := fetcher.New(cfg.Fetch, logger)
	defer f.Close()

	results := f.FetchMany(c.Context, sanitized)

	output := FinalOutput{
		Status:  "success",
		Results: make([]ResultOutput, 0, len(results)),
	}
	a := &analytics.Analytics{}
	var wordCounts []map[string]int
	var successCount, failedCount int
	for _, r := range results {
		ro := ResultOutput{
			URL:         r.URL,
			Status:      "success",
			StatusCode:  r.StatusCode,
			ContentType: r.ContentType,
			Chars:       len(r.Body),
			Source:      detector.Profile(r.URL),
			Note:        r.Note,
		}
		if !r.Success {
			ro.Status = "failed"
			ro.Error = r.Error
			failedCount++
		} else {
			successCount++
			wordCounts = append(wordCounts, mapreduce.Map(pageText(r), a))
		}
		output.Results = append(output.Results, ro)
	}
	if failedCount > 0 {
		output.Status = "partial"
	}
	if successCount == 0 {
		output.Status = "failed"
	}
	output.Stats = Stats{
		TotalURLs:        len(sanitized),
		Successful:       successCount,
		Failed:           failedCount,
		TotalTimeSeconds: time.Since(startTime).Seconds(),
		TopKeywords:      mapreduce.TopKeywords(mapreduce.Reduce(wordCounts), 25),
	}

	return printOutput(output, c.String("output-format"))
}

// pageText returns the readable text of a fetch result. HTML bodies go
// through article extraction; everything else already holds plain text.
func pageText(r fetcher.FetchResult) string {
	if strings.Contains(r.ContentType, "html") {
		if _, text, err := webtext.FromHTML(r.URL, r.Body); err == nil {
			return text
		}
	}
	return r.Body
}

func printOutput(output FinalOutput, format string) error {
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
