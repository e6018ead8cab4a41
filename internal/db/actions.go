package db

import (
	"fmt"
	"strings"

	"github.com/urfave/cli/v2"

	"github.com/fsociety-ai/doc-verifier/models"
	dbpkg "github.com/fsociety-ai/doc-verifier/pkg/db"
)

func VerdictsAction(c *cli.Context) error {
	database, err := openFromConfig(c)
	if err != nil {
		return err
	}
	defer database.Close()

	verdicts, err := database.ListVerdicts(c.Int("limit"))
	if err != nil {
		return fmt.Errorf("failed to list verdicts: %w", err)
	}

	if len(verdicts) == 0 {
		fmt.Println("No verdicts found")
		return nil
	}

	fmt.Printf("%-38s %-24s %-10s %-6s %-18s %-20s\n",
		"Document ID", "Filename", "Authentic", "Conf", "Category", "Stored")
	fmt.Println(strings.Repeat("-", 120))

	for _, v := range verdicts {
		fmt.Printf("%-38s %-24s %-10t %-6.2f %-18s %-20s\n",
			v.DocumentID,
			truncate(v.Filename, 24),
			v.IsAuthentic,
			v.Confidence,
			v.Category,
			v.StoredAt.Format("2006-01-02 15:04:05"),
		)
	}

	fmt.Printf("\nTotal: %d verdicts\n", len(verdicts))
	fmt.Printf("\nTip: Use 'doc-verifier db verdict <document-id>' to see details\n")

	return nil
}

// VerdictAction shows the stored record for a single document.
func VerdictAction(c *cli.Context) error {
	if c.NArg() == 0 {
		return fmt.Errorf("no document ID provided. Run 'doc-verifier db verdicts' to list them")
	}

	database, err := openFromConfig(c)
	if err != nil {
		return err
	}
	defer database.Close()

	v, err := database.GetVerdict(c.Args().First())
	if err != nil {
		return fmt.Errorf("failed to get verdict: %w", err)
	}

	fmt.Printf("Document %s\n", v.DocumentID)
	fmt.Println(strings.Repeat("=", 60))
	fmt.Printf("Filename:     %s\n", v.Filename)
	fmt.Printf("File type:    %s (%d bytes)\n", v.FileType, v.FileSize)
	fmt.Printf("File hash:    %s\n", v.FileHash)
	fmt.Printf("Authentic:    %t\n", v.IsAuthentic)
	fmt.Printf("Confidence:   %.2f\n", v.Confidence)
	fmt.Printf("Category:     %s\n", v.Category)
	fmt.Printf("Match score:  %.2f\n", v.MatchScore)
	fmt.Printf("Stored:       %s\n", v.StoredAt.Format("2006-01-02 15:04:05"))
	if v.StoragePath != "" {
		fmt.Printf("Storage path: %s\n", v.StoragePath)
	}

	fmt.Printf("\nIssues (%d):\n", len(v.Issues))
	fmt.Println(strings.Repeat("-", 60))
	if len(v.Issues) == 0 {
		fmt.Println("  none")
	}
	for _, issue := range v.Issues {
		fmt.Printf("  - %s\n", issue)
	}

	return nil
}

func openFromConfig(c *cli.Context) (*dbpkg.DB, error) {
	cfg, err := models.LoadConfig(c.String("config"))
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	database, err := dbpkg.Open(cfg.Database.Path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	return database, nil
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n-3] + "..."
}
