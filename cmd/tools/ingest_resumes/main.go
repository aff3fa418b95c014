// Command ingest_resumes loads a resume CSV into the Qdrant collection the
// pipeline searches. Expected columns: Category, Resume. One point is
// upserted per row with payload {row_index, category, source, text}.
//
// Usage:
//
//	ingest_resumes --csv data/resumes.csv [--batch 32] [--max-chars 6000]
//
// Requires QDRANT_URL and GEMINI_API_KEY (and optionally QDRANT_API_KEY,
// QDRANT_COLLECTION_NAME) in the environment or a .env file.
package main

import (
	"context"
	"encoding/csv"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/google/uuid"
	"github.com/joho/godotenv"

	"github.com/jonathan/hr-copilot/internal/config"
	"github.com/jonathan/hr-copilot/internal/vectorsearch"
)

func main() {
	_ = godotenv.Load()

	csvPath := flag.String("csv", "", "Path to the resume CSV file (required)")
	batchSize := flag.Int("batch", 32, "Points per upsert batch")
	maxChars := flag.Int("max-chars", 6000, "Truncate resume text to this many characters before embedding")
	flag.Parse()

	if *csvPath == "" {
		fmt.Fprintln(os.Stderr, "Usage: ingest_resumes --csv <path> [--batch N] [--max-chars N]")
		os.Exit(1)
	}

	if err := run(context.Background(), *csvPath, *batchSize, *maxChars); err != nil {
		log.Fatalf("ingestion failed: %v", err)
	}
}

func run(ctx context.Context, csvPath string, batchSize, maxChars int) error {
	cfg, err := config.Load("")
	if err != nil {
		return err
	}
	if cfg.QdrantURL == "" {
		return fmt.Errorf("QDRANT_URL environment variable is required")
	}
	apiKey := cfg.GeminiAPIKey
	if apiKey == "" {
		apiKey = os.Getenv("GEMINI_API_KEY")
	}
	if apiKey == "" {
		return fmt.Errorf("GEMINI_API_KEY environment variable is required")
	}

	embedder, err := vectorsearch.NewGeminiEmbedder(ctx, apiKey, "")
	if err != nil {
		return err
	}
	defer func() { _ = embedder.Close() }()

	client := vectorsearch.NewClient(cfg.QdrantURL, cfg.QdrantAPIKey, cfg.QdrantCollection)

	file, err := os.Open(csvPath)
	if err != nil {
		return fmt.Errorf("failed to open CSV: %w", err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		return fmt.Errorf("failed to read CSV header: %w", err)
	}
	categoryCol, textCol, err := resolveColumns(header)
	if err != nil {
		return err
	}

	source := csvPath
	var batch []vectorsearch.Point
	rowIndex := 0
	total := 0
	collectionReady := false

	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return fmt.Errorf("failed to read CSV row %d: %w", rowIndex, err)
		}
		if len(record) <= max(categoryCol, textCol) {
			rowIndex++
			continue
		}

		category := strings.TrimSpace(record[categoryCol])
		text := strings.TrimSpace(record[textCol])
		if text == "" {
			rowIndex++
			continue
		}
		if len(text) > maxChars {
			text = text[:maxChars]
		}

		vector, err := embedder.Embed(ctx, text)
		if err != nil {
			return fmt.Errorf("embedding row %d failed: %w", rowIndex, err)
		}

		if !collectionReady {
			if err := client.EnsureCollection(ctx, len(vector)); err != nil {
				return err
			}
			collectionReady = true
		}

		batch = append(batch, vectorsearch.Point{
			ID:     uuid.New().String(),
			Vector: vector,
			Payload: map[string]any{
				"row_index": rowIndex,
				"category":  category,
				"source":    source,
				"text":      text,
			},
		})
		rowIndex++

		if len(batch) >= batchSize {
			if err := client.Upsert(ctx, batch); err != nil {
				return err
			}
			total += len(batch)
			log.Printf("upserted %d points (total %d)", len(batch), total)
			batch = batch[:0]
		}
	}

	if len(batch) > 0 {
		if err := client.Upsert(ctx, batch); err != nil {
			return err
		}
		total += len(batch)
	}

	log.Printf("ingestion complete: %d points in collection %q", total, cfg.QdrantCollection)
	return nil
}

// resolveColumns finds the category and resume-text columns by header name,
// case-insensitively, falling back to the first two columns.
func resolveColumns(header []string) (categoryCol, textCol int, err error) {
	categoryCol, textCol = -1, -1
	for i, name := range header {
		switch strings.ToLower(strings.TrimSpace(name)) {
		case "category":
			categoryCol = i
		case "resume", "resume_str", "text":
			textCol = i
		}
	}
	if categoryCol >= 0 && textCol >= 0 {
		return categoryCol, textCol, nil
	}
	if len(header) >= 2 {
		return 0, 1, nil
	}
	return 0, 0, fmt.Errorf("CSV must have Category and Resume columns, got %v", header)
}
