package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/IBM07/Career-Cortex/internal/ai"
	"github.com/IBM07/Career-Cortex/internal/config"
	"github.com/IBM07/Career-Cortex/internal/extract"
	"github.com/IBM07/Career-Cortex/internal/resume"
)

func main() {
	if len(os.Args) < 2 {
		fmt.Fprintln(os.Stderr, "usage: resume <resume.pdf|resume.txt>")
		os.Exit(2)
	}
	path := os.Args[1]

	cfg := config.Load()

	file, err := os.Open(path)
	if err != nil {
		log.Fatalf("❌ Failed to open %s: %v", path, err)
	}
	defer file.Close()

	var decoder resume.TextDecoder = resume.PDFDecoder{}
	if strings.EqualFold(filepath.Ext(path), ".txt") {
		decoder = resume.PlainDecoder{}
	}

	client := ai.NewOllamaClient(cfg.OllamaHost, cfg.OllamaModel,
		time.Duration(cfg.InferenceTimeoutSeconds)*time.Second)
	pipeline := resume.NewPipeline(decoder, extract.New(client))

	result := pipeline.Parse(context.Background(), file)

	fmt.Println(result.Message)
	if !result.Success {
		os.Exit(1)
	}
	for _, skill := range result.Skills {
		fmt.Printf("  • %s\n", skill)
	}
}
