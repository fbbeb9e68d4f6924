package main

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/clems4ever/diffable/formatter"
)

func main() {
	// Paths are relative to the repository root
	pattern := "formatter/testdata/*.html"

	inputs, err := filepath.Glob(pattern)
	if err != nil {
		log.Fatalf("Bad pattern %s: %v", pattern, err)
	}
	if len(inputs) == 0 {
		log.Fatalf("No inputs match %s. Please run this command from the repository root.", pattern)
	}

	opts := formatter.DefaultOptions()
	for _, inputFile := range inputs {
		inputBytes, err := os.ReadFile(inputFile)
		if err != nil {
			log.Fatalf("Failed to read input file: %v", err)
		}

		outputFile := strings.TrimSuffix(inputFile, ".html") + ".golden"
		fmt.Printf("Writing %s...\n", outputFile)
		formatted := formatter.FormatMarkup(string(inputBytes), opts)
		if err := os.WriteFile(outputFile, []byte(formatted), 0644); err != nil {
			log.Fatalf("Failed to write output file: %v", err)
		}
	}

	fmt.Println("Done. Golden files updated.")
}
