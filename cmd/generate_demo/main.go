// Command generate_demo creates a small Spanish sample archive for
// manual testing against the reference application.
// Usage: go run cmd/generate_demo/main.go [-out path/to/demo.apkg]
package main

import (
	"flag"
	"log"
	"os"
	"path/filepath"

	"github.com/mrlokans/lexitrack/internal/anki"
)

const defaultDemoArchivePath = "./demo/demo.apkg"

func main() {
	outPath := flag.String("out", defaultDemoArchivePath, "path for the generated archive")
	flag.Parse()

	log.Printf("Generating demo archive at %s...", *outPath)

	terms := []anki.TermPair{
		{Term: "hola", Definition: "hello"},
		{Term: "gracias", Definition: "thank you"},
		{Term: "biblioteca", Definition: "library"},
		{Term: "aprender", Definition: "to learn"},
		{Term: "palabra", Definition: "word"},
		{Term: "siempre", Definition: "always", Override: &anki.SchedulingOverride{IntervalDays: 120, EaseFactor: 2650}},
		{Term: "ventana", Definition: "window", Override: &anki.SchedulingOverride{IntervalDays: 30}},
		{Term: "desayuno", Definition: "breakfast", Override: &anki.SchedulingOverride{IntervalDays: 10}},
	}

	archive, err := anki.NewWriter().WriteDeck("Lexitrack Demo", terms)
	if err != nil {
		log.Fatalf("Failed to build archive: %v", err)
	}

	if err := os.MkdirAll(filepath.Dir(*outPath), 0755); err != nil {
		log.Fatalf("Failed to create output directory: %v", err)
	}
	if err := os.WriteFile(*outPath, archive, 0644); err != nil {
		log.Fatalf("Failed to write archive: %v", err)
	}

	log.Printf("Demo archive written: %d terms, %d bytes", len(terms), len(archive))
}
