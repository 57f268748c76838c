package main

import (
	"fmt"
	"os"

	"github.com/mrlokans/lexitrack/internal/cli"
	"github.com/mrlokans/lexitrack/internal/config"
	"github.com/mrlokans/lexitrack/internal/entrypoint"
)

// Version information - set at build time via ldflags
var (
	Version = "dev"
	Commit  = "unknown"
)

func main() {
	// If no arguments or "serve" command, run the HTTP server
	if len(os.Args) < 2 || os.Args[1] == "serve" {
		cfg := config.NewConfig()
		entrypoint.Run(cfg, Version)
		return
	}

	command := os.Args[1]
	args := os.Args[2:]

	switch command {
	case "anki-import":
		cmd := cli.NewAnkiImportCommand()
		if err := cmd.ParseFlags(args); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		if err := cmd.Run(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}

	case "text-import":
		cmd := cli.NewTextImportCommand()
		if err := cmd.ParseFlags(args); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		if err := cmd.Run(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}

	case "anki-export":
		cmd := cli.NewAnkiExportCommand()
		if err := cmd.ParseFlags(args); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		if err := cmd.Run(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}

	case "version":
		fmt.Printf("lexitrack %s (%s)\n", Version, Commit)

	case "help", "-h", "--help":
		printUsage()

	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n\n", command)
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println("Lexitrack - vocabulary tracking with flashcard archive import/export")
	fmt.Println()
	fmt.Println("Usage:")
	fmt.Printf("  %s [serve]           Start the HTTP server (default)\n", os.Args[0])
	fmt.Printf("  %s anki-import ...   Import a flashcard archive (.apkg)\n", os.Args[0])
	fmt.Printf("  %s text-import ...   Import a plain word list\n", os.Args[0])
	fmt.Printf("  %s anki-export ...   Build a flashcard archive from a term list\n", os.Args[0])
	fmt.Printf("  %s version           Print version information\n", os.Args[0])
	fmt.Println()
	fmt.Println("Run any command with -h for its options.")
}
