package main

import (
	"fmt"
	"log"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/ironsheep/color-tools-mcp/internal/colormodel"
	"github.com/ironsheep/color-tools-mcp/internal/server"
)

// Version information - set by ldflags during build
var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

func main() {
	// Handle --version and -v flags
	if len(os.Args) > 1 {
		switch os.Args[1] {
		case "--version", "-v", "version":
			fmt.Printf("color-tools-mcp %s\n", Version)
			fmt.Printf("  Build time: %s\n", BuildTime)
			fmt.Printf("  Git commit: %s\n", GitCommit)
			return
		case "--help", "-h", "help":
			fmt.Println("color-tools-mcp - MCP server for color parsing, conversion and image color analysis")
			fmt.Println()
			fmt.Println("Usage: color-tools-mcp [options]")
			fmt.Println()
			fmt.Println("Options:")
			fmt.Println("  --version, -v    Print version information")
			fmt.Println("  --help, -h       Print this help message")
			fmt.Println()
			fmt.Println("Environment variables:")
			fmt.Println("  COLOR_MCP_LOG_LEVEL=debug|warn    Log server details and color input warnings")
			fmt.Println("  COLOR_MCP_NAMES=/path/names.json  Named colors as {\"name\": [r, g, b], ...}")
			fmt.Println()
			fmt.Println("This server communicates via MCP protocol over stdin/stdout.")
			fmt.Println("Configure it in your MCP client (e.g., Claude Desktop).")
			return
		}
	}

	// Configure logging to stderr (stdout is for MCP protocol)
	log.SetOutput(os.Stderr)
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)

	logLevel := strings.ToLower(os.Getenv("COLOR_MCP_LOG_LEVEL"))
	switch logLevel {
	case "debug", "warn":
		level := slog.LevelWarn
		if logLevel == "debug" {
			level = slog.LevelDebug
		}
		colormodel.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
	}
	if logLevel == "debug" {
		log.Printf("Color MCP Server v%s (built %s, commit %s)", Version, BuildTime, GitCommit)
	}

	table, err := loadNames(os.Getenv("COLOR_MCP_NAMES"))
	if err != nil {
		log.Fatalf("Failed to load named colors: %v", err)
	}
	if logLevel == "debug" {
		log.Printf("Named colors: %s (%d entries)", table.Name, table.Len())
	}

	srv := server.New(table)
	if err := srv.Run(); err != nil {
		log.Fatalf("Server error: %v", err)
	}
}

// loadNames reads a named-color table from path, or returns the SVG names
// when path is empty.
func loadNames(path string) (colormodel.Table, error) {
	if path == "" {
		return colormodel.DefaultTable(), nil
	}

	f, err := os.Open(path)
	if err != nil {
		return colormodel.Table{}, err
	}
	defer f.Close()

	name := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	return colormodel.LoadTable(name, f)
}
