package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/erraggy/oaslint"
	"github.com/erraggy/oaslint/cmd/oaslint/commands"
)

// commandNames lists the commands offered as typo suggestions.
var commandNames = []string{"validate", "mcp", "version", "help"}

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	command := os.Args[1]

	switch command {
	case "version", "-v", "--version":
		fmt.Printf("oaslint v%s\n", oaslint.Version())
		fmt.Println(oaslint.BuildInfo())
	case "help", "-h", "--help":
		printUsage()
	case "validate":
		exitOnError(commands.HandleValidate(os.Args[2:]))
	case "mcp":
		exitOnError(commands.HandleMCP(os.Args[2:]))
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", command)
		if suggestion := suggestCommand(command); suggestion != "" {
			fmt.Fprintf(os.Stderr, "Did you mean '%s'?\n", suggestion)
		}
		fmt.Fprintln(os.Stderr)
		printUsage()
		os.Exit(1)
	}
}

func exitOnError(err error) {
	if err == nil {
		return
	}
	if !errors.Is(err, commands.ErrValidationFailed) {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	}
	os.Exit(1)
}

// suggestCommand returns the known command closest to input, or "" when none
// is within an edit distance of 2.
func suggestCommand(input string) string {
	best, bestDist := "", 3
	for _, name := range commandNames {
		if d := editDistance(input, name); d < bestDist {
			best, bestDist = name, d
		}
	}
	return best
}

// editDistance is the Levenshtein distance between a and b.
func editDistance(a, b string) int {
	prev := make([]int, len(b)+1)
	cur := make([]int, len(b)+1)
	for j := range prev {
		prev[j] = j
	}
	for i := 1; i <= len(a); i++ {
		cur[0] = i
		for j := 1; j <= len(b); j++ {
			cost := 1
			if a[i-1] == b[j-1] {
				cost = 0
			}
			cur[j] = min(prev[j]+1, cur[j-1]+1, prev[j-1]+cost)
		}
		prev, cur = cur, prev
	}
	return prev[len(b)]
}

func printUsage() {
	fmt.Println(`oaslint - OpenAPI document linter

Usage:
  oaslint <command> [options]

Commands:
  validate    Validate an OpenAPI 3.x document
  mcp         Run an MCP server over stdio
  version     Show version information
  help        Show this help message

Examples:
  oaslint validate openapi.yaml
  oaslint validate --strict --format json openapi.json
  oaslint mcp

Run 'oaslint <command> --help' for more information on a command.`)
}
