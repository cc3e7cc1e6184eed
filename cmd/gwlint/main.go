package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/erraggy/gwlint"
	"github.com/erraggy/gwlint/cmd/gwlint/commands"
)

// commandNames lists every command, used for typo suggestions.
var commandNames = []string{"lint", "case", "mcp", "version", "help"}

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	var err error
	switch command := os.Args[1]; command {
	case "version", "-v", "--version":
		fmt.Printf("gwlint v%s\n", gwlint.Version())
		if len(os.Args) > 2 && os.Args[2] == "--verbose" {
			fmt.Println(gwlint.BuildInfo())
		}
	case "help", "-h", "--help":
		printUsage()
	case "lint":
		err = commands.HandleLint(os.Args[2:])
	case "case":
		err = commands.HandleCase(os.Args[2:])
	case "mcp":
		err = commands.HandleMCP(os.Args[2:])
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", command)
		if s := suggestCommand(command); s != "" {
			fmt.Fprintf(os.Stderr, "Did you mean '%s'?\n", s)
		}
		fmt.Fprintln(os.Stderr)
		printUsage()
		os.Exit(1)
	}

	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// suggestCommand returns the command closest to input within an edit
// distance of 2, or "" if there is none.
func suggestCommand(input string) string {
	best, bestDist := "", 3
	for _, name := range commandNames {
		if d := levenshtein(strings.ToLower(input), name); d < bestDist {
			best, bestDist = name, d
		}
	}
	return best
}

// levenshtein calculates the Levenshtein distance between two strings.
func levenshtein(s1, s2 string) int {
	prev := make([]int, len(s2)+1)
	for j := range prev {
		prev[j] = j
	}
	for i := 1; i <= len(s1); i++ {
		cur := make([]int, len(s2)+1)
		cur[0] = i
		for j := 1; j <= len(s2); j++ {
			cost := 1
			if s1[i-1] == s2[j-1] {
				cost = 0
			}
			cur[j] = min(prev[j]+1, cur[j-1]+1, prev[j-1]+cost)
		}
		prev = cur
	}
	return prev[len(s2)]
}

func printUsage() {
	fmt.Printf(`gwlint - naming-convention linter for API-gateway configurations

Usage:
  gwlint <command> [flags] [arguments]

Commands:
  lint       Check (or autofix) identifier naming in a configuration
  case       Print identifiers in a naming style
  mcp        Serve the lint tools over MCP (stdio)
  version    Show version information (--verbose for build details)
  help       Show this help message

Run 'gwlint <command> --help' for more information on a command.
`)
}
