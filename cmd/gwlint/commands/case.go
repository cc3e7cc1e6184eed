package commands

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/erraggy/gwlint/config"
	"github.com/erraggy/gwlint/internal/cliutil"
	"github.com/erraggy/gwlint/lint"
)

// CaseFlags contains flags for the case command
type CaseFlags struct {
	Style string
}

// SetupCaseFlags creates and configures a FlagSet for the case command.
func SetupCaseFlags() (*flag.FlagSet, *CaseFlags) {
	fs := flag.NewFlagSet("case", flag.ContinueOnError)
	flags := &CaseFlags{}

	usage := "target style: " + strings.Join(config.ValidTextCases(), ", ")
	fs.StringVar(&flags.Style, "s", string(config.TextCaseCamel), usage)
	fs.StringVar(&flags.Style, "style", string(config.TextCaseCamel), usage)

	fs.Usage = func() {
		cliutil.Writef(fs.Output(), "Usage: gwlint case [flags] <identifier>...\n\n")
		cliutil.Writef(fs.Output(), "Print identifiers in a naming style, as lint autofix would rename them.\n\n")
		cliutil.Writef(fs.Output(), "Flags:\n")
		fs.PrintDefaults()
		cliutil.Writef(fs.Output(), "\nExamples:\n")
		cliutil.Writef(fs.Output(), "  gwlint case user_profile            # userProfile\n")
		cliutil.Writef(fs.Output(), "  gwlint case -s pascalCase api_key   # ApiKey\n")
		cliutil.Writef(fs.Output(), "  gwlint case -s allCaps darkRed      # DARK_RED\n")
	}

	return fs, flags
}

// HandleCase executes the case command
func HandleCase(args []string) error {
	return runCase(args, os.Stdout, os.Stderr)
}

func runCase(args []string, stdout, stderr io.Writer) error {
	fs, flags := SetupCaseFlags()
	fs.SetOutput(stderr)

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}
	if fs.NArg() == 0 {
		fs.Usage()
		return fmt.Errorf("case command requires at least one identifier")
	}

	for _, id := range fs.Args() {
		out, err := lint.ConvertName(id, config.TextCase(flags.Style))
		if err != nil {
			return err
		}
		cliutil.Writef(stdout, "%s\n", out)
	}
	return nil
}
