// Package cli implements the pngme command line.
package cli

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"slices"
)

// Exit codes returned by Run.
const (
	ExitOK      = 0
	ExitFailure = 1
	ExitUsage   = 2
)

const usage = `Usage: pngme [-v] <command> [arguments]

Commands:
  encode <file> <chunk-type> <message> [output]   hide a message in a PNG chunk
  decode <file> <chunk-type>                      print a hidden message
  remove <file> <chunk-type>                      delete a hidden message
  print [-all] [-digest] <file>...                list chunks after IEND
  version                                         print version information
`

// command runs one subcommand. args excludes the subcommand name.
type command func(ctx context.Context, env *env, args []string) int

var commands = map[string]command{
	"encode":  runEncode,
	"decode":  runDecode,
	"remove":  runRemove,
	"print":   runPrint,
	"version": runVersion,
}

// env carries the output streams and logger shared by all subcommands.
type env struct {
	stdout io.Writer
	stderr io.Writer
	log    *slog.Logger
}

// Run executes the command line in args (including the program name) and
// returns the process exit code.
func Run(args []string, stdout, stderr io.Writer) int {
	return RunContext(context.Background(), args, stdout, stderr)
}

// RunContext is Run with a caller-supplied context.
func RunContext(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("pngme", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() { fmt.Fprint(stderr, usage) }
	verbose := fs.Bool("v", false, "enable debug logging")

	if len(args) > 0 {
		args = args[1:]
	}
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return ExitOK
		}
		return ExitUsage
	}

	rest := fs.Args()
	if len(rest) == 0 {
		fs.Usage()
		return ExitUsage
	}

	cmd, ok := commands[rest[0]]
	if !ok {
		fmt.Fprintf(stderr, "pngme: unknown command %q\n\n", rest[0])
		fs.Usage()
		return ExitUsage
	}

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	e := &env{
		stdout: stdout,
		stderr: stderr,
		log:    slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level})).With("command", rest[0]),
	}

	return cmd(ctx, e, slices.Clone(rest[1:]))
}

// newFlagSet returns a subcommand flag set that reports errors to stderr.
func (e *env) newFlagSet(name, synopsis string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(e.stderr)
	fs.Usage = func() {
		fmt.Fprintf(e.stderr, "Usage: pngme %s %s\n", name, synopsis)
		fs.PrintDefaults()
	}
	return fs
}

// parse parses subcommand flags and checks the positional argument count.
func (e *env) parse(fs *flag.FlagSet, args []string, minArgs, maxArgs int) ([]string, int, bool) {
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil, ExitOK, false
		}
		return nil, ExitUsage, false
	}
	pos := fs.Args()
	if len(pos) < minArgs || (maxArgs >= 0 && len(pos) > maxArgs) {
		fs.Usage()
		return nil, ExitUsage, false
	}
	return pos, ExitOK, true
}
