package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	kitlog "github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/jessevdk/go-flags"

	"github.com/maxpoletaev/parity/internal/generic"
	"github.com/maxpoletaev/parity/parity"
)

type cliOptions struct {
	Odd     bool `long:"odd" description:"select odd integers instead of even ones"`
	Verbose bool `long:"verbose" description:"verbose mode"`

	Args struct {
		Values []string `positional-arg-name:"INT" description:"integers to filter, read from stdin when omitted"`
	} `positional-args:"yes"`
}

// parseArgs parses the command line. A negative integer looks like a short
// option to go-flags; IgnoreUnknown hands such tokens back as positional
// values, in the order they were given. There are no short options other than
// -h, so no integer can be mistaken for a real flag.
func parseArgs(args []string) (*cliOptions, error) {
	opts := &cliOptions{}
	parser := flags.NewParser(opts, flags.Default|flags.IgnoreUnknown)

	if _, err := parser.ParseArgs(args); err != nil {
		return nil, err
	}

	return opts, nil
}

func (o *cliOptions) predicate() parity.Predicate {
	if o.Odd {
		return parity.Odd
	}

	return parity.Even
}

// readTokens returns whitespace separated tokens from args, or from r when
// there are no args.
func readTokens(args []string, r io.Reader) ([]string, error) {
	if len(args) > 0 {
		return args, nil
	}

	var tokens []string

	scanner := bufio.NewScanner(r)
	scanner.Split(bufio.ScanWords)

	for scanner.Scan() {
		tokens = append(tokens, scanner.Text())
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read input: %w", err)
	}

	return tokens, nil
}

func parseInts(tokens []string) ([]int64, error) {
	values := make([]int64, len(tokens))

	for i, token := range tokens {
		v, err := strconv.ParseInt(token, 10, 64)
		if err != nil {
			return nil, &parity.InvalidInputError{Index: i, Value: token}
		}

		values[i] = v
	}

	return values, nil
}

func run(p parity.Predicate, args []string, stdin io.Reader, stdout io.Writer) error {
	tokens, err := readTokens(args, stdin)
	if err != nil {
		return err
	}

	values, err := parseInts(tokens)
	if err != nil {
		return err
	}

	selected := parity.Select(p, values)
	line := strings.Join(generic.Map(selected, func(v int64) string {
		return strconv.FormatInt(v, 10)
	}), " ")

	if _, err := fmt.Fprintln(stdout, line); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}

	return nil
}

func main() {
	opts, err := parseArgs(os.Args[1:])
	if err != nil {
		if flagsErr, ok := err.(*flags.Error); !ok || flagsErr.Type != flags.ErrHelp {
			fmt.Println("cli error:", err)
		}

		os.Exit(2)
	}

	logger := kitlog.NewLogfmtLogger(kitlog.NewSyncWriter(os.Stderr))
	if !opts.Verbose {
		logger = level.NewFilter(logger, level.AllowInfo())
	}

	predicate := opts.predicate()

	level.Debug(logger).Log("msg", "filtering", "predicate", predicate, "args", len(opts.Args.Values))

	if err := run(predicate, opts.Args.Values, os.Stdin, os.Stdout); err != nil {
		level.Error(logger).Log("msg", "failed to filter input", "err", err)
		os.Exit(1)
	}
}
