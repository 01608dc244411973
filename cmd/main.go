// Package main replays a CSV transaction log and prints the final balances.
//
//	pet-ledger [--config dir] [--strict] [--log-level level] [transactions.csv]
//
// The snapshot CSV goes to stdout, logs go to stderr. Use "-" to read the
// transaction log from stdin.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/google/uuid"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/go-petr/pet-ledger/internal/engine"
	"github.com/go-petr/pet-ledger/internal/middleware"
	"github.com/go-petr/pet-ledger/pkg/configpkg"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := run(ctx, os.Args[1:], os.Stdin, os.Stdout, os.Stderr)
	stop()

	os.Exit(code)
}

func run(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	flags := pflag.NewFlagSet("pet-ledger", pflag.ContinueOnError)
	flags.SetOutput(stderr)

	configPath := flags.String("config", "./configs", "directory holding app.env")
	flags.Bool("strict", false, "abort on the first record that cannot be parsed")
	flags.String("log-level", "", "log level (trace, debug, info, warn, error)")

	if err := flags.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return 0
		}

		return 2
	}

	v := viper.New()
	if err := bindFlags(v, flags); err != nil {
		fmt.Fprintln(stderr, err)
		return 2
	}

	if flags.NArg() > 0 {
		v.Set("INPUT_PATH", flags.Arg(0))
	}

	config, err := configpkg.LoadWith(v, *configPath)
	if err != nil {
		fmt.Fprintf(stderr, "cannot load config: %v\n", err)
		return 1
	}

	logger := middleware.NewLogger(stderr, config).
		With().
		Str("run_id", uuid.NewString()).
		Logger()

	ctx = logger.WithContext(ctx)

	in, closeInput, err := openInput(config.InputPath, stdin)
	if err != nil {
		logger.Error().Err(err).Str("input", config.InputPath).Msg("cannot open transaction log")
		return 1
	}
	defer closeInput()

	stats, err := engine.Run(ctx, in, stdout, engine.Options{Strict: config.StrictParse})
	if err != nil {
		logger.Error().Err(err).Interface("stats", stats).Msg("replay failed")
		return 1
	}

	return 0
}

// flagKeys maps config keys to the flags that override them.
var flagKeys = map[string]string{
	"STRICT_PARSE": "strict",
	"LOG_LEVEL":    "log-level",
}

func bindFlags(v *viper.Viper, flags *pflag.FlagSet) error {
	for key, name := range flagKeys {
		if err := v.BindPFlag(key, flags.Lookup(name)); err != nil {
			return fmt.Errorf("cannot bind flag --%s: %w", name, err)
		}
	}

	return nil
}

func openInput(path string, stdin io.Reader) (io.Reader, func(), error) {
	if path == "-" {
		return stdin, func() {}, nil
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, nil, err
	}

	return f, func() { _ = f.Close() }, nil
}
