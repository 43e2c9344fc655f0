// Command vecscript replays YAML operation scripts against a vector and
// writes one YAML report per script.
//
//	vecscript [flags] script.yaml...
//	vecscript -w 8 -o reports/ internal/script/testdata/*.yaml
package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/pflag"
)

func main() {
	fs := pflag.NewFlagSet("vecscript", pflag.ContinueOnError)
	opts := options{stdout: os.Stdout}

	fs.IntVarP(&opts.workers, "workers", "w", 4, "number of scripts replayed concurrently")
	fs.StringVarP(&opts.out, "out", "o", "", "directory for YAML reports (default: stdout)")
	fs.DurationVarP(&opts.timeout, "timeout", "t", 30*time.Second, "deadline for the whole run")
	fs.BoolVarP(&opts.verbose, "verbose", "v", false, "log pool and worker activity")
	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s [flags] script.yaml...\n", fs.Name())
		fs.PrintDefaults()
	}

	if err := fs.Parse(os.Args[1:]); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			os.Exit(0)
		}
		os.Exit(exitUsage)
	}
	if fs.NArg() == 0 {
		fs.Usage()
		os.Exit(exitUsage)
	}

	opts.logger = log.New(os.Stderr, "", log.LstdFlags)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	code := run(ctx, opts, fs.Args())
	stop()
	os.Exit(code)
}
