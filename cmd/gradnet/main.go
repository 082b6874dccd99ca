// Package main provides the gradnet CLI.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"

	"github.com/born-ml/gradnet/backend/cpu"
	"github.com/born-ml/gradnet/backend/gonum"
	"github.com/born-ml/gradnet/tensor"
)

const version = "v0.1.0"

// command is a CLI subcommand.
type command struct {
	name  string
	usage string
	run   func(ctx context.Context, args []string, env *env) error
}

// env carries the output streams shared by all subcommands.
type env struct {
	stdout io.Writer
	logger *log.Logger
}

var commands = []command{
	{"version", "Show version", runVersion},
	{"train", "Train a 2-3-2 network on a single example", runTrain},
	{"gates", "Print perceptron logic gate truth tables", runGates},
	{"mnist", "Train a small network on MNIST (or synthetic) data", runMNIST},
	{"bench", "Time Predict on both backends", runBench},
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	e := &env{
		stdout: os.Stdout,
		logger: log.New(os.Stderr, "gradnet: ", log.LstdFlags),
	}
	if err := run(ctx, os.Args[1:], e); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(2)
		}
		e.logger.Fatal(err)
	}
}

func run(ctx context.Context, args []string, e *env) error {
	if len(args) == 0 {
		printUsage(e.stdout)
		return nil
	}

	for _, cmd := range commands {
		if cmd.name == args[0] {
			return cmd.run(ctx, args[1:], e)
		}
	}

	printUsage(e.stdout)
	return fmt.Errorf("unknown command %q", args[0])
}

func printUsage(w io.Writer) {
	fmt.Fprintln(w, "gradnet - numerical-gradient neural network toolkit")
	fmt.Fprintf(w, "Version: %s\n\n", version)
	fmt.Fprintln(w, "Commands:")
	for _, cmd := range commands {
		fmt.Fprintf(w, "  %-10s %s\n", cmd.name, cmd.usage)
	}
}

func runVersion(_ context.Context, _ []string, e *env) error {
	fmt.Fprintf(e.stdout, "gradnet %s\n", version)
	return nil
}

// newFlagSet creates a subcommand flag set that reports errors instead of
// exiting.
func newFlagSet(name string, e *env) *flag.FlagSet {
	fs := flag.NewFlagSet("gradnet "+name, flag.ContinueOnError)
	fs.SetOutput(e.stdout)
	return fs
}

// newBackend resolves a -backend flag value.
func newBackend(name string) (tensor.Backend, error) {
	switch name {
	case "cpu":
		return cpu.New(), nil
	case "gonum":
		return gonum.New(), nil
	default:
		return nil, fmt.Errorf("unknown backend %q (want cpu or gonum)", name)
	}
}
