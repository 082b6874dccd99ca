package main

import (
	"context"
	"fmt"

	"github.com/born-ml/gradnet/internal/perceptron"
)

func runGates(_ context.Context, args []string, e *env) error {
	fs := newFlagSet("gates", e)
	if err := fs.Parse(args); err != nil {
		return err
	}

	for _, g := range perceptron.Gates {
		fmt.Fprintf(e.stdout, "%s:\n", g.Name)
		for _, row := range perceptron.TruthTable(g.Gate) {
			fmt.Fprintf(e.stdout, "  %.0f %.0f -> %.0f\n", row[0], row[1], row[2])
		}
	}
	return nil
}
