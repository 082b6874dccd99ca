package main

import (
	"context"
	"fmt"
	"math/rand"

	"github.com/born-ml/gradnet/internal/train"
	"github.com/born-ml/gradnet/nn"
	"github.com/born-ml/gradnet/tensor"
)

func runTrain(ctx context.Context, args []string, e *env) error {
	defaults := train.DefaultConfig()

	fs := newFlagSet("train", e)
	steps := fs.Int("steps", defaults.Steps, "Number of update steps")
	lr := fs.Float64("lr", defaults.LearningRate, "Learning rate")
	seed := fs.Int64("seed", 42, "Random seed for weight initialization")
	backendName := fs.String("backend", "cpu", "Compute backend (cpu or gonum)")
	logEvery := fs.Int("log-every", defaults.LogEvery, "Log loss every N steps (0 = never)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	backend, err := newBackend(*backendName)
	if err != nil {
		return err
	}

	x, err := tensor.FromRows([][]float64{{0.6, 0.9}}, backend)
	if err != nil {
		return err
	}
	t, err := tensor.FromRows([][]float64{{0, 1}}, backend)
	if err != nil {
		return err
	}

	net := nn.NewTwoLayerNet(2, 3, 2, rand.New(rand.NewSource(*seed)), backend)

	before, err := net.Predict(x)
	if err != nil {
		return err
	}
	fmt.Fprintf(e.stdout, "Backend: %s\n", backend.Name())
	fmt.Fprintf(e.stdout, "Prediction before training: %v\n", before.Row(0))

	history, err := train.Run(ctx, net, x, t, train.Config{
		Steps:        *steps,
		LearningRate: *lr,
		LogEvery:     *logEvery,
		Logger:       e.logger,
	})
	if err != nil {
		return err
	}

	after, err := net.Predict(x)
	if err != nil {
		return err
	}
	fmt.Fprintf(e.stdout, "Prediction after training:  %v\n", after.Row(0))
	fmt.Fprintf(e.stdout, "Loss: %.6f -> %.6f (%d steps)\n", history.Initial(), history.Final, len(history.Losses))
	return nil
}
