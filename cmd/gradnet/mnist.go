package main

import (
	"context"
	"fmt"
	"math/rand"

	"github.com/born-ml/gradnet/internal/dataset/mnist"
	"github.com/born-ml/gradnet/internal/train"
	"github.com/born-ml/gradnet/nn"
)

func runMNIST(ctx context.Context, args []string, e *env) error {
	fs := newFlagSet("mnist", e)
	dataDir := fs.String("data", "data/mnist", "Directory for cached MNIST files")
	baseURL := fs.String("url", mnist.DefaultBaseURL, "Base URL to download MNIST files from")
	samples := fs.Int("samples", 20, "Training and test samples to use")
	hidden := fs.Int("hidden", 10, "Hidden layer size")
	steps := fs.Int("steps", 5, "Number of update steps")
	lr := fs.Float64("lr", 0.1, "Learning rate")
	seed := fs.Int64("seed", 42, "Random seed")
	backendName := fs.String("backend", "cpu", "Compute backend (cpu or gonum)")
	useSynthetic := fs.Bool("synthetic", false, "Use synthetic data (no download)")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *samples <= 0 {
		return fmt.Errorf("-samples must be positive, got %d", *samples)
	}

	backend, err := newBackend(*backendName)
	if err != nil {
		return err
	}
	rng := rand.New(rand.NewSource(*seed))

	var ds *mnist.Dataset
	if *useSynthetic {
		fmt.Fprintln(e.stdout, "Using synthetic data")
		ds = mnist.Synthetic(*samples, rng, backend)
	} else {
		full, err := mnist.Load(ctx, mnist.Config{
			Dir:     *dataDir,
			BaseURL: *baseURL,
			Backend: backend,
			Logger:  e.logger,
		})
		if err != nil {
			return err
		}
		fmt.Fprintf(e.stdout, "Loaded MNIST: %d train, %d test\n", full.TrainSize(), full.TestSize())
		if ds, err = full.Subset(*samples); err != nil {
			return err
		}
	}
	ds = ds.Normalize()

	x := ds.TrainImages
	t, err := mnist.OneHot(ds.TrainLabels, mnist.NumClasses, backend)
	if err != nil {
		return err
	}
	testT, err := mnist.OneHot(ds.TestLabels, mnist.NumClasses, backend)
	if err != nil {
		return err
	}

	net := nn.NewTwoLayerNet(mnist.ImageSize, *hidden, mnist.NumClasses, rng, backend)
	fmt.Fprintf(e.stdout, "Network: %d -> %d -> %d on %s, %d samples\n",
		mnist.ImageSize, *hidden, mnist.NumClasses, backend.Name(), ds.TrainSize())

	history, err := train.Run(ctx, net, x, t, train.Config{
		Steps:        *steps,
		LearningRate: *lr,
		LogEvery:     1,
		Logger:       e.logger,
	})
	if err != nil {
		return err
	}

	trainAcc, err := net.Accuracy(x, t)
	if err != nil {
		return err
	}
	testAcc, err := net.Accuracy(ds.TestImages, testT)
	if err != nil {
		return err
	}

	fmt.Fprintf(e.stdout, "Loss: %.6f -> %.6f\n", history.Initial(), history.Final)
	fmt.Fprintf(e.stdout, "Accuracy: train %.2f%%, test %.2f%%\n", trainAcc*100, testAcc*100)
	return nil
}
