package main

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/klauspost/cpuid/v2"

	"github.com/born-ml/gradnet/nn"
	"github.com/born-ml/gradnet/tensor"
)

// benchSize is a network shape and batch size to time.
type benchSize struct {
	input, hidden, output, batch int
}

var benchSizes = []benchSize{
	{10, 5, 3, 32},
	{100, 50, 10, 64},
	{784, 128, 10, 128},
}

func runBench(ctx context.Context, args []string, e *env) error {
	fs := newFlagSet("bench", e)
	iters := fs.Int("iters", 100, "Predict calls per size and backend")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *iters <= 0 {
		return fmt.Errorf("-iters must be positive, got %d", *iters)
	}

	printCPU(e)

	for _, size := range benchSizes {
		for _, name := range []string{"cpu", "gonum"} {
			if err := ctx.Err(); err != nil {
				return err
			}
			backend, err := newBackend(name)
			if err != nil {
				return err
			}
			perOp, err := timePredict(size, backend, *iters)
			if err != nil {
				return err
			}
			fmt.Fprintf(e.stdout, "predict %dx%dx%d b%d %-6s %12v/op\n",
				size.input, size.hidden, size.output, size.batch, name, perOp)
		}
	}
	return nil
}

func timePredict(size benchSize, backend tensor.Backend, iters int) (time.Duration, error) {
	rng := rand.New(rand.NewSource(1))
	net := nn.NewTwoLayerNet(size.input, size.hidden, size.output, rng, backend)
	x := tensor.Randn(tensor.Shape{size.batch, size.input}, rng, backend)

	start := time.Now()
	for i := 0; i < iters; i++ {
		if _, err := net.Predict(x); err != nil {
			return 0, err
		}
	}
	return time.Since(start) / time.Duration(iters), nil
}

func printCPU(e *env) {
	fmt.Fprintf(e.stdout, "CPU: %s (%s)\n", cpuid.CPU.BrandName, cpuid.CPU.VendorString)
	fmt.Fprintf(e.stdout, "Cores: %d physical, %d logical\n", cpuid.CPU.PhysicalCores, cpuid.CPU.LogicalCores)
	fmt.Fprintf(e.stdout, "AVX2: %v, FMA3: %v, AVX512: %v\n",
		cpuid.CPU.Supports(cpuid.AVX2),
		cpuid.CPU.Supports(cpuid.FMA3),
		cpuid.CPU.Supports(cpuid.AVX512F, cpuid.AVX512DQ))
}
