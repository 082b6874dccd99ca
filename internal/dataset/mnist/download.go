package mnist

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"path/filepath"

	"github.com/born-ml/gradnet/internal/tensor"
)

// DefaultBaseURL hosts the four standard MNIST files.
const DefaultBaseURL = "https://ossci-datasets.s3.amazonaws.com/mnist"

// Standard file names.
const (
	TrainImagesFile = "train-images-idx3-ubyte.gz"
	TrainLabelsFile = "train-labels-idx1-ubyte.gz"
	TestImagesFile  = "t10k-images-idx3-ubyte.gz"
	TestLabelsFile  = "t10k-labels-idx1-ubyte.gz"
)

// Config controls Load.
type Config struct {
	Dir     string         // Cache directory (default: "data/mnist")
	BaseURL string         // Download location (default: DefaultBaseURL)
	Client  *http.Client   // HTTP client (default: http.DefaultClient)
	Backend tensor.Backend // Backend for image tensors (required)
	Logger  *log.Logger    // Download progress; nil is silent
}

func (c Config) withDefaults() Config {
	if c.Dir == "" {
		c.Dir = filepath.Join("data", "mnist")
	}
	if c.BaseURL == "" {
		c.BaseURL = DefaultBaseURL
	}
	if c.Client == nil {
		c.Client = http.DefaultClient
	}
	return c
}

// Download fetches url into path unless path already exists.
//
// The body is written to a temporary file in the same directory and renamed
// into place, so an interrupted download never leaves a partial file at
// path. Reports whether a download happened.
func Download(ctx context.Context, client *http.Client, url, path string) (bool, error) {
	if _, err := os.Stat(path); err == nil {
		return false, nil
	} else if !errors.Is(err, os.ErrNotExist) {
		return false, err
	}

	if client == nil {
		client = http.DefaultClient
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return false, fmt.Errorf("download %s: %w", url, err)
	}
	resp, err := client.Do(req)
	if err != nil {
		return false, fmt.Errorf("download %s: %w", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return false, fmt.Errorf("download %s: unexpected status %s", url, resp.Status)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return false, err
	}
	tmp, err := os.CreateTemp(filepath.Dir(path), filepath.Base(path)+".*.tmp")
	if err != nil {
		return false, err
	}
	defer os.Remove(tmp.Name()) // no-op after a successful rename

	if _, err := io.Copy(tmp, resp.Body); err != nil {
		tmp.Close()
		return false, fmt.Errorf("download %s: %w", url, err)
	}
	if err := tmp.Close(); err != nil {
		return false, err
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return false, err
	}
	return true, nil
}

// Load downloads (if needed) and parses the four standard MNIST files.
//
// Images keep their raw 0-255 values; call Normalize before training.
func Load(ctx context.Context, cfg Config) (*Dataset, error) {
	if cfg.Backend == nil {
		return nil, errors.New("mnist: Config.Backend is required")
	}
	cfg = cfg.withDefaults()

	for _, name := range []string{TrainImagesFile, TrainLabelsFile, TestImagesFile, TestLabelsFile} {
		url := cfg.BaseURL + "/" + name
		downloaded, err := Download(ctx, cfg.Client, url, filepath.Join(cfg.Dir, name))
		if err != nil {
			return nil, fmt.Errorf("mnist: %w", err)
		}
		if downloaded && cfg.Logger != nil {
			cfg.Logger.Printf("downloaded %s", url)
		}
	}

	var (
		ds  Dataset
		err error
	)
	if ds.TrainImages, err = LoadImages(filepath.Join(cfg.Dir, TrainImagesFile), cfg.Backend); err != nil {
		return nil, fmt.Errorf("mnist: %w", err)
	}
	if ds.TrainLabels, err = LoadLabels(filepath.Join(cfg.Dir, TrainLabelsFile)); err != nil {
		return nil, fmt.Errorf("mnist: %w", err)
	}
	if ds.TestImages, err = LoadImages(filepath.Join(cfg.Dir, TestImagesFile), cfg.Backend); err != nil {
		return nil, fmt.Errorf("mnist: %w", err)
	}
	if ds.TestLabels, err = LoadLabels(filepath.Join(cfg.Dir, TestLabelsFile)); err != nil {
		return nil, fmt.Errorf("mnist: %w", err)
	}

	if err := ds.validate(); err != nil {
		return nil, fmt.Errorf("mnist: %w", err)
	}
	return &ds, nil
}
