// Package asset enumerates the on-disk inputs of a render session: the
// background images composited behind each frame and the model files
// imported as render subjects.
package asset

import (
	"fmt"
	"math/rand"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/h2non/filetype"
)

// Asset selection policies.
type Policy uint8

const (
	// Cycle through the directory contents in sorted order, wrapping
	// after the last entry.
	Sequential Policy = iota

	// Draw uniformly from the directory contents using the seeded
	// generator.
	Random
)

func (p Policy) String() string {
	switch p {
	case Sequential:
		return "sequential"
	case Random:
		return "random"
	}
	return "unknown"
}

// Parse a selection policy name.
func ParsePolicy(name string) (Policy, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "sequential", "iterative":
		return Sequential, nil
	case "random":
		return Random, nil
	}
	return 0, fmt.Errorf("asset: unsupported selection policy '%s'", name)
}

// Library construction options.
type Config struct {
	// Asset directory. Defaults to ./backgrounds for background
	// libraries and ./models for model libraries.
	Dir string

	// Selection policy (default Sequential).
	Policy Policy

	// Seed for the Random policy.
	Seed int64

	// Permit an empty or missing directory. Only honored by background
	// libraries; a render session cannot run without models.
	AllowEmpty bool
}

// A Library holds the enumerated contents of an asset directory and hands
// out one asset per render iteration according to its selection policy.
type Library struct {
	dir     string
	entries []string
	policy  Policy
	rng     *rand.Rand
}

var imageExtensions = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".gif":  true,
}

var modelExtensions = map[string]bool{
	".obj": true,
	".fbx": true,
	".glb": true,
}

// Create a library of background images. Files are matched by extension and
// their content must sniff as an image, so a mis-named file fails at load
// time rather than at composite time. Fails when the directory is missing or
// matches nothing, unless AllowEmpty is set.
func NewBackgroundLibrary(cfg Config) (*Library, error) {
	if cfg.Dir == "" {
		cfg.Dir = "./backgrounds"
	}
	if cfg.Policy > Random {
		return nil, fmt.Errorf("asset: unsupported selection policy %d", cfg.Policy)
	}

	lib, err := newLibrary(cfg, imageExtensions)
	if err != nil {
		// The escape hatch only covers the absence of assets; with the
		// policy validated above, the remaining errors are enumeration
		// failures and empty listings.
		if cfg.AllowEmpty {
			return &Library{dir: cfg.Dir, policy: cfg.Policy}, nil
		}
		return nil, err
	}

	for _, entry := range lib.entries {
		if err = sniffImage(entry); err != nil {
			return nil, err
		}
	}

	return lib, nil
}

// Create a library of 3D model files. A render session always needs a
// subject, so an empty or missing model directory is an error regardless of
// AllowEmpty.
func NewModelLibrary(cfg Config) (*Library, error) {
	if cfg.Dir == "" {
		cfg.Dir = "./models"
	}
	return newLibrary(cfg, modelExtensions)
}

func newLibrary(cfg Config, eligible map[string]bool) (*Library, error) {
	if cfg.Policy > Random {
		return nil, fmt.Errorf("asset: unsupported selection policy %d", cfg.Policy)
	}

	listing, err := os.ReadDir(cfg.Dir)
	if err != nil {
		return nil, fmt.Errorf("asset: could not enumerate directory '%s': %s", cfg.Dir, err.Error())
	}

	entries := make([]string, 0, len(listing))
	for _, item := range listing {
		if item.IsDir() {
			continue
		}
		if eligible[strings.ToLower(filepath.Ext(item.Name()))] {
			entries = append(entries, filepath.Join(cfg.Dir, item.Name()))
		}
	}
	if len(entries) == 0 {
		return nil, fmt.Errorf("asset: no eligible assets in directory '%s'", cfg.Dir)
	}

	// Stable selection order regardless of readdir ordering.
	sort.Strings(entries)

	return &Library{
		dir:     cfg.Dir,
		entries: entries,
		policy:  cfg.Policy,
		rng:     rand.New(rand.NewSource(cfg.Seed)),
	}, nil
}

// Verify that a file's magic bytes identify an image.
func sniffImage(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("asset: could not open '%s': %s", path, err.Error())
	}
	defer f.Close()

	header := make([]byte, 261)
	n, _ := f.Read(header)
	if !filetype.IsImage(header[:n]) {
		return fmt.Errorf("asset: '%s' has an image extension but is not an image", path)
	}

	return nil
}

// The asset directory this library was loaded from.
func (l *Library) Dir() string {
	return l.dir
}

// Number of enumerated assets.
func (l *Library) Len() int {
	return len(l.entries)
}

// Select the asset for the given render iteration. Sequential wraps around
// after the last entry; Random draws from the seeded generator.
func (l *Library) Next(iteration int) (string, error) {
	if len(l.entries) == 0 {
		return "", fmt.Errorf("asset: library for '%s' holds no assets", l.dir)
	}

	switch l.policy {
	case Random:
		return l.entries[l.rng.Intn(len(l.entries))], nil
	default:
		return l.entries[iteration%len(l.entries)], nil
	}
}

// Class names derived from the enumerated asset file stems, in selection
// order. Used as the label class vocabulary for model libraries.
func (l *Library) Classes() []string {
	classes := make([]string, len(l.entries))
	for i, entry := range l.entries {
		base := filepath.Base(entry)
		classes[i] = strings.TrimSuffix(base, filepath.Ext(base))
	}
	return classes
}
