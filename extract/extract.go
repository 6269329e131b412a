package extract

import (
	"context"
	"fmt"
	"os"
	"runtime"

	"github.com/schollz/progressbar/v3"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/listex/listex/internal"
	"github.com/listex/listex/scanner"
)

// Extractor is the interface the CLI drives. Implemented by internal.Engine.
type Extractor interface {
	Run(filename, variable string) ([]any, error)
	RunSource(source []byte, variable string) ([]any, error)
}

// DefaultExtensions is the directory-walk filter when the config does not
// name one. Explicitly listed files are always processed whatever their
// extension.
var DefaultExtensions = []string{".py", ".go"}

// Config represents the tool configuration read from .listex.yaml.
type Config struct {
	Name       string   `yaml:"name"`
	Extensions []string `yaml:"extensions"`
	Verbose    bool     `yaml:"verbose"`
}

// New builds an extraction engine along with the configuration from the
// given file. An empty path or a missing file yields the default config.
func New(configurationPath string) (*internal.Engine, Config, error) {
	config, err := parseConfigurationFile(configurationPath)
	if err != nil {
		return nil, Config{}, err
	}
	return internal.NewEngine(), config, nil
}

// ProcessFiles extracts the variable from every given path in order and
// concatenates the results. Directories are walked with the configured
// extension filter; plain files are processed as-is.
func ProcessFiles(
	ctx context.Context,
	logger *zap.Logger,
	engine Extractor,
	paths []string,
	variable string,
	extensions []string,
) ([]any, error) {
	allItems := []any{}
	for _, path := range paths {
		items, err := ProcessPath(ctx, logger, engine, path, variable, extensions)
		if err != nil {
			if logger != nil {
				logger.Error("Error processing path", zap.String("path", path), zap.Error(err))
			}
			return nil, err
		}
		allItems = append(allItems, items...)
	}

	return allItems, nil
}

// ProcessPath extracts from one file, or from every matching file under one
// directory. Directory results come back in sorted path order so repeated
// runs concatenate identically; files inside a directory are processed by a
// bounded worker pool with a progress bar.
func ProcessPath(
	ctx context.Context,
	logger *zap.Logger,
	engine Extractor,
	path string,
	variable string,
	extensions []string,
) ([]any, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("error accessing %s: %w", path, err)
	}

	if !info.IsDir() {
		return engine.Run(path, variable)
	}

	if len(extensions) == 0 {
		extensions = DefaultExtensions
	}
	files, err := scanner.New(path, extensions...).Scan()
	if err != nil {
		return nil, fmt.Errorf("error walking directory %s: %w", path, err)
	}
	if len(files) == 0 {
		return []any{}, nil
	}

	type fileResult struct {
		items []any
		err   error
	}
	results := make([]fileResult, len(files))

	// limit the number of workers
	maxWorkers := runtime.NumCPU()
	sem := make(chan struct{}, maxWorkers)
	done := make(chan int, len(files))

	bar := progressbar.NewOptions(len(files),
		progressbar.OptionSetDescription(path),
		progressbar.OptionSetWriter(os.Stderr),
		progressbar.OptionSetWidth(40),
		progressbar.OptionShowCount(),
	)

	started := 0
	for i, file := range files {
		select {
		case <-ctx.Done():
			// let in-flight workers finish before abandoning the run so
			// nothing keeps writing to the progress bar after we return
			for j := 0; j < started; j++ {
				<-done
			}
			return nil, ctx.Err()
		default:
			sem <- struct{}{}
			started++
			go func(slot int, fp string) {
				defer func() { <-sem }()

				items, err := engine.Run(fp, variable)
				results[slot] = fileResult{items: items, err: err}
				_ = bar.Add(1)
				done <- slot
			}(i, file.Path)
		}
	}

	for j := 0; j < started; j++ {
		<-done
	}
	fmt.Fprintln(os.Stderr)

	// concatenate in sorted path order, not completion order
	items := []any{}
	for i, r := range results {
		if r.err != nil {
			if logger != nil {
				logger.Error("Error processing file", zap.String("file", files[i].Path), zap.Error(r.err))
			}
			return nil, r.err
		}
		items = append(items, r.items...)
	}

	return items, nil
}

// ProcessSource extracts from in-memory source.
func ProcessSource(engine Extractor, source []byte, variable string) ([]any, error) {
	return engine.RunSource(source, variable)
}

func parseConfigurationFile(configurationPath string) (Config, error) {
	config := Config{Name: "listex", Extensions: DefaultExtensions}
	if configurationPath == "" {
		return config, nil
	}

	f, err := os.Open(configurationPath)
	if err != nil {
		if os.IsNotExist(err) {
			return config, nil
		}
		return config, err
	}
	defer f.Close()

	decoder := yaml.NewDecoder(f)
	if err := decoder.Decode(&config); err != nil {
		return config, fmt.Errorf("error parsing configuration %s: %w", configurationPath, err)
	}

	return config, nil
}
