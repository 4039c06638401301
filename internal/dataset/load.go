package dataset

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/KaramelBytes/urbanpulse-cli/internal/logging"
)

var (
	// ErrFileNotFound indicates none of the candidate CSV paths exist.
	ErrFileNotFound = errors.New("csv file not found")
	// ErrEmptyFile indicates the CSV has no non-blank lines.
	ErrEmptyFile = errors.New("csv file is empty")
)

// DefaultFileName is the name of the bundled dataset.
const DefaultFileName = "combined_urbanization_life_quality_2008_2020.csv"

// DefaultCandidates returns the historical dataset locations under root, in
// lookup order.
func DefaultCandidates(root string) []string {
	return []string{
		filepath.Join(root, "public", "data", "data.csv"),
		filepath.Join(root, "public", "Data", DefaultFileName),
		filepath.Join(root, "public", DefaultFileName),
	}
}

// Option configures loading.
type Option func(*options)

type options struct {
	logger *slog.Logger
}

// WithLogger routes ingestion diagnostics to l. Logging never changes results.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

func buildOptions(opts []Option) options {
	o := options{logger: logging.Discard()}
	for _, fn := range opts {
		fn(&o)
	}
	return o
}

// Locate returns the first candidate that exists as a regular file.
func Locate(candidates []string) (string, error) {
	for _, c := range candidates {
		st, err := os.Stat(c)
		if err != nil || !st.Mode().IsRegular() {
			continue
		}
		return c, nil
	}
	return "", fmt.Errorf("%w: tried %s", ErrFileNotFound, strings.Join(candidates, ", "))
}

// Load locates the dataset among candidates and parses it.
func Load(candidates []string, opts ...Option) ([]DataRecord, error) {
	path, err := Locate(candidates)
	if err != nil {
		return nil, err
	}
	return LoadFile(path, opts...)
}

// LoadFile parses the dataset at path.
func LoadFile(path string, opts ...Option) ([]DataRecord, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrFileNotFound, path)
		}
		return nil, fmt.Errorf("open csv: %w", err)
	}
	defer f.Close()
	o := buildOptions(opts)
	o.logger.Debug("loading dataset", slog.String("path", path))
	recs, err := Parse(f, opts...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return recs, nil
}

// Parse reads CSV content and returns valid records in source order. Rows
// without a year, with an empty or oversized country, or naming a summary
// row are skipped.
func Parse(r io.Reader, opts ...Option) ([]DataRecord, error) {
	o := buildOptions(opts)
	b, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read csv: %w", err)
	}
	lines := splitLines(string(b))
	if len(lines) == 0 {
		return nil, ErrEmptyFile
	}
	header := splitLine(lines[0])
	preview := header
	if len(preview) > 10 {
		preview = preview[:10]
	}
	o.logger.Debug("csv header", slog.Int("columns", len(header)), slog.Any("preview", preview))

	records := make([]DataRecord, 0, len(lines)-1)
	var dropped int
	for _, line := range lines[1:] {
		vals := splitLine(line)
		rw := make(row, len(header))
		for i, h := range header {
			if i < len(vals) {
				rw[h] = vals[i]
			} else {
				rw[h] = ""
			}
		}
		rec, ok := normalize(rw)
		if !ok || !validCountry(rec.Country) {
			dropped++
			continue
		}
		records = append(records, rec)
	}
	logging.LogOperation(o.logger, "dataset_parsed",
		slog.Int("rows", len(lines)-1),
		slog.Int("kept", len(records)),
		slog.Int("dropped", dropped))
	return records, nil
}
