// Package fixture reads the declarative example files that pair an input URL
// with the classification it must produce.
package fixture

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/aleister1102/ecverify/internal/models"
	"github.com/bmatcuk/doublestar/v4"
	"github.com/rs/zerolog"
)

const (
	// InputPrefix marks columns that feed the classifier input.
	InputPrefix = "in-"
	// OutputPrefix marks columns holding the expected classification.
	OutputPrefix = "out-"

	// DefaultDelimiter separates fixture columns.
	DefaultDelimiter = ';'
	// DefaultPattern selects fixture files inside a directory.
	DefaultPattern = "*.csv"

	inputURL  = "url"
	inputSize = "size"
)

// Loader reads fixture files of one directory.
type Loader struct {
	delimiter rune
	pattern   string
	logger    zerolog.Logger
}

// Option configures a Loader.
type Option func(*Loader)

// WithDelimiter sets the column delimiter.
func WithDelimiter(delimiter rune) Option {
	return func(l *Loader) {
		l.delimiter = delimiter
	}
}

// WithPattern sets the doublestar pattern file names must match.
func WithPattern(pattern string) Option {
	return func(l *Loader) {
		l.pattern = pattern
	}
}

// WithLogger sets the loader logger.
func WithLogger(logger zerolog.Logger) Option {
	return func(l *Loader) {
		l.logger = logger
	}
}

// NewLoader creates a Loader with the default delimiter and file pattern.
func NewLoader(opts ...Option) *Loader {
	l := &Loader{
		delimiter: DefaultDelimiter,
		pattern:   DefaultPattern,
		logger:    zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(l)
	}
	l.logger = l.logger.With().Str("component", "FixtureLoader").Logger()
	return l
}

// Load reads every fixture file of dir. Files are read in name order and their
// rows are concatenated in file order. Files not matching the pattern are ignored.
func (l *Loader) Load(ctx context.Context, dir string) ([]models.Fixture, error) {
	if !doublestar.ValidatePattern(l.pattern) {
		return nil, &LoadError{Path: dir, Err: fmt.Errorf("invalid fixture pattern %q", l.pattern)}
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, &LoadError{Path: dir, Err: err}
	}

	var fixtures []models.Fixture
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		matched, _ := doublestar.Match(l.pattern, entry.Name())
		if !matched {
			l.logger.Debug().Str("file", entry.Name()).Msg("Ignoring file not matching fixture pattern")
			continue
		}

		if err := ctx.Err(); err != nil {
			return nil, err
		}

		fileFixtures, err := l.LoadFile(filepath.Join(dir, entry.Name()))
		if err != nil {
			return nil, err
		}
		fixtures = append(fixtures, fileFixtures...)
	}

	l.logger.Debug().Str("dir", dir).Int("fixtures", len(fixtures)).Msg("Fixtures loaded")
	return fixtures, nil
}

// LoadFile reads the fixtures of a single file.
func (l *Loader) LoadFile(path string) ([]models.Fixture, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, &LoadError{Path: path, Err: err}
	}
	defer func() {
		if err := file.Close(); err != nil {
			l.logger.Error().Err(err).Str("path", path).Msg("Failed to close fixture file")
		}
	}()

	return l.parse(path, file)
}

// parse reads a header row followed by fixture rows
func (l *Loader) parse(path string, r io.Reader) ([]models.Fixture, error) {
	reader := csv.NewReader(r)
	reader.Comma = l.delimiter
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if errors.Is(err, io.EOF) {
		l.logger.Warn().Str("path", path).Msg("Fixture file is empty")
		return nil, nil
	}
	if err != nil {
		return nil, &LoadError{Path: path, Err: err}
	}

	columns, err := parseHeader(header)
	if err != nil {
		return nil, &LoadError{Path: path, Err: err}
	}

	var fixtures []models.Fixture
	for {
		row, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, &LoadError{Path: path, Err: err}
		}

		line, _ := reader.FieldPos(0)
		fx := buildFixture(path, line, columns, row)
		if fx.URL() == "" {
			return nil, &MalformedError{Path: path, Line: line}
		}
		fixtures = append(fixtures, fx)
	}

	return fixtures, nil
}

// column is one recognized header cell
type column struct {
	index  int
	field  string
	output bool
}

// parseHeader keeps the in-/out- columns of a header row
func parseHeader(header []string) ([]column, error) {
	var columns []column
	for i, cell := range header {
		name := strings.TrimSpace(cell)
		if i == 0 {
			name = strings.TrimPrefix(name, "\ufeff")
		}

		switch {
		case strings.HasPrefix(name, InputPrefix):
			columns = append(columns, column{index: i, field: strings.TrimPrefix(name, InputPrefix)})
		case strings.HasPrefix(name, OutputPrefix):
			columns = append(columns, column{index: i, field: strings.TrimPrefix(name, OutputPrefix), output: true})
		}
	}

	if len(columns) == 0 {
		return nil, errors.New("header has no in- or out- column")
	}
	return columns, nil
}

// buildFixture maps a row onto input and expected fields; empty cells are absent
func buildFixture(path string, line int, columns []column, row []string) models.Fixture {
	fx := models.Fixture{
		Source:   path,
		Line:     line,
		Input:    make(map[string]string),
		Expected: make(map[string]any),
	}

	for _, col := range columns {
		if col.index >= len(row) || row[col.index] == "" {
			continue
		}
		value := row[col.index]

		if !col.output {
			fx.Input[col.field] = value
			continue
		}
		if col.field == models.FieldGranted {
			fx.Expected[col.field] = CoerceGranted(value)
			continue
		}
		fx.Expected[col.field] = value
	}

	return fx
}

// CoerceGranted converts the textual access-granted value: "true" is true,
// anything else is false.
func CoerceGranted(raw string) bool {
	return raw == "true"
}

// Input builds the record a classifier executes for fx.
// in-url becomes the URL, in-size the response size when it is an integer,
// and every other input field is kept as raw metadata.
func Input(fx models.Fixture) (models.InputRecord, error) {
	rawURL := fx.Input[inputURL]
	if rawURL == "" {
		return models.InputRecord{}, &MalformedError{Path: fx.Source, Line: fx.Line}
	}

	rec := models.InputRecord{
		URL:  rawURL,
		Meta: models.AccessMeta{Fields: make(map[string]string, len(fx.Input))},
	}
	for field, value := range fx.Input {
		if field == inputURL {
			continue
		}
		rec.Meta.Fields[field] = value
	}

	if rawSize, ok := fx.Input[inputSize]; ok {
		if size, err := strconv.ParseInt(strings.TrimSpace(rawSize), 10, 64); err == nil {
			rec.Meta.Size = &size
		}
	}

	return rec, nil
}
