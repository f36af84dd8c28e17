package core

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"

	"github.com/shaik-1036/delhi-metro-data-analysis/internal/schema"
)

// LoadOption configures how a source file is read.
type LoadOption func(*loadOptions)

type loadOptions struct {
	comma rune
}

// WithComma sets the field delimiter (default ',').
func WithComma(r rune) LoadOption {
	return func(o *loadOptions) {
		if r != 0 {
			o.comma = r
		}
	}
}

// LoadFile reads the station file at path.
// A missing or unreadable path returns *FileAccessError; malformed content
// returns *ParseError. A present value in a float column that is not a
// number wraps ErrInvalidValue.
func LoadFile(path string, opts ...LoadOption) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &FileAccessError{Path: path, Err: err}
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return nil, &FileAccessError{Path: path, Err: err}
	}

	return ReadTable(bytes.NewReader(data), path, opts...)
}

// ReadTable parses delimited text with a header row into a Table.
//
// A leading byte order mark is dropped and header aliases are renamed to
// the canonical station columns. Float attributes are parsed as floats and
// everything else is kept as text. Only empty cells and the markers in
// schema.MissingMarkers become missing values; any other cell in a float
// column must parse as a number. Columns are not checked against the
// station schema here.
func ReadTable(r io.Reader, source string, opts ...LoadOption) (*Table, error) {
	o := loadOptions{comma: ','}
	for _, opt := range opts {
		opt(&o)
	}

	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, &ParseError{Source: source, Err: err}
	}
	if !utf8.Valid(raw) {
		return nil, &ParseError{Source: source, Err: ErrEncoding}
	}

	// BOMOverride strips a UTF-8 BOM and otherwise passes bytes through the
	// UTF-8 decoder, which is a no-op on input already known to be valid.
	text, _, err := transform.Bytes(unicode.BOMOverride(unicode.UTF8.NewDecoder()), raw)
	if err != nil {
		return nil, &ParseError{Source: source, Err: ErrEncoding}
	}

	cr := csv.NewReader(bytes.NewReader(text))
	cr.Comma = o.comma
	cr.FieldsPerRecord = 0

	records, err := cr.ReadAll()
	if err != nil {
		var pe *csv.ParseError
		if errors.As(err, &pe) {
			return nil, &ParseError{Source: source, Line: pe.Line, Err: pe.Err}
		}
		return nil, &ParseError{Source: source, Err: err}
	}
	if len(records) == 0 {
		return nil, &ParseError{Source: source, Err: errors.New("empty file: no header row")}
	}
	if len(records) == 1 {
		return nil, &ParseError{Source: source, Line: 1, Err: errors.New("empty file: header without data rows")}
	}

	records[0] = schema.CanonicalHeader(records[0])
	for _, rec := range records[1:] {
		for i, cell := range rec {
			rec[i] = strings.TrimSpace(cell)
		}
	}

	if err := checkFloats(records, source); err != nil {
		return nil, err
	}

	df := dataframe.LoadRecords(records,
		dataframe.HasHeader(true),
		dataframe.DetectTypes(false),
		dataframe.DefaultType(series.String),
		dataframe.WithTypes(columnTypes(records[0])),
		dataframe.NaNValues(append([]string{""}, schema.MissingMarkers...)),
	)
	if df.Err != nil {
		return nil, &ParseError{Source: source, Err: fmt.Errorf("load records: %w", df.Err)}
	}

	return NewTable(df, source), nil
}

// checkFloats rejects a present value in a float column that does not
// parse, so it is never loaded as missing and dropped by Clean.
func checkFloats(records [][]string, source string) error {
	for j, h := range records[0] {
		spec, ok := schema.Lookup(h)
		if !ok || spec.Type != schema.FieldFloat {
			continue
		}
		for i, rec := range records[1:] {
			cell := rec[j]
			if schema.IsMissing(cell) {
				continue
			}
			if _, err := strconv.ParseFloat(cell, 64); err != nil {
				return fmt.Errorf("%s: row %d: column %q: %w: %q is not a %s",
					source, i+1, h, ErrInvalidValue, cell, spec.Type)
			}
		}
	}
	return nil
}

// columnTypes maps the float station attributes present in header to
// series.Float. Opened Year stays text and is interpreted by YearlyOpenings.
func columnTypes(header []string) map[string]series.Type {
	types := make(map[string]series.Type)
	for _, h := range header {
		if spec, ok := schema.Lookup(h); ok && spec.Type == schema.FieldFloat {
			types[h] = series.Float
		}
	}
	return types
}
