package sheets

import (
	"strings"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"

	"github.com/agentstation/casematch/pkg/constants"
	"github.com/agentstation/casematch/pkg/errors"
)

// options configures loading and exporting.
type options struct {
	delimiter rune
	encoding  encoding.Encoding
	charset   string
	sheet     string
}

const (
	charsetUTF8   = "utf-8"
	charsetCP1251 = "cp1251"
)

func defaultOptions() *options {
	return &options{
		delimiter: ',',
		encoding:  unicode.UTF8,
		charset:   charsetUTF8,
	}
}

// Option is a function that configures tabular I/O.
type Option func(*options) error

func (o *options) apply(opts ...Option) (*options, error) {
	for _, opt := range opts {
		if err := opt(o); err != nil {
			return nil, err
		}
	}
	return o, nil
}

func newOptions(opts ...Option) (*options, error) {
	return defaultOptions().apply(opts...)
}

// CheckOptions reports the first invalid option without performing any I/O.
func CheckOptions(opts ...Option) error {
	_, err := newOptions(opts...)
	return err
}

// WithDelimiter sets the CSV field delimiter.
func WithDelimiter(d rune) Option {
	return func(o *options) error {
		if d == 0 || d == '"' || d == '\r' || d == '\n' {
			return errors.NewValidationError("csv.delimiter", string(d), "invalid delimiter")
		}
		o.delimiter = d
		return nil
	}
}

// WithEncoding sets the text encoding of CSV files and legacy .xls strings:
// "utf-8" (default) or "cp1251".
func WithEncoding(name string) Option {
	return func(o *options) error {
		charset, enc, err := lookupEncoding(name)
		if err != nil {
			return err
		}
		o.charset = charset
		o.encoding = enc
		return nil
	}
}

// WithSheet selects a worksheet by name instead of the first one. Loading a
// workbook without that worksheet fails with a not-found error.
func WithSheet(name string) Option {
	return func(o *options) error {
		o.sheet = name
		return nil
	}
}

func lookupEncoding(name string) (string, encoding.Encoding, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "utf-8", "utf8":
		return charsetUTF8, unicode.UTF8, nil
	case "cp1251", "windows-1251", "windows1251":
		return charsetCP1251, charmap.Windows1251, nil
	default:
		return "", nil, errors.NewValidationError("csv.encoding", name, "must be utf-8 or cp1251")
	}
}

// ExportPath returns the default export file name for a dataset loaded from
// source: the source base name with "_exported.xlsx".
func ExportPath(source string) string {
	base := strings.TrimSuffix(source, fileExt(source))
	if base == "" {
		return constants.DefaultExportName
	}
	return base + constants.ExportSuffix + ".xlsx"
}
