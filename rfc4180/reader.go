package rfc4180

import (
	"fmt"
	"io"
)

// parseError reports a quoting violation found by the dialect engine,
// located by physical line and column for diagnostics.
type parseError struct {
	line   int
	column int
	kind   ErrorKind
}

func (e *parseError) Error() string {
	return fmt.Sprintf("parse error on line %d, column %d: %s", e.line, e.column, e.kind.Description())
}

// reader tokenizes records out of a fully materialized CSV buffer.
// It makes a single forward pass; after a quoting violation the position
// is left just past the next record terminator so the following read
// resumes on a fresh record.
type reader struct {
	data       []byte
	pos        int
	comma      byte
	quote      byte
	lazyQuotes bool
	line       int
}

func newReader(data []byte, comma byte, lazyQuotes bool) *reader {
	return &reader{
		data:       data,
		comma:      comma,
		quote:      '"',
		lazyQuotes: lazyQuotes,
		line:       1,
	}
}

// readRecord parses the next record and returns its fields. It returns
// io.EOF once the buffer is exhausted and *parseError for strict-mode
// quoting violations. Blank lines are skipped; a final record without a
// trailing terminator is still returned.
func (r *reader) readRecord() ([]string, error) {
	r.skipBlankLines()
	if r.pos >= len(r.data) {
		return nil, io.EOF
	}

	var (
		fields   []string
		field    []byte
		quoted   bool // current field began with a quote
		inQuotes bool
		column   = 1
	)

	for {
		if r.pos >= len(r.data) {
			if inQuotes && !r.lazyQuotes {
				return nil, r.fail(column, KindUnterminatedQuote)
			}
			// Lazy mode accepts an unterminated field as-is at EOF.
			fields = append(fields, string(field))
			return fields, nil
		}

		b := r.data[r.pos]
		r.pos++

		if inQuotes {
			switch {
			case b == r.quote:
				if r.pos < len(r.data) && r.data[r.pos] == r.quote {
					// "" escapes a literal quote.
					r.pos++
					field = append(field, r.quote)
					column += 2
					continue
				}
				if r.pos >= len(r.data) {
					inQuotes = false
					column++
					continue
				}
				next := r.data[r.pos]
				if next == r.comma || next == '\n' || next == '\r' {
					inQuotes = false
					column++
					continue
				}
				if r.lazyQuotes {
					// Stray quote becomes literal content.
					field = append(field, r.quote)
					column++
					continue
				}
				return nil, r.fail(column, KindQuote)
			case b == '\n':
				// Quoted fields may span physical lines.
				field = append(field, b)
				r.line++
				column = 1
			default:
				field = append(field, b)
				column++
			}
			continue
		}

		switch b {
		case r.comma:
			fields = append(fields, string(field))
			field = field[:0]
			quoted = false
			column++
		case '\n':
			fields = append(fields, string(field))
			r.line++
			return fields, nil
		case '\r':
			if r.pos < len(r.data) && r.data[r.pos] == '\n' {
				r.pos++
			}
			fields = append(fields, string(field))
			r.line++
			return fields, nil
		case r.quote:
			if len(field) == 0 && !quoted {
				inQuotes = true
				quoted = true
				column++
				continue
			}
			if r.lazyQuotes {
				field = append(field, b)
				column++
				continue
			}
			return nil, r.fail(column, KindBareQuote)
		default:
			field = append(field, b)
			column++
		}
	}
}

// skipBlankLines consumes record terminators with no content, mirroring
// the behavior of every CSV reader in the wild: an empty line is not an
// empty record.
func (r *reader) skipBlankLines() {
	for r.pos < len(r.data) {
		switch r.data[r.pos] {
		case '\n':
			r.pos++
			r.line++
		case '\r':
			r.pos++
			if r.pos < len(r.data) && r.data[r.pos] == '\n' {
				r.pos++
			}
			r.line++
		default:
			return
		}
	}
}

// fail builds the parse error and resynchronizes at the next record
// boundary so the scan can continue past the malformed record.
func (r *reader) fail(column int, kind ErrorKind) error {
	err := &parseError{line: r.line, column: column, kind: kind}
	r.resync()
	return err
}

// resync advances past the next unquoted record terminator, or to EOF.
func (r *reader) resync() {
	for r.pos < len(r.data) {
		b := r.data[r.pos]
		r.pos++
		switch b {
		case '\n':
			r.line++
			return
		case '\r':
			if r.pos < len(r.data) && r.data[r.pos] == '\n' {
				r.pos++
			}
			r.line++
			return
		}
	}
}
