package rfc4180

import (
	"fmt"
	"io"
	"unicode/utf8"

	"csvlint/errors"
)

// DefaultDelimiter is used when Config.Delimiter is left zero.
const DefaultDelimiter = byte(',')

// Config holds the dialect and policy for one validation run. It is
// consumed, not retained: concurrent runs with separate Configs are
// independent.
type Config struct {
	// Delimiter is the single-byte field separator. Zero means comma.
	Delimiter byte
	// LazyQuotes relaxes quoting so malformed quote placement is
	// tokenized around instead of failing the record. It also disables
	// the field-count consistency check: leniency exists precisely to
	// tolerate ragged files.
	LazyQuotes bool
	// StrictCompliance enables the CRLF line-ending audit. Callers
	// wanting full RFC 4180 semantics must also pass a comma delimiter
	// and leave LazyQuotes off; the CLI enforces that mapping.
	StrictCompliance bool
}

// Validate reads the whole of r and validates it against the configured
// dialect. It returns a non-nil error only when the initial read fails;
// every structural deviation becomes data in the Result instead.
func Validate(r io.Reader, cfg Config) (*Result, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read input")
	}
	return ValidateBytes(data, cfg), nil
}

// ValidateBytes validates an already materialized buffer. The whole input
// is held in memory because the line-ending audit needs one-byte
// lookback/lookahead across the entire stream.
func ValidateBytes(data []byte, cfg Config) *Result {
	delim := cfg.Delimiter
	if delim == 0 {
		delim = DefaultDelimiter
	}

	result := &Result{}

	// The audit pass runs first and never halts; its errors lead the list.
	if cfg.StrictCompliance {
		result.Errors = append(result.Errors, auditLineEndings(data)...)
	}

	rd := newReader(data, delim, cfg.LazyQuotes)

	// The first successfully read record is the header and establishes
	// the expected field count. A failure here is recorded with the
	// record number 0 sentinel and stops the scan: with no usable header
	// there is nothing left to check.
	header, err := rd.readRecord()
	if err == io.EOF {
		return result
	}
	if err != nil {
		result.Errors = append(result.Errors, classify(err, 0))
		result.Halted = true
		return result
	}
	if msg, bad := invalidUTF8(header); bad {
		result.Errors = append(result.Errors, ValidationError{RecordNum: 0, Kind: KindUtf8, Message: msg})
		result.Halted = true
		return result
	}
	expected := len(header)

	// Data records are numbered from 1, excluding the header. Every read
	// attempt consumes a number, failed or not, so numbering stays stable
	// across resynchronization.
	for recordNum := 1; ; recordNum++ {
		record, err := rd.readRecord()
		if err == io.EOF {
			return result
		}
		if err != nil {
			// Recoverable syntax failure: record it and keep scanning
			// from the next record boundary the reader found.
			result.Errors = append(result.Errors, classify(err, recordNum))
			continue
		}
		if msg, bad := invalidUTF8(record); bad {
			result.Errors = append(result.Errors, ValidationError{RecordNum: recordNum, Kind: KindUtf8, Message: msg})
			result.Halted = true
			return result
		}
		if !cfg.LazyQuotes && len(record) != expected {
			result.Errors = append(result.Errors, ValidationError{
				Record:    record,
				RecordNum: recordNum,
				Kind:      KindFieldCount,
			})
		}
	}
}

// classify maps a reader failure onto the taxonomy. Anything that is not
// a recognized quoting violation is a stream-level failure and carries
// its message as payload.
func classify(err error, recordNum int) ValidationError {
	var pe *parseError
	if errors.As(err, &pe) {
		return ValidationError{RecordNum: recordNum, Kind: pe.kind}
	}
	return ValidationError{RecordNum: recordNum, Kind: KindIo, Message: err.Error()}
}

// invalidUTF8 reports the first field of the record that is not valid
// UTF-8. Fields were decoded from raw bytes, so this is where encoding
// failures surface.
func invalidUTF8(record []string) (string, bool) {
	for i, f := range record {
		if !utf8.ValidString(f) {
			return fmt.Sprintf("invalid UTF-8 in field %d", i), true
		}
	}
	return "", false
}
