package rfc4180

import "fmt"

// ErrorKind classifies a structural deviation. The set is closed so that
// renderers and callers can match exhaustively.
type ErrorKind string

const (
	// KindFieldCount marks a record whose field count differs from the header's.
	KindFieldCount ErrorKind = "field_count"
	// KindBareQuote marks a quote appearing inside a non-quoted field.
	KindBareQuote ErrorKind = "bare_quote"
	// KindQuote marks an extraneous or misplaced quote in a quoted field.
	KindQuote ErrorKind = "quote"
	// KindInvalidEscape marks a malformed quote escape sequence.
	KindInvalidEscape ErrorKind = "invalid_escape"
	// KindUnterminatedQuote marks a quoted field with no closing quote before EOF.
	KindUnterminatedQuote ErrorKind = "unterminated_quote"
	// KindInvalidLineEnding marks a line terminator that is not CRLF.
	KindInvalidLineEnding ErrorKind = "invalid_line_ending"
	// KindUnescapedSpecialChars is reserved; no detection rule produces it yet.
	KindUnescapedSpecialChars ErrorKind = "unescaped_special_chars"
	// KindTrailingComma is reserved; no detection rule produces it yet.
	KindTrailingComma ErrorKind = "trailing_comma"
	// KindIo marks a stream-level read failure. Fatal.
	KindIo ErrorKind = "io"
	// KindUtf8 marks invalid text encoding in a decoded record. Fatal.
	KindUtf8 ErrorKind = "utf8"
)

// Description returns the human-readable meaning of the kind.
func (k ErrorKind) Description() string {
	switch k {
	case KindFieldCount:
		return "wrong number of fields"
	case KindBareQuote:
		return `bare " in non-quoted field`
	case KindQuote:
		return `extraneous or missing " in quoted field`
	case KindInvalidEscape:
		return "invalid escape sequence"
	case KindUnterminatedQuote:
		return "unterminated quote"
	case KindInvalidLineEnding:
		return "invalid line ending (RFC 4180 requires CRLF)"
	case KindUnescapedSpecialChars:
		return "field contains unescaped special characters"
	case KindTrailingComma:
		return "trailing comma found"
	case KindIo:
		return "I/O error"
	case KindUtf8:
		return "UTF-8 error"
	}
	return string(k)
}

// Fatal reports whether an error of this kind halts the scan. Structural
// deviations are recoverable; stream-level failures are not, because the
// underlying byte position is no longer trustworthy.
func (k ErrorKind) Fatal() bool {
	return k == KindIo || k == KindUtf8
}

// ValidationError describes one structural deviation found during a scan.
// Immutable once constructed.
type ValidationError struct {
	// Record holds the decoded fields for diagnostics. Nil when the record
	// could not be decoded at all.
	Record []string `json:"record,omitempty"`
	// RecordNum is the 1-indexed data record number, excluding the header.
	// 0 is the sentinel for "no valid header"; InvalidLineEnding errors
	// carry physical line numbers instead (the two numbering schemes are
	// deliberately independent).
	RecordNum int `json:"record_num"`
	// Kind classifies the deviation.
	Kind ErrorKind `json:"kind"`
	// Message carries the payload for Io/Utf8 kinds, empty otherwise.
	Message string `json:"message,omitempty"`
}

// Error implements the error interface.
func (e ValidationError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("record #%d: %s: %s", e.RecordNum, e.Kind.Description(), e.Message)
	}
	return fmt.Sprintf("record #%d: %s", e.RecordNum, e.Kind.Description())
}

// Result is the outcome of one validation run. Errors holds every
// deviation in detection order; the order is never rearranged. Halted is
// true when a fatal condition cut the scan short, in which case the last
// error (if any was added during the halting read) names the cause.
type Result struct {
	Errors []ValidationError `json:"errors"`
	Halted bool              `json:"halted"`
}

// Valid reports whether the scan completed without finding any deviation.
func (r *Result) Valid() bool {
	return len(r.Errors) == 0 && !r.Halted
}
