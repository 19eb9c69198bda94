package rfc4180

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrorKindDescriptions(t *testing.T) {
	cases := map[ErrorKind]string{
		KindFieldCount:            "wrong number of fields",
		KindBareQuote:             `bare " in non-quoted field`,
		KindQuote:                 `extraneous or missing " in quoted field`,
		KindInvalidEscape:         "invalid escape sequence",
		KindUnterminatedQuote:     "unterminated quote",
		KindInvalidLineEnding:     "invalid line ending (RFC 4180 requires CRLF)",
		KindUnescapedSpecialChars: "field contains unescaped special characters",
		KindTrailingComma:         "trailing comma found",
		KindIo:                    "I/O error",
		KindUtf8:                  "UTF-8 error",
	}
	for kind, want := range cases {
		assert.Equal(t, want, kind.Description())
	}
}

func TestErrorKindFatality(t *testing.T) {
	fatal := []ErrorKind{KindIo, KindUtf8}
	recoverable := []ErrorKind{
		KindFieldCount, KindBareQuote, KindQuote, KindInvalidEscape,
		KindUnterminatedQuote, KindInvalidLineEnding,
		KindUnescapedSpecialChars, KindTrailingComma,
	}
	for _, k := range fatal {
		assert.True(t, k.Fatal(), "%s", k)
	}
	for _, k := range recoverable {
		assert.False(t, k.Fatal(), "%s", k)
	}
}

func TestValidationErrorFormatting(t *testing.T) {
	err := ValidationError{
		Record:    []string{"a", "b", "c"},
		RecordNum: 3,
		Kind:      KindFieldCount,
	}
	assert.Equal(t, "record #3: wrong number of fields", err.Error())

	err = ValidationError{RecordNum: 1, Kind: KindBareQuote}
	assert.Equal(t, `record #1: bare " in non-quoted field`, err.Error())

	err = ValidationError{RecordNum: 2, Kind: KindUtf8, Message: "invalid UTF-8 in field 0"}
	assert.Equal(t, "record #2: UTF-8 error: invalid UTF-8 in field 0", err.Error())
}

func TestResultValid(t *testing.T) {
	assert.True(t, (&Result{}).Valid())
	assert.False(t, (&Result{Halted: true}).Valid())
	assert.False(t, (&Result{Errors: []ValidationError{{Kind: KindFieldCount}}}).Valid())
}
