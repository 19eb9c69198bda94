package rfc4180

import (
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func readAll(t *testing.T, r *reader) [][]string {
	t.Helper()
	var records [][]string
	for {
		rec, err := r.readRecord()
		if err == io.EOF {
			return records
		}
		require.NoError(t, err)
		records = append(records, rec)
	}
}

func TestReaderBasic(t *testing.T) {
	r := newReader([]byte("a,b,c\nd,e,f"), ',', false)
	records := readAll(t, r)
	assert.Equal(t, [][]string{{"a", "b", "c"}, {"d", "e", "f"}}, records)
}

func TestReaderCRLF(t *testing.T) {
	r := newReader([]byte("a,b\r\nc,d\r\n"), ',', false)
	records := readAll(t, r)
	assert.Equal(t, [][]string{{"a", "b"}, {"c", "d"}}, records)
}

func TestReaderLoneCRTerminates(t *testing.T) {
	r := newReader([]byte("a,b\rc,d"), ',', false)
	records := readAll(t, r)
	assert.Equal(t, [][]string{{"a", "b"}, {"c", "d"}}, records)
}

func TestReaderSkipsBlankLines(t *testing.T) {
	r := newReader([]byte("a,b\n\n\r\nc,d\n"), ',', false)
	records := readAll(t, r)
	assert.Equal(t, [][]string{{"a", "b"}, {"c", "d"}}, records)
}

func TestReaderEmptyInput(t *testing.T) {
	r := newReader(nil, ',', false)
	_, err := r.readRecord()
	assert.Equal(t, io.EOF, err)
}

func TestReaderEmptyFields(t *testing.T) {
	r := newReader([]byte(",,\n"), ',', false)
	records := readAll(t, r)
	assert.Equal(t, [][]string{{"", "", ""}}, records)
}

func TestReaderEscapedQuote(t *testing.T) {
	r := newReader([]byte("\"b\"\"c\",d\n"), ',', false)
	records := readAll(t, r)
	assert.Equal(t, [][]string{{`b"c`, "d"}}, records)
}

func TestReaderQuotedFieldSpansLines(t *testing.T) {
	r := newReader([]byte("\"a\nb\",c\nx,y\n"), ',', false)
	records := readAll(t, r)
	require.Len(t, records, 2)
	assert.Equal(t, []string{"a\nb", "c"}, records[0])
	assert.Equal(t, []string{"x", "y"}, records[1])
	// The embedded newline bumps the physical line counter.
	assert.Equal(t, 4, r.line)
}

func TestReaderClosingQuoteAtEOF(t *testing.T) {
	r := newReader([]byte(`"ab"`), ',', false)
	rec, err := r.readRecord()
	require.NoError(t, err)
	assert.Equal(t, []string{"ab"}, rec)
}

func TestReaderStrictBareQuote(t *testing.T) {
	r := newReader([]byte("a\"b,c\nd,e\n"), ',', false)
	_, err := r.readRecord()
	var pe *parseError
	require.ErrorAs(t, err, &pe)
	assert.Equal(t, KindBareQuote, pe.kind)

	// The reader resynchronized at the next record boundary.
	rec, err := r.readRecord()
	require.NoError(t, err)
	assert.Equal(t, []string{"d", "e"}, rec)
}

func TestReaderStrictExtraneousQuote(t *testing.T) {
	r := newReader([]byte("\"ab\"x,c\nok\n"), ',', false)
	_, err := r.readRecord()
	var pe *parseError
	require.ErrorAs(t, err, &pe)
	assert.Equal(t, KindQuote, pe.kind)

	rec, err := r.readRecord()
	require.NoError(t, err)
	assert.Equal(t, []string{"ok"}, rec)
}

func TestReaderStrictUnterminatedQuote(t *testing.T) {
	r := newReader([]byte("\"never closed\nmore"), ',', false)
	_, err := r.readRecord()
	var pe *parseError
	require.ErrorAs(t, err, &pe)
	assert.Equal(t, KindUnterminatedQuote, pe.kind)

	_, err = r.readRecord()
	assert.Equal(t, io.EOF, err)
}

func TestReaderLazyBareQuote(t *testing.T) {
	r := newReader([]byte("a\"b,c\n"), ',', true)
	rec, err := r.readRecord()
	require.NoError(t, err)
	assert.Equal(t, []string{`a"b`, "c"}, rec)
}

func TestReaderLazyStrayQuoteInQuotedField(t *testing.T) {
	r := newReader([]byte(`"ab"x,c`), ',', true)
	rec, err := r.readRecord()
	require.NoError(t, err)
	// The stray closing quote is literal and the field runs on, matching
	// encoding/csv's LazyQuotes contract.
	assert.Equal(t, []string{`ab"x,c`}, rec)
}

func TestReaderLazyUnterminatedQuote(t *testing.T) {
	r := newReader([]byte(`"abc`), ',', true)
	rec, err := r.readRecord()
	require.NoError(t, err)
	assert.Equal(t, []string{"abc"}, rec)
}

func TestReaderCustomDelimiter(t *testing.T) {
	r := newReader([]byte("a|b|c\n"), '|', false)
	rec, err := r.readRecord()
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b", "c"}, rec)
}
