package rfc4180

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuditCleanCRLF(t *testing.T) {
	errs := auditLineEndings([]byte("a,b\r\nc,d\r\n"))
	assert.Empty(t, errs)
}

func TestAuditEmptyBuffer(t *testing.T) {
	assert.Empty(t, auditLineEndings(nil))
}

func TestAuditBareLF(t *testing.T) {
	errs := auditLineEndings([]byte("a,b\nc,d\ne,f\n"))
	require.Len(t, errs, 3)
	for i, e := range errs {
		assert.Equal(t, KindInvalidLineEnding, e.Kind)
		assert.Equal(t, i+1, e.RecordNum, "line numbers advance per terminator")
	}
}

func TestAuditLFAtBufferStart(t *testing.T) {
	errs := auditLineEndings([]byte("\na,b\r\n"))
	require.Len(t, errs, 1)
	assert.Equal(t, 1, errs[0].RecordNum)
}

func TestAuditLoneCRMidBuffer(t *testing.T) {
	errs := auditLineEndings([]byte("a,b\rc,d\r\n"))
	require.Len(t, errs, 1)
	assert.Equal(t, KindInvalidLineEnding, errs[0].Kind)
	// A lone CR does not advance the line counter.
	assert.Equal(t, 1, errs[0].RecordNum)
}

func TestAuditCRAtBufferEnd(t *testing.T) {
	errs := auditLineEndings([]byte("a,b\r\nc,d\r"))
	require.Len(t, errs, 1)
	assert.Equal(t, 2, errs[0].RecordNum)
}

func TestAuditMixedEndings(t *testing.T) {
	// Line 1 ends CRLF (clean), line 2 ends LF (flagged), line 3 ends CRLF.
	errs := auditLineEndings([]byte("a\r\nb\nc\r\n"))
	require.Len(t, errs, 1)
	assert.Equal(t, 2, errs[0].RecordNum)
}
