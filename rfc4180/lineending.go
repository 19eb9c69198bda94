package rfc4180

// auditLineEndings scans the raw buffer for line terminators that are not
// exactly CRLF, emitting one InvalidLineEnding error per occurrence in
// left-to-right order. A bare LF (including one at buffer start) and a CR
// not followed by LF (including one at buffer end) are each malformed.
// A paired CRLF increments the line counter exactly once, on the LF.
//
// Line numbers start at 1 and are independent of record numbers: a quoted
// field spanning several physical lines keeps the two schemes apart.
func auditLineEndings(data []byte) []ValidationError {
	var errs []ValidationError
	line := 1
	for i := 0; i < len(data); i++ {
		switch data[i] {
		case '\n':
			if i == 0 || data[i-1] != '\r' {
				errs = append(errs, ValidationError{RecordNum: line, Kind: KindInvalidLineEnding})
			}
			line++
		case '\r':
			if i+1 >= len(data) || data[i+1] != '\n' {
				errs = append(errs, ValidationError{RecordNum: line, Kind: KindInvalidLineEnding})
			}
		}
	}
	return errs
}
