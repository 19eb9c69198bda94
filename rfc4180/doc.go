// Package rfc4180 validates CSV byte streams against the RFC 4180 grammar.
//
// Validate buffers the whole input once, optionally audits line endings,
// then tokenizes records with a configurable dialect (delimiter byte and
// quoting strictness) and cross-checks every record's field count against
// the header. Every structural deviation is classified into a closed
// taxonomy and collected into a Result; recoverable deviations are
// recorded and scanning continues, fatal ones set Halted and stop the
// scan.
package rfc4180
