// Package report renders validation results for humans (pterm) and
// machines (JSON).
package report

import (
	"github.com/pterm/pterm"

	"csvlint/rfc4180"
)

// Summary buckets the error list the way the human report presents it.
type Summary struct {
	Total      int `json:"total"`
	FieldCount int `json:"field_count"`
	LineEnding int `json:"line_ending"`
	Quote      int `json:"quote"`
	Other      int `json:"other"`
}

// Summarize counts errors per report category.
func Summarize(res *rfc4180.Result) Summary {
	s := Summary{Total: len(res.Errors)}
	for _, e := range res.Errors {
		switch e.Kind {
		case rfc4180.KindFieldCount:
			s.FieldCount++
		case rfc4180.KindInvalidLineEnding:
			s.LineEnding++
		case rfc4180.KindBareQuote, rfc4180.KindQuote,
			rfc4180.KindInvalidEscape, rfc4180.KindUnterminatedQuote:
			s.Quote++
		default:
			s.Other++
		}
	}
	return s
}

// Render prints the human-readable report to stdout. strict controls the
// success wording for RFC 4180 compliance runs.
func Render(res *rfc4180.Result, strict bool) {
	if res.Valid() {
		if strict {
			pterm.Printf("%s file is valid and complies with RFC 4180\n", pterm.LightGreen("✓"))
		} else {
			pterm.Printf("%s file is valid\n", pterm.LightGreen("✓"))
		}
		return
	}

	s := Summarize(res)
	pterm.Printf("%s\n", pterm.Red(pterm.Sprintf("Found %d validation error(s):", s.Total)))
	if s.FieldCount > 0 {
		pterm.Printf("  %s %d field count error(s)\n", pterm.Gray("-"), s.FieldCount)
	}
	if s.LineEnding > 0 {
		pterm.Printf("  %s %d line ending error(s) (RFC 4180 requires CRLF)\n", pterm.Gray("-"), s.LineEnding)
	}
	if s.Quote > 0 {
		pterm.Printf("  %s %d quote/escaping error(s)\n", pterm.Gray("-"), s.Quote)
	}
	if s.Other > 0 {
		pterm.Printf("  %s %d other error(s)\n", pterm.Gray("-"), s.Other)
	}
	pterm.Println()

	for _, e := range res.Errors {
		pterm.Printf("  %s\n", e.Error())
		if e.Record != nil {
			pterm.Printf("    %s %v\n", pterm.Gray("record:"), e.Record)
		}
	}

	if res.Halted {
		pterm.Printf("\n%s\n", pterm.Yellow("unable to parse any further"))
	}
}

// RenderStrictModeBanner announces the forced settings of strict mode,
// mirroring what the validator will actually do.
func RenderStrictModeBanner() {
	pterm.Println("Running in strict RFC 4180 compliance mode")
	pterm.Println("- Delimiter: comma (,)")
	pterm.Println("- Line endings: CRLF required")
	pterm.Println("- Quote escaping: strict")
	pterm.Println()
}
