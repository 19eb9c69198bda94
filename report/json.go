package report

import (
	"encoding/json"
	"fmt"

	"csvlint/rfc4180"
)

// Report is the machine-readable validation report for one file.
type Report struct {
	File    string                    `json:"file"`
	Valid   bool                      `json:"valid"`
	Halted  bool                      `json:"halted"`
	Summary Summary                   `json:"summary"`
	Errors  []rfc4180.ValidationError `json:"errors"`
}

// New builds the JSON report for a validation result.
func New(file string, res *rfc4180.Result) Report {
	errs := res.Errors
	if errs == nil {
		errs = []rfc4180.ValidationError{}
	}
	return Report{
		File:    file,
		Valid:   res.Valid(),
		Halted:  res.Halted,
		Summary: Summarize(res),
		Errors:  errs,
	}
}

// MarshalJSON marshals with pretty formatting for human and tool
// consumption alike; the shape is stable for golden assertions.
func MarshalJSON(v interface{}) ([]byte, error) {
	return json.MarshalIndent(v, "", "  ")
}

// OutputJSON marshals and prints JSON using MarshalJSON
func OutputJSON(v interface{}) error {
	data, err := MarshalJSON(v)
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}
	fmt.Println(string(data))
	return nil
}
