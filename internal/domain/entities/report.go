package entities

import "go.uber.org/multierr"

// ProcessReport collects the outcome of a processing run.
type ProcessReport struct {
	Results  []StripResult
	Failures []FileError
}

// AddResult records a successfully handled file.
func (r *ProcessReport) AddResult(result StripResult) {
	r.Results = append(r.Results, result)
}

// AddFailure records a file that could not be handled.
func (r *ProcessReport) AddFailure(path string, err error) {
	r.Failures = append(r.Failures, FileError{Path: path, Err: err})
}

// LinesChanged sums the changed lines over every handled file.
func (r *ProcessReport) LinesChanged() int {
	total := 0
	for _, result := range r.Results {
		total += result.LinesChanged
	}
	return total
}

// Err combines every per-file failure, or returns nil when all files succeeded.
func (r *ProcessReport) Err() error {
	var err error
	for i := range r.Failures {
		err = multierr.Append(err, &r.Failures[i])
	}
	return err
}
