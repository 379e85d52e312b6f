package dtagen

// Outcome records the result of one (case, version) generation attempt:
// either a materialized file with its byte size, or a recorded skip with
// the reason the version could not encode the schema.
type Outcome struct {
	// Case is the fixture case name
	Case string
	// Version is the attempted format version
	Version int
	// Path is the destination file path
	Path string
	// Size is the written file size in bytes; zero when skipped
	Size int64
	// Skipped marks a recorded version incompatibility
	Skipped bool
	// Reason describes why the version was skipped; empty on success
	Reason string
}

// Report is the ordered record of a generation run, one Outcome per
// attempted (case, version) pair plus one per compressed copy.
type Report struct {
	outcomes []Outcome
}

// append records one outcome in run order
func (r *Report) append(o Outcome) {
	r.outcomes = append(r.outcomes, o)
}

// Outcomes return all outcomes in run order.
func (r *Report) Outcomes() []Outcome {
	return r.outcomes
}

// Files returns the outcomes that produced a file.
func (r *Report) Files() []Outcome {
	var files []Outcome
	for _, o := range r.outcomes {
		if !o.Skipped {
			files = append(files, o)
		}
	}
	return files
}

// Skips returns the outcomes recorded as version incompatibilities.
func (r *Report) Skips() []Outcome {
	var skips []Outcome
	for _, o := range r.outcomes {
		if o.Skipped {
			skips = append(skips, o)
		}
	}
	return skips
}

// TotalBytes returns the combined size of all produced files.
func (r *Report) TotalBytes() int64 {
	var total int64
	for _, o := range r.outcomes {
		total += o.Size
	}
	return total
}
