package dtagen

import (
	"testing"
)

func TestReport(t *testing.T) {
	t.Parallel()

	report := &Report{}
	report.append(Outcome{Case: "simple", Version: 114, Path: "simple.dta", Size: 793})
	report.append(Outcome{Case: "version", Version: 113, Path: "version_113.dta", Skipped: true, Reason: "unsupported"})
	report.append(Outcome{Case: "version", Version: 114, Path: "version_114.dta", Size: 1000})

	t.Run("Outcomes preserve run order", func(t *testing.T) {
		t.Parallel()

		outcomes := report.Outcomes()
		if len(outcomes) != 3 {
			t.Fatalf("expected 3 outcomes, got %d", len(outcomes))
		}
		if outcomes[1].Case != "version" || !outcomes[1].Skipped {
			t.Errorf("expected the skip second, got %+v", outcomes[1])
		}
	})

	t.Run("Files excludes skips", func(t *testing.T) {
		t.Parallel()

		files := report.Files()
		if len(files) != 2 {
			t.Fatalf("expected 2 files, got %d", len(files))
		}
		for _, f := range files {
			if f.Skipped {
				t.Errorf("skip leaked into Files: %+v", f)
			}
		}
	})

	t.Run("Skips excludes files", func(t *testing.T) {
		t.Parallel()

		skips := report.Skips()
		if len(skips) != 1 {
			t.Fatalf("expected 1 skip, got %d", len(skips))
		}
		if skips[0].Version != 113 {
			t.Errorf("expected version 113 skip, got %d", skips[0].Version)
		}
	})

	t.Run("TotalBytes sums produced files", func(t *testing.T) {
		t.Parallel()

		if got := report.TotalBytes(); got != 1793 {
			t.Errorf("expected 1793 bytes, got %d", got)
		}
	})
}
