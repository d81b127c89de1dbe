package espn

import (
	"log/slog"
	"strings"

	"github.com/preston-bernstein/nba-dashboard-service/internal/logging"
)

// Diagnostics collects the field paths a mapper had to default because the
// payload left them out.
type Diagnostics struct {
	missing []string
}

// Missing records that path was absent.
func (d *Diagnostics) Missing(path string) {
	if d == nil {
		return
	}
	d.missing = append(d.missing, path)
}

// Paths returns the recorded paths in the order they were seen.
func (d *Diagnostics) Paths() []string {
	if d == nil {
		return nil
	}
	return append([]string(nil), d.missing...)
}

func (d *Diagnostics) Empty() bool {
	return d == nil || len(d.missing) == 0
}

// Log emits one debug line listing the defaulted fields, if any.
func (d *Diagnostics) Log(logger *slog.Logger, msg string, args ...any) {
	if d.Empty() {
		return
	}
	args = append(args,
		logging.FieldMissing, strings.Join(d.Paths(), ","),
		logging.FieldCount, len(d.missing),
	)
	logging.Debug(logger, msg, args...)
}
