package mapping

import (
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/jaiswalaj/sast-exporter-data-update/internal/model"
)

// Table maps old field values to their replacements. Built once at load
// time and read-only afterwards. Every key is a non-empty trimmed string.
type Table map[string]string

// fromRows builds a Table from tabular data where the first row is the
// header. Duplicate old values: last row wins. Rows with an empty old or
// new value are skipped with a warning rather than aborting the run.
func fromRows(rows [][]string, path, oldCol, newCol string, log *zap.Logger) (Table, error) {
	if len(rows) == 0 {
		return nil, &model.MappingLoadError{Path: path, Err: errors.New("mapping table has no header row")}
	}
	oldIdx, newIdx := -1, -1
	for i, h := range rows[0] {
		name := strings.TrimSpace(h)
		if name == oldCol && oldIdx < 0 {
			oldIdx = i
		}
		if name == newCol && newIdx < 0 {
			newIdx = i
		}
	}
	if oldIdx < 0 || newIdx < 0 {
		return nil, &model.MappingLoadError{
			Path: path,
			Err:  fmt.Errorf("required columns %q or %q not found in header", oldCol, newCol),
		}
	}

	table := make(Table, len(rows)-1)
	for i, row := range rows[1:] {
		var oldVal, newVal string
		if oldIdx < len(row) {
			oldVal = strings.TrimSpace(row[oldIdx])
		}
		if newIdx < len(row) {
			newVal = strings.TrimSpace(row[newIdx])
		}
		if oldVal == "" {
			log.Warn("skipping mapping row with empty old value", zap.Int("row", i+2))
			continue
		}
		if newVal == "" {
			log.Warn("skipping mapping row with empty new value",
				zap.Int("row", i+2), zap.String("old", oldVal))
			continue
		}
		table[oldVal] = newVal
	}
	return table, nil
}
