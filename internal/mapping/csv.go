package mapping

import (
	"bytes"
	"encoding/csv"
	"os"

	"go.uber.org/zap"

	"github.com/jaiswalaj/sast-exporter-data-update/internal/model"
	"github.com/jaiswalaj/sast-exporter-data-update/internal/util"
)

// LoadCSV reads a mapping table from a CSV file with a header row.
func LoadCSV(path, oldCol, newCol string, log *zap.Logger) (Table, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &model.MappingLoadError{Path: path, Err: err}
	}
	r := csv.NewReader(bytes.NewReader(util.StripBOM(data)))
	r.FieldsPerRecord = -1
	rows, err := r.ReadAll()
	if err != nil {
		return nil, &model.MappingLoadError{Path: path, Err: err}
	}
	return fromRows(rows, path, oldCol, newCol, log)
}
