package mapping

import (
	"errors"

	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"github.com/jaiswalaj/sast-exporter-data-update/internal/model"
)

// LoadExcel reads a mapping table from the first worksheet of an .xlsx
// workbook. The first row is the header.
func LoadExcel(path, oldCol, newCol string, log *zap.Logger) (Table, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, &model.MappingLoadError{Path: path, Err: err}
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, &model.MappingLoadError{Path: path, Err: errors.New("workbook has no worksheets")}
	}
	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, &model.MappingLoadError{Path: path, Err: err}
	}
	return fromRows(rows, path, oldCol, newCol, log)
}
