package report

import (
	"encoding/json"
	"time"

	"github.com/jaiswalaj/sast-exporter-data-update/internal/model"
	"github.com/jaiswalaj/sast-exporter-data-update/internal/transform"
	"github.com/jaiswalaj/sast-exporter-data-update/internal/util"
)

type auditReport struct {
	GeneratedAt time.Time             `json:"generatedAt"`
	KeyField    string                `json:"keyField"`
	Summary     model.Summary         `json:"summary"`
	Dropped     []transform.DropEntry `json:"dropped"`
}

// WriteAudit writes the drop audit for one run to path, atomically.
func WriteAudit(path, keyField string, sum model.Summary, drops []transform.DropEntry) error {
	if drops == nil {
		drops = []transform.DropEntry{}
	}
	r := auditReport{
		GeneratedAt: time.Now().UTC(),
		KeyField:    keyField,
		Summary:     sum,
		Dropped:     drops,
	}
	data, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return &model.OutputWriteError{Path: path, Err: err}
	}
	if err := util.WriteFileAtomic(path, data); err != nil {
		return &model.OutputWriteError{Path: path, Err: err}
	}
	return nil
}
