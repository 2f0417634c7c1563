package transform

import (
	"encoding/json"
	"strings"

	"go.uber.org/zap"

	"github.com/jaiswalaj/sast-exporter-data-update/internal/mapping"
	"github.com/jaiswalaj/sast-exporter-data-update/internal/model"
	"github.com/jaiswalaj/sast-exporter-data-update/internal/record"
	"github.com/jaiswalaj/sast-exporter-data-update/internal/util"
)

// Drop reasons recorded in the audit trail.
const (
	ReasonUnmapped   = "unmapped"
	ReasonMissingKey = "missing_key"
)

// Options control per-record policy.
type Options struct {
	// SkipMissingKey drops records lacking the key field with a warning
	// instead of aborting the run.
	SkipMissingKey bool
}

// DropEntry describes one removed record so operators can audit exactly
// what was dropped and why.
type DropEntry struct {
	Index       int    `json:"index"`
	Value       string `json:"value,omitempty"`
	Fingerprint string `json:"fingerprint"`
	Reason      string `json:"reason"`
}

// Transformer rewrites one field of each record through the mapping table
// and filters out records with no mapping entry.
type Transformer struct {
	table mapping.Table
	key   string
	opts  Options
	log   *zap.Logger
}

func New(table mapping.Table, key string, opts Options, log *zap.Logger) *Transformer {
	return &Transformer{table: table, key: key, opts: opts, log: log}
}

// Apply processes records in input order. Every kept record had its key
// field rewritten to the mapped value; every other record is dropped and
// logged. Kept plus dropped always equals input.
func (t *Transformer) Apply(recs []record.Record) ([]record.Record, model.Summary, []DropEntry, error) {
	kept := make([]record.Record, 0, len(recs))
	var drops []DropEntry
	for i := range recs {
		rec := &recs[i]
		val, ok, err := rec.StringField(t.key)
		if !ok {
			if !t.opts.SkipMissingKey {
				return nil, model.Summary{}, nil, &model.SchemaError{Index: i, Key: t.key, Reason: "field missing"}
			}
			fp := fingerprintOf(rec)
			t.log.Warn("dropping record without key field",
				zap.Int("index", i), zap.String("key", t.key), zap.String("fingerprint", fp))
			drops = append(drops, DropEntry{Index: i, Fingerprint: fp, Reason: ReasonMissingKey})
			continue
		}
		if err != nil {
			return nil, model.Summary{}, nil, &model.SchemaError{Index: i, Key: t.key, Reason: "field is not a JSON string"}
		}

		cur := strings.TrimSpace(val)
		newVal, mapped := t.table[cur]
		if !mapped {
			fp := fingerprintOf(rec)
			t.log.Warn("dropping record with unmapped value",
				zap.Int("index", i), zap.String("key", t.key),
				zap.String("value", cur), zap.String("fingerprint", fp))
			drops = append(drops, DropEntry{Index: i, Value: cur, Fingerprint: fp, Reason: ReasonUnmapped})
			continue
		}
		rec.SetString(t.key, newVal)
		kept = append(kept, *rec)
	}
	sum := model.Summary{Input: len(recs), Kept: len(kept), Dropped: len(recs) - len(kept)}
	return kept, sum, drops, nil
}

func fingerprintOf(r *record.Record) string {
	raw, err := json.Marshal(r)
	if err != nil {
		return ""
	}
	return util.Fingerprint(raw)
}
