package record

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"

	"github.com/jaiswalaj/sast-exporter-data-update/internal/model"
	"github.com/jaiswalaj/sast-exporter-data-update/internal/util"
)

// ReadCollection parses path as a JSON array of objects, in one bulk read.
func ReadCollection(path string) ([]Record, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &model.InputFormatError{Path: path, Index: -1, Err: err}
	}
	dec := json.NewDecoder(bytes.NewReader(util.StripBOM(data)))
	tok, err := dec.Token()
	if err != nil {
		return nil, &model.InputFormatError{Path: path, Index: -1, Err: err}
	}
	if d, ok := tok.(json.Delim); !ok || d != '[' {
		return nil, &model.InputFormatError{
			Path:  path,
			Index: -1,
			Err:   fmt.Errorf("top-level value is %v, want an array of objects", tok),
		}
	}
	var recs []Record
	for i := 0; dec.More(); i++ {
		var r Record
		if err := dec.Decode(&r); err != nil {
			return nil, &model.InputFormatError{Path: path, Index: i, Err: err}
		}
		recs = append(recs, r)
	}
	if _, err := dec.Token(); err != nil {
		return nil, &model.InputFormatError{Path: path, Index: -1, Err: err}
	}
	return recs, nil
}

// WriteCollection serializes recs as an indented JSON array and writes it
// atomically, so a failure never leaves a partial output file.
func WriteCollection(path string, recs []Record) error {
	if recs == nil {
		recs = []Record{}
	}
	data, err := json.MarshalIndent(recs, "", "  ")
	if err != nil {
		return &model.OutputWriteError{Path: path, Err: err}
	}
	if err := util.WriteFileAtomic(path, data); err != nil {
		return &model.OutputWriteError{Path: path, Err: err}
	}
	return nil
}
