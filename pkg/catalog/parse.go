package catalog

import (
	"errors"

	"github.com/tidwall/gjson"
)

var (
	errInvalidJSON = errors.New("payload is not valid JSON")
	errNotArray    = errors.New("payload is not a JSON array")
)

// ParseDataset turns a raw payload into a Dataset.
// The payload must be a JSON array; its first element is dropped.
// Record fields are read best-effort: missing strings become "", a missing
// score becomes 0, and a record without a string title is kept but Untitled.
func ParseDataset(raw []byte) (Dataset, error) {
	if !gjson.ValidBytes(raw) {
		return Dataset{}, &FetchError{Op: OpParse, Err: errInvalidJSON}
	}
	root := gjson.ParseBytes(raw)
	if !root.IsArray() {
		return Dataset{}, &FetchError{Op: OpParse, Err: errNotArray}
	}

	elems := root.Array()
	if len(elems) <= 1 {
		return Dataset{}, nil
	}

	records := make([]GameRecord, 0, len(elems)-1)
	for _, elem := range elems[1:] {
		records = append(records, recordFrom(elem))
	}
	return Dataset{records: records}, nil
}

func recordFrom(elem gjson.Result) GameRecord {
	var rec GameRecord
	if !elem.IsObject() {
		rec.Untitled = true
		return rec
	}

	title := elem.Get("title")
	if title.Type == gjson.String {
		rec.Title = title.Str
	} else {
		rec.Untitled = true
	}
	rec.Platform = elem.Get("platform").String()
	rec.Score = elem.Get("score").Float()
	rec.Genre = elem.Get("genre").String()
	rec.EditorsChoice = elem.Get("editors_choice").String()
	return rec
}
