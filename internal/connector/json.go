package connector

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"sort"

	"autoviz/internal/dataset"
)

// LoadJSON reads a JSON document into a table. The source may be a file path
// or an inline JSON string. Two shapes are supported: a list of record
// objects, or a single object mapping column names to value arrays.
func LoadJSON(source string, opt Options) (*dataset.Table, error) {
	raw := []byte(source)
	if info, err := os.Stat(source); err == nil && !info.IsDir() {
		b, err := os.ReadFile(source)
		if err != nil {
			return nil, fmt.Errorf("open json: %w", err)
		}
		raw = b
	}
	return tableFromJSON(raw, opt)
}

// ParseJSON materializes in-memory JSON bytes of either supported shape.
func ParseJSON(raw []byte, opt Options) (*dataset.Table, error) {
	return tableFromJSON(raw, opt)
}

func tableFromJSON(raw []byte, opt Options) (*dataset.Table, error) {
	var any0 any
	if err := json.Unmarshal(raw, &any0); err != nil {
		return nil, fmt.Errorf("decode json: %w", err)
	}
	return tableFromDecoded(any0, raw, opt)
}

func tableFromDecoded(doc any, raw []byte, opt Options) (*dataset.Table, error) {
	switch v := doc.(type) {
	case []any:
		return tableFromRecordList(v, raw, opt)
	case map[string]any:
		if cols, ok := columnArrays(v); ok {
			names := orderedKeys(raw, v)
			return dataset.FromValues(names, cols)
		}
		// Single object becomes a one-row table.
		return tableFromRecordList([]any{v}, raw, opt)
	default:
		return nil, fmt.Errorf("connector: unsupported json structure")
	}
}

func tableFromRecordList(records []any, raw []byte, opt Options) (*dataset.Table, error) {
	if opt.MaxRows > 0 && len(records) > opt.MaxRows {
		records = records[:opt.MaxRows]
	}
	keyset := map[string]bool{}
	var first map[string]any
	for _, rec := range records {
		obj, ok := rec.(map[string]any)
		if !ok {
			return nil, fmt.Errorf("connector: json record is not an object")
		}
		if first == nil {
			first = obj
		}
		for k := range obj {
			keyset[k] = true
		}
	}
	if len(keyset) == 0 {
		return nil, dataset.ErrNoColumns
	}
	names := orderedKeys(raw, first)
	for k := range keyset {
		if !containsName(names, k) {
			names = append(names, k)
		}
	}

	cols := make(map[string][]any, len(names))
	for _, name := range names {
		vals := make([]any, len(records))
		for i, rec := range records {
			vals[i] = rec.(map[string]any)[name]
		}
		cols[name] = vals
	}
	return dataset.FromValues(names, cols)
}

// columnArrays reports whether every value of the object is an array, the
// map-of-columns form.
func columnArrays(obj map[string]any) (map[string][]any, bool) {
	out := make(map[string][]any, len(obj))
	for k, v := range obj {
		arr, ok := v.([]any)
		if !ok {
			return nil, false
		}
		out[k] = arr
	}
	return out, len(out) > 0
}

// orderedKeys recovers the key order of the first JSON object by scanning
// the raw token stream; decoded maps lose it. Falls back to sorted order.
func orderedKeys(raw []byte, obj map[string]any) []string {
	var keys []string
	dec := json.NewDecoder(bytes.NewReader(raw))
	depth := 0
	for {
		tok, err := dec.Token()
		if err != nil {
			break
		}
		switch t := tok.(type) {
		case json.Delim:
			switch t {
			case '{':
				depth++
			case '}':
				if depth--; depth == 0 && len(keys) > 0 {
					return keys
				}
			}
		case string:
			if depth == 1 {
				keys = append(keys, t)
				skipValue(dec)
			}
		}
		if depth < 0 {
			break
		}
	}
	if len(keys) > 0 {
		return keys
	}
	for k := range obj {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// skipValue consumes the value following an object key.
func skipValue(dec *json.Decoder) {
	tok, err := dec.Token()
	if err != nil {
		return
	}
	if d, ok := tok.(json.Delim); ok && (d == '{' || d == '[') {
		depth := 1
		for depth > 0 {
			t, err := dec.Token()
			if err != nil {
				return
			}
			if d, ok := t.(json.Delim); ok {
				switch d {
				case '{', '[':
					depth++
				case '}', ']':
					depth--
				}
			}
		}
	}
}

func containsName(names []string, name string) bool {
	for _, n := range names {
		if n == name {
			return true
		}
	}
	return false
}
