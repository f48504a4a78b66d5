package yaopets

import (
	"encoding/json"
	"fmt"
)

// Collection is the stable client-side shape of every list response. Total
// is the full collection size from pagination metadata when the backend
// sends it, otherwise the page length.
type Collection[T any] struct {
	Items      []T
	Total      int64
	NextCursor string
}

// Empty is the degraded value a failed secondary fetch falls back to.
func Empty[T any]() Collection[T] {
	return Collection[T]{Items: []T{}}
}

type paginationMeta struct {
	Total      int64   `json:"total"`
	NextCursor *string `json:"nextCursor"`
}

// decodeCollection accepts either a bare JSON array or a wrapped object
// ({<name>: [...], pagination: {total}}) and normalizes each record's
// identifier. Presentation code never sees the difference.
func decodeCollection[T any](data []byte, name string) (Collection[T], error) {
	var raws []json.RawMessage

	if err := json.Unmarshal(data, &raws); err != nil {
		// wrapped object shape
		var wrapped map[string]json.RawMessage
		if err := json.Unmarshal(data, &wrapped); err != nil {
			return Collection[T]{}, fmt.Errorf("unexpected list shape: %w", err)
		}
		body, ok := wrapped[name]
		if !ok {
			return Collection[T]{}, fmt.Errorf("unexpected list shape: no %q field", name)
		}
		if err := json.Unmarshal(body, &raws); err != nil {
			return Collection[T]{}, fmt.Errorf("unexpected list shape: %w", err)
		}

		items, err := decodeRecords[T](raws)
		if err != nil {
			return Collection[T]{}, err
		}

		out := Collection[T]{Items: items, Total: int64(len(items))}
		if pg, ok := wrapped["pagination"]; ok {
			var meta paginationMeta
			if err := json.Unmarshal(pg, &meta); err == nil {
				out.Total = meta.Total
				if meta.NextCursor != nil {
					out.NextCursor = *meta.NextCursor
				}
			}
		}
		return out, nil
	}

	items, err := decodeRecords[T](raws)
	if err != nil {
		return Collection[T]{}, err
	}
	return Collection[T]{Items: items, Total: int64(len(items))}, nil
}

func decodeRecords[T any](raws []json.RawMessage) ([]T, error) {
	items := make([]T, 0, len(raws))
	for _, r := range raws {
		var item T
		if err := json.Unmarshal(normalizeID(r), &item); err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, nil
}

// decodeRecord normalizes and decodes a single object body.
func decodeRecord[T any](data []byte) (*T, error) {
	var item T
	if err := json.Unmarshal(normalizeID(data), &item); err != nil {
		return nil, err
	}
	return &item, nil
}

// normalizeID folds a database-native `_id` field into `id` when the record
// has no `id` of its own. Records already carrying `id` pass through
// untouched, as does anything that is not a JSON object.
func normalizeID(data []byte) []byte {
	var obj map[string]json.RawMessage
	if err := json.Unmarshal(data, &obj); err != nil {
		return data
	}
	raw, hasDBID := obj["_id"]
	if !hasDBID {
		return data
	}
	if id, hasID := obj["id"]; hasID && string(id) != `""` && string(id) != "null" {
		return data
	}

	obj["id"] = raw
	delete(obj, "_id")
	out, err := json.Marshal(obj)
	if err != nil {
		return data
	}
	return out
}
