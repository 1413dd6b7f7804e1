package service

import (
	"net/url"
	"strconv"
	"strings"
)

// documentQuery translates list query parameters into a store filter and
// sort. Only whitelisted fields are honored; anything else is ignored rather
// than rejected. Values are coerced per field kind so numeric fields match
// the stored number, not its string form; an uncoercible value drops the
// filter key. `sort=-field` sorts descending.
func documentQuery(values url.Values, fields map[string]fieldKind) (map[string]interface{}, string, int) {
	filter := map[string]interface{}{}
	for key, vals := range values {
		kind, ok := fields[key]
		if !ok || len(vals) == 0 {
			continue
		}
		value, ok := coerceQueryValue(vals[0], kind)
		if !ok {
			continue
		}
		filter[key] = value
	}

	sortField := ""
	sortDir := 1
	if raw := strings.TrimSpace(values.Get("sort")); raw != "" {
		if strings.HasPrefix(raw, "-") {
			sortDir = -1
			raw = raw[1:]
		}
		if _, ok := fields[raw]; ok {
			sortField = raw
		}
	}
	return filter, sortField, sortDir
}

func coerceQueryValue(raw string, kind fieldKind) (interface{}, bool) {
	switch kind {
	case intField:
		value, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return nil, false
		}
		return value, true
	case floatField:
		value, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return nil, false
		}
		return value, true
	default:
		return raw, true
	}
}
