package app

import (
	"net/url"
	"strings"
)

// dbParams are the lib/pq connection parameters the api sets on its pool.
type dbParams struct {
	// ApplicationName tags every session in pg_stat_activity.
	ApplicationName             string
	DisablePreparedBinaryResult bool
}

// normalizeDBURL adds params to raw. Parameters already present in raw are
// left alone. Both the URL and the keyword/value connection string forms are
// accepted.
func normalizeDBURL(raw string, params dbParams) string {
	wanted := params.values()
	if len(wanted) == 0 {
		return raw
	}

	trimmed := strings.TrimSpace(raw)
	if !isURLForm(trimmed) {
		return appendKeywordParams(trimmed, wanted)
	}

	parsed, err := url.Parse(trimmed)
	if err != nil || parsed == nil {
		return raw
	}

	query := parsed.Query()
	changed := false
	for _, kv := range wanted {
		if query.Get(kv[0]) == "" {
			query.Set(kv[0], kv[1])
			changed = true
		}
	}
	if !changed {
		return raw
	}
	parsed.RawQuery = query.Encode()

	return parsed.String()
}

func (p dbParams) values() [][2]string {
	out := make([][2]string, 0, 2)
	if name := strings.TrimSpace(p.ApplicationName); name != "" {
		out = append(out, [2]string{"application_name", name})
	}
	if p.DisablePreparedBinaryResult {
		out = append(out, [2]string{"disable_prepared_binary_result", "yes"})
	}
	return out
}

func isURLForm(raw string) bool {
	return strings.HasPrefix(raw, "postgres://") || strings.HasPrefix(raw, "postgresql://")
}

func appendKeywordParams(raw string, wanted [][2]string) string {
	present := keywordParams(raw)
	var b strings.Builder
	b.WriteString(raw)
	for _, kv := range wanted {
		if _, ok := present[kv[0]]; ok {
			continue
		}
		if b.Len() > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(kv[0])
		b.WriteByte('=')
		b.WriteString(quoteKeywordValue(kv[1]))
	}
	return b.String()
}

func quoteKeywordValue(v string) string {
	if !strings.ContainsAny(v, ` '\`) {
		return v
	}
	v = strings.ReplaceAll(v, `\`, `\\`)
	v = strings.ReplaceAll(v, `'`, `\'`)
	return "'" + v + "'"
}

// keywordParams reads a keyword/value connection string. Quoted values
// containing spaces are not split.
func keywordParams(raw string) map[string]string {
	out := make(map[string]string)
	for _, token := range strings.Fields(raw) {
		key, value, ok := strings.Cut(token, "=")
		if !ok || key == "" {
			continue
		}
		out[key] = strings.Trim(value, `"'`)
	}
	return out
}

func dbNameFromURL(raw string) string {
	trimmed := strings.TrimSpace(raw)
	if isURLForm(trimmed) {
		parsed, err := url.Parse(trimmed)
		if err == nil && parsed != nil {
			if name := strings.TrimSpace(strings.TrimPrefix(parsed.Path, "/")); name != "" {
				return name
			}
		}
		return ""
	}

	return strings.TrimSpace(keywordParams(trimmed)["dbname"])
}
