package dataset

import (
	"strings"
)

const bom = "\uFEFF"

// splitLines strips a leading byte-order mark, splits on CR/LF and drops
// blank lines. Quoted fields never span lines in this format.
func splitLines(raw string) []string {
	raw = strings.TrimPrefix(raw, bom)
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}
	parts := strings.Split(raw, "\n")
	lines := make([]string, 0, len(parts))
	for _, l := range parts {
		l = strings.TrimSuffix(l, "\r")
		if strings.TrimSpace(l) == "" {
			continue
		}
		lines = append(lines, l)
	}
	return lines
}

// splitLine splits one CSV line into trimmed fields. Commas inside double
// quotes are literal and a doubled quote inside quotes yields one quote.
func splitLine(line string) []string {
	var (
		fields  []string
		cur     strings.Builder
		inQuote bool
	)
	for i := 0; i < len(line); i++ {
		c := line[i]
		switch {
		case c == '"':
			if inQuote && i+1 < len(line) && line[i+1] == '"' {
				cur.WriteByte('"')
				i++
				continue
			}
			inQuote = !inQuote
		case c == ',' && !inQuote:
			fields = append(fields, strings.TrimSpace(cur.String()))
			cur.Reset()
		default:
			cur.WriteByte(c)
		}
	}
	fields = append(fields, strings.TrimSpace(cur.String()))
	return fields
}
