package sheet

import (
	"strings"
)

// invisible berisi karakter tak terlihat yang sering ikut ter-export dari spreadsheet
var invisible = strings.NewReplacer(
	"\u200b", "",
	"\u200c", "",
	"\u200d", "",
	"\ufeff", "",
)

// CleanField membuang zero-width space / BOM lalu trim whitespace.
func CleanField(s string) string {
	return strings.TrimSpace(invisible.Replace(s))
}

// ParseRows memecah body CSV menjadi baris dan kolom.
// Parsing dilakukan per baris fisik: newline di dalam field ber-quote tidak didukung.
func ParseRows(body string) [][]string {
	body = strings.ReplaceAll(body, "\r\n", "\n")
	lines := strings.Split(body, "\n")

	rows := make([][]string, 0, len(lines))
	for _, line := range lines {
		// baris yang hanya berisi BOM / zero-width dianggap kosong
		if CleanField(line) == "" {
			continue
		}
		rows = append(rows, SplitLine(line))
	}
	return rows
}

// SplitLine memecah satu baris pada koma yang berada di luar tanda kutip.
func SplitLine(line string) []string {
	var fields []string
	start := 0
	inQuotes := false
	for i := 0; i < len(line); i++ {
		switch line[i] {
		case '"':
			inQuotes = !inQuotes
		case ',':
			if !inQuotes {
				fields = append(fields, cleanQuoted(line[start:i]))
				start = i + 1
			}
		}
	}
	return append(fields, cleanQuoted(line[start:]))
}

func cleanQuoted(raw string) string {
	raw = strings.TrimPrefix(raw, `"`)
	raw = strings.TrimSuffix(raw, `"`)
	return CleanField(raw)
}

// Body mengembalikan baris data tanpa header (baris 0).
func Body(rows [][]string) [][]string {
	if len(rows) <= 1 {
		return nil
	}
	return rows[1:]
}
