package kb

import "strings"

// Case-insensitive header aliases accepted for each semantic field.
// The first alias present in the header wins.
var (
	conditionAliases = []string{"condition", "disease", "name"}
	symptomsAliases  = []string{"symptoms", "symptom", "features"}
	adviceAliases    = []string{"advice", "self_care", "recommendations"}
	urlAliases       = []string{"url", "link", "source"}
)

// columnMap holds the resolved header index for each field, or -1 when no
// alias matched and the field defaults to empty.
type columnMap struct {
	condition int
	symptoms  int
	advice    int
	url       int
}

// resolveColumns maps a CSV header row to field indices.
func resolveColumns(header []string) columnMap {
	return columnMap{
		condition: findColumn(header, conditionAliases),
		symptoms:  findColumn(header, symptomsAliases),
		advice:    findColumn(header, adviceAliases),
		url:       findColumn(header, urlAliases),
	}
}

func findColumn(header []string, aliases []string) int {
	for _, alias := range aliases {
		for i, name := range header {
			if strings.EqualFold(strings.TrimSpace(name), alias) {
				return i
			}
		}
	}
	return -1
}

// field extracts a trimmed cell from a possibly ragged CSV row.
func field(row []string, col int) string {
	if col < 0 || col >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[col])
}
