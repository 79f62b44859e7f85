package export

import (
	"io"
	"strconv"
	"strings"

	"github.com/standardbeagle/thar/internal/cluster"
)

// CSVHeader is the column order of the tabular export.
var CSVHeader = []string{
	"cluster_id",
	"canonical_english",
	"devanagari",
	"main_id",
	"main_name_np",
	"sub_id",
	"sub_name_np",
	"all_variations",
	"confidence",
	"notes",
}

// CSV renders a header line plus one line per cluster, joined by "\n" with no
// trailing newline. all_variations is always quoted and holds the variations
// joined by ", ". Other fields are quoted only when they contain a comma,
// quote or line break. Embedded quotes are doubled.
func CSV(clusters []cluster.Cluster) string {
	lines := make([]string, 0, len(clusters)+1)
	lines = append(lines, strings.Join(CSVHeader, ","))
	for i := range clusters {
		lines = append(lines, csvRow(&clusters[i]))
	}
	return strings.Join(lines, "\n")
}

// WriteCSV writes CSV(clusters) followed by a newline.
func WriteCSV(w io.Writer, clusters []cluster.Cluster) error {
	_, err := io.WriteString(w, CSV(clusters)+"\n")
	return err
}

func csvRow(c *cluster.Cluster) string {
	fields := []string{
		strconv.Itoa(c.ID),
		csvField(c.CanonicalEnglish),
		csvField(c.Devanagari),
		strconv.Itoa(c.MainID),
		csvField(c.MainName),
		strconv.Itoa(c.SubID),
		csvField(c.SubName),
		quote(strings.Join(c.Variations, ", ")),
		csvField(string(c.Confidence)),
		csvField(c.Notes),
	}
	return strings.Join(fields, ",")
}

func csvField(s string) string {
	if strings.ContainsAny(s, ",\"\r\n") {
		return quote(s)
	}
	return s
}

func quote(s string) string {
	return `"` + strings.ReplaceAll(s, `"`, `""`) + `"`
}
