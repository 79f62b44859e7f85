package export

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/cespare/xxhash/v2"

	"github.com/standardbeagle/thar/internal/cluster"
)

// Document is the JSON export envelope.
type Document struct {
	Fingerprint string            `json:"fingerprint"`
	Threshold   float64           `json:"threshold"`
	Summary     cluster.Summary   `json:"summary"`
	Clusters    []cluster.Cluster `json:"clusters"`
}

// NewDocument wraps clusters with their summary and fingerprint.
func NewDocument(clusters []cluster.Cluster, threshold float64) Document {
	if clusters == nil {
		clusters = []cluster.Cluster{}
	}
	return Document{
		Fingerprint: Fingerprint(clusters),
		Threshold:   threshold,
		Summary:     cluster.Summarize(clusters),
		Clusters:    clusters,
	}
}

// Fingerprint hashes the CSV rendering of clusters, so two runs with the same
// result share a fingerprint.
func Fingerprint(clusters []cluster.Cluster) string {
	return fmt.Sprintf("%016x", xxhash.Sum64String(CSV(clusters)))
}

// WriteJSON writes an indented Document.
func WriteJSON(w io.Writer, clusters []cluster.Cluster, threshold float64) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	return enc.Encode(NewDocument(clusters, threshold))
}
