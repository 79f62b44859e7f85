package display

import (
	"fmt"
	"strings"

	"github.com/standardbeagle/thar/internal/cluster"
)

// TreeFormatter formats surname clusters for terminal display
type TreeFormatter struct {
	options FormatterOptions
}

// FormatterOptions controls tree formatting
type FormatterOptions struct {
	Format         string // "text", "compact"
	ShowDevanagari bool   // Show the Devanagari form next to the canonical spelling
	ShowCategory   bool   // Show main/sub category ids and names
	MaxVariations  int    // Maximum variations listed per cluster, 0 for all
	Indent         string // Indentation string
}

// NewTreeFormatter creates a new tree formatter
func NewTreeFormatter(options FormatterOptions) *TreeFormatter {
	if options.Indent == "" {
		options.Indent = "  "
	}
	return &TreeFormatter{options: options}
}

// Format formats clusters for display
func (tf *TreeFormatter) Format(clusters []cluster.Cluster) string {
	if len(clusters) == 0 {
		return "No clusters"
	}

	switch tf.options.Format {
	case "compact":
		return tf.formatCompact(clusters)
	default:
		return tf.formatText(clusters)
	}
}

// formatText formats each cluster as a small ASCII tree
func (tf *TreeFormatter) formatText(clusters []cluster.Cluster) string {
	var sb strings.Builder

	summary := cluster.Summarize(clusters)
	sb.WriteString(fmt.Sprintf("Surname clusters: %d clusters, %d variations\n", summary.Clusters, summary.Variations))
	sb.WriteString(fmt.Sprintf("Confidence: high %d, medium %d, low %d\n",
		summary.ByConfidence[cluster.High], summary.ByConfidence[cluster.Medium], summary.ByConfidence[cluster.Low]))

	for i := range clusters {
		sb.WriteString("\n")
		tf.formatCluster(&sb, &clusters[i])
	}

	return sb.String()
}

// formatCluster writes the canonical spelling as the root and the variations
// as its branches
func (tf *TreeFormatter) formatCluster(sb *strings.Builder, c *cluster.Cluster) {
	sb.WriteString("→ ")
	sb.WriteString(c.CanonicalEnglish)
	if tf.options.ShowDevanagari && c.Devanagari != "" {
		sb.WriteString(fmt.Sprintf(" (%s)", c.Devanagari))
	}
	sb.WriteString(fmt.Sprintf(" [%s] #%d", c.Confidence, c.ID))
	if tf.options.ShowCategory {
		sb.WriteString(fmt.Sprintf(" %d/%d %s", c.MainID, c.SubID, c.SubName))
	}
	sb.WriteString("\n")

	shown := c.Variations
	hidden := 0
	if tf.options.MaxVariations > 0 && len(shown) > tf.options.MaxVariations {
		hidden = len(shown) - tf.options.MaxVariations
		shown = shown[:tf.options.MaxVariations]
	}

	for i, v := range shown {
		isLast := i == len(shown)-1 && hidden == 0
		sb.WriteString(tf.options.Indent)
		if isLast {
			sb.WriteString("└─→ ")
		} else {
			sb.WriteString("├─→ ")
		}
		sb.WriteString(v)
		sb.WriteString("\n")
	}
	if hidden > 0 {
		sb.WriteString(tf.options.Indent)
		sb.WriteString(fmt.Sprintf("└─→ (+%d more)\n", hidden))
	}
}

// formatCompact formats one cluster per line
func (tf *TreeFormatter) formatCompact(clusters []cluster.Cluster) string {
	lines := make([]string, 0, len(clusters))
	for _, c := range clusters {
		variations := c.Variations
		suffix := ""
		if tf.options.MaxVariations > 0 && len(variations) > tf.options.MaxVariations {
			suffix = fmt.Sprintf(" (+%d more)", len(variations)-tf.options.MaxVariations)
			variations = variations[:tf.options.MaxVariations]
		}
		lines = append(lines, fmt.Sprintf("%s → %s%s", c.CanonicalEnglish, strings.Join(variations, ", "), suffix))
	}
	return strings.Join(lines, "\n")
}
