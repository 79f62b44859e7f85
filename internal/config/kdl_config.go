package config

import (
	"fmt"
	"strconv"
	"strings"

	kdl "github.com/sblinch/kdl-go"
	"github.com/sblinch/kdl-go/document"

	"github.com/standardbeagle/thar/internal/debug"
)

// Parse reads KDL configuration text over the defaults. It does not validate.
func Parse(content string) (*Config, error) {
	cfg := Default()
	if err := parseInto(cfg, content); err != nil {
		return nil, err
	}
	return cfg, nil
}

func parseInto(cfg *Config, content string) error {
	doc, err := kdl.Parse(strings.NewReader(content))
	if err != nil {
		return fmt.Errorf("failed to parse KDL config: %w", err)
	}

	for _, n := range doc.Nodes {
		switch nodeName(n) {
		case "cluster":
			for _, cn := range n.Children {
				switch nodeName(cn) {
				case "threshold":
					if v, ok := firstFloatArg(cn); ok {
						cfg.Cluster.Threshold = v
					}
				}
			}
		case "input":
			for _, cn := range n.Children {
				switch nodeName(cn) {
				case "column":
					if s, ok := firstStringArg(cn); ok {
						cfg.Input.Column = s
					}
				case "last_token":
					if b, ok := firstBoolArg(cn); ok {
						cfg.Input.LastToken = b
					}
				case "fold_diacritics":
					if b, ok := firstBoolArg(cn); ok {
						cfg.Input.FoldDiacritics = b
					}
				case "sqlite_query":
					if s, ok := firstStringArg(cn); ok {
						cfg.Input.SQLiteQuery = s
					}
				}
			}
		case "export":
			for _, cn := range n.Children {
				assignSimpleString(cn, "format", func(v string) { cfg.Export.Format = v })
				assignSimpleString(cn, "output", func(v string) { cfg.Export.Output = v })
			}
		case "taxonomy":
			for _, cn := range n.Children {
				assignSimpleString(cn, "overlay", func(v string) { cfg.Taxonomy.Overlay = v })
			}
		case "watch":
			for _, cn := range n.Children {
				if nodeName(cn) == "debounce_ms" {
					if v, ok := firstIntArg(cn); ok {
						cfg.Watch.DebounceMs = v
					}
				}
			}
		case "logging":
			for _, cn := range n.Children {
				switch nodeName(cn) {
				case "debug":
					if b, ok := firstBoolArg(cn); ok {
						cfg.Logging.Debug = b
					}
				case "file":
					if b, ok := firstBoolArg(cn); ok {
						cfg.Logging.File = b
					}
				}
			}
		default:
			debug.Log("CONFIG", "ignoring unknown node %q\n", nodeName(n))
		}
	}
	return nil
}

func nodeName(n *document.Node) string {
	if n == nil || n.Name == nil {
		return ""
	}
	return n.Name.NodeNameString()
}
func firstIntArg(n *document.Node) (int, bool) {
	if len(n.Arguments) == 0 {
		return 0, false
	}
	switch v := n.Arguments[0].Value.(type) {
	case int64:
		return int(v), true
	case float64:
		return int(v), true
	default:
		return 0, false
	}
}
func firstStringArg(n *document.Node) (string, bool) {
	if len(n.Arguments) == 0 {
		return "", false
	}
	if s, ok := n.Arguments[0].Value.(string); ok {
		return s, true
	}
	return "", false
}
func firstBoolArg(n *document.Node) (bool, bool) {
	if len(n.Arguments) == 0 {
		return false, false
	}
	if b, ok := n.Arguments[0].Value.(bool); ok {
		return b, true
	}
	return false, false
}
func firstFloatArg(n *document.Node) (float64, bool) {
	if len(n.Arguments) == 0 {
		return 0, false
	}
	switch v := n.Arguments[0].Value.(type) {
	case float64:
		return v, true
	case int64:
		return float64(v), true
	default:
		debug.Log("CONFIG", "invalid number for '%s', got %T\n", nodeName(n), n.Arguments[0].Value)
		return 0, false
	}
}
func assignSimpleString(n *document.Node, target string, set func(string)) {
	if nodeName(n) == target {
		if s, ok := firstStringArg(n); ok {
			set(s)
		}
	}
}

// ToKDL renders cfg in the format Parse reads.
func ToKDL(cfg *Config) string {
	var b strings.Builder
	b.WriteString("// thar configuration\n\n")

	fmt.Fprintf(&b, "cluster {\n    threshold %s\n}\n\n", strconv.FormatFloat(cfg.Cluster.Threshold, 'f', -1, 64))

	b.WriteString("input {\n")
	fmt.Fprintf(&b, "    column %s\n", strconv.Quote(cfg.Input.Column))
	fmt.Fprintf(&b, "    last_token %t\n", cfg.Input.LastToken)
	fmt.Fprintf(&b, "    fold_diacritics %t\n", cfg.Input.FoldDiacritics)
	fmt.Fprintf(&b, "    sqlite_query %s\n", strconv.Quote(cfg.Input.SQLiteQuery))
	b.WriteString("}\n\n")

	b.WriteString("export {\n")
	fmt.Fprintf(&b, "    format %s\n", strconv.Quote(cfg.Export.Format))
	fmt.Fprintf(&b, "    output %s\n", strconv.Quote(cfg.Export.Output))
	b.WriteString("}\n\n")

	fmt.Fprintf(&b, "taxonomy {\n    overlay %s\n}\n\n", strconv.Quote(cfg.Taxonomy.Overlay))
	fmt.Fprintf(&b, "watch {\n    debounce_ms %d\n}\n\n", cfg.Watch.DebounceMs)
	fmt.Fprintf(&b, "logging {\n    debug %t\n    file %t\n}\n", cfg.Logging.Debug, cfg.Logging.File)

	return b.String()
}
