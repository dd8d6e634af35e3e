// Package output formats a scan result as a human-readable table or as
// machine-readable JSON/CSV.
package output

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/kesslermo/sizetree"
)

// Formatter renders a *sizetree.ScanResult in one of three formats
// ("table", "json", "csv") and one of two modes ("tree", "summary").
type Formatter struct {
	format   string
	mode     string
	noHeader bool
}

// NewFormatter creates a Formatter with the given format and output mode.
func NewFormatter(format, mode string, noHeader bool) *Formatter {
	return &Formatter{format: format, mode: mode, noHeader: noHeader}
}

// Format converts result to the appropriate output string.
func (f *Formatter) Format(result *sizetree.ScanResult) string {
	if f.mode == "tree" {
		return f.formatTree(result)
	}
	return f.formatSummary(result)
}

// row is one flattened tree entry, used by both the tree table and the
// JSON/CSV encodings.
type row struct {
	Depth int    `json:"depth"`
	Path  string `json:"path"`
	Size  int64  `json:"size"`
	IsDir bool   `json:"isDir"`
}

func flatten(n *sizetree.Node, depth int, out *[]row) {
	if n == nil {
		return
	}
	*out = append(*out, row{Depth: depth, Path: n.Path, Size: n.Size, IsDir: n.IsDir})
	for _, c := range n.Children {
		flatten(c, depth+1, out)
	}
}

func (f *Formatter) formatTree(result *sizetree.ScanResult) string {
	var rows []row
	flatten(result.Root, 0, &rows)

	switch f.format {
	case "json":
		return f.toJSON(map[string]interface{}{
			"elapsedMs": result.ElapsedMillis,
			"entries":   rows,
		})
	case "csv":
		return f.rowsToCSV(rows)
	default:
		return f.treeTable(rows, result.ElapsedMillis)
	}
}

func (f *Formatter) formatSummary(result *sizetree.ScanResult) string {
	root := result.Root

	switch f.format {
	case "json":
		return f.toJSON(map[string]interface{}{
			"path":          root.Path,
			"size":          root.Size,
			"isDir":         root.IsDir,
			"childrenCount": len(root.Children),
			"elapsedMs":     result.ElapsedMillis,
		})
	case "csv":
		var buf bytes.Buffer
		w := csv.NewWriter(&buf)
		w.Write([]string{"Path", "Size", "IsDir", "ChildrenCount", "ElapsedMs"})
		w.Write([]string{
			root.Path,
			strconv.FormatInt(root.Size, 10),
			strconv.FormatBool(root.IsDir),
			strconv.Itoa(len(root.Children)),
			strconv.FormatInt(result.ElapsedMillis, 10),
		})
		w.Flush()
		return buf.String()
	default:
		return f.summaryTable(result)
	}
}

func (f *Formatter) summaryTable(result *sizetree.ScanResult) string {
	root := result.Root
	t := table.NewWriter()

	if !f.noHeader {
		t.AppendHeader(table.Row{"Path", "Size", "Is Dir", "Children", "Elapsed"})
	}
	t.AppendRow(table.Row{
		root.Path,
		formatBytes(root.Size),
		root.IsDir,
		len(root.Children),
		fmt.Sprintf("%dms", result.ElapsedMillis),
	})

	t.SetStyle(table.StyleColoredDark)
	return fmt.Sprintf("%s\n", t.Render())
}

func (f *Formatter) treeTable(rows []row, elapsedMs int64) string {
	t := table.NewWriter()

	if !f.noHeader {
		t.AppendHeader(table.Row{"Path", "Size", "Kind"})
	}

	sizes := make([]int64, len(rows))
	for i, r := range rows {
		sizes[i] = r.Size
	}
	sizeCol := formatAlignedColumn(sizes, true)

	for i, r := range rows {
		indent := strings.Repeat("  ", r.Depth)
		kind := "file"
		if r.IsDir {
			kind = "dir"
		}
		t.AppendRow(table.Row{indent + r.Path, sizeCol[i], kind})
	}

	t.SetStyle(table.StyleColoredDark)
	return fmt.Sprintf("%s\nelapsed: %dms\n", t.Render(), elapsedMs)
}

func (f *Formatter) toJSON(data interface{}) string {
	b, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return fmt.Sprintf("Error: %v\n", err)
	}
	return string(b)
}

func (f *Formatter) rowsToCSV(rows []row) string {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	w.Write([]string{"Depth", "Path", "Size", "IsDir"})
	for _, r := range rows {
		w.Write([]string{
			strconv.Itoa(r.Depth),
			r.Path,
			strconv.FormatInt(r.Size, 10),
			strconv.FormatBool(r.IsDir),
		})
	}
	w.Flush()
	return buf.String()
}

// formatBytes formats bytes to a human-readable string with binary unit
// suffixes ("1.5 KB", "2.3 MB", ...).
func formatBytes(b int64) string {
	const unit = 1024
	if b < unit {
		return fmt.Sprintf("%d B", b)
	}
	div, exp := int64(unit), 0
	for n := b / unit; n >= unit; n /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.1f %cB", float64(b)/float64(div), "KMGTPE"[exp])
}

// formatAlignedColumn formats a numeric column at a single scale (bytes:
// KB/MB/GB, ...) with decimal points aligned across rows, dimming entries
// under 1/1000th of the column maximum.
func formatAlignedColumn(values []int64, isBytes bool) []string {
	if len(values) == 0 {
		return []string{}
	}

	maxVal := int64(0)
	for _, v := range values {
		if v > maxVal {
			maxVal = v
		}
	}
	if maxVal == 0 {
		out := make([]string, len(values))
		for i := range out {
			out[i] = "0 B"
		}
		return out
	}

	unitSuffix := ""
	factor := 1.0
	if isBytes {
		units := []string{"B", "KB", "MB", "GB", "TB", "PB", "EB"}
		idx := 0
		unitMax := maxVal
		for unitMax >= 1024 && idx < len(units)-1 {
			unitMax /= 1024
			idx++
		}
		unitSuffix = units[idx]
		factor = math.Pow(1024, float64(idx))
	}

	raw := make([]string, len(values))
	maxLeft, maxRight := 0, 0
	for i, v := range values {
		scaled := float64(v) / factor
		decimals := 0
		if isBytes {
			decimals = 1
		}
		if decimals == 0 {
			raw[i] = fmt.Sprintf("%d", int64(math.Round(scaled)))
		} else {
			raw[i] = fmt.Sprintf("%.*f", decimals, scaled)
		}
		parts := strings.Split(raw[i], ".")
		if len(parts[0]) > maxLeft {
			maxLeft = len(parts[0])
		}
		if len(parts) > 1 && len(parts[1]) > maxRight {
			maxRight = len(parts[1])
		}
	}

	out := make([]string, len(values))
	for i, v := range values {
		parts := strings.Split(raw[i], ".")
		leftPart := parts[0]
		rightPart := ""
		if len(parts) > 1 {
			rightPart = parts[1]
		}
		leftPad := strings.Repeat(" ", maxLeft-len(leftPart))
		formatted := leftPad + leftPart
		if maxRight > 0 {
			formatted += "." + rightPart + strings.Repeat(" ", maxRight-len(rightPart))
		}
		if unitSuffix != "" {
			formatted += " " + unitSuffix
		}
		if float64(v) < float64(maxVal)/1000.0 {
			formatted = "\x1b[90m" + formatted + "\x1b[0m"
		}
		out[i] = formatted
	}
	return out
}
