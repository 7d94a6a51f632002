package formatter

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/theoremus-urban-solutions/bikeshare-stats/stats"
)

// Formats lists the supported output formats
var Formats = []string{"text", "json", "xml", "pdf"}

// Render serializes a report in the named format
func Render(format string, r *stats.Report) ([]byte, error) {
	switch strings.ToLower(strings.TrimSpace(format)) {
	case "", "text":
		var buf bytes.Buffer
		if err := WriteText(&buf, r); err != nil {
			return nil, err
		}
		return buf.Bytes(), nil
	case "json":
		return BuildJSON(r)
	case "xml":
		return BuildXML(r)
	case "pdf":
		return BuildPDF(r)
	default:
		return nil, fmt.Errorf("unknown output format %q (supported: %s)", format, strings.Join(Formats, ", "))
	}
}
