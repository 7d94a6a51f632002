package formatter

import (
	"encoding/json"

	"github.com/theoremus-urban-solutions/bikeshare-stats/stats"
)

// BuildJSON serializes a report to indented JSON
func BuildJSON(r *stats.Report) ([]byte, error) {
	return json.MarshalIndent(r, "", "  ")
}
