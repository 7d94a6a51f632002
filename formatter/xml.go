package formatter

import (
	"encoding/xml"

	"github.com/theoremus-urban-solutions/bikeshare-stats/stats"
)

type xmlReport struct {
	XMLName xml.Name `xml:"BikeshareReport"`
	*stats.Report
}

// BuildXML serializes a report to XML with a declaration header
func BuildXML(r *stats.Report) ([]byte, error) {
	body, err := xml.MarshalIndent(xmlReport{Report: r}, "", "  ")
	if err != nil {
		return nil, err
	}
	return append([]byte(xml.Header), body...), nil
}
