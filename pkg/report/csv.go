package report

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/dd0wney/storygraph/pkg/annotate"
)

// csvHeader is the column layout of the augmented node table: the
// original input columns followed by every derived column.
var csvHeader = []string{
	"characters",
	"house",
	"degree_centrality",
	"weighted_degree_centrality",
	"community",
	"eccentricity",
	"degree_rank",
	"weighted_degree_rank",
	"palette_index",
	"rank_color",
	"house_color",
}

// WriteCSV writes the augmented node table.
func WriteCSV(w io.Writer, rows []annotate.Annotated) error {
	writer := csv.NewWriter(w)

	if err := writer.Write(csvHeader); err != nil {
		return fmt.Errorf("write header: %w", err)
	}

	for _, row := range rows {
		record := []string{
			row.Label,
			row.House,
			strconv.Itoa(row.Degree),
			strconv.FormatFloat(row.WeightedDegree, 'f', -1, 64),
			strconv.Itoa(row.Community),
			strconv.Itoa(row.Eccentricity),
			strconv.Itoa(row.DegreeRank),
			strconv.Itoa(row.WeightedDegreeRank),
			strconv.Itoa(row.PaletteIndex),
			row.RankColor,
			row.HouseColor,
		}
		if err := writer.Write(record); err != nil {
			return fmt.Errorf("write row %q: %w", row.Label, err)
		}
	}

	writer.Flush()
	return writer.Error()
}

// ExportCSV writes the augmented node table to a file.
func ExportCSV(path string, rows []annotate.Annotated) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create export file: %w", err)
	}
	defer file.Close()

	return WriteCSV(file, rows)
}
