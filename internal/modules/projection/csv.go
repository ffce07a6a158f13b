package projection

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
)

// WriteCSV renders a projection as CSV, one row per projected year plus a
// header. Monetary values are rounded to 3 decimals to match the dashboard
// display.
func WriteCSV(w io.Writer, p *Projection) error {
	cw := csv.NewWriter(w)

	header := []string{"Year", "Revenue ($M)", "Operating Cost ($M)", "Operating Profit ($M)", "Cumulative Cash Flow ($M)"}
	if err := cw.Write(header); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}

	for _, fig := range p.Years {
		year := strconv.Itoa(fig.Year)
		if fig.CalendarYear > 0 {
			year = strconv.Itoa(fig.CalendarYear)
		}
		row := []string{
			year,
			formatMillions(fig.Revenue),
			formatMillions(fig.OperatingCost),
			formatMillions(fig.OperatingProfit),
			formatMillions(fig.Cumulative),
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("failed to write CSV row for year %d: %w", fig.Year, err)
		}
	}

	cw.Flush()
	return cw.Error()
}

func formatMillions(v float64) string {
	return strconv.FormatFloat(v, 'f', 3, 64)
}
