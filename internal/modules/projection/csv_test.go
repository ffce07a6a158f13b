package projection

import (
	"bytes"
	"encoding/csv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteCSV(t *testing.T) {
	p, err := Compute(baselineAssumptions())
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, p))

	records, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 6) // header + 5 years

	assert.Equal(t, []string{"Year", "Revenue ($M)", "Operating Cost ($M)", "Operating Profit ($M)", "Cumulative Cash Flow ($M)"}, records[0])
	assert.Equal(t, []string{"1", "250.000", "100.000", "150.000", "-50.000"}, records[1])
	assert.Equal(t, []string{"2", "500.000", "200.000", "300.000", "250.000"}, records[2])
}

func TestWriteCSVUsesCalendarYears(t *testing.T) {
	a := baselineAssumptions()
	a.LaunchYear = 2027

	p, err := Compute(a)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, p))

	records, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	assert.Equal(t, "2027", records[1][0])
	assert.Equal(t, "2031", records[5][0])
}
