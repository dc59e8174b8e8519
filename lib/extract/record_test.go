package extract

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleLine = `"9.b.1","9.b","C090b01","NV_IND_TECH","Proportion of medium and high-tech industry value added in total value added (%)","8","Albania","2015","5.83","","","G","","","","PERCENT","",""`

func TestParseRecord(t *testing.T) {
	rec, err := ParseRecord(sampleLine + "\r\n")
	require.NoError(t, err)
	assert.Equal(t, "NV_IND_TECH", rec.SeriesCode)
	assert.Equal(t, "Albania", rec.GeoAreaName)
	assert.Equal(t, "2015", rec.TimePeriod)
	assert.Equal(t, "5.83", rec.Value)
}

func TestParseRecord_shortRows(t *testing.T) {
	for _, line := range []string{"", "   ", `"a","b","c"`, "a,b,c,d,e,f,g,h,i,j,k,l,m,n,o,p,q,r"} {
		_, err := ParseRecord(line)
		assert.Truef(t, errors.Is(err, ErrShortRow), "expected short row error for %q, got %v", line, err)
	}
}

func TestFormatRecordRoundTrip(t *testing.T) {
	in := Record{SeriesCode: "SG_HAZ_CMRROTDAM", GeoAreaName: "Bolivia (Plurinational State of)",
		TimePeriod: "2019", Value: "62.5"}
	out, err := ParseRecord(FormatRecord(in))
	require.NoError(t, err)
	assert.Equal(t, in, out)
}

func TestRecords_skipsHeaderAndKeepsGoingAfterShortRows(t *testing.T) {
	src := strings.Join([]string{
		"Goal,Target,Indicator,SeriesCode",
		FormatRecord(Record{SeriesCode: "A", GeoAreaName: "X", TimePeriod: "2015", Value: "1"}),
		"",
		FormatRecord(Record{SeriesCode: "A", GeoAreaName: "Y", TimePeriod: "2015", Value: "2"}),
		`"truncated","row"`,
		FormatRecord(Record{SeriesCode: "B", GeoAreaName: "Z", TimePeriod: "2016", Value: "3"}),
	}, "\n")

	var countries []string
	var lines []int
	shortRows := 0
	for rec, err := range Records(strings.NewReader(src)) {
		if errors.Is(err, ErrShortRow) {
			shortRows++
			continue
		}
		require.NoError(t, err)
		countries = append(countries, rec.GeoAreaName)
		lines = append(lines, rec.Line)
	}
	assert.Equal(t, []string{"X", "Y", "Z"}, countries)
	assert.Equal(t, []int{2, 4, 6}, lines)
	assert.Equal(t, 2, shortRows)
}

func TestRecords_stopsWhenConsumerBreaks(t *testing.T) {
	src := "header\n" +
		FormatRecord(Record{SeriesCode: "A", GeoAreaName: "X", Value: "1"}) + "\n" +
		FormatRecord(Record{SeriesCode: "A", GeoAreaName: "Y", Value: "2"}) + "\n"
	seen := 0
	for range Records(strings.NewReader(src)) {
		seen++
		break
	}
	assert.Equal(t, 1, seen)
}
