package repo

import (
	"strings"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleCSV = `Rank,Name,Platform,Year,Genre,Publisher,NA_Sales,EU_Sales,JP_Sales,Other_Sales,Global_Sales
1,Wii Sports,Wii,2006,Sports,Nintendo,41.49,29.02,3.77,8.46,82.74
2,Super Mario Bros.,NES,1985.0,Platform,Nintendo,29.08,3.58,6.81,0.77,40.24
3,"Mario Kart Wii",Wii,2008,Racing,Nintendo,15.85,12.88,3.79,3.31,35.82
`

func TestParseCSV(t *testing.T) {
	records, err := ParseCSV(strings.NewReader(sampleCSV))
	require.NoError(t, err)
	require.Len(t, records, 3)

	assert.Equal(t, 1, records[0].Rank)
	assert.Equal(t, "Wii Sports", records[0].Name)
	assert.Equal(t, 2006, records[0].Year)
	assert.InDelta(t, 82.74, records[0].GlobalSales, 1e-9)
	assert.Equal(t, 1985, records[1].Year)
	assert.Equal(t, "Mario Kart Wii", records[2].Name)
	assert.InDelta(t, 3.31, records[2].OtherSales, 1e-9)
}

func TestParseCSVColumnOrder(t *testing.T) {
	data := "\ufeffglobal_sales,NAME,rank,year,genre,platform,publisher,other_sales,jp_sales,eu_sales,na_sales,extra\n" +
		"10.5,Tetris,7,1989,Puzzle,GB,Nintendo,0.5,4.2,1.0,4.8,ignored\n"

	records, err := ParseCSV(strings.NewReader(data))
	require.NoError(t, err)
	require.Len(t, records, 1)

	r := records[0]
	assert.Equal(t, "Tetris", r.Name)
	assert.Equal(t, 7, r.Rank)
	assert.Equal(t, "GB", r.Platform)
	assert.InDelta(t, 4.8, r.NASales, 1e-9)
	assert.InDelta(t, 10.5, r.GlobalSales, 1e-9)
}

func TestParseCSVMissingColumns(t *testing.T) {
	_, err := ParseCSV(strings.NewReader("Rank,Name,Platform,Year,Genre,Publisher,NA_Sales\n"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrMissingColumn))
	assert.Contains(t, err.Error(), "eu_sales")
	assert.Contains(t, err.Error(), "global_sales")

	_, err = ParseCSV(strings.NewReader(""))
	assert.True(t, errors.Is(err, ErrMissingColumn))
}

func TestParseCSVMalformedValues(t *testing.T) {
	header := "Rank,Name,Platform,Year,Genre,Publisher,NA_Sales,EU_Sales,JP_Sales,Other_Sales,Global_Sales\n"
	cases := map[string]string{
		"fractional year": "1,A,Wii,2006.5,Sports,N,1,1,1,1,4\n",
		"missing year":    "1,A,Wii,N/A,Sports,N,1,1,1,1,4\n",
		"negative sales":  "1,A,Wii,2006,Sports,N,-1,1,1,1,4\n",
		"text sales":      "1,A,Wii,2006,Sports,N,1,abc,1,1,4\n",
		"zero rank":       "0,A,Wii,2006,Sports,N,1,1,1,1,4\n",
		"negative rank":   "-3,A,Wii,2006,Sports,N,1,1,1,1,4\n",
		"huge rank":       "1e300,A,Wii,2006,Sports,N,1,1,1,1,4\n",
		"huge year":       "1,A,Wii,1e20,Sports,N,1,1,1,1,4\n",
	}

	for name, row := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := ParseCSV(strings.NewReader(header + row))
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrMalformedValue))
			assert.Contains(t, err.Error(), "line 2")
		})
	}
}

func TestParseCSVHeaderOnly(t *testing.T) {
	records, err := ParseCSV(strings.NewReader(strings.SplitN(sampleCSV, "\n", 2)[0] + "\n"))
	require.NoError(t, err)
	assert.Empty(t, records)
}
