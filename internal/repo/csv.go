package repo

import (
	"encoding/csv"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"github.com/samber/lo"

	"github.com/andhikaputrab/vgsales-dashboard/internal/model"
)

const (
	colRank        = "rank"
	colName        = "name"
	colPlatform    = "platform"
	colYear        = "year"
	colGenre       = "genre"
	colPublisher   = "publisher"
	colNASales     = "na_sales"
	colEUSales     = "eu_sales"
	colJPSales     = "jp_sales"
	colOtherSales  = "other_sales"
	colGlobalSales = "global_sales"
)

var requiredColumns = []string{
	colRank, colName, colPlatform, colYear, colGenre, colPublisher,
	colNASales, colEUSales, colJPSales, colOtherSales, colGlobalSales,
}

type columns map[string]int

func readHeader(header []string) (columns, error) {
	cols := columns{}
	for i, name := range header {
		name = strings.ToLower(strings.TrimSpace(strings.TrimPrefix(name, "\ufeff")))
		if _, ok := cols[name]; !ok {
			cols[name] = i
		}
	}

	missing := lo.Filter(requiredColumns, func(col string, _ int) bool {
		_, ok := cols[col]
		return !ok
	})
	if len(missing) > 0 {
		return nil, errors.Wrap(ErrMissingColumn, strings.Join(missing, ", "))
	}
	return cols, nil
}

// ParseCSV reads sales records from r. Header names are matched case-insensitively,
// in any order, and unknown columns are ignored.
func ParseCSV(r io.Reader) ([]*model.Record, error) {
	reader := csv.NewReader(r)
	reader.ReuseRecord = true

	header, err := reader.Read()
	if err == io.EOF {
		return nil, errors.Wrap(ErrMissingColumn, "empty file")
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to read header")
	}
	cols, err := readHeader(header)
	if err != nil {
		return nil, err
	}

	records := make([]*model.Record, 0, 1<<14)
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, errors.Wrap(err, "failed to read row")
		}
		line, _ := reader.FieldPos(0)

		record, err := parseRow(cols, row)
		if err != nil {
			return nil, errors.Wrapf(err, "line %d", line)
		}
		records = append(records, record)
	}

	return records, nil
}

func parseRow(cols columns, row []string) (*model.Record, error) {
	field := func(col string) string {
		return strings.TrimSpace(row[cols[col]])
	}

	var err error
	record := &model.Record{
		Name:      field(colName),
		Platform:  field(colPlatform),
		Genre:     field(colGenre),
		Publisher: field(colPublisher),
	}
	if record.Rank, err = parseRank(field(colRank)); err != nil {
		return nil, err
	}
	if record.Year, err = parseWhole(colYear, field(colYear)); err != nil {
		return nil, err
	}

	sales := []struct {
		col  string
		dest *float64
	}{
		{colNASales, &record.NASales},
		{colEUSales, &record.EUSales},
		{colJPSales, &record.JPSales},
		{colOtherSales, &record.OtherSales},
		{colGlobalSales, &record.GlobalSales},
	}
	for _, s := range sales {
		if *s.dest, err = parseSales(s.col, field(s.col)); err != nil {
			return nil, err
		}
	}

	return record, nil
}

// parseWhole accepts integers written either plainly or with a zero fraction, e.g. 2006.0.
// Values outside the int32 range are rejected.
func parseWhole(col, value string) (int, error) {
	f, err := strconv.ParseFloat(value, 64)
	if err != nil || math.Trunc(f) != f || f < math.MinInt32 || f > math.MaxInt32 {
		return 0, errors.Wrapf(ErrMalformedValue, "%s: %q is not a whole number", col, value)
	}
	return int(f), nil
}

func parseRank(value string) (int, error) {
	rank, err := parseWhole(colRank, value)
	if err != nil {
		return 0, err
	}
	if rank <= 0 {
		return 0, errors.Wrapf(ErrMalformedValue, "%s: %q is not a positive number", colRank, value)
	}
	return rank, nil
}

func parseSales(col, value string) (float64, error) {
	f, err := strconv.ParseFloat(value, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) || f < 0 {
		return 0, errors.Wrapf(ErrMalformedValue, "%s: %q is not a non-negative number", col, value)
	}
	return f, nil
}
