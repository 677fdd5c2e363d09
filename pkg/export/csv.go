package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/kilianp07/pvderate/core/model"
)

// DefaultPrecision is the number of decimals written for numeric columns.
const DefaultPrecision = 4

// Header is the fixed column layout of the report.
var Header = []string{"Index", "Station", "Tcell(°C)", "Efficiency(%)", "Power(W)"}

// Record is one parsed CSV line. Efficiency is in percent as written.
type Record struct {
	Index             int
	Station           string
	CellTemperature   float64
	EfficiencyPercent float64
	Power             float64
}

// WriteCSV writes rows to w as semicolon separated values with a 1-based
// index. Efficiency is written in percent. Every numeric column uses the
// same precision; a negative precision selects DefaultPrecision.
func WriteCSV(w io.Writer, rows []model.ResultRow, precision int) error {
	if precision < 0 {
		precision = DefaultPrecision
	}
	cw := csv.NewWriter(w)
	cw.Comma = ';'
	if err := cw.Write(Header); err != nil {
		return err
	}
	for i, r := range rows {
		rec := []string{
			strconv.Itoa(i + 1),
			r.Station,
			fmtFloat(r.CellTemperature, precision),
			fmtFloat(r.Efficiency*100, precision),
			fmtFloat(r.Power, precision),
		}
		if err := cw.Write(rec); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// ReadCSV parses a report previously produced by WriteCSV.
func ReadCSV(r io.Reader) ([]Record, error) {
	cr := csv.NewReader(r)
	cr.Comma = ';'
	cr.FieldsPerRecord = len(Header)
	head, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}
	for i, h := range Header {
		if head[i] != h {
			return nil, fmt.Errorf("unexpected column %d: %q", i+1, head[i])
		}
	}
	var out []Record
	for {
		rec, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		var p Record
		if p.Index, err = strconv.Atoi(rec[0]); err != nil {
			return nil, fmt.Errorf("line %d index: %w", len(out)+2, err)
		}
		p.Station = rec[1]
		if p.CellTemperature, err = strconv.ParseFloat(rec[2], 64); err != nil {
			return nil, fmt.Errorf("line %d tcell: %w", len(out)+2, err)
		}
		if p.EfficiencyPercent, err = strconv.ParseFloat(rec[3], 64); err != nil {
			return nil, fmt.Errorf("line %d efficiency: %w", len(out)+2, err)
		}
		if p.Power, err = strconv.ParseFloat(rec[4], 64); err != nil {
			return nil, fmt.Errorf("line %d power: %w", len(out)+2, err)
		}
		out = append(out, p)
	}
	return out, nil
}

func fmtFloat(x float64, precision int) string {
	return strconv.FormatFloat(x, 'f', precision, 64)
}
