// Package export renders a roster query result for download. It iterates a
// visible-column model over the records; CSV quoting follows RFC 4180 via
// encoding/csv.
package export

import (
	"encoding/csv"
	"io"
	"strings"

	gerrors "github.com/go-faster/errors"
	"github.com/xuri/excelize/v2"

	"github.com/iota-uz/roster/modules/roster/domain/aggregates/employee"
)

type Column struct {
	Title string
	Value func(employee.Employee) string
}

// VisibleColumns is the default roster export layout.
func VisibleColumns() []Column {
	return []Column{
		{Title: "ФИО", Value: employee.Employee.DisplayName},
		{Title: "Должность", Value: employee.Employee.Position},
		{Title: "Команда", Value: func(e employee.Employee) string { return e.Team().Name() }},
		{Title: "Статус", Value: func(e employee.Employee) string { return string(e.Status()) }},
		{Title: "Норма часов", Value: func(e employee.Employee) string { return e.HourNorm().String() }},
		{Title: "Дата найма", Value: func(e employee.Employee) string {
			if e.HireDate().IsZero() {
				return ""
			}
			return e.HireDate().Format("02.01.2006")
		}},
		{Title: "Теги", Value: func(e employee.Employee) string { return strings.Join(e.Tags(), ", ") }},
	}
}

func WriteCSV(w io.Writer, columns []Column, records []employee.Employee) error {
	cw := csv.NewWriter(w)

	header := make([]string, len(columns))
	for i, col := range columns {
		header[i] = col.Title
	}
	if err := cw.Write(header); err != nil {
		return gerrors.Wrap(err, "write csv header")
	}

	row := make([]string, len(columns))
	for _, e := range records {
		for i, col := range columns {
			row[i] = col.Value(e)
		}
		if err := cw.Write(row); err != nil {
			return gerrors.Wrap(err, "write csv row")
		}
	}

	cw.Flush()
	return cw.Error()
}

const sheetName = "Roster"

// NewWorkbook builds an in-memory XLSX workbook; the caller decides where to
// write it.
func NewWorkbook(columns []Column, records []employee.Employee) (*excelize.File, error) {
	f := excelize.NewFile()
	index, err := f.NewSheet(sheetName)
	if err != nil {
		return nil, gerrors.Wrap(err, "create sheet")
	}
	f.SetActiveSheet(index)
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return nil, gerrors.Wrap(err, "drop default sheet")
	}

	header := make([]interface{}, len(columns))
	for i, col := range columns {
		header[i] = col.Title
	}
	if err := f.SetSheetRow(sheetName, "A1", &header); err != nil {
		return nil, gerrors.Wrap(err, "write header")
	}

	for rowIdx, e := range records {
		row := make([]interface{}, len(columns))
		for i, col := range columns {
			row[i] = col.Value(e)
		}
		cell, err := excelize.CoordinatesToCellName(1, rowIdx+2)
		if err != nil {
			return nil, gerrors.Wrap(err, "row coordinates")
		}
		if err := f.SetSheetRow(sheetName, cell, &row); err != nil {
			return nil, gerrors.Wrap(err, "write row")
		}
	}

	return f, nil
}
