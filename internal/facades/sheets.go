package facades

import (
	"context"
	"fmt"

	"github.com/skosovan/data-analyzer/internal/logger"
	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"
)

// SheetsTable implements whole-table access to one sheet of a spreadsheet.
// The sheet offers no transactions: the only write primitives are a row
// append and a clear-and-rewrite of the full range.
type SheetsTable struct {
	values        *sheets.SpreadsheetsValuesService
	spreadsheetID string
	sheetName     string
}

// NewSheetsTable connects to the spreadsheet with a service-account
// credentials file and returns a table bound to one named sheet.
func NewSheetsTable(ctx context.Context, credentialsFile, spreadsheetID, sheetName string) (*SheetsTable, error) {
	svc, err := sheets.NewService(ctx,
		option.WithCredentialsFile(credentialsFile),
		option.WithScopes(sheets.SpreadsheetsScope),
	)
	if err != nil {
		logger.Log.Errorw("failed to create sheets service", "error", err)
		return nil, err
	}
	return &SheetsTable{
		values:        svc.Spreadsheets.Values,
		spreadsheetID: spreadsheetID,
		sheetName:     sheetName,
	}, nil
}

// ReadAll fetches every row of the sheet, header included.
func (t *SheetsTable) ReadAll(ctx context.Context) ([][]string, error) {
	resp, err := t.values.Get(t.spreadsheetID, t.sheetName).Context(ctx).Do()
	if err != nil {
		logger.Log.Errorw("failed to read sheet", "sheet", t.sheetName, "error", err)
		return nil, err
	}

	rows := make([][]string, 0, len(resp.Values))
	for _, raw := range resp.Values {
		row := make([]string, 0, len(raw))
		for _, cell := range raw {
			row = append(row, fmt.Sprint(cell))
		}
		rows = append(rows, row)
	}
	return rows, nil
}

// Append adds one row after the current last row of the sheet.
func (t *SheetsTable) Append(ctx context.Context, row []string) error {
	vr := &sheets.ValueRange{Values: [][]interface{}{toInterfaces(row)}}

	_, err := t.values.Append(t.spreadsheetID, t.sheetName, vr).
		ValueInputOption("RAW").
		InsertDataOption("INSERT_ROWS").
		Context(ctx).
		Do()
	if err != nil {
		logger.Log.Errorw("failed to append row", "sheet", t.sheetName, "error", err)
	}
	return err
}

// ReplaceAll clears the sheet and writes the given rows from A1.
// The clear and the rewrite are two separate calls: a row appended by
// another process in between is lost. Callers own that hazard.
func (t *SheetsTable) ReplaceAll(ctx context.Context, rows [][]string) error {
	_, err := t.values.Clear(t.spreadsheetID, t.sheetName, &sheets.ClearValuesRequest{}).
		Context(ctx).
		Do()
	if err != nil {
		logger.Log.Errorw("failed to clear sheet", "sheet", t.sheetName, "error", err)
		return err
	}

	values := make([][]interface{}, 0, len(rows))
	for _, row := range rows {
		values = append(values, toInterfaces(row))
	}

	_, err = t.values.Update(t.spreadsheetID, t.sheetName+"!A1", &sheets.ValueRange{Values: values}).
		ValueInputOption("RAW").
		Context(ctx).
		Do()
	if err != nil {
		logger.Log.Errorw("failed to rewrite sheet", "sheet", t.sheetName, "error", err)
	}
	return err
}

func toInterfaces(row []string) []interface{} {
	out := make([]interface{}, len(row))
	for i, cell := range row {
		out[i] = cell
	}
	return out
}
