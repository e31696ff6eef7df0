package steps

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/cucumber/godog"
	messages "github.com/cucumber/messages/go/v21"
)

// getCellValueFromTable gets a cell value from a table row by column name
// It uses the first row (table.Rows[0]) as the header to find the column index
func getCellValueFromTable(table *godog.Table, row *messages.PickleTableRow, columnName string) string {
	if len(table.Rows) == 0 {
		return ""
	}

	headerRow := table.Rows[0]

	// Find column index by matching header
	for i, headerCell := range headerRow.Cells {
		if headerCell.Value == columnName {
			if i < len(row.Cells) {
				return row.Cells[i].Value
			}
			return ""
		}
	}

	return ""
}

func getIntCell(table *godog.Table, row *messages.PickleTableRow, columnName string) (int, error) {
	raw := getCellValueFromTable(table, row, columnName)
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("column %s: %q is not a number", columnName, raw)
	}
	return v, nil
}

// dataRows skips the header row
func dataRows(table *godog.Table) []*messages.PickleTableRow {
	if len(table.Rows) < 2 {
		return nil
	}
	return table.Rows[1:]
}

func joinNames(names []string) string {
	return strings.Join(names, ", ")
}
