package render

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"bplog/internal/modules/measurement/dto"
	"bplog/internal/ui/theme"
)

var tableHeaders = []string{"Date", "Time", "Blood Pressure", "Comment"}

func pair(systolic, diastolic int) string {
	return strconv.Itoa(systolic) + ":" + strconv.Itoa(diastolic)
}

func richTable(list dto.ListOutput) string {
	rows := make([][]string, 0, len(list.Records)+1)
	for _, r := range list.Records {
		rows = append(rows, []string{r.Date, r.Time, pair(r.Systolic, r.Diastolic), r.Comment})
	}
	footer := len(rows)
	rows = append(rows, []string{"Records", strconv.Itoa(list.Count), "Average", pair(list.AvgSystolic, list.AvgDiastolic)})

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(theme.TableBorder).
		BorderRow(false).
		Headers(tableHeaders...).
		Rows(rows...).
		StyleFunc(func(row, _ int) lipgloss.Style {
			switch row {
			case table.HeaderRow:
				return theme.TableHeader
			case footer:
				return theme.TableFooter
			default:
				return theme.TableCell
			}
		})
	return t.String()
}

func plainTable(list dto.ListOutput) string {
	b := strings.Builder{}
	for _, r := range list.Records {
		fmt.Fprintf(&b, "%s\t%s\t%s\t%s\n", r.Date, r.Time, pair(r.Systolic, r.Diastolic), r.Comment)
	}
	fmt.Fprintf(&b, "Records: %d, Average: %s\n", list.Count, pair(list.AvgSystolic, list.AvgDiastolic))
	return b.String()
}
