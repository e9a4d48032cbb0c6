package presenter

import (
	"io"
	"strconv"

	"github.com/olekukonko/tablewriter"

	"github.com/anchore/libversion/internal/presenter/models"
)

// TablePresenter writes the document as a borderless table.
type TablePresenter struct {
	document  models.Document
	withColor bool
}

func NewTablePresenter(doc models.Document, withColor bool) *TablePresenter {
	return &TablePresenter{
		document:  doc,
		withColor: withColor,
	}
}

func (p *TablePresenter) Present(output io.Writer) error {
	if len(p.document.Versions) == 0 {
		_, err := io.WriteString(output, "No versions given\n")
		return err
	}

	withNames := false
	for _, v := range p.document.Versions {
		if v.Name != "" {
			withNames = true
			break
		}
	}

	header := []string{"Rank", "Version", "Flags"}
	if withNames {
		header = []string{"Name", "Rank", "Version", "Flags"}
	}

	table := tablewriter.NewWriter(output)
	table.SetHeader(header)
	table.SetAutoWrapText(false)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)

	table.SetHeaderLine(false)
	table.SetBorder(false)
	table.SetAutoFormatHeaders(true)
	table.SetCenterSeparator("")
	table.SetColumnSeparator("")
	table.SetRowSeparator("")
	table.SetTablePadding("  ")
	table.SetNoWhiteSpace(true)

	for _, v := range p.document.Versions {
		row := []string{strconv.Itoa(v.Rank), v.Version, v.Flags}
		if withNames {
			row = append([]string{v.Name}, row...)
		}

		if p.withColor {
			colors := make([]tablewriter.Colors, len(row))
			// highlight the version column
			colors[len(row)-2] = tablewriter.Colors{tablewriter.Bold, tablewriter.FgCyanColor}
			table.Rich(row, colors)
			continue
		}
		table.Append(row)
	}

	table.Render()

	return nil
}
