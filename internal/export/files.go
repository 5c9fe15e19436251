package export

import (
	"encoding/csv"
	"fmt"
	"html"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/complykit/trustreport/pkg/constants"
	"github.com/complykit/trustreport/pkg/errors"
	"github.com/complykit/trustreport/pkg/report"
)

// htmlStyle is the inline stylesheet embedded in HTML exports so the file
// renders the same when opened standalone or attached to a ticket.
const htmlStyle = `<style>
table {
  font-family: Arial, sans-serif;
  font-size: 15px;
  border-collapse: collapse;
  width: 100%;
}
th {
  background-color: #808080;
  color: white;
  text-align: left;
  padding: 8px;
  border: 1px solid #ddd;
}
td {
  text-align: left;
  padding: 8px;
  border: 1px solid #ddd;
}
tr:nth-child(even) {
  background-color: #f2f2f2;
}
</style>`

// Filename derives the export base name from the report title: the title with
// spaces replaced by underscores and each word capitalized, optionally
// suffixed with a run timestamp to keep repeated exports distinct.
func Filename(kind report.Kind, status report.VendorStatus, unique bool) string {
	title := kind.Title(status)
	name := strings.ReplaceAll(title, " ", "_")
	if unique {
		name += "_" + time.Now().Format(constants.TimeFormatFilename)
	}
	return name
}

// WriteCSV writes the table as a CSV file with a leading "#" ordinal column
// and returns the written path.
func WriteCSV(dir, name string, t *report.Table) (string, error) {
	path := filepath.Join(dir, name+".csv")
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, constants.FilePermissions)
	if err != nil {
		return "", errors.WrapIO("create", path, err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(append([]string{"#"}, t.Headers...)); err != nil {
		return "", errors.WrapIO("write", path, err)
	}
	for i, row := range t.Rows {
		if err := w.Write(append([]string{strconv.Itoa(i + 1)}, row...)); err != nil {
			return "", errors.WrapIO("write", path, err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return "", errors.WrapIO("write", path, err)
	}
	return path, nil
}

// WriteHTML writes the table as a standalone styled HTML file and returns the
// written path.
func WriteHTML(dir, name string, t *report.Table) (string, error) {
	path := filepath.Join(dir, name+".html")

	var b strings.Builder
	b.WriteString("<html><head>")
	b.WriteString(htmlStyle)
	b.WriteString("</head><body>\n")
	b.WriteString(HTMLTable(t))
	b.WriteString("</body></html>\n")

	if err := os.WriteFile(path, []byte(b.String()), constants.FilePermissions); err != nil {
		return "", errors.WrapIO("write", path, err)
	}
	return path, nil
}

// HTMLTable renders the table body markup shared by file export and page sync.
func HTMLTable(t *report.Table) string {
	var b strings.Builder
	b.WriteString("<table>\n<tr>")
	b.WriteString("<th>#</th>")
	for _, h := range t.Headers {
		fmt.Fprintf(&b, "<th>%s</th>", html.EscapeString(h))
	}
	b.WriteString("</tr>\n")

	for i, row := range t.Rows {
		b.WriteString("<tr>")
		fmt.Fprintf(&b, "<td>%d</td>", i+1)
		for _, cell := range row {
			fmt.Fprintf(&b, "<td>%s</td>", html.EscapeString(cell))
		}
		b.WriteString("</tr>\n")
	}
	b.WriteString("</table>\n")
	return b.String()
}

// EnsureDir creates the export directory if it does not exist.
func EnsureDir(dir string) error {
	if err := os.MkdirAll(dir, constants.DirPermissions); err != nil {
		return errors.WrapIO("create", dir, err)
	}
	return nil
}
