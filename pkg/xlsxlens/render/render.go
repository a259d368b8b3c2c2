package render

import (
	"bytes"
	"fmt"
	"strconv"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
	"golang.org/x/text/unicode/norm"

	"github.com/ukaji3/xlsxlens-go/pkg/xlsxlens/markup"
)

// DisplayLimit is the number of characters shown in a cell before the
// displayed text is truncated; the full value stays in the title attribute.
const DisplayLimit = 50

// NoDataText is shown instead of a table when there are no rows.
const NoDataText = "No data found in the spreadsheet"

// Render converts a window of rows into a standalone HTML document. The
// window is truncated to opts.MaxRows x opts.MaxCols first. Data cells carry
// an id encoding their spreadsheet coordinate; header and gutter cells do not.
func Render(rows [][]string, opts Options) (string, error) {
	if err := opts.Validate(); err != nil {
		return "", err
	}
	rows = Window(rows, opts.MaxRows, opts.MaxCols)

	doc := &html.Node{Type: html.DocumentNode}
	doc.AppendChild(&html.Node{Type: html.DoctypeNode, Data: "html"})
	root := element(atom.Html)
	doc.AppendChild(root)

	head := element(atom.Head)
	head.AppendChild(element(atom.Meta, "charset", "UTF-8"))
	head.AppendChild(element(atom.Meta, "name", "viewport", "content", "width=device-width, initial-scale=1.0"))
	title := element(atom.Title)
	title.AppendChild(text(opts.Title))
	head.AppendChild(title)
	root.AppendChild(head)

	body := element(atom.Body)
	root.AppendChild(body)

	if len(rows) == 0 {
		head.AppendChild(styleElement(noDataCSS))
		div := element(atom.Div, "class", "no-data")
		div.AppendChild(text(NoDataText))
		body.AppendChild(div)
		return renderNode(doc)
	}

	head.AppendChild(styleElement(tableCSS(opts)))

	maxCols := 0
	for _, row := range rows {
		maxCols = max(maxCols, len(row))
	}

	container := element(atom.Div, "class", "container")
	body.AppendChild(container)
	table := element(atom.Table)
	container.AppendChild(table)

	thead := element(atom.Thead)
	headRow := element(atom.Tr)
	corner := element(atom.Th, "class", "row-number")
	corner.AppendChild(text("#"))
	headRow.AppendChild(corner)
	for c := 0; c < maxCols; c++ {
		th := element(atom.Th)
		th.AppendChild(text(ColumnName(c)))
		headRow.AppendChild(th)
	}
	thead.AppendChild(headRow)
	table.AppendChild(thead)

	tbody := element(atom.Tbody)
	for r, row := range rows {
		rowNum := strconv.Itoa(r + 1)
		tr := element(atom.Tr)
		gutter := element(atom.Td, "class", "row-number")
		gutter.AppendChild(text(rowNum))
		tr.AppendChild(gutter)

		for c := 0; c < maxCols; c++ {
			var value string
			if c < len(row) {
				value = row[c]
			}
			full, display := displayValue(value)
			td := element(atom.Td, "id", markup.CellID(ColumnName(c)+rowNum))
			content := element(atom.Div, "class", "cell-content", "title", full)
			content.AppendChild(text(display))
			td.AppendChild(content)
			tr.AppendChild(td)
		}
		tbody.AppendChild(tr)
	}
	table.AppendChild(tbody)

	footer := element(atom.Div, "class", "footer")
	p := element(atom.P)
	p.AppendChild(text(fmt.Sprintf("Generated from Excel file • %d rows × %d columns • Ready for LLM processing", len(rows), maxCols)))
	footer.AppendChild(p)
	container.AppendChild(footer)

	return renderNode(doc)
}

// displayValue returns the full value unchanged and the text to display.
// Characters are counted in NFC so a decomposed accent counts once.
func displayValue(v string) (string, string) {
	composed := []rune(norm.NFC.String(v))
	if len(composed) <= DisplayLimit {
		return v, v
	}
	return v, string(composed[:DisplayLimit]) + "..."
}

func renderNode(n *html.Node) (string, error) {
	var buf bytes.Buffer
	if err := html.Render(&buf, n); err != nil {
		return "", fmt.Errorf("unable to render document: %w", err)
	}
	return buf.String(), nil
}

// element creates an element node; attrs are key/value pairs.
func element(a atom.Atom, attrs ...string) *html.Node {
	n := &html.Node{Type: html.ElementNode, DataAtom: a, Data: a.String()}
	for i := 0; i+1 < len(attrs); i += 2 {
		n.Attr = append(n.Attr, html.Attribute{Key: attrs[i], Val: attrs[i+1]})
	}
	return n
}

func text(s string) *html.Node {
	return &html.Node{Type: html.TextNode, Data: s}
}

func styleElement(css string) *html.Node {
	n := element(atom.Style)
	n.AppendChild(text(css))
	return n
}
