package markup

import (
	"bytes"
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/ukaji3/xlsxlens-go/pkg/xlsxlens/models"
	"github.com/ukaji3/xlsxlens-go/pkg/xlsxlens/style"
)

// ErrMalformedDocument indicates the document is not a usable HTML table document.
var ErrMalformedDocument = errors.New("malformed document")

// Synthesizer overlays per-cell spreadsheet formatting onto rendered tables.
type Synthesizer struct {
	log *zap.Logger
}

// NewSynthesizer creates a new Synthesizer.
func NewSynthesizer(log *zap.Logger) *Synthesizer {
	if log == nil {
		log = zap.NewNop()
	}
	return &Synthesizer{log: log.Named("synthesizer")}
}

// Apply parses doc, injects the resolved style of every identified data cell
// into that cell's own style attribute and returns the re-rendered document
// together with the number of cells styled.
//
// Cells are addressed by node, never by text, so two cells with identical
// markup are styled independently. Either the whole document is processed or
// an error is returned.
func (s *Synthesizer) Apply(doc []byte, values models.ValueSheet, rich models.RichSheet) ([]byte, int, error) {
	root, err := html.Parse(bytes.NewReader(doc))
	if err != nil {
		return nil, 0, fmt.Errorf("%w: %w", ErrMalformedDocument, err)
	}
	if findElement(root, atom.Table) == nil {
		return nil, 0, fmt.Errorf("%w: no table element", ErrMalformedDocument)
	}

	styled := 0
	walk(root, func(n *html.Node) {
		if n.Type != html.ElementNode || n.DataAtom != atom.Td {
			return
		}
		ref, ok := CoordinateFromID(getAttr(n, "id"))
		if !ok {
			return
		}
		vc, ok := values.Lookup(ref)
		if !ok || vc.Style == nil {
			return
		}
		rc, _ := rich.Lookup(ref)
		decl := style.Resolve(vc.Style, rc)
		if decl.Empty() {
			return
		}
		spliceStyle(n, decl.String())
		styled++
	})

	var out bytes.Buffer
	if err := html.Render(&out, root); err != nil {
		return nil, 0, fmt.Errorf("unable to render styled document: %w", err)
	}
	s.log.Debug("Applied cell styles", zap.Int("cells", styled))
	return out.Bytes(), styled, nil
}

// spliceStyle merges css into the style attribute of n.
func spliceStyle(n *html.Node, css string) {
	for i := range n.Attr {
		if n.Attr[i].Namespace != "" || n.Attr[i].Key != "style" {
			continue
		}
		existing := strings.TrimRight(n.Attr[i].Val, " \t\n")
		switch {
		case existing == "":
			n.Attr[i].Val = css
		case strings.HasSuffix(existing, ";"):
			n.Attr[i].Val = existing + " " + css
		default:
			n.Attr[i].Val = existing + "; " + css
		}
		return
	}
	n.Attr = append(n.Attr, html.Attribute{Key: "style", Val: css})
}

func getAttr(n *html.Node, key string) string {
	for _, a := range n.Attr {
		if a.Namespace == "" && a.Key == key {
			return a.Val
		}
	}
	return ""
}

func walk(n *html.Node, fn func(*html.Node)) {
	fn(n)
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		walk(c, fn)
	}
}

func findElement(n *html.Node, a atom.Atom) *html.Node {
	if n.Type == html.ElementNode && n.DataAtom == a {
		return n
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if found := findElement(c, a); found != nil {
			return found
		}
	}
	return nil
}
