package svg

import (
	"bufio"
	"bytes"
	"encoding/xml"
	"io"
	"strings"
)

// Namespace is the SVG XML namespace.
const Namespace = "http://www.w3.org/2000/svg"

// Encode writes root as indented SVG markup.
func Encode(w io.Writer, root *Element) error {
	bw := bufio.NewWriter(w)
	encode(bw, root, 0)
	return bw.Flush()
}

// Marshal returns the SVG markup of root.
func Marshal(root *Element) []byte {
	var buf bytes.Buffer
	_ = Encode(&buf, root)
	return buf.Bytes()
}

func encode(w *bufio.Writer, e *Element, depth int) {
	if e == nil {
		return
	}
	w.WriteString(strings.Repeat("  ", depth))
	w.WriteByte('<')
	w.WriteString(e.Name)
	for _, a := range e.Attrs {
		w.WriteByte(' ')
		w.WriteString(a.Name)
		w.WriteString(`="`)
		w.WriteString(EscapeXML(a.Value))
		w.WriteByte('"')
	}

	switch {
	case len(e.Children) == 0 && e.Text == "":
		w.WriteString("/>\n")
	case len(e.Children) == 0:
		w.WriteByte('>')
		w.WriteString(EscapeXML(e.Text))
		w.WriteString("</" + e.Name + ">\n")
	default:
		w.WriteString(">\n")
		if e.Text != "" {
			w.WriteString(strings.Repeat("  ", depth+1))
			w.WriteString(EscapeXML(e.Text))
			w.WriteByte('\n')
		}
		for _, c := range e.Children {
			encode(w, c, depth+1)
		}
		w.WriteString(strings.Repeat("  ", depth))
		w.WriteString("</" + e.Name + ">\n")
	}
}

// EscapeXML escapes s for use in XML text and attribute values.
func EscapeXML(s string) string {
	var buf bytes.Buffer
	xml.EscapeText(&buf, []byte(s))
	return buf.String()
}
