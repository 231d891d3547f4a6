// printer.go — datum trees back to text.
//
// Two modes. Readable output (the REPL default) escapes strings so the
// result survives a round-trip through the reader; raw output (str, println)
// prints string bytes literally.
package slip

import (
	"strconv"
	"strings"
)

// PrintReadable renders d in reader-compatible form.
func PrintReadable(d Datum) string {
	var b strings.Builder
	printDatum(&b, d, true)
	return b.String()
}

// PrintRaw renders d for display: strings as their literal bytes.
func PrintRaw(d Datum) string {
	var b strings.Builder
	printDatum(&b, d, false)
	return b.String()
}

func printDatum(b *strings.Builder, d Datum, readable bool) {
	switch d.Tag {
	case TagNumber:
		b.WriteString(strconv.FormatInt(d.Data.(int64), 10))
	case TagSymbol:
		b.WriteString(d.Data.(*Symbol).Name())
	case TagString:
		if readable {
			printEscaped(b, d.Data.(string))
		} else {
			b.WriteString(d.Data.(string))
		}
	case TagNil:
		b.WriteString("nil")
	case TagTrue:
		b.WriteString("true")
	case TagFalse:
		b.WriteString("false")
	case TagList:
		b.WriteByte('(')
		for i, item := range d.AsList().Items {
			if i > 0 {
				b.WriteByte(' ')
			}
			printDatum(b, item, readable)
		}
		b.WriteByte(')')
	case TagProc:
		p := d.AsProc()
		b.WriteString("#<")
		if p.Macro {
			b.WriteString("macro")
		} else {
			b.WriteString("procedure")
		}
		if p.Named() {
			b.WriteByte(':')
			b.WriteString(p.Name.Name())
		}
		b.WriteByte('>')
	case TagAtom:
		b.WriteString("(atom ")
		printDatum(b, d.AsAtom().Val, readable)
		b.WriteByte(')')
	case TagExn:
		b.WriteString("#<exn>")
	}
}

func printEscaped(b *strings.Builder, s string) {
	b.WriteByte('"')
	for i := 0; i < len(s); i++ {
		switch c := s[i]; c {
		case '"':
			b.WriteString(`\"`)
		case '\\':
			b.WriteString(`\\`)
		case '\n':
			b.WriteString(`\n`)
		default:
			b.WriteByte(c)
		}
	}
	b.WriteByte('"')
}
