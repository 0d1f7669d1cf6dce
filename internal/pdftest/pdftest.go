// Package pdftest builds small in-memory PDF documents for tests.
package pdftest

import (
	"bytes"
	"compress/zlib"
	"fmt"
	"strings"
)

// Build assembles a single page PDF with a valid cross-reference table
// around the given content stream. When compress is set the stream is
// FlateDecode encoded.
func Build(content string, compress bool) []byte {
	stream := []byte(content)
	streamDict := fmt.Sprintf("<< /Length %d >>", len(stream))
	if compress {
		var z bytes.Buffer
		w := zlib.NewWriter(&z)
		_, _ = w.Write(stream)
		_ = w.Close()
		stream = z.Bytes()
		streamDict = fmt.Sprintf("<< /Length %d /Filter /FlateDecode >>", len(stream))
	}

	objects := []string{
		"<< /Type /Catalog /Pages 2 0 R >>",
		"<< /Type /Pages /Kids [3 0 R] /Count 1 >>",
		"<< /Type /Page /Parent 2 0 R /MediaBox [0 0 612 792] " +
			"/Resources << /Font << /F1 4 0 R >> >> /Contents 5 0 R >>",
		"<< /Type /Font /Subtype /Type1 /BaseFont /Helvetica /Encoding /WinAnsiEncoding >>",
		streamDict + "\nstream\n" + string(stream) + "\nendstream",
	}

	var buf bytes.Buffer
	buf.WriteString("%PDF-1.4\n")
	offsets := make([]int, 0, len(objects))
	for i, obj := range objects {
		offsets = append(offsets, buf.Len())
		fmt.Fprintf(&buf, "%d 0 obj\n%s\nendobj\n", i+1, obj)
	}

	xref := buf.Len()
	fmt.Fprintf(&buf, "xref\n0 %d\n", len(objects)+1)
	buf.WriteString("0000000000 65535 f \n")
	for _, off := range offsets {
		fmt.Fprintf(&buf, "%010d 00000 n \n", off)
	}
	fmt.Fprintf(&buf, "trailer\n<< /Size %d /Root 1 0 R >>\nstartxref\n%d\n%%%%EOF\n", len(objects)+1, xref)

	return buf.Bytes()
}

var literalEscaper = strings.NewReplacer(`\`, `\\`, `(`, `\(`, `)`, `\)`)

// ContentStream draws each line in its own text object, 14 units below the
// previous one.
func ContentStream(lines ...string) string {
	var b strings.Builder
	for i, line := range lines {
		fmt.Fprintf(&b, "BT\n/F1 11 Tf\n72 %d Td\n(%s) Tj\nET\n", 720-14*i, literalEscaper.Replace(line))
	}
	return strings.TrimSuffix(b.String(), "\n")
}

// Resume returns an uncompressed PDF drawing lines.
func Resume(lines ...string) []byte {
	return Build(ContentStream(lines...), false)
}

// ResumeLines is a short resume laid out one entry per line.
var ResumeLines = []string{
	"John Smith",
	"Software Engineer",
	"john@x.com",
	"EXPERIENCE",
	"Software Engineer",
	"Acme Corp",
	"Jan 2020 - Present",
	"- Shipped 3 major releases",
	"EDUCATION",
	"B.S. Computer Science",
	"State University",
	"2016 - 2020",
}

// Scanned is an image-only document: one image stream, no text operators.
var Scanned = []byte("%PDF-1.4\n" +
	"1 0 obj\n<< /Type /XObject /Subtype /Image /Width 1 /Height 1 >>\n" +
	"stream\n\xff\xd8\xff\xe0\x00\x10JFIF\nendstream\nendobj\n%%EOF\n")

// MarkerRichGarbage carries plenty of text operators but nothing to read.
var MarkerRichGarbage = []byte(strings.Repeat("BT #$% Tj &*{} TJ ET\n", 10))
