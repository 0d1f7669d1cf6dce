package extraction

import (
	"github.com/a3tai/mcp-resume-parser/internal/pdftest"
)

var (
	buildPDF            = pdftest.Build
	resumeContentStream = pdftest.ContentStream
	scannedPDF          = pdftest.Scanned
	markerRichGarbage   = pdftest.MarkerRichGarbage
)

var sampleResumeLines = []string{
	"John Smith",
	"Software Engineer with professional experience building distributed systems",
	"EXPERIENCE",
	"Senior Engineer at Acme Corp",
	"Jan 2020 - Present",
	"Led the migration of billing services to an event driven architecture",
}
