package resume

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractPersonalInfo(t *testing.T) {
	tests := []struct {
		name string
		text string
		want PersonalInfo
	}{
		{
			name: "contact block",
			text: "John Smith\nSoftware Engineer\njohn@x.com\n(555) 123-4567\nAustin, TX\n" +
				"SUMMARY\nBuilt scalable systems for five years.\nEXPERIENCE\nEngineer",
			want: PersonalInfo{
				Name:     "John Smith",
				Title:    "Software Engineer",
				Email:    "john@x.com",
				Phone:    "(555) 123-4567",
				Location: "Austin, TX",
				Summary:  "Built scalable systems for five years.",
			},
		},
		{
			name: "profile link and country",
			text: "Ana Lopez\nana.lopez@mail.es | linkedin.com/in/analopez\nMadrid, Spain",
			want: PersonalInfo{
				Name:     "Ana Lopez",
				Email:    "ana.lopez@mail.es",
				Location: "Madrid, Spain",
				Website:  "linkedin.com/in/analopez",
			},
		},
		{
			name: "fallback name",
			text: "Dr. jane o'neil\njane@x.com\n555 123 4567",
			want: PersonalInfo{
				Name:  "Dr. jane o'neil",
				Email: "jane@x.com",
				Phone: "555 123 4567",
			},
		},
		{
			name: "no usable name line",
			text: "123 Main Street\njane@x.com\n555-123-4567",
			want: PersonalInfo{
				Email: "jane@x.com",
				Phone: "555-123-4567",
			},
		},
		{
			name: "header block location wins over employer city",
			text: "Jane Doe\njane@x.com\nAustin, TX\nEXPERIENCE\nEngineer at Acme Inc, Denver, CO",
			want: PersonalInfo{
				Name:     "Jane Doe",
				Location: "Austin, TX",
				Email:    "jane@x.com",
			},
		},
		{
			name: "contact details at the bottom",
			text: "Jane Doe\nEXPERIENCE\nEngineer\nAcme Inc\nREFERENCES\njane@x.com | Denver, CO",
			want: PersonalInfo{
				Name:     "Jane Doe",
				Email:    "jane@x.com",
				Location: "Denver, CO",
			},
		},
		{
			name: "short summary is dropped",
			text: "Jane Doe\nSUMMARY\nShort text\nSKILLS\nGo",
			want: PersonalInfo{
				Name: "Jane Doe",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ExtractPersonalInfo(tt.text))
		})
	}
}

func TestExtractPersonalInfo_SummaryTruncated(t *testing.T) {
	text := "Jane Doe\nSUMMARY\n" + strings.Repeat("Reliable engineer. ", 40)

	info := ExtractPersonalInfo(text)

	assert.LessOrEqual(t, len(info.Summary), 500)
	assert.True(t, strings.HasPrefix(info.Summary, "Reliable engineer."))
}
