package resume

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseEducation(t *testing.T) {
	tests := []struct {
		name    string
		section string
		want    []Education
	}{
		{
			name:    "abbreviated degree",
			section: "B.S. Computer Science\nState University\n2016 - 2020",
			want: []Education{{
				Degree: "B.S.", Field: "Computer Science", Institution: "State University",
				StartDate: "2016", EndDate: "2020",
			}},
		},
		{
			name:    "field after in and graduation date",
			section: "Bachelor of Science in Computer Science\nMassachusetts Institute of Technology, Cambridge, MA\nGraduated May 2019",
			want: []Education{{
				Degree: "Bachelor of Science", Field: "Computer Science",
				Institution: "Massachusetts Institute of Technology",
				EndDate:     "May 2019", Location: "Cambridge, MA",
			}},
		},
		{
			name:    "two entries",
			section: "M.S. Data Science, Stanford University\n2020 - 2022\nB.A. Economics\nReed College\nClass of 2019",
			want: []Education{
				{
					Degree: "M.S.", Field: "Data Science", Institution: "Stanford University",
					StartDate: "2020", EndDate: "2022",
				},
				{
					Degree: "B.A.", Field: "Economics", Institution: "Reed College",
					EndDate: "2019",
				},
			},
		},
		{
			name:    "unlisted degree name",
			section: "Bachelor of Commerce, University of Toronto",
			want: []Education{{
				Degree: "Bachelor of Commerce", Institution: "University of Toronto",
			}},
		},
		{
			name:    "institution by elimination",
			section: "MBA\nWharton\n2012 - 2014",
			want: []Education{{
				Degree: "MBA", Institution: "Wharton",
				StartDate: "2012", EndDate: "2014",
			}},
		},
		{
			name:    "institution only",
			section: "Lincoln High School\n2008 - 2012\n- Valedictorian",
			want: []Education{{
				Institution: "Lincoln High School",
				StartDate:   "2008", EndDate: "2012",
				Description: "Valedictorian",
			}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseEducation(tt.section))
		})
	}
}

func TestParseEducation_NoDegreeOrInstitution(t *testing.T) {
	got := ParseEducation("Coursework in algorithms and networks")
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestExtractEducation(t *testing.T) {
	got := ExtractEducation("Jane Doe\nEDUCATION\nPh.D. in Physics\nCaltech\n2010 - 2015\nSKILLS\nGo")

	assert.Equal(t, []Education{{
		Degree: "Ph.D.", Field: "Physics", Institution: "Caltech",
		StartDate: "2010", EndDate: "2015",
	}}, got)

	assert.Empty(t, ExtractEducation("Jane Doe\nSKILLS\nGo"))
}
