package resume

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const shortResume = "John Smith\nSoftware Engineer\njohn@x.com\n(555) 123-4567\nAustin, TX\n" +
	"SUMMARY\nBuilt scalable systems for five years.\n" +
	"EXPERIENCE\nSoftware Engineer\nAcme Corp\nJan 2020 - Present\n- Shipped 3 major releases\n" +
	"EDUCATION\nB.S. Computer Science\nState University\n2016 - 2020"

const fullResume = `Jane Doe
Platform Engineer
jane@doe.dev | +1 415 555 0100 | github.com/janedoe
San Francisco, CA

PROFESSIONAL SUMMARY
Platform engineer focused on developer tooling and reliable infrastructure.

WORK EXPERIENCE
Senior Engineer at Globex Inc
Mar 2021 - Present
- Cut deploy times from 40 to 6 minutes
- Led the migration to Kubernetes

Software Engineer
Initech LLC
Jun 2017 - Feb 2021
- Built the internal billing API

EDUCATION
Bachelor of Science in Computer Science
Reed College
Class of 2017

SKILLS
Programming: Go, Python, SQL
Tools: Docker, Terraform

PROJECTS
Resume Parser | github.com/janedoe/resume-parser
Parses PDF resumes into structured records.
Technologies: Go, pdfcpu
- Parsed 500 sample resumes`

func TestExtract_ShortResume(t *testing.T) {
	r := Extract(shortResume)

	assert.Equal(t, "John Smith", r.PersonalInfo.Name)
	assert.Equal(t, "john@x.com", r.PersonalInfo.Email)

	require.Len(t, r.Experience, 1)
	exp := r.Experience[0]
	assert.Equal(t, "Acme Corp", exp.Company)
	assert.Equal(t, "Software Engineer", exp.Position)
	assert.Equal(t, "Jan 2020", exp.StartDate)
	assert.Equal(t, "Present", exp.EndDate)
	assert.Equal(t, []string{"Shipped 3 major releases"}, exp.Achievements)

	require.Len(t, r.Education, 1)
	edu := r.Education[0]
	assert.Contains(t, edu.Degree, "B.S.")
	assert.Equal(t, "Computer Science", edu.Field)
	assert.Equal(t, "State University", edu.Institution)
	assert.Equal(t, "2016", edu.StartDate)
	assert.Equal(t, "2020", edu.EndDate)
}

func TestExtract_EmptyRecord(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"empty", ""},
		{"whitespace", "  \n\t \n"},
		{"too short", "John Smith"},
		{"unreadable", strings.Repeat("#$%^&*{}~", 10)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := Extract(tt.input)

			assert.Equal(t, Empty(), r)
			assert.True(t, r.IsEmpty())
			assert.NotNil(t, r.Skills)
			assert.NotNil(t, r.Experience)
			assert.NotNil(t, r.Education)
			assert.NotNil(t, r.Projects)
		})
	}
}

func TestExtract_EmptyRecordEncodesEmptyLists(t *testing.T) {
	data, err := json.Marshal(Extract(""))
	require.NoError(t, err)

	out := string(data)
	for _, field := range []string{"skills", "experience", "education", "projects"} {
		assert.Contains(t, out, `"`+field+`":[]`)
	}
	assert.Contains(t, out, `"personalInfo":{`)
	assert.NotContains(t, out, "null")
}

func TestExtract_FullResume(t *testing.T) {
	r := Extract(fullResume)

	info := r.PersonalInfo
	assert.Equal(t, "Jane Doe", info.Name)
	assert.Equal(t, "Platform Engineer", info.Title)
	assert.Equal(t, "jane@doe.dev", info.Email)
	assert.Equal(t, "San Francisco, CA", info.Location)
	assert.Equal(t, "github.com/janedoe", info.Website)
	assert.Equal(t, "Platform engineer focused on developer tooling and reliable infrastructure.", info.Summary)

	require.Len(t, r.Experience, 2)
	assert.Equal(t, "Globex Inc", r.Experience[0].Company)
	assert.Equal(t, "Senior Engineer", r.Experience[0].Position)
	assert.Equal(t, "Mar 2021", r.Experience[0].StartDate)
	assert.Len(t, r.Experience[0].Achievements, 2)
	assert.Equal(t, "Initech LLC", r.Experience[1].Company)
	assert.Equal(t, "Software Engineer", r.Experience[1].Position)
	assert.Equal(t, "Feb 2021", r.Experience[1].EndDate)

	require.Len(t, r.Education, 1)
	assert.Equal(t, "Bachelor of Science", r.Education[0].Degree)
	assert.Equal(t, "Computer Science", r.Education[0].Field)
	assert.Equal(t, "Reed College", r.Education[0].Institution)
	assert.Equal(t, "2017", r.Education[0].EndDate)

	require.Len(t, r.Skills, 2)
	assert.Equal(t, "Programming", r.Skills[0].Name)
	assert.Equal(t, []Skill{{"Go"}, {"Python"}, {"SQL"}}, r.Skills[0].Skills)
	assert.Equal(t, "Tools", r.Skills[1].Name)

	require.Len(t, r.Projects, 1)
	assert.Equal(t, "Resume Parser", r.Projects[0].Name)
	assert.Equal(t, "Go, pdfcpu", r.Projects[0].Technologies)
}

func TestExtract_AchievementsNeverEmpty(t *testing.T) {
	inputs := []string{
		shortResume,
		fullResume,
		"Jane Doe\nEXPERIENCE\nEngineer\nAcme Corp\n2019 - 2020\nPROJECTS\nSide Project\nA small tool.",
		"EXPERIENCE\nAnalyst at Beta LLC 2015 - 2016\nConsultant at Gamma Co. 2016 - 2018\nwork work work work",
	}

	for _, input := range inputs {
		r := Extract(input)
		for _, e := range r.Experience {
			assert.NotEmpty(t, e.Achievements, "experience %q", e.Position)
		}
		for _, p := range r.Projects {
			assert.NotEmpty(t, p.Achievements, "project %q", p.Name)
		}
	}
}
