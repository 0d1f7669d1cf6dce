package resume

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseExperience(t *testing.T) {
	tests := []struct {
		name    string
		section string
		want    []Experience
	}{
		{
			name:    "position then company",
			section: "Software Engineer\nAcme Corp\nJan 2020 - Present\n- Shipped 3 major releases",
			want: []Experience{{
				Company: "Acme Corp", Position: "Software Engineer",
				StartDate: "Jan 2020", EndDate: "Present",
				Achievements: []string{"Shipped 3 major releases"},
			}},
		},
		{
			name:    "position at company with location",
			section: "Senior Engineer at Globex Inc, Boston, MA\nMar 2018 - Dec 2019\n- Cut latency by 40 percent",
			want: []Experience{{
				Company: "Globex Inc", Position: "Senior Engineer",
				StartDate: "Mar 2018", EndDate: "Dec 2019", Location: "Boston, MA",
				Achievements: []string{"Cut latency by 40 percent"},
			}},
		},
		{
			name:    "company first is recognised by its suffix",
			section: "Initech LLC\nQA Lead\n2015 - 2018\nOwned the release checklist.",
			want: []Experience{{
				Company: "Initech LLC", Position: "QA Lead",
				StartDate: "2015", EndDate: "2018",
				Description:  "Owned the release checklist.",
				Achievements: []string{""},
			}},
		},
		{
			name:    "header pairs",
			section: "Software Engineer\nAcme Corp\nJan 2020 - Present\n- Shipped 3 major releases\nData Analyst\nBeta LLC\nJun 2017 - Dec 2019\n- Built reporting dashboards",
			want: []Experience{
				{
					Company: "Acme Corp", Position: "Software Engineer",
					StartDate: "Jan 2020", EndDate: "Present",
					Achievements: []string{"Shipped 3 major releases"},
				},
				{
					Company: "Beta LLC", Position: "Data Analyst",
					StartDate: "Jun 2017", EndDate: "Dec 2019",
					Achievements: []string{"Built reporting dashboards"},
				},
			},
		},
		{
			name:    "blank lines",
			section: "Acme Corp - Lead Developer (2019 - 2021)\n- Led a team of six engineers\n\nQA Engineer | Initech\n2015 - 2018\n- Automated regression suites",
			want: []Experience{
				{
					Company: "Acme Corp", Position: "Lead Developer",
					StartDate: "2019", EndDate: "2021",
					Achievements: []string{"Led a team of six engineers"},
				},
				{
					Company: "Initech", Position: "QA Engineer",
					StartDate: "2015", EndDate: "2018",
					Achievements: []string{"Automated regression suites"},
				},
			},
		},
		{
			name:    "date ranges",
			section: "Backend Developer at Gamma Co. 2019 - 2021\n- Designed APIs for partners\nIntern at Delta Inc 2018 - 2019\n- Wrote test tooling",
			want: []Experience{
				{
					Company: "Gamma Co.", Position: "Backend Developer",
					StartDate: "2019", EndDate: "2021",
					Achievements: []string{"Designed APIs for partners"},
				},
				{
					Company: "Delta Inc", Position: "Intern",
					StartDate: "2018", EndDate: "2019",
					Achievements: []string{"Wrote test tooling"},
				},
			},
		},
		{
			name:    "no dates defaults to present",
			section: "Consultant\nSelf Employed",
			want: []Experience{{
				Company: "Self Employed", Position: "Consultant",
				EndDate: "Present", Achievements: []string{""},
			}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseExperience(tt.section))
		})
	}
}

func TestParseExperience_ShortBulletsDropped(t *testing.T) {
	got := ParseExperience("Engineer\nAcme Corp\n2019 - 2020\n- Ok\n- Reduced costs by a third")

	require.Len(t, got, 1)
	assert.Equal(t, []string{"Reduced costs by a third"}, got[0].Achievements)
}

func TestParseExperience_BulletsWithoutSpace(t *testing.T) {
	got := ParseExperience("Engineer\nAcme Corp\n2019 - 2020\n-Built the billing service\n*Led migration to Go")

	require.Len(t, got, 1)
	assert.Equal(t, []string{"Built the billing service", "Led migration to Go"}, got[0].Achievements)
	assert.Empty(t, got[0].Description)
}

func TestParseExperience_Empty(t *testing.T) {
	got := ParseExperience("")
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestExtractExperience(t *testing.T) {
	got := ExtractExperience("Jane Doe\nEXPERIENCE\nEngineer at Acme Inc\n2019 - 2020\nSKILLS\nGo")

	require.Len(t, got, 1)
	assert.Equal(t, "Acme Inc", got[0].Company)
	assert.Equal(t, "Engineer", got[0].Position)

	assert.Empty(t, ExtractExperience("Jane Doe\nSKILLS\nGo"))
}

func TestSplitRoleAtCompany(t *testing.T) {
	tests := []struct {
		line     string
		position string
		company  string
		ok       bool
	}{
		{"Engineer at Acme", "Engineer", "Acme", true},
		{"Engineer @ Acme", "Engineer", "Acme", true},
		{"Engineer | Acme", "Engineer", "Acme", true},
		{"Acme Corp - Engineer", "Engineer", "Acme Corp", true},
		{"Engineer - Austin, TX", "", "", false},
		{"Software Engineer", "", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			position, company, ok := splitRoleAtCompany(tt.line)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.position, position)
			assert.Equal(t, tt.company, company)
		})
	}
}
