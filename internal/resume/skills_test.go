package resume

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func skillNames(c SkillCategory) []string {
	names := make([]string, 0, len(c.Skills))
	for _, s := range c.Skills {
		names = append(names, s.Name)
	}
	return names
}

func TestParseSkills_Labeled(t *testing.T) {
	tests := []struct {
		name    string
		section string
		want    map[string][]string
		order   []string
	}{
		{
			name:    "single label",
			section: "Languages: Python, Go, Rust",
			want:    map[string][]string{"Languages": {"Python", "Go", "Rust"}},
			order:   []string{"Languages"},
		},
		{
			name:    "several labels",
			section: "Languages: Go; Python\nFrameworks: React | Django\nTools: Docker",
			want: map[string][]string{
				"Languages":  {"Go", "Python"},
				"Frameworks": {"React", "Django"},
				"Tools":      {"Docker"},
			},
			order: []string{"Languages", "Frameworks", "Tools"},
		},
		{
			name:    "repeated label merges and drops duplicates",
			section: "Languages: Python, Go\nFrameworks: React\nlanguages: Rust, go",
			want: map[string][]string{
				"Languages":  {"Python", "Go", "Rust"},
				"Frameworks": {"React"},
			},
			order: []string{"Languages", "Frameworks"},
		},
		{
			name:    "items on following lines",
			section: "Cloud:\n- AWS\n- GCP\nData:\n- Postgres",
			want: map[string][]string{
				"Cloud": {"AWS", "GCP"},
				"Data":  {"Postgres"},
			},
			order: []string{"Cloud", "Data"},
		},
		{
			name:    "items before the first label join it",
			section: "Go, Rust\nTools: Docker\nCloud: AWS",
			want: map[string][]string{
				"Tools": {"Go", "Rust", "Docker"},
				"Cloud": {"AWS"},
			},
			order: []string{"Tools", "Cloud"},
		},
		{
			name:    "bullet separated items",
			section: "Languages: Python - Go - Rust\nTools: Docker - Git",
			want: map[string][]string{
				"Languages": {"Python", "Go", "Rust"},
				"Tools":     {"Docker", "Git"},
			},
			order: []string{"Languages", "Tools"},
		},
		{
			name:    "hyphenated items stay whole",
			section: "Practices: test-driven development, CI/CD",
			want:    map[string][]string{"Practices": {"test-driven development", "CI/CD"}},
			order:   []string{"Practices"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ParseSkills(tt.section)

			require.Len(t, got, len(tt.order))
			for i, c := range got {
				assert.Equal(t, tt.order[i], c.Name)
				assert.Equal(t, tt.want[c.Name], skillNames(c))
			}
		})
	}
}

func TestExtract_BulletSeparatedSkills(t *testing.T) {
	got := Extract("Jane Doe\nSKILLS\nBackend: Python • Go • Rust\nTools: Docker • Git\n").Skills

	require.Len(t, got, 2)
	assert.Equal(t, []string{"Python", "Go", "Rust"}, skillNames(got[0]))
	assert.Equal(t, []string{"Docker", "Git"}, skillNames(got[1]))
}

func TestParseSkills_Buckets(t *testing.T) {
	got := ParseSkills("Python, React, Docker, Leadership, Data Modeling")

	require.Len(t, got, 5)
	want := []struct {
		name   string
		skills []string
	}{
		{"Programming Languages", []string{"Python"}},
		{"Frameworks", []string{"React"}},
		{"Tools", []string{"Docker"}},
		{"Soft Skills", []string{"Leadership"}},
		{"Technical", []string{"Data Modeling"}},
	}
	for i, w := range want {
		assert.Equal(t, w.name, got[i].Name)
		assert.Equal(t, w.skills, skillNames(got[i]))
	}
}

func TestParseSkills_BucketsOmitEmptyCategories(t *testing.T) {
	got := ParseSkills("- Go\n- Rust\n- Kubernetes - Terraform")

	require.Len(t, got, 2)
	assert.Equal(t, "Programming Languages", got[0].Name)
	assert.Equal(t, []string{"Go", "Rust"}, skillNames(got[0]))
	assert.Equal(t, "Tools", got[1].Name)
	assert.Equal(t, []string{"Kubernetes", "Terraform"}, skillNames(got[1]))
}

func TestParseSkills_DropsLongTokens(t *testing.T) {
	got := ParseSkills("Go, an unusually long sentence describing many things at once")

	require.Len(t, got, 1)
	assert.Equal(t, []string{"Go"}, skillNames(got[0]))
}

func TestParseSkills_Empty(t *testing.T) {
	got := ParseSkills("")
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestExtractSkills(t *testing.T) {
	got := ExtractSkills("Jane Doe\nSKILLS\nProgramming: Python, Go, Rust\nEDUCATION\nState University")

	require.Len(t, got, 1)
	assert.Equal(t, "Programming", got[0].Name)
	assert.Equal(t, []string{"Python", "Go", "Rust"}, skillNames(got[0]))

	assert.Empty(t, ExtractSkills("Jane Doe\nEngineer"))
}
