package resume

import (
	"regexp"
	"strings"
)

const maxSkillLength = 30

var (
	// skillLabel matches "Label:" at a line start.
	skillLabel = regexp.MustCompile(`(?m)^[ \t]*(?:[-*][ \t]*)?([A-Za-z][A-Za-z0-9 &/+#().-]{0,40}?)[ \t]*:(?:[ \t]|$)`)

	itemSeparator = regexp.MustCompile(`[,;|\n]|[ \t]+-[ \t]+`)
	leadingMarker = regexp.MustCompile(`^(?:[-*+>][ \t]*)+`)
)

// skillBucket is one implicit category and the terms that select it.
type skillBucket struct {
	name    string
	pattern *regexp.Regexp
}

func bucketPattern(terms ...string) *regexp.Regexp {
	quoted := make([]string, len(terms))
	for i, t := range terms {
		quoted[i] = regexp.QuoteMeta(t)
	}
	return regexp.MustCompile(`(?:^|[^a-z0-9])(?:` + strings.Join(quoted, "|") + `)(?:$|[^a-z0-9+#])`)
}

// skillBuckets are checked in order; Technical takes everything else.
var skillBuckets = []skillBucket{
	{"Programming Languages", bucketPattern(
		"go", "golang", "python", "java", "javascript", "typescript", "c", "c++", "c#", "ruby", "rust",
		"php", "swift", "kotlin", "scala", "r", "perl", "sql", "bash", "shell", "haskell", "elixir",
		"erlang", "dart", "matlab", "lua", "objective-c", "html", "css", "clojure", "f#",
	)},
	{"Frameworks", bucketPattern(
		"react", "angular", "vue", "svelte", "django", "flask", "fastapi", "spring", "spring boot", "rails",
		"express", "next.js", "node.js", "nodejs", ".net", "laravel", "gin", "echo", "fiber", "tensorflow",
		"pytorch", "keras", "bootstrap", "tailwind", "jquery", "redux", "graphql",
	)},
	{"Tools", bucketPattern(
		"git", "github", "gitlab", "docker", "kubernetes", "k8s", "helm", "jenkins", "jira", "aws", "azure",
		"gcp", "terraform", "ansible", "linux", "postgresql", "postgres", "mysql", "mongodb", "redis",
		"kafka", "rabbitmq", "elasticsearch", "webpack", "figma", "grafana", "prometheus", "vs code",
		"vim", "nginx", "circleci", "datadog",
	)},
	{"Soft Skills", bucketPattern(
		"leadership", "communication", "teamwork", "team work", "problem solving", "problem-solving",
		"collaboration", "mentoring", "time management", "adaptability", "critical thinking",
		"project management", "public speaking", "presentation", "negotiation", "creativity",
	)},
}

const technicalCategory = "Technical"

// ExtractSkills finds the skills section of text and categorizes it.
func ExtractSkills(text string) []SkillCategory {
	section, ok := FindSection(text, Aliases(SectionSkills))
	if !ok {
		return []SkillCategory{}
	}
	return ParseSkills(section)
}

// ParseSkills categorizes a skills section. "Label: a, b, c" blocks become
// categories named after their label. Without labels, items are sorted into
// Programming Languages, Frameworks, Tools, Soft Skills and Technical.
// Empty categories are omitted.
func ParseSkills(section string) []SkillCategory {
	if categories := explicitCategories(section); len(categories) > 0 {
		return categories
	}
	return implicitCategories(section)
}

func explicitCategories(section string) []SkillCategory {
	labels := skillLabel.FindAllStringSubmatchIndex(section, -1)
	if len(labels) == 0 {
		return nil
	}

	// Items written before the first label belong to it.
	lead := section[:labels[0][0]]

	builder := newCategoryBuilder()
	for i, loc := range labels {
		label := strings.TrimSpace(section[loc[2]:loc[3]])
		end := len(section)
		if i+1 < len(labels) {
			end = labels[i+1][0]
		}
		items := splitItems(section[loc[1]:end], itemSeparator)
		if i == 0 {
			items = append(splitItems(lead, itemSeparator), items...)
		}
		builder.add(label, items...)
	}
	return builder.categories()
}

func implicitCategories(section string) []SkillCategory {
	builder := newCategoryBuilder()
	for _, item := range splitItems(section, itemSeparator) {
		if len(item) > maxSkillLength {
			continue
		}
		builder.add(bucketFor(item), item)
	}

	// Present buckets in their fixed order.
	ordered := make([]SkillCategory, 0, len(skillBuckets)+1)
	for _, name := range bucketNames() {
		if c, ok := builder.get(name); ok {
			ordered = append(ordered, c)
		}
	}
	return ordered
}

func bucketFor(skill string) string {
	lower := strings.ToLower(skill)
	for _, b := range skillBuckets {
		if b.pattern.MatchString(lower) {
			return b.name
		}
	}
	return technicalCategory
}

func bucketNames() []string {
	names := make([]string, 0, len(skillBuckets)+1)
	for _, b := range skillBuckets {
		names = append(names, b.name)
	}
	return append(names, technicalCategory)
}

// splitItems splits s on sep, strips bullet markers and trailing periods,
// and drops empty items.
func splitItems(s string, sep *regexp.Regexp) []string {
	parts := sep.Split(s, -1)
	items := make([]string, 0, len(parts))
	for _, p := range parts {
		p = leadingMarker.ReplaceAllString(strings.TrimSpace(p), "")
		p = strings.TrimSpace(strings.TrimRight(p, ". "))
		if p != "" {
			items = append(items, p)
		}
	}
	return items
}

// categoryBuilder accumulates categories in first-seen order, merging
// repeated names and repeated skills case-insensitively.
type categoryBuilder struct {
	order []string
	names map[string]string
	items map[string][]Skill
	seen  map[string]map[string]bool
}

func newCategoryBuilder() *categoryBuilder {
	return &categoryBuilder{
		names: make(map[string]string),
		items: make(map[string][]Skill),
		seen:  make(map[string]map[string]bool),
	}
}

func (b *categoryBuilder) add(name string, skills ...string) {
	key := strings.ToLower(name)
	if _, ok := b.names[key]; !ok {
		b.names[key] = name
		b.order = append(b.order, key)
		b.seen[key] = make(map[string]bool)
	}
	for _, s := range skills {
		sk := strings.ToLower(s)
		if b.seen[key][sk] {
			continue
		}
		b.seen[key][sk] = true
		b.items[key] = append(b.items[key], Skill{Name: s})
	}
}

func (b *categoryBuilder) get(name string) (SkillCategory, bool) {
	key := strings.ToLower(name)
	if len(b.items[key]) == 0 {
		return SkillCategory{}, false
	}
	return SkillCategory{Name: b.names[key], Skills: b.items[key]}, true
}

func (b *categoryBuilder) categories() []SkillCategory {
	out := make([]SkillCategory, 0, len(b.order))
	for _, key := range b.order {
		if c, ok := b.get(key); ok {
			out = append(out, c)
		}
	}
	return out
}
