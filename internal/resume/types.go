package resume

// PersonalInfo holds contact details and the professional summary.
type PersonalInfo struct {
	Name     string `json:"name"`
	Title    string `json:"title"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Location string `json:"location"`
	Website  string `json:"website"`
	Summary  string `json:"summary"`
}

// Skill is a single skill.
type Skill struct {
	Name string `json:"name"`
}

// SkillCategory groups skills under a label. Category names are unique
// within a Resume and categories are never empty.
type SkillCategory struct {
	Name   string  `json:"name"`
	Skills []Skill `json:"skills"`
}

// Experience is one work history entry. EndDate defaults to "Present" and
// Achievements always holds at least one element.
type Experience struct {
	Company      string   `json:"company"`
	Position     string   `json:"position"`
	StartDate    string   `json:"startDate"`
	EndDate      string   `json:"endDate"`
	Location     string   `json:"location"`
	Description  string   `json:"description"`
	Achievements []string `json:"achievements"`
}

// Education is one degree or program.
type Education struct {
	Institution string `json:"institution"`
	Degree      string `json:"degree"`
	Field       string `json:"field"`
	StartDate   string `json:"startDate"`
	EndDate     string `json:"endDate"`
	Location    string `json:"location"`
	Description string `json:"description"`
}

// Project is one project entry. Technologies is free text as written.
type Project struct {
	Name         string   `json:"name"`
	Description  string   `json:"description"`
	Technologies string   `json:"technologies"`
	Link         string   `json:"link"`
	StartDate    string   `json:"startDate"`
	EndDate      string   `json:"endDate"`
	Achievements []string `json:"achievements"`
}

// Section is a span of text owned by one resume section.
type Section struct {
	Name string `json:"name"`
	Text string `json:"text"`
}

// Resume is the structured record recovered from resume text. List fields
// are never nil so they encode as [] rather than null.
type Resume struct {
	PersonalInfo PersonalInfo    `json:"personalInfo"`
	Skills       []SkillCategory `json:"skills"`
	Experience   []Experience    `json:"experience"`
	Education    []Education     `json:"education"`
	Projects     []Project       `json:"projects"`
}

// Empty returns a Resume with every field at its default.
func Empty() Resume {
	return Resume{
		Skills:     []SkillCategory{},
		Experience: []Experience{},
		Education:  []Education{},
		Projects:   []Project{},
	}
}

// IsEmpty reports whether nothing was recovered.
func (r Resume) IsEmpty() bool {
	return r.PersonalInfo == (PersonalInfo{}) &&
		len(r.Skills) == 0 &&
		len(r.Experience) == 0 &&
		len(r.Education) == 0 &&
		len(r.Projects) == 0
}
