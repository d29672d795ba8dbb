// Package model defines the resume document shared by every export path.
package model

import (
	"encoding/json"
	"strings"
	"time"

	"github.com/google/uuid"
)

// NameOrder controls how first and last name combine into a display name.
type NameOrder string

const (
	NameOrderFirstLast NameOrder = "firstLast"
	NameOrderLastFirst NameOrder = "lastFirst"
)

// ExperienceFormat selects which body parts of an experience entry render.
type ExperienceFormat string

const (
	// FormatStructured renders both the description and the highlight list.
	FormatStructured ExperienceFormat = "structured"
	// FormatBullets renders highlights only.
	FormatBullets ExperienceFormat = "bullets"
	// FormatFreeform renders the description only.
	FormatFreeform ExperienceFormat = "freeform"
)

// LinkType classifies an external link for display purposes.
type LinkType string

const (
	LinkWebsite   LinkType = "website"
	LinkLinkedIn  LinkType = "linkedin"
	LinkGitHub    LinkType = "github"
	LinkPortfolio LinkType = "portfolio"
	LinkOther     LinkType = "other"
)

type PersonalInfo struct {
	FirstName string    `json:"firstName,omitempty"`
	LastName  string    `json:"lastName,omitempty"`
	NameOrder NameOrder `json:"nameOrder,omitempty"`
	Email     string    `json:"email,omitempty"`
	Phone     string    `json:"phone,omitempty"`
	Location  string    `json:"location,omitempty"`
	Summary   string    `json:"summary,omitempty"`
}

// FullName combines the name parts according to NameOrder. Missing parts
// collapse rather than leaving stray separators.
func (p PersonalInfo) FullName() string {
	first := strings.TrimSpace(p.FirstName)
	last := strings.TrimSpace(p.LastName)
	switch {
	case first == "":
		return last
	case last == "":
		return first
	case p.NameOrder == NameOrderLastFirst:
		return last + ", " + first
	default:
		return first + " " + last
	}
}

type Experience struct {
	Company     string           `json:"company"`
	Position    string           `json:"position"`
	StartDate   string           `json:"startDate,omitempty"`
	EndDate     string           `json:"endDate,omitempty"`
	Current     bool             `json:"current,omitempty"`
	Format      ExperienceFormat `json:"format,omitempty"`
	Description string           `json:"description,omitempty"`
	Highlights  []string         `json:"highlights,omitempty"`
}

// WantsDescription reports whether the entry's format includes the prose
// description. Unset format behaves as structured.
func (e Experience) WantsDescription() bool {
	return e.Format != FormatBullets
}

// WantsHighlights reports whether the entry's format includes the highlight
// list.
func (e Experience) WantsHighlights() bool {
	return e.Format != FormatFreeform
}

type Education struct {
	Institution string   `json:"institution"`
	Degree      string   `json:"degree,omitempty"`
	Field       string   `json:"field,omitempty"`
	StartDate   string   `json:"startDate,omitempty"`
	EndDate     string   `json:"endDate,omitempty"`
	Current     bool     `json:"current,omitempty"`
	GPA         string   `json:"gpa,omitempty"`
	Honors      []string `json:"honors,omitempty"`
}

// Skill is either a bare name or a name with a proficiency level. On the
// wire a bare name is a plain JSON string; the object form is used only when
// a level is present, so documents round-trip shape-for-shape.
type Skill struct {
	Name  string `json:"name"`
	Level string `json:"level,omitempty"`
}

func (s *Skill) UnmarshalJSON(data []byte) error {
	var name string
	if err := json.Unmarshal(data, &name); err == nil {
		s.Name = name
		s.Level = ""
		return nil
	}
	type skillObject Skill
	var obj skillObject
	if err := json.Unmarshal(data, &obj); err != nil {
		return err
	}
	*s = Skill(obj)
	return nil
}

func (s Skill) MarshalJSON() ([]byte, error) {
	if s.Level == "" {
		return json.Marshal(s.Name)
	}
	type skillObject Skill
	return json.Marshal(skillObject(s))
}

type Skills struct {
	Technical []Skill `json:"technical,omitempty"`
	Languages []Skill `json:"languages,omitempty"`
	Tools     []Skill `json:"tools,omitempty"`
	Soft      []Skill `json:"soft,omitempty"`
}

// SkillCategory is one labeled group of skills ready for display.
type SkillCategory struct {
	Label  string
	Skills []Skill
}

// Names joins the non-empty skill names with commas. Levels never print.
func (c SkillCategory) Names() string {
	var names []string
	for _, s := range c.Skills {
		if n := strings.TrimSpace(s.Name); n != "" {
			names = append(names, n)
		}
	}
	return strings.Join(names, ", ")
}

// Categories returns the non-empty skill groups in fixed display order.
func (s Skills) Categories() []SkillCategory {
	all := []SkillCategory{
		{Label: "Technical", Skills: s.Technical},
		{Label: "Languages", Skills: s.Languages},
		{Label: "Tools", Skills: s.Tools},
		{Label: "Soft Skills", Skills: s.Soft},
	}
	out := all[:0]
	for _, cat := range all {
		if len(cat.Skills) > 0 {
			out = append(out, cat)
		}
	}
	return out
}

type Certification struct {
	Name         string `json:"name"`
	Issuer       string `json:"issuer,omitempty"`
	IssueDate    string `json:"issueDate,omitempty"`
	ExpiryDate   string `json:"expiryDate,omitempty"`
	CredentialID string `json:"credentialId,omitempty"`
	URL          string `json:"url,omitempty"`
}

type Link struct {
	Label string   `json:"label,omitempty"`
	URL   string   `json:"url"`
	Type  LinkType `json:"type,omitempty"`
}

// Content is the resume body: everything below the document metadata.
type Content struct {
	PersonalInfo   PersonalInfo    `json:"personalInfo"`
	Experience     []Experience    `json:"experience,omitempty"`
	Education      []Education     `json:"education,omitempty"`
	Skills         Skills          `json:"skills,omitempty"`
	Certifications []Certification `json:"certifications,omitempty"`
	Links          []Link          `json:"links,omitempty"`
}

type Resume struct {
	ID        uuid.UUID `json:"id"`
	Title     string    `json:"title,omitempty"`
	CreatedAt time.Time `json:"createdAt,omitempty"`
	UpdatedAt time.Time `json:"updatedAt,omitempty"`
	Content   Content   `json:"content"`
}

// Present reports whether an optional text field carries a value; fields
// holding only whitespace count as absent.
func Present(s string) bool {
	return strings.TrimSpace(s) != ""
}

// DateRange formats a start/end pair for display. A current entry always
// reads "Present" regardless of any stored end date.
func DateRange(start, end string, current bool) string {
	start = strings.TrimSpace(start)
	end = strings.TrimSpace(end)
	switch {
	case current && start != "":
		return start + " - Present"
	case current:
		return "Present"
	case start != "" && end != "":
		return start + " - " + end
	case start != "":
		return start
	default:
		return end
	}
}
