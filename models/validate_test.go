package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"
)

func validProject() Project {
	return Project{
		Title:        "Portfolio Backend",
		Description:  "A backend for my personal portfolio website.",
		Type:         "Web App",
		Technologies: datatypes.JSONSlice[string]{"Go", "PostgreSQL"},
		Status:       ProjectStatusActive,
	}
}

func TestValidateEnumeratesEveryViolation(t *testing.T) {
	project := Project{
		Title:       "ab",
		Description: "short",
		GithubURL:   "not-a-url",
	}

	details := Validate(&project)
	require.NotNil(t, details)

	fields := make([]string, 0, len(details))
	for _, d := range details {
		fields = append(fields, d.Field)
		assert.NotEmpty(t, d.Message)
	}
	assert.ElementsMatch(t, []string{"title", "description", "type", "technologies", "githubUrl"}, fields)
}

func TestValidateUsesJSONFieldNames(t *testing.T) {
	skill := Skill{Name: "Go"}
	details := Validate(&skill)
	require.NotNil(t, details)
	for _, d := range details {
		assert.NotContains(t, d.Field, "Category", "field names must come from json tags")
	}
}

func TestValidateIsIdempotent(t *testing.T) {
	valid := validProject()
	require.Nil(t, Validate(&valid))
	require.Nil(t, Validate(&valid), "re-validating an accepted value must accept it again")

	invalid := Project{Title: "x"}
	first := Validate(&invalid)
	second := Validate(&invalid)
	assert.Equal(t, first, second)
}

func TestValidateContact(t *testing.T) {
	tests := []struct {
		name      string
		contact   Contact
		wantField string
	}{
		{
			name:      "digits in name",
			contact:   Contact{Name: "Agent 47", Email: "a@b.com", Message: "A sufficiently long message."},
			wantField: "name",
		},
		{
			name:      "invalid email",
			contact:   Contact{Name: "Jane Doe", Email: "jane.example.com", Message: "A sufficiently long message."},
			wantField: "email",
		},
		{
			name:      "message too short",
			contact:   Contact{Name: "Jane Doe", Email: "a@b.com", Message: "too short"},
			wantField: "message",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			details := Validate(&tt.contact)
			require.NotNil(t, details)
			fields := make([]string, 0, len(details))
			for _, d := range details {
				fields = append(fields, d.Field)
			}
			assert.Contains(t, fields, tt.wantField)
		})
	}
}

func TestValidContactAccepted(t *testing.T) {
	contact := Contact{
		Name:    "Jane Doe",
		Email:   "jane@example.com",
		Message: "A sufficiently long message.",
		Status:  ContactStatusNew,
	}
	assert.Nil(t, Validate(&contact))
}

func TestCertificateRequiresIssueDate(t *testing.T) {
	cert := Certificate{
		Title:       "Some Certificate",
		Description: "Valid description text.",
		Issuer:      "Some Issuer",
		Category:    "Technical",
	}
	details := Validate(&cert)
	require.NotNil(t, details)

	fields := make([]string, 0, len(details))
	for _, d := range details {
		fields = append(fields, d.Field)
	}
	assert.Contains(t, fields, "issueDate")

	cert.IssueDate = time.Date(2025, time.May, 1, 0, 0, 0, 0, time.UTC)
	assert.Nil(t, Validate(&cert))
}

func TestSkillCategoryEnum(t *testing.T) {
	for _, category := range SkillCategories {
		skill := NewSkill()
		skill.Name = "Anything"
		skill.Category = category
		assert.Nilf(t, Validate(&skill), "category %q must be accepted", category)
	}

	skill := NewSkill()
	skill.Name = "Anything"
	skill.Category = "Made Up"
	assert.NotNil(t, Validate(&skill))
}

func TestNormalizeContactLowercasesEmail(t *testing.T) {
	contact := Contact{
		Name:    "  Jane Doe  ",
		Email:   "  Jane@Example.COM ",
		Message: " A sufficiently long message. ",
	}
	contact.Normalize()

	assert.Equal(t, "Jane Doe", contact.Name)
	assert.Equal(t, "jane@example.com", contact.Email)
	assert.Equal(t, "A sufficiently long message.", contact.Message)
	assert.Equal(t, ContactStatusNew, contact.Status)
}

func TestNormalizeRestoresDefaults(t *testing.T) {
	project := NewProject()
	project.Status = ""
	project.Normalize()
	assert.Equal(t, ProjectStatusActive, project.Status)

	skill := NewSkill()
	skill.Proficiency = 0
	skill.Color = ""
	skill.Normalize()
	assert.Equal(t, 5, skill.Proficiency)
	assert.Equal(t, "#7C3AED", skill.Color)

	cert := NewCertificate()
	cert.Category = ""
	cert.Normalize()
	assert.Equal(t, "Technical", cert.Category)
}
