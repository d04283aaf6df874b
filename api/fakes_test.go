package api

import (
	"errors"
	"strings"

	"github.com/ajaiswal/portfolio-backend/database"
	"github.com/ajaiswal/portfolio-backend/models"
	"github.com/google/uuid"
)

// In-memory stores backing handler tests. They apply the same filtering and
// ordering contract as the GORM repositories, including surfacing a
// duplicate-key error in the driver's wording so the error mapping is
// exercised end to end.

var errDuplicateKey = errors.New(`duplicate key value violates unique constraint "idx_skills_name"`)

type fakeProjectStore struct {
	projects []models.Project
	failWith error
}

func (s *fakeProjectStore) Find(filter database.ProjectFilter) ([]models.Project, error) {
	if s.failWith != nil {
		return nil, s.failWith
	}

	var out []models.Project
	for _, p := range s.projects {
		if filter.FeaturedOnly && !p.Featured {
			continue
		}
		if filter.Status != "" && p.Status != filter.Status {
			continue
		}
		out = append(out, p)
	}
	models.SortProjects(out)
	if filter.Limit > 0 && len(out) > filter.Limit {
		out = out[:filter.Limit]
	}
	return out, nil
}

func (s *fakeProjectStore) FindByID(id uuid.UUID) (*models.Project, error) {
	if s.failWith != nil {
		return nil, s.failWith
	}
	for i := range s.projects {
		if s.projects[i].ID == id {
			p := s.projects[i]
			return &p, nil
		}
	}
	return nil, nil
}

func (s *fakeProjectStore) Add(project *models.Project) error {
	if s.failWith != nil {
		return s.failWith
	}
	if project.ID == uuid.Nil {
		project.ID = uuid.New()
	}
	s.projects = append(s.projects, *project)
	return nil
}

func (s *fakeProjectStore) Update(project *models.Project) error {
	if s.failWith != nil {
		return s.failWith
	}
	for i := range s.projects {
		if s.projects[i].ID == project.ID {
			s.projects[i] = *project
			return nil
		}
	}
	return errors.New("record not found")
}

func (s *fakeProjectStore) Delete(id uuid.UUID) error {
	for i := range s.projects {
		if s.projects[i].ID == id {
			s.projects = append(s.projects[:i], s.projects[i+1:]...)
			return nil
		}
	}
	return nil
}

func (s *fakeProjectStore) Count(filter database.ProjectFilter) (int64, error) {
	found, err := s.Find(filter)
	return int64(len(found)), err
}

type fakeSkillStore struct {
	skills   []models.Skill
	failWith error
}

func (s *fakeSkillStore) Find(filter database.SkillFilter) ([]models.Skill, error) {
	if s.failWith != nil {
		return nil, s.failWith
	}

	var out []models.Skill
	for _, sk := range s.skills {
		if filter.ActiveOnly && !sk.IsActive {
			continue
		}
		if filter.Category != "" && sk.Category != filter.Category {
			continue
		}
		out = append(out, sk)
	}
	models.SortSkills(out)
	return out, nil
}

func (s *fakeSkillStore) FindByID(id uuid.UUID) (*models.Skill, error) {
	for i := range s.skills {
		if s.skills[i].ID == id {
			sk := s.skills[i]
			return &sk, nil
		}
	}
	return nil, nil
}

func (s *fakeSkillStore) Add(skill *models.Skill) error {
	if s.failWith != nil {
		return s.failWith
	}
	for _, existing := range s.skills {
		if strings.EqualFold(existing.Name, skill.Name) {
			return errDuplicateKey
		}
	}
	if skill.ID == uuid.Nil {
		skill.ID = uuid.New()
	}
	s.skills = append(s.skills, *skill)
	return nil
}

func (s *fakeSkillStore) Update(skill *models.Skill) error {
	for _, existing := range s.skills {
		if existing.ID != skill.ID && strings.EqualFold(existing.Name, skill.Name) {
			return errDuplicateKey
		}
	}
	for i := range s.skills {
		if s.skills[i].ID == skill.ID {
			s.skills[i] = *skill
			return nil
		}
	}
	return errors.New("record not found")
}

func (s *fakeSkillStore) Delete(id uuid.UUID) error {
	for i := range s.skills {
		if s.skills[i].ID == id {
			s.skills = append(s.skills[:i], s.skills[i+1:]...)
			return nil
		}
	}
	return nil
}

func (s *fakeSkillStore) Categories() ([]string, error) {
	seen := map[string]bool{}
	var out []string
	for _, sk := range s.skills {
		if sk.IsActive && !seen[sk.Category] {
			seen[sk.Category] = true
			out = append(out, sk.Category)
		}
	}
	return out, nil
}

func (s *fakeSkillStore) Count(filter database.SkillFilter) (int64, error) {
	found, err := s.Find(filter)
	return int64(len(found)), err
}

type fakeCertificateStore struct {
	certificates []models.Certificate
	failWith     error
}

func (s *fakeCertificateStore) Find(filter database.CertificateFilter) ([]models.Certificate, error) {
	if s.failWith != nil {
		return nil, s.failWith
	}

	var out []models.Certificate
	for _, c := range s.certificates {
		if filter.FeaturedOnly && !c.Featured {
			continue
		}
		if filter.ActiveOnly && !c.IsActive {
			continue
		}
		if filter.Category != "" && c.Category != filter.Category {
			continue
		}
		out = append(out, c)
	}
	models.SortCertificates(out)
	if filter.Limit > 0 && len(out) > filter.Limit {
		out = out[:filter.Limit]
	}
	return out, nil
}

func (s *fakeCertificateStore) FindByID(id uuid.UUID) (*models.Certificate, error) {
	for i := range s.certificates {
		if s.certificates[i].ID == id {
			c := s.certificates[i]
			return &c, nil
		}
	}
	return nil, nil
}

func (s *fakeCertificateStore) Add(certificate *models.Certificate) error {
	if s.failWith != nil {
		return s.failWith
	}
	if certificate.ID == uuid.Nil {
		certificate.ID = uuid.New()
	}
	s.certificates = append(s.certificates, *certificate)
	return nil
}

func (s *fakeCertificateStore) Update(certificate *models.Certificate) error {
	for i := range s.certificates {
		if s.certificates[i].ID == certificate.ID {
			s.certificates[i] = *certificate
			return nil
		}
	}
	return errors.New("record not found")
}

func (s *fakeCertificateStore) Delete(id uuid.UUID) error {
	for i := range s.certificates {
		if s.certificates[i].ID == id {
			s.certificates = append(s.certificates[:i], s.certificates[i+1:]...)
			return nil
		}
	}
	return nil
}

func (s *fakeCertificateStore) Categories() ([]string, error) {
	seen := map[string]bool{}
	var out []string
	for _, c := range s.certificates {
		if c.IsActive && !seen[c.Category] {
			seen[c.Category] = true
			out = append(out, c.Category)
		}
	}
	return out, nil
}

func (s *fakeCertificateStore) Count(filter database.CertificateFilter) (int64, error) {
	found, err := s.Find(filter)
	return int64(len(found)), err
}

type fakeContactStore struct {
	contacts []models.Contact
	failWith error
}

func (s *fakeContactStore) FindPage(filter database.ContactFilter) ([]models.Contact, int64, error) {
	if s.failWith != nil {
		return nil, 0, s.failWith
	}

	var matched []models.Contact
	for _, c := range s.contacts {
		if models.IsValidContactStatus(filter.Status) && c.Status != filter.Status {
			continue
		}
		matched = append(matched, c)
	}
	// newest first
	for i, j := 0, len(matched)-1; i < j; i, j = i+1, j-1 {
		matched[i], matched[j] = matched[j], matched[i]
	}

	filter = filter.Normalized()

	total := int64(len(matched))
	start := (filter.Page - 1) * filter.Limit
	if start >= len(matched) {
		return []models.Contact{}, total, nil
	}
	end := start + filter.Limit
	if end > len(matched) {
		end = len(matched)
	}
	return matched[start:end], total, nil
}

func (s *fakeContactStore) FindByID(id uuid.UUID) (*models.Contact, error) {
	for i := range s.contacts {
		if s.contacts[i].ID == id {
			c := s.contacts[i]
			return &c, nil
		}
	}
	return nil, nil
}

func (s *fakeContactStore) Add(contact *models.Contact) error {
	if s.failWith != nil {
		return s.failWith
	}
	if contact.ID == uuid.Nil {
		contact.ID = uuid.New()
	}
	s.contacts = append(s.contacts, *contact)
	return nil
}

func (s *fakeContactStore) Update(contact *models.Contact) error {
	for i := range s.contacts {
		if s.contacts[i].ID == contact.ID {
			s.contacts[i] = *contact
			return nil
		}
	}
	return errors.New("record not found")
}

func (s *fakeContactStore) Delete(id uuid.UUID) error {
	for i := range s.contacts {
		if s.contacts[i].ID == id {
			s.contacts = append(s.contacts[:i], s.contacts[i+1:]...)
			return nil
		}
	}
	return nil
}

func (s *fakeContactStore) Count(status string) (int64, error) {
	if !models.IsValidContactStatus(status) {
		return int64(len(s.contacts)), nil
	}
	var n int64
	for _, c := range s.contacts {
		if c.Status == status {
			n++
		}
	}
	return n, nil
}
