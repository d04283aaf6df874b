package models

import "sort"

// Canonical display orderings. These mirror the ORDER BY clauses the
// repositories use, so in-memory consumers (the content loader, tests) and
// the store agree on presentation order.

// SortProjects orders projects featured-first, then by display order, then
// newest-first. The sort is stable so insertion order breaks remaining ties.
func SortProjects(projects []Project) {
	sort.SliceStable(projects, func(i, j int) bool {
		a, b := projects[i], projects[j]
		if a.Featured != b.Featured {
			return a.Featured
		}
		if a.Order != b.Order {
			return a.Order < b.Order
		}
		return a.CreatedAt.After(b.CreatedAt)
	})
}

// SortSkills orders skills by category, then display order, then name.
func SortSkills(skills []Skill) {
	sort.SliceStable(skills, func(i, j int) bool {
		a, b := skills[i], skills[j]
		if a.Category != b.Category {
			return a.Category < b.Category
		}
		if a.Order != b.Order {
			return a.Order < b.Order
		}
		return a.Name < b.Name
	})
}

// SortCertificates orders certificates featured-first, then by display order,
// then most recently issued first.
func SortCertificates(certificates []Certificate) {
	sort.SliceStable(certificates, func(i, j int) bool {
		a, b := certificates[i], certificates[j]
		if a.Featured != b.Featured {
			return a.Featured
		}
		if a.Order != b.Order {
			return a.Order < b.Order
		}
		return a.IssueDate.After(b.IssueDate)
	})
}

// GroupSkillsByCategory buckets an already-sorted skill slice into a mapping
// from category name to the skills in that category, preserving the slice's
// order within each bucket.
func GroupSkillsByCategory(skills []Skill) map[string][]Skill {
	grouped := make(map[string][]Skill)
	for _, skill := range skills {
		grouped[skill.Category] = append(grouped[skill.Category], skill)
	}
	return grouped
}
