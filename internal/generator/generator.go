// Package generator produces the milestone roadmap and curated
// resource list for a newly created habit. Generation is rule-based
// and deterministic: a fixed milestone template plus keyword-matched
// resource categories.
package generator

import (
	"strings"

	"github.com/google/uuid"

	"github.com/habitgenius/habitgenius/internal/models"
)

// Category identifies a keyword-matched resource bucket.
type Category int

const (
	CategoryDesign Category = iota
	CategoryFitness
	CategoryReading
)

func (c Category) String() string {
	switch c {
	case CategoryDesign:
		return "design"
	case CategoryFitness:
		return "fitness"
	case CategoryReading:
		return "reading"
	default:
		return "unknown"
	}
}

// milestone is one entry of the fixed roadmap template.
type milestone struct {
	title       string
	description string
}

// The roadmap template is the same for every habit. Personalizing it
// from the habit description is a possible future feature; the
// description parameter is accepted but currently unused.
var milestones = [5]milestone{
	{"Define success & baseline", "Write your why, measure current level"},
	{"Learn the fundamentals", "Pick a starter guide and finish it"},
	{"Build a repeatable routine", "Set time, trigger, environment"},
	{"Deepen practice", "Do 14-day focused streak"},
	{"Showcase milestone", "Publish a small project or reflection"},
}

// resourceTemplate is one literal entry of a category's resource list.
type resourceTemplate struct {
	title    string
	url      string
	resType  models.ResourceType
	provider string
}

// Keyword sets are checked independently: a habit name can match more
// than one category, and each match appends its full list.
var categoryKeywords = map[Category][]string{
	CategoryDesign:  {"design"},
	CategoryFitness: {"work out", "workout", "fitness"},
	CategoryReading: {"read"},
}

// categoryOrder fixes the append sequence when several categories match.
var categoryOrder = [3]Category{CategoryDesign, CategoryFitness, CategoryReading}

var categoryResources = map[Category][]resourceTemplate{
	CategoryDesign: {
		{"UI Design Crash Course", "https://youtu.be/_Hp_dI0DzY4", models.ResourceVideo, "Jesse Showalter"},
		{"Refactoring UI", "https://www.refactoringui.com/", models.ResourceCourse, "Adam Wathan"},
		{"Laws of UX", "https://lawsofux.com/", models.ResourceArticle, ""},
		{"Awesome Design Tools", "https://github.com/goabstract/Awesome-Design-Tools", models.ResourceArticle, ""},
	},
	CategoryFitness: {
		{"Beginner Bodyweight Workout", "https://www.nerdfitness.com/blog/beginner-bodyweight-workout/", models.ResourceArticle, ""},
		{"Athlean-X", "https://www.youtube.com/@athleanx", models.ResourceVideo, ""},
		{"r/Fitness Wiki", "https://thefitness.wiki/", models.ResourceArticle, ""},
	},
	CategoryReading: {
		{"How to Read More Books", "https://jamesclear.com/reading", models.ResourceArticle, ""},
		{"Readwise", "https://readwise.io/", models.ResourceTool, ""},
		{"Blinkist", "https://www.blinkist.com/", models.ResourceTool, ""},
	},
}

// generalResources are always appended after any category matches.
var generalResources = []resourceTemplate{
	{"Atomic Habits Summary", "https://jamesclear.com/atomic-habits", models.ResourceArticle, "James Clear"},
	{"Building a Habit Streak", "https://www.youtube.com/watch?v=U_nzqnXWvSo", models.ResourceVideo, "Ali Abdaal"},
}

// MatchCategories returns the categories whose keywords appear in the
// habit name, in the fixed design/fitness/reading order.
func MatchCategories(name string) []Category {
	lower := strings.ToLower(name)

	var matched []Category
	for _, cat := range categoryOrder {
		for _, kw := range categoryKeywords[cat] {
			if strings.Contains(lower, kw) {
				matched = append(matched, cat)
				break
			}
		}
	}
	return matched
}

// Generate builds the roadmap and resource list for a habit. It always
// returns 5 roadmap items with orders 0..4 and at least the 2 general
// resources; matched categories prepend their lists in category order.
// It never fails.
func Generate(habitID, name string, description *string) ([]models.RoadmapItem, []models.Resource) {
	_ = description // reserved for roadmap personalization

	items := make([]models.RoadmapItem, 0, len(milestones))
	for order, m := range milestones {
		desc := m.description
		items = append(items, models.RoadmapItem{
			ID:          uuid.New().String(),
			HabitID:     habitID,
			Title:       m.title,
			Description: &desc,
			Order:       order,
			Completed:   false,
		})
	}

	var resources []models.Resource
	appendAll := func(templates []resourceTemplate) {
		for _, tpl := range templates {
			res := models.Resource{
				ID:      uuid.New().String(),
				HabitID: habitID,
				Title:   tpl.title,
				URL:     tpl.url,
				Type:    tpl.resType,
			}
			if tpl.provider != "" {
				provider := tpl.provider
				res.Provider = &provider
			}
			resources = append(resources, res)
		}
	}

	for _, cat := range MatchCategories(name) {
		appendAll(categoryResources[cat])
	}
	appendAll(generalResources)

	return items, resources
}
