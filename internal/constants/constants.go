package constants

const (
	AppName = "habitgenius"

	// Collection names used by every storage backend. Table names match
	// the logical collection names one-to-one.
	CollectionHabit       = "habit"
	CollectionRoadmapItem = "roadmapitem"
	CollectionResource    = "resource"
	CollectionProgress    = "progress"
	CollectionMessage     = "message"

	// DateFormat is the calendar-day key format (YYYY-MM-DD)
	DateFormat = "2006-01-02"

	// Target frequency bounds for a habit
	DefaultTargetDaysPerWeek = 5
	MinTargetDaysPerWeek     = 1
	MaxTargetDaysPerWeek     = 7

	// RoadmapLength is the fixed number of milestones generated per habit
	RoadmapLength = 5

	DefaultPort = 8000
)

// Collections lists every collection in a stable order.
var Collections = []string{
	CollectionHabit,
	CollectionRoadmapItem,
	CollectionResource,
	CollectionProgress,
	CollectionMessage,
}
