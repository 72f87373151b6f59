package engagement

import "github.com/tableshare/tableshare/internal/domain"

// Levels is the fixed progression table. Thresholds are strictly
// increasing; reaching a level pledges its Donation amount (dollars,
// matched by sponsors) to partner organizations.
var Levels = []domain.Level{
	{Level: 1, PointsRequired: 0, Title: "Neighbor", Donation: 0},
	{Level: 2, PointsRequired: 100, Title: "Helper", Donation: 5},
	{Level: 3, PointsRequired: 250, Title: "Advocate", Donation: 10},
	{Level: 4, PointsRequired: 500, Title: "Organizer", Donation: 20},
	{Level: 5, PointsRequired: 1000, Title: "Table Captain", Donation: 35},
	{Level: 6, PointsRequired: 2000, Title: "Hunger Hero", Donation: 50},
}

// MaxLevel is the highest reachable level.
func MaxLevel() int {
	return Levels[len(Levels)-1].Level
}

// LevelForPoints returns the highest level whose threshold is within
// the given point total.
func LevelForPoints(points int64) int {
	level := 1
	for _, l := range Levels {
		if points >= l.PointsRequired {
			level = l.Level
		}
	}
	return level
}

// LevelData returns the table entry for a level. Out-of-range levels
// clamp to the nearest defined entry.
func LevelData(level int) domain.Level {
	if level <= Levels[0].Level {
		return Levels[0]
	}
	if level >= MaxLevel() {
		return Levels[len(Levels)-1]
	}
	return Levels[level-1]
}

// PointsForLevel returns the cumulative points required to reach a level.
func PointsForLevel(level int) int64 {
	return LevelData(level).PointsRequired
}

// progressPercent returns progress toward the next level (0–100),
// saturating at 100 at max level.
func progressPercent(points int64, level int) float64 {
	if level >= MaxLevel() {
		return 100.0
	}
	floor := PointsForLevel(level)
	next := PointsForLevel(level + 1)
	span := next - floor
	if span <= 0 {
		return 100.0
	}
	pct := float64(points-floor) / float64(span) * 100.0
	if pct < 0 {
		pct = 0
	}
	if pct > 100 {
		pct = 100
	}
	return pct
}
