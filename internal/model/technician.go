package model

// Technician skill levels accepted by the `technicians.skill_level` enum.
const (
	SkillJunior = "junior"
	SkillMid    = "mid"
	SkillSenior = "senior"
)

// ValidSkillLevel reports whether s is one of the known skill levels.
func ValidSkillLevel(s string) bool {
	return s == SkillJunior || s == SkillMid || s == SkillSenior
}

// Technician is a row of the `technicians` table. The scheduling engine
// always consumes technicians ordered by id ascending, which fixes the
// load-balancing tie-break.
type Technician struct {
	ID         uint64 `json:"id"`          // technicians.id
	Name       string `json:"name"`        // technicians.name
	SkillLevel string `json:"skill_level"` // technicians.skill_level
}
