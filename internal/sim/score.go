package sim

// Scoreboard tallies destroyed targets against projectiles fired. Both
// counters only ever grow.
type Scoreboard struct {
	TargetsDestroyed int
	ProjectilesUsed  int
}

// Score is destroyed targets minus projectiles used; it can go negative.
func (s Scoreboard) Score() int {
	return s.TargetsDestroyed - s.ProjectilesUsed
}

// Difficulty is the non-negative part of the score used to shrink new waves.
func (s Scoreboard) Difficulty() int {
	if sc := s.Score(); sc > 0 {
		return sc
	}
	return 0
}
