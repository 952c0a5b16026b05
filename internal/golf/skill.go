package golf

import "math/rand"

// SkillProfile drives how a simulated player shoots. All fields are in [0,1].
type SkillProfile struct {
	Name       string
	Accuracy   float64
	Power      float64
	Aggression float64
}

// Styles are the named profiles handed out to new players.
var Styles = []SkillProfile{
	{Name: "Balanced", Accuracy: 0.8, Power: 0.7, Aggression: 0.6},
	{Name: "Precise", Accuracy: 0.9, Power: 0.5, Aggression: 0.3},
	{Name: "Power", Accuracy: 0.6, Power: 0.9, Aggression: 0.8},
	{Name: "Aggressive", Accuracy: 0.7, Power: 0.6, Aggression: 0.9},
	{Name: "Conservative", Accuracy: 0.95, Power: 0.4, Aggression: 0.2},
}

// RandomStyle picks one of Styles.
func RandomStyle(rng *rand.Rand) SkillProfile {
	return Styles[rng.Intn(len(Styles))]
}

// Palette holds the player colours in registration order.
var Palette = []string{
	"#FF6B35", "#4ECDC4", "#45B7D1", "#F7DC6F", "#BB8FCE",
	"#85C1E9", "#82E0AA", "#F8C471", "#EC7063", "#85929E",
}
