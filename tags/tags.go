package tags

import "github.com/yohamta/donburi"

var (
	Emitter = donburi.NewTag().SetName("Emitter")
	Wall    = donburi.NewTag().SetName("Wall")
)

// Resolv tags for physics collision
const (
	ResolvSolid    = "solid"
	ResolvParticle = "particle"
)
