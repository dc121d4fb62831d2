// Package namegen produces readable throwaway usernames for the debug
// seeding endpoint.
package namegen

import (
	"fmt"
	"math/rand/v2"
)

var adjectives = []string{
	"amber", "brisk", "calm", "dusty", "eager", "fuzzy", "gentle",
	"hollow", "icy", "jolly", "keen", "lucky", "mellow", "noble",
	"odd", "plucky", "quiet", "rusty", "sly", "tidy", "vivid", "witty",
}

var nouns = []string{
	"badger", "comet", "dune", "ember", "falcon", "glacier", "harbor",
	"iris", "jackal", "kestrel", "lantern", "meadow", "nebula", "otter",
	"pine", "quartz", "raven", "sparrow", "tundra", "willow",
}

// Generate returns a username of the form adjective-noun-NN. Collisions are
// possible; callers that need uniqueness must check against their store.
func Generate() string {
	return fmt.Sprintf("%s-%s-%02d",
		adjectives[rand.IntN(len(adjectives))],
		nouns[rand.IntN(len(nouns))],
		rand.IntN(100),
	)
}
