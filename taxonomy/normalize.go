package taxonomy

import "strings"

// synonyms maps genre spellings seen in the wild onto catalog spellings.
// Values must not themselves be synonym keys, so Normalize is idempotent.
var synonyms = map[string]string{
	"hiphop":           "hip-hop",
	"hip hop":          "hip-hop",
	"hip-hop/rap":      "hip-hop",
	"rap":              "hip-hop",
	"rhythm & blues":   "r&b",
	"rhythm and blues": "r&b",
	"rock-n-roll":      "rock & roll",
	"rock and roll":    "rock & roll",
	"punk rock":        "punk",
	"alternative":      "alternative rock",
	"electronica":      "electronic",
	"symphonic":        "orchestral",
}

// Normalize maps a raw genre string onto the catalog's spelling: lowercase
// and trim, then substitute known synonyms. The result is returned even when
// it matches no catalog entry; callers who need a canonical genre must
// re-check membership with LookupByName.
func Normalize(raw string) string {
	genre := strings.ToLower(strings.TrimSpace(raw))
	if sub, ok := synonyms[genre]; ok {
		genre = sub
	}
	return genre
}
