package profile

// Profile defines how near-duplicate images are matched and re-encoded.
type Profile struct {
	Name       string
	Threshold  int  // max dhash Hamming distance counted as similar
	AutoOrient bool // apply EXIF orientation before hashing
	Quality    int  // encoding quality 1-100 for lossy resize output
}

// DefaultName is used when no profile is requested.
const DefaultName = "marsbot"

// Built-in profiles.
var profiles = map[string]Profile{
	"marsbot": {
		Name:      "marsbot",
		Threshold: 6,
		Quality:   85,
	},
	"strict": {
		Name:      "strict",
		Threshold: 0,
		Quality:   90,
	},
	"loose": {
		Name:       "loose",
		Threshold:  10,
		AutoOrient: true,
		Quality:    80,
	},
}

// Get returns a profile by name. Falls back to marsbot if unknown.
func Get(name string) Profile {
	if p, ok := profiles[name]; ok {
		return p
	}
	p := profiles[DefaultName]
	p.Name = name // preserve requested name
	return p
}

// Known reports whether name is a built-in profile.
func Known(name string) bool {
	_, ok := profiles[name]
	return ok
}

// Similar reports whether a Hamming distance falls within the threshold.
func (p Profile) Similar(distance int) bool {
	return distance >= 0 && distance <= p.Threshold
}
