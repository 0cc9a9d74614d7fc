package semver

// Version is a parsed MAJOR.MINOR.PATCH triplet.
type Version struct {
	Major int
	Minor int
	Patch int
}

// Component names accepted by Bump.
const (
	ComponentMajor = "major"
	ComponentMinor = "minor"
	ComponentPatch = "patch"
)

type service struct{}

// Service finds and increments version triplets inside captured field values.
type Service interface {
	Find(value string) (Version, error)
	Bump(v Version, component string) (Version, error)
	Format(v Version) string
	ValidateExplicit(value string) error
}
