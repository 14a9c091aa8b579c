// Package buildinfo holds build-time variables injected via ldflags.
package buildinfo

// Populated by -ldflags "-X github.com/go-ports/genarg/internal/buildinfo.Version=..."
// at build time; defaults used for local dev.
var (
	Version   = "dev"
	BuildDate = "unknown"
	GitCommit = "unknown"
	GitBranch = "unknown"
)

// Pair is one named build variable.
type Pair struct {
	Name  string
	Value string
}

// Pairs returns the build variables in display order.
func Pairs() []Pair {
	return []Pair{
		{Name: "version", Value: Version},
		{Name: "build_date", Value: BuildDate},
		{Name: "git_commit", Value: GitCommit},
		{Name: "git_branch", Value: GitBranch},
	}
}
