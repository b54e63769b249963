package model

const (
	DefaultOwner   = "ian-tsien"
	DefaultRepo    = "CSAPP-Labs"
	DefaultPath    = "malloc-lab/traces"
	DefaultSaveDir = "traces"
)

// Target identifies the remote directory to fetch
type Target struct {
	Owner string
	Repo  string
	Path  string
}

// DefaultTarget returns the directory fetched when nothing is configured
func DefaultTarget() Target {
	return Target{
		Owner: DefaultOwner,
		Repo:  DefaultRepo,
		Path:  DefaultPath,
	}
}

func (t Target) String() string {
	return t.Owner + "/" + t.Repo + "/" + t.Path
}
