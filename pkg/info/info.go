package info

import "fmt"

var (
	// Version of the tool
	Version = "<todo>"
	// Commit in git in short format
	Commit = "<todo>"
	// GoVersion info on build moment
	GoVersion = "<todo>"
	// BuildDate is date and time in format +%Y-%m-%d_%H:%M:%S
	BuildDate = "<todo>"
)

type Info struct {
	Name      string
	Version   string
	Commit    string
	GoVersion string
	BuildDate string
}

// New returns build info, the variables are set by the linker:
// -ldflags "-X github.com/dialogs/gcm-message/pkg/info.Version=..."
func New(name string) *Info {
	return &Info{
		Name:      name,
		Version:   Version,
		Commit:    Commit,
		GoVersion: GoVersion,
		BuildDate: BuildDate,
	}
}

func (i *Info) String() string {
	return fmt.Sprintf("%s %s (commit: %s, go: %s, built: %s)",
		i.Name, i.Version, i.Commit, i.GoVersion, i.BuildDate)
}
