package app

// Build metadata, injected at link time.
var (
	Version   string = "1.0.0"
	GitTag    string = "dev"
	BuildTime string = "1970-01-01T00:00:00Z"
)

const (
	// Name is the application display name.
	Name = "Club Calendar Service"
)
