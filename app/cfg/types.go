package cfg

type Cfg struct {
	// Output configuration
	OutputPath string
	DryRun     bool

	// Fetch configuration
	UserAgent   string
	WorkerCount int

	// Preview server configuration
	Port    string
	BaseUrl string

	// Application metadata
	Debug   bool
	Version string
}
