package config

// SourceConfig is the compiled-in description of what the digest reads and
// how it presents the result.
type SourceConfig struct {
	Feeds     []string  `yaml:"feeds"`
	Keywords  []string  `yaml:"keywords"`
	Settings  Settings  `yaml:"settings"`
	Editorial Editorial `yaml:"editorial"`
}

// Settings contains pipeline limits
type Settings struct {
	WindowDays    int `yaml:"window_days"`
	MaxItems      int `yaml:"max_items"`
	SummaryLength int `yaml:"summary_length"` // characters
	Timeout       int `yaml:"timeout"`        // seconds
}

// Editorial holds the fixed text stamped onto every digest
type Editorial struct {
	Subject  string   `yaml:"subject"`
	Intro    string   `yaml:"intro"`
	Metrics  []string `yaml:"metrics"`
	Takeaway string   `yaml:"takeaway"`
}
