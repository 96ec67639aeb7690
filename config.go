package pagecheck

// Defaults for Config.
const (
	DefaultInputPath         = "index.html"
	DefaultOutputPath        = "content_analysis_report.json"
	DefaultMinFragmentLength = 10
	DefaultMinSentenceLength = 20
	DefaultSampleSize        = 10
)

// Config holds the options of one analysis run.
type Config struct {
	InputPath  string
	OutputPath string

	// Fragments and sentences must be strictly longer than these, in characters.
	MinFragmentLength int
	MinSentenceLength int

	// SampleSize bounds the number of phrases included in the report.
	SampleSize int
}

// DefaultConfig returns a Config with default values.
func DefaultConfig() Config {
	return Config{
		InputPath:         DefaultInputPath,
		OutputPath:        DefaultOutputPath,
		MinFragmentLength: DefaultMinFragmentLength,
		MinSentenceLength: DefaultMinSentenceLength,
		SampleSize:        DefaultSampleSize,
	}
}

// Validate returns an error if the config contains invalid fields.
func (c *Config) Validate() error {
	if c.InputPath == "" {
		return Errorf(EINVALID, "input path required")
	}
	if c.OutputPath == "" {
		return Errorf(EINVALID, "output path required")
	}
	if c.MinFragmentLength < 0 {
		return Errorf(EINVALID, "minimum fragment length must not be negative")
	}
	if c.MinSentenceLength < 0 {
		return Errorf(EINVALID, "minimum sentence length must not be negative")
	}
	if c.SampleSize < 0 {
		return Errorf(EINVALID, "sample size must not be negative")
	}
	return nil
}
