package config

// File represents the structure of the buildtrigger.yaml configuration file.
type File struct {
	Project      string `yaml:"project"`
	PollInterval string `yaml:"pollInterval"`
	Region       string `yaml:"region"`
	LogFormat    string `yaml:"logFormat"`
}
