package content

type FounderMessage struct {
	Image   string `yaml:"image"`
	Name    string `yaml:"name"`
	Title   string `yaml:"title"`
	Message string `yaml:"message"`
	Active  *bool  `yaml:"active"`
}

// IsActive defaults to true when the manifest does not say otherwise.
func (f FounderMessage) IsActive() bool {
	return f.Active == nil || *f.Active
}
