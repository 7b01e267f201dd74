package content

// DefaultMemoryCategory is used for memories without a category.
const DefaultMemoryCategory = "Adventure"

type Memory struct {
	Image       string `yaml:"image"`
	Title       string `yaml:"title"`
	Description string `yaml:"description"`
	Location    string `yaml:"location"`
	Category    string `yaml:"category"`
}

func (m Memory) CategoryOrDefault() string {
	if m.Category == "" {
		return DefaultMemoryCategory
	}
	return m.Category
}
