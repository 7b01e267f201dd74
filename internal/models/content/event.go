package content

// EventDateLayout is the format of Event.Date.
const EventDateLayout = "2006-01-02"

type Event struct {
	Image          string `yaml:"image"`
	Title          string `yaml:"title"`
	Date           string `yaml:"date"`
	Description    string `yaml:"description"`
	Location       string `yaml:"location"`
	Price          int    `yaml:"price"`
	AvailableSlots int    `yaml:"availableSlots"`
}
