package entity

// Portfolio holds the static sections of the public page.
type Portfolio struct {
	Profile       Profile           `json:"profile" yaml:"profile"`
	Pillars       []ResearchPillar  `json:"research_pillars" yaml:"research_pillars"`
	Philosophy    []string          `json:"philosophy" yaml:"philosophy"`
	SelectedWork  []Project         `json:"selected_work" yaml:"selected_work"`
	Collaborators []string          `json:"collaborators" yaml:"collaborators"`
	Capabilities  []CapabilityGroup `json:"capabilities" yaml:"capabilities"`
	Experience    []ExperienceEntry `json:"-" yaml:"experience"`
	Writing       []Post            `json:"-" yaml:"writing"`
	Links         map[string]string `json:"links" yaml:"links"`
}

type Profile struct {
	Name     string `json:"name" yaml:"name"`
	Headline string `json:"headline" yaml:"headline"`
	Email    string `json:"email" yaml:"email"`
	Location string `json:"location" yaml:"location"`
	Bio      string `json:"bio" yaml:"bio"`
	Avatar   string `json:"avatar" yaml:"avatar"`
}

type ResearchPillar struct {
	Title       string `json:"title" yaml:"title"`
	Description string `json:"description" yaml:"description"`
}

type Project struct {
	Title   string   `json:"title" yaml:"title"`
	Summary string   `json:"summary" yaml:"summary"`
	Tags    []string `json:"tags" yaml:"tags"`
	Link    string   `json:"link,omitempty" yaml:"link"`
}

type CapabilityGroup struct {
	Name   string   `json:"name" yaml:"name"`
	Skills []string `json:"skills" yaml:"skills"`
}
