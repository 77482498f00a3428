package config

// Profile is the portfolio content shown over the field.
type Profile struct {
	Name     string    `yaml:"name"`
	Roles    []string  `yaml:"roles"`
	Skills   []string  `yaml:"skills"`
	Projects []Project `yaml:"projects"`
	Contact  []Link    `yaml:"contact"`
	Sections []Section `yaml:"sections"`
}

type Project struct {
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
	URL         string `yaml:"url"`
}

type Link struct {
	Label string `yaml:"label"`
	URL   string `yaml:"url"`
}

// Section is one navigable block of the page.
type Section struct {
	ID    string   `yaml:"id"`
	Title string   `yaml:"title"`
	Lines []string `yaml:"lines"`
}

func DefaultProfile() Profile {
	return Profile{
		Name:  "Ada Synapse",
		Roles: []string{"Machine Learning Engineer", "Systems Programmer", "Terminal Enthusiast"},
		Skills: []string{
			"Go", "Python", "PyTorch", "Distributed Systems", "Kubernetes", "PostgreSQL",
		},
		Projects: []Project{
			{Name: "synapse", Description: "neural field portfolio for the terminal", URL: "https://github.com/san-kum/synapse"},
			{Name: "dynsim", Description: "physics and control simulation lab", URL: "https://github.com/san-kum/dynsim"},
		},
		Contact: []Link{
			{Label: "github", URL: "https://github.com/san-kum"},
			{Label: "email", URL: "mailto:hello@example.com"},
		},
		Sections: []Section{
			{ID: "home", Title: "Home", Lines: []string{
				"Building models that learn and systems that last.",
				"Move the mouse to push the network around.",
			}},
			{ID: "about", Title: "About", Lines: []string{
				"I work where numerical code meets production infrastructure.",
				"Most of my projects start as a small simulation and grow from there.",
				"Press ` to open the console and type help.",
			}},
			{ID: "projects", Title: "Projects", Lines: []string{
				"synapse  neural field portfolio for the terminal",
				"dynsim   physics and control simulation lab",
			}},
			{ID: "skills", Title: "Skills"},
			{ID: "contact", Title: "Contact", Lines: []string{
				"github  https://github.com/san-kum",
				"email   hello@example.com",
			}},
		},
	}
}

// SectionIndex returns the index of the section with id, or -1.
func (p Profile) SectionIndex(id string) int {
	for i, s := range p.Sections {
		if s.ID == id {
			return i
		}
	}
	return -1
}
