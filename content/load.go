package content

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/frontmatter"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	yamlv3 "gopkg.in/yaml.v3"
)

// File names looked up in a content directory.
const (
	FileName  = "content.yaml"
	AboutFile = "about.md"
)

// aboutMatter is the frontmatter accepted at the top of about.md.
type aboutMatter struct {
	Services []string `yaml:"services"`
}

// Load reads content.yaml and about.md from dir. Missing files and fields
// fall back to Default. An empty dir returns Default unchanged.
func Load(dir string) (Content, error) {
	def := Default()
	if dir == "" {
		return def, nil
	}

	var c Content
	path := filepath.Join(dir, FileName)
	if _, err := os.Stat(path); err == nil {
		k := koanf.New(".")
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return Content{}, fmt.Errorf("content: reading %s: %w", path, err)
		}
		if err := k.Unmarshal("", &c); err != nil {
			return Content{}, fmt.Errorf("content: decoding %s: %w", path, err)
		}
	} else if !os.IsNotExist(err) {
		return Content{}, fmt.Errorf("content: accessing %s: %w", path, err)
	}

	if err := c.loadAbout(filepath.Join(dir, AboutFile)); err != nil {
		return Content{}, err
	}

	c.fillDefaults(def)
	c.numberProjects()
	if err := c.Validate(); err != nil {
		return Content{}, err
	}
	html, err := Markdown(c.About.Body)
	if err != nil {
		return Content{}, fmt.Errorf("content: rendering about: %w", err)
	}
	c.About.HTML = html
	return c, nil
}

// loadAbout replaces the about body (and services, when the frontmatter
// lists them) with the contents of path, if it exists.
func (c *Content) loadAbout(path string) error {
	raw, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("content: reading %s: %w", path, err)
	}
	var matter aboutMatter
	body, err := frontmatter.Parse(bytes.NewReader(raw), &matter)
	if err != nil {
		return fmt.Errorf("content: parsing %s: %w", path, err)
	}
	c.About.Body = strings.TrimSpace(string(body))
	if len(matter.Services) > 0 {
		c.About.Services = matter.Services
	}
	return nil
}

// fillDefaults copies every unset field from def. Lists are replaced whole.
func (c *Content) fillDefaults(def Content) {
	orDefault(&c.Profile.Greeting, def.Profile.Greeting)
	orDefault(&c.Profile.Name, def.Profile.Name)
	orDefault(&c.Profile.Title, def.Profile.Title)
	orDefault(&c.Profile.Intro, def.Profile.Intro)

	orDefault(&c.About.Body, def.About.Body)
	if c.About.Services == nil {
		c.About.Services = def.About.Services
	}
	if c.Skills == nil {
		c.Skills = def.Skills
	}
	if c.Projects == nil {
		c.Projects = def.Projects
	}

	orDefault(&c.Contact.Heading, def.Contact.Heading)
	orDefault(&c.Contact.Message, def.Contact.Message)
	orDefault(&c.Contact.Email, def.Contact.Email)
	if c.Contact.Links == nil {
		c.Contact.Links = def.Contact.Links
	}
}

// numberProjects gives projects without an id the next free one, so id can
// be left out of content.yaml.
func (c *Content) numberProjects() {
	next := 0
	for _, p := range c.Projects {
		if p.ID > next {
			next = p.ID
		}
	}
	for i := range c.Projects {
		if c.Projects[i].ID == 0 {
			next++
			c.Projects[i].ID = next
		}
	}
}

func orDefault(field *string, def string) {
	if strings.TrimSpace(*field) == "" {
		*field = def
	}
}

// YAML encodes c in the content.yaml format.
func (c Content) YAML() ([]byte, error) {
	var buf bytes.Buffer
	enc := yamlv3.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(c); err != nil {
		return nil, fmt.Errorf("content: encoding yaml: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("content: encoding yaml: %w", err)
	}
	return buf.Bytes(), nil
}
