package catalog

import (
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/KirkDiggler/talentprobe/internal/check"
	"github.com/KirkDiggler/talentprobe/internal/models"
)

const (
	// DefaultCategory is used for talents that do not name a category
	DefaultCategory = "Allgemein"

	// MaxSkillNameLength caps talent names in runes so a name always fits a Discord custom ID
	MaxSkillNameLength = 64
)

//go:embed data/talent.json
var defaultTalents []byte

var (
	// ErrEmptySkillName is returned for catalog entries without a name
	ErrEmptySkillName = errors.New("skill name cannot be empty")

	// ErrSkillNameTooLong is returned for names above MaxSkillNameLength
	ErrSkillNameTooLong = errors.New("skill name is too long")
)

// Config holds configuration for loading the talent catalog
type Config struct {
	// Path to a talent.json file; empty loads the built-in catalog
	Path string
}

// Catalog is the list of talents every new character starts with
type Catalog struct {
	skills     []*models.Skill
	categories []string
}

// Load reads the talent catalog described by cfg
func Load(cfg *Config) (*Catalog, error) {
	data := defaultTalents
	if cfg != nil && cfg.Path != "" {
		fileData, err := os.ReadFile(cfg.Path)
		if err != nil {
			return nil, fmt.Errorf("failed to read talent catalog: %w", err)
		}
		data = fileData
	}

	return Parse(data)
}

// Parse decodes a talent document of the form {"category": [talent, ...]}.
// Categories are flattened in name order; talents keep their file order.
func Parse(data []byte) (*Catalog, error) {
	var grouped map[string][]*models.Skill
	if err := json.Unmarshal(data, &grouped); err != nil {
		return nil, fmt.Errorf("failed to unmarshal talent catalog: %w", err)
	}

	categories := make([]string, 0, len(grouped))
	for category := range grouped {
		categories = append(categories, category)
	}
	sort.Strings(categories)

	c := &Catalog{}
	seen := make(map[string]bool)
	for _, category := range categories {
		for _, skill := range grouped[category] {
			if skill == nil {
				continue
			}
			if skill.Category == "" {
				skill.Category = category
			}
			if err := ValidateSkill(skill); err != nil {
				return nil, fmt.Errorf("invalid talent %q in %q: %w", skill.Name, category, err)
			}

			key := strings.ToLower(skill.Name)
			if seen[key] {
				return nil, fmt.Errorf("duplicate talent %q in %q", skill.Name, category)
			}
			seen[key] = true

			c.skills = append(c.skills, skill)
		}
		c.categories = append(c.categories, category)
	}

	return c, nil
}

// Skills returns a fresh copy of every talent in the catalog
func (c *Catalog) Skills() []*models.Skill {
	return models.CloneSkills(c.skills)
}

// Categories returns the catalog categories in name order
func (c *Catalog) Categories() []string {
	return append([]string{}, c.categories...)
}

// ValidateSkill checks that a talent can be rolled
func ValidateSkill(skill *models.Skill) error {
	if strings.TrimSpace(skill.Name) == "" {
		return ErrEmptySkillName
	}
	if utf8.RuneCountInString(skill.Name) > MaxSkillNameLength {
		return ErrSkillNameTooLong
	}
	if len(skill.Attributes) == 0 {
		return check.ErrNoGoverningAttributes
	}
	if len(skill.Attributes) > check.MaxGoverningAttributes {
		return check.ErrTooManyGoverningAttributes
	}
	for _, a := range skill.Attributes {
		if !a.IsValid() {
			return fmt.Errorf("%w: %s", check.ErrUnknownAttribute, a)
		}
	}
	if skill.Value < 0 {
		return fmt.Errorf("talent value cannot be negative: %d", skill.Value)
	}
	return nil
}
