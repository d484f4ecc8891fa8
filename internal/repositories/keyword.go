package repositories

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"alfredoptarigan/resume-analyzer/internal/models"
)

const DefaultRole = "developer"

// DefaultKeywords is the built-in role table.
var DefaultKeywords = map[string][]string{
	"developer":    {"Python", "Flask", "React", "TypeScript", "SQL", "Git"},
	"data_science": {"Python", "Pandas", "NumPy", "TensorFlow", "PyTorch", "Stats"},
}

type KeywordRepository interface {
	FindByRole(role string) (models.KeywordSet, error)
	Default() models.KeywordSet
	DefaultRole() string
	Roles() []string
}

// keywordRepository is read-only after construction and safe for concurrent use.
type keywordRepository struct {
	sets        map[string]models.KeywordSet
	defaultRole string
}

type keywordFile struct {
	Roles map[string][]string `yaml:"roles"`
}

func NewKeywordRepository(defaultRole string, table map[string][]string) (KeywordRepository, error) {
	if defaultRole == "" {
		defaultRole = DefaultRole
	}

	sets := make(map[string]models.KeywordSet, len(table))
	for role, keywords := range table {
		role = normalizeRole(role)
		if role == "" {
			return nil, fmt.Errorf("empty role name in keyword table")
		}
		if _, dup := sets[role]; dup {
			return nil, fmt.Errorf("duplicate role %q in keyword table", role)
		}
		sets[role] = models.KeywordSet{Role: role, Keywords: cleanKeywords(keywords)}
	}

	defaultRole = normalizeRole(defaultRole)
	if _, ok := sets[defaultRole]; !ok {
		return nil, fmt.Errorf("default role %q: %w", defaultRole, models.ErrUnknownRole)
	}

	return &keywordRepository{
		sets:        sets,
		defaultRole: defaultRole,
	}, nil
}

// LoadKeywordRepository builds the table from DefaultKeywords, overlaid with the roles
// declared in the YAML file at path (when path is non-empty).
func LoadKeywordRepository(defaultRole, path string) (KeywordRepository, error) {
	table := make(map[string][]string, len(DefaultKeywords))
	for role, keywords := range DefaultKeywords {
		table[role] = keywords
	}

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read keywords file: %w", err)
		}

		var file keywordFile
		if err := yaml.Unmarshal(data, &file); err != nil {
			return nil, fmt.Errorf("failed to parse keywords file: %w", err)
		}

		overlay := make(map[string][]string, len(file.Roles))
		for role, keywords := range file.Roles {
			role = normalizeRole(role)
			if _, dup := overlay[role]; dup {
				return nil, fmt.Errorf("duplicate role %q in keywords file", role)
			}
			overlay[role] = keywords
		}
		for role, keywords := range overlay {
			table[role] = keywords
		}
	}

	return NewKeywordRepository(defaultRole, table)
}

// FindByRole implements KeywordRepository.
func (r *keywordRepository) FindByRole(role string) (models.KeywordSet, error) {
	set, ok := r.sets[normalizeRole(role)]
	if !ok {
		return models.KeywordSet{}, fmt.Errorf("role %q: %w", role, models.ErrUnknownRole)
	}
	return set.Clone(), nil
}

// Default implements KeywordRepository.
func (r *keywordRepository) Default() models.KeywordSet {
	return r.sets[r.defaultRole].Clone()
}

// DefaultRole implements KeywordRepository.
func (r *keywordRepository) DefaultRole() string {
	return r.defaultRole
}

// Roles implements KeywordRepository.
func (r *keywordRepository) Roles() []string {
	roles := make([]string, 0, len(r.sets))
	for role := range r.sets {
		roles = append(roles, role)
	}
	sort.Strings(roles)
	return roles
}

func normalizeRole(role string) string {
	return strings.ToLower(strings.TrimSpace(role))
}

func cleanKeywords(keywords []string) []string {
	cleaned := make([]string, 0, len(keywords))
	for _, kw := range keywords {
		kw = strings.TrimSpace(kw)
		if kw != "" {
			cleaned = append(cleaned, kw)
		}
	}
	return cleaned
}
