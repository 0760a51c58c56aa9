package schema

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/relquery/relq/internal/atomicfile"
)

// Load reads and validates a schema.yaml file.
func Load(path string) (*Schema, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read schema file %s: %w", path, err)
	}
	return Parse(data)
}

// Parse parses schema YAML from memory.
func Parse(data []byte) (*Schema, error) {
	var s Schema
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("failed to parse schema: %w", err)
	}
	if s.Entities == nil {
		s.Entities = make(map[string]*Entity)
	}
	if err := s.normalize(); err != nil {
		return nil, err
	}
	return &s, nil
}

// CreateDefault writes a starter schema.yaml at path.
func CreateDefault(path string) error {
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("schema file already exists: %s", path)
	}

	starter := `# relq schema
# Entities map names to tables, attributes, and scopes.
#
# table defaults to a slug of the entity name; primary_key defaults to "id".
entities:
  ticket:
    attributes:
      - {name: status, type: string}
      - {name: priority, type: number}
      - {name: assignee, type: string}
      - {name: created_at, type: date}
    default_scope:
      - {column: status, values: [open, triaged, in_progress]}
    scopes:
      open:
        - {column: status, value: open}
      urgent:
        - {column: priority, value: 1}
`
	return atomicfile.WriteFile(path, []byte(starter), 0o644)
}
