package category

import (
	"fmt"
	"strings"
)

// Category is a parsed Prism Central category label.
// Example: Environment:Production
type Category struct {
	Key   string
	Value string
}

// Parse parses a label like "Key:Value" into a Category.
func Parse(raw string) (Category, error) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return Category{}, fmt.Errorf("category must not be empty; expected format 'Key:Value'")
	}
	// Expect <key>:<value>
	i := strings.Index(s, ":")
	if i <= 0 || i == len(s)-1 {
		return Category{}, fmt.Errorf("invalid category %q; expected format 'Key:Value' (e.g., 'Environment:Production')", raw)
	}
	key := strings.TrimSpace(s[:i])
	value := strings.TrimSpace(s[i+1:])
	if key == "" || value == "" {
		return Category{}, fmt.Errorf("invalid category %q; key and value must not be empty", raw)
	}
	return Category{Key: key, Value: value}, nil
}

// String returns the canonical Key:Value form.
func (c Category) String() string {
	return fmt.Sprintf("%s:%s", c.Key, c.Value)
}
