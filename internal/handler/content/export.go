package content

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/miguelromero/miguelbot/backend/internal/model/content"
)

// ExportSkills renders a skill set in one of the display formats used by
// the skills page.
func ExportSkills(skills content.SkillSet, format string) (string, error) {
	switch format {
	case "json":
		return exportJSON(skills)
	case "python":
		return exportPython(skills), nil
	case "sql":
		return exportSQL(), nil
	default:
		return "", fmt.Errorf("unknown export format %q", format)
	}
}

func exportJSON(skills content.SkillSet) (string, error) {
	data, err := json.MarshalIndent(skills, "", "  ")
	if err != nil {
		return "", err
	}
	return string(data), nil
}

func quoteList(items []string) string {
	quoted := make([]string, len(items))
	for i, item := range items {
		quoted[i] = fmt.Sprintf("%q", item)
	}
	return strings.Join(quoted, ", ")
}

func exportPython(skills content.SkillSet) string {
	return fmt.Sprintf(`# Miguel's Skills
skills = {
    "languages": [%s],
    "frameworks": [%s],
    "tools": [%s],
    "databases": [%s],
    "other": [%s]
}

# Function to get skill rating
def get_skill_proficiency(skill_name):
    proficiency_levels = {
        "JavaScript": "Advanced",
        "React": "Advanced",
        "Next.js": "Intermediate",
        "Python": "Intermediate",
        "SQL": "Intermediate"
    }
    return proficiency_levels.get(skill_name, "Learning")

# Print all skills with proficiency
for category, skill_list in skills.items():
    print(f"\n{category.upper()}:")
    for skill in skill_list:
        print(f"  - {skill}: {get_skill_proficiency(skill)}")`,
		quoteList(skills.Languages),
		quoteList(skills.Frameworks),
		quoteList(skills.Tools),
		quoteList(skills.Databases),
		quoteList(skills.Other),
	)
}

func exportSQL() string {
	return `-- Miguel's Skills Database Schema

CREATE TABLE skill_categories (
  id SERIAL PRIMARY KEY,
  name VARCHAR(50) NOT NULL
);

CREATE TABLE skills (
  id SERIAL PRIMARY KEY,
  name VARCHAR(100) NOT NULL,
  category_id INTEGER REFERENCES skill_categories(id),
  proficiency VARCHAR(20) CHECK (proficiency IN ('Beginner', 'Intermediate', 'Advanced')),
  years_experience DECIMAL(3,1)
);

-- Insert sample data
INSERT INTO skill_categories (name) VALUES
  ('Languages'),
  ('Frameworks'),
  ('Tools'),
  ('Databases'),
  ('Other');

-- Insert languages
INSERT INTO skills (name, category_id, proficiency, years_experience) VALUES
  ('JavaScript', 1, 'Advanced', 3.5),
  ('TypeScript', 1, 'Intermediate', 2.0),
  ('Python', 1, 'Intermediate', 2.5),
  ('SQL', 1, 'Intermediate', 2.0);

-- Query to fetch skills by category
SELECT c.name as category, s.name as skill, s.proficiency, s.years_experience
FROM skills s
JOIN skill_categories c ON s.category_id = c.id
ORDER BY c.name, s.proficiency DESC;`
}
