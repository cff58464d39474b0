package prompts

import (
	"embed"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// embeds all .yaml files in the templates folder into Go program at compile time
//
//go:embed templates/*.yaml
var templateFS embed.FS

// Prompt is a system/user message pair ready to send to the model.
type Prompt struct {
	System string
	User   string
}

// PromptProvider is implemented by the prompt manager and by test fakes.
type PromptProvider interface {
	BuildPrompt(mode string, data map[string]string) (Prompt, error)
	GetTemplates() []string
}

type PromptManager struct {
	prompts map[string]promptTemplate // mode -> template
}

// loaded prompt template
type promptTemplate struct {
	SystemPrompt string `yaml:"system_prompt"`
	UserPrompt   string `yaml:"user_prompt"`
}

// creates a new prompt manager and loads templates
func NewPromptManager() (*PromptManager, error) {
	pm := &PromptManager{
		prompts: make(map[string]promptTemplate),
	}

	if err := pm.loadPrompts(); err != nil {
		return nil, fmt.Errorf("failed to load prompt templates: %w", err)
	}

	return pm, nil
}

// builds a prompt for the given mode, substituting {{.Key}} placeholders
func (pm *PromptManager) BuildPrompt(mode string, data map[string]string) (Prompt, error) {
	tmpl, exists := pm.prompts[mode]
	if !exists {
		return Prompt{}, fmt.Errorf("template not found for mode: %s", mode)
	}

	// Simple string replacement instead of complex template execution
	user := tmpl.UserPrompt
	for key, value := range data {
		user = strings.ReplaceAll(user, "{{."+key+"}}", value)
	}

	return Prompt{
		System: strings.TrimSpace(tmpl.SystemPrompt),
		User:   strings.TrimSpace(user),
	}, nil
}

// GetTemplates returns the names of all loaded templates.
func (pm *PromptManager) GetTemplates() []string {
	names := make([]string, 0, len(pm.prompts))
	for name := range pm.prompts {
		names = append(names, name)
	}
	return names
}

// loadPrompts loads all YAML prompt files from the embedded filesystem
func (pm *PromptManager) loadPrompts() error {
	entries, err := templateFS.ReadDir("templates")
	if err != nil {
		return fmt.Errorf("failed to read templates directory: %w", err)
	}

	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".yaml") {
			continue
		}

		data, err := templateFS.ReadFile("templates/" + entry.Name())
		if err != nil {
			return fmt.Errorf("failed to read template file %s: %w", entry.Name(), err)
		}

		var tmpl promptTemplate
		if err := yaml.Unmarshal(data, &tmpl); err != nil {
			return fmt.Errorf("failed to parse template file %s: %w", entry.Name(), err)
		}

		name := strings.TrimSuffix(entry.Name(), ".yaml")
		pm.prompts[name] = tmpl
	}

	return nil
}
