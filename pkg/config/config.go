package config

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/mchmarny/adminnav/pkg/navigation"
	"github.com/mchmarny/adminnav/pkg/registry"
	"github.com/mchmarny/adminnav/pkg/server"
	"gopkg.in/yaml.v3"
)

const (
	// EnvVarPort overrides the HTTP port.
	EnvVarPort = "ADMINNAV_PORT"

	// EnvVarConfig points at the YAML navigation definition.
	EnvVarConfig = "ADMINNAV_CONFIG"

	// EnvVarLogLevel sets the log level.
	EnvVarLogLevel = "LOG_LEVEL"
)

// ErrMissingName is returned when a navigation entry has no name.
var ErrMissingName = errors.New("navigation item has no name")

// File is a YAML navigation definition.
type File struct {
	Version    string     `yaml:"version"`
	Navigation []ItemSpec `yaml:"navigation"`
}

// ItemSpec describes one navigation entry and its children.
type ItemSpec struct {
	Name           string     `yaml:"name"`
	ID             string     `yaml:"id,omitempty"`
	Label          string     `yaml:"label,omitempty"`
	Icon           string     `yaml:"icon,omitempty"`
	View           string     `yaml:"view,omitempty"`
	ChildViews     []string   `yaml:"childViews,omitempty"`
	Event          string     `yaml:"event,omitempty"`
	EventArguments string     `yaml:"eventArguments,omitempty"`
	HeaderTitle    string     `yaml:"headerTitle,omitempty"`
	HeaderIcon     string     `yaml:"headerIcon,omitempty"`
	Position       *int       `yaml:"position,omitempty"`
	HasSettings    *bool      `yaml:"hasSettings,omitempty"`
	Disabled       bool       `yaml:"disabled,omitempty"`
	Children       []ItemSpec `yaml:"children,omitempty"`
}

// Load reads and validates the navigation definition at path.
func Load(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read navigation config %s: %w", path, err)
	}

	f, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("invalid navigation config %s: %w", path, err)
	}

	return f, nil
}

// Parse decodes and validates a YAML navigation definition.
// Unknown keys are rejected. An empty document yields an empty definition.
func Parse(data []byte) (*File, error) {
	var f File

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("failed to parse yaml: %w", err)
	}

	if err := f.Validate(); err != nil {
		return nil, err
	}

	return &f, nil
}

// Validate checks that every entry has a name.
func (f *File) Validate() error {
	for i, spec := range f.Navigation {
		if err := spec.validate(fmt.Sprintf("navigation[%d]", i)); err != nil {
			return err
		}
	}
	return nil
}

func (s ItemSpec) validate(path string) error {
	if strings.TrimSpace(s.Name) == "" {
		return fmt.Errorf("%w: %s", ErrMissingName, path)
	}

	for i, child := range s.Children {
		if err := child.validate(fmt.Sprintf("%s.children[%d]", path, i)); err != nil {
			return err
		}
	}

	return nil
}

// Build creates the navigation item described by s, including its children.
func (s ItemSpec) Build() *navigation.Item {
	item := navigation.New(s.Name)
	item.SetID(s.ID)
	item.SetLabel(s.Label)
	item.SetIcon(s.Icon)
	item.SetView(s.View)
	item.SetChildViews(s.ChildViews)
	item.SetEvent(s.Event)
	item.SetEventArguments(s.EventArguments)
	item.SetHeaderTitle(s.HeaderTitle)
	item.SetHeaderIcon(s.HeaderIcon)
	item.SetDisabled(s.Disabled)

	if s.Position != nil {
		item.SetPosition(*s.Position)
	}

	if s.HasSettings != nil {
		item.SetHasSettings(*s.HasSettings)
	}

	for _, child := range s.Children {
		item.AddChild(child.Build())
	}

	return item
}

// Build creates a container item whose children are the top-level entries of f.
func (f *File) Build(name string) *navigation.Item {
	root := navigation.New(name)
	for _, spec := range f.Navigation {
		root.AddChild(spec.Build())
	}
	return root
}

// Provider returns a registry provider contributing the entries of f.
// Every call to Navigation builds a new tree.
func (f *File) Provider(name string) registry.Provider {
	return registry.ProviderFunc{
		ID: name,
		Fn: func(context.Context) (*navigation.Item, error) {
			return f.Build(name), nil
		},
	}
}

// Settings holds the runtime settings of the service.
type Settings struct {
	Port       int
	LogLevel   string
	ConfigPath string
}

// SettingsFromEnv reads the settings from the environment, using defaults for unset values.
func SettingsFromEnv() (*Settings, error) {
	s := &Settings{
		Port:       server.DefaultPort,
		LogLevel:   os.Getenv(EnvVarLogLevel),
		ConfigPath: os.Getenv(EnvVarConfig),
	}

	if v := strings.TrimSpace(os.Getenv(EnvVarPort)); v != "" {
		port, err := strconv.Atoi(v)
		if err != nil || port <= 0 || port > 65535 {
			return nil, fmt.Errorf("invalid %s value %q", EnvVarPort, v)
		}
		s.Port = port
	}

	return s, nil
}
