package project

import (
	"io"
	"os"
	"path/filepath"
	"sort"

	"github.com/pkg/errors"
	"github.com/vyPal/Kaleidoscope/lib/parser"
	"github.com/vyPal/Kaleidoscope/util"
	"gopkg.in/yaml.v3"
)

// FileName is the configuration file looked up in a project directory.
const FileName = "kaleido.yaml"

type Config struct {
	Prompt    string         `yaml:"prompt"`
	MaxDepth  int            `yaml:"maxDepth"`
	Color     *bool          `yaml:"color,omitempty"`
	Operators map[string]int `yaml:"operators"`
}

func (c *Config) CreateDefault() {
	on := true
	c.Prompt = "ready> "
	c.MaxDepth = parser.DefaultMaxDepth
	c.Color = &on
	c.Operators = make(map[string]int)
	table := parser.DefaultPrecedence()
	for _, op := range table.Operators() {
		prec, _ := table.Lookup(op)
		c.Operators[string(op)] = prec
	}
}

// Default returns the configuration used when no file exists.
func Default() Config {
	var c Config
	c.CreateDefault()
	return c
}

// ColorEnabled reports whether diagnostics should be coloured.
func (c *Config) ColorEnabled() bool {
	return c.Color == nil || *c.Color
}

// Precedence builds the operator table. An empty operator section
// selects the default table.
func (c *Config) Precedence() (*parser.PrecedenceTable, error) {
	if len(c.Operators) == 0 {
		return parser.DefaultPrecedence(), nil
	}
	ops := make(map[byte]int, len(c.Operators))
	for _, name := range sortedKeys(c.Operators) {
		if len(name) != 1 {
			return nil, errors.Errorf("operator %q: must be a single character", name)
		}
		ops[name[0]] = c.Operators[name]
	}
	table, err := parser.NewPrecedenceTable(ops)
	if err != nil {
		return nil, errors.Wrap(err, "invalid operator table")
	}
	return table, nil
}

// ParserOptions returns the parser options the configuration selects.
func (c *Config) ParserOptions() ([]parser.Option, error) {
	table, err := c.Precedence()
	if err != nil {
		return nil, err
	}
	return []parser.Option{
		parser.WithPrecedence(table),
		parser.WithMaxDepth(c.MaxDepth),
	}, nil
}

// Validate checks the configuration without building anything else.
func (c *Config) Validate() error {
	if c.MaxDepth < 0 {
		return errors.Errorf("maxDepth %d is negative", c.MaxDepth)
	}
	_, err := c.Precedence()
	return err
}

// ErrKept is returned by Save when the user declines to overwrite an
// existing file.
var ErrKept = errors.New("existing file kept")

// Save writes c to path. An existing file is replaced if overwrite is set
// or the user confirms it.
func (c *Config) Save(path string, overwrite bool) error {
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		if overwrite || util.PromptYN(path+" already exists. Overwrite?", false) {
			os.Remove(path)
		} else {
			return ErrKept
		}
	}

	yml, err := yaml.Marshal(c)
	if err != nil {
		return errors.Wrap(err, "encoding config")
	}

	err = os.WriteFile(path, yml, 0644)
	if err != nil {
		return errors.Wrapf(err, "writing %s", path)
	}

	return nil
}

// Load reads a configuration file. Fields the file leaves out keep their
// default values.
func Load(path string) (Config, error) {
	conf := Default()

	file, err := os.Open(path)
	if err != nil {
		return Config{}, errors.Wrapf(err, "opening %s", path)
	}
	defer file.Close()

	// The file replaces the default operator table instead of merging
	// into it.
	conf.Operators = nil
	decoder := yaml.NewDecoder(file)
	err = decoder.Decode(&conf)
	if err != nil && err != io.EOF {
		return Config{}, errors.Wrapf(err, "decoding %s", path)
	}

	if err := conf.Validate(); err != nil {
		return Config{}, errors.Wrapf(err, "%s", path)
	}

	return conf, nil
}

// GetConfig loads the configuration for dir. A missing file yields the
// defaults.
func GetConfig(dir string) (Config, error) {
	path := filepath.Join(dir, FileName)
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return Default(), nil
	}
	return Load(path)
}

// Resolve loads the file at path when it is set, otherwise the config of
// the working directory.
func Resolve(path string) (Config, error) {
	if path != "" {
		return Load(path)
	}
	return GetConfig(".")
}

func sortedKeys(m map[string]int) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
