package output

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/goccy/go-json"
	"github.com/rpgo/finplan/internal/domain"
	"gopkg.in/yaml.v3"
)

// ResolveFormatter looks up a formatter, enriching the error with the available names and aliases.
func ResolveFormatter(format string) (Formatter, error) {
	if f := GetFormatterByName(format); f != nil {
		return f, nil
	}
	return nil, fmt.Errorf("%w: %q. Try one of: %s (aliases: %s)", ErrUnsupportedFormat, format, strings.Join(AvailableFormatterNames(), ", "), strings.Join(AvailableFormatAliases(), ", "))
}

// GenerateReport formats the comparison and writes it to a timestamped file in dir.
func GenerateReport(results *domain.ScenarioComparison, format, dir string) (string, error) {
	f, err := ResolveFormatter(format)
	if err != nil {
		return "", err
	}
	return WriteFormatted(f, results, dir, Extension(f))
}

// WriteReport formats the comparison straight to w (stdout for console output).
func WriteReport(w io.Writer, results *domain.ScenarioComparison, format string) error {
	f, err := ResolveFormatter(format)
	if err != nil {
		return err
	}
	data, err := f.Format(results)
	if err != nil {
		return fmt.Errorf("%s formatter: %w", f.Name(), err)
	}
	_, err = w.Write(data)
	return err
}

// SaveConfiguration writes the configuration as YAML, TOML or JSON depending on the file extension.
func SaveConfiguration(config *domain.Configuration, filename string) error {
	var (
		b   []byte
		err error
	)
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".toml":
		var sb strings.Builder
		err = toml.NewEncoder(&sb).Encode(config)
		b = []byte(sb.String())
	case ".json":
		b, err = json.MarshalIndent(config, "", "  ")
	default:
		b, err = yaml.Marshal(config)
	}
	if err != nil {
		return fmt.Errorf("failed to encode configuration: %w", err)
	}
	return os.WriteFile(filename, b, 0644)
}
