package controllers

import (
	"fmt"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const envPrefix = "MOW"

// Settings is the parsed command line merged with MOW_* environment variables.
// Flags given on the command line win over the environment.
type Settings struct {
	Files           []string
	Wildcards       []string
	Recursive       bool
	ForceFind       bool
	ForceGit        bool
	NotOnlyModified bool
	ListWildcards   bool
	Debug           bool
	Yes             bool
	Verbose         bool
}

// NewSettings reads flags through viper. Positional arguments are appended
// to the explicit file list.
func NewSettings(flags *pflag.FlagSet, args []string) (*Settings, error) {
	reader := viper.New()
	reader.SetEnvPrefix(envPrefix)
	reader.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	reader.AutomaticEnv()
	if err := reader.BindPFlags(flags); err != nil {
		return nil, fmt.Errorf("failed to bind flags: %w", err)
	}

	files, err := explicitFiles(flags, reader)
	if err != nil {
		return nil, err
	}
	files = append(files, args...)

	return &Settings{
		Files:           files,
		Wildcards:       nonEmpty(reader.GetStringSlice(flagWildcard)),
		Recursive:       reader.GetBool(flagRecursive),
		ForceFind:       reader.GetBool(flagForceFind),
		ForceGit:        reader.GetBool(flagForceGit),
		NotOnlyModified: reader.GetBool(flagNotOnlyModified),
		ListWildcards:   reader.GetBool(flagListWildcards),
		Debug:           reader.GetBool(flagDebug),
		Yes:             reader.GetBool(flagYes),
		Verbose:         reader.GetBool(flagVerbose),
	}, nil
}

// String renders the settings for debug output.
func (s *Settings) String() string {
	return fmt.Sprintf("%+v", *s)
}

// explicitFiles returns the --files values verbatim. MOW_FILES is read only
// when the flag was not given.
func explicitFiles(flags *pflag.FlagSet, reader *viper.Viper) ([]string, error) {
	if flags.Changed(flagFiles) {
		values, err := flags.GetStringArray(flagFiles)
		if err != nil {
			return nil, fmt.Errorf("failed to read %s: %w", flagFiles, err)
		}
		return append([]string(nil), values...), nil
	}
	return reader.GetStringSlice(flagFiles), nil
}

func nonEmpty(values []string) []string {
	result := make([]string, 0, len(values))
	for _, value := range values {
		if value = strings.TrimSpace(value); value != "" {
			result = append(result, value)
		}
	}
	return result
}
