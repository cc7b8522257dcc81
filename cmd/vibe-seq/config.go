package main

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"
)

// settingType selects how a config value given on the command line is parsed.
type settingType int

const (
	settingBool settingType = iota
	settingInt
	settingLevel
)

// setting describes one configuration key understood by vibe-seq.
type setting struct {
	Key  string
	Type settingType
	Help string
}

// settings lists every key in the order config show prints them.
// Defaults live in initConfig.
var settings = []setting{
	{"log.level", settingLevel, "Minimum log level: debug, info, warn or error (-v forces debug)"},
	{"input.uppercase", settingBool, "Upper-case --seq and FASTA symbols before alphabet checks"},
	{"output.line_width", settingInt, "Wrap FASTA output at this many symbols; 0 keeps one line"},
	{"batch.continue_on_error", settingBool, "Keep running a batch script after a failed step"},
	{"batch.metrics", settingBool, "Print step counters in Prometheus text format after a batch"},
}

func lookupSetting(key string) (setting, bool) {
	key = strings.ToLower(key)
	for _, s := range settings {
		if s.Key == key {
			return s, true
		}
	}
	return setting{}, false
}

func settingKeys() string {
	keys := make([]string, len(settings))
	for i, s := range settings {
		keys[i] = s.Key
	}
	return strings.Join(keys, ", ")
}

// parse converts a command-line value to the type stored in the config file.
func (s setting) parse(value string) (any, error) {
	switch s.Type {
	case settingBool:
		switch strings.ToLower(value) {
		case "true", "yes", "on", "1":
			return true, nil
		case "false", "no", "off", "0":
			return false, nil
		}
		return nil, fmt.Errorf("%s expects a boolean (true/false, yes/no, on/off), got %q", s.Key, value)
	case settingInt:
		n, err := strconv.Atoi(value)
		if err != nil || n < 0 {
			return nil, fmt.Errorf("%s expects a non-negative integer, got %q", s.Key, value)
		}
		return n, nil
	case settingLevel:
		lvl, err := zapcore.ParseLevel(value)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", s.Key, err)
		}
		return lvl.String(), nil
	}
	return value, nil
}

func newConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage vibe-seq configuration",
		Long: `Show, get, or set configuration values. Config is stored in ~/.vibe-seq.yaml
unless --config names another file. Any key can also be set from the
environment as VIBESEQ_<SECTION>_<NAME>, e.g. VIBESEQ_OUTPUT_LINE_WIDTH=60.`,
		Example: `  vibe-seq config                              # show every key with its value
  vibe-seq config set output.line_width 60     # wrap records at 60 symbols
  vibe-seq config get batch.continue_on_error  # get a value`,
		Args: usageArgs(cobra.NoArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runConfigShow(cmd)
		},
	}

	cmd.AddCommand(newConfigSetCmd())
	cmd.AddCommand(newConfigGetCmd())

	return cmd
}

func newConfigSetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "set <key> <value>",
		Short: "Set a configuration value",
		Long:  "Set a configuration value. Known keys: " + settingKeys() + ".",
		Args:  usageArgs(cobra.ExactArgs(2)),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runConfigSet(cmd, args[0], args[1])
		},
	}
}

func newConfigGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get <key>",
		Short: "Get a configuration value",
		Args:  usageArgs(cobra.ExactArgs(1)),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runConfigGet(cmd, args[0])
		},
	}
}

// runConfigShow prints the effective settings as YAML, each known key
// preceded by a comment describing it. Keys in the file that vibe-seq
// does not read are listed last.
func runConfigShow(cmd *cobra.Command) error {
	doc := &yaml.Node{Kind: yaml.MappingNode}
	for _, s := range settings {
		doc.Content = append(doc.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Value: s.Key, HeadComment: s.Help},
			&yaml.Node{Kind: yaml.ScalarNode, Value: fmt.Sprint(viper.Get(s.Key))},
		)
	}

	var unknown []string
	for _, key := range viper.AllKeys() {
		if _, ok := lookupSetting(key); !ok {
			unknown = append(unknown, key)
		}
	}
	sort.Strings(unknown)
	for i, key := range unknown {
		k := &yaml.Node{Kind: yaml.ScalarNode, Value: key}
		if i == 0 {
			k.HeadComment = "Not used by vibe-seq"
		}
		doc.Content = append(doc.Content, k,
			&yaml.Node{Kind: yaml.ScalarNode, Value: fmt.Sprint(viper.Get(key))})
	}

	out := cmd.OutOrStdout()
	if cfg := viper.ConfigFileUsed(); cfg != "" {
		fmt.Fprintf(out, "# Config file: %s\n", cfg)
	} else {
		fmt.Fprintln(out, "# No config file found; values are defaults or from VIBESEQ_* variables.")
	}
	enc := yaml.NewEncoder(out)
	enc.SetIndent(2)
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}
	return enc.Close()
}

func runConfigSet(cmd *cobra.Command, key, value string) error {
	s, ok := lookupSetting(key)
	if !ok {
		return &usageError{err: fmt.Errorf("unknown config key %q (known: %s)", key, settingKeys())}
	}
	v, err := s.parse(value)
	if err != nil {
		return &usageError{err: err}
	}
	viper.Set(s.Key, v)

	cfgFile := viper.ConfigFileUsed()
	if cfgFile == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("cannot determine home directory: %w", err)
		}
		cfgFile = filepath.Join(home, ".vibe-seq.yaml")
	}

	if err := viper.WriteConfigAs(cfgFile); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Set %s = %v in %s\n", s.Key, v, cfgFile)
	return nil
}

func runConfigGet(cmd *cobra.Command, key string) error {
	if _, ok := lookupSetting(key); !ok && !viper.IsSet(key) {
		return fmt.Errorf("key %q is not set", key)
	}
	fmt.Fprintln(cmd.OutOrStdout(), viper.Get(key))
	return nil
}
