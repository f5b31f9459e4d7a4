package configutil

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"dario.cat/mergo"
	"github.com/titanous/json5"
)

// localName returns the path of the local override of `name`, for
// "steamscraper.json5" that is "steamscraper.local.json5".
func localName(name string) string {
	ext := filepath.Ext(name)
	prefix := strings.TrimSuffix(name, ext)
	return fmt.Sprintf("%s.local%s", prefix, ext)
}

func readJson5[T any](path string) (T, bool, error) {
	var out T
	contents, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return out, false, nil
	}
	if err != nil {
		return out, false, err
	}
	if len(strings.TrimSpace(string(contents))) == 0 {
		return out, true, nil
	}
	err = json5.Unmarshal(contents, &out)
	if err != nil {
		return out, false, fmt.Errorf("decode %s: %w", path, err)
	}
	return out, true, nil
}

// ReadConfig reads a json5 configuration file and merges it over `base`, `name`
// should come with a file extension. Fields are merged in the following order,
// where a higher number takes priority:
//  1. base
//  2. <name>.<ext>
//  3. <name>.local.<ext>
//
// If neither file exists, `base` is returned together with os.ErrNotExist.
func ReadConfig[T any](name string, base T) (T, error) {
	out := base
	found := false

	for _, path := range []string{name, localName(name)} {
		override, ok, err := readJson5[T](path)
		if err != nil {
			return base, err
		}
		if !ok {
			continue
		}
		err = mergo.Merge(&out, override, mergo.WithOverride)
		if err != nil {
			return base, fmt.Errorf("merge %s: %w", path, err)
		}
		if found {
			slog.Info("merging config with local overrides", "local", path)
		}
		found = true
	}

	if !found {
		return base, os.ErrNotExist
	}
	return out, nil
}
