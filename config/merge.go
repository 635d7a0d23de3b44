package config

import (
	"encoding/json"
	"os"
	"regexp"

	"dario.cat/mergo"
	"github.com/hjson/hjson-go/v4"

	"github.com/corebridge/featuregate/errs"
)

// LoadOptions controls how a set of config files is read and merged.
type LoadOptions struct {
	// Files are merged in order; later files override earlier ones.
	Files []string
	// UseHJSON parses each file as HJSON instead of strict JSON, allowing
	// comments and unquoted keys.
	UseHJSON bool
	// StripComments strips // and /* */ comments before strict-JSON
	// parsing; ignored when UseHJSON is set (hjson already tolerates them).
	StripComments bool
}

var commentPattern = regexp.MustCompile(`(?m)//.*$|/\*[\s\S]*?\*/`)

// stripComments removes // and /* */ comments from JSON text.
func stripComments(input []byte) []byte {
	return commentPattern.ReplaceAll(input, []byte{})
}

func loadFileToMerge(path string, useHJSON, strip bool) (map[string]interface{}, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var result map[string]interface{}
	if useHJSON {
		err = hjson.Unmarshal(data, &result)
	} else {
		if strip {
			data = stripComments(data)
		}
		err = json.Unmarshal(data, &result)
	}
	return result, err
}

// mergeFiles merges opts.Files in order into a single map, each file's
// values overriding any key already set by an earlier file.
func mergeFiles(opts LoadOptions) (map[string]interface{}, error) {
	if len(opts.Files) == 0 {
		return nil, errs.New("no config files provided")
	}

	final := make(map[string]interface{})
	for _, file := range opts.Files {
		current, err := loadFileToMerge(file, opts.UseHJSON, opts.StripComments)
		if err != nil {
			return nil, errs.Newf("load config file %q: %w", file, err)
		}
		if err := mergo.Merge(&final, current, mergo.WithOverride); err != nil {
			return nil, errs.Newf("merge config file %q: %w", file, err)
		}
	}
	return final, nil
}

// Load merges opts.Files and decodes the result into target (typically a
// *Config). It does not call target's Validate -- callers do that once
// loading succeeds. Failures are returned as *errs.Error so callers that
// log or marshal them (scheduler.ReconcileJob.Run) get the same
// JSON-friendly error shape the core types use.
func Load(target interface{}, opts LoadOptions) error {
	if target == nil {
		return errs.New("target cannot be nil")
	}

	merged, err := mergeFiles(opts)
	if err != nil {
		return err
	}

	data, err := json.Marshal(merged)
	if err != nil {
		return errs.Newf("marshal merged config: %w", err)
	}
	if err := json.Unmarshal(data, target); err != nil {
		return errs.Newf("unmarshal merged config: %w", err)
	}
	return nil
}
