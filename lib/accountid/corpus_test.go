// Copyright 2026 The NearKit Authors
// SPDX-License-Identifier: Apache-2.0

package accountid_test

import (
	"os"
	"path/filepath"
	"testing"

	"gopkg.in/yaml.v3"
)

// corpus is the shared set of known-valid and known-invalid account ID
// strings. Several tests run over it so the runtime validator, the
// panicking variant, and the decode paths are all exercised against the
// same inputs.
type corpus struct {
	OK  []string `yaml:"ok"`
	Bad []string `yaml:"bad"`
}

func loadCorpus(t *testing.T) corpus {
	t.Helper()
	data, err := os.ReadFile(filepath.Join("testdata", "corpus.yaml"))
	if err != nil {
		t.Fatalf("read corpus: %v", err)
	}
	var c corpus
	if err := yaml.Unmarshal(data, &c); err != nil {
		t.Fatalf("parse corpus: %v", err)
	}
	if len(c.OK) == 0 || len(c.Bad) == 0 {
		t.Fatalf("corpus is incomplete: %d ok, %d bad entries", len(c.OK), len(c.Bad))
	}
	return c
}
