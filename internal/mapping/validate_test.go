package mapping

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidate(t *testing.T) {
	valid := func() *CheckFile {
		return &CheckFile{
			Version:  CurrentVersion,
			Packages: []string{"enum-mapper/store"},
			Pairs:    []Pair{{Source: "store.Status", Target: "warehouse.StatusForDto", Mode: "default"}},
		}
	}

	tests := []struct {
		name    string
		mutate  func(cf *CheckFile)
		wantErr string
	}{
		{"valid", func(*CheckFile) {}, ""},
		{"version", func(cf *CheckFile) { cf.Version = "2" }, `unsupported version "2"`},
		{"no packages", func(cf *CheckFile) { cf.Packages = nil }, "no packages to load"},
		{"missing target", func(cf *CheckFile) { cf.Pairs[0].Target = "" }, "source and target are required"},
		{"bad mode", func(cf *CheckFile) { cf.Pairs[0].Mode = "fuzzy" }, `unknown conversion mode "fuzzy"`},
		{"duplicate", func(cf *CheckFile) { cf.Pairs = append(cf.Pairs, cf.Pairs[0]) }, "duplicates pair 0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cf := valid()
			tt.mutate(cf)

			err := Validate(cf)
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, ErrInvalidCheckFile)
			assert.ErrorContains(t, err, tt.wantErr)
		})
	}

	assert.ErrorIs(t, Validate(nil), ErrInvalidCheckFile)
}
