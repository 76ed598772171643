// SPDX-License-Identifier: MPL-2.0

package cueutil

import (
	"errors"
	"strings"
	"testing"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
)

func TestFormatErrorNil(t *testing.T) {
	t.Parallel()

	if got := FormatError(nil, "config.cue"); got != nil {
		t.Errorf("FormatError(nil) = %v, want nil", got)
	}
}

func TestFormatErrorNonCUE(t *testing.T) {
	t.Parallel()

	err := FormatError(errors.New("boom"), "config.cue")
	if err == nil || !strings.Contains(err.Error(), "config.cue") {
		t.Errorf("FormatError() = %v, want file path prefix", err)
	}
}

func TestFormatErrorIncludesPath(t *testing.T) {
	t.Parallel()

	ctx := cuecontext.New()
	schema := ctx.CompileString(`#C: { ui: { verbose: bool } }`)
	user := ctx.CompileString(`ui: verbose: "yes"`)
	unified := schema.LookupPath(cue.ParsePath("#C")).Unify(user)
	verr := unified.Validate()
	if verr == nil {
		t.Fatal("expected validation error")
	}

	err := FormatError(verr, "config.cue")
	if !strings.Contains(err.Error(), "config.cue") {
		t.Errorf("FormatError() = %v, want file path", err)
	}
	if !strings.Contains(err.Error(), "verbose") {
		t.Errorf("FormatError() = %v, want field path", err)
	}
}

func TestFormatPath(t *testing.T) {
	t.Parallel()

	tests := []struct {
		path []string
		want string
	}{
		{nil, ""},
		{[]string{"ui"}, "ui"},
		{[]string{"ui", "verbose"}, "ui.verbose"},
		{[]string{"presets", "0", "name"}, "presets[0].name"},
	}
	for _, tt := range tests {
		if got := formatPath(tt.path); got != tt.want {
			t.Errorf("formatPath(%v) = %q, want %q", tt.path, got, tt.want)
		}
	}
}

func TestCheckFileSize(t *testing.T) {
	t.Parallel()

	if err := CheckFileSize(make([]byte, 10), 10, "f"); err != nil {
		t.Errorf("CheckFileSize(at limit) = %v, want nil", err)
	}
	if err := CheckFileSize(make([]byte, 11), 10, "f"); err == nil {
		t.Error("CheckFileSize(over limit) = nil, want error")
	}
}
