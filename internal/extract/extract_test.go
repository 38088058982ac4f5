package extract

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	mperrors "github.com/dbmrq/mp/internal/errors"
)

func TestExtract(t *testing.T) {
	tests := []struct {
		name string
		text string
		want []string
	}{
		{
			name: "double quotes",
			text: `const foo = require("foo")`,
			want: []string{"foo"},
		},
		{
			name: "single quotes",
			text: `const bar = require('bar');`,
			want: []string{"bar"},
		},
		{
			name: "several distinct names",
			text: "const a = require('lodash')\nconst b = require(\"left-pad\")\nconst c = require('my_mod2')",
			want: []string{"lodash", "left-pad", "my_mod2"},
		},
		{
			name: "repeats are kept",
			text: `require("foo"); require("foo")`,
			want: []string{"foo", "foo"},
		},
		{
			name: "case preserved and keyword case-insensitive",
			text: `REQUIRE("Express")`,
			want: []string{"Express"},
		},
		{
			name: "relative paths ignored",
			text: `require("./lib/util"); require("../x")`,
			want: []string{},
		},
		{
			name: "dotted and scoped names ignored",
			text: `require("lodash.uniq"); require("@babel/core")`,
			want: []string{},
		},
		{
			name: "dynamic names ignored",
			text: `require(name); require("a" + b)`,
			want: []string{},
		},
		{
			name: "whitespace inside call not matched",
			text: `require( "foo" )`,
			want: []string{},
		},
		{
			name: "no matches",
			text: `console.log("hello")`,
			want: []string{},
		},
		{
			name: "empty input",
			text: "",
			want: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Extract(tt.text)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Extract(%q) = %v, want %v", tt.text, got, tt.want)
			}
		})
	}
}

func TestBytes_BinaryInput(t *testing.T) {
	content := []byte{0xff, 0xfe, 0x00, 'r', 'e', 'q'}
	content = append(content, []byte(`require("foo")`)...)
	content = append(content, 0x00, 0xc3)

	got := Bytes(content)
	if !reflect.DeepEqual(got, []string{"foo"}) {
		t.Errorf("Bytes(binary) = %v, want [foo]", got)
	}
}

func TestFile(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "index.js")
	if err := os.WriteFile(path, []byte(`require("foo"); require('bar')`), 0644); err != nil {
		t.Fatalf("failed to write fixture: %v", err)
	}

	got, err := File(path)
	if err != nil {
		t.Fatalf("File() error = %v", err)
	}
	if !reflect.DeepEqual(got, []string{"foo", "bar"}) {
		t.Errorf("File() = %v, want [foo bar]", got)
	}
}

func TestFile_ReadError(t *testing.T) {
	_, err := File(filepath.Join(t.TempDir(), "missing.js"))
	if err == nil {
		t.Fatal("expected error for missing file")
	}
	if !errors.Is(err, mperrors.ErrRead) {
		t.Errorf("expected ErrRead, got %v", err)
	}
}
