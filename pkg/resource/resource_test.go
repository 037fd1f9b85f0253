package resource

import (
	"crypto/sha256"
	"encoding/base64"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// setDevelopment toggles the operation mode for one test and restores
// the previous mode afterwards.
func setDevelopment(t *testing.T, dev bool) {
	t.Helper()
	prev := Config.Development()
	Config.SetDevelopment(dev)
	t.Cleanup(func() { Config.SetDevelopment(prev) })
}

// writeFile creates a resource file in a fresh temp directory and
// returns the directory.
func writeFile(t *testing.T, name string, data []byte) string {
	t.Helper()
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, name), data, 0644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return dir
}

func TestNewScriptErrors(t *testing.T) {
	if _, err := NewScript(Options{Name: "res"}); !errors.Is(err, ErrNoSource) {
		t.Errorf("NewScript without source = %v, want ErrNoSource", err)
	}
	_, err := NewScript(Options{
		Name:          "res",
		URL:           "https://cdn.tld.org/res.js",
		IntegrityAuto: true,
	})
	if !errors.Is(err, ErrRemoteIntegrity) {
		t.Errorf("NewScript remote+auto integrity = %v, want ErrRemoteIntegrity", err)
	}
}

func TestFileName(t *testing.T) {
	res, err := NewScript(Options{Name: "res", File: "res.js", Compressed: "res.min.js"})
	if err != nil {
		t.Fatalf("NewScript: %v", err)
	}

	setDevelopment(t, false)
	if got := res.FileName(); got != "res.min.js" {
		t.Errorf("production FileName = %q, want res.min.js", got)
	}
	setDevelopment(t, true)
	if got := res.FileName(); got != "res.js" {
		t.Errorf("development FileName = %q, want res.js", got)
	}
}

func TestFilePath(t *testing.T) {
	res, err := NewScript(Options{Name: "res", File: "res.js"})
	if err != nil {
		t.Fatalf("NewScript: %v", err)
	}
	if _, err := res.FilePath(); !errors.Is(err, ErrNoDirectory) {
		t.Errorf("FilePath without directory = %v, want ErrNoDirectory", err)
	}

	dir := t.TempDir()
	res.SetDirectory(dir)
	path, err := res.FilePath()
	if err != nil {
		t.Fatalf("FilePath: %v", err)
	}
	if path != filepath.Join(dir, "res.js") {
		t.Errorf("FilePath = %q, want %q", path, filepath.Join(dir, "res.js"))
	}
}

func TestFileHash(t *testing.T) {
	data := []byte("console.log(1);\n")
	dir := writeFile(t, "res.js", data)
	res, err := NewScript(Options{
		Name:      "res",
		File:      "res.js",
		Directory: dir,
		Algorithm: SHA256,
	})
	if err != nil {
		t.Fatalf("NewScript: %v", err)
	}

	sum := sha256.Sum256(data)
	want := base64.StdEncoding.EncodeToString(sum[:])

	setDevelopment(t, true)
	got, err := res.FileHash()
	if err != nil {
		t.Fatalf("FileHash: %v", err)
	}
	if got != want {
		t.Errorf("FileHash = %q, want %q", got, want)
	}
}

func TestFileHashMemoization(t *testing.T) {
	dir := writeFile(t, "res.js", []byte("one"))
	path := filepath.Join(dir, "res.js")

	t.Run("Production", func(t *testing.T) {
		setDevelopment(t, false)
		res, err := NewScript(Options{Name: "res", File: "res.js", Directory: dir})
		if err != nil {
			t.Fatalf("NewScript: %v", err)
		}
		first, err := res.FileHash()
		if err != nil {
			t.Fatalf("FileHash: %v", err)
		}
		if err := os.WriteFile(path, []byte("two"), 0644); err != nil {
			t.Fatalf("rewrite: %v", err)
		}
		second, err := res.FileHash()
		if err != nil {
			t.Fatalf("FileHash: %v", err)
		}
		if first != second {
			t.Error("production hash must be memoized across file changes")
		}
	})

	t.Run("Development", func(t *testing.T) {
		setDevelopment(t, true)
		if err := os.WriteFile(path, []byte("one"), 0644); err != nil {
			t.Fatalf("rewrite: %v", err)
		}
		res, err := NewScript(Options{Name: "res", File: "res.js", Directory: dir})
		if err != nil {
			t.Fatalf("NewScript: %v", err)
		}
		first, err := res.FileHash()
		if err != nil {
			t.Fatalf("FileHash: %v", err)
		}
		if err := os.WriteFile(path, []byte("two"), 0644); err != nil {
			t.Fatalf("rewrite: %v", err)
		}
		second, err := res.FileHash()
		if err != nil {
			t.Fatalf("FileHash: %v", err)
		}
		if first == second {
			t.Error("development hash must track file changes")
		}
	})
}

func TestUniqueKey(t *testing.T) {
	dir := writeFile(t, "res.js", []byte("content"))
	res, err := NewScript(Options{Name: "res", File: "res.js", Directory: dir, Unique: true})
	if err != nil {
		t.Fatalf("NewScript: %v", err)
	}
	key, err := res.UniqueKey()
	if err != nil {
		t.Fatalf("UniqueKey: %v", err)
	}
	if !strings.HasPrefix(key, DefaultUniquePrefix) {
		t.Errorf("UniqueKey = %q, want %q prefix", key, DefaultUniquePrefix)
	}
	again, err := res.UniqueKey()
	if err != nil {
		t.Fatalf("UniqueKey: %v", err)
	}
	if key != again {
		t.Errorf("UniqueKey not stable: %q vs %q", key, again)
	}
}

func TestIntegrity(t *testing.T) {
	t.Run("Explicit", func(t *testing.T) {
		res, err := NewScript(Options{
			Name:      "res",
			URL:       "https://cdn.tld.org/res.js",
			Integrity: "sha384-precomputed",
		})
		if err != nil {
			t.Fatalf("NewScript: %v", err)
		}
		got, err := res.Integrity()
		if err != nil {
			t.Fatalf("Integrity: %v", err)
		}
		if got != "sha384-precomputed" {
			t.Errorf("Integrity = %q, want sha384-precomputed", got)
		}
	})

	t.Run("Auto", func(t *testing.T) {
		setDevelopment(t, true)
		data := []byte("content")
		dir := writeFile(t, "res.js", data)
		res, err := NewScript(Options{
			Name:          "res",
			File:          "res.js",
			Directory:     dir,
			Algorithm:     SHA256,
			IntegrityAuto: true,
		})
		if err != nil {
			t.Fatalf("NewScript: %v", err)
		}
		sum := sha256.Sum256(data)
		want := "sha256-" + base64.StdEncoding.EncodeToString(sum[:])
		got, err := res.Integrity()
		if err != nil {
			t.Fatalf("Integrity: %v", err)
		}
		if got != want {
			t.Errorf("Integrity = %q, want %q", got, want)
		}
	})

	t.Run("Unset", func(t *testing.T) {
		res, err := NewScript(Options{Name: "res", File: "res.js"})
		if err != nil {
			t.Fatalf("NewScript: %v", err)
		}
		got, err := res.Integrity()
		if err != nil {
			t.Fatalf("Integrity: %v", err)
		}
		if got != "" {
			t.Errorf("Integrity = %q, want empty", got)
		}
	})
}

func TestURL(t *testing.T) {
	setDevelopment(t, true)
	tests := []struct {
		name    string
		opts    Options
		baseURL string
		want    string
	}{
		{
			name:    "Plain",
			opts:    Options{Name: "res", File: "res.js"},
			baseURL: "https://tld.org",
			want:    "https://tld.org/res.js",
		},
		{
			name:    "TrailingSlash",
			opts:    Options{Name: "res", File: "res.js"},
			baseURL: "https://tld.org/",
			want:    "https://tld.org/res.js",
		},
		{
			name:    "WithPath",
			opts:    Options{Name: "res", File: "res.js", Path: "assets"},
			baseURL: "https://tld.org",
			want:    "https://tld.org/assets/res.js",
		},
		{
			name:    "Remote",
			opts:    Options{Name: "res", URL: "https://cdn.tld.org/res.js"},
			baseURL: "https://tld.org",
			want:    "https://cdn.tld.org/res.js",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := NewScript(tt.opts)
			if err != nil {
				t.Fatalf("NewScript: %v", err)
			}
			got, err := res.URL(tt.baseURL)
			if err != nil {
				t.Fatalf("URL: %v", err)
			}
			if got != tt.want {
				t.Errorf("URL = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestURLInheritsGroupPath(t *testing.T) {
	setDevelopment(t, true)
	group := NewGroup(GroupOptions{Name: "root", Path: "static"})
	res, err := NewScript(Options{Name: "res", File: "res.js", Group: group})
	if err != nil {
		t.Fatalf("NewScript: %v", err)
	}
	got, err := res.URL("https://tld.org")
	if err != nil {
		t.Fatalf("URL: %v", err)
	}
	if got != "https://tld.org/static/res.js" {
		t.Errorf("URL = %q, want https://tld.org/static/res.js", got)
	}
}

func TestRenderScript(t *testing.T) {
	setDevelopment(t, true)
	tests := []struct {
		name string
		opts Options
		want string
	}{
		{
			name: "Plain",
			opts: Options{Name: "res", File: "res.js"},
			want: `<script src="https://tld.org/res.js"></script>`,
		},
		{
			name: "AsyncDefer",
			opts: Options{Name: "res", File: "res.js", Async: "async", Defer: "defer"},
			want: `<script async="async" defer="defer" src="https://tld.org/res.js"></script>`,
		},
		{
			name: "Module",
			opts: Options{Name: "res", File: "res.js", Type: "module"},
			want: `<script src="https://tld.org/res.js" type="module"></script>`,
		},
		{
			name: "Crossorigin",
			opts: Options{
				Name:        "res",
				URL:         "https://cdn.tld.org/res.js",
				Crossorigin: "anonymous",
				Integrity:   "sha384-abc",
			},
			want: `<script crossorigin="anonymous" integrity="sha384-abc" src="https://cdn.tld.org/res.js"></script>`,
		},
		{
			name: "CustomAttrs",
			opts: Options{Name: "res", File: "res.js", Attrs: map[string]string{"data-role": "main"}},
			want: `<script data-role="main" src="https://tld.org/res.js"></script>`,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := NewScript(tt.opts)
			if err != nil {
				t.Fatalf("NewScript: %v", err)
			}
			got, err := res.Render("https://tld.org")
			if err != nil {
				t.Fatalf("Render: %v", err)
			}
			if got != tt.want {
				t.Errorf("Render = %s, want %s", got, tt.want)
			}
		})
	}
}

func TestRenderLinkAndStyle(t *testing.T) {
	setDevelopment(t, true)

	t.Run("Icon", func(t *testing.T) {
		res, err := NewLink(Options{
			Name:  "icon",
			File:  "icon.png",
			Rel:   "icon",
			Type:  "image/png",
			Sizes: "32x32",
		})
		if err != nil {
			t.Fatalf("NewLink: %v", err)
		}
		got, err := res.Render("https://tld.org")
		if err != nil {
			t.Fatalf("Render: %v", err)
		}
		want := `<link href="https://tld.org/icon.png" rel="icon" sizes="32x32" type="image/png" />`
		if got != want {
			t.Errorf("Render = %s, want %s", got, want)
		}
	})

	t.Run("StyleDefaults", func(t *testing.T) {
		res, err := NewStyle(Options{Name: "base", File: "base.css"})
		if err != nil {
			t.Fatalf("NewStyle: %v", err)
		}
		got, err := res.Render("https://tld.org")
		if err != nil {
			t.Fatalf("Render: %v", err)
		}
		want := `<link href="https://tld.org/base.css" media="all" rel="stylesheet" type="text/css" />`
		if got != want {
			t.Errorf("Render = %s, want %s", got, want)
		}
	})

	t.Run("StyleIgnoresSizes", func(t *testing.T) {
		res, err := NewStyle(Options{Name: "base", File: "base.css", Sizes: "32x32", Media: "print"})
		if err != nil {
			t.Fatalf("NewStyle: %v", err)
		}
		got, err := res.Render("https://tld.org")
		if err != nil {
			t.Fatalf("Render: %v", err)
		}
		want := `<link href="https://tld.org/base.css" media="print" rel="stylesheet" type="text/css" />`
		if got != want {
			t.Errorf("Render = %s, want %s", got, want)
		}
	})
}

func TestCopy(t *testing.T) {
	group := NewGroup(GroupOptions{Name: "root"})
	res, err := NewScript(Options{
		Name:    "res",
		File:    "res.js",
		Depends: []string{"base"},
		Attrs:   map[string]string{"data-x": "1"},
		Group:   group,
	})
	if err != nil {
		t.Fatalf("NewScript: %v", err)
	}

	c := res.Copy()
	if c.Parent() != nil {
		t.Error("copy must be detached from the parent group")
	}
	c.SetDepends("other")
	if res.Depends()[0] != "base" {
		t.Error("copy shares the depends slice with the original")
	}
	c.attrs["data-x"] = "2"
	if res.attrs["data-x"] != "1" {
		t.Error("copy shares the attrs map with the original")
	}
}

func TestDetach(t *testing.T) {
	res, err := NewScript(Options{Name: "res", File: "res.js"})
	if err != nil {
		t.Fatalf("NewScript: %v", err)
	}
	if err := res.Detach(); !errors.Is(err, ErrNotMember) {
		t.Errorf("Detach without parent = %v, want ErrNotMember", err)
	}

	group := NewGroup(GroupOptions{Name: "root"})
	if err := group.Add(res); err != nil {
		t.Fatalf("Add: %v", err)
	}
	if err := res.Detach(); err != nil {
		t.Fatalf("Detach: %v", err)
	}
	if res.Parent() != nil {
		t.Error("Detach must clear the parent back-reference")
	}
	if len(group.Members()) != 0 {
		t.Errorf("group still has %d members after detach", len(group.Members()))
	}
}

func TestResourceString(t *testing.T) {
	res, err := NewScript(Options{Name: "res", File: "res.js", Depends: []string{"base"}})
	if err != nil {
		t.Fatalf("NewScript: %v", err)
	}
	want := `<script resource "res" depends=[base]>`
	if got := res.String(); got != want {
		t.Errorf("String = %s, want %s", got, want)
	}
}

func TestUnknownAlgorithm(t *testing.T) {
	dir := writeFile(t, "res.js", []byte("content"))
	res, err := NewScript(Options{
		Name:      "res",
		File:      "res.js",
		Directory: dir,
		Algorithm: HashAlgorithm("md5"),
	})
	if err != nil {
		t.Fatalf("NewScript: %v", err)
	}
	if _, err := res.FileHash(); !errors.Is(err, ErrUnknownAlgorithm) {
		t.Errorf("FileHash with md5 = %v, want ErrUnknownAlgorithm", err)
	}
}
