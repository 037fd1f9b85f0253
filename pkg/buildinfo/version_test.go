package buildinfo

import (
	"strings"
	"testing"
)

func TestString(t *testing.T) {
	s := String()
	for _, want := range []string{"version: " + Version, "commit: " + Commit, "built: " + Date} {
		if !strings.Contains(s, want) {
			t.Errorf("String() misses %q: %q", want, s)
		}
	}
}

func TestTemplate(t *testing.T) {
	tmpl := Template()
	if !strings.Contains(tmpl, "{{.Name}}") {
		t.Errorf("Template() misses cobra name placeholder: %q", tmpl)
	}
	if !strings.Contains(tmpl, Version) {
		t.Errorf("Template() misses version: %q", tmpl)
	}
}
