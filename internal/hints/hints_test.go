package hints

import (
	"strings"
	"testing"
)

func clearCIEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{"CI", "GITHUB_ACTIONS", "GITLAB_CI", "JENKINS_URL", "ROD_NO_SANDBOX", "ROD_BROWSER_BIN"} {
		t.Setenv(key, "")
	}
}

func TestForBrowserConnect_CI(t *testing.T) {
	clearCIEnv(t)
	t.Setenv("CI", "true")

	orig := IsInContainer
	IsInContainer = func() bool { return false }
	defer func() { IsInContainer = orig }()

	hint := ForBrowserConnect()
	if !strings.Contains(hint, "ROD_NO_SANDBOX") {
		t.Errorf("hint = %q, want ROD_NO_SANDBOX suggestion in CI", hint)
	}
	if !strings.Contains(hint, "ROD_BROWSER_BIN") {
		t.Errorf("hint = %q, want ROD_BROWSER_BIN suggestion", hint)
	}
	if !strings.HasPrefix(hint, "\n  hint: ") {
		t.Errorf("hint %q missing standard prefix", hint)
	}
}

func TestForBrowserConnect_Container(t *testing.T) {
	clearCIEnv(t)

	orig := IsInContainer
	IsInContainer = func() bool { return true }
	defer func() { IsInContainer = orig }()

	hint := ForBrowserConnect()
	if !strings.Contains(hint, "ROD_NO_SANDBOX") {
		t.Errorf("hint = %q, want ROD_NO_SANDBOX suggestion in container", hint)
	}
}

func TestForBrowserConnect_LocalWithBrowserBin(t *testing.T) {
	clearCIEnv(t)
	t.Setenv("ROD_BROWSER_BIN", "/usr/bin/chromium")

	orig := IsInContainer
	IsInContainer = func() bool { return false }
	defer func() { IsInContainer = orig }()

	if hint := ForBrowserConnect(); hint != "" {
		t.Errorf("hint = %q, want none when nothing to suggest", hint)
	}
}

func TestForTimeout(t *testing.T) {
	hint := ForTimeout()
	if !strings.Contains(hint, "--timeout") {
		t.Errorf("hint = %q", hint)
	}
}

func TestForConfigNotFound(t *testing.T) {
	hint := ForConfigNotFound(nil)
	if !strings.Contains(hint, "--config") {
		t.Errorf("hint = %q", hint)
	}

	withPath := ForConfigNotFound([]string{
		"local.yaml",
		"/home/user/.config/go-code2pdf/local.yaml",
	})
	if !strings.Contains(withPath, ".config/go-code2pdf") {
		t.Errorf("hint = %q, want user config path suggestion", withPath)
	}
}

func TestForNoFiles(t *testing.T) {
	hint := ForNoFiles()
	if !strings.Contains(hint, "--include-hidden") {
		t.Errorf("hint = %q", hint)
	}
}

func TestForStyleNotFound(t *testing.T) {
	if hint := ForStyleNotFound(nil); hint != "" {
		t.Errorf("hint = %q, want none for empty list", hint)
	}

	hint := ForStyleNotFound([]string{"github", "monokai"})
	if !strings.Contains(hint, "github, monokai") {
		t.Errorf("hint = %q", hint)
	}
}

func TestFormat(t *testing.T) {
	if got := format(""); got != "" {
		t.Errorf("format(empty) = %q", got)
	}
	if got := format("do the thing"); got != "\n  hint: do the thing" {
		t.Errorf("format() = %q", got)
	}
}
