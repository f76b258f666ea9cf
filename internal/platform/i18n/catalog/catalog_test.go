package catalog

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadEmbeddedHasExpectedLocales(t *testing.T) {
	bundle, err := LoadEmbedded()
	if err != nil {
		t.Fatalf("load embedded catalogs: %v", err)
	}
	if !bundle.HasLocale(BaseLocale) {
		t.Fatalf("expected base locale %s", BaseLocale)
	}
	if !bundle.HasLocale("la") {
		t.Fatalf("expected locale la")
	}

	if got := len(bundle.LocaleMessages("en-US")); got == 0 {
		t.Fatalf("expected en-US messages")
	}
	if got := len(bundle.NamespaceMessages("en-US", "site")); got == 0 {
		t.Fatalf("expected en-US site namespace messages")
	}
}

func TestLoadEmbeddedLocalesShareKeySets(t *testing.T) {
	bundle, err := LoadEmbedded()
	if err != nil {
		t.Fatalf("load embedded catalogs: %v", err)
	}
	base := bundle.LocaleMessages(BaseLocale)
	for _, locale := range bundle.Locales() {
		if locale == BaseLocale {
			continue
		}
		messages := bundle.LocaleMessages(locale)
		if len(messages) != len(base) {
			t.Fatalf("locale %s has %d keys, base has %d", locale, len(messages), len(base))
		}
		for key := range base {
			if _, ok := messages[key]; !ok {
				t.Fatalf("locale %s missing key %q", locale, key)
			}
		}
	}
}

func TestLoadFromFSRejectsKeyOutsideOwnNamespace(t *testing.T) {
	tempDir := t.TempDir()
	mustWriteFile(t, filepath.Join(tempDir, "locales/en-US/site.yaml"), `locale: "en-US"
namespace: "site"
messages:
  "errors.bad": "nope"
`)

	_, err := LoadFromFS(os.DirFS(tempDir))
	if err == nil {
		t.Fatal("expected error")
	}
}

func TestLoadFromFSRejectsDuplicateKeysAcrossNamespaces(t *testing.T) {
	tempDir := t.TempDir()
	mustWriteFile(t, filepath.Join(tempDir, "locales/en-US/a.yaml"), `locale: "en-US"
namespace: "a"
messages:
  "a.key": "first"
`)
	mustWriteFile(t, filepath.Join(tempDir, "locales/en-US/b.yaml"), `locale: "en-US"
namespace: "b"
messages:
  "a.key": "second"
`)

	_, err := LoadFromFS(os.DirFS(tempDir))
	if err == nil {
		t.Fatal("expected an error rejecting the misplaced or duplicate key")
	}
}

func TestLoadFromFSRejectsMismatchedPathMetadata(t *testing.T) {
	tempDir := t.TempDir()
	mustWriteFile(t, filepath.Join(tempDir, "locales/en-US/site.yaml"), `locale: "la"
namespace: "site"
messages:
  "site.key": "value"
`)

	_, err := LoadFromFS(os.DirFS(tempDir))
	if err == nil {
		t.Fatal("expected locale mismatch error")
	}
}

func TestMessageFallsBackToBaseLocale(t *testing.T) {
	bundle, err := LoadEmbedded()
	if err != nil {
		t.Fatalf("load embedded catalogs: %v", err)
	}
	value, ok := bundle.Message("fr-FR", "site.rail.title")
	if !ok {
		t.Fatal("expected base locale fallback")
	}
	if value != "Disciplines" {
		t.Fatalf("value = %q, want base locale string", value)
	}
}

func TestNamespaceMessagesWithFallback(t *testing.T) {
	bundle, err := LoadEmbedded()
	if err != nil {
		t.Fatalf("load embedded catalogs: %v", err)
	}
	resolved, messages := bundle.NamespaceMessagesWithFallback("fr-FR", "errors")
	if resolved != "en-US" {
		t.Fatalf("resolved locale = %q, want en-US", resolved)
	}
	if len(messages) == 0 {
		t.Fatal("expected fallback errors namespace messages")
	}
}

func mustWriteFile(t *testing.T, path string, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir %s: %v", filepath.Dir(path), err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}
