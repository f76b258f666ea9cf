// Package app composes site modules into the root HTTP handler.
package app

import (
	"fmt"
	"net/http"
	"strings"

	module "github.com/mvaleri/atrium/internal/services/site/module"
	"github.com/mvaleri/atrium/internal/services/site/platform/prefcookie"
	"github.com/mvaleri/atrium/internal/services/site/platform/requestmeta"
)

// ComposeInput carries the module list and shared composition contracts.
type ComposeInput struct {
	Dependencies        module.Dependencies
	Modules             []module.Module
	RequestSchemePolicy requestmeta.SchemePolicy
}

// Compose builds a root HTTP handler from mounted modules. Mutations that
// carry a preference cookie must prove same-origin via Origin or Referer.
func Compose(input ComposeInput) (http.Handler, error) {
	root := http.NewServeMux()
	seen := make(map[string]string)
	guard := requireSameOriginMutation(input.RequestSchemePolicy)

	for _, feature := range input.Modules {
		if feature == nil {
			return nil, fmt.Errorf("module is nil")
		}
		mount, prefix, err := resolveMount(feature, input.Dependencies)
		if err != nil {
			return nil, err
		}
		if previous, ok := seen[prefix]; ok {
			return nil, fmt.Errorf("module %q duplicates prefix %q owned by module %q", feature.ID(), prefix, previous)
		}
		seen[prefix] = feature.ID()
		root.Handle(prefix, guard(mount.Handler))
	}

	return root, nil
}

func resolveMount(feature module.Module, deps module.Dependencies) (module.Mount, string, error) {
	mount, err := feature.Mount(deps)
	if err != nil {
		return module.Mount{}, "", fmt.Errorf("mount module %q: %w", feature.ID(), err)
	}
	prefix := mount.Prefix
	if err := validatePrefix(prefix); err != nil {
		return module.Mount{}, "", fmt.Errorf("mount module %q has invalid prefix %q: %w", feature.ID(), mount.Prefix, err)
	}
	if mount.Handler == nil {
		return module.Mount{}, "", fmt.Errorf("mount module %q: handler is required", feature.ID())
	}
	return mount, prefix, nil
}

// validatePrefix accepts exact paths ("/contact") and subtrees ("/api/").
func validatePrefix(prefix string) error {
	if prefix == "" {
		return fmt.Errorf("prefix is required")
	}
	if strings.TrimSpace(prefix) != prefix {
		return fmt.Errorf("prefix must not include surrounding whitespace")
	}
	if !strings.HasPrefix(prefix, "/") {
		return fmt.Errorf("prefix must begin with /")
	}
	return nil
}

// requireSameOriginMutation rejects mutating requests that carry a
// preference cookie without same-origin proof. Cookie-less mutations pass
// through; they hold no ambient state a cross-site page could ride on.
func requireSameOriginMutation(policy requestmeta.SchemePolicy) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		if next == nil {
			next = http.NotFoundHandler()
		}
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !isMutationMethod(r) || !carriesPreferenceCookie(r) {
				next.ServeHTTP(w, r)
				return
			}
			if !requestmeta.HasSameOriginProofWithPolicy(r, policy) {
				http.Error(w, http.StatusText(http.StatusForbidden), http.StatusForbidden)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

func isMutationMethod(r *http.Request) bool {
	if r == nil {
		return false
	}
	switch r.Method {
	case http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete:
		return true
	default:
		return false
	}
}

func carriesPreferenceCookie(r *http.Request) bool {
	if _, ok := prefcookie.ReadVisitorID(r); ok {
		return true
	}
	_, ok := prefcookie.ReadTheme(r)
	return ok
}
