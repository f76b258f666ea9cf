package routepath

import "testing"

func TestTopLevelRouteConstants(t *testing.T) {
	t.Parallel()

	if Root != "/" {
		t.Fatalf("Root = %q", Root)
	}
	if Health != "/up" {
		t.Fatalf("Health = %q", Health)
	}
	if Filter != "/filter" {
		t.Fatalf("Filter = %q", Filter)
	}
	if FilterReset != "/filter/reset" {
		t.Fatalf("FilterReset = %q", FilterReset)
	}
	if Preview != "/preview" {
		t.Fatalf("Preview = %q", Preview)
	}
	if Contact != "/contact" {
		t.Fatalf("Contact = %q", Contact)
	}
	if PrefsTheme != "/prefs/theme" {
		t.Fatalf("PrefsTheme = %q", PrefsTheme)
	}
	if APIPrefix != "/api/" {
		t.Fatalf("APIPrefix = %q", APIPrefix)
	}
	if APIEcosystemSVG != "/api/ecosystem.svg" {
		t.Fatalf("APIEcosystemSVG = %q", APIEcosystemSVG)
	}
	if StaticPrefix != "/static/" {
		t.Fatalf("StaticPrefix = %q", StaticPrefix)
	}
}

func TestHomeFiltered(t *testing.T) {
	t.Parallel()

	if got := HomeFiltered(""); got != "/" {
		t.Fatalf("HomeFiltered(empty) = %q", got)
	}
	if got := HomeFiltered("strategy"); got != "/?skill=strategy" {
		t.Fatalf("HomeFiltered() = %q", got)
	}
	if got := HomeFiltered("siege craft"); got != "/?skill=siege+craft" {
		t.Fatalf("HomeFiltered() escaped = %q", got)
	}
}

func TestAPIStateFor(t *testing.T) {
	t.Parallel()

	if got := APIStateFor(""); got != "/api/state" {
		t.Fatalf("APIStateFor(empty) = %q", got)
	}
	if got := APIStateFor("masonry"); got != "/api/state?skill=masonry" {
		t.Fatalf("APIStateFor() = %q", got)
	}
}

func TestStaticEscapesAssetNames(t *testing.T) {
	t.Parallel()

	if got := Static("site.css"); got != "/static/site.css" {
		t.Fatalf("Static() = %q", got)
	}
	if got := Static("  site.js  "); got != "/static/site.js" {
		t.Fatalf("Static() trimmed = %q", got)
	}
	if got := Static("a/b.css"); got != "/static/a%2Fb.css" {
		t.Fatalf("Static() escaped = %q", got)
	}
}

func TestSectionAnchor(t *testing.T) {
	t.Parallel()

	if got := SectionAnchor("experience"); got != "#experience" {
		t.Fatalf("SectionAnchor() = %q", got)
	}
}
