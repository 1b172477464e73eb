package bootstrap

import (
	"context"
	"html"
	"net/http"
	"net/http/httptest"
	"regexp"
	"strings"
	"testing"

	"github.com/dalemusser/technavigator/internal/app/resources"
	"github.com/dalemusser/waffle/config"
	"go.uber.org/zap"
)

// pageRouter builds the full handler over the bundled dataset with the
// template engine booted.
func pageRouter(t *testing.T) http.Handler {
	t.Helper()
	cfg := validConfig()
	cat, err := loadCatalog(context.Background(), cfg, nil)
	if err != nil {
		t.Fatalf("loadCatalog: %v", err)
	}
	resources.LoadSharedTemplates()

	h, err := BuildHandler(&config.CoreConfig{Env: "test"}, cfg, DBDeps{Catalog: cat}, zap.NewNop())
	if err != nil {
		t.Fatalf("BuildHandler: %v", err)
	}
	return h
}

func getPage(t *testing.T, h http.Handler, path string) (int, string) {
	t.Helper()
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
	return rec.Code, rec.Body.String()
}

func TestPages_Render(t *testing.T) {
	h := pageRouter(t)

	tests := []struct {
		path string
		want []string
	}{
		{"/", []string{"15 domains", "~1,925", "Starter foundations"}},
		{"/domains", []string{"Networks &amp; the Internet", "Ethics, Privacy &amp; Law"}},
		{"/domains?q=net", []string{"Showing", "of 15 domains", "Networks &amp; the Internet"}},
		{"/domains/networks-internet", []string{"Networks &amp; the Internet", `href="/domains"`}},
		{"/roadmap", []string{"01 • Starter foundations", "05 • "}},
		{"/dashboard", []string{"1,925 hours", "<td>—</td>"}},
		{"/about", []string{"15"}},
	}
	for _, tt := range tests {
		code, body := getPage(t, h, tt.path)
		if code != http.StatusOK {
			t.Errorf("GET %s = %d, want 200", tt.path, code)
			continue
		}
		for _, want := range tt.want {
			if !strings.Contains(body, want) {
				t.Errorf("GET %s: body missing %q", tt.path, want)
			}
		}
	}
}

func TestPages_UnknownDomainRendersNotFound(t *testing.T) {
	code, body := getPage(t, pageRouter(t), "/domains/nope")
	if code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", code)
	}
	if !strings.Contains(body, "nope") {
		t.Error("not-found page should name the missing id")
	}
}

var (
	networksCardHref = regexp.MustCompile(`href="(/domains/networks-internet[^"]*)"`)
	detailBackHref   = regexp.MustCompile(`<a href="([^"]*)">← All domains</a>`)
)

func TestPages_FilteredListBackLinkRoundTrip(t *testing.T) {
	h := pageRouter(t)

	_, list := getPage(t, h, "/domains?q=net")
	m := networksCardHref.FindStringSubmatch(list)
	if m == nil {
		t.Fatal("filtered list has no card for networks-internet")
	}
	cardHref := html.UnescapeString(m[1])
	if want := "/domains/networks-internet?return=%2Fdomains%3Fq%3Dnet"; cardHref != want {
		t.Errorf("card href = %q, want %q", cardHref, want)
	}

	code, detail := getPage(t, h, cardHref)
	if code != http.StatusOK {
		t.Fatalf("GET %s = %d", cardHref, code)
	}
	m = detailBackHref.FindStringSubmatch(detail)
	if m == nil {
		t.Fatal("detail page has no back link")
	}
	back := html.UnescapeString(m[1])
	if back != "/domains?q=net" {
		t.Errorf("back link = %q, want /domains?q=net", back)
	}

	_, again := getPage(t, h, back)
	if strings.Contains(again, "Showing 0 of") {
		t.Errorf("following the back link lost the filter: %q", back)
	}
	if !strings.Contains(again, "Networks &amp; the Internet") {
		t.Error("following the back link should list networks-internet again")
	}
}
