package views

import (
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	g "maragu.dev/gomponents"

	"github.com/eringen/showcase/catalog"
	"github.com/eringen/showcase/hero"
	"github.com/eringen/showcase/motion"
)

var testSite = SiteConfig{
	Owner:          "Bharath",
	Accent:         "Portfolio",
	Description:    "Selected work",
	URL:            "http://localhost:3000",
	Email:          "contact@bharath.com",
	PortfolioURL:   "/portfolio",
	PortfolioLabel: "Main Portfolio",
}

func parse(t *testing.T, n g.Node) *goquery.Document {
	t.Helper()
	var b strings.Builder
	if err := n.Render(&b); err != nil {
		t.Fatalf("render: %v", err)
	}
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(b.String()))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	return doc
}

func homeData(page *hero.Page) HomeData {
	return HomeData{
		Site:    testSite,
		Page:    page,
		Shapes:  DefaultShapes,
		Year:    2026,
		Actions: Routes{},
	}
}

func TestProjectGridRendersEveryProjectInOrder(t *testing.T) {
	c := catalog.Default()
	rec := &motion.Recorder{}
	doc := parse(t, ProjectGrid(rec, c.Projects(), Routes{}))

	cards := doc.Find("[data-project-id]")
	if cards.Length() != c.Len() {
		t.Fatalf("cards = %d, want %d", cards.Length(), c.Len())
	}
	seen := make(map[string]bool)
	cards.Each(func(i int, s *goquery.Selection) {
		id, _ := s.Attr("data-project-id")
		if want := c.At(i).ID; id != want {
			t.Errorf("card %d id = %q, want %q", i, id, want)
		}
		if seen[id] {
			t.Errorf("card %q rendered twice", id)
		}
		seen[id] = true
		if got, _ := s.Attr("hx-get"); got != "/projects/"+id+"/" {
			t.Errorf("card %q hx-get = %q", id, got)
		}
		if got, _ := s.Attr("hx-target"); got != OverlayTarget {
			t.Errorf("card %q hx-target = %q", id, got)
		}
	})
	if rec.Count(motion.KindEntrance) != c.Len() || rec.Count(motion.KindIdle) != c.Len() {
		t.Errorf("registrations: %d entrance, %d idle", rec.Count(motion.KindEntrance), rec.Count(motion.KindIdle))
	}
}

func TestProjectCardFallsBackToPlaceholder(t *testing.T) {
	p := &catalog.Project{ID: "x", Title: "X"}
	doc := parse(t, ProjectCard(&motion.Recorder{}, p, Routes{}))
	if src, _ := doc.Find("img").Attr("src"); src != PlaceholderImage {
		t.Errorf("src = %q, want %q", src, PlaceholderImage)
	}
}

func TestShapesAreDecorative(t *testing.T) {
	rec := &motion.Recorder{}
	doc := parse(t, Shapes(rec, DefaultShapes))
	if hidden, _ := doc.Find(".shapes").Attr("aria-hidden"); hidden != "true" {
		t.Error("shape layer is not aria-hidden")
	}
	if n := doc.Find(".shape").Length(); n != len(DefaultShapes) {
		t.Errorf("shapes = %d, want %d", n, len(DefaultShapes))
	}
	if doc.Find(".shapes [hx-get]").Length() != 0 {
		t.Error("shape layer has interactive elements")
	}
	if rec.Count(motion.KindEntrance) != len(DefaultShapes) || rec.Count(motion.KindIdle) != len(DefaultShapes) {
		t.Errorf("registrations = %+v", rec.Registrations)
	}
	for _, reg := range rec.Registrations {
		if reg.Kind == motion.KindIdle && reg.Transition.Repeat != motion.Forever {
			t.Errorf("idle animation repeats %d times, want forever", reg.Transition.Repeat)
		}
	}
}

func TestProjectOverlayRegions(t *testing.T) {
	p := catalog.Default().At(4)
	doc := parse(t, ProjectOverlay(&motion.Recorder{}, p, Routes{}))

	backdrop := doc.Find("#" + backdropID)
	if got, _ := backdrop.Attr("hx-trigger"); got != "click target:#"+backdropID {
		t.Errorf("backdrop hx-trigger = %q", got)
	}
	if got, _ := backdrop.Attr("hx-get"); got != "/selection/dismiss/?region=backdrop" {
		t.Errorf("backdrop hx-get = %q", got)
	}

	panel := doc.Find(`[data-region="panel"]`)
	if panel.Length() != 1 {
		t.Fatalf("panels = %d, want 1", panel.Length())
	}
	if _, ok := panel.Attr("hx-get"); ok {
		t.Error("panel has its own request handler")
	}
	handlers := panel.Find("[hx-get]")
	if handlers.Length() != 1 {
		t.Fatalf("handlers inside panel = %d, want only the close button", handlers.Length())
	}
	if got, _ := handlers.Attr("hx-get"); got != "/selection/dismiss/?region=close" {
		t.Errorf("close hx-get = %q", got)
	}
	if got, _ := handlers.Attr("hx-trigger"); got != "" {
		t.Errorf("close button has trigger filter %q", got)
	}

	if got := doc.Find("#overlay-title").Text(); got != p.Title {
		t.Errorf("title = %q, want %q", got, p.Title)
	}
	if got := doc.Find(".overlay-description").Text(); got != p.Description {
		t.Errorf("description = %q", got)
	}
	for kind, want := range map[string]string{"demo": p.DemoURL, "source": p.SourceURL} {
		link := doc.Find(`[data-link="` + kind + `"]`)
		if href, _ := link.Attr("href"); href != want {
			t.Errorf("%s href = %q, want %q", kind, href, want)
		}
		if target, _ := link.Attr("target"); target != "_blank" {
			t.Errorf("%s target = %q", kind, target)
		}
		if rel, _ := link.Attr("rel"); rel != "noopener noreferrer" {
			t.Errorf("%s rel = %q", kind, rel)
		}
	}
}

func TestOverlayAnimatesSymmetrically(t *testing.T) {
	rec := &motion.Recorder{}
	ProjectOverlay(rec, catalog.Default().At(0), Routes{})
	var enter, exit []motion.Registration
	for _, reg := range rec.Registrations {
		switch reg.Kind {
		case motion.KindEntrance:
			enter = append(enter, reg)
		case motion.KindExit:
			exit = append(exit, reg)
		}
	}
	if len(enter) != 2 || len(exit) != 2 {
		t.Fatalf("entrance = %d, exit = %d, want 2 each", len(enter), len(exit))
	}
	for i := range enter {
		from, to := enter[i].Frames[0], enter[i].Frames[1]
		if exit[i].Frames[0].CSS() != to.CSS() || exit[i].Frames[1].CSS() != from.CSS() {
			t.Errorf("exit %d is not the reverse of its entrance", i)
		}
	}
}

func TestSiteFooter(t *testing.T) {
	doc := parse(t, SiteFooter(&motion.Recorder{}, testSite, 2031))
	if got := doc.Find(".footer-copy").Text(); !strings.HasPrefix(got, "© 2031 ") {
		t.Errorf("copyright = %q", got)
	}
	if href, _ := doc.Find(`[data-link="mail"]`).Attr("href"); href != "mailto:contact@bharath.com" {
		t.Errorf("mail href = %q", href)
	}
	if href, _ := doc.Find(`[data-link="portfolio"]`).Attr("href"); href != "/portfolio" {
		t.Errorf("portfolio href = %q", href)
	}
}

func TestHomeIdle(t *testing.T) {
	page := hero.Mount(catalog.Default())
	doc := parse(t, Home(motion.NewCSSDriver("m"), homeData(page)))
	if doc.Find("#overlay").Children().Length() != 0 {
		t.Error("idle page renders an overlay")
	}
	if got := doc.Find("h1.hero-title").Text(); got != "Bharath'sPortfolio" {
		t.Errorf("title = %q", got)
	}
	css := doc.Find("style").Text()
	if !strings.Contains(css, "@keyframes") || !strings.Contains(css, motion.SwappingClass) {
		t.Error("page stylesheet lacks entrance or exit rules")
	}
}

func TestHomeShowing(t *testing.T) {
	c := catalog.Default()
	page := hero.Mount(c)
	page.Select(c.At(6))
	doc := parse(t, Home(motion.NewCSSDriver("m"), homeData(page)))
	if got := doc.Find("#overlay #overlay-title").Text(); got != c.At(6).Title {
		t.Errorf("overlay title = %q, want %q", got, c.At(6).Title)
	}
	if got, _ := doc.Find(`link[rel="canonical"]`).Attr("href"); got != "http://localhost:3000/projects/project7/" {
		t.Errorf("canonical = %q", got)
	}
	if got, _ := doc.Find(`meta[property="og:image"]`).Attr("content"); got != "http://localhost:3000/placeholder.png?height=300&width=400" {
		t.Errorf("og:image = %q", got)
	}
}

func TestBuildURL(t *testing.T) {
	tests := []struct {
		base     string
		segments []string
		want     string
	}{
		{"http://localhost:3000", nil, "http://localhost:3000"},
		{"http://localhost:3000", []string{"projects", "p1"}, "http://localhost:3000/projects/p1/"},
		{"https://example.com/base/", []string{"projects", "p1"}, "https://example.com/base/projects/p1/"},
	}
	for _, tt := range tests {
		if got := BuildURL(tt.base, tt.segments...); got != tt.want {
			t.Errorf("BuildURL(%q, %v) = %q, want %q", tt.base, tt.segments, got, tt.want)
		}
	}
}

func TestAbsoluteURL(t *testing.T) {
	tests := []struct{ base, ref, want string }{
		{"http://localhost:3000", "/placeholder.png?width=1", "http://localhost:3000/placeholder.png?width=1"},
		{"http://localhost:3000", "https://cdn.example.com/a.png", "https://cdn.example.com/a.png"},
		{"", "/images/a.png", "/images/a.png"},
	}
	for _, tt := range tests {
		if got := absoluteURL(tt.base, tt.ref); got != tt.want {
			t.Errorf("absoluteURL(%q, %q) = %q, want %q", tt.base, tt.ref, got, tt.want)
		}
	}
}

func TestFragmentClassesMatchPageStylesheet(t *testing.T) {
	c := catalog.Default()
	page := hero.Mount(c)
	pageDriver := motion.NewCSSDriver("m")
	Home(pageDriver, homeData(page))

	doc := parse(t, Overlay(motion.NewCSSDriver("m"), c.At(0), Routes{}))
	cls, _ := doc.Find(".overlay-panel").Attr("class")
	for _, name := range strings.Fields(cls) {
		if strings.HasPrefix(name, "m-") && !strings.Contains(pageDriver.Stylesheet(), name) {
			t.Errorf("fragment class %q missing from page stylesheet", name)
		}
	}
}

func TestPortfolioJsonLD(t *testing.T) {
	c := catalog.Default()
	got := PortfolioJsonLD(testSite, c.Projects())
	for _, want := range []string{`"@type":"CollectionPage"`, `"url":"http://localhost:3000/projects/project1/"`, `"position":9`} {
		if !strings.Contains(got, want) {
			t.Errorf("json-ld missing %s", want)
		}
	}
}
