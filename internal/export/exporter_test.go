package export

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/launchdeck/campaignhub-backend/internal/model"
)

func sampleDeck() *model.Presentation {
	return &model.Presentation{
		ID:          "11111111-2222-3333-4444-555555555555",
		CampaignID:  7,
		Title:       "Spring Launch — Stakeholder Update",
		Status:      "generated",
		GeneratedAt: time.Date(2026, 4, 1, 9, 30, 0, 0, time.UTC),
		Slides: []model.Slide{
			{Kind: "overview", Title: "Spring Launch", Bullets: []string{"Status: active"}},
			{Kind: "metrics", Title: "Performance", Bullets: []string{"Impressions: 2.0M"}},
		},
	}
}

func TestRenderRoundTrips(t *testing.T) {
	out, err := Render(sampleDeck())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var deck Deck
	if err := yaml.Unmarshal(out, &deck); err != nil {
		t.Fatalf("rendered deck is not valid YAML: %v", err)
	}
	if deck.Title != "Spring Launch — Stakeholder Update" || deck.CampaignID != 7 {
		t.Errorf("unexpected deck header: %+v", deck)
	}
	if deck.GeneratedAt != "2026-04-01 09:30:00" {
		t.Errorf("unexpected timestamp %q", deck.GeneratedAt)
	}
	if len(deck.Slides) != 2 || deck.Slides[0].Kind != "overview" {
		t.Errorf("unexpected slides: %+v", deck.Slides)
	}
}

func TestWriteFileUsesDeckID(t *testing.T) {
	dir := t.TempDir()
	p := sampleDeck()

	path, err := WriteFile(filepath.Join(dir, "decks"), p)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if filepath.Base(path) != p.ID+".yaml" {
		t.Errorf("unexpected file name %s", path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read export: %v", err)
	}
	if len(data) == 0 {
		t.Error("expected non-empty export")
	}
}
