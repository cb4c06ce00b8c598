// internal/export/exporter.go
package export

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/launchdeck/campaignhub-backend/internal/model"
)

// Deck is the YAML document written for one exported presentation.
type Deck struct {
	ID          string        `yaml:"id"`
	CampaignID  int           `yaml:"campaign_id"`
	Title       string        `yaml:"title"`
	GeneratedAt string        `yaml:"generated_at"`
	Slides      []model.Slide `yaml:"slides"`
}

// Render serializes a presentation to its YAML export form.
func Render(p *model.Presentation) ([]byte, error) {
	deck := Deck{
		ID:          p.ID,
		CampaignID:  p.CampaignID,
		Title:       p.Title,
		GeneratedAt: p.GeneratedAt.Format("2006-01-02 15:04:05"),
		Slides:      p.Slides,
	}
	out, err := yaml.Marshal(deck)
	if err != nil {
		return nil, fmt.Errorf("marshal deck %s: %w", p.ID, err)
	}
	return out, nil
}

// WriteFile renders the deck into dir as <id>.yaml and returns the path.
func WriteFile(dir string, p *model.Presentation) (string, error) {
	out, err := Render(p)
	if err != nil {
		return "", err
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}

	path := filepath.Join(dir, p.ID+".yaml")
	if err := os.WriteFile(path, out, 0o644); err != nil {
		return "", err
	}
	return path, nil
}
