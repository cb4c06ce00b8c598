package repository

import (
	"database/sql"
	"encoding/json"
	"time"

	"github.com/launchdeck/campaignhub-backend/internal/model"
)

type PresentationRepositoryInterface interface {
	Create(p *model.Presentation) error
	GetByID(id string) (*model.Presentation, error)
	ListByCampaign(campaignID int) ([]*model.Presentation, error)
	UpdateStatus(id, status, lastError string) error
	MarkExported(id string) error
}

type PresentationRepository struct {
	DB *sql.DB
}

func (r *PresentationRepository) Create(p *model.Presentation) error {
	p.GeneratedAt = time.Now()
	if p.Status == "" {
		p.Status = "generated"
	}
	slides, err := json.Marshal(p.Slides)
	if err != nil {
		return err
	}
	query := `
        INSERT INTO presentations (id, campaign_id, title, status, slides, generated_at)
        VALUES ($1, $2, $3, $4, $5, $6)
    `
	_, err = r.DB.Exec(query, p.ID, p.CampaignID, p.Title, p.Status, slides, p.GeneratedAt)
	return err
}

func (r *PresentationRepository) GetByID(id string) (*model.Presentation, error) {
	query := `
        SELECT id, campaign_id, title, status, slides, generated_at, exported_at, last_error
        FROM presentations
        WHERE id=$1
    `
	var p model.Presentation
	var slides []byte
	err := r.DB.QueryRow(query, id).Scan(
		&p.ID, &p.CampaignID, &p.Title, &p.Status, &slides,
		&p.GeneratedAt, &p.ExportedAt, &p.LastError,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	if err := json.Unmarshal(slides, &p.Slides); err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *PresentationRepository) ListByCampaign(campaignID int) ([]*model.Presentation, error) {
	query := `
        SELECT id, campaign_id, title, status, slides, generated_at, exported_at, last_error
        FROM presentations
        WHERE campaign_id=$1
        ORDER BY generated_at DESC
    `
	rows, err := r.DB.Query(query, campaignID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	decks := []*model.Presentation{}
	for rows.Next() {
		p := &model.Presentation{}
		var slides []byte
		if err := rows.Scan(
			&p.ID, &p.CampaignID, &p.Title, &p.Status, &slides,
			&p.GeneratedAt, &p.ExportedAt, &p.LastError,
		); err != nil {
			return nil, err
		}
		if err := json.Unmarshal(slides, &p.Slides); err != nil {
			return nil, err
		}
		decks = append(decks, p)
	}
	return decks, nil
}

func (r *PresentationRepository) UpdateStatus(id, status, lastError string) error {
	query := `UPDATE presentations SET status=$1, last_error=$2 WHERE id=$3`
	_, err := r.DB.Exec(query, status, lastError, id)
	return err
}

func (r *PresentationRepository) MarkExported(id string) error {
	query := `UPDATE presentations SET status='exported', last_error='', exported_at=NOW() WHERE id=$1`
	_, err := r.DB.Exec(query, id)
	return err
}

var _ PresentationRepositoryInterface = (*PresentationRepository)(nil)
