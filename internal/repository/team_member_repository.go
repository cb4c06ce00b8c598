package repository

import (
	"database/sql"

	"github.com/launchdeck/campaignhub-backend/internal/model"
)

// TeamMemberRepositoryInterface defines methods used by the task service
type TeamMemberRepositoryInterface interface {
	GetByID(id int) (*model.TeamMember, error)
	ListAll() ([]model.TeamMember, error)
}

// TeamMemberRepository is the concrete implementation
type TeamMemberRepository struct {
	DB *sql.DB
}

// GetByID fetches a team member by ID
func (r *TeamMemberRepository) GetByID(id int) (*model.TeamMember, error) {
	query := `
        SELECT id, name, role, capacity_pct
        FROM team_members
        WHERE id = $1
    `
	row := r.DB.QueryRow(query, id)

	var m model.TeamMember
	if err := row.Scan(&m.ID, &m.Name, &m.Role, &m.CapacityPct); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil // not found
		}
		return nil, err
	}
	return &m, nil
}

// ListAll fetches all team members (used for workload scoring)
func (r *TeamMemberRepository) ListAll() ([]model.TeamMember, error) {
	query := `
        SELECT id, name, role, capacity_pct
        FROM team_members
        ORDER BY id
    `
	rows, err := r.DB.Query(query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	members := []model.TeamMember{}
	for rows.Next() {
		var m model.TeamMember
		if err := rows.Scan(&m.ID, &m.Name, &m.Role, &m.CapacityPct); err != nil {
			return nil, err
		}
		members = append(members, m)
	}
	return members, nil
}

var _ TeamMemberRepositoryInterface = (*TeamMemberRepository)(nil)
