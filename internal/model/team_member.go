// internal/model/team_member.go
package model

type TeamMember struct {
	ID          int    `db:"id" json:"id"`
	Name        string `db:"name" json:"name"`
	Role        string `db:"role" json:"role"`
	CapacityPct int    `db:"capacity_pct" json:"capacity_pct"` // share of a full-time load this member can carry
}
