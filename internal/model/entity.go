package model

import "time"

// Admin is a privileged account allowed to manage the roster and review
// reports. Passwords are stored bcrypt-hashed, never in plaintext.
type Admin struct {
	ID        int       `gorm:"primaryKey" json:"id"`
	Email     string    `gorm:"size:190;uniqueIndex" json:"email"`
	Password  string    `json:"-"`
	CreatedAt time.Time `json:"created_at"`
}

// Member is a team-roster entry. Reports reference members by name only;
// deleting a member cascades to that member's reports in the service layer.
type Member struct {
	ID        int       `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"size:190;uniqueIndex" json:"name"`
	CreatedAt time.Time `json:"created_at"`
}

// Report is one member's standup entry for one date. The composite unique
// index makes the database the arbiter of the one-report-per-member-per-day
// rule, so concurrent submissions cannot both win.
type Report struct {
	ID         int       `gorm:"primaryKey" json:"id"`
	ReportDate string    `gorm:"type:date;uniqueIndex:uk_date_member" json:"date"`
	MemberName string    `gorm:"size:190;uniqueIndex:uk_date_member" json:"name"`
	Yesterday  string    `gorm:"type:text" json:"yesterday"`
	Today      string    `gorm:"type:text" json:"today"`
	Blockers   string    `gorm:"type:text" json:"blockers"`
	CreatedAt  time.Time `json:"created_at"`
}

// ActionItems caches the generated consolidation for one date. Rows are
// write-once; the unique index resolves concurrent generation attempts.
type ActionItems struct {
	ID         int       `gorm:"primaryKey" json:"id"`
	ReportDate string    `gorm:"type:date;uniqueIndex" json:"date"`
	Items      string    `gorm:"type:text" json:"items"`
	CreatedAt  time.Time `json:"created_at"`
}

func (Admin) TableName() string       { return "admins" }
func (Member) TableName() string      { return "members" }
func (Report) TableName() string      { return "reports" }
func (ActionItems) TableName() string { return "action_items" }
