package model

type LoginRequest struct {
	Email    string `form:"email" binding:"required"`
	Password string `form:"password" binding:"required"`
}

type LoginResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

type ReportForm struct {
	Date      string `form:"date" binding:"required"`
	Name      string `form:"name" binding:"required"`
	Yesterday string `form:"yesterday" binding:"required"`
	Today     string `form:"today" binding:"required"`
	Blockers  string `form:"blockers"`
}

type MemberForm struct {
	Name string `form:"name" binding:"required"`
}

// ReportBody is the stored report echoed back by check_report so the
// submission form can show what was already filed.
type ReportBody struct {
	ID        int    `json:"id"`
	Yesterday string `json:"yesterday"`
	Today     string `json:"today"`
	Blockers  string `json:"blockers"`
}

type CheckReportResponse struct {
	Exists bool        `json:"exists"`
	Report *ReportBody `json:"report,omitempty"`
}

// ReportRow is one display row of the per-date listing, numbered in storage
// insertion order.
type ReportRow struct {
	SNo       int    `json:"sno"`
	Name      string `json:"name"`
	Yesterday string `json:"yesterday"`
	Today     string `json:"today"`
	Blockers  string `json:"blockers"`
}

type ActionItemsResponse struct {
	ActionItems string `json:"action_items"`
}
