package response

import "github.com/wushufed/tournament-backend/internal/domain"

type AthleteLoginResponse struct {
	Token   string         `json:"token"`
	Athlete domain.Athlete `json:"athlete"`
}

type InstitutionLoginResponse struct {
	Token       string             `json:"token"`
	Institution domain.Institution `json:"institution"`
}
