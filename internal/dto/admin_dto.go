package dto

import (
	"portfolio-be/internal/entity"
	"portfolio-be/internal/pkg/logger"
)

type DashboardResponse struct {
	User            *entity.Session `json:"user"`
	PostCount       int             `json:"post_count"`
	ExperienceCount int             `json:"experience_count"`
	Acknowledgment  string          `json:"acknowledgment"`
}

type ProfileResponse struct {
	Profile entity.Profile `json:"profile"`
	Note    string         `json:"note"`
}

type LogListResponse struct {
	Items  []logger.LogEntry `json:"items"`
	Limit  int               `json:"limit"`
	Offset int               `json:"offset"`
}
