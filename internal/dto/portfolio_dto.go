package dto

import "portfolio-be/internal/entity"

type PortfolioResponse struct {
	Profile       entity.Profile           `json:"profile"`
	Pillars       []entity.ResearchPillar  `json:"pillars"`
	Philosophy    []string                 `json:"philosophy"`
	SelectedWork  []entity.Project         `json:"selected_work"`
	Collaborators []string                 `json:"collaborators"`
	Capabilities  []entity.CapabilityGroup `json:"capabilities"`
	Links         map[string]string        `json:"links"`
}
