package dto

import (
	"time"

	"jobboard/internal/domain/company"
	"jobboard/internal/domain/job"

	"github.com/google/uuid"
)

type CompanyResponse struct {
	ID          uuid.UUID `json:"id"`
	UserID      uuid.UUID `json:"user_id"`
	Name        string    `json:"name"`
	TaxCode     string    `json:"tax_code"`
	Description string    `json:"description"`
	Address     string    `json:"address"`
	Status      string    `json:"status"`
	Images      []string  `json:"images"`
	CreatedAt   time.Time `json:"created_at"`
}

func NewCompanyResponse(c company.Company) CompanyResponse {
	images := make([]string, 0, len(c.Images))
	for _, img := range c.Images {
		images = append(images, img.URL)
	}
	return CompanyResponse{
		ID:          c.ID,
		UserID:      c.UserID,
		Name:        c.Name,
		TaxCode:     c.TaxCode,
		Description: c.Description,
		Address:     c.Address,
		Status:      string(c.Status),
		Images:      images,
		CreatedAt:   c.CreatedAt,
	}
}

func NewCompanyResponses(items []company.Company) []CompanyResponse {
	out := make([]CompanyResponse, 0, len(items))
	for _, c := range items {
		out = append(out, NewCompanyResponse(c))
	}
	return out
}

type IndustryResponse struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
}

func NewIndustryResponses(items []job.Industry) []IndustryResponse {
	out := make([]IndustryResponse, 0, len(items))
	for _, in := range items {
		out = append(out, IndustryResponse{ID: in.ID, Name: in.Name})
	}
	return out
}
