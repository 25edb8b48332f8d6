package dto

import (
	"time"

	"jobboard/internal/domain/application"
	"jobboard/internal/domain/candidate"

	"github.com/google/uuid"
)

type ApplicationResponse struct {
	ID          uuid.UUID `json:"id"`
	JobID       uuid.UUID `json:"job_id"`
	CandidateID uuid.UUID `json:"candidate_id"`
	Status      string    `json:"status"`
	CoverLetter string    `json:"cover_letter"`
	CVCustomURL string    `json:"cv_custom_url"`
	AppliedAt   time.Time `json:"applied_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func NewApplicationResponse(a application.Application) ApplicationResponse {
	return ApplicationResponse{
		ID:          a.ID,
		JobID:       a.JobID,
		CandidateID: a.CandidateID,
		Status:      string(a.Status),
		CoverLetter: a.CoverLetter,
		CVCustomURL: a.CVCustomURL,
		AppliedAt:   a.AppliedAt,
		UpdatedAt:   a.UpdatedAt,
	}
}

func NewApplicationResponses(items []application.Application) []ApplicationResponse {
	out := make([]ApplicationResponse, 0, len(items))
	for _, a := range items {
		out = append(out, NewApplicationResponse(a))
	}
	return out
}

type CandidateProfileResponse struct {
	ID                      uuid.UUID `json:"id"`
	UserID                  uuid.UUID `json:"user_id"`
	CVURL                   string    `json:"cv_url"`
	Skills                  string    `json:"skills"`
	Experience              string    `json:"experience"`
	Education               string    `json:"education"`
	VerificationDocumentURL string    `json:"verification_document_url"`
	UpdatedAt               time.Time `json:"updated_at"`
}

func NewCandidateProfileResponse(p candidate.Profile) CandidateProfileResponse {
	return CandidateProfileResponse{
		ID:                      p.ID,
		UserID:                  p.UserID,
		CVURL:                   p.CVURL,
		Skills:                  p.Skills,
		Experience:              p.Experience,
		Education:               p.Education,
		VerificationDocumentURL: p.VerificationDocumentURL,
		UpdatedAt:               p.UpdatedAt,
	}
}
