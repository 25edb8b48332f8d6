package handler

import (
	"jobboard/internal/delivery/http/dto"
	"jobboard/internal/delivery/http/middleware"
	"jobboard/internal/pkg/response"
	"jobboard/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type CompanyHandler struct {
	companies usecase.CompanyUsecase
	reviews   usecase.ReviewUsecase
}

type registerCompanyRequest struct {
	Name                    string   `json:"name"`
	TaxCode                 string   `json:"tax_code"`
	Description             string   `json:"description"`
	Address                 string   `json:"address"`
	VerificationDocumentURL string   `json:"verification_document_url"`
	ImageURLs               []string `json:"image_urls"`
}

type updateCompanyRequest struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	Address     *string `json:"address"`
}

func NewCompanyHandler(companies usecase.CompanyUsecase, reviews usecase.ReviewUsecase) *CompanyHandler {
	return &CompanyHandler{companies: companies, reviews: reviews}
}

// RegisterRoutes mounts /me before /:id so the literal path wins.
func (h *CompanyHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Get("/", h.List)
	r.Post("/", middleware.RequireActor, h.Register)
	r.Get("/me", middleware.RequireActor, h.Mine)
	r.Patch("/me", middleware.RequireActor, h.UpdateMine)
	r.Get("/:id", h.Get)
	r.Get("/:id/reviews", h.Reviews)
}

func (h *CompanyHandler) List(c fiber.Ctx) error {
	limit, offset, err := pagination(c, 20, 100)
	if err != nil {
		return err
	}
	items, err := h.companies.ListCompanies(c.Context(), limit, offset)
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewCompanyResponses(items))
}

func (h *CompanyHandler) Get(c fiber.Ctx) error {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return err
	}
	co, err := h.companies.GetCompany(c.Context(), id)
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewCompanyResponse(co))
}

func (h *CompanyHandler) Reviews(c fiber.Ctx) error {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return err
	}
	limit, offset, err := pagination(c, 20, 100)
	if err != nil {
		return err
	}
	items, err := h.reviews.ListReviews(c.Context(), &id, limit, offset)
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewReviewResponses(items))
}

func (h *CompanyHandler) Register(c fiber.Ctx) error {
	var req registerCompanyRequest
	if err := c.Bind().Body(&req); err != nil {
		return badRequest(err)
	}
	co, err := h.companies.RegisterCompany(c.Context(), middleware.Actor(c), usecase.RegisterCompanyInput{
		Name:                    req.Name,
		TaxCode:                 req.TaxCode,
		Description:             req.Description,
		Address:                 req.Address,
		VerificationDocumentURL: req.VerificationDocumentURL,
		ImageURLs:               req.ImageURLs,
	})
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusCreated, response.MessageCreated, dto.NewCompanyResponse(co))
}

func (h *CompanyHandler) Mine(c fiber.Ctx) error {
	co, err := h.companies.MyCompany(c.Context(), middleware.Actor(c))
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewCompanyResponse(co))
}

func (h *CompanyHandler) UpdateMine(c fiber.Ctx) error {
	var req updateCompanyRequest
	if err := c.Bind().Body(&req); err != nil {
		return badRequest(err)
	}
	co, err := h.companies.UpdateCompany(c.Context(), middleware.Actor(c), usecase.UpdateCompanyInput{
		Name:        req.Name,
		Description: req.Description,
		Address:     req.Address,
	})
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewCompanyResponse(co))
}

