package wizard

import (
	"encoding/json"
	"errors"
	"fmt"

	"listing-wizard/internal/application/editors"
	"listing-wizard/internal/application/flow"
	wizardsvc "listing-wizard/internal/application/wizard"
	"listing-wizard/internal/domain"
	"listing-wizard/internal/middleware"
	"listing-wizard/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"
)

// Handlers exposes the wizard sessions over HTTP.
type Handlers struct {
	Registry *flow.Registry
}

type createSessionRequest struct {
	Resume      bool            `json:"resume"`
	InitialData json.RawMessage `json:"initialData"`
}

// fail answers a wizard error. Unexpected errors go to the global error handler.
func (h *Handlers) fail(c *fiber.Ctx, err error, details interface{}) error {
	status := statusFor(err)
	if status == 0 {
		return err
	}
	return response.Error(c, err.Error(), status, details)
}

// parseFragment reads a raw record fragment. Malformed JSON counts as an invalid value.
func parseFragment(data []byte) (domain.Fragment, error) {
	f, err := domain.ParseFragment(data)
	if err != nil && !errors.Is(err, domain.ErrUnknownField) {
		return domain.Fragment{}, fmt.Errorf("%w: %v", editors.ErrInvalidValue, err)
	}
	return f, err
}

func (h *Handlers) session(c *fiber.Ctx) (*flow.Session, error) {
	return h.Registry.Get(c.Params("id"))
}

// state answers with the session snapshot after a successful action.
func state(c *fiber.Ctx, s *flow.Session, message string) error {
	return response.Success(c, message, s.Snapshot(), nil)
}

// Welcome GET /api/v1/wizard/welcome
func (h *Handlers) Welcome(c *fiber.Ctx) error {
	w, err := h.Registry.Welcome(c.UserContext(), middleware.GetDraftOwner(c))
	if err != nil {
		log.Warn().Err(err).Msg("wizard: draft lookup failed")
		w = flow.Welcome{Tips: domain.OnboardingTips}
	}
	return response.Success(c, "Welcome", w, nil)
}

// Reference GET /api/v1/wizard/reference
func (h *Handlers) Reference(c *fiber.Ctx) error {
	return response.Success(c, "Reference data", fiber.Map{
		"steps":               wizardsvc.DefaultSteps,
		"apartmentTypes":      domain.ApartmentTypes,
		"buildingTypes":       domain.BuildingTypes,
		"listingCategories":   domain.ListingCategories,
		"occupancyTypes":      domain.OccupancyTypes,
		"kitchenTypes":        domain.KitchenTypes,
		"sizeUnits":           domain.SizeUnits,
		"bedTypes":            domain.BedTypes,
		"currencies":          domain.Currencies,
		"amenities":           domain.AmenityCatalogue,
		"languages":           domain.CommonLanguages,
		"suggestedHighlights": domain.SuggestedHighlights,
		"photoCategories":     domain.PhotoCategories,
		"limits": fiber.Map{
			"listingTitle":    editors.MaxListingTitle,
			"fullDescription": editors.MaxFullDescription,
			"hostBio":         editors.MaxHostBio,
		},
	}, nil)
}

// CreateSession POST /api/v1/wizard/sessions
func (h *Handlers) CreateSession(c *fiber.Ctx) error {
	var req createSessionRequest
	if len(c.Body()) > 0 {
		if err := json.Unmarshal(c.Body(), &req); err != nil {
			return response.Error(c, "Invalid request body", fiber.StatusBadRequest, nil)
		}
	}
	var initial *domain.ListingRecord
	if len(req.InitialData) > 0 && string(req.InitialData) != "null" {
		f, err := parseFragment(req.InitialData)
		if err != nil {
			return h.fail(c, err, nil)
		}
		r := domain.NewRecord(f)
		initial = &r
	}

	s := h.Registry.Create(middleware.GetDraftOwner(c))
	var err error
	if req.Resume {
		err = s.ResumeDraft(c.UserContext())
	} else {
		err = s.StartNew(initial)
	}
	if err != nil {
		_ = h.Registry.Delete(s.ID)
		return h.fail(c, err, nil)
	}
	return response.SuccessCreated(c, "Wizard session started", s.Snapshot(), nil)
}

// GetSession GET /api/v1/wizard/sessions/:id
func (h *Handlers) GetSession(c *fiber.Ctx) error {
	s, err := h.session(c)
	if err != nil {
		return h.fail(c, err, nil)
	}
	return state(c, s, "Wizard session fetched")
}

// DeleteSession DELETE /api/v1/wizard/sessions/:id
func (h *Handlers) DeleteSession(c *fiber.Ctx) error {
	if err := h.Registry.Delete(c.Params("id")); err != nil {
		return h.fail(c, err, nil)
	}
	return response.Success(c, "Wizard session discarded", nil, nil)
}

// Advance POST /api/v1/wizard/sessions/:id/advance
func (h *Handlers) Advance(c *fiber.Ctx) error {
	s, err := h.session(c)
	if err != nil {
		return h.fail(c, err, nil)
	}
	if err := s.Advance(); err != nil {
		return h.fail(c, err, nil)
	}
	return state(c, s, "Step advanced")
}

// Retreat POST /api/v1/wizard/sessions/:id/retreat
func (h *Handlers) Retreat(c *fiber.Ctx) error {
	s, err := h.session(c)
	if err != nil {
		return h.fail(c, err, nil)
	}
	exited, err := s.Retreat()
	if err != nil {
		return h.fail(c, err, nil)
	}
	return response.Success(c, "Step retreated", s.Snapshot(), fiber.Map{"exited": exited})
}

// ReportRecord PATCH /api/v1/wizard/sessions/:id/record
func (h *Handlers) ReportRecord(c *fiber.Ctx) error {
	s, err := h.session(c)
	if err != nil {
		return h.fail(c, err, nil)
	}
	f, err := parseFragment(c.Body())
	if err != nil {
		return h.fail(c, err, nil)
	}
	if err := s.Report(f); err != nil {
		return h.fail(c, err, nil)
	}
	return state(c, s, "Record updated")
}

// ApplyOp POST /api/v1/wizard/sessions/:id/ops
func (h *Handlers) ApplyOp(c *fiber.Ctx) error {
	s, err := h.session(c)
	if err != nil {
		return h.fail(c, err, nil)
	}
	var op editors.Op
	if err := json.Unmarshal(c.Body(), &op); err != nil || op.Op == "" {
		return response.Error(c, "op is required", fiber.StatusBadRequest, nil)
	}
	if err := s.Apply(c.UserContext(), op); err != nil {
		return h.fail(c, err, fiber.Map{"op": op.Op, "field": op.Field})
	}
	return state(c, s, "Operation applied")
}

// Review GET /api/v1/wizard/sessions/:id/review
func (h *Handlers) Review(c *fiber.Ctx) error {
	s, err := h.session(c)
	if err != nil {
		return h.fail(c, err, nil)
	}
	rs, err := s.Review()
	if err != nil {
		return h.fail(c, err, nil)
	}
	return response.Success(c, "Review", rs, nil)
}

// Submit POST /api/v1/wizard/sessions/:id/submit
func (h *Handlers) Submit(c *fiber.Ctx) error {
	s, err := h.session(c)
	if err != nil {
		return h.fail(c, err, nil)
	}
	if err := s.Publish(c.UserContext()); err != nil {
		if errors.Is(err, editors.ErrIncomplete) {
			rs, _ := s.Review()
			return h.fail(c, editors.ErrIncomplete, fiber.Map{"missing": rs.Verdict.Missing})
		}
		return h.fail(c, err, nil)
	}
	return response.SuccessAccepted(c, "Submitting listing", s.Snapshot(), nil)
}

// SaveDraft POST /api/v1/wizard/sessions/:id/draft
func (h *Handlers) SaveDraft(c *fiber.Ctx) error {
	s, err := h.session(c)
	if err != nil {
		return h.fail(c, err, nil)
	}
	if err := s.SaveDraft(c.UserContext()); err != nil {
		return h.fail(c, err, nil)
	}
	return response.Success(c, "Draft saved", fiber.Map{"owner": s.DraftOwner}, nil)
}

// Restart POST /api/v1/wizard/sessions/:id/restart
func (h *Handlers) Restart(c *fiber.Ctx) error {
	s, err := h.session(c)
	if err != nil {
		return h.fail(c, err, nil)
	}
	if err := s.Restart(); err != nil {
		return h.fail(c, err, nil)
	}
	return state(c, s, "Back to welcome")
}

// Register mounts the wizard routes on a group rooted at /api/v1/wizard.
func (h *Handlers) Register(g fiber.Router) {
	g.Get("/welcome", h.Welcome)
	g.Get("/reference", h.Reference)
	g.Post("/sessions", h.CreateSession)
	g.Get("/sessions/:id", h.GetSession)
	g.Delete("/sessions/:id", h.DeleteSession)
	g.Post("/sessions/:id/advance", h.Advance)
	g.Post("/sessions/:id/retreat", h.Retreat)
	g.Patch("/sessions/:id/record", h.ReportRecord)
	g.Post("/sessions/:id/ops", h.ApplyOp)
	g.Get("/sessions/:id/review", h.Review)
	g.Post("/sessions/:id/submit", h.Submit)
	g.Post("/sessions/:id/draft", h.SaveDraft)
	g.Post("/sessions/:id/restart", h.Restart)
}
