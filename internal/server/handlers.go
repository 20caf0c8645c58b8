package server

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/bioseqlab/seqfeat/pkg/panel"
	"github.com/bioseqlab/seqfeat/pkg/refset"
	"github.com/bioseqlab/seqfeat/pkg/window"
)

type extractRequest struct {
	Sequences    []panel.Input       `json:"sequences" validate:"required,min=1,dive"`
	Panels       panel.Config        `json:"panels"`
	Window       *panel.WindowConfig `json:"window"`
	ReferenceSet string              `json:"referenceSet"`
}

type extractResponse struct {
	Success  bool           `json:"success"`
	Mode     string         `json:"mode"`
	Results  []panel.Row    `json:"results"`
	Metadata panel.Metadata `json:"metadata"`
	Errors   []panel.Error  `json:"errors,omitempty"`
}

type errorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}

func fail(c *fiber.Ctx, status int, msg string) error {
	return c.Status(status).JSON(errorResponse{Success: false, Error: msg})
}

func (s *Server) extractFeatures(c *fiber.Ctx) error {
	var req extractRequest
	if err := c.BodyParser(&req); err != nil {
		return fail(c, fiber.StatusBadRequest, "malformed request body: "+err.Error())
	}
	if err := s.validate.Struct(req); err != nil {
		return fail(c, fiber.StatusBadRequest, err.Error())
	}

	ref, err := s.lookupRef(req.ReferenceSet)
	if err != nil {
		return fail(c, fiber.StatusBadRequest, err.Error())
	}

	var wcfg panel.WindowConfig
	if req.Window != nil {
		wcfg = *req.Window
	}

	rows, errs, meta, err := s.registry.Run(c.UserContext(), req.Sequences, ref, req.Panels, wcfg, s.cfg.App.Threads)
	if err != nil {
		if errors.Is(err, window.ErrInvalidConfig) {
			return fail(c, fiber.StatusBadRequest, err.Error())
		}
		return fail(c, fiber.StatusInternalServerError, err.Error())
	}

	s.log.Info("extracted features",
		zap.String("runId", meta.RunID),
		zap.String("mode", meta.Mode),
		zap.Int("sequences", meta.TotalSequences),
		zap.Int("failed", len(errs)),
		zap.Int64("computeTimeMs", meta.ComputeTimeMs))

	if rows == nil {
		rows = []panel.Row{}
	}
	return c.JSON(extractResponse{
		Success:  true,
		Mode:     meta.Mode,
		Results:  rows,
		Metadata: meta,
		Errors:   errs,
	})
}

func (s *Server) lookupRef(name string) (*refset.Set, error) {
	if name == "" {
		return nil, nil
	}
	ref, ok := s.refs[name]
	if !ok {
		return nil, errors.New("unknown reference set " + name)
	}
	return ref, nil
}

func (s *Server) listPanels(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"panels": s.registry.Catalog()})
}

func (s *Server) health(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"status": "healthy", "version": "1.0.0"})
}
