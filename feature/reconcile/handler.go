package reconcile

import (
	"strings"

	"precinct-reconciler/core/diff"
	"precinct-reconciler/core/logger"
	"precinct-reconciler/core/precinct"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for combine and diff runs.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the reconcile routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/reconcile")
	group.Post("/combine", h.HandleCombine)
	group.Post("/diff", h.HandleDiff)
}

// CombineRequest is the body of POST /reconcile/combine.
type CombineRequest struct {
	// Inputs maps vote types (total, eday, early, absentee, mailin) to
	// bucket object names.
	Inputs map[string]string `json:"inputs"`
	// Out overrides the auto-generated combined object name.
	Out string `json:"out"`
	// ErrOut overrides the conflict report object name.
	ErrOut string `json:"err_out"`
	// Year overrides year detection from the input object names.
	Year string `json:"year"`
}

// DiffRequest is the body of POST /reconcile/diff.
type DiffRequest struct {
	File1 string `json:"file1"`
	File2 string `json:"file2"`
	// Tolerance is the numeric comparison tolerance (default 0, exact).
	Tolerance float64 `json:"tolerance"`
	// CaseSensitive compares strings case-sensitively (default off).
	CaseSensitive bool `json:"case_sensitive"`
	// Columns restricts the comparison to these columns.
	Columns []string `json:"columns"`
	// Out, when set, uploads the diff CSV under this object name.
	Out string `json:"out"`
}

// HandleCombine merges per-vote-type bucket objects into a combined export.
// @Summary Combine Vote-Type Exports
// @Description Merges per-vote-type export objects into one combined CSV keyed by (state, county, precinct), writes the combined CSV and a conflict report back to the bucket, and returns a summary.
// @Tags reconcile
// @Accept json
// @Produce json
// @Param request body CombineRequest true "Combine inputs"
// @Success 200 {object} map[string]interface{} "Combine summary"
// @Failure 400 {object} map[string]string "Invalid request"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /reconcile/combine [post]
func (h *Handler) HandleCombine(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	var req CombineRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}
	if len(req.Inputs) == 0 {
		return fiber.NewError(fiber.StatusBadRequest, "no vote-type inputs supplied")
	}

	objects := make(map[precinct.VoteType]string, len(req.Inputs))
	for label, object := range req.Inputs {
		t := precinct.VoteType(label)
		if !t.IsValid() {
			return fiber.NewError(fiber.StatusBadRequest, "unknown vote type "+label)
		}
		objects[t] = object
	}

	result, err := h.service.Combine(c.Context(), objects)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	out := req.Out
	if out == "" {
		out = combinedObjectName(result.Combined, objectNames(objects), req.Year)
	}
	errOut := req.ErrOut
	if errOut == "" {
		errOut = out + ".errors.csv"
	}

	if err := h.service.SaveTable(c.Context(), out, result.Combined); err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}
	if result.HasConflicts() {
		if err := h.service.SaveTable(c.Context(), errOut, result.ConflictTable()); err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, err.Error())
		}
		l.Warn("Shared registration conflicts detected",
			zap.Int("conflicts", len(result.Conflicts)),
			zap.Int("keys_dropped", result.KeysDropped),
			zap.String("err_out", errOut))
	}

	response := fiber.Map{
		"out":           out,
		"rows":          result.RowsCombined,
		"keys_dropped":  result.KeysDropped,
		"conflicts":     len(result.Conflicts),
		"has_conflicts": result.HasConflicts(),
	}
	if result.HasConflicts() {
		response["err_out"] = errOut
	}
	return c.JSON(response)
}

// HandleDiff compares two bucket objects.
// @Summary Diff Two Exports
// @Description Compares two export objects keyed by (state, county, precinct). Blank cells equal numeric zero and ballots_cast is excluded, matching the interactive app.
// @Tags reconcile
// @Accept json
// @Produce json
// @Param request body DiffRequest true "Diff inputs"
// @Success 200 {object} map[string]interface{} "Diff records or upload summary"
// @Failure 400 {object} map[string]string "Invalid request"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /reconcile/diff [post]
func (h *Handler) HandleDiff(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	var req DiffRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}
	if req.File1 == "" || req.File2 == "" {
		return fiber.NewError(fiber.StatusBadRequest, "file1 and file2 are required")
	}
	if req.Tolerance < 0 {
		return fiber.NewError(fiber.StatusBadRequest, "tolerance must be >= 0")
	}

	// The interactive app's conventions: blank equals numeric zero, and
	// ballots_cast (blanked in combined exports) never compared.
	opts := diff.Options{
		Tolerance:       req.Tolerance,
		CaseSensitive:   req.CaseSensitive,
		Columns:         req.Columns,
		ExcludeColumns:  []string{"ballots_cast"},
		BlankEqualsZero: true,
	}

	records, err := h.service.Diff(c.Context(), req.File1, req.File2, opts)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	if req.Out != "" {
		if err := h.service.SaveTable(c.Context(), req.Out, diff.Table(records)); err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, err.Error())
		}
		l.Info("Diff uploaded", zap.String("out", req.Out), zap.Int("diffs", len(records)))
		return c.JSON(fiber.Map{"out": req.Out, "diffs": len(records)})
	}

	return c.JSON(fiber.Map{"diffs": len(records), "records": diffRows(records)})
}

// diffRows renders records as plain JSON objects in report column order.
func diffRows(records []diff.Record) []fiber.Map {
	rows := make([]fiber.Map, 0, len(records))
	for _, r := range records {
		rows = append(rows, fiber.Map{
			"state":       r.Key.State,
			"county":      r.Key.County,
			"precinct":    r.Key.Precinct,
			"diff_type":   string(r.Type),
			"column":      r.Column,
			"file1_value": r.File1Value,
			"file2_value": r.File2Value,
			"description": r.Description,
		})
	}
	return rows
}

// objectNames returns the input object names for year inference.
func objectNames(objects map[precinct.VoteType]string) []string {
	names := make([]string, 0, len(objects))
	for _, t := range precinct.TypePriority {
		if name, ok := objects[t]; ok {
			names = append(names, name)
		}
	}
	return names
}

// combinedObjectName builds <State>__<County>__<Year>__COMBINED.csv from the
// combined data and the input object names.
func combinedObjectName(combined *precinct.Table, inputs []string, yearOverride string) string {
	year := yearOverride
	if year == "" {
		year = precinct.InferYearFromPaths(inputs)
	}
	state := precinct.UniqueOrMulti(combined.ColumnValues("state"))
	county := precinct.UniqueOrMulti(combined.ColumnValues("county"))
	return strings.Join([]string{
		precinct.SanitizeFilename(state),
		precinct.SanitizeFilename(county),
		precinct.SanitizeFilename(year),
		"COMBINED.csv",
	}, "__")
}
