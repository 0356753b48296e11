package export

import (
	"bytes"
	"strconv"

	"precinct-reconciler/core/logger"
	"precinct-reconciler/core/precinct"
	"precinct-reconciler/core/storage"

	"github.com/gofiber/fiber/v2"
	"github.com/minio/minio-go/v7"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for the export feature.
type Handler struct {
	service *Service
	store   storage.Client
	bucket  string
	logger  *zap.Logger
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service, store storage.Client, bucket string, logger *zap.Logger) *Handler {
	return &Handler{service: service, store: store, bucket: bucket, logger: logger}
}

// RegisterRoutes registers the export routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/export")
	group.Get("/states", h.HandleStates)
	group.Get("/years", h.HandleYears)
	group.Get("/counties", h.HandleCounties)
	group.Get("/elections", h.HandleElections)
	group.Post("/run", h.HandleRun)
}

// RunRequest is the body of POST /export/run.
type RunRequest struct {
	State    string `json:"state"`
	Year     int    `json:"year"`
	County   string `json:"county"`
	Election string `json:"election"`
	// VoteType is one of total, eday, early, absentee, mailin. When empty
	// it is guessed from the election name.
	VoteType string `json:"vote_type"`
	// Upload stores the CSV in the exports bucket instead of returning it.
	Upload bool `json:"upload"`
	// Object overrides the auto-generated object name when uploading.
	Object string `json:"object"`
}

// HandleStates lists states with elections.
// @Summary List States
// @Description Lists the distinct states present in the elections database.
// @Tags export
// @Produce json
// @Success 200 {array} string
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /export/states [get]
func (h *Handler) HandleStates(c *fiber.Ctx) error {
	states, err := h.service.ListStates(c.Context())
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}
	return c.JSON(states)
}

// HandleYears lists election years for a state.
// @Summary List Years
// @Description Lists the distinct election years for a state.
// @Tags export
// @Produce json
// @Param state query string true "State"
// @Success 200 {array} int
// @Failure 400 {object} map[string]string "Missing state"
// @Router /export/years [get]
func (h *Handler) HandleYears(c *fiber.Ctx) error {
	state := c.Query("state")
	if state == "" {
		return fiber.NewError(fiber.StatusBadRequest, "state query parameter is required")
	}
	years, err := h.service.ListYears(c.Context(), state)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}
	return c.JSON(years)
}

// HandleCounties lists counties for a state and year.
// @Summary List Counties
// @Description Lists the distinct counties for a state and year.
// @Tags export
// @Produce json
// @Param state query string true "State"
// @Param year query int true "Year"
// @Success 200 {array} string
// @Failure 400 {object} map[string]string "Missing or invalid scope"
// @Router /export/counties [get]
func (h *Handler) HandleCounties(c *fiber.Ctx) error {
	state := c.Query("state")
	year, err := strconv.Atoi(c.Query("year"))
	if state == "" || err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "state and numeric year query parameters are required")
	}
	counties, err := h.service.ListCounties(c.Context(), state, year)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}
	return c.JSON(counties)
}

// HandleElections lists election names in scope.
// @Summary List Elections
// @Description Lists the distinct election names for a state, year and optional county.
// @Tags export
// @Produce json
// @Param state query string true "State"
// @Param year query int true "Year"
// @Param county query string false "County (omit or 'All' for the whole state)"
// @Success 200 {array} string
// @Failure 400 {object} map[string]string "Missing or invalid scope"
// @Router /export/elections [get]
func (h *Handler) HandleElections(c *fiber.Ctx) error {
	state := c.Query("state")
	year, err := strconv.Atoi(c.Query("year"))
	if state == "" || err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "state and numeric year query parameters are required")
	}
	scope := Scope{State: state, Year: year, County: c.Query("county")}
	elections, err := h.service.ListElections(c.Context(), scope)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}
	return c.JSON(elections)
}

// HandleRun exports the scoped precinct rows as a wide CSV.
// @Summary Run Export
// @Description Exports precinct results for a scope as a wide CSV, returned inline or uploaded to the exports bucket.
// @Tags export
// @Accept json
// @Produce json
// @Param request body RunRequest true "Export scope"
// @Success 200 {object} map[string]interface{} "Upload summary (upload=true) or CSV body"
// @Failure 400 {object} map[string]string "Invalid request"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /export/run [post]
func (h *Handler) HandleRun(c *fiber.Ctx) error {
	l := logger.WithRayID(h.logger, c)

	var req RunRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}
	if req.State == "" || req.Year == 0 || req.Election == "" {
		return fiber.NewError(fiber.StatusBadRequest, "state, year and election are required")
	}

	voteType := precinct.VoteType(req.VoteType)
	if req.VoteType == "" {
		voteType = GuessVoteType(req.Election)
	}
	if !voteType.IsValid() {
		return fiber.NewError(fiber.StatusBadRequest, "unknown vote type "+req.VoteType)
	}

	scope := Scope{State: req.State, Year: req.Year, County: req.County, Election: req.Election}
	table, err := h.service.Export(c.Context(), scope, voteType)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	var buf bytes.Buffer
	if err := precinct.WriteCSV(&buf, table); err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	name := req.Object
	if name == "" {
		name = FileName(scope, voteType)
	}

	if req.Upload {
		_, err := h.store.PutObject(c.Context(), h.bucket, name,
			bytes.NewReader(buf.Bytes()), int64(buf.Len()),
			minio.PutObjectOptions{ContentType: "text/csv"})
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, err.Error())
		}
		l.Info("Export uploaded",
			zap.String("object", name), zap.Int("rows", table.Len()))
		return c.JSON(fiber.Map{"object": name, "rows": table.Len()})
	}

	c.Set(fiber.HeaderContentType, "text/csv")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+name+`"`)
	return c.Send(buf.Bytes())
}
