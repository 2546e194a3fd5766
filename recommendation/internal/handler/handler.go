package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/pkg/errors"
	echoSwagger "github.com/swaggo/echo-swagger"
	"go.uber.org/zap"

	md "github.com/Astemirdum/library-recommendation/pkg/middleware"
	"github.com/Astemirdum/library-recommendation/pkg/validate"
	"github.com/Astemirdum/library-recommendation/recommendation/internal/errs"
	"github.com/Astemirdum/library-recommendation/recommendation/internal/model"
	_ "github.com/Astemirdum/library-recommendation/swagger"
)

type Handler struct {
	svc RecommendationService
	log *zap.Logger
}

func New(svc RecommendationService, log *zap.Logger) *Handler {
	return &Handler{
		svc: svc,
		log: log.Named("handler"),
	}
}

func (h *Handler) NewRouter() *echo.Echo {
	e := echo.New()
	const (
		baseRPS = 10
		apiRPS  = 100
	)
	e.Use(middleware.RecoverWithConfig(middleware.RecoverConfig{
		StackSize: 4 << 10, // 4 KB
	}))
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{http.MethodGet, http.MethodOptions, http.MethodHead, http.MethodPut, http.MethodPatch, http.MethodPost, http.MethodDelete},
		AllowCredentials: true,
	}))

	base := e.Group("", md.NewRateLimiter(baseRPS))
	base.GET("/manage/health", h.Health)
	base.GET("/swagger/*", echoSwagger.WrapHandler)

	e.Validator = validate.NewCustomValidator()
	api := e.Group("/api/v1",
		middleware.RequestLoggerWithConfig(md.RequestLoggerConfig(h.log)),
		middleware.RequestID(),
		md.NewRateLimiter(apiRPS),
	)

	api.GET("/students/:id/recommendations", h.GetRecommendations)
	api.GET("/students/:id/history", h.GetHistory)
	api.POST("/students/by-ids", h.StudentsByIDs)
	api.POST("/books/by-ids", h.BooksByIDs)

	api.POST("/borrows", h.CreateBorrow)
	api.PATCH("/borrows/:id/return", h.ReturnBorrow)

	rec := api.Group("/recommendations")
	rec.POST("/generate", h.Generate)
	rec.GET("/runs", h.GetRuns)
	rec.GET("/runs/:runId", h.GetRun)
	rec.GET("/active", h.GetActiveBatch)
	rec.GET("/latest-summary", h.GetLatestSummary)
	rec.GET("/batches", h.GetBatches)
	rec.GET("/batches/:id", h.GetBatch)
	rec.GET("/batches/:id/students", h.GetImpactedStudents)
	rec.POST("/batches/:id/activate", h.ActivateBatch)
	rec.DELETE("/batches/:id", h.DeleteBatch)

	return e
}

func (h *Handler) Health(c echo.Context) error {
	return c.String(http.StatusOK, "OK")
}

// GetRecommendations godoc
// @Summary Recommend books for a student
// @Tags students
// @Produce json
// @Param id path int true "student id"
// @Param n query int false "number of recommendations"
// @Success 200 {object} model.Recommendations
// @Failure 400,404,500 {object} echo.HTTPError
// @Router /api/v1/students/{id}/recommendations [get]
func (h *Handler) GetRecommendations(c echo.Context) error {
	studentID, err := pathID(c, "id")
	if err != nil {
		return err
	}
	var n int
	if nParam := c.QueryParam("n"); nParam != "" {
		if n, err = strconv.Atoi(nParam); err != nil || n <= 0 {
			return echo.NewHTTPError(http.StatusBadRequest, "n is invalid")
		}
	}
	recs, err := h.svc.Recommend(c.Request().Context(), studentID, n)
	if err != nil {
		return h.httpError(err)
	}
	return c.JSON(http.StatusOK, recs)
}

// GetHistory godoc
// @Summary Borrow history of a student, newest first
// @Tags students
// @Produce json
// @Param id path int true "student id"
// @Success 200 {array} model.Borrow
// @Failure 400,404,500 {object} echo.HTTPError
// @Router /api/v1/students/{id}/history [get]
func (h *Handler) GetHistory(c echo.Context) error {
	studentID, err := pathID(c, "id")
	if err != nil {
		return err
	}
	history, err := h.svc.StudentHistory(c.Request().Context(), studentID)
	if err != nil {
		return h.httpError(err)
	}
	return c.JSON(http.StatusOK, history)
}

// CreateBorrow godoc
// @Summary Record a borrow
// @Tags borrows
// @Accept json
// @Produce json
// @Param request body model.CreateBorrowRequest true "borrow"
// @Success 201 {object} model.Borrow
// @Failure 400,404,409,500 {object} echo.HTTPError
// @Router /api/v1/borrows [post]
func (h *Handler) CreateBorrow(c echo.Context) error {
	var req model.CreateBorrowRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	borrow, err := h.svc.Borrow(c.Request().Context(), req)
	if err != nil {
		return h.httpError(err)
	}
	return c.JSON(http.StatusCreated, borrow)
}

// ReturnBorrow godoc
// @Summary Return a borrowed book
// @Tags borrows
// @Produce json
// @Param id path int true "borrow id"
// @Success 200 {object} model.Borrow
// @Failure 400,404,409,500 {object} echo.HTTPError
// @Router /api/v1/borrows/{id}/return [patch]
func (h *Handler) ReturnBorrow(c echo.Context) error {
	borrowID, err := pathID(c, "id")
	if err != nil {
		return err
	}
	borrow, err := h.svc.Return(c.Request().Context(), borrowID)
	if err != nil {
		return h.httpError(err)
	}
	return c.JSON(http.StatusOK, borrow)
}

// Generate godoc
// @Summary Start a recommendation generation run
// @Tags recommendations
// @Produce json
// @Success 202 {object} model.GenerationRun
// @Failure 409,503 {object} echo.HTTPError
// @Router /api/v1/recommendations/generate [post]
func (h *Handler) Generate(c echo.Context) error {
	run, err := h.svc.TriggerGeneration(c.Request().Context())
	if err != nil {
		return h.httpError(err)
	}
	return c.JSON(http.StatusAccepted, run)
}

// GetRuns godoc
// @Summary Recent generation runs, newest first
// @Tags recommendations
// @Produce json
// @Success 200 {array} model.GenerationRun
// @Router /api/v1/recommendations/runs [get]
func (h *Handler) GetRuns(c echo.Context) error {
	runs, err := h.svc.GenerationRuns(c.Request().Context())
	if err != nil {
		return h.httpError(err)
	}
	return c.JSON(http.StatusOK, runs)
}

// GetRun godoc
// @Summary Status of one generation run
// @Tags recommendations
// @Produce json
// @Param runId path string true "run id"
// @Success 200 {object} model.GenerationRun
// @Failure 404 {object} echo.HTTPError
// @Router /api/v1/recommendations/runs/{runId} [get]
func (h *Handler) GetRun(c echo.Context) error {
	run, err := h.svc.GenerationRun(c.Request().Context(), c.Param("runId"))
	if err != nil {
		return h.httpError(err)
	}
	return c.JSON(http.StatusOK, run)
}

// GetActiveBatch godoc
// @Summary The batch currently served
// @Tags recommendations
// @Produce json
// @Success 200 {object} model.Batch
// @Failure 404 {object} echo.HTTPError
// @Router /api/v1/recommendations/active [get]
func (h *Handler) GetActiveBatch(c echo.Context) error {
	batch, err := h.svc.ActiveBatch(c.Request().Context())
	if err != nil {
		return h.httpError(err)
	}
	return c.JSON(http.StatusOK, batch)
}

// GetLatestSummary godoc
// @Summary Summary of the most recently generated batch
// @Tags recommendations
// @Produce json
// @Success 200 {object} model.BatchSummary
// @Router /api/v1/recommendations/latest-summary [get]
func (h *Handler) GetLatestSummary(c echo.Context) error {
	summary, err := h.svc.LatestSummary(c.Request().Context())
	if err != nil {
		return h.httpError(err)
	}
	return c.JSON(http.StatusOK, summary)
}

// GetBatches godoc
// @Summary All stored batches, newest first
// @Tags recommendations
// @Produce json
// @Success 200 {array} model.Batch
// @Router /api/v1/recommendations/batches [get]
func (h *Handler) GetBatches(c echo.Context) error {
	batches, err := h.svc.ListBatches(c.Request().Context())
	if err != nil {
		return h.httpError(err)
	}
	return c.JSON(http.StatusOK, batches)
}

// GetBatch godoc
// @Summary Batch with its cluster sizes and rules
// @Tags recommendations
// @Produce json
// @Param id path int true "batch id"
// @Success 200 {object} model.BatchDetail
// @Failure 400,404 {object} echo.HTTPError
// @Router /api/v1/recommendations/batches/{id} [get]
func (h *Handler) GetBatch(c echo.Context) error {
	batchID, err := pathID(c, "id")
	if err != nil {
		return err
	}
	detail, err := h.svc.GetBatchDetail(c.Request().Context(), batchID)
	if err != nil {
		return h.httpError(err)
	}
	return c.JSON(http.StatusOK, detail)
}

// GetImpactedStudents godoc
// @Summary Students whose borrows match a rule of the batch
// @Tags recommendations
// @Produce json
// @Param id path int true "batch id"
// @Success 200 {array} model.Student
// @Failure 400,404 {object} echo.HTTPError
// @Router /api/v1/recommendations/batches/{id}/students [get]
func (h *Handler) GetImpactedStudents(c echo.Context) error {
	batchID, err := pathID(c, "id")
	if err != nil {
		return err
	}
	students, err := h.svc.ImpactedStudents(c.Request().Context(), batchID)
	if err != nil {
		return h.httpError(err)
	}
	return c.JSON(http.StatusOK, students)
}

// ActivateBatch godoc
// @Summary Make a stored batch the active one
// @Tags recommendations
// @Param id path int true "batch id"
// @Success 204
// @Failure 400,404 {object} echo.HTTPError
// @Router /api/v1/recommendations/batches/{id}/activate [post]
func (h *Handler) ActivateBatch(c echo.Context) error {
	batchID, err := pathID(c, "id")
	if err != nil {
		return err
	}
	if err = h.svc.SetActive(c.Request().Context(), batchID); err != nil {
		return h.httpError(err)
	}
	return c.NoContent(http.StatusNoContent)
}

// DeleteBatch godoc
// @Summary Delete a batch with its assignments and rules
// @Tags recommendations
// @Param id path int true "batch id"
// @Success 204
// @Failure 400,404 {object} echo.HTTPError
// @Router /api/v1/recommendations/batches/{id} [delete]
func (h *Handler) DeleteBatch(c echo.Context) error {
	batchID, err := pathID(c, "id")
	if err != nil {
		return err
	}
	if err = h.svc.DeleteBatch(c.Request().Context(), batchID); err != nil {
		return h.httpError(err)
	}
	return c.NoContent(http.StatusNoContent)
}

// BooksByIDs godoc
// @Summary Resolve book ids
// @Tags books
// @Accept json
// @Produce json
// @Param request body model.IDsRequest true "ids"
// @Success 200 {array} model.Book
// @Failure 400 {object} echo.HTTPError
// @Router /api/v1/books/by-ids [post]
func (h *Handler) BooksByIDs(c echo.Context) error {
	ids, err := bindIDs(c)
	if err != nil {
		return err
	}
	books, err := h.svc.BooksByIDs(c.Request().Context(), ids)
	if err != nil {
		return h.httpError(err)
	}
	return c.JSON(http.StatusOK, books)
}

// StudentsByIDs godoc
// @Summary Resolve student ids
// @Tags students
// @Accept json
// @Produce json
// @Param request body model.IDsRequest true "ids"
// @Success 200 {array} model.Student
// @Failure 400 {object} echo.HTTPError
// @Router /api/v1/students/by-ids [post]
func (h *Handler) StudentsByIDs(c echo.Context) error {
	ids, err := bindIDs(c)
	if err != nil {
		return err
	}
	students, err := h.svc.StudentsByIDs(c.Request().Context(), ids)
	if err != nil {
		return h.httpError(err)
	}
	return c.JSON(http.StatusOK, students)
}

func pathID(c echo.Context, name string) (int, error) {
	id, err := strconv.Atoi(c.Param(name))
	if err != nil || id <= 0 {
		return 0, echo.NewHTTPError(http.StatusBadRequest, name+" is invalid")
	}
	return id, nil
}

func bindIDs(c echo.Context) ([]int, error) {
	var req model.IDsRequest
	if err := c.Bind(&req); err != nil {
		return nil, echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := c.Validate(&req); err != nil {
		return nil, echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return req.IDs, nil
}

func (h *Handler) httpError(err error) error {
	switch {
	case errors.Is(err, errs.ErrInvalidInput):
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	case errors.Is(err, errs.ErrNotFound):
		return echo.NewHTTPError(http.StatusNotFound, err.Error())
	case errors.Is(err, errs.ErrGenerationRunning),
		errors.Is(err, errs.ErrAlreadyBorrowed),
		errors.Is(err, errs.ErrAlreadyReturned),
		errors.Is(err, errs.ErrNoStock),
		errors.Is(err, errs.ErrStudentInactive):
		return echo.NewHTTPError(http.StatusConflict, err.Error())
	case errors.Is(err, errs.ErrGenerationUnavailable):
		return echo.NewHTTPError(http.StatusServiceUnavailable, err.Error())
	case errors.Is(err, errs.ErrCorruptBatch):
		h.log.Error("corrupt recommendation batch", zap.Error(err))
	}
	return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
}
