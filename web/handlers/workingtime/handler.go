package workingtime

import (
	"errors"
	"net/http"
	"strconv"

	"alyf.de/workingtime/core"
	"alyf.de/workingtime/core/models"
	web "alyf.de/workingtime/web/common"
	wt "alyf.de/workingtime/workingtime/core"
	"alyf.de/workingtime/workingtime/model"
	"github.com/gin-gonic/gin"
)

type Endpoint struct {
	base web.Handler
	jira wt.IssueSummarizer
}

func Register(r *gin.RouterGroup, dm *core.DatabaseManager, jira wt.IssueSummarizer) {
	endpoint := &Endpoint{base: web.Handler{Dm: dm}, jira: jira}
	r.POST("/working-times", endpoint.Create)
	r.GET("/working-times", endpoint.List)
	r.GET("/working-times/:id", endpoint.Get)
	r.PUT("/working-times/:id", endpoint.Update)
	r.POST("/working-times/:id/submit", endpoint.Submit)
}

func (ep *Endpoint) Create(c *gin.Context) {
	var dto WorkingTimeDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		c.JSON(http.StatusBadRequest, web.NewErrorResponse(web.FormatBindingError(err)))
		return
	}

	db, conn, err := ep.base.GetDB(c)
	if err != nil {
		c.JSON(http.StatusInternalServerError, web.NewErrorResponse(err.Error()))
		return
	}
	defer conn.Close()

	doc := dto.ToModel()
	if err := wt.SaveWorkingTime(db, doc); err != nil {
		if errors.Is(err, wt.ErrNonContinuous) {
			c.JSON(http.StatusUnprocessableEntity, web.NewErrorResponse(err.Error()))
			return
		}
		c.JSON(http.StatusInternalServerError, web.NewErrorResponse(err.Error()))
		return
	}

	c.JSON(http.StatusOK, web.NewSuccessResponse(NewWorkingTimeResponse(doc)))
}

// List returns working time documents without their logs, newest first.
// Optional filters: employeeId, from and to (dates, inclusive).
func (ep *Endpoint) List(c *gin.Context) {
	db, conn, err := ep.base.GetDB(c)
	if err != nil {
		c.JSON(http.StatusInternalServerError, web.NewErrorResponse(err.Error()))
		return
	}
	defer conn.Close()

	query := db.Model(&model.WorkingTime{})

	if employeeID := c.Query("employeeId"); employeeID != "" {
		id, err := strconv.Atoi(employeeID)
		if err != nil {
			c.JSON(http.StatusBadRequest, web.NewErrorResponse("Invalid employeeId"))
			return
		}
		query = query.Where("employee_id = ?", id)
	}
	if from := c.Query("from"); from != "" {
		query = query.Where("date >= ?", from)
	}
	if to := c.Query("to"); to != "" {
		query = query.Where("date <= ?", to)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		c.JSON(http.StatusInternalServerError, web.NewErrorResponse(err.Error()))
		return
	}

	limit := 100
	if l, err := strconv.Atoi(c.Query("limit")); err == nil && l > 0 && l <= 1000 {
		limit = l
	}
	offset, _ := strconv.Atoi(c.Query("offset"))

	var docs []model.WorkingTime
	err = query.
		Order("date DESC").
		Limit(limit).
		Offset(offset).
		Find(&docs).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, web.NewErrorResponse(err.Error()))
		return
	}

	items := make([]WorkingTimeResponse, 0, len(docs))
	for i := range docs {
		items = append(items, NewWorkingTimeResponse(&docs[i]))
	}

	c.JSON(http.StatusOK, web.NewSearchResponse(items, total))
}

func (ep *Endpoint) Get(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, web.NewErrorResponse("Invalid id"))
		return
	}

	db, conn, err := ep.base.GetDB(c)
	if err != nil {
		c.JSON(http.StatusInternalServerError, web.NewErrorResponse(err.Error()))
		return
	}
	defer conn.Close()

	doc, err := wt.LoadWorkingTime(db, int32(id))
	if err != nil {
		c.JSON(http.StatusNotFound, web.NewErrorResponse("Working time not found"))
		return
	}

	c.JSON(http.StatusOK, web.NewSuccessResponse(NewWorkingTimeResponse(doc)))
}

func (ep *Endpoint) Update(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, web.NewErrorResponse("Invalid id"))
		return
	}

	var dto WorkingTimeDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		c.JSON(http.StatusBadRequest, web.NewErrorResponse(web.FormatBindingError(err)))
		return
	}

	db, conn, err := ep.base.GetDB(c)
	if err != nil {
		c.JSON(http.StatusInternalServerError, web.NewErrorResponse(err.Error()))
		return
	}
	defer conn.Close()

	doc, err := wt.LoadWorkingTime(db, int32(id))
	if err != nil {
		c.JSON(http.StatusNotFound, web.NewErrorResponse("Working time not found"))
		return
	}
	if doc.DocStatus != models.DocStatusDraft {
		c.JSON(http.StatusConflict, web.NewErrorResponse("Only draft working times can be edited"))
		return
	}

	updated := dto.ToModel()
	updated.ID = doc.ID
	updated.Name = doc.Name

	if err := wt.SaveWorkingTime(db, updated); err != nil {
		if errors.Is(err, wt.ErrNonContinuous) {
			c.JSON(http.StatusUnprocessableEntity, web.NewErrorResponse(err.Error()))
			return
		}
		c.JSON(http.StatusInternalServerError, web.NewErrorResponse(err.Error()))
		return
	}

	c.JSON(http.StatusOK, web.NewSuccessResponse(NewWorkingTimeResponse(updated)))
}

func (ep *Endpoint) Submit(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, web.NewErrorResponse("Invalid id"))
		return
	}

	db, conn, err := ep.base.GetDB(c)
	if err != nil {
		c.JSON(http.StatusInternalServerError, web.NewErrorResponse(err.Error()))
		return
	}
	defer conn.Close()

	doc, err := wt.LoadWorkingTime(db, int32(id))
	if err != nil {
		c.JSON(http.StatusNotFound, web.NewErrorResponse("Working time not found"))
		return
	}

	if err := wt.SubmitWorkingTime(db, ep.jira, doc); err != nil {
		switch {
		case errors.Is(err, wt.ErrNonContinuous):
			c.JSON(http.StatusUnprocessableEntity, web.NewErrorResponse(err.Error()))
		case errors.Is(err, wt.ErrNotDraft):
			c.JSON(http.StatusConflict, web.NewErrorResponse(err.Error()))
		default:
			c.JSON(http.StatusInternalServerError, web.NewErrorResponse(err.Error()))
		}
		return
	}

	c.JSON(http.StatusOK, web.NewSuccessResponse(NewWorkingTimeResponse(doc)))
}
