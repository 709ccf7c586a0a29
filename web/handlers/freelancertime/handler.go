package freelancertime

import (
	"errors"
	"net/http"
	"strconv"

	"alyf.de/workingtime/core"
	"alyf.de/workingtime/core/models"
	web "alyf.de/workingtime/web/common"
	wt "alyf.de/workingtime/workingtime/core"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

type Endpoint struct {
	base web.Handler
	jira wt.IssueSummarizer
}

func Register(r *gin.RouterGroup, dm *core.DatabaseManager, jira wt.IssueSummarizer) {
	endpoint := &Endpoint{base: web.Handler{Dm: dm}, jira: jira}
	r.POST("/freelancer-times", endpoint.Create)
	r.GET("/freelancer-times/:id", endpoint.Get)
	r.PUT("/freelancer-times/:id", endpoint.Update)
	r.POST("/freelancer-times/:id/submit", endpoint.Submit)
	r.POST("/freelancer-times/:id/cancel", endpoint.Cancel)
}

// userFromClaims reads the authenticated login from the JWT claims set by
// the auth middleware.
func userFromClaims(c *gin.Context) string {
	v, ok := c.Get("claims")
	if !ok {
		return ""
	}
	claims, ok := v.(jwt.MapClaims)
	if !ok {
		return ""
	}
	if email, ok := claims["email"].(string); ok && email != "" {
		return email
	}
	if name, ok := claims["unique_name"].(string); ok {
		return name
	}
	return ""
}

func (ep *Endpoint) Create(c *gin.Context) {
	var dto FreelancerTimeDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		c.JSON(http.StatusBadRequest, web.NewErrorResponse(web.FormatBindingError(err)))
		return
	}

	if dto.User == "" {
		dto.User = userFromClaims(c)
	}
	if dto.User == "" {
		c.JSON(http.StatusBadRequest, web.NewErrorResponse("Field 'user' is required"))
		return
	}

	db, conn, err := ep.base.GetDB(c)
	if err != nil {
		c.JSON(http.StatusInternalServerError, web.NewErrorResponse(err.Error()))
		return
	}
	defer conn.Close()

	doc := dto.ToModel()
	if err := wt.SaveFreelancerTime(db, doc); err != nil {
		c.JSON(http.StatusInternalServerError, web.NewErrorResponse(err.Error()))
		return
	}

	c.JSON(http.StatusOK, web.NewSuccessResponse(NewFreelancerTimeResponse(doc)))
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

	doc, err := wt.LoadFreelancerTime(db, int32(id))
	if err != nil {
		c.JSON(http.StatusNotFound, web.NewErrorResponse("Freelancer time not found"))
		return
	}

	c.JSON(http.StatusOK, web.NewSuccessResponse(NewFreelancerTimeResponse(doc)))
}

func (ep *Endpoint) Update(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, web.NewErrorResponse("Invalid id"))
		return
	}

	var dto FreelancerTimeDTO
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

	doc, err := wt.LoadFreelancerTime(db, int32(id))
	if err != nil {
		c.JSON(http.StatusNotFound, web.NewErrorResponse("Freelancer time not found"))
		return
	}
	if doc.DocStatus != models.DocStatusDraft {
		c.JSON(http.StatusConflict, web.NewErrorResponse("Only draft freelancer times can be edited"))
		return
	}

	updated := dto.ToModel()
	updated.ID = doc.ID
	updated.Name = doc.Name
	if updated.User == "" {
		updated.User = doc.User
	}

	if err := wt.SaveFreelancerTime(db, updated); err != nil {
		c.JSON(http.StatusInternalServerError, web.NewErrorResponse(err.Error()))
		return
	}

	c.JSON(http.StatusOK, web.NewSuccessResponse(NewFreelancerTimeResponse(updated)))
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

	doc, err := wt.LoadFreelancerTime(db, int32(id))
	if err != nil {
		c.JSON(http.StatusNotFound, web.NewErrorResponse("Freelancer time not found"))
		return
	}

	if err := wt.SubmitFreelancerTime(db, ep.jira, doc); err != nil {
		switch {
		case errors.Is(err, wt.ErrNotDraft):
			c.JSON(http.StatusConflict, web.NewErrorResponse(err.Error()))
		case errors.Is(err, wt.ErrMissingLogDate):
			c.JSON(http.StatusUnprocessableEntity, web.NewErrorResponse(err.Error()))
		default:
			c.JSON(http.StatusInternalServerError, web.NewErrorResponse(err.Error()))
		}
		return
	}

	c.JSON(http.StatusOK, web.NewSuccessResponse(NewFreelancerTimeResponse(doc)))
}

func (ep *Endpoint) Cancel(c *gin.Context) {
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

	doc, err := wt.LoadFreelancerTime(db, int32(id))
	if err != nil {
		c.JSON(http.StatusNotFound, web.NewErrorResponse("Freelancer time not found"))
		return
	}

	if err := wt.CancelFreelancerTime(db, doc); err != nil {
		if errors.Is(err, wt.ErrNotSubmitted) {
			c.JSON(http.StatusConflict, web.NewErrorResponse(err.Error()))
			return
		}
		c.JSON(http.StatusInternalServerError, web.NewErrorResponse(err.Error()))
		return
	}

	c.JSON(http.StatusOK, web.NewSuccessResponse(NewFreelancerTimeResponse(doc)))
}
