package handler

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/docintegrator/doc-service/internal/document/query"
	"github.com/docintegrator/doc-service/internal/document/service"
)

// RegisterDocumentRoutes mounts the document CRUD API on the engine. Any
// guards (auth, rate limiting) are applied to the mutating routes only;
// reads stay open.
func RegisterDocumentRoutes(r *gin.Engine, svc service.Service, guards ...gin.HandlerFunc) {
	docs := r.Group("/api/documents")

	docs.GET("", func(c *gin.Context) {
		spec, err := bindSpec(c)
		if err != nil {
			writeError(c, err)
			return
		}
		page, err := svc.List(c.Request.Context(), spec)
		if err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, page)
	})

	docs.GET("/:id", func(c *gin.Context) {
		d, err := svc.Get(c.Request.Context(), c.Param("id"))
		if err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, d)
	})

	write := docs.Group("", guards...)

	write.POST("", func(c *gin.Context) {
		var in service.Input
		if err := c.ShouldBindJSON(&in); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		d, err := svc.Create(c.Request.Context(), in)
		if err != nil {
			writeError(c, err)
			return
		}
		c.Header("Location", "/api/documents/"+d.ID)
		c.JSON(http.StatusCreated, d)
	})

	write.PUT("/:id", func(c *gin.Context) {
		var in service.Input
		if err := c.ShouldBindJSON(&in); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		d, err := svc.Update(c.Request.Context(), c.Param("id"), in)
		if err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, d)
	})

	write.DELETE("/:id", func(c *gin.Context) {
		if err := svc.Delete(c.Request.Context(), c.Param("id")); err != nil {
			writeError(c, err)
			return
		}
		c.Status(http.StatusNoContent)
	})
}

// bindSpec parses the list-query parameters. Date parameters accept
// ISO-8601 timestamps or plain dates; createdTo names a calendar day that is
// included in full.
func bindSpec(c *gin.Context) (query.Spec, error) {
	spec := query.Spec{
		Status:           c.Query("status"),
		TitleContains:    c.Query("titleContains"),
		SortBy:           c.Query("sortBy"),
		SortDir:          c.Query("sortDir"),
		SecondarySort:    c.Query("secondarySort"),
		SecondarySortDir: c.Query("secondarySortOrder"),
	}

	ve := &bindError{}
	spec.CreatedFrom = parseDate(c.Query("createdFrom"), "createdFrom", ve)
	spec.CreatedTo = parseDate(c.Query("createdTo"), "createdTo", ve)
	spec.Page = parseInt(c.Query("page"), "page", ve)
	spec.PageSize = parseInt(c.Query("pageSize"), "pageSize", ve)

	if len(ve.fields) > 0 {
		return spec, ve
	}
	return spec, nil
}

type bindError struct {
	fields map[string][]string
}

func (e *bindError) Error() string { return "malformed query parameters" }

func (e *bindError) add(field, msg string) {
	if e.fields == nil {
		e.fields = map[string][]string{}
	}
	e.fields[field] = append(e.fields[field], msg)
}

func parseDate(raw, field string, ve *bindError) *time.Time {
	if raw == "" {
		return nil
	}
	for _, layout := range []string{time.RFC3339, "2006-01-02"} {
		if t, err := time.Parse(layout, raw); err == nil {
			return &t
		}
	}
	ve.add(field, field+" must be an ISO-8601 date or timestamp")
	return nil
}

func parseInt(raw, field string, ve *bindError) int {
	if raw == "" {
		return 0
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		ve.add(field, field+" must be an integer")
		return 0
	}
	return n
}

// writeError translates the error taxonomy to HTTP: per-field validation
// reports become 400, missing documents 404, anything else an opaque 500.
func writeError(c *gin.Context, err error) {
	var be *bindError
	if errors.As(err, &be) {
		c.JSON(http.StatusBadRequest, gin.H{
			"title":  "Validation Failed",
			"status": http.StatusBadRequest,
			"errors": be.fields,
		})
		return
	}
	var ve *service.ValidationError
	if errors.As(err, &ve) {
		c.JSON(http.StatusBadRequest, gin.H{
			"title":  "Validation Failed",
			"status": http.StatusBadRequest,
			"errors": ve.Fields,
		})
		return
	}
	if errors.Is(err, service.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{
			"title":  "Not Found",
			"status": http.StatusNotFound,
			"detail": "document not found",
		})
		return
	}
	c.JSON(http.StatusInternalServerError, gin.H{
		"title":  "Internal Server Error",
		"status": http.StatusInternalServerError,
	})
}
