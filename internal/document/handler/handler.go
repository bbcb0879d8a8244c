package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/dmdev/docmanager/internal/document"
	"github.com/dmdev/docmanager/internal/document/service"
	"github.com/gin-gonic/gin"
)

func RegisterDocumentRoutes(r gin.IRouter, svc service.Service) {
	h := &documentHandler{svc: svc}
	r.GET("/api/documents", h.list)
	r.POST("/api/documents", h.create)
	r.POST("/api/documents/search", h.search)
	r.GET("/api/documents/:id", h.get)
	r.PUT("/api/documents/:id", h.put)
	r.DELETE("/api/documents/:id", h.delete)
}

type documentHandler struct {
	svc service.Service
}

// create saves the body as-is: an id in the body upserts, no id creates.
func (h *documentHandler) create(c *gin.Context) {
	var d document.Document
	if err := c.ShouldBindJSON(&d); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	status := http.StatusOK
	if d.IsNew() {
		status = http.StatusCreated
	}
	h.save(c, &d, status)
}

func (h *documentHandler) put(c *gin.Context) {
	var d document.Document
	if err := c.ShouldBindJSON(&d); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	d.ID = c.Param("id")
	h.save(c, &d, http.StatusOK)
}

func (h *documentHandler) save(c *gin.Context, d *document.Document, status int) {
	if d.Created.IsZero() {
		d.Created = time.Now().UTC()
	}
	saved, err := h.svc.Save(c.Request.Context(), d)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(status, saved)
}

func (h *documentHandler) get(c *gin.Context) {
	d, err := h.svc.FindByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, d)
}

func (h *documentHandler) delete(c *gin.Context) {
	if err := h.svc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *documentHandler) search(c *gin.Context) {
	var req document.SearchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	h.respondSearch(c, req)
}

// list is the query-string form of search:
// ?titlePrefix=..&contains=..&authorId=.. (each repeatable) &createdFrom=..&createdTo=.. (RFC3339)
func (h *documentHandler) list(c *gin.Context) {
	req := document.SearchRequest{
		TitlePrefixes:    c.QueryArray("titlePrefix"),
		ContainsContents: c.QueryArray("contains"),
		AuthorIDs:        c.QueryArray("authorId"),
	}
	var err error
	if req.CreatedFrom, err = queryTime(c, "createdFrom"); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.CreatedTo, err = queryTime(c, "createdTo"); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	h.respondSearch(c, req)
}

func (h *documentHandler) respondSearch(c *gin.Context, req document.SearchRequest) {
	list, err := h.svc.Search(c.Request.Context(), req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, list)
}

func queryTime(c *gin.Context, key string) (*time.Time, error) {
	v := c.Query(key)
	if v == "" {
		return nil, nil
	}
	t, err := time.Parse(time.RFC3339, v)
	if err != nil {
		return nil, errors.New("invalid " + key + ": expected RFC3339 timestamp")
	}
	return &t, nil
}

func writeError(c *gin.Context, err error) {
	if errors.Is(err, service.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
		return
	}
	c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
}
