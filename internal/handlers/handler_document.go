package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/srikanth1998/aec-flow-project-hub-sub001/internal/core/domain"
	portssvc "github.com/srikanth1998/aec-flow-project-hub-sub001/internal/core/ports/services"
	"github.com/srikanth1998/aec-flow-project-hub-sub001/internal/dto"
)

// documentHandler handles uploads, listings and downloads of project files.
type documentHandler struct {
	documentService portssvc.DocumentSvcFacade
}

func newDocumentHandler(ds portssvc.DocumentSvcFacade) *documentHandler {
	return &documentHandler{documentService: ds}
}

// registerProjectDocumentRoutes registers the document collection routes
// nested under a specific project group. Uploads are multipart.
func registerProjectDocumentRoutes(projectGroup *gin.RouterGroup, documentService portssvc.DocumentSvcFacade) {
	h := newDocumentHandler(documentService)

	documents := projectGroup.Group("/documents")
	{
		documents.POST("", h.uploadDocument)
		documents.GET("", h.listDocuments)
	}
}

// registerDocumentRoutes registers routes addressed by document ID.
func registerDocumentRoutes(rg *gin.RouterGroup, documentService portssvc.DocumentSvcFacade) {
	h := newDocumentHandler(documentService)

	documentSpecific := rg.Group("/documents/:document_id")
	{
		documentSpecific.GET("", h.getDocument)
		documentSpecific.GET("/download", h.getDownloadURL)
		documentSpecific.DELETE("", h.deleteDocument)
	}
}

// documentKindFromString validates the kind form/query value, defaulting to
// the generic documents bucket when absent.
func documentKindFromString(s string) (domain.DocumentKind, bool) {
	switch domain.DocumentKind(s) {
	case domain.KindDocument, domain.KindDrawing, domain.KindReceipt, domain.KindProposal:
		return domain.DocumentKind(s), true
	case "":
		return domain.KindDocument, true
	default:
		return "", false
	}
}

// uploadDocument accepts a multipart form with a "file" part and an optional
// "kind" field (documents, drawings, receipts or proposals).
func (h *documentHandler) uploadDocument(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "multipart 'file' field is required"})
		return
	}

	kind, ok := documentKindFromString(c.PostForm("kind"))
	if !ok {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid document kind"})
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "unable to read uploaded file"})
		return
	}
	defer file.Close()

	document, err := h.documentService.UploadDocument(c.Request.Context(), userID, portssvc.DocumentUpload{
		ProjectID:   c.Param("project_id"),
		Kind:        kind,
		FileName:    fileHeader.Filename,
		ContentType: fileHeader.Header.Get("Content-Type"),
		Size:        fileHeader.Size,
		Body:        file,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToDocumentResponse(document, ""))
}

// listDocuments returns a project's file rows, optionally filtered by ?kind=.
func (h *documentHandler) listDocuments(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	kind, ok := documentKindFromString(c.Query("kind"))
	if !ok {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid document kind"})
		return
	}

	documents, err := h.documentService.ListDocumentsByProject(c.Request.Context(), userID, c.Param("project_id"), kind)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToListDocumentsResponse(documents))
}

// getDocument returns document metadata together with a presigned download URL.
func (h *documentHandler) getDocument(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	documentID := c.Param("document_id")
	document, err := h.documentService.GetDocumentByID(c.Request.Context(), userID, documentID)
	if err != nil {
		respondError(c, err)
		return
	}

	url, err := h.documentService.GetDownloadURL(c.Request.Context(), userID, documentID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToDocumentResponse(document, url))
}

// getDownloadURL returns only the presigned URL for the stored object.
func (h *documentHandler) getDownloadURL(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	url, err := h.documentService.GetDownloadURL(c.Request.Context(), userID, c.Param("document_id"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"url": url})
}

func (h *documentHandler) deleteDocument(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	if err := h.documentService.DeleteDocument(c.Request.Context(), userID, c.Param("document_id")); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
