package handlers

import (
	"fmt"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/policyzen/policyzen_app/internal/core/domain"
	portssvc "github.com/policyzen/policyzen_app/internal/core/ports/services"
	"github.com/policyzen/policyzen_app/internal/dto"
	"github.com/policyzen/policyzen_app/internal/middleware"
)

// documentHandler handles HTTP requests over stored documents.
type documentHandler struct {
	documentService portssvc.DocumentSvcFacade
}

func newDocumentHandler(ds portssvc.DocumentSvcFacade) *documentHandler {
	return &documentHandler{documentService: ds}
}

// registerDocumentRoutes registers routes related to documents.
func registerDocumentRoutes(rg *gin.RouterGroup, documentService portssvc.DocumentSvcFacade) {
	h := newDocumentHandler(documentService)

	documents := rg.Group("/documents")
	{
		documents.POST("", h.uploadDocument)
		documents.GET("", h.listDocumentsByOwner)
		documents.GET("/:document_id", h.getDocument)
		documents.GET("/:document_id/download", h.downloadDocument)
		documents.DELETE("/:document_id", h.deleteDocument)
	}
}

// uploadDocument godoc
// @Summary Upload a document for a policy or endorsement
// @Tags documents
// @Accept  multipart/form-data
// @Produce  json
// @Param   ownerType formData string true "Owner type (POLICY or ENDORSEMENT)"
// @Param   ownerId formData string true "Owner ID"
// @Param   documentType formData string false "Document type"
// @Param   file formData file true "File contents"
// @Success 201 {object} dto.DocumentResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Security BearerAuth
// @Router /documents [post]
func (h *documentHandler) uploadDocument(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	ownerType := domain.DocumentOwnerType(c.PostForm("ownerType"))
	if ownerType != domain.DocumentOwnerPolicy && ownerType != domain.DocumentOwnerEndorsement {
		c.JSON(http.StatusBadRequest, gin.H{"error": "ownerType must be POLICY or ENDORSEMENT"})
		return
	}
	ownerID := c.PostForm("ownerId")
	if ownerID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "ownerId is required"})
		return
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "file is required"})
		return
	}
	file, err := fileHeader.Open()
	if err != nil {
		respondError(c, logger, err, "Failed to read uploaded file")
		return
	}
	defer file.Close()

	documentType := c.DefaultPostForm("documentType", domain.DocTypeSupporting)

	doc := domain.Document{
		OwnerType:    ownerType,
		OwnerID:      ownerID,
		Name:         fileHeader.Filename,
		FileType:     fileHeader.Header.Get("Content-Type"),
		FileSize:     fileHeader.Size,
		DocumentType: documentType,
		UploadedBy:   userID,
	}
	saved, err := h.documentService.StoreDocument(c.Request.Context(), doc, file)
	if err != nil {
		respondError(c, logger, err, "Failed to store document")
		return
	}
	c.JSON(http.StatusCreated, dto.ToDocumentResponse(saved))
}

// listDocumentsByOwner godoc
// @Summary List the documents attached to a policy or endorsement
// @Tags documents
// @Produce  json
// @Param   ownerType query string true "Owner type (POLICY or ENDORSEMENT)"
// @Param   ownerId query string true "Owner ID"
// @Success 200 {array} dto.DocumentResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Security BearerAuth
// @Router /documents [get]
func (h *documentHandler) listDocumentsByOwner(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	ownerType := domain.DocumentOwnerType(c.Query("ownerType"))
	if ownerType != domain.DocumentOwnerPolicy && ownerType != domain.DocumentOwnerEndorsement {
		c.JSON(http.StatusBadRequest, gin.H{"error": "ownerType must be POLICY or ENDORSEMENT"})
		return
	}
	ownerID := c.Query("ownerId")
	if ownerID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "ownerId is required"})
		return
	}

	documents, err := h.documentService.ListDocumentsByOwner(c.Request.Context(), ownerType, ownerID)
	if err != nil {
		respondError(c, logger, err, "Failed to list documents")
		return
	}
	c.JSON(http.StatusOK, dto.ToDocumentResponses(documents))
}

// getDocument godoc
// @Summary Get document metadata by ID
// @Tags documents
// @Produce  json
// @Param   document_id path string true "Document ID"
// @Success 200 {object} dto.DocumentResponse
// @Failure 404 {object} map[string]string "Document not found"
// @Security BearerAuth
// @Router /documents/{document_id} [get]
func (h *documentHandler) getDocument(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	doc, err := h.documentService.GetDocumentByID(c.Request.Context(), c.Param("document_id"))
	if err != nil {
		respondError(c, logger, err, "Failed to load document")
		return
	}
	c.JSON(http.StatusOK, dto.ToDocumentResponse(doc))
}

// downloadDocument godoc
// @Summary Download the stored file for a document
// @Tags documents
// @Produce  application/octet-stream
// @Param   document_id path string true "Document ID"
// @Success 200 {file} binary "File contents"
// @Failure 404 {object} map[string]string "Document not found"
// @Security BearerAuth
// @Router /documents/{document_id}/download [get]
func (h *documentHandler) downloadDocument(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	doc, contents, err := h.documentService.OpenDocument(c.Request.Context(), c.Param("document_id"))
	if err != nil {
		respondError(c, logger, err, "Failed to open document")
		return
	}
	defer contents.Close()

	contentType := doc.FileType
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", doc.Name))
	c.Header("Content-Type", contentType)
	if doc.FileSize > 0 {
		c.Header("Content-Length", fmt.Sprintf("%d", doc.FileSize))
	}
	c.Status(http.StatusOK)
	if _, err := io.Copy(c.Writer, contents); err != nil {
		logger.Warn("Streaming document interrupted", "documentID", doc.DocumentID, "error", err.Error())
	}
}

// deleteDocument godoc
// @Summary Delete a document and its stored file
// @Tags documents
// @Param   document_id path string true "Document ID"
// @Success 204 "Deleted"
// @Failure 404 {object} map[string]string "Document not found"
// @Security BearerAuth
// @Router /documents/{document_id} [delete]
func (h *documentHandler) deleteDocument(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	if err := h.documentService.DeleteDocument(c.Request.Context(), c.Param("document_id"), userID); err != nil {
		respondError(c, logger, err, "Failed to delete document")
		return
	}
	c.Status(http.StatusNoContent)
}
