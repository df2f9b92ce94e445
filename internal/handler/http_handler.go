package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/weiawesome/wes-io-live/hashid-service/internal/codec"
	"github.com/weiawesome/wes-io-live/hashid-service/internal/domain"
	"github.com/weiawesome/wes-io-live/hashid-service/pkg/hashids"
	"github.com/weiawesome/wes-io-live/hashid-service/pkg/log"
	"github.com/weiawesome/wes-io-live/hashid-service/pkg/response"
)

// Handler handles HTTP requests for the hashid service.
type Handler struct {
	namespaces codec.Namespaces
	salts      *codec.SaltGenerator
}

// NewHandler creates a new HTTP handler.
func NewHandler(namespaces codec.Namespaces, salts *codec.SaltGenerator) *Handler {
	return &Handler{
		namespaces: namespaces,
		salts:      salts,
	}
}

// RegisterRoutes registers all routes.
func (h *Handler) RegisterRoutes(r *gin.Engine) {
	api := r.Group("/api/v1")
	{
		api.GET("/namespaces", h.ListNamespaces)
		api.POST("/salts", h.GenerateSalt)

		ns := api.Group("/namespaces/:ns")
		{
			ns.POST("/encode", h.Encode)
			ns.POST("/encode/batch", h.EncodeBatch)
			ns.GET("/decode/:id", h.Decode)
			ns.POST("/decode", h.Decode)
			ns.GET("/validate/:id", h.Validate)
			ns.GET("/parse/:id", h.Parse)
		}
	}
}

// ListNamespaces lists the configured namespaces.
func (h *Handler) ListNamespaces(c *gin.Context) {
	response.Success(c, domain.NamespacesResponse{Namespaces: h.namespaces.Names()})
}

// Encode encodes a list of numbers into one id.
func (h *Handler) Encode(c *gin.Context) {
	cdc, ok := h.codec(c)
	if !ok {
		return
	}

	var req domain.EncodeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	id, err := cdc.Encode(req.Numbers)
	if err != nil {
		h.fail(c, err)
		return
	}

	response.Success(c, domain.EncodeResponse{
		Namespace: c.Param("ns"),
		ID:        id,
		Numbers:   req.Numbers,
	})
}

// EncodeBatch encodes each number into its own id.
func (h *Handler) EncodeBatch(c *gin.Context) {
	cdc, ok := h.codec(c)
	if !ok {
		return
	}

	var req domain.EncodeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	ids, err := cdc.EncodeBatch(req.Numbers)
	if err != nil {
		h.fail(c, err)
		return
	}

	response.Success(c, domain.EncodeBatchResponse{
		Namespace: c.Param("ns"),
		IDs:       ids,
	})
}

// Decode decodes an id taken from the path or, for POST, from the body.
func (h *Handler) Decode(c *gin.Context) {
	cdc, ok := h.codec(c)
	if !ok {
		return
	}

	id := c.Param("id")
	if c.Request.Method == http.MethodPost {
		var req domain.DecodeRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			response.BadRequest(c, err.Error())
			return
		}
		id = req.ID
	}

	numbers, err := cdc.Decode(id)
	if err != nil {
		h.fail(c, err)
		return
	}

	response.Success(c, domain.DecodeResponse{
		Namespace: c.Param("ns"),
		ID:        id,
		Numbers:   numbers,
	})
}

// Validate reports whether an id belongs to the namespace.
func (h *Handler) Validate(c *gin.Context) {
	cdc, ok := h.codec(c)
	if !ok {
		return
	}

	id := c.Param("id")
	valid, reason := cdc.Validate(id)

	response.Success(c, domain.ValidateResponse{
		Namespace: c.Param("ns"),
		ID:        id,
		Valid:     valid,
		Reason:    reason,
	})
}

// Parse describes how an id is put together.
func (h *Handler) Parse(c *gin.Context) {
	cdc, ok := h.codec(c)
	if !ok {
		return
	}

	id := c.Param("id")
	result, err := cdc.Parse(id)
	if err != nil {
		h.fail(c, err)
		return
	}

	response.Success(c, domain.NewParseResponse(c.Param("ns"), id, result))
}

// GenerateSalt returns a random salt for a new namespace.
func (h *Handler) GenerateSalt(c *gin.Context) {
	var req domain.GenerateSaltRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	salt, err := h.salts.Generate(req.Size)
	if err != nil {
		h.fail(c, err)
		return
	}

	response.Success(c, domain.GenerateSaltResponse{Salt: salt})
}

func (h *Handler) codec(c *gin.Context) (codec.Codec, bool) {
	cdc, err := h.namespaces.Lookup(c.Param("ns"))
	if err != nil {
		h.fail(c, err)
		return nil, false
	}
	return cdc, true
}

// fail maps err to an error response.
func (h *Handler) fail(c *gin.Context, err error) {
	_ = c.Error(err)

	switch {
	case errors.Is(err, codec.ErrUnknownNamespace):
		response.NotFound(c, response.CodeNamespaceNotFound, err.Error())
	case errors.Is(err, hashids.ErrEmptyInput):
		response.Error(c, http.StatusBadRequest, response.CodeEmptyInput, err.Error())
	case hashids.IsDecodeError(err):
		response.InvalidID(c, err.Error())
	case hashids.IsEncodeError(err), errors.Is(err, codec.ErrBatchSize), errors.Is(err, codec.ErrSaltSize):
		response.BadRequest(c, err.Error())
	default:
		l := log.Ctx(c.Request.Context())
		l.Error().Err(err).Str(log.FieldNamespace, c.Param("ns")).Msg("request failed")
		response.InternalError(c, "internal error")
	}
}
