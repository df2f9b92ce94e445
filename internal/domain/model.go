package domain

import "github.com/weiawesome/wes-io-live/hashid-service/internal/codec"

// EncodeRequest represents an encode or batch encode request.
type EncodeRequest struct {
	Numbers []uint64 `json:"numbers" binding:"required"`
}

// DecodeRequest represents a decode request carrying the id in the body,
// for ids whose alphabet is not path-safe.
type DecodeRequest struct {
	ID string `json:"id" binding:"required"`
}

// GenerateSaltRequest represents a salt generation request.
type GenerateSaltRequest struct {
	Size int `form:"size"`
}

// EncodeResponse represents an encoded id.
type EncodeResponse struct {
	Namespace string   `json:"namespace"`
	ID        string   `json:"id"`
	Numbers   []uint64 `json:"numbers"`
}

// EncodeBatchResponse represents one id per requested number.
type EncodeBatchResponse struct {
	Namespace string   `json:"namespace"`
	IDs       []string `json:"ids"`
}

// DecodeResponse represents a decoded id.
type DecodeResponse struct {
	Namespace string   `json:"namespace"`
	ID        string   `json:"id"`
	Numbers   []uint64 `json:"numbers"`
}

// ValidateResponse represents the outcome of validating an id.
type ValidateResponse struct {
	Namespace string `json:"namespace"`
	ID        string `json:"id"`
	Valid     bool   `json:"valid"`
	Reason    string `json:"reason,omitempty"`
}

// ParseResponse represents how an id is put together.
type ParseResponse struct {
	Namespace string   `json:"namespace"`
	ID        string   `json:"id"`
	Numbers   []uint64 `json:"numbers"`
	IDLength  int32    `json:"id_length"`
	Lottery   string   `json:"lottery"`
	Guarded   bool     `json:"guarded"`
	MinLength int32    `json:"min_length"`
}

// GenerateSaltResponse represents a freshly generated salt.
type GenerateSaltResponse struct {
	Salt string `json:"salt"`
}

// NamespacesResponse lists the configured namespaces.
type NamespacesResponse struct {
	Namespaces []string `json:"namespaces"`
}

// NewParseResponse converts a codec.ParseResult to a ParseResponse.
func NewParseResponse(namespace, id string, r *codec.ParseResult) ParseResponse {
	return ParseResponse{
		Namespace: namespace,
		ID:        id,
		Numbers:   r.Numbers,
		IDLength:  r.IDLength,
		Lottery:   r.Lottery,
		Guarded:   r.Guarded,
		MinLength: r.MinLength,
	}
}
