package dto

// ErrorResponse cuerpo de error HTTP de los endpoints propios.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// ProxyErrorResponse cuerpo de error de los endpoints de paso directo al API
// externo. La forma {error, details?} es estable, independiente de la causa.
type ProxyErrorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

// PageResponse metadatos de página en listados.
type PageResponse struct {
	Page       int `json:"page"`
	PageSize   int `json:"page_size"`
	TotalPages int `json:"total_pages"`
	TotalItems int `json:"total_items"`
}
