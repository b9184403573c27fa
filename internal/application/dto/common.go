package dto

// ErrorResponse cuerpo de error HTTP.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// DocumentFile documento renderizado listo para descargar.
type DocumentFile struct {
	Filename    string
	ContentType string
	Content     []byte
}
