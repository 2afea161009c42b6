package dto

// ErrorResponse cuerpo de error HTTP.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// ValidationErrorDTO detalle de un campo rechazado por la validación.
type ValidationErrorDTO struct {
	Field   string `json:"field"`
	Tag     string `json:"tag"`
	Message string `json:"message"`
}

// ValidationErrorResponse cuerpo de error 400 con el detalle por campo.
type ValidationErrorResponse struct {
	Code    string               `json:"code"`
	Message string               `json:"message"`
	Fields  []ValidationErrorDTO `json:"fields"`
}
