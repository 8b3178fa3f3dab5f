package constvars

import "net/http"

const (
	HeaderContentType   = "Content-Type"
	HeaderAuthorization = "Authorization"
	HeaderXRequestID    = "X-Request-ID"

	MIMEApplicationJSON = "application/json"
	MIMEApplicationPDF  = "application/pdf"
)

const (
	StatusOK                  = http.StatusOK
	StatusCreated             = http.StatusCreated
	StatusBadRequest          = http.StatusBadRequest
	StatusUnauthorized        = http.StatusUnauthorized
	StatusForbidden           = http.StatusForbidden
	StatusNotFound            = http.StatusNotFound
	StatusGone                = http.StatusGone
	StatusInternalServerError = http.StatusInternalServerError
	StatusGatewayTimeout      = http.StatusGatewayTimeout
)
