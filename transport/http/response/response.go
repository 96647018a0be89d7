package response

import (
	"encoding/json"
	"errors"
	"hallbook/shared/constant"
	"hallbook/shared/failure"
	"hallbook/shared/logger"
	"net/http"
)

type Error struct {
	Error string `json:"error" example:"Booking failed: Overlapping time slot"`
}

type Message struct {
	Message string `json:"message" example:"OK"`
}

// WithMessage sends a response with a simple text message
func WithMessage(writer http.ResponseWriter, code int, message string) {
	response(writer, code, Message{Message: message})
}

// WithJSON sends payload as the whole body, without an envelope.
func WithJSON(writer http.ResponseWriter, code int, payload any) {
	response(writer, code, payload)
}

// WithError sends the error message with the code carried by a failure, 500 otherwise.
// Messages of non-failure errors are not exposed.
func WithError(writer http.ResponseWriter, err error) {
	code := failure.GetCode(err)
	message := http.StatusText(code)

	var fail *failure.Failure
	if errors.As(err, &fail) {
		message = fail.Message
	}

	response(writer, code, Error{Error: message})
}

// WithRequestLimitExceeded sends a default response for when the request limit is exceeded
func WithRequestLimitExceeded(writer http.ResponseWriter) {
	WithMessage(writer, http.StatusTooManyRequests, constant.ResponseErrorRequestLimitExceeded)
}

// WithPreparingShutdown sends a default response for when the server is preparing to shut down
func WithPreparingShutdown(writer http.ResponseWriter) {
	WithMessage(writer, http.StatusServiceUnavailable, constant.ResponseErrorPrepareShutdown)
}

// WithUnhealthy sends a default response for when the server is unhealthy
func WithUnhealthy(writer http.ResponseWriter) {
	WithMessage(writer, http.StatusServiceUnavailable, constant.ResponseErrorUnhealthy)
}

func response(writer http.ResponseWriter, code int, payload any) {
	response, err := json.Marshal(payload)
	if err != nil {
		logger.ErrorWithStack(err)
		writer.WriteHeader(http.StatusInternalServerError)

		return
	}

	writer.Header().Set(constant.RequestHeaderContentType, constant.ContentTypeJSON)
	writer.WriteHeader(code)
	_, err = writer.Write(response)

	if err != nil {
		logger.ErrorWithStack(err)
	}
}
