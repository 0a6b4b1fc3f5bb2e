// Package response writes JSON bodies for the REST handlers.
package response

import (
	"encoding/json"
	"errors"
	"net/http"

	"trackit/internal/gateway/graphql"
	"trackit/internal/handlers/rest/dto"
)

const upstreamUnavailable = "package service unavailable"

func JSON(w http.ResponseWriter, status int, body any) error {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	return json.NewEncoder(w).Encode(body)
}

func Error(w http.ResponseWriter, status int, message string) error {
	return JSON(w, status, dto.Error{Error: message})
}

// Upstream answers 502 carrying the GraphQL server's own message when there is one.
func Upstream(w http.ResponseWriter, err error) error {
	return Error(w, http.StatusBadGateway, UpstreamMessage(err))
}

func UpstreamMessage(err error) string {
	var gqlErr *graphql.Error
	if errors.As(err, &gqlErr) {
		return gqlErr.Error()
	}
	return upstreamUnavailable
}
