// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package respond writes every HTTP body the shop API produces.

Successes are wrapped as {"data": ...}, paginated lists add a "meta" block, and
failures become {"message", "code", "details"} built from an [apperr.AppError].
Anything that is not an AppError is reported as a 500 with a generic message;
the underlying error only reaches the server log.
*/
package respond

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/taibuivan/microcctv/internal/platform/apperr"
	"github.com/taibuivan/microcctv/internal/platform/ctxutil"
	"github.com/taibuivan/microcctv/pkg/pagination"
)

// SuccessEnvelope wraps a single resource or an unpaginated list.
type SuccessEnvelope struct {
	Data any `json:"data"`
}

// PaginatedEnvelope wraps one page of a list.
type PaginatedEnvelope struct {
	Data any             `json:"data"`
	Meta pagination.Meta `json:"meta"`
}

// ErrorEnvelope is the body of every failed request.
type ErrorEnvelope struct {
	Message string              `json:"message"`
	Code    string              `json:"code"`
	Details []apperr.FieldError `json:"details,omitempty"`
}

// JSON encodes payload with the given status.
func JSON(writer http.ResponseWriter, status int, payload any) {
	writer.Header().Set("Content-Type", "application/json; charset=utf-8")
	writer.WriteHeader(status)
	_ = json.NewEncoder(writer).Encode(payload)
}

// OK writes 200 with data.
func OK(writer http.ResponseWriter, data any) {
	JSON(writer, http.StatusOK, SuccessEnvelope{Data: data})
}

// Created writes 201 with the stored resource, e.g. a freshly placed order.
func Created(writer http.ResponseWriter, data any) {
	JSON(writer, http.StatusCreated, SuccessEnvelope{Data: data})
}

// Message writes 200 with {"data": {"message": message}} for actions that
// have nothing to return, such as "OTP sent" or "Cart cleared".
func Message(writer http.ResponseWriter, message string) {
	OK(writer, map[string]string{"message": message})
}

// Paginated writes 200 with one page and its metadata.
func Paginated(writer http.ResponseWriter, data any, meta pagination.Meta) {
	JSON(writer, http.StatusOK, PaginatedEnvelope{Data: data, Meta: meta})
}

/*
Error maps err onto the error taxonomy and writes it.

Server-side failures are logged with the request id and, when known, the
caller's user id. Client errors (4xx) are not logged here; the access log line
already records their status.
*/
func Error(writer http.ResponseWriter, request *http.Request, err error) {
	appError := apperr.As(err)
	known := appError != nil
	if !known {
		appError = apperr.Internal(err)
	}

	if appError.HTTPStatus >= http.StatusInternalServerError {
		context := request.Context()
		attrs := []any{
			slog.String("code", appError.Code),
			slog.String("request_id", ctxutil.GetRequestID(context)),
			slog.Bool("mapped", known),
			slog.Any("cause", appError.Cause),
		}
		if claims := ctxutil.GetAuthUser(context); claims != nil {
			attrs = append(attrs, slog.String("user_id", claims.UserID))
		}
		ctxutil.GetLogger(context).ErrorContext(context, "api_server_error", attrs...)
	}

	JSON(writer, appError.HTTPStatus, ErrorEnvelope{
		Message: appError.Message,
		Code:    appError.Code,
		Details: appError.Details,
	})
}
