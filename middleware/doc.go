// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package middleware provides HTTP middleware and helper functions.

# Request Logging

Wrap handlers with request logging:

	mux.HandleFunc("GET /api/topics", middleware.WithLogging(handler))

Logs request start (method, path, remote, request_id) and completion
(status, duration_ms, request_id).

# Request IDs and Recovery

Wrap the whole mux once:

	handler := middleware.CORS(middleware.WithRequestID(middleware.Recover(mux)))

WithRequestID reuses or generates X-Request-ID. Recover answers a panicking
handler with 500 {"msg":"Internal Server Error"}.

# JSON Helpers

Write JSON responses:

	middleware.JSONResponse(w, http.StatusOK, models.TopicsResponse{Topics: topics})
	middleware.ErrorResponse(w, http.StatusNotFound)

Every error goes through WriteError, which picks the status from the apierr
taxonomy:

	if err != nil {
		middleware.WriteError(w, r, err)
		return
	}

Parse JSON request bodies; malformed JSON is a 400:

	var req models.NewComment
	if err := middleware.ParseJSONBody(w, r, &req); err != nil {
		middleware.WriteError(w, r, err)
		return
	}

# Client IP Extraction

Get the original client IP (handles X-Forwarded-For, X-Real-IP):

	ip := middleware.GetClientIP(r)
*/
package middleware
