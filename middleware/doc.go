// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package middleware holds the HTTP plumbing shared by the tally handlers.

# Request Logging

	mux.HandleFunc("POST /tally", middleware.WithLogging(handler))

Each request produces two log lines: "request started" (method, path,
client IP) and "request completed" (status, bytes written, duration_ms).
The completion line is Info for 2xx/3xx, Warn for 4xx and Error for 5xx, so
rejected requests stand out without enabling debug output.

# Request Bodies

ParseJSONBody decodes exactly one JSON value, capped at MaxBodyBytes:

	var req models.TallyRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		if errors.Is(err, middleware.ErrBodyTooLarge) {
			// 413
		}
		// 400
	}

Data after the value fails with ErrTrailingData.

# Responses

	middleware.JSONResponse(w, http.StatusOK, report)
	middleware.ErrorResponse(w, http.StatusNotFound, "Contest not found")

ErrorResponse fills models.ErrorResponse.Error from the status text.

# CORS

	server := http.Server{Handler: middleware.CORS(mux)}

Echoes the request Origin, allows GET, POST and OPTIONS, and answers
preflight requests with 204.

# Client IP

GetClientIP prefers the first X-Forwarded-For hop, then X-Real-IP, then the
host part of RemoteAddr (IPv6 without brackets).
*/
package middleware
