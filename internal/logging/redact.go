// Reviewscope - App Store Review Sentiment Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reviewscope

package logging

import "strings"

// SanitizeToken masks a credential, showing only the first and last 4 characters.
// Example: "mdt_0123456789abcdef" -> "mdt_...cdef"
func SanitizeToken(token string) string {
	if token == "" {
		return ""
	}
	if len(token) <= 12 {
		return "***"
	}
	return token[:4] + "..." + token[len(token)-4:]
}

// SanitizeDSN masks any motherduck_token / token query parameter in a DuckDB DSN
// so connection strings can be logged.
//
//	SanitizeDSN("md:reviews?motherduck_token=abcdefghijklmnop") // "md:reviews?motherduck_token=abcd...mnop"
func SanitizeDSN(dsn string) string {
	base, query, found := strings.Cut(dsn, "?")
	if !found {
		return dsn
	}
	params := strings.Split(query, "&")
	for i, p := range params {
		key, value, ok := strings.Cut(p, "=")
		if !ok {
			continue
		}
		if strings.EqualFold(key, "motherduck_token") || strings.EqualFold(key, "token") {
			params[i] = key + "=" + SanitizeToken(value)
		}
	}
	return base + "?" + strings.Join(params, "&")
}
