// SPDX-License-Identifier: GPL-3.0-or-later

package pipeline

// reasonPhrases maps well-known HTTP status codes to their
// conventional reason phrase, used when a handler overrides the
// status code without supplying its own phrase. Codes outside this
// table keep whatever reason the callback set.
var reasonPhrases = map[int]string{
	200: "OK",
	400: "Bad Request",
	404: "Not Found",
	418: "I'm a teapot",
	500: "Internal Server Error",
	503: "Service Unavailable",
}

func reasonFor(code int) (string, bool) {
	reason, ok := reasonPhrases[code]
	return reason, ok
}
