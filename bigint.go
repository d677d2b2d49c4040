package client

import (
	"bytes"
	"regexp"

	"github.com/google/uuid"
)

var (
	// bigIntValue matches a JSON value position (a colon) immediately
	// followed by a run of exactly 17 digits. The trailing group rejects
	// longer runs, so an 18+ digit literal is left untouched rather than
	// split mid-number.
	bigIntValue = regexp.MustCompile(`:(\d{17})([^0-9]|$)`)

	// embeddedOrderID matches channel order references embedded inside
	// string values, e.g. "AmazonOrderID:123456789012345678".
	embeddedOrderID = regexp.MustCompile(`[A-Za-z][A-Za-z0-9]*OrderI[Dd]:\d{17,}`)
)

// QuoteBigIntValues rewrites bare 17-digit integer values in raw JSON text
// into string literals, so that decoding preserves identifier precision
// instead of rounding through float64. It must run before any structured
// decode of the body.
//
// Channel order references of the form "VendorOrderID:12345678901234567"
// embed the same digit pattern inside an existing string value; quoting
// inside those would produce invalid JSON, so they are masked with unique
// placeholder tokens before the rewrite and restored afterwards.
//
// The 17-digit rule matches the upstream identifier width exactly: a
// non-identifier value that happens to be 17 digits wide is also
// stringified, and an 18+ digit value is not protected at all. A
// schema-aware decoder that tags numeric literals by structural position
// would remove both failure modes; until then the width must track the
// upstream service.
func QuoteBigIntValues(body []byte) []byte {
	masked, tokens := maskEmbeddedOrderIDs(body)
	quoted := bigIntValue.ReplaceAll(masked, []byte(`:"$1"$2`))
	return restoreEmbeddedOrderIDs(quoted, tokens)
}

func maskEmbeddedOrderIDs(body []byte) ([]byte, map[string][]byte) {
	tokens := make(map[string][]byte)

	masked := embeddedOrderID.ReplaceAllFunc(body, func(match []byte) []byte {
		token := uuid.NewString()
		tokens[token] = append([]byte(nil), match...)
		return []byte(token)
	})

	return masked, tokens
}

func restoreEmbeddedOrderIDs(body []byte, tokens map[string][]byte) []byte {
	for token, original := range tokens {
		body = bytes.ReplaceAll(body, []byte(token), original)
	}

	return body
}
