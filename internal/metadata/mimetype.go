package metadata

import (
	"github.com/gabriel-vasile/mimetype"
)

// isJSONDocument sniffs the fetched body to confirm it is a JSON
// document. Gateways sometimes answer 200 with an HTML error page.
func isJSONDocument(data []byte) bool {
	if len(data) == 0 {
		return false
	}

	mtype := mimetype.Detect(data)
	for ; mtype != nil; mtype = mtype.Parent() {
		if mtype.Is("application/json") {
			return true
		}
	}
	return false
}
