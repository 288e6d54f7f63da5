// internal/executor/tokens.go
package executor

import (
	"sync"

	"github.com/pkoukk/tiktoken-go"
)

var (
	encodingOnce sync.Once
	encoding     *tiktoken.Tiktoken
)

// estimateTokens approximates a token count with the cl100k_base encoding
// for backends that omit token accounting. Returns 0 when the encoding is
// unavailable, which the efficiency scorer treats as a missing measurement.
func estimateTokens(text string) int {
	if text == "" {
		return 0
	}
	encodingOnce.Do(func() {
		enc, err := tiktoken.GetEncoding("cl100k_base")
		if err != nil {
			return
		}
		encoding = enc
	})
	if encoding == nil {
		return 0
	}
	return len(encoding.Encode(text, nil, nil))
}
