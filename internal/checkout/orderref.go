package checkout

import (
	"crypto/rand"
	"fmt"
	"strconv"
	"strings"
	"time"
)

const base36Alphabet = "0123456789abcdefghijklmnopqrstuvwxyz"

// NewOrderRef builds a display order reference:
// TKT-<base36 unix-millis>-<6 random base36 chars>, uppercased.
func NewOrderRef() string {
	ts := strconv.FormatInt(time.Now().UnixMilli(), 36)
	return strings.ToUpper(fmt.Sprintf("TKT-%s-%s", ts, randomBase36(6)))
}

func randomBase36(n int) string {
	b := make([]byte, n)
	_, _ = rand.Read(b)

	out := make([]byte, n)
	for i, v := range b {
		out[i] = base36Alphabet[int(v)%len(base36Alphabet)]
	}

	return string(out)
}
