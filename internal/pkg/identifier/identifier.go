// Package identifier mints and checks the reference tokens used as
// entity ids. Tokens are snowflake ids rendered as fixed-width
// lowercase hex, so a syntactic check catches malformed references
// before any lookup runs.
package identifier

import (
	"fmt"
	"regexp"
	"sync"

	"github.com/bwmarrin/snowflake"
)

const tokenLength = 16

var tokenPattern = regexp.MustCompile(`^[0-9a-f]{16}$`)

// InvalidError reports a malformed reference token. Label names the
// entity the caller was addressing ("toy", "school", "order", ...).
type InvalidError struct {
	Label string
}

func (e *InvalidError) Error() string {
	return fmt.Sprintf("please give a valid %v id", e.Label)
}

var (
	node     *snowflake.Node
	nodeOnce sync.Once
)

// New mints a fresh 16-hex-char token.
func New() string {
	nodeOnce.Do(func() {
		n, err := snowflake.NewNode(1)
		if err != nil {
			panic(fmt.Sprintf("failed to init snowflake node: %v", err))
		}
		node = n
	})

	return fmt.Sprintf("%0*x", tokenLength, node.Generate().Int64())
}

// Validate confirms id is syntactically a reference token. It is pure
// and says nothing about whether the entity exists.
func Validate(id, label string) error {
	if !tokenPattern.MatchString(id) {
		return &InvalidError{Label: label}
	}

	return nil
}
