package model

import (
	"fmt"
	"strings"

	"github.com/cockroachdb/errors"
)

func enumName(names []string, v uint8, kind string) string {
	if int(v) < len(names) {
		return names[v]
	}
	return fmt.Sprintf("%s(%d)", kind, v)
}

func parseEnum[E ~uint8](names []string, text []byte, kind string, dst *E) error {
	s := strings.ToLower(strings.TrimSpace(string(text)))
	for i, n := range names {
		if n == s {
			*dst = E(i)
			return nil
		}
	}
	return errors.Newf("unknown %s %q", kind, string(text))
}
