package entity

import (
	"fmt"
	"strconv"
	"strings"
)

// ChainIDFromCAIP2 extracts the numeric chain id from a CAIP-2 identifier
// such as "eip155:137". Only the numeric part is used by this service.
func ChainIDFromCAIP2(caip2 string) (int64, error) {
	_, ref, ok := strings.Cut(caip2, ":")
	if !ok {
		return 0, fmt.Errorf("invalid CAIP-2 identifier: %s", caip2)
	}
	id, err := strconv.ParseInt(ref, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid CAIP-2 chain reference %q: %w", ref, err)
	}
	return id, nil
}
