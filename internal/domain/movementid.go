package domain

import (
	"fmt"
	"strconv"
	"strings"
)

// Movement ids look like M0001: a fixed letter prefix followed by a
// zero-padded sequence number. The width grows naturally past M9999.
const (
	movementIDPrefix = "M"
	movementIDWidth  = 4
)

// NextMovementID returns the next sequential movement id given every id
// already in the store. Ids that do not match the prefix+digits pattern are
// skipped; an empty or fully malformed list yields the first id in the
// sequence.
func NextMovementID(existing []string) string {
	max := 0
	for _, id := range existing {
		n, ok := parseMovementID(id)
		if !ok {
			continue
		}
		if n > max {
			max = n
		}
	}
	return FormatMovementID(max + 1)
}

// FormatMovementID renders a sequence number in the fixed id format.
func FormatMovementID(seq int) string {
	return fmt.Sprintf("%s%0*d", movementIDPrefix, movementIDWidth, seq)
}

func parseMovementID(id string) (int, bool) {
	if !strings.HasPrefix(id, movementIDPrefix) || len(id) <= len(movementIDPrefix) {
		return 0, false
	}
	n, err := strconv.Atoi(id[len(movementIDPrefix):])
	if err != nil || n < 0 {
		return 0, false
	}
	return n, true
}
