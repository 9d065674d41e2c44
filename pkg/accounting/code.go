package accounting

import (
	"fmt"
	"strconv"
	"strings"
)

// codeStep is the numeric distance between sibling codes per level:
// level 1 accounts are 1000..9000, level 2 adds 100..900 to the parent code,
// level 3 adds 10..90 and level 4 adds 1..9.
var codeStep = map[int]int{1: 1000, 2: 100, 3: 10, 4: 1}

// NextChildCode picks the lowest unused code for a new account under
// parentCode at the given level. taken holds every code already used in the
// scope. Returns ErrCodeExhausted when all nine suffixes are occupied.
func NextChildCode(parentCode string, level int, taken map[string]bool) (string, error) {
	step, ok := codeStep[level]
	if !ok {
		return "", fmt.Errorf("invalid account level %d", level)
	}
	base := 0
	if level > 1 {
		n, err := strconv.Atoi(parentCode)
		if err != nil {
			return "", fmt.Errorf("invalid parent code %q: %w", parentCode, err)
		}
		base = n
	}
	for i := 1; i <= 9; i++ {
		code := strconv.Itoa(base + i*step)
		if !taken[code] {
			return code, nil
		}
	}
	return "", ErrCodeExhausted
}

// RecodeSubtree assigns fresh codes to a re-parented account and its
// descendants so every code keeps the parent-prefix invariant under the new
// position. taken holds every code in use in the scope; the subtree's own
// codes are released before new ones are picked. Returns id → new code.
func RecodeSubtree(arena *Arena, rootID uint, parentCode string, newLevel int, taken map[string]bool) (map[uint]string, error) {
	var release func(id uint)
	release = func(id uint) {
		if acc, ok := arena.Get(id); ok {
			delete(taken, acc.Code)
		}
		for _, cid := range arena.Children(id) {
			release(cid)
		}
	}
	release(rootID)

	out := make(map[uint]string)
	var assign func(id uint, parentCode string, level int) error
	assign = func(id uint, parentCode string, level int) error {
		code, err := NextChildCode(parentCode, level, taken)
		if err != nil {
			return err
		}
		taken[code] = true
		out[id] = code
		for _, cid := range arena.Children(id) {
			if err := assign(cid, code, level+1); err != nil {
				return err
			}
		}
		return nil
	}
	if err := assign(rootID, parentCode, newLevel); err != nil {
		return nil, err
	}
	return out, nil
}

// CodeHasParentPrefix reports whether a child code sits under its parent's
// code. Trailing zeros of the parent code are placeholders for deeper levels,
// so "1100" is under "1000" because both start with the stem "1".
func CodeHasParentPrefix(code, parentCode string) bool {
	stem := strings.TrimRight(parentCode, "0")
	if stem == "" {
		return false
	}
	return strings.HasPrefix(code, stem) && code != parentCode
}
