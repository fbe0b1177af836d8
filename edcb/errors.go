package edcb

import (
	"errors"
	"fmt"
)

// ErrNoResult is returned by every command façade operation on any
// transport failure (connect error, timeout, short read) or protocol
// failure (ret != CMD_SUCCESS, stale v2 cmd_ver, structural parse error).
// The two layers are deliberately not distinguished: §7 treats them
// identically, and the internal ErrRead never escapes this package.
var ErrNoResult = errors.New("edcb: no result")

func asNoResult(err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%w: %v", ErrNoResult, err)
}
