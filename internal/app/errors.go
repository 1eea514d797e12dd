package app

import (
	"fmt"
	"strings"

	"github.com/jsamuelsen11/go-domain-kernel/core"
	"github.com/jsamuelsen11/go-domain-kernel/internal/domain"
)

// classify tags kernel failures with the service-plane sentinels so that
// transports can map them with errors.Is alone. The kernel error stays in
// the chain for code-level detail.
func classify(err error) error {
	code, ok := core.CodeOf(err)
	if !ok {
		return err
	}

	switch {
	case strings.HasPrefix(code, "vo_"),
		code == core.CodeImmutableField,
		code == core.CodeTimestampNaive:
		return fmt.Errorf("%w: %w", domain.ErrValidation, err)
	case code == core.CodeArchived,
		code == core.CodeTimestampOrder:
		return fmt.Errorf("%w: %w", domain.ErrConflict, err)
	}

	return err
}
