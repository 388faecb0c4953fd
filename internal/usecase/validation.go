package usecase

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"nexus_settlement/internal/usecase/interfaces"
)

// requireNonBlank reports the first blank field (in name order) wrapped in sentinel.
func requireNonBlank(sentinel error, fields map[string]string) error {
	names := make([]string, 0, len(fields))
	for name := range fields {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		if strings.TrimSpace(fields[name]) == "" {
			return fmt.Errorf("%w: %s is required", sentinel, name)
		}
	}
	return nil
}

func mapSaveError(err error) error {
	if errors.Is(err, interfaces.ErrVersionConflict) {
		return fmt.Errorf("%w: %w", ErrConcurrentModification, err)
	}
	return err
}
