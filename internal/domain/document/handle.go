package document

import (
	"fmt"
	"strings"

	"github.com/kailas-cloud/memoria/internal/domain"
)

// ParseHandle splits a slug-suffix handle on its last hyphen. Both halves must
// be non-empty.
func ParseHandle(handle string) (slug, suffix string, err error) {
	handle = strings.TrimSpace(handle)
	i := strings.LastIndexByte(handle, '-')
	if i <= 0 || i == len(handle)-1 {
		return "", "", fmt.Errorf("%w: %q must look like <slug>-<suffix>", domain.ErrInvalidHandle, handle)
	}
	return handle[:i], handle[i+1:], nil
}
