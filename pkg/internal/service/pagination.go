package service

import "fmt"

// MaxPageLimit 单页上限，超出的 limit 会被收敛到该值.
const MaxPageLimit = 100

// normalizePage 校验并收敛分页参数.
// limit 必须为正，超过上限收敛到 MaxPageLimit；offset 不允许为负.
func normalizePage(limit, offset int) (int, int, error) {
	if limit <= 0 {
		return 0, 0, fmt.Errorf("%w: limit must be positive", ErrInvalid)
	}

	if offset < 0 {
		return 0, 0, fmt.Errorf("%w: offset must not be negative", ErrInvalid)
	}

	if limit > MaxPageLimit {
		limit = MaxPageLimit
	}

	return limit, offset, nil
}
