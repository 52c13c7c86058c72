package catalog

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/aaravmahajanofficial/storefront/internal/cache"
)

// Params are outgoing query parameters before sanitization.
type Params map[string]any

// ZeroPolicy decides what Sanitize does with numeric zero values.
type ZeroPolicy int

const (
	// ZeroPolicyKeep sends numeric zero, so min_price=0 or min_rating=0 can be
	// expressed.
	ZeroPolicyKeep ZeroPolicy = iota
	// ZeroPolicyDrop treats numeric zero like an empty value and drops it.
	ZeroPolicyDrop
)

func (z ZeroPolicy) String() string {
	if z == ZeroPolicyDrop {
		return "drop"
	}

	return "keep"
}

// Sanitize drops parameters that carry no filtering intent: nil values, nil
// pointers, blank strings and, under ZeroPolicyDrop, numeric zero.
func Sanitize(p Params, policy ZeroPolicy) url.Values {
	q := url.Values{}

	for key, value := range p {
		s, ok := format(value, policy)
		if ok {
			q.Set(key, s)
		}
	}

	return q
}

func format(value any, policy ZeroPolicy) (string, bool) {
	numeric := func(isZero bool, s string) (string, bool) {
		if isZero && policy == ZeroPolicyDrop {
			return "", false
		}

		return s, true
	}

	switch v := value.(type) {
	case nil:
		return "", false
	case string:
		v = strings.TrimSpace(v)
		return v, v != ""
	case int:
		return numeric(v == 0, strconv.Itoa(v))
	case int64:
		return numeric(v == 0, strconv.FormatInt(v, 10))
	case float64:
		return numeric(v == 0, strconv.FormatFloat(v, 'f', -1, 64))
	case *int64:
		if v == nil {
			return "", false
		}
		return format(*v, policy)
	case *float64:
		if v == nil {
			return "", false
		}
		return format(*v, policy)
	case *string:
		if v == nil {
			return "", false
		}
		return format(*v, policy)
	case bool:
		return strconv.FormatBool(v), true
	default:
		return fmt.Sprint(v), true
	}
}

// cacheKey names endpoint under the catalog prefix, followed by a stable
// rendering of q.
func cacheKey(endpoint string, q url.Values) string {
	key := cache.Key(cache.CatalogKeyPrefix, endpoint)
	if len(q) == 0 {
		return key
	}

	return key + "?" + q.Encode()
}
