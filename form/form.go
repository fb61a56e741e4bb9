package form

import (
	"net/url"
	"strings"
	"unicode/utf8"

	"paynow-go/internal/logger"

	"go.uber.org/zap"
)

// Values is an ordered set of form fields. Field order is part of the
// gateway's hash contract, so iteration order is always insertion order.
type Values struct {
	keys []string
	data map[string]string
}

func New() *Values {
	return &Values{data: make(map[string]string)}
}

// Set stores value under key. A new key is appended to the iteration
// order; an existing key is updated in place.
func (v *Values) Set(key, value string) {
	if _, ok := v.data[key]; !ok {
		v.keys = append(v.keys, key)
	}
	v.data[key] = value
}

func (v *Values) Get(key string) string {
	return v.data[key]
}

func (v *Values) Has(key string) bool {
	_, ok := v.data[key]
	return ok
}

// Keys returns the field names in insertion order. The slice is a copy.
func (v *Values) Keys() []string {
	keys := make([]string, len(v.keys))
	copy(keys, v.keys)
	return keys
}

func (v *Values) Len() int {
	return len(v.keys)
}

// Encode renders the fields as an application/x-www-form-urlencoded body
// without reordering them.
func (v *Values) Encode() string {
	var b strings.Builder
	for i, key := range v.keys {
		if i > 0 {
			b.WriteByte('&')
		}
		b.WriteString(url.QueryEscape(key))
		b.WriteByte('=')
		b.WriteString(url.QueryEscape(v.data[key]))
	}
	return b.String()
}

// Decode parses a form-urlencoded body into ordered values. The last
// occurrence of a duplicate key wins. Malformed percent escapes are kept
// verbatim rather than rejected; the gateway is known to emit unescaped
// punctuation in error messages.
func Decode(body string) (*Values, error) {
	if !utf8.ValidString(body) {
		return nil, ErrNotText
	}

	values := New()
	for _, pair := range strings.Split(body, "&") {
		if pair == "" {
			continue
		}

		key, value, _ := strings.Cut(pair, "=")
		values.Set(unescape(key), unescape(value))
	}

	return values, nil
}

func unescape(s string) string {
	decoded, err := url.QueryUnescape(s)
	if err != nil {
		logger.L().Debug("keeping raw form token", zap.String("token", s), zap.Error(err))
		return s
	}
	return decoded
}
