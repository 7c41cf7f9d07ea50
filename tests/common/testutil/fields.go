//go:build unit || e2e

package testutil

// Field sets key on a decoded DTO map; a nil value removes the key so required-field paths can be exercised.
func Field(key string, value any) func(m map[string]any) {
	return func(m map[string]any) {
		if value == nil {
			delete(m, key)
			return
		}
		m[key] = value
	}
}

// ItemField applies Field to the i-th cart line under "items".
func ItemField(i int, key string, value any) func(m map[string]any) {
	return func(m map[string]any) {
		items, ok := m["items"].([]any)
		if !ok || i >= len(items) {
			return
		}
		if item, ok := items[i].(map[string]any); ok {
			Field(key, value)(item)
		}
	}
}

// AddressField applies Field to the nested "shippingAddress" object.
func AddressField(key string, value any) func(m map[string]any) {
	return func(m map[string]any) {
		if addr, ok := m["shippingAddress"].(map[string]any); ok {
			Field(key, value)(addr)
		}
	}
}
