package configs

import "errors"

// Configurable types name the config paths they are read from, in priority order.
type Configurable interface {
	ConfigPaths() []string
}

// FirstOf returns the value at the first path of T that is present.
func FirstOf[T Configurable](loader Loader) T {
	var zero T
	for _, path := range zero.ConfigPaths() {
		var value T
		err := loader.AssignFirst(path, &value)
		if errors.Is(err, ErrValueNotFound) {
			continue
		}
		if err != nil {
			panic(err)
		}
		return value
	}
	return zero
}
