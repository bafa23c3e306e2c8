package cache

import "errors"

var errUnsupportedValue = errors.New("cache: unsupported value type")
