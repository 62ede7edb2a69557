package export

import "errors"

// ErrUnknownFormat is returned for image formats export cannot write.
var ErrUnknownFormat = errors.New("export: unknown image format")
