package metrics

import "errors"

// ErrRegister is returned by Register when the registry rejects a collector.
var ErrRegister = errors.New("failed to register metrics")
