// SPDX-License-Identifier: MIT
package builder

import "fmt"

// builderErrorf prefixes a formatted message with the method name and wraps
// the sentinel: "<Method>: <message>: <sentinel>".
func builderErrorf(method, format string, sentinel error, args ...interface{}) error {
	return fmt.Errorf("%s: %s: %w", method, fmt.Sprintf(format, args...), sentinel)
}
