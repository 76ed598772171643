// SPDX-License-Identifier: MPL-2.0

// Package platform provides cross-platform compatibility utilities, such as
// the OS name constants used for runtime.GOOS comparisons.
package platform
