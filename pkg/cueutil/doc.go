// SPDX-License-Identifier: MPL-2.0

// Package cueutil provides shared CUE parsing utilities: user-facing error
// formatting with JSON-path prefixes and input size guards for files parsed
// with CUE.
package cueutil
