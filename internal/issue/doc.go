// SPDX-License-Identifier: MPL-2.0

// Package issue holds the catalog of user-facing failure explanations and
// the ActionableError type used to attach operation context and fix
// suggestions to errors. Catalog entries are written in Markdown and
// rendered with glamour for terminal display.
package issue
