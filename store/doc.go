// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

// Package store reads quizzes and questions. Rows are fetched as
// column-keyed Records so quiz names reach normalize in whatever form the
// driver produced.
package store
