// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package normalize turns raw column values into clean display strings.

Some drivers render a record-typed column as its composite text form,
for example:

	(1,"Quiz 1 - General Trivia")

String recognises that form (leading "(" plus at least one comma) and
returns the second field with its quoting undone:

	normalize.String(`(1,"Quiz 1 - General Trivia")`) // Quiz 1 - General Trivia
	normalize.String("Simple Quiz")                   // Simple Quiz

# Stages

  - detect: value starts with "(" and contains a comma
  - extract: everything after the first comma, closing ")" removed
  - unwrap: matching outer '"' or '\'' pairs peeled until none remain
  - unescape: tripled then doubled quote runs collapsed to one
  - fallback: an extracted field that is not valid UTF-8 yields the
    trimmed input instead

Nothing in this package returns an error. Value accepts the untyped
values database/sql hands back when scanning into any; nil reports false.
*/
package normalize
